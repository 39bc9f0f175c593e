package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/craviont/craviont-site-api/internal/dto"
	"github.com/craviont/craviont-site-api/internal/form"
	"github.com/craviont/craviont-site-api/internal/utils"
)

// FormHandler exposes the initial collector state of each form.
type FormHandler struct{}

// NewFormHandler constructs the handler.
func NewFormHandler() *FormHandler {
	return &FormHandler{}
}

// Register attaches routes.
func (h *FormHandler) Register(router fiber.Router) {
	router.Get("/:kind/defaults", h.defaults)
}

func (h *FormHandler) defaults(c *fiber.Ctx) error {
	kind, err := form.ParseKind(c.Params("kind"))
	if err != nil {
		return utils.SendError(c, fiber.StatusNotFound, "form not found")
	}

	return utils.SendSuccess(c, "form defaults retrieved", dto.FormDefaultsResponse{
		Kind:        string(kind),
		Fields:      kind.Fields(),
		Values:      kind.Defaults(),
		SubmitLabel: kind.SubmitLabel(),
	})
}
