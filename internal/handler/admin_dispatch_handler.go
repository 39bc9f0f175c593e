package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/craviont/craviont-site-api/internal/dto"
	"github.com/craviont/craviont-site-api/internal/service"
	"github.com/craviont/craviont-site-api/internal/utils"
)

// AdminDispatchHandler exposes the dispatch log to operators.
type AdminDispatchHandler struct {
	service service.DispatchLogService
	logger  zerolog.Logger
}

// NewAdminDispatchHandler constructs the handler.
func NewAdminDispatchHandler(service service.DispatchLogService, logger zerolog.Logger) *AdminDispatchHandler {
	return &AdminDispatchHandler{
		service: service,
		logger:  logger.With().Str("component", "admin_dispatch_handler").Logger(),
	}
}

// Register attaches routes.
func (h *AdminDispatchHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

func (h *AdminDispatchHandler) list(c *fiber.Ctx) error {
	page, err := parseQueryInt(c, "page")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page")
	}
	pageSize, err := parseQueryInt(c, "page_size")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid page size")
	}

	query := dto.DispatchLogQuery{
		Status:   c.Query("status"),
		FormKind: c.Query("kind"),
		Page:     page,
		PageSize: pageSize,
	}

	items, pagination, err := h.service.List(c.UserContext(), query)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuery) {
			return utils.SendError(c, fiber.StatusBadRequest, err.Error())
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to list dispatch logs")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to list dispatches")
	}

	meta := fiber.Map{
		"pagination": pagination,
		"filters": fiber.Map{
			"status": query.Status,
			"kind":   query.FormKind,
		},
	}
	return utils.OK(c, items, "dispatches retrieved", meta)
}
