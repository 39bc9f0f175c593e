package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/craviont/craviont-site-api/internal/service"
	"github.com/craviont/craviont-site-api/internal/utils"
)

// ContentHandler serves the read-only marketing catalog.
type ContentHandler struct {
	service service.ContentService
	logger  zerolog.Logger
}

// NewContentHandler constructs the handler.
func NewContentHandler(service service.ContentService, logger zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		logger:  logger.With().Str("component", "content_handler").Logger(),
	}
}

// Register attaches routes.
func (h *ContentHandler) Register(router fiber.Router) {
	router.Get("/services", h.listServices)
	router.Get("/services/:slug", h.getService)
	router.Get("/faqs", h.listFAQs)
	router.Get("/currencies", h.listCurrencies)
}

func (h *ContentHandler) listServices(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "services retrieved", h.service.ListServices())
}

func (h *ContentHandler) getService(c *fiber.Ctx) error {
	category, err := h.service.GetService(c.Params("slug"))
	if err != nil {
		if errors.Is(err, service.ErrServiceCategoryNotFound) {
			return utils.SendError(c, fiber.StatusNotFound, "service not found")
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to load service category")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to load service")
	}
	return utils.SendSuccess(c, "service retrieved", category)
}

func (h *ContentHandler) listFAQs(c *fiber.Ctx) error {
	all := false
	if raw := c.Query("all"); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return utils.SendError(c, fiber.StatusBadRequest, "invalid all flag")
		}
		all = parsed
	}
	return utils.SendSuccess(c, "faqs retrieved", h.service.ListFAQs(all))
}

func (h *ContentHandler) listCurrencies(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "currencies retrieved", h.service.ListCurrencies())
}
