package handler

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/craviont/craviont-site-api/internal/dto"
	"github.com/craviont/craviont-site-api/internal/form"
	"github.com/craviont/craviont-site-api/internal/middleware"
	"github.com/craviont/craviont-site-api/internal/schema"
	"github.com/craviont/craviont-site-api/internal/service"
	"github.com/craviont/craviont-site-api/internal/utils"
)

// LeadHandler accepts submissions of one lead form.
type LeadHandler struct {
	kind    form.Kind
	service service.LeadService
	checker *schema.PayloadChecker
	logger  zerolog.Logger
}

// NewLeadHandler constructs a handler for the given form kind.
func NewLeadHandler(kind form.Kind, service service.LeadService, checker *schema.PayloadChecker, logger zerolog.Logger) *LeadHandler {
	return &LeadHandler{
		kind:    kind,
		service: service,
		checker: checker,
		logger:  logger.With().Str("component", "lead_handler").Str("form", string(kind)).Logger(),
	}
}

// Register wires the submission route.
func (h *LeadHandler) Register(router fiber.Router) {
	router.Post("", h.submit)
}

func (h *LeadHandler) submit(c *fiber.Ctx) error {
	body := c.Body()
	if h.checker != nil {
		if err := h.checker.Check(h.kind, body); err != nil {
			requestLogger(h.logger, c).Debug().Err(err).Msg("rejected submission payload")
			return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
		}
	}

	values, err := h.decode(body)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	response, err := h.service.Submit(c.UserContext(), service.LeadSubmission{
		Kind:          h.kind,
		InstanceID:    middleware.FormInstanceID(c),
		CorrelationID: middleware.GetCorrelationID(c),
		Values:        values,
	})
	if err != nil {
		switch {
		case errors.Is(err, form.ErrSubmissionInFlight):
			return utils.Fail(c, fiber.StatusConflict, "a submission for this form is already in progress", response)
		case errors.Is(err, form.ErrValidation):
			return utils.Fail(c, fiber.StatusUnprocessableEntity, "validation failed", response)
		case errors.Is(err, form.ErrDispatchFailed):
			return utils.Fail(c, fiber.StatusBadGateway, "submission failed", response)
		default:
			requestLogger(h.logger, c).Error().Err(err).Msg("failed to process submission")
			return utils.SendError(c, fiber.StatusInternalServerError, "failed to process submission")
		}
	}

	return utils.SendSuccess(c, "submission delivered", response)
}

func (h *LeadHandler) decode(body []byte) (form.Values, error) {
	switch h.kind {
	case form.KindContact:
		var payload dto.ContactRequest
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, err
		}
		return payload.Values(), nil
	case form.KindServiceRequest:
		var payload dto.ServiceRequest
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, err
		}
		return payload.Values(), nil
	default:
		return nil, form.ErrUnknownKind
	}
}
