package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/datatypes"

	"github.com/craviont/craviont-site-api/internal/dto"
	"github.com/craviont/craviont-site-api/internal/form"
	"github.com/craviont/craviont-site-api/internal/models"
	"github.com/craviont/craviont-site-api/internal/observability"
	"github.com/craviont/craviont-site-api/internal/repository"
)

// LeadSubmission is one submission attempt as received from a client.
type LeadSubmission struct {
	Kind          form.Kind
	InstanceID    string
	CorrelationID string
	Values        form.Values
}

// LeadServiceConfig holds the dispatch settings of the lead service.
type LeadServiceConfig struct {
	Provider             string
	Templates            map[form.Kind]string
	NotificationDuration time.Duration
}

// LeadService runs the collect, validate, dispatch and feedback pipeline of the lead forms.
type LeadService interface {
	Submit(ctx context.Context, submission LeadSubmission) (dto.LeadSubmissionResponse, error)
}

type leadService struct {
	validator     *form.Validator
	presenter     form.Presenter
	dispatcher    Dispatcher
	guard         InflightGuard
	fallbackGuard InflightGuard
	logs          repository.DispatchLogRepository
	events        LeadEventPublisher
	provider      string
	templates     map[form.Kind]string
	logger        zerolog.Logger
	tracer        trace.Tracer
}

// NewLeadService constructs the lead submission service. logs and events are optional.
func NewLeadService(validator *form.Validator, dispatcher Dispatcher, guard InflightGuard, logs repository.DispatchLogRepository, events LeadEventPublisher, cfg LeadServiceConfig, logger zerolog.Logger) LeadService {
	fallback := NewMemoryInflightGuard()
	if guard == nil {
		guard = fallback
	}
	templates := make(map[form.Kind]string, len(cfg.Templates))
	for kind, templateID := range cfg.Templates {
		templates[kind] = templateID
	}

	return &leadService{
		validator:     validator,
		presenter:     form.NewPresenter(cfg.NotificationDuration),
		dispatcher:    dispatcher,
		guard:         guard,
		fallbackGuard: fallback,
		logs:          logs,
		events:        events,
		provider:      cfg.Provider,
		templates:     templates,
		logger:        logger.With().Str("component", "lead_service").Logger(),
		tracer:        otel.Tracer("github.com/craviont/craviont-site-api/internal/service/lead"),
	}
}

// dispatchAttempt captures one provider call so it can be recorded once the lock is released.
type dispatchAttempt struct {
	ran        bool
	record     form.Record
	templateID string
	variables  []string
	duration   time.Duration
	err        error
}

func (s *leadService) Submit(ctx context.Context, submission LeadSubmission) (dto.LeadSubmissionResponse, error) {
	ctx, span := s.tracer.Start(ctx, "lead.submit", trace.WithAttributes(
		attribute.String("lead.kind", string(submission.Kind)),
	))
	defer span.End()

	kind := string(submission.Kind)
	if !submission.Kind.Valid() {
		span.SetStatus(codes.Error, "unknown form")
		return dto.LeadSubmissionResponse{}, fmt.Errorf("%w %q", form.ErrUnknownKind, kind)
	}

	release, err := s.acquire(ctx, kind+":"+submission.InstanceID)
	if err != nil {
		span.RecordError(err)
		observability.LeadSubmissions().WithLabelValues(kind, "in_flight").Inc()
		span.SetStatus(codes.Error, "submission in flight")
		return dto.LeadSubmissionResponse{Status: "in_flight", Values: submission.Values}, err
	}
	var releaseOnce sync.Once
	unlock := func() { releaseOnce.Do(release) }
	defer unlock()

	session := form.NewSession(submission.Kind, s.validator, s.presenter)
	session.Fill(submission.Values)

	referenceID := uuid.NewString()
	span.SetAttributes(attribute.String("lead.reference_id", referenceID))

	attempt := &dispatchAttempt{}
	notification, err := session.Submit(ctx, s.dispatch(attempt))
	unlock()

	if attempt.ran {
		s.afterDispatch(ctx, submission, referenceID, attempt)
	}

	response := dto.LeadSubmissionResponse{
		Values:       session.Values(),
		Errors:       session.Errors(),
		Notification: dto.NewNotificationResponse(notification),
	}

	switch {
	case err == nil:
		observability.LeadSubmissions().WithLabelValues(kind, string(form.OutcomeDelivered)).Inc()
		span.SetStatus(codes.Ok, "delivered")
		response.ReferenceID = referenceID
		response.Status = string(form.OutcomeDelivered)
		response.Reset = true
		return response, nil
	case errors.Is(err, form.ErrValidation):
		observability.LeadSubmissions().WithLabelValues(kind, "invalid").Inc()
		span.SetStatus(codes.Error, "validation failed")
		response.Status = "invalid"
		return response, err
	default:
		observability.LeadSubmissions().WithLabelValues(kind, string(form.OutcomeFailed)).Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "dispatch failed")
		response.ReferenceID = referenceID
		response.Status = string(form.OutcomeFailed)
		return response, err
	}
}

// acquire takes the in-flight lock for key. When the shared guard is unavailable the process-local
// guard is used instead; only form.ErrSubmissionInFlight is returned to the caller.
func (s *leadService) acquire(ctx context.Context, key string) (func(), error) {
	release, err := s.guard.Acquire(ctx, key)
	if err == nil || errors.Is(err, form.ErrSubmissionInFlight) || s.guard == s.fallbackGuard {
		return release, err
	}

	observability.InflightGuardFailures().Inc()
	s.logger.Warn().Err(err).Str("key", key).Msg("inflight guard unavailable, using local guard")
	return s.fallbackGuard.Acquire(ctx, key)
}

func (s *leadService) dispatch(attempt *dispatchAttempt) form.SendFunc {
	return func(ctx context.Context, record form.Record) error {
		templateID := s.templates[record.Kind]
		variables := record.TemplateVariables()

		ctx, span := s.tracer.Start(ctx, "lead.dispatch", trace.WithAttributes(
			attribute.String("lead.provider", s.provider),
			attribute.String("lead.template_id", templateID),
		))
		defer span.End()

		start := time.Now()
		err := s.dispatcher.Send(ctx, templateID, variables)
		duration := time.Since(start)

		outcome := form.OutcomeDelivered
		if err != nil {
			outcome = form.OutcomeFailed
			span.RecordError(err)
			span.SetStatus(codes.Error, "provider failure")
		}
		observability.LeadDispatchDuration().WithLabelValues(s.provider, string(outcome)).Observe(duration.Seconds())

		*attempt = dispatchAttempt{
			ran:        true,
			record:     record,
			templateID: templateID,
			variables:  sortedKeys(variables),
			duration:   duration,
			err:        err,
		}
		return err
	}
}

// afterDispatch logs, persists and announces a provider call. None of it changes the outcome.
func (s *leadService) afterDispatch(ctx context.Context, submission LeadSubmission, referenceID string, attempt *dispatchAttempt) {
	record := attempt.record
	maskedEmail := maskEmailAddress(record.Email())
	logger := s.logger.With().
		Str("reference_id", referenceID).
		Str("form", string(record.Kind)).
		Str("provider", s.provider).
		Str("template_id", attempt.templateID).
		Str("instance_id", submission.InstanceID).
		Str("correlation_id", submission.CorrelationID).
		Str("email", maskedEmail).
		Dur("duration", attempt.duration).
		Logger()

	outcome := form.OutcomeDelivered
	if attempt.err != nil {
		outcome = form.OutcomeFailed
	}

	entry := models.DispatchLog{
		ReferenceID:   referenceID,
		FormKind:      string(record.Kind),
		Status:        string(outcome),
		Provider:      s.provider,
		TemplateID:    attempt.templateID,
		MaskedEmail:   maskedEmail,
		ServiceLabel:  record.ServiceLabel(),
		InstanceID:    submission.InstanceID,
		CorrelationID: submission.CorrelationID,
		DurationMs:    attempt.duration.Milliseconds(),
	}
	if names, err := json.Marshal(attempt.variables); err == nil {
		entry.Variables = datatypes.JSON(names)
	}

	if attempt.err != nil {
		entry.FailureDetail = attempt.err.Error()
		logger.Error().Err(attempt.err).Msg("lead dispatch failed")
		s.recordDispatch(ctx, logger, &entry)
		return
	}

	logger.Info().Msg("lead dispatched")
	s.recordDispatch(ctx, logger, &entry)
	s.publishDelivered(ctx, logger, LeadEvent{
		ReferenceID: referenceID,
		Kind:        string(record.Kind),
		Service:     record.ServiceLabel(),
		MaskedEmail: maskedEmail,
		DeliveredAt: time.Now().UTC(),
	})
}

func (s *leadService) recordDispatch(ctx context.Context, logger zerolog.Logger, entry *models.DispatchLog) {
	if s.logs == nil {
		return
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		observability.DispatchLogFailures().Inc()
		logger.Warn().Err(err).Msg("failed to persist dispatch log")
	}
}

func (s *leadService) publishDelivered(ctx context.Context, logger zerolog.Logger, event LeadEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishDelivered(ctx, event); err != nil {
		observability.LeadEventFailures().Inc()
		logger.Warn().Err(err).Msg("failed to publish lead event")
	}
}
