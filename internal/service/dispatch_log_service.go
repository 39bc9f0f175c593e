package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/craviont/craviont-site-api/internal/dto"
	"github.com/craviont/craviont-site-api/internal/form"
	"github.com/craviont/craviont-site-api/internal/repository"
)

const (
	defaultDispatchPageSize = 20
	maxDispatchPageSize     = 100
)

// DispatchLogService exposes dispatch outcomes to operators.
type DispatchLogService interface {
	List(ctx context.Context, query dto.DispatchLogQuery) ([]dto.DispatchLogResponse, dto.PaginationMeta, error)
}

type dispatchLogService struct {
	repo   repository.DispatchLogRepository
	logger zerolog.Logger
}

// NewDispatchLogService constructs the operator dispatch log service.
func NewDispatchLogService(repo repository.DispatchLogRepository, logger zerolog.Logger) DispatchLogService {
	return &dispatchLogService{
		repo:   repo,
		logger: logger.With().Str("component", "dispatch_log_service").Logger(),
	}
}

func (s *dispatchLogService) List(ctx context.Context, query dto.DispatchLogQuery) ([]dto.DispatchLogResponse, dto.PaginationMeta, error) {
	status := strings.ToLower(strings.TrimSpace(query.Status))
	switch status {
	case "", string(form.OutcomeDelivered), string(form.OutcomeFailed):
	default:
		return nil, dto.PaginationMeta{}, fmt.Errorf("%w: unknown status %q", ErrInvalidQuery, query.Status)
	}

	kind := ""
	if strings.TrimSpace(query.FormKind) != "" {
		parsed, err := form.ParseKind(query.FormKind)
		if err != nil {
			return nil, dto.PaginationMeta{}, fmt.Errorf("%w: %v", ErrInvalidQuery, err)
		}
		kind = string(parsed)
	}

	page := query.Page
	if page <= 0 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = defaultDispatchPageSize
	}
	if pageSize > maxDispatchPageSize {
		pageSize = maxDispatchPageSize
	}

	items, total, err := s.repo.List(ctx, repository.DispatchLogFilter{
		Status:   status,
		FormKind: kind,
		Page:     page,
		PageSize: pageSize,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list dispatch logs")
		return nil, dto.PaginationMeta{}, err
	}

	return dto.NewDispatchLogResponseSlice(items), dto.NewPaginationMeta(page, pageSize, total), nil
}
