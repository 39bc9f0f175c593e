package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/craviont/craviont-site-api/internal/models"
)

// DispatchLogFilter narrows dispatch log listings.
type DispatchLogFilter struct {
	Status   string
	FormKind string
	Page     int
	PageSize int
}

// DispatchLogRepository persists provider dispatch outcomes.
type DispatchLogRepository interface {
	Create(ctx context.Context, entry *models.DispatchLog) error
	List(ctx context.Context, filter DispatchLogFilter) ([]models.DispatchLog, int64, error)
}

type dispatchLogRepository struct {
	db *gorm.DB
}

// NewDispatchLogRepository constructs a repository backed by GORM.
func NewDispatchLogRepository(db *gorm.DB) DispatchLogRepository {
	return &dispatchLogRepository{db: db}
}

func (r *dispatchLogRepository) Create(ctx context.Context, entry *models.DispatchLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *dispatchLogRepository) List(ctx context.Context, filter DispatchLogFilter) ([]models.DispatchLog, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.DispatchLog{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.FormKind != "" {
		query = query.Where("form_kind = ?", filter.FormKind)
	}

	countQuery := query.Session(&gorm.Session{})
	var total int64
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if filter.PageSize > 0 {
		page := filter.Page
		if page <= 0 {
			page = 1
		}
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var items []models.DispatchLog
	if err := query.Order("created_at DESC, id DESC").Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}
