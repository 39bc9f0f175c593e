package models

import (
	"time"

	"gorm.io/datatypes"
)

// DispatchLog records the outcome of one provider dispatch for operator diagnosis. Submitted field
// values are not stored.
type DispatchLog struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	ReferenceID   string         `gorm:"size:64;uniqueIndex" json:"reference_id"`
	FormKind      string         `gorm:"size:32;index;not null" json:"form_kind"`
	Status        string         `gorm:"size:16;index;not null" json:"status"`
	Provider      string         `gorm:"size:32;not null" json:"provider"`
	TemplateID    string         `gorm:"size:128" json:"template_id"`
	MaskedEmail   string         `gorm:"size:160" json:"masked_email"`
	ServiceLabel  string         `gorm:"size:255" json:"service_label"`
	Variables     datatypes.JSON `json:"variables"`
	FailureDetail string         `gorm:"type:text" json:"failure_detail"`
	InstanceID    string         `gorm:"size:128" json:"instance_id"`
	CorrelationID string         `gorm:"size:128" json:"correlation_id"`
	DurationMs    int64          `json:"duration_ms"`
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`
}
