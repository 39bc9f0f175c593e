package dto

import (
	"encoding/json"
	"time"

	"github.com/craviont/craviont-site-api/internal/form"
	"github.com/craviont/craviont-site-api/internal/models"
)

// ContactRequest is the payload of the general contact form.
type ContactRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Currency string `json:"currency"`
	Budget   string `json:"budget"`
	Message  string `json:"message"`
}

// Values converts the payload into collector values. Absent fields stay at their defaults.
func (r ContactRequest) Values() form.Values {
	values := form.Values{
		form.FieldFullName: r.FullName,
		form.FieldEmail:    r.Email,
		form.FieldPhone:    r.Phone,
		form.FieldCompany:  r.Company,
		form.FieldBudget:   r.Budget,
		form.FieldMessage:  r.Message,
	}
	if r.Currency != "" {
		values[form.FieldCurrency] = r.Currency
	}
	return values
}

// ServiceRequest is the payload of the per-service inquiry form.
type ServiceRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Requirement string `json:"requirement"`
	Service     string `json:"service"`
}

// Values converts the payload into collector values.
func (r ServiceRequest) Values() form.Values {
	return form.Values{
		form.FieldName:        r.Name,
		form.FieldEmail:       r.Email,
		form.FieldPhone:       r.Phone,
		form.FieldRequirement: r.Requirement,
		form.FieldService:     r.Service,
	}
}

// NotificationResponse is the transient toast shown after a dispatch.
type NotificationResponse struct {
	Variant     string `json:"variant"`
	Title       string `json:"title"`
	Description string `json:"description"`
	DurationMs  int64  `json:"duration_ms"`
}

// NewNotificationResponse converts a presenter notification into its wire form.
func NewNotificationResponse(n form.Notification) *NotificationResponse {
	if n.Title == "" {
		return nil
	}
	variant := "default"
	if n.Outcome == form.OutcomeFailed {
		variant = "destructive"
	}
	return &NotificationResponse{
		Variant:     variant,
		Title:       n.Title,
		Description: n.Description,
		DurationMs:  n.Duration.Milliseconds(),
	}
}

// LeadSubmissionResponse reports the collector state after a submission attempt.
type LeadSubmissionResponse struct {
	ReferenceID  string                `json:"reference_id,omitempty"`
	Status       string                `json:"status"`
	Reset        bool                  `json:"reset"`
	Values       map[string]string     `json:"values"`
	Errors       map[string]string     `json:"errors,omitempty"`
	Notification *NotificationResponse `json:"notification,omitempty"`
}

// FormDefaultsResponse describes the initial collector state of a form.
type FormDefaultsResponse struct {
	Kind        string            `json:"kind"`
	Fields      []string          `json:"fields"`
	Values      map[string]string `json:"values"`
	SubmitLabel string            `json:"submit_label"`
}

// ServiceCategoryResponse describes a service category in the catalog.
type ServiceCategoryResponse struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	SubServices []string `json:"sub_services"`
}

// FAQResponse is a single question/answer pair.
type FAQResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FAQListResponse is the FAQ list, collapsed to a preview unless all entries were requested.
type FAQListResponse struct {
	Items   []FAQResponse `json:"items"`
	Total   int           `json:"total"`
	HasMore bool          `json:"has_more"`
}

// CurrencyResponse is a selectable budget currency.
type CurrencyResponse struct {
	Code    string `json:"code"`
	Symbol  string `json:"symbol"`
	Default bool   `json:"default"`
}

// DispatchLogQuery filters the operator dispatch log.
type DispatchLogQuery struct {
	Status   string
	FormKind string
	Page     int
	PageSize int
}

// DispatchLogResponse is a dispatch outcome as shown to operators.
type DispatchLogResponse struct {
	ID            uint      `json:"id"`
	ReferenceID   string    `json:"reference_id"`
	FormKind      string    `json:"form_kind"`
	Status        string    `json:"status"`
	Provider      string    `json:"provider"`
	TemplateID    string    `json:"template_id"`
	MaskedEmail   string    `json:"masked_email"`
	ServiceLabel  string    `json:"service_label,omitempty"`
	Variables     []string  `json:"variables"`
	FailureDetail string    `json:"failure_detail,omitempty"`
	InstanceID    string    `json:"instance_id"`
	CorrelationID string    `json:"correlation_id,omitempty"`
	DurationMs    int64     `json:"duration_ms"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewDispatchLogResponse converts a dispatch log row into its DTO.
func NewDispatchLogResponse(entry models.DispatchLog) DispatchLogResponse {
	variables := []string{}
	if len(entry.Variables) > 0 {
		_ = json.Unmarshal(entry.Variables, &variables)
	}
	return DispatchLogResponse{
		ID:            entry.ID,
		ReferenceID:   entry.ReferenceID,
		FormKind:      entry.FormKind,
		Status:        entry.Status,
		Provider:      entry.Provider,
		TemplateID:    entry.TemplateID,
		MaskedEmail:   entry.MaskedEmail,
		ServiceLabel:  entry.ServiceLabel,
		Variables:     variables,
		FailureDetail: entry.FailureDetail,
		InstanceID:    entry.InstanceID,
		CorrelationID: entry.CorrelationID,
		DurationMs:    entry.DurationMs,
		CreatedAt:     entry.CreatedAt,
	}
}

// NewDispatchLogResponseSlice converts a slice of rows into DTOs.
func NewDispatchLogResponseSlice(entries []models.DispatchLog) []DispatchLogResponse {
	out := make([]DispatchLogResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, NewDispatchLogResponse(entry))
	}
	return out
}
