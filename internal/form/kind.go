package form

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownKind is returned for a form kind the API does not serve.
var ErrUnknownKind = errors.New("unknown form kind")

// Kind identifies a lead-capture form variant.
type Kind string

const (
	// KindContact is the general contact form.
	KindContact Kind = "contact"
	// KindServiceRequest is the per-service inquiry form.
	KindServiceRequest Kind = "service_request"
)

// DefaultCurrency is applied to the contact form when no currency is selected.
const DefaultCurrency = "USD"

// Field names as they appear in request payloads and error maps.
const (
	FieldFullName    = "fullName"
	FieldName        = "name"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldCompany     = "company"
	FieldCurrency    = "currency"
	FieldBudget      = "budget"
	FieldMessage     = "message"
	FieldRequirement = "requirement"
	FieldService     = "service"
)

var kindFields = map[Kind][]string{
	KindContact:        {FieldFullName, FieldEmail, FieldPhone, FieldCompany, FieldCurrency, FieldBudget, FieldMessage},
	KindServiceRequest: {FieldName, FieldEmail, FieldPhone, FieldRequirement, FieldService},
}

// ParseKind resolves a kind from its external representation. Both "service_request" and
// "service-request" are accepted for the inquiry form.
func ParseKind(value string) (Kind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(value)), "-", "_")
	kind := Kind(normalized)
	if !kind.Valid() {
		return "", fmt.Errorf("%w %q", ErrUnknownKind, value)
	}
	return kind, nil
}

// Valid reports whether k is a known form variant.
func (k Kind) Valid() bool {
	_, ok := kindFields[k]
	return ok
}

// Fields lists the fields collected by the form, in display order.
func (k Kind) Fields() []string {
	fields := kindFields[k]
	out := make([]string, len(fields))
	copy(out, fields)
	return out
}

// Defaults returns the initial collector state of the form.
func (k Kind) Defaults() Values {
	values := make(Values, len(kindFields[k]))
	for _, field := range kindFields[k] {
		values[field] = ""
	}
	if k == KindContact {
		values[FieldCurrency] = DefaultCurrency
	}
	return values
}

// SubmitLabel is the label of the submit control in its idle state.
func (k Kind) SubmitLabel() string {
	if k == KindServiceRequest {
		return "Submit Request"
	}
	return "Send Message"
}

// Values holds the raw field values of a form keyed by field name.
type Values map[string]string

// Clone returns an independent copy of v.
func (v Values) Clone() Values {
	if v == nil {
		return nil
	}
	out := make(Values, len(v))
	for key, value := range v {
		out[key] = value
	}
	return out
}
