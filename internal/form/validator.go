package form

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("form validation failed")

// ErrorMap maps a field name to a human readable message.
type ErrorMap map[string]string

// Fields returns the failing field names in sorted order.
func (m ErrorMap) Fields() []string {
	fields := make([]string, 0, len(m))
	for field := range m {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

// ValidationError carries the per-field messages of a rejected submission.
type ValidationError struct {
	Fields ErrorMap
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("form validation failed: %s", strings.Join(e.Fields.Fields(), ", "))
}

// Is makes errors.Is(err, ErrValidation) succeed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

type contactInput struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required,min=10"`
	Company  string `json:"company"`
	Currency string `json:"currency"`
	Budget   string `json:"budget"`
	Message  string `json:"message" validate:"required"`
}

type serviceRequestInput struct {
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,min=10"`
	Requirement string `json:"requirement" validate:"required"`
	Service     string `json:"service"`
}

// Email and phone messages are worded per form.
var (
	contactMessages = map[string]string{
		FieldFullName: "Name is required",
		FieldEmail:    "Please enter a valid email address",
		FieldPhone:    "Please enter a valid phone number",
		FieldMessage:  "Message is required",
	}
	serviceRequestMessages = map[string]string{
		FieldName:        "Name is required",
		FieldEmail:       "Invalid email address",
		FieldPhone:       "Valid contact number is required",
		FieldRequirement: "Requirement is required",
	}
)

// Validator applies the declarative rule set of each form variant.
type Validator struct {
	validate *validator.Validate
}

// NewValidator builds a validator reporting errors by JSON field name.
func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: validate}
}

// Validate dispatches to the rule set of kind. Exactly one of the results is non-nil/non-zero:
// either a normalized record or an error map covering every failing field.
func (v *Validator) Validate(kind Kind, values Values) (Record, ErrorMap) {
	switch kind {
	case KindContact:
		return v.ValidateContact(values)
	case KindServiceRequest:
		return v.ValidateServiceRequest(values)
	default:
		return Record{}, ErrorMap{"form": fmt.Sprintf("unknown form kind %q", kind)}
	}
}

// ValidateContact checks the general contact form.
func (v *Validator) ValidateContact(values Values) (Record, ErrorMap) {
	input := contactInput{
		FullName: values[FieldFullName],
		Email:    values[FieldEmail],
		Phone:    values[FieldPhone],
		Company:  values[FieldCompany],
		Currency: values[FieldCurrency],
		Budget:   values[FieldBudget],
		Message:  values[FieldMessage],
	}
	if input.Currency == "" {
		input.Currency = DefaultCurrency
	}

	if errs := v.check(&input, contactMessages); len(errs) > 0 {
		return Record{}, errs
	}

	return Record{
		Kind: KindContact,
		fields: Values{
			FieldFullName: input.FullName,
			FieldEmail:    input.Email,
			FieldPhone:    input.Phone,
			FieldCompany:  input.Company,
			FieldCurrency: input.Currency,
			FieldBudget:   input.Budget,
			FieldMessage:  input.Message,
		},
	}, nil
}

// ValidateServiceRequest checks the per-service inquiry form. The service label is carried
// through without validation.
func (v *Validator) ValidateServiceRequest(values Values) (Record, ErrorMap) {
	input := serviceRequestInput{
		Name:        values[FieldName],
		Email:       values[FieldEmail],
		Phone:       values[FieldPhone],
		Requirement: values[FieldRequirement],
		Service:     values[FieldService],
	}

	if errs := v.check(&input, serviceRequestMessages); len(errs) > 0 {
		return Record{}, errs
	}

	return Record{
		Kind: KindServiceRequest,
		fields: Values{
			FieldName:        input.Name,
			FieldEmail:       input.Email,
			FieldPhone:       input.Phone,
			FieldRequirement: input.Requirement,
			FieldService:     input.Service,
		},
	}, nil
}

func (v *Validator) check(input interface{}, messages map[string]string) ErrorMap {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return ErrorMap{"form": err.Error()}
	}

	errs := make(ErrorMap, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		field := fieldErr.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		message, ok := messages[field]
		if !ok {
			message = fmt.Sprintf("%s is invalid", field)
		}
		errs[field] = message
	}
	return errs
}
