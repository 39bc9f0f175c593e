package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrSubmissionInFlight is returned when a submit is triggered while a dispatch is pending.
	ErrSubmissionInFlight = errors.New("form submission already in flight")
	// ErrDispatchFailed wraps any failure returned by the send function.
	ErrDispatchFailed = errors.New("form dispatch failed")
)

// SubmittingLabel replaces the submit label while a dispatch is pending.
const SubmittingLabel = "Sending..."

// SendFunc delivers a validated record.
type SendFunc func(ctx context.Context, record Record) error

// Session is the collector state of one form instance. All mutation goes through its methods.
type Session struct {
	kind      Kind
	validator *Validator
	presenter Presenter

	mu         sync.Mutex
	values     Values
	errors     ErrorMap
	submitting bool
}

// NewSession creates a session holding the form's initial defaults.
func NewSession(kind Kind, validator *Validator, presenter Presenter) *Session {
	return &Session{
		kind:      kind,
		validator: validator,
		presenter: presenter,
		values:    kind.Defaults(),
	}
}

// Kind returns the form variant of the session.
func (s *Session) Kind() Kind {
	return s.kind
}

// Set records a single field value.
func (s *Session) Set(field, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[field] = value
}

// Fill records every value in values, leaving other fields untouched.
func (s *Session) Fill(values Values) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for field, value := range values {
		s.values[field] = value
	}
}

// Values returns a copy of the current field values.
func (s *Session) Values() Values {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values.Clone()
}

// Errors returns the error map of the last validation pass.
func (s *Session) Errors() ErrorMap {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.errors == nil {
		return nil
	}
	out := make(ErrorMap, len(s.errors))
	for field, message := range s.errors {
		out[field] = message
	}
	return out
}

// Submitting reports whether a dispatch is pending; the submit control is disabled meanwhile.
func (s *Session) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// SubmitLabel returns the label the submit control should show.
func (s *Session) SubmitLabel() string {
	if s.Submitting() {
		return SubmittingLabel
	}
	return s.kind.SubmitLabel()
}

// Reset restores the initial defaults and clears errors.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values = s.kind.Defaults()
	s.errors = nil
}

// Submit validates the current values and, when they pass, hands the record to send.
//
// A rejected submission returns a *ValidationError and never calls send. A failed send keeps the
// entered values and returns the failure notification with an error wrapping ErrDispatchFailed.
// A successful send resets the session to its defaults. While send is running, further calls on the
// same session return ErrSubmissionInFlight. A session only spans the requests that share it; the HTTP
// API builds one per request and relies on the service's in-flight guard across requests.
func (s *Session) Submit(ctx context.Context, send SendFunc) (Notification, error) {
	s.mu.Lock()
	if s.submitting {
		s.mu.Unlock()
		return Notification{}, ErrSubmissionInFlight
	}

	record, errs := s.validator.Validate(s.kind, s.values)
	s.errors = errs
	if len(errs) > 0 {
		s.mu.Unlock()
		return Notification{}, &ValidationError{Fields: errs}
	}
	s.submitting = true
	s.mu.Unlock()

	err := send(ctx, record)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
	if err != nil {
		return s.presenter.Failed(s.kind), fmt.Errorf("%w: %w", ErrDispatchFailed, err)
	}

	s.values = s.kind.Defaults()
	s.errors = nil
	return s.presenter.Delivered(s.kind), nil
}
