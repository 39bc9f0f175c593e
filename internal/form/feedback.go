package form

import "time"

// Outcome classifies the result of a dispatch.
type Outcome string

const (
	OutcomeDelivered Outcome = "delivered"
	OutcomeFailed    Outcome = "failed"
)

// DefaultNotificationDuration is the auto-dismiss delay used when none is configured.
const DefaultNotificationDuration = 5 * time.Second

// Notification is a transient, dismissable message describing a dispatch outcome.
type Notification struct {
	Outcome     Outcome
	Title       string
	Description string
	Duration    time.Duration
}

// Presenter renders dispatch outcomes as notifications. It holds no state besides the
// auto-dismiss duration.
type Presenter struct {
	duration time.Duration
}

// NewPresenter creates a presenter whose notifications hide after duration.
func NewPresenter(duration time.Duration) Presenter {
	if duration <= 0 {
		duration = DefaultNotificationDuration
	}
	return Presenter{duration: duration}
}

// Delivered builds the positive notification for kind.
func (p Presenter) Delivered(kind Kind) Notification {
	notification := Notification{Outcome: OutcomeDelivered, Duration: p.duration}
	switch kind {
	case KindServiceRequest:
		notification.Title = "Request Submitted Successfully"
		notification.Description = "We'll get back to you shortly."
	default:
		notification.Title = "Message Sent Successfully!"
		notification.Description = "We'll get back to you within 24 hours."
	}
	return notification
}

// Failed builds the generic negative notification. Failure details are never included.
func (p Presenter) Failed(Kind) Notification {
	return Notification{
		Outcome:     OutcomeFailed,
		Title:       "Submission Failed",
		Description: "Something went wrong. Please try again later.",
		Duration:    p.duration,
	}
}
