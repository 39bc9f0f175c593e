package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
)

// LeadEvent announces a delivered lead. It never carries the submitted field values.
type LeadEvent struct {
	ReferenceID string    `json:"reference_id"`
	Kind        string    `json:"kind"`
	Service     string    `json:"service,omitempty"`
	MaskedEmail string    `json:"masked_email"`
	DeliveredAt time.Time `json:"delivered_at"`
}

// LeadEventPublisher broadcasts lead events to downstream consumers.
type LeadEventPublisher interface {
	PublishDelivered(ctx context.Context, event LeadEvent) error
}

type natsLeadPublisher struct {
	conn    *nats.Conn
	subject string
}

// NewNATSLeadPublisher publishes on "<prefix>.leads.delivered".
func NewNATSLeadPublisher(conn *nats.Conn, prefix string) LeadEventPublisher {
	prefix = strings.Trim(strings.ReplaceAll(prefix, ":", "."), ".")
	if prefix == "" {
		prefix = "craviont"
	}
	return &natsLeadPublisher{conn: conn, subject: prefix + ".leads.delivered"}
}

func (p *natsLeadPublisher) PublishDelivered(_ context.Context, event LeadEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := p.conn.Publish(p.subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", p.subject, err)
	}
	return nil
}
