package emailjs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultEndpoint is the EmailJS REST send endpoint.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

const maxErrorBody = 4 * 1024

var (
	// ErrMissingCredentials is returned when the service id, public key or template id is empty.
	ErrMissingCredentials = errors.New("emailjs credentials are not configured")
	// ErrRejected is returned when EmailJS answers with a non-2xx status.
	ErrRejected = errors.New("emailjs rejected the request")
)

var sendResponses = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "craviont",
	Subsystem: "emailjs",
	Name:      "responses_total",
	Help:      "EmailJS send responses grouped by HTTP status.",
}, []string{"status"})

// Config configures the EmailJS client.
type Config struct {
	Endpoint   string
	ServiceID  string
	PublicKey  string
	PrivateKey string
	HTTPClient *http.Client
}

// Client sends template emails through the EmailJS REST API.
type Client struct {
	cfg    Config
	http   *http.Client
	tracer trace.Tracer
}

type sendRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	AccessToken    string            `json:"accessToken,omitempty"`
	TemplateParams map[string]string `json:"template_params"`
}

// New constructs a client. Missing credentials are reported by Send rather than here.
func New(cfg Config) *Client {
	if cfg.Endpoint == "" {
		cfg.Endpoint = DefaultEndpoint
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	return &Client{
		cfg:    cfg,
		http:   httpClient,
		tracer: otel.Tracer("github.com/craviont/craviont-site-api/pkg/emailjs"),
	}
}

// Send renders templateID with params. It performs exactly one HTTP request and treats any
// 2xx answer as delivered; the response body is only read to describe failures.
func (c *Client) Send(ctx context.Context, templateID string, params map[string]string) error {
	ctx, span := c.tracer.Start(ctx, "emailjs.send", trace.WithAttributes(
		attribute.String("emailjs.template_id", templateID),
	))
	defer span.End()

	if c.cfg.ServiceID == "" || c.cfg.PublicKey == "" || templateID == "" {
		span.SetStatus(codes.Error, "missing credentials")
		return ErrMissingCredentials
	}

	payload, err := json.Marshal(sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     templateID,
		UserID:         c.cfg.PublicKey,
		AccessToken:    c.cfg.PrivateKey,
		TemplateParams: params,
	})
	if err != nil {
		return fmt.Errorf("encode emailjs payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build emailjs request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		sendResponses.WithLabelValues("transport_error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, "transport error")
		return fmt.Errorf("emailjs send: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	sendResponses.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()
	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		err := fmt.Errorf("%w: status %d: %s", ErrRejected, resp.StatusCode, strings.TrimSpace(string(body)))
		span.RecordError(err)
		span.SetStatus(codes.Error, "rejected")
		return err
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	span.SetStatus(codes.Ok, "sent")
	return nil
}
