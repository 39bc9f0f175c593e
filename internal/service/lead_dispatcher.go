package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/mrz1836/postmark"
	"github.com/rs/zerolog"
)

// ErrDispatcherNotConfigured indicates missing provider credentials or template identifiers.
var ErrDispatcherNotConfigured = errors.New("email dispatcher is not configured")

// Dispatcher delivers template variables to an email provider. One call performs at most one
// provider request.
type Dispatcher interface {
	Send(ctx context.Context, templateID string, variables map[string]string) error
}

// LogDispatcher is a development provider that logs dispatches and reports success.
type LogDispatcher struct {
	logger zerolog.Logger
}

// NewLogDispatcher constructs a logging provider.
func NewLogDispatcher(logger zerolog.Logger) *LogDispatcher {
	return &LogDispatcher{logger: logger.With().Str("component", "log_dispatcher").Logger()}
}

// Send logs the template and variable names and returns nil.
func (l *LogDispatcher) Send(_ context.Context, templateID string, variables map[string]string) error {
	l.logger.Info().
		Str("template_id", templateID).
		Strs("variables", sortedKeys(variables)).
		Msg("lead dispatched to log provider")
	return nil
}

// PostmarkConfig configures the Postmark template dispatcher.
type PostmarkConfig struct {
	ServerToken  string
	AccountToken string
	From         string
	To           string
	// BaseURL overrides the Postmark API endpoint.
	BaseURL string
}

// PostmarkDispatcher sends template emails through Postmark.
type PostmarkDispatcher struct {
	client *postmark.Client
	cfg    PostmarkConfig
}

// NewPostmarkDispatcher constructs a Postmark-backed dispatcher.
func NewPostmarkDispatcher(cfg PostmarkConfig) *PostmarkDispatcher {
	client := postmark.NewClient(cfg.ServerToken, cfg.AccountToken)
	if cfg.BaseURL != "" {
		client.BaseURL = cfg.BaseURL
	}
	return &PostmarkDispatcher{client: client, cfg: cfg}
}

// Send renders the template identified by templateID, either a numeric template id or an alias.
func (d *PostmarkDispatcher) Send(ctx context.Context, templateID string, variables map[string]string) error {
	if d.cfg.ServerToken == "" || d.cfg.From == "" || d.cfg.To == "" || templateID == "" {
		return ErrDispatcherNotConfigured
	}

	model := make(map[string]interface{}, len(variables))
	for key, value := range variables {
		model[key] = value
	}

	email := postmark.TemplatedEmail{
		From:          d.cfg.From,
		To:            d.cfg.To,
		ReplyTo:       variables["email"],
		Tag:           "lead",
		TemplateModel: model,
	}
	if id, err := strconv.ParseInt(templateID, 10, 64); err == nil {
		email.TemplateID = id
	} else {
		email.TemplateAlias = templateID
	}

	resp, err := d.client.SendTemplatedEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("postmark send: %w", err)
	}
	if resp.ErrorCode > 0 {
		return fmt.Errorf("postmark error: %d - %s", resp.ErrorCode, resp.Message)
	}
	return nil
}
