package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type correlationIDKey struct{}

const maxFormInstanceLength = 128

// CorrelationID ensures every request carries a correlation identifier, echoed in the response.
func CorrelationID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		incoming := strings.TrimSpace(c.Get("X-Correlation-ID"))
		if incoming == "" {
			incoming = strings.TrimSpace(c.Get("X-Request-ID"))
		}
		if incoming == "" {
			incoming = uuid.NewString()
		}

		c.Locals("correlation_id", incoming)
		c.Set("X-Correlation-ID", incoming)
		c.SetUserContext(context.WithValue(c.UserContext(), correlationIDKey{}, incoming))

		return c.Next()
	}
}

// CorrelationIDFromContext extracts the correlation identifier from context, if present.
func CorrelationIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(correlationIDKey{}).(string)
	return id
}

// GetCorrelationID returns the correlation identifier bound to the active request.
func GetCorrelationID(c *fiber.Ctx) string {
	if c == nil {
		return ""
	}
	if id, ok := c.Locals("correlation_id").(string); ok {
		return id
	}
	return CorrelationIDFromContext(c.UserContext())
}

// FormInstanceID identifies the form instance behind a submission. Only the X-Form-Instance header
// ties requests together; without it every request gets its own id derived from the client IP and
// the request's correlation id.
func FormInstanceID(c *fiber.Ctx) string {
	instance := strings.TrimSpace(c.Get(FormInstanceHeader))
	if len(instance) > maxFormInstanceLength {
		instance = instance[:maxFormInstanceLength]
	}
	if instance != "" {
		return instance
	}

	requestID := GetCorrelationID(c)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	return "ip:" + c.IP() + ":" + requestID
}
