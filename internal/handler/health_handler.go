package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/craviont/craviont-site-api/internal/utils"
)

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status       string            `json:"status"`
	Timestamp    time.Time         `json:"timestamp"`
	Service      string            `json:"service"`
	Environment  string            `json:"environment"`
	Provider     string            `json:"provider"`
	Dependencies map[string]string `json:"dependencies,omitempty"`
}

// HealthInfo describes the running service.
type HealthInfo struct {
	Service     string
	Environment string
	Provider    string
}

// DependencyCheck checks one backing dependency.
type DependencyCheck func(ctx context.Context) error

// HealthCheck reports service health. A failing check marks the service degraded; the status code
// stays 200.
func HealthCheck(info HealthInfo, checks map[string]DependencyCheck) fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := HealthResponse{
			Status:      "ok",
			Timestamp:   time.Now().UTC(),
			Service:     info.Service,
			Environment: info.Environment,
			Provider:    info.Provider,
		}

		if len(checks) > 0 {
			ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
			defer cancel()

			payload.Dependencies = make(map[string]string, len(checks))
			for name, check := range checks {
				if err := check(ctx); err != nil {
					payload.Dependencies[name] = "unavailable"
					payload.Status = "degraded"
					continue
				}
				payload.Dependencies[name] = "ok"
			}
		}

		return utils.SendSuccess(c, "service healthy", payload)
	}
}
