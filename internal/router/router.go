package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/craviont/craviont-site-api/internal/config"
	"github.com/craviont/craviont-site-api/internal/handler"
	"github.com/craviont/craviont-site-api/internal/middleware"
	"github.com/craviont/craviont-site-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	ContactHandler        *handler.LeadHandler
	ServiceRequestHandler *handler.LeadHandler
	FormHandler           *handler.FormHandler
	ContentHandler        *handler.ContentHandler
	AdminDispatchHandler  *handler.AdminDispatchHandler
	DependencyChecks      map[string]handler.DependencyCheck
	JWTMiddleware         fiber.Handler
	SubmissionRateLimit   fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	app.Get("/metrics", observability.MetricsHandler())

	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(handler.HealthInfo{
		Service:     cfg.AppName,
		Environment: cfg.AppEnv,
		Provider:    cfg.DispatchProvider,
	}, deps.DependencyChecks))

	rateLimit := deps.SubmissionRateLimit
	if rateLimit == nil {
		rateLimit = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.ContactHandler != nil {
		deps.ContactHandler.Register(api.Group("/contact", rateLimit))
	}
	if deps.ServiceRequestHandler != nil {
		deps.ServiceRequestHandler.Register(api.Group("/service-requests", rateLimit))
	}
	if deps.FormHandler != nil {
		deps.FormHandler.Register(api.Group("/forms"))
	}
	if deps.ContentHandler != nil {
		deps.ContentHandler.Register(api.Group("/content"))
	}

	if deps.AdminDispatchHandler != nil {
		jwtMiddleware := deps.JWTMiddleware
		if jwtMiddleware == nil {
			jwtMiddleware = middleware.JWTProtected(cfg.JWTSecret)
		}
		admin := api.Group("/admin", jwtMiddleware, middleware.RequireRole(middleware.RoleAdmin))
		deps.AdminDispatchHandler.Register(admin.Group("/dispatches"))
	}
}
