package router_test

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/craviont/craviont-site-api/internal/config"
	"github.com/craviont/craviont-site-api/internal/form"
	"github.com/craviont/craviont-site-api/internal/handler"
	"github.com/craviont/craviont-site-api/internal/middleware"
	"github.com/craviont/craviont-site-api/internal/router"
	"github.com/craviont/craviont-site-api/internal/schema"
	"github.com/craviont/craviont-site-api/internal/service"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	logger := zerolog.New(io.Discard)
	cfg := config.Config{AppName: "Craviont Site API", AppEnv: "test", DispatchProvider: config.ProviderLog, JWTSecret: "secret"}

	checker, err := schema.NewPayloadChecker()
	require.NoError(t, err)
	leads := service.NewLeadService(form.NewValidator(), service.NewLogDispatcher(logger), nil, nil, nil, service.LeadServiceConfig{
		Provider:             config.ProviderLog,
		NotificationDuration: 5 * time.Second,
	}, logger)

	app := fiber.New()
	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		ContactHandler:        handler.NewLeadHandler(form.KindContact, leads, checker, logger),
		ServiceRequestHandler: handler.NewLeadHandler(form.KindServiceRequest, leads, checker, logger),
		FormHandler:           handler.NewFormHandler(),
		ContentHandler:        handler.NewContentHandler(service.NewContentService(), logger),
		AdminDispatchHandler:  handler.NewAdminDispatchHandler(nil, logger),
		SubmissionRateLimit:   middleware.RateLimit("forms", 100, time.Minute),
	})
	return app
}

func TestRouterServesPublicRoutes(t *testing.T) {
	app := newTestApp(t)

	for _, path := range []string{
		"/api/v1/health",
		"/api/v1/content/services",
		"/api/v1/content/faqs",
		"/api/v1/content/currencies",
		"/api/v1/forms/contact/defaults",
		"/metrics",
	} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, path)
	}
}

func TestRouterSubmitsContactForm(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact", bytes.NewReader([]byte(
		`{"fullName":"Alex Rivera","email":"alex@company.com","phone":"9199999999","message":"Need a site"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.NotEmpty(t, resp.Header.Get("X-Correlation-ID"))
}

func TestRouterProtectsAdminRoutes(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/v1/admin/dispatches", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
