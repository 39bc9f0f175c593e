package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "Craviont Site API", cfg.AppName)
	require.Equal(t, ":8080", cfg.HTTPAddress())
	require.Equal(t, ProviderEmailJS, cfg.DispatchProvider)
	require.Equal(t, "https://api.emailjs.com/api/v1.0/email/send", cfg.EmailJSEndpoint)
	require.Equal(t, 2*time.Minute, cfg.InflightTTL)
	require.Equal(t, 5*time.Second, cfg.NotificationDuration)
	require.Equal(t, 5, cfg.SubmissionRateLimit)
	require.Equal(t, time.Minute, cfg.SubmissionRateLimitWindow)
	require.Empty(t, cfg.EmailJSServiceID)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("CRAVIONT_APP_PORT", ":9090")
	t.Setenv("CRAVIONT_DISPATCH_PROVIDER", "Postmark")
	t.Setenv("CRAVIONT_TEMPLATE_CONTACT", "template_contact_us")
	t.Setenv("CRAVIONT_TEMPLATE_SERVICE_REQUEST", "template_service")
	t.Setenv("CRAVIONT_EMAILJS_SERVICE_ID", "service_123")
	t.Setenv("CRAVIONT_EMAILJS_PUBLIC_KEY", "public-key")
	t.Setenv("CRAVIONT_NOTIFICATION_DURATION", "8s")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.HTTPAddress())
	require.Equal(t, ProviderPostmark, cfg.DispatchProvider)
	require.Equal(t, "template_contact_us", cfg.TemplateFor("contact"))
	require.Equal(t, "template_service", cfg.TemplateFor("service_request"))
	require.Empty(t, cfg.TemplateFor("newsletter"))
	require.Equal(t, "service_123", cfg.EmailJSServiceID)
	require.Equal(t, "public-key", cfg.EmailJSPublicKey)
	require.Equal(t, 8*time.Second, cfg.NotificationDuration)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Run("duration", func(t *testing.T) {
		t.Setenv("CRAVIONT_DISPATCH_INFLIGHT_TTL", "soon")
		_, err := Load()
		require.ErrorContains(t, err, "dispatch.inflight_ttl")
	})

	t.Run("provider", func(t *testing.T) {
		t.Setenv("CRAVIONT_DISPATCH_PROVIDER", "carrier-pigeon")
		_, err := Load()
		require.ErrorContains(t, err, "unsupported dispatch provider")
	})
}
