package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Dispatch providers understood by the API.
const (
	ProviderEmailJS  = "emailjs"
	ProviderPostmark = "postmark"
	ProviderLog      = "log"
)

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName        string
	AppEnv         string
	AppPort        string
	AllowedOrigins string

	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	DatabaseURL string
	RedisURL    string
	NATSURL     string
	EventPrefix string
	JWTSecret   string

	DispatchProvider          string
	ContactTemplateID         string
	ServiceRequestTemplateID  string
	EmailJSServiceID          string
	EmailJSPublicKey          string
	EmailJSPrivateKey         string
	EmailJSEndpoint           string
	PostmarkServerToken       string
	PostmarkAccountToken      string
	PostmarkFrom              string
	PostmarkTo                string
	InflightTTL               time.Duration
	NotificationDuration      time.Duration
	SubmissionRateLimit       int
	SubmissionRateLimitWindow time.Duration
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// TemplateFor returns the provider template configured for a form kind.
func (c Config) TemplateFor(kind string) string {
	switch kind {
	case "contact":
		return c.ContactTemplateID
	case "service_request":
		return c.ServiceRequestTemplateID
	default:
		return ""
	}
}

// Load reads configuration values from environment variables and optional .env file.
//
// Provider credentials are not required here; a submission made without them fails at dispatch time.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("CRAVIONT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Craviont Site API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.allowed_origins", "*")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.max_size_mb", 50)
	v.SetDefault("log.max_backups", 5)
	v.SetDefault("log.max_age_days", 28)
	v.SetDefault("database.url", "file:craviont.db")
	v.SetDefault("event.prefix", "craviont")
	v.SetDefault("dispatch.provider", ProviderEmailJS)
	v.SetDefault("emailjs.endpoint", "https://api.emailjs.com/api/v1.0/email/send")
	v.SetDefault("dispatch.inflight_ttl", "2m")
	v.SetDefault("notification.duration", "5s")
	v.SetDefault("rate_limit.max", 5)
	v.SetDefault("rate_limit.window", "1m")

	inflightTTL, err := parseDuration(v, "dispatch.inflight_ttl")
	if err != nil {
		return Config{}, err
	}
	notificationDuration, err := parseDuration(v, "notification.duration")
	if err != nil {
		return Config{}, err
	}
	rateWindow, err := parseDuration(v, "rate_limit.window")
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		AppName:                   v.GetString("app.name"),
		AppEnv:                    v.GetString("app.env"),
		AppPort:                   v.GetString("app.port"),
		AllowedOrigins:            v.GetString("app.allowed_origins"),
		LogLevel:                  strings.ToLower(v.GetString("log.level")),
		LogFile:                   v.GetString("log.file"),
		LogMaxSizeMB:              v.GetInt("log.max_size_mb"),
		LogMaxBackups:             v.GetInt("log.max_backups"),
		LogMaxAgeDays:             v.GetInt("log.max_age_days"),
		DatabaseURL:               v.GetString("database.url"),
		RedisURL:                  v.GetString("redis.url"),
		NATSURL:                   v.GetString("nats.url"),
		EventPrefix:               v.GetString("event.prefix"),
		JWTSecret:                 v.GetString("jwt.secret"),
		DispatchProvider:          strings.ToLower(v.GetString("dispatch.provider")),
		ContactTemplateID:         v.GetString("template.contact"),
		ServiceRequestTemplateID:  v.GetString("template.service_request"),
		EmailJSServiceID:          v.GetString("emailjs.service_id"),
		EmailJSPublicKey:          v.GetString("emailjs.public_key"),
		EmailJSPrivateKey:         v.GetString("emailjs.private_key"),
		EmailJSEndpoint:           v.GetString("emailjs.endpoint"),
		PostmarkServerToken:       v.GetString("postmark.server_token"),
		PostmarkAccountToken:      v.GetString("postmark.account_token"),
		PostmarkFrom:              v.GetString("postmark.from"),
		PostmarkTo:                v.GetString("postmark.to"),
		InflightTTL:               inflightTTL,
		NotificationDuration:      notificationDuration,
		SubmissionRateLimit:       v.GetInt("rate_limit.max"),
		SubmissionRateLimitWindow: rateWindow,
	}

	switch cfg.DispatchProvider {
	case ProviderEmailJS, ProviderPostmark, ProviderLog:
	default:
		return Config{}, fmt.Errorf("unsupported dispatch provider %q", cfg.DispatchProvider)
	}

	if cfg.SubmissionRateLimit <= 0 {
		cfg.SubmissionRateLimit = 5
	}

	return cfg, nil
}

func parseDuration(v *viper.Viper, key string) (time.Duration, error) {
	raw := v.GetString(key)
	duration, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return duration, nil
}
