package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/craviont/craviont-site-api/internal/config"
	"github.com/craviont/craviont-site-api/internal/database"
	"github.com/craviont/craviont-site-api/internal/form"
	"github.com/craviont/craviont-site-api/internal/handler"
	"github.com/craviont/craviont-site-api/internal/logging"
	"github.com/craviont/craviont-site-api/internal/middleware"
	"github.com/craviont/craviont-site-api/internal/models"
	"github.com/craviont/craviont-site-api/internal/repository"
	"github.com/craviont/craviont-site-api/internal/router"
	"github.com/craviont/craviont-site-api/internal/schema"
	"github.com/craviont/craviont-site-api/internal/service"
	"github.com/craviont/craviont-site-api/pkg/emailjs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger, logCloser, err := logging.New(logging.Config{
		Level:      cfg.LogLevel,
		File:       cfg.LogFile,
		MaxSizeMB:  cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAgeDays: cfg.LogMaxAgeDays,
	}, os.Stdout)
	if err != nil {
		log.Fatalf("failed to configure logging: %v", err)
	}
	defer logCloser.Close()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := db.AutoMigrate(&models.DispatchLog{}); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database")
	}

	checks := map[string]handler.DependencyCheck{"database": databaseCheck(db)}

	var guard service.InflightGuard
	if cfg.RedisURL != "" {
		redisClient, err := database.ConnectRedis(context.Background(), cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to redis")
		}
		defer redisClient.Close()
		guard = service.NewRedisInflightGuard(redisClient, cfg.InflightTTL)
		checks["redis"] = redisCheck(redisClient)
	} else {
		logger.Warn().Msg("redis not configured, in-flight guard is local to this process")
	}

	var events service.LeadEventPublisher
	if cfg.NATSURL != "" {
		natsConn, err := database.ConnectNATS(cfg.NATSURL, cfg.AppName)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to connect to nats")
		}
		defer natsConn.Drain()
		events = service.NewNATSLeadPublisher(natsConn, cfg.EventPrefix)
		checks["nats"] = natsCheck(natsConn)
	}

	checker, err := schema.NewPayloadChecker()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to compile payload schemas")
	}

	dispatchLogRepo := repository.NewDispatchLogRepository(db)

	leadService := service.NewLeadService(
		form.NewValidator(),
		newDispatcher(cfg, logger),
		guard,
		dispatchLogRepo,
		events,
		service.LeadServiceConfig{
			Provider: cfg.DispatchProvider,
			Templates: map[form.Kind]string{
				form.KindContact:        cfg.TemplateFor(string(form.KindContact)),
				form.KindServiceRequest: cfg.TemplateFor(string(form.KindServiceRequest)),
			},
			NotificationDuration: cfg.NotificationDuration,
		},
		logger,
	)
	contentService := service.NewContentService()
	dispatchLogService := service.NewDispatchLogService(dispatchLogRepo, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger, AllowedOrigins: cfg.AllowedOrigins})
	router.Register(app, cfg, router.Dependencies{
		ContactHandler:        handler.NewLeadHandler(form.KindContact, leadService, checker, logger),
		ServiceRequestHandler: handler.NewLeadHandler(form.KindServiceRequest, leadService, checker, logger),
		FormHandler:           handler.NewFormHandler(),
		ContentHandler:        handler.NewContentHandler(contentService, logger),
		AdminDispatchHandler:  handler.NewAdminDispatchHandler(dispatchLogService, logger),
		DependencyChecks:      checks,
		JWTMiddleware:         middleware.JWTProtected(cfg.JWTSecret),
		SubmissionRateLimit:   middleware.RateLimit("forms", cfg.SubmissionRateLimit, cfg.SubmissionRateLimitWindow),
	})

	go func() {
		logger.Info().Str("address", cfg.HTTPAddress()).Str("provider", cfg.DispatchProvider).Msg("starting server")
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			logger.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	waitForShutdown(app, logger)
}

func newDispatcher(cfg config.Config, logger zerolog.Logger) service.Dispatcher {
	switch cfg.DispatchProvider {
	case config.ProviderPostmark:
		return service.NewPostmarkDispatcher(service.PostmarkConfig{
			ServerToken:  cfg.PostmarkServerToken,
			AccountToken: cfg.PostmarkAccountToken,
			From:         cfg.PostmarkFrom,
			To:           cfg.PostmarkTo,
		})
	case config.ProviderLog:
		return service.NewLogDispatcher(logger)
	default:
		return emailjs.New(emailjs.Config{
			Endpoint:   cfg.EmailJSEndpoint,
			ServiceID:  cfg.EmailJSServiceID,
			PublicKey:  cfg.EmailJSPublicKey,
			PrivateKey: cfg.EmailJSPrivateKey,
		})
	}
}

func databaseCheck(db *gorm.DB) handler.DependencyCheck {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}

func redisCheck(client *redis.Client) handler.DependencyCheck {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}

func natsCheck(conn *nats.Conn) handler.DependencyCheck {
	return func(context.Context) error {
		if !conn.IsConnected() {
			return nats.ErrConnectionClosed
		}
		return nil
	}
}

func waitForShutdown(app *fiber.App, logger zerolog.Logger) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
	}

	logger.Info().Msg("server stopped")
}
