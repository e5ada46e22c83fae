package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"interviewhub/docs"
	"interviewhub/internal/config"
	"interviewhub/internal/database"
	"interviewhub/internal/database/migration"
	handlers "interviewhub/internal/http/handler"
	"interviewhub/internal/http/middleware"
	"interviewhub/internal/logger"
	"interviewhub/internal/otel"
	"interviewhub/internal/realtime"
	"interviewhub/internal/repository/postgres"
	"interviewhub/internal/service"
	"interviewhub/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Interview Hub API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		loc = time.UTC
	}
	log := logger.New(cfg.LogLevel, loc)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}

	db, err := database.NewPostgres(ctx, cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			log.Fatal("failed to migrate database", zap.Error(err))
		}
	}

	var store storage.Storage
	if cfg.MinIO.Endpoint != "" {
		if store, err = storage.NewMinIO(ctx, cfg.MinIO); err != nil {
			log.Fatal("failed to initialize object storage", zap.Error(err))
		}
	} else {
		log.Warn("object storage not configured, file attachments are disabled")
	}

	broker := newBroker(cfg, log)
	defer func() { _ = broker.Close() }()

	interviewRepo := postgres.NewInterviewPostgres(db)
	messageRepo := postgres.NewMessagePostgres(db)
	sessionRepo := postgres.NewCodingSessionPostgres(db)

	svc := handlers.Services{
		Interviews: service.NewInterviewService(interviewRepo, messageRepo, sessionRepo, store, broker, log),
		Messages: service.NewMessageService(messageRepo, store,
			time.Duration(cfg.MinIO.PresignExpiry)*time.Second, broker, log),
		CodingSessions: service.NewCodingSessionService(sessionRepo, broker, log),
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    int(service.MaxAttachmentSize) + 1<<20,
	})

	httpMetrics, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal("failed to register http metrics", zap.Error(err))
	}

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(httpMetrics.Handler())
	app.Use(otelfiber.Middleware())

	handlers.RegisterRoutes(app, svc, handlers.Options{
		DB:           db,
		Dependencies: dependencies(cfg.Realtime.Backend, broker, store),
		Auth:         middleware.Auth(cfg.Auth.JWTSecret),
		Metrics:      prometheus.DefaultGatherer,
		Stream: handlers.StreamConfig{
			KeepAlive: time.Duration(cfg.Realtime.KeepAliveSec) * time.Second,
			Buffer:    cfg.Realtime.BufferSize,
			Log:       log,
		},
	})

	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			log.Error("http shutdown failed", zap.Error(err))
		}
		if err := shutdownTracing(sctx); err != nil {
			log.Error("tracing shutdown failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	log.Info("server starting", zap.String("addr", addr), zap.String("realtime_backend", cfg.Realtime.Backend))
	if err := app.Listen(addr); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}

// newBroker picks the change-feed backend and wraps it with metrics.
func newBroker(cfg *config.AppConfig, log *zap.Logger) realtime.Broker {
	var b realtime.Broker
	switch cfg.Realtime.Backend {
	case "redis":
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		b = realtime.NewRedisBroker(rdb, log)
	default:
		b = realtime.NewMemoryBroker()
	}
	return realtime.Instrument(b, realtime.NewMetrics(prometheus.DefaultRegisterer))
}

func dependencies(backend string, broker realtime.Broker, store storage.Storage) []handlers.Dependency {
	var deps []handlers.Dependency
	if p, ok := broker.(realtime.Pinger); ok && backend == "redis" {
		deps = append(deps, handlers.Dependency{Name: "redis", Ping: p.Ping})
	}
	if store != nil {
		deps = append(deps, handlers.Dependency{Name: "storage", Ping: store.Ping})
	}
	return deps
}
