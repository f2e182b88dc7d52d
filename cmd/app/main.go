package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"fooddelivery/cmd"
	httpin "fooddelivery/internal/adapters/in/http"
	"fooddelivery/internal/adapters/out/events"
	"fooddelivery/internal/adapters/out/kafka"
	"fooddelivery/internal/adapters/out/mongo/locationrepo"
	"fooddelivery/internal/adapters/out/postgres"
	"fooddelivery/internal/adapters/out/rabbitmq"
	"fooddelivery/internal/adapters/out/redis/locationcache"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/metrics"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	config, err := cmd.LoadConfig()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	logger := newLogger(config.LogLevel)

	if err = run(config, logger); err != nil {
		log.Fatalf("%v", err)
	}
}

// run wires the service and serves until a signal arrives or the HTTP server fails.
// Either way it shuts the server down and returns, so every deferred close runs.
func run(config cmd.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gormDB := mustGormOpen(config.DSN())
	if err := postgres.Migrate(gormDB); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(config.MongoURI))
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	var locations ports.LocationStore
	locations, err = locationrepo.NewMongoLocationStore(ctx, mongoClient.Database(config.MongoDatabase))
	if err != nil {
		return fmt.Errorf("failed to prepare location store: %w", err)
	}
	if config.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
		defer func() { _ = rdb.Close() }()
		locations = locationcache.NewCachedLocationStore(locations, rdb, config.RedisTTL, logger)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return fmt.Errorf("failed to register metrics: %w", err)
	}

	hub := httpin.NewHub(logger)
	defer hub.Close()

	broker, closeBroker, err := newBroker(config)
	if err != nil {
		return err
	}
	defer closeBroker()
	publisher := events.NewFanout(broker, hub)

	app := cmd.NewCompositionRoot(config, gormDB, locations, publisher, recorder, logger)

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		return fmt.Errorf("failed to start jobs: %w", err)
	}
	defer jobManager.StopAll()

	e := newEcho(logger, registry)
	httpin.NewServer(app.CreateHandlers(), hub, logger).Register(e)

	return serve(ctx, e, fmt.Sprintf("0.0.0.0:%s", config.HTTPPort), logger)
}

// serve runs e on addr until ctx is done or the server fails to run, then shuts it down.
// It returns the server failure, or nil after a regular shutdown.
func serve(ctx context.Context, e *echo.Echo, addr string, logger *slog.Logger) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := e.Start(addr); !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	var err error
	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err = <-serverErr:
		logger.Error("http server stopped", "error", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if shutdownErr := e.Shutdown(shutdownCtx); shutdownErr != nil {
		logger.Error("http shutdown failed", "error", shutdownErr)
	}
	if err != nil {
		return fmt.Errorf("http server stopped: %w", err)
	}
	return nil
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl}))
	slog.SetDefault(logger)
	return logger
}

func mustGormOpen(dsn string) *gorm.DB {
	gormDB, err := gorm.Open(pgdriver.New(pgdriver.Config{DSN: dsn}), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("connection to postgres through gorm\n: %s", err)
	}
	return gormDB
}

// newBroker returns the configured external event publisher. With no broker the
// WebSocket hub is the only subscriber.
func newBroker(config cmd.Config) (ports.EventPublisher, func(), error) {
	switch config.EventBroker {
	case cmd.BrokerKafka:
		publisher := kafka.NewPublisher(kafka.NewWriter(config.KafkaBrokers(), config.KafkaOrderChangedTopic))
		return publisher, func() { _ = publisher.Close() }, nil
	case cmd.BrokerRabbitMQ:
		conn, channel, err := rabbitmq.Dial(config.RabbitMQURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to rabbitmq: %w", err)
		}
		publisher := rabbitmq.NewPublisher(channel, config.RabbitMQExchange)
		return publisher, func() {
			_ = publisher.Close()
			_ = conn.Close()
		}, nil
	default:
		return nil, func() {}, nil
	}
}

func newEcho(logger *slog.Logger, registry *prometheus.Registry) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency}
			if v.Error != nil {
				logger.ErrorContext(c.Request().Context(), "request", append(attrs, "error", v.Error)...)
				return nil
			}
			logger.InfoContext(c.Request().Context(), "request", attrs...)
			return nil
		},
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	return e
}
