package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/szarydziennik/grayjournal/internal/config"
	middleware "github.com/szarydziennik/grayjournal/internal/exception"
	tracelog "github.com/szarydziennik/grayjournal/internal/middleware"
	"github.com/szarydziennik/grayjournal/internal/observability"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	zapLog "go.uber.org/zap"
)

func main() {
	time.Local = time.UTC

	// Flush buffered logs first, then cancel the context for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	fiber := config.NewFiber()
	zap := config.NewZap()
	koanf := config.NewKoanf(zap)

	// The file driver needs neither postgres nor the redis list cache.
	var postgresql *pgxpool.Pool
	var rds *redis.Client
	if koanf.String("STORAGE_DRIVER") != "file" {
		postgresql = config.NewPostgresqlPool(koanf, zap)
		rds = config.NewRedisClient(koanf, zap)
	}
	minio := config.NewMinIO(koanf, zap)

	if koanf.String("OTEL_EXPORTER_OTLP_ENDPOINT") != "" {
		observabilityConfig := config.LoadObservabilityConfig(koanf, zap)
		shutdownTracing, err := observability.Init(context.Background(), observabilityConfig, zap)
		if err != nil {
			zap.Warn("failed to initialize tracing, continuing without it", zapLog.Error(err))
		} else {
			defer func() {
				_ = shutdownTracing(ctx)
			}()
		}
	}

	fiber.Use(middleware.Recovery(zap))
	fiber.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	fiber.Use(otelfiber.Middleware())
	fiber.Use(tracelog.TraceLoggerMiddleware(zap))

	config.Server(&config.ServerConfig{
		Router:  fiber,
		DB:      postgresql,
		DBCache: rds,
		Log:     zap,
		Config:  koanf,
		MinIO:   minio,
	})

	GO_SERVER_PORT := koanf.String("GO_SERVER")

	zap.Info("Server is running on: " + GO_SERVER_PORT)

	var err error
	go func() {
		err = fiber.Listen(GO_SERVER_PORT)
		if err != nil {
			zap.Fatal("error starting server", zapLog.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	zap.Info("got one of stop signals")

	err = fiber.ShutdownWithContext(ctx)
	if err != nil {
		zap.Warn("timeout, forced kill!", zapLog.Error(err))
		_ = zap.Sync()
		os.Exit(1)
	}

	zap.Info("server has shut down gracefully")
	_ = zap.Sync()
}
