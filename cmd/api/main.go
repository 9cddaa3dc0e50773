package main

import (
	"context"
	"errors"
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
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"clubsite/docs"
	"clubsite/internal/app"
	"clubsite/internal/config"
	"clubsite/internal/event"
	handlers "clubsite/internal/http/handler"
	"clubsite/internal/http/middleware"
	"clubsite/internal/logging"
	"clubsite/internal/otel"
	"clubsite/internal/service"
	"clubsite/internal/storage"
)

const shutdownTimeout = 10 * time.Second

// @title Club Site API
// @version 1.0
// @description Graamys nominations, events and gallery for the club website.
// @BasePath /
func main() {
	cfg := config.Load()
	log := logging.NewStdout(cfg.Location())
	defer log.Sync()

	if err := run(cfg, log); err != nil {
		log.Fatal("server_exited", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, log *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing_shutdown_failed", zap.Error(err))
		}
	}()

	db, nominations, err := app.OpenNominations(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer db.Close()

	// Gallery storage is optional; without it the gallery routes answer 503.
	var objStore storage.Storage
	if cfg.MinIO.Enabled() {
		objStore, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			return err
		}
	} else {
		log.Warn("gallery_disabled", zap.String("reason", "MINIO_ENDPOINT is empty"))
	}

	catalog, err := event.NewCatalog(cfg.EventsFile, log)
	if err != nil {
		return err
	}

	if cfg.Auth.ResultsPassword == "" {
		log.Warn("results_password_unset", zap.String("effect", "graamys results are locked"))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		return err
	}

	srv := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		DisableStartupMessage: true,
		BodyLimit:             16 * 1024 * 1024,
	})

	srv.Use(middleware.RequestID())
	srv.Use(otelfiber.Middleware())
	srv.Use(middleware.Logger(log))
	srv.Use(metrics.Handler())

	handlers.RegisterRoutes(srv, handlers.Deps{
		DB:            db,
		Log:           log,
		Graamys:       service.NewGraamysService(nominations, cfg.Auth.ResultsPassword),
		Events:        service.NewEventService(catalog),
		Gallery:       service.NewGalleryService(objStore),
		AdminPassword: cfg.Auth.AdminPassword,
		Gatherer:      reg,
	})

	// Swagger UI with dynamic host and scheme
	srv.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return catalog.Watch(gctx)
	})

	g.Go(func() error {
		addr := ":" + cfg.Port
		log.Info("server_listening", zap.String("addr", addr))
		return srv.Listen(addr)
	})

	g.Go(func() error {
		<-gctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("server_shutting_down")
		return srv.ShutdownWithContext(sctx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
