package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/angelmondragon/swiftmarket-backend/api/routes"
	"github.com/angelmondragon/swiftmarket-backend/internal/catalog"
	"github.com/angelmondragon/swiftmarket-backend/internal/describe"
	"github.com/angelmondragon/swiftmarket-backend/internal/session"
	"github.com/angelmondragon/swiftmarket-backend/internal/store"
	"github.com/angelmondragon/swiftmarket-backend/pkg/ai"
	"github.com/angelmondragon/swiftmarket-backend/pkg/config"
	"github.com/angelmondragon/swiftmarket-backend/pkg/logger"
	"github.com/angelmondragon/swiftmarket-backend/pkg/metrics"
	"github.com/angelmondragon/swiftmarket-backend/pkg/models"
	"github.com/angelmondragon/swiftmarket-backend/pkg/redis"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Env:         cfg.App.Env,
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
		Format:      cfg.App.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logg); err != nil {
		logg.Error(context.Background(), "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logg *logger.Logger) (err error) {
	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient, err = redis.New(ctx, cfg.Redis, logg.Named("redis"))
		if err != nil {
			return err
		}
		defer func() {
			err = multierr.Append(err, redisClient.Close())
		}()
	} else {
		logg.Warn(ctx, "redis not configured; description cache and rate limits disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	storefrontMetrics := metrics.NewStorefrontMetrics(reg)

	products, err := loadCatalog(cfg.Catalog)
	if err != nil {
		return err
	}
	logg.Info(logg.WithField(ctx, "products", len(products)), "catalog loaded")

	describeOpts := describe.Options{
		CacheTTL: cfg.Describe.CacheTTL,
		Metrics:  storefrontMetrics,
		Logger:   logg.Named("describe"),
	}
	if aiClient := ai.New(cfg.OpenAI); aiClient.Enabled() {
		describeOpts.Completer = aiClient
	} else {
		logg.Warn(ctx, "openai api key not set; descriptions fall back to placeholder text")
	}
	if redisClient != nil {
		describeOpts.Cache = redisClient
	}
	describeService, err := describe.NewService(describeOpts)
	if err != nil {
		return err
	}

	user := catalog.DefaultUser()
	registry, err := session.NewRegistry(session.Options{
		Factory: func() *store.Store {
			return store.New(store.Options{
				Products: products,
				User:     user,
				Recorder: storefrontMetrics,
			})
		},
		IdleTTL: cfg.Session.IdleTTL,
		Metrics: storefrontMetrics,
		Logger:  logg.Named("session"),
	})
	if err != nil {
		return err
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	server := &http.Server{
		Addr:              addr,
		Handler:           routes.NewRouter(cfg, logg, registry, describeService, redisClient, reg),
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(serverCtx, "starting api server")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		if cfg.Session.IdleTTL <= 0 || cfg.Session.SweepInterval <= 0 {
			<-gctx.Done()
			return nil
		}
		return registry.Run(gctx, cfg.Session.SweepInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		logg.Info(serverCtx, "shutting down api server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func loadCatalog(cfg config.CatalogConfig) ([]models.Product, error) {
	if cfg.File != "" {
		return catalog.LoadFile(cfg.File)
	}
	return catalog.Generate(cfg.Seed, cfg.PerCategory), nil
}
