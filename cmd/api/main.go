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

	"github.com/honestpc/honestpc-backend/api/routes"
	"github.com/honestpc/honestpc-backend/internal/advisor"
	"github.com/honestpc/honestpc-backend/internal/analytics"
	"github.com/honestpc/honestpc-backend/internal/auth"
	"github.com/honestpc/honestpc-backend/internal/builds"
	"github.com/honestpc/honestpc-backend/internal/catalog"
	"github.com/honestpc/honestpc-backend/internal/configurator"
	"github.com/honestpc/honestpc-backend/internal/orders"
	"github.com/honestpc/honestpc-backend/internal/users"
	"github.com/honestpc/honestpc-backend/pkg/auth/session"
	"github.com/honestpc/honestpc-backend/pkg/config"
	"github.com/honestpc/honestpc-backend/pkg/db"
	"github.com/honestpc/honestpc-backend/pkg/logger"
	"github.com/honestpc/honestpc-backend/pkg/metrics"
	"github.com/honestpc/honestpc-backend/pkg/migrate"
	"github.com/honestpc/honestpc-backend/pkg/openai"
	"github.com/honestpc/honestpc-backend/pkg/redis"
)

const shutdownGrace = 15 * time.Second

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
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	registry, err := catalog.NewRegistry()
	if err != nil {
		logg.Error(context.Background(), "failed to load component catalog", err)
		os.Exit(1)
	}

	configuratorService, err := configurator.NewService(registry, cfg.Pricing)
	if err != nil {
		logg.Error(context.Background(), "failed to create configurator", err)
		os.Exit(1)
	}

	var advisorService *advisor.Service
	if cfg.Advisor.APIKey != "" {
		completionClient, err := openai.NewClient(cfg.Advisor.APIKey,
			openai.WithBaseURL(cfg.Advisor.BaseURL),
			openai.WithModel(cfg.Advisor.Model),
		)
		if err != nil {
			logg.Error(context.Background(), "failed to create completion client", err)
			os.Exit(1)
		}
		advisorService, err = advisor.NewService(completionClient, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to create advisor service", err)
			os.Exit(1)
		}
	} else {
		logg.Warn(context.Background(), "advisor api key missing, advice served from fallback")
		advisorService, err = advisor.NewService(nil, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to create advisor service", err)
			os.Exit(1)
		}
	}

	userRepo := users.NewRepository(dbClient.DB())
	buildRepo := builds.NewRepository(dbClient.DB())
	orderRepo := orders.NewRepository(dbClient.DB())

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       userRepo,
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
		PasswordConfig: cfg.Password,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	buildsService, err := builds.NewService(buildRepo, configuratorService)
	if err != nil {
		logg.Error(context.Background(), "failed to create builds service", err)
		os.Exit(1)
	}

	ordersService, err := orders.NewService(orders.ServiceParams{
		Repo:         orderRepo,
		Transactor:   dbClient,
		Configurator: configuratorService,
		UserRepo:     userRepo,
		BuildRepo:    buildRepo,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create orders service", err)
		os.Exit(1)
	}

	analyticsService, err := analytics.NewService(ordersService)
	if err != nil {
		logg.Error(context.Background(), "failed to create analytics service", err)
		os.Exit(1)
	}

	promRegistry := prometheus.NewRegistry()
	promRegistry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	httpMetrics := metrics.NewHTTPMetrics(promRegistry)

	router := routes.NewRouter(routes.Deps{
		Config:         cfg,
		Logger:         logg,
		DBPinger:       dbClient,
		RedisPinger:    redisClient,
		SessionChecker: sessionManager,
		Configurator:   configuratorService,
		Advisor:        advisorService,
		Analytics:      analyticsService,
		AuthService:    authService,
		BuildsService:  buildsService,
		OrdersService:  ordersService,
		Prometheus:     promRegistry,
		HTTPMetrics:    httpMetrics,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	stopCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(ctx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-stopCtx.Done():
		logg.Info(ctx, "shutdown signal received")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logg.Error(ctx, "graceful shutdown failed", err)
		}
	}
}
