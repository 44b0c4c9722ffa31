package server

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"sipeka/internal/domain/catalog"
	"sipeka/internal/domain/directory"
	"sipeka/internal/domain/evaluation"
	"sipeka/internal/domain/identity"
	"sipeka/internal/domain/nomination"
	"sipeka/internal/domain/reports"
	"sipeka/internal/platform/clerk"
	"sipeka/internal/platform/config"
	"sipeka/internal/platform/db"
	"sipeka/internal/platform/metrics"
	"sipeka/internal/platform/observability"
	cataloghandler "sipeka/internal/transport/http/handlers/catalog"
	directoryhandler "sipeka/internal/transport/http/handlers/directory"
	evaluationhandler "sipeka/internal/transport/http/handlers/evaluation"
	identityhandler "sipeka/internal/transport/http/handlers/identity"
	nominationhandler "sipeka/internal/transport/http/handlers/nomination"
	reportshandler "sipeka/internal/transport/http/handlers/reports"
	webhookhandler "sipeka/internal/transport/http/handlers/webhook"
	"sipeka/internal/transport/http/middleware"
)

func Run() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	if cfg.SentryDSN != "" {
		flush, err := observability.InitSentry(cfg.SentryDSN, cfg.Environment)
		if err != nil {
			log.Fatalf("sentry init failed: %v", err)
		}
		defer flush()
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, "migrations"); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	identitySvc := identity.NewService(identity.NewStore(pool), clerk.New(cfg))
	directorySvc := directory.NewService(directory.NewStore(pool))
	catalogSvc := catalog.NewService(catalog.NewStore(pool))
	nominationSvc := nomination.NewService(nomination.NewStore(pool))
	evaluationSvc := evaluation.NewService(evaluation.NewStore(pool))
	reportsSvc := reports.NewService(reports.NewStore(pool), evaluationSvc)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Metrics)
	router.Use(middleware.SecureHeaders(cfg.Environment == "production"))
	router.Use(middleware.BodyLimit(cfg.MaxBodyBytes))
	router.Use(middleware.Auth(cfg.SessionJWTSecret))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	router.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := pool.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	if cfg.MetricsEnabled {
		router.Handle("/metrics", metrics.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		identityhandler.NewHandler(identitySvc).RegisterRoutes(r)
		directoryhandler.NewHandler(directorySvc, identitySvc).RegisterRoutes(r)
		cataloghandler.NewHandler(catalogSvc, identitySvc).RegisterRoutes(r)
		nominationhandler.NewHandler(nominationSvc, identitySvc).RegisterRoutes(r)
		evaluationhandler.NewHandler(evaluationSvc, identitySvc).RegisterRoutes(r)
		reportshandler.NewHandler(reportsSvc, identitySvc).RegisterRoutes(r)
		webhookhandler.NewHandler(identitySvc, cfg.WebhookSecret, cfg.TokenIssuer).RegisterRoutes(r)
	})

	slog.Info("server listening", "addr", cfg.Addr, "env", cfg.Environment)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
