package main

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"jornal/internal/db"
	"jornal/internal/domain/holiday"
	"jornal/internal/domain/receipt"
	"jornal/internal/domain/settings"
	"jornal/internal/domain/wage"
	"jornal/internal/domain/workday"
	"jornal/internal/middleware"
	"jornal/internal/platform/config"
	"jornal/internal/platform/metrics"
	authhandler "jornal/internal/transport/http/handlers/auth"
	holidayhandler "jornal/internal/transport/http/handlers/holiday"
	receipthandler "jornal/internal/transport/http/handlers/receipt"
	settingshandler "jornal/internal/transport/http/handlers/settings"
	wagehandler "jornal/internal/transport/http/handlers/wage"
	workdayhandler "jornal/internal/transport/http/handlers/workday"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config invalid: %v", err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("db connect failed: %v", err)
	}
	defer pool.Close()

	if cfg.RunMigrations {
		if err := db.Migrate(ctx, pool, cfg.MigrationsDir); err != nil {
			log.Fatalf("migrations failed: %v", err)
		}
	}
	if cfg.RunSeed {
		if err := db.Seed(ctx, pool, cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
	}

	tables, err := wage.LoadTables(ctx, pool)
	if err != nil {
		log.Fatalf("rate tables load failed: %v", err)
	}

	recordStore := workday.NewStore(pool)
	if err := recordStore.Load(ctx); err != nil {
		log.Fatalf("work records load failed: %v", err)
	}

	holidays := holiday.NewRegistry(holiday.NewStore(pool))
	if err := holidays.Load(ctx); err != nil {
		log.Fatalf("holidays load failed: %v", err)
	}

	service := workday.NewService(recordStore, tables, holidays).
		WithRates(cfg.PresenceBonusRate, cfg.WithholdingRate).
		WithTolerance(cfg.LatenessToleranceM)

	collector := metrics.New()

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger(collector))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Auth(cfg.JWTSecret))

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
		router.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			if err := json.NewEncoder(w).Encode(collector.Snapshot()); err != nil {
				log.Printf("metrics encode failed: %v", err)
			}
		})
	}

	router.Route("/api/v1", func(r chi.Router) {
		authHandler := authhandler.NewHandler(pool, cfg.JWTSecret)
		r.Post("/auth/login", authHandler.HandleLogin)

		wagehandler.NewHandler(service).RegisterRoutes(r)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(cfg.JWTSecret))

			workdayhandler.NewHandler(service).RegisterRoutes(r)
			holidayhandler.NewHandler(holidays).RegisterRoutes(r)
			settingshandler.NewHandler(settings.NewStore(pool)).RegisterRoutes(r)
			receipthandler.NewHandler(service, receipt.New(cfg.ReceiptDir)).RegisterRoutes(r)
		})
	})

	log.Printf("wage server listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, router); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
