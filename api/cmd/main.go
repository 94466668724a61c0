package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/opportunest/opportunest-server/internal/config"
	"github.com/opportunest/opportunest-server/internal/pkg/logger"
	"github.com/opportunest/opportunest-server/internal/security"
	"github.com/opportunest/opportunest-server/internal/service"
	"github.com/opportunest/opportunest-server/internal/storage"
	"github.com/opportunest/opportunest-server/internal/store/mongo"
	"github.com/opportunest/opportunest-server/internal/transport/rest"
)

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	if cfg.LogLevel != "" {
		_ = os.Setenv("LOG_LEVEL", cfg.LogLevel)
	}

	logger.Init()
	log := logger.Logger.With().
		Str("service", "opportunest-server").
		Str("env", cfg.AppEnv).
		Logger()

	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---- Mongo ----
	store, err := mongo.Connect(rootCtx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = store.Close(closeCtx)
	}()
	log.Info().Str("db", cfg.MongoDB).Msg("mongo connected")

	// ---- Image storage ----
	uploader, err := storage.NewS3Client(rootCtx, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("s3 client create failed")
	}

	// ---- Application services ----
	clock := realClock{}
	users := service.NewUserService(store.Users(), clock, cfg.AdminEmail, cfg.ModeratorEmail)
	catalog := service.NewCatalogService(store.Scholarships(), clock)
	apps := service.NewApplicationService(store.Applications(), store.Scholarships(), clock)
	reviews := service.NewReviewService(store.Reviews(), store.Scholarships(), clock)
	stats := service.NewStatsService(store.Stats(), clock)

	h := rest.NewHandler(users, catalog, apps, reviews, stats, uploader)

	// ---- Token verifier ----
	verifier := security.NewHS256Verifier(cfg.JWTSecret, cfg.JWTIssuer)

	// ---- Router ----
	httpHandler := rest.NewRouter(rest.RouterDeps{
		Handler:     h,
		Verifier:    verifier,
		Roles:       users,
		CORSOrigins: cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-rootCtx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("http server crashed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info().Msg("shutdown complete")
}
