package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/PUNEET-EMM/Project-Management/internal/api"
	"github.com/PUNEET-EMM/Project-Management/internal/api/handler"
	"github.com/PUNEET-EMM/Project-Management/internal/core/seed"
	"github.com/PUNEET-EMM/Project-Management/internal/core/service"
	"github.com/PUNEET-EMM/Project-Management/internal/core/session"
	"github.com/PUNEET-EMM/Project-Management/internal/core/store"
	"github.com/PUNEET-EMM/Project-Management/internal/infrastructure/config"
	mongodb "github.com/PUNEET-EMM/Project-Management/internal/infrastructure/db/mongo"
	redisdb "github.com/PUNEET-EMM/Project-Management/internal/infrastructure/db/redis"
	"github.com/PUNEET-EMM/Project-Management/internal/infrastructure/queue"
	"github.com/PUNEET-EMM/Project-Management/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		stdlog.Fatalf("config: %v", err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Backing stores ---
	mongoClient, db, err := mongodb.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, cfg.Redis.Addr, cfg.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	// --- Core state ---
	snapshots := redisdb.NewSnapshotStore(rdb)

	st := store.New(snapshots, log)
	st.Load(ctx, seed.Collections())

	sess := session.NewManager(snapshots, log)
	sess.Restore(ctx)

	credRepo := mongodb.NewCredentialRepository(db)
	if err := seedCredentials(ctx, credRepo); err != nil {
		log.Fatal().Err(err).Msg("credential seeding failed")
	}

	// --- Activity pipeline ---
	activityRepo := mongodb.NewActivityRepository(db)
	dedup := redisdb.NewDedupChecker(rdb)
	activitySvc := service.NewActivityService(activityRepo, dedup, log)
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, activitySvc, log)
	dispatcher.Start(ctx)

	// --- Use cases ---
	services := api.Services{
		Auth:     service.NewAuthService(credRepo, st, sess, cfg.JWTSecret, cfg.SessionTTL, log),
		Projects: service.NewProjectService(st, dispatcher, log),
		Tasks:    service.NewTaskService(st, dispatcher, log),
		Users:    service.NewUserService(st, dispatcher, log),
		Reports:  service.NewReportService(st, log),
	}

	e := api.NewRouter(api.Deps{
		Store:     st,
		Services:  services,
		JWTSecret: cfg.JWTSecret,
		Health:    handler.NewHealthDependenciesHandler(db, rdb),
		Log:       log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

// seedCredentials provisions the default accounts' login secrets once.
// Existing credentials are never overwritten.
func seedCredentials(ctx context.Context, repo *mongodb.CredentialRepository) error {
	creds, err := seed.Credentials()
	if err != nil {
		return err
	}
	for i := range creds {
		if _, err := repo.FindByEmail(ctx, creds[i].Email); err == nil {
			continue
		}
		if err := repo.Upsert(ctx, &creds[i]); err != nil {
			return err
		}
	}
	return nil
}
