// Command api runs the courier tracking HTTP service.
//
//	@title			Courier Tracking API
//	@version		1.0
//	@description	Public package tracking and admin shipment management.
//	@BasePath		/
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	stdlog "log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/dqexpress/courier-tracking/internal/api"
	"github.com/dqexpress/courier-tracking/internal/infrastructure/config"
	mongostore "github.com/dqexpress/courier-tracking/internal/infrastructure/db/mongo"
	redisinfra "github.com/dqexpress/courier-tracking/internal/infrastructure/db/redis"
	"github.com/dqexpress/courier-tracking/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			stdlog.Fatalf("load .env: %v", err)
		}
	}

	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("service failed")
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	log := logger.Get()

	client, db, err := mongostore.Connect(ctx, mongostore.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()

	if err := mongostore.NewShipmentRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongostore.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}

	rdb, err := redisinfra.Connect(ctx, redisinfra.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	e := api.NewRouter(cfg, db, rdb, log)

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting courier tracking service")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	select {
	case err := <-errCh:
		return err
	case <-stop.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	return e.Shutdown(shutdownCtx)
}
