package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Harshan-mv/wechat/internal/api"
	"github.com/Harshan-mv/wechat/internal/core/ports"
	"github.com/Harshan-mv/wechat/internal/infrastructure/config"
	mongodb "github.com/Harshan-mv/wechat/internal/infrastructure/db/mongo"
	"github.com/Harshan-mv/wechat/internal/infrastructure/session"
	"github.com/Harshan-mv/wechat/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(disconnectCtx)
	}()
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	if err := mongodb.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user indexes failed")
	}
	if err := mongodb.NewMessageRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("message indexes failed")
	}

	var (
		sessions ports.SessionStore
		rdb      *goredis.Client
	)
	switch cfg.Session.Backend {
	case "redis":
		store, err := session.DialRedis(ctx, cfg.Redis, cfg.Session.TTL)
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		rdb = store.Client()
		sessions = store
		log.Info().Str("addr", cfg.Redis.Addr).Msg("sessions backed by redis")
	default:
		sessions = session.NewMemoryStore(cfg.Session.TTL)
		log.Info().Msg("sessions backed by in-memory store")
	}
	defer sessions.Close()

	e := api.NewRouter(db, rdb, sessions, cfg.Session.Secret, log)

	go func() {
		addr := ":" + cfg.Port
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
