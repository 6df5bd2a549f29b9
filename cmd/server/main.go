package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/ecomarket/catalog-api/internal/api"
	"github.com/ecomarket/catalog-api/internal/api/middleware"
	"github.com/ecomarket/catalog-api/internal/core/auth"
	"github.com/ecomarket/catalog-api/internal/core/service"
	"github.com/ecomarket/catalog-api/internal/infrastructure/config"
	mongodb "github.com/ecomarket/catalog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/ecomarket/catalog-api/internal/infrastructure/db/redis"
	"github.com/ecomarket/catalog-api/internal/infrastructure/queue"
	"github.com/ecomarket/catalog-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	logg := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// --- Infrastructure ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = mongoClient.Disconnect(context.Background())
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		logg.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		logg.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// --- Wiring ---
	userRepo := mongodb.NewUserRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	auditRepo := mongodb.NewAuditRepository(db)

	cache := redisdb.NewListingCache(rdb)
	codec := auth.NewCodec([]byte(cfg.Auth.JWTSecret), cfg.Auth.TokenTTL)

	auditService := service.NewAuditService(auditRepo, logg)
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, auditService, logg)
	dispatcher.Start(ctx)

	svc := api.Services{
		Auth:       service.NewAuthService(userRepo, codec, dispatcher, logg),
		Permission: service.NewPermissionService(userRepo, dispatcher, logg),
		Category:   service.NewCategoryService(categoryRepo, cache, dispatcher, logg),
		Product:    service.NewProductService(productRepo, categoryRepo, cache, dispatcher, logg),
		Audit:      auditService,
	}

	e := api.NewRouter(db, rdb, svc, middleware.Auth(codec))

	// --- Serve ---
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal().Err(err).Msg("server stopped")
		}
	}()
	logg.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("catalog api started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logg.Error().Err(err).Msg("graceful shutdown failed")
	}
}
