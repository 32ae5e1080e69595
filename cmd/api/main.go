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
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/priorityparcel/portal-api/internal/api"
	"github.com/priorityparcel/portal-api/internal/api/handler"
	"github.com/priorityparcel/portal-api/internal/core/ports"
	"github.com/priorityparcel/portal-api/internal/core/service"
	"github.com/priorityparcel/portal-api/internal/infrastructure/db/memory"
	mongodb "github.com/priorityparcel/portal-api/internal/infrastructure/db/mongo"
	redisdb "github.com/priorityparcel/portal-api/internal/infrastructure/db/redis"
	"github.com/priorityparcel/portal-api/internal/infrastructure/queue"
	"github.com/priorityparcel/portal-api/internal/pkg/config"
	"github.com/priorityparcel/portal-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title          PriorityParcel Portal API
// @version        1.0
// @description    Backend API for the PriorityParcel delivery portal.
// @BasePath       /
// @securityDefinitions.apikey BearerAuth
// @in             header
// @name           Authorization
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, cleanup, err := buildDependencies(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialise dependencies")
	}
	defer cleanup()

	// Background update pipeline.
	updateService := service.NewUpdateService(deps.zendingRepo, deps.dedup, log)
	dispatcher := queue.NewDispatcher(cfg.UpdateWorkers, updateService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.RouterDeps{
		AuthService:    service.NewAuthService(deps.userRepo, cfg.JWTSecret, cfg.TokenTTL, log),
		ContactService: service.NewContactService(deps.contactRepo, log),
		OfferteService: service.NewOfferteService(deps.offerteRepo, log),
		ZendingService: service.NewZendingService(deps.zendingRepo, deps.statsCache, log),
		UpdateQueue:    dispatcher,
		JWTSecret:      cfg.JWTSecret,
		Mongo:          deps.mongo,
		Redis:          deps.redis,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreDriver).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}

// dependencies holds the wired repositories and optional infrastructure
// clients for the selected store driver.
type dependencies struct {
	userRepo    ports.UserRepository
	contactRepo ports.ContactRepository
	offerteRepo ports.OfferteRepository
	zendingRepo ports.ZendingRepository
	dedup       service.DedupChecker
	statsCache  service.StatsCache
	mongo       *mongo.Database
	redis       *redis.Client
}

func buildDependencies(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*dependencies, func(), error) {
	deps := &dependencies{}
	cleanup := func() {}

	switch cfg.StoreDriver {
	case "mongo":
		client, db, err := mongodb.Connect(ctx, mongodb.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			return nil, nil, err
		}
		cleanup = func() {
			disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = client.Disconnect(disconnectCtx)
		}

		userRepo := mongodb.NewUserRepository(db)
		zendingRepo := mongodb.NewZendingRepository(db)
		if err := userRepo.EnsureIndexes(ctx); err != nil {
			return nil, nil, err
		}
		if err := zendingRepo.EnsureIndexes(ctx); err != nil {
			return nil, nil, err
		}

		deps.userRepo = userRepo
		deps.contactRepo = mongodb.NewContactRepository(db)
		deps.offerteRepo = mongodb.NewOfferteRepository(db)
		deps.zendingRepo = zendingRepo
		deps.mongo = db
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	default:
		userRepo := memory.NewUserRepository()
		zendingRepo := memory.NewZendingRepository()
		if err := memory.Seed(ctx, userRepo, zendingRepo, log); err != nil {
			return nil, nil, err
		}

		deps.userRepo = userRepo
		deps.contactRepo = memory.NewContactRepository()
		deps.offerteRepo = memory.NewOfferteRepository()
		deps.zendingRepo = zendingRepo
		log.Info().Msg("using in-memory store with seeded fixtures")
	}

	deps.dedup = memory.NewDedupChecker()
	if cfg.Redis.Enabled {
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			return nil, nil, err
		}
		deps.redis = rdb
		deps.dedup = redisdb.NewDedupChecker(rdb)
		deps.statsCache = redisdb.NewStatsCache(rdb, log)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to redis")
	}

	return deps, cleanup, nil
}

var _ handler.Enqueuer = (*queue.Dispatcher)(nil)
