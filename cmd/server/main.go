package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/selivandex/team-pulse/internal/adapters/ai"
	"github.com/selivandex/team-pulse/internal/adapters/config"
	"github.com/selivandex/team-pulse/internal/adapters/database"
	redisAdapter "github.com/selivandex/team-pulse/internal/adapters/redis"
	"github.com/selivandex/team-pulse/internal/adapters/telegram"
	"github.com/selivandex/team-pulse/internal/api"
	"github.com/selivandex/team-pulse/internal/auth"
	"github.com/selivandex/team-pulse/internal/recommend"
	"github.com/selivandex/team-pulse/internal/records"
	"github.com/selivandex/team-pulse/internal/workers"
	"github.com/selivandex/team-pulse/pkg/logger"
	"github.com/selivandex/team-pulse/pkg/worker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	demo := cfg.IsDemoMode()
	logger.Info("team pulse service starting", zap.Bool("demo_mode", demo))

	// Collaborators are picked once here; nothing downstream branches on
	// demo mode again.
	store, db, err := initStore(cfg, demo)
	if err != nil {
		return err
	}
	if db != nil {
		defer db.Close()
	}

	cache, redisClient := initCache(cfg, demo)
	if redisClient != nil {
		defer redisClient.Close()
	}

	classifier, generator := initAI(cfg, demo)
	verifier := initVerifier(cfg, demo)

	composer := recommend.NewComposer(
		cache,
		cfg.Recommend.CacheTTL,
		cfg.Recommend.MaxTracks,
		recommend.WithGenerator(generator),
	)

	var notifier workers.Notifier
	if cfg.Telegram.NotifierEnabled() && !demo {
		tg, err := telegram.NewNotifier(&cfg.Telegram)
		if err != nil {
			logger.Error("failed to create telegram notifier", zap.Error(err))
		} else {
			notifier = tg
		}
	}

	group := worker.NewGroup(ctx)
	if cfg.Snapshot.Enabled {
		group.Add(
			workers.NewSnapshotWorker(store, cache, composer, notifier, cfg.Snapshot.CacheTTL, cfg.Snapshot.EventTTL),
			cfg.Snapshot.Interval,
		)
	}
	group.Start()
	defer group.Stop(10 * time.Second)

	checks := map[string]api.HealthCheck{}
	if db != nil {
		checks["database"] = db.Health
	}
	if redisClient != nil {
		checks["redis"] = redisClient.Health
	}

	server := api.NewServer(&cfg.Server, checks)
	server.SetupRoutes(api.NewHandlers(
		store,
		classifier,
		composer,
		verifier,
		cache,
		cfg.Snapshot.EventTTL,
		cfg.AI.MaxMessages,
	))

	errChan := make(chan error, 1)
	go func() {
		errChan <- server.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("api server failed: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shut down api server: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// initStore connects the system of record; demo mode runs on memory
func initStore(cfg *config.Config, demo bool) (records.Store, *database.DB, error) {
	if demo {
		logger.Info("demo mode: using in-memory record store")
		return records.NewMemoryStore(), nil, nil
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(db.Conn(), "./migrations"); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return records.NewRepository(db.DB()), db, nil
}

// initCache connects redis; an unreachable cache degrades to memory instead
// of failing startup, matching the cache-miss-on-unavailable policy
func initCache(cfg *config.Config, demo bool) (recommend.Cache, *redisAdapter.Client) {
	if demo {
		logger.Info("demo mode: using in-memory cache")
		return recommend.NewMemoryCache(), nil
	}

	client, err := redisAdapter.New(&cfg.Redis)
	if err != nil {
		logger.Warn("redis unavailable, degrading to in-memory cache", zap.Error(err))
		return recommend.NewMemoryCache(), nil
	}

	return client, client
}

// initAI picks the live model provider or the canned demo implementations
func initAI(cfg *config.Config, demo bool) (ai.Classifier, ai.Generator) {
	if demo {
		logger.Info("demo mode: using canned classifier and generator")
		return ai.NewCannedClassifier(), ai.NewCannedGenerator()
	}

	provider := ai.NewOpenAIProvider(&cfg.AI)
	return provider, provider
}

// initVerifier picks the session verifier
func initVerifier(cfg *config.Config, demo bool) auth.Verifier {
	if demo {
		return auth.NewDemoVerifier()
	}
	return auth.NewJWTVerifier(cfg.Auth.JWTSecret)
}
