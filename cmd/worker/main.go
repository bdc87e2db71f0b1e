package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/events-directory/internal/config"
	"github.com/events-directory/internal/pkg/logger"
	"github.com/events-directory/internal/repository/cache"
	"github.com/events-directory/internal/repository/mongo"
	"github.com/events-directory/internal/usecase"
	"github.com/events-directory/internal/worker"
	"github.com/events-directory/internal/worker/lifecycle"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if scheduler is enabled
	if !cfg.Scheduler.Enabled {
		fmt.Println("Scheduler is disabled in configuration. Set SCHEDULER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Events Directory Lifecycle Worker")
	log.Info("Configuration loaded",
		zap.String("daily_spec", cfg.Scheduler.DailySpec),
		zap.String("timezone", cfg.Server.Timezone))

	loc, err := cfg.Location()
	if err != nil {
		log.Fatal("Failed to load timezone", zap.Error(err))
	}

	// 3. Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Mongo.ConnectTimeout)
	db, err := mongo.New(ctx, &cfg.Mongo, log)
	cancel()
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Error("Failed to close MongoDB connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Initialize repositories
	eventRepo := mongo.NewEventRepository(db, log)
	userRepo := mongo.NewUserRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	// 6. Initialize use cases
	lifecycleUC := usecase.NewLifecycleUseCase(eventRepo, userRepo, cacheRepo, log)

	// 7. Initialize workers
	dailyWorker := lifecycle.NewDailyWorker(lifecycleUC, cfg.Scheduler.DailySpec, loc, log)

	// 8. Create worker manager and register workers
	workerManager := worker.NewManager(log)
	workerManager.Register(dailyWorker)

	// 9. Setup graceful shutdown
	ctx, cancel = context.WithCancel(context.Background())
	defer cancel()

	if err := workerManager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	<-sigChan
	log.Info("Received shutdown signal")

	cancel()

	if err := workerManager.Stop(); err != nil {
		log.Error("Error stopping workers", zap.Error(err))
	}

	log.Info("Worker stopped successfully")
}
