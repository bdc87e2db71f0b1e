package main

// @title Events Directory API
// @version 1.0.0
// @description REST-бэкенд мультиязычной афиши культурных событий. Справочники городов и типов, площадки и события с автопереводом названий и описаний (en, ru, he), геокодированием адресов, diff-обновлениями, аккаунтами и избранным.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"

	_ "github.com/events-directory/docs/swagger"
	"github.com/events-directory/internal/config"
	httpDelivery "github.com/events-directory/internal/delivery/http"
	"github.com/events-directory/internal/delivery/http/handler"
	"github.com/events-directory/internal/infrastructure/assets"
	"github.com/events-directory/internal/infrastructure/geonames"
	"github.com/events-directory/internal/infrastructure/here"
	"github.com/events-directory/internal/infrastructure/translate"
	"github.com/events-directory/internal/pkg/logger"
	"github.com/events-directory/internal/repository/cache"
	"github.com/events-directory/internal/repository/mongo"
	"github.com/events-directory/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Events Directory API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

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
	log.Info("MongoDB connected")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	err = db.EnsureIndexes(ctx)
	cancel()
	if err != nil {
		log.Fatal("Failed to ensure MongoDB indexes", zap.Error(err))
	}

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
	log.Info("Redis connected")

	// 5. Initialize repositories and gateways
	cityRepo := mongo.NewCityRepository(db, log)
	venueTypeRepo := mongo.NewVenueTypeRepository(db, log)
	eventTypeRepo := mongo.NewEventTypeRepository(db, log)
	venueRepo := mongo.NewVenueRepository(db, log)
	eventRepo := mongo.NewEventRepository(db, log)
	userRepo := mongo.NewUserRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	translator := translate.NewTranslateClient(&cfg.Translate, log)
	geocoder := here.NewHereClient(&cfg.Here, log)
	geoDirectory := geonames.NewGeoNamesClient(&cfg.GeoNames, log)
	assetStore := assets.NewStore(afero.NewOsFs(), &cfg.Assets, log)

	log.Info("Repositories initialized")

	// 6. Initialize use cases
	autoFill := usecase.NewAutoFiller(translator, log)
	address := usecase.NewAddressResolver(translator, geocoder, log)
	cacheTTL := cfg.Cache.ListCacheTTL

	cityUC := usecase.NewCityUseCase(cityRepo, venueRepo, geoDirectory, cacheRepo, cacheTTL, log)
	venueTypeUC := usecase.NewVenueTypeUseCase(venueTypeRepo, venueRepo, autoFill, cacheRepo, cacheTTL, log)
	eventTypeUC := usecase.NewEventTypeUseCase(eventTypeRepo, eventRepo, autoFill, cacheRepo, cacheTTL, log)
	venueUC := usecase.NewVenueUseCase(
		venueRepo, eventRepo, cityRepo, venueTypeRepo, userRepo,
		autoFill, address, assetStore, cacheRepo, cacheTTL, log,
	)
	eventUC := usecase.NewEventUseCase(
		eventRepo, venueRepo, eventTypeRepo, cityRepo, userRepo,
		autoFill, assetStore, cacheRepo, cacheTTL, loc, log,
	)
	authUC := usecase.NewAuthUseCase(userRepo, &cfg.Auth, log)
	userUC := usecase.NewUserUseCase(userRepo, log)
	profileUC := usecase.NewProfileUseCase(userRepo, eventRepo, venueRepo, eventTypeRepo, loc, log)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP handlers
	cityHandler := handler.NewCityHandler(cityUC, log)
	venueTypeHandler := handler.NewVenueTypeHandler(venueTypeUC, log)
	eventTypeHandler := handler.NewEventTypeHandler(eventTypeUC, log)
	venueHandler := handler.NewVenueHandler(venueUC, cfg.Assets.MaxImageSize, log)
	eventHandler := handler.NewEventHandler(eventUC, cfg.Assets.MaxImageSize, log)
	authHandler := handler.NewAuthHandler(authUC, log)
	userHandler := handler.NewUserHandler(userUC, log)
	profileHandler := handler.NewProfileHandler(profileUC, log)
	healthHandler := handler.NewHealthHandler(db, redisClient)

	log.Info("HTTP handlers initialized")

	// 8. Initialize HTTP server
	server := httpDelivery.NewServer(
		cfg,
		log,
		authUC,
		cityHandler,
		venueTypeHandler,
		eventTypeHandler,
		venueHandler,
		eventHandler,
		authHandler,
		userHandler,
		profileHandler,
		healthHandler,
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
