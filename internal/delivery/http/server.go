package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/events-directory/internal/config"
	"github.com/events-directory/internal/delivery/http/handler"
	"github.com/events-directory/internal/delivery/http/middleware"
	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/usecase"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger
	authUC *usecase.AuthUseCase

	// Handlers
	cityHandler      *handler.CityHandler
	venueTypeHandler *handler.VenueTypeHandler
	eventTypeHandler *handler.EventTypeHandler
	venueHandler     *handler.VenueHandler
	eventHandler     *handler.EventHandler
	authHandler      *handler.AuthHandler
	userHandler      *handler.UserHandler
	profileHandler   *handler.ProfileHandler
	healthHandler    *handler.HealthHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	authUC *usecase.AuthUseCase,
	cityHandler *handler.CityHandler,
	venueTypeHandler *handler.VenueTypeHandler,
	eventTypeHandler *handler.EventTypeHandler,
	venueHandler *handler.VenueHandler,
	eventHandler *handler.EventHandler,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	profileHandler *handler.ProfileHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "Events Directory",
		BodyLimit:    int(cfg.Assets.MaxImageSize) + 1024*1024,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:              app,
		config:           cfg,
		logger:           logger,
		authUC:           authUC,
		cityHandler:      cityHandler,
		venueTypeHandler: venueTypeHandler,
		eventTypeHandler: eventTypeHandler,
		venueHandler:     venueHandler,
		eventHandler:     eventHandler,
		authHandler:      authHandler,
		userHandler:      userHandler,
		profileHandler:   profileHandler,
		healthHandler:    healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	// Отдача загруженных картинок
	s.app.Static("/uploads", s.config.Assets.UploadDir)

	auth := middleware.Auth(s.authUC)
	manage := middleware.RequireRole(domain.RoleAdmin, domain.RoleManager)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.healthHandler.Check)

	// City routes
	api.Get("/cities", s.cityHandler.List)
	api.Get("/cities/:slug", s.cityHandler.GetBySlug)
	api.Post("/cities", auth, manage, s.cityHandler.Create)
	api.Delete("/cities/:slug", auth, manage, s.cityHandler.Delete)

	// Venue type routes
	api.Get("/venue-types", s.venueTypeHandler.List)
	api.Get("/venue-types/:slug", s.venueTypeHandler.GetBySlug)
	api.Post("/venue-types", auth, manage, s.venueTypeHandler.Create)
	api.Put("/venue-types/:slug", auth, manage, s.venueTypeHandler.Update)
	api.Delete("/venue-types/:slug", auth, manage, s.venueTypeHandler.Delete)

	// Event type routes
	api.Get("/event-types", s.eventTypeHandler.List)
	api.Get("/event-types/:slug", s.eventTypeHandler.GetBySlug)
	api.Post("/event-types", auth, manage, s.eventTypeHandler.Create)
	api.Put("/event-types/:slug", auth, manage, s.eventTypeHandler.Update)
	api.Delete("/event-types/:slug", auth, manage, s.eventTypeHandler.Delete)

	// Venue routes
	api.Get("/venues", s.venueHandler.List)
	api.Get("/venues/:slug", s.venueHandler.GetBySlug)
	api.Post("/venues", auth, manage, s.venueHandler.Create)
	api.Put("/venues/:slug", auth, manage, s.venueHandler.Update)
	api.Patch("/venues/:slug", auth, manage, s.venueHandler.Update)
	api.Delete("/venues/:slug", auth, manage, s.venueHandler.Delete)

	// Event routes
	api.Get("/events", s.eventHandler.List)
	api.Get("/events/:slug", s.eventHandler.GetBySlug)
	api.Post("/events", auth, manage, s.eventHandler.Create)
	api.Put("/events/:slug", auth, manage, s.eventHandler.Update)
	api.Patch("/events/:slug", auth, manage, s.eventHandler.Update)
	api.Delete("/events/:slug", auth, manage, s.eventHandler.Delete)

	// Auth routes
	api.Post("/auth/register", s.authHandler.Register)
	api.Get("/auth/confirm-email/:token", s.authHandler.ConfirmEmail)
	api.Post("/auth/login", s.authHandler.Login)
	api.Post("/auth/logout", auth, s.authHandler.Logout)
	api.Post("/auth/password-reset", s.authHandler.RequestPasswordReset)
	api.Post("/auth/password-reset/:token", s.authHandler.ResetPassword)

	// User administration routes
	users := api.Group("/users", auth, adminOnly)
	users.Get("/", s.userHandler.List)
	users.Post("/", s.userHandler.Create)
	users.Get("/:id", s.userHandler.GetByID)
	users.Put("/:id", s.userHandler.Update)
	users.Patch("/:id", s.userHandler.Update)
	users.Delete("/:id", s.userHandler.Delete)

	// Profile routes
	profile := api.Group("/profile", auth)
	profile.Get("/", s.profileHandler.Get)
	profile.Put("/", s.profileHandler.Update)
	profile.Patch("/", s.profileHandler.Update)
	profile.Get("/favorites", s.profileHandler.ListFavorites)
	profile.Put("/favorites/:event_slug", s.profileHandler.AddFavorite)
	profile.Delete("/favorites/:event_slug", s.profileHandler.RemoveFavorite)
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - кастомный обработчик ошибок
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		errCode := "INTERNAL_SERVER_ERROR"

		if appErr, ok := errors.As(err); ok {
			code = appErr.StatusCode
			errCode = appErr.Code
		} else if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"status": "error",
			"error": fiber.Map{
				"code":    errCode,
				"message": err.Error(),
			},
		})
	}
}
