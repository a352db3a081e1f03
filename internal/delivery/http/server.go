package http

import (
	"context"
	"time"

	"github.com/aquasentinel/internal/config"
	"github.com/aquasentinel/internal/delivery/http/handler"
	"github.com/aquasentinel/internal/delivery/http/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	metricHandler       *handler.MetricHandler
	reportHandler       *handler.ReportHandler
	predictionHandler   *handler.PredictionHandler
	organizationHandler *handler.OrganizationHandler
	assistantHandler    *handler.AssistantHandler
	preferencesHandler  *handler.PreferencesHandler
}

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	metricHandler *handler.MetricHandler,
	reportHandler *handler.ReportHandler,
	predictionHandler *handler.PredictionHandler,
	organizationHandler *handler.OrganizationHandler,
	assistantHandler *handler.AssistantHandler,
	preferencesHandler *handler.PreferencesHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "AquaSentinel Pollution Monitoring Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                 app,
		config:              cfg,
		logger:              logger,
		metricHandler:       metricHandler,
		reportHandler:       reportHandler,
		predictionHandler:   predictionHandler,
		organizationHandler: organizationHandler,
		assistantHandler:    assistantHandler,
		preferencesHandler:  preferencesHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
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

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Metric routes - map marker feed
	api.Get("/metrics", s.metricHandler.GetMetrics)
	api.Get("/metrics/:id", s.metricHandler.GetMetric)

	// Report routes - community reporting hub
	api.Get("/reports", s.reportHandler.GetRecentReports)
	api.Post("/reports", s.reportHandler.SubmitReport)

	// Prediction routes - AI insights feed
	api.Get("/predictions", s.predictionHandler.GetPredictions)

	// Organization routes - responder directory with distances
	api.Get("/organizations", s.organizationHandler.GetOrganizations)

	// Assistant routes - rule-based dialogue
	api.Post("/assistant/chat", s.assistantHandler.Chat)
	api.Get("/assistant/greeting", s.assistantHandler.Greeting)

	// Preferences - tutorial-seen flag
	api.Get("/preferences/tutorial", s.preferencesHandler.GetTutorial)
	api.Put("/preferences/tutorial", s.preferencesHandler.SetTutorial)
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

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
