package http

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/midpoint-service/internal/config"
	"github.com/midpoint-service/internal/delivery/http/handler"
	"github.com/midpoint-service/internal/delivery/http/middleware"
	"github.com/midpoint-service/internal/pkg/errors"
	"github.com/midpoint-service/internal/pkg/metrics"
	"github.com/midpoint-service/internal/pkg/utils"
)

// HealthChecker reports the state of an optional dependency
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	midpointHandler *handler.MidpointHandler
	cache           HealthChecker
}

// NewServer - создание нового HTTP сервера. cache may be nil when Redis is disabled.
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	midpointHandler *handler.MidpointHandler,
	cache HealthChecker,
) *Server {
	// the remote geocoding calls bound the request time, so leave headroom over them
	writeTimeout := 3*cfg.Geocoding.RequestTimeout + 5*time.Second

	app := fiber.New(fiber.Config{
		AppName:      "Midpoint Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: writeTimeout,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:             app,
		config:          cfg,
		logger:          logger,
		midpointHandler: midpointHandler,
		cache:           cache,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(metrics.Middleware())
	s.app.Use(middleware.CORS(s.config.Server.AllowOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов
func (s *Server) setupRoutes() {
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)
	s.app.Get("/metrics", metrics.Handler())

	// совместимый маршрут без обёртки
	s.app.Post("/api/midpoint", s.midpointHandler.LegacyMidpoint)

	api := s.app.Group("/api/v1")

	api.Get("/health", s.health)

	api.Post("/midpoint", s.midpointHandler.ComputeMidpoint)
	api.Post("/midpoint/geojson", s.midpointHandler.MidpointGeoJSON)

	api.Get("/history", s.midpointHandler.ListHistory)
	api.Get("/history/:id", s.midpointHandler.GetHistory)
}

func (s *Server) health(c *fiber.Ctx) error {
	checks := fiber.Map{
		"geocoding_credential": s.config.Geocoding.APIToken != "",
	}
	status := "healthy"

	if s.cache != nil {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := s.cache.Health(ctx); err != nil {
			s.logger.Warn("Redis health check failed", zap.Error(err))
			checks["redis"] = err.Error()
			status = "degraded"
		} else {
			checks["redis"] = "ok"
		}
	}

	return c.JSON(fiber.Map{
		"status": status,
		"checks": checks,
		"time":   time.Now(),
	})
}

// App exposes the fiber app, mainly for app.Test
func (s *Server) App() *fiber.App {
	return s.app
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
		var fe *fiber.Error
		if stderrors.As(err, &fe) {
			code := errors.CodeInternalServer
			switch fe.Code {
			case fiber.StatusNotFound:
				code = errors.CodeNotFound
			case fiber.StatusBadRequest, fiber.StatusMethodNotAllowed, fiber.StatusRequestEntityTooLarge:
				code = errors.CodeInvalidRequest
			}

			if fe.Code >= fiber.StatusInternalServerError {
				logger.Error("HTTP Error", zap.String("path", c.Path()), zap.Int("status", fe.Code), zap.Error(err))
			}

			return c.Status(fe.Code).JSON(utils.ErrorResponse{
				Error: errors.New(code, fe.Message, fe.Code),
			})
		}

		logger.Error("HTTP Error", zap.String("path", c.Path()), zap.Error(err))
		return utils.SendError(c, err)
	}
}
