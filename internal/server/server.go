package server

import (
	"context"
	"strings"

	"lab-notebook-be/internal/bootstrap"
	"lab-notebook-be/internal/config"
	"lab-notebook-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	bodyLimitMB := cfg.App.BodyLimitMB
	if bodyLimitMB <= 0 {
		bodyLimitMB = 10
	}

	app := fiber.New(fiber.Config{
		AppName:      "lab-notebook",
		BodyLimit:    bodyLimitMB * 1024 * 1024,
		ErrorHandler: serverutils.ErrorHandler(container.Logger),
	})

	// Middleware (metrics outermost so recovered panics are counted)
	if cfg.Telemetry.MetricsEnabled {
		app.Use(container.Metrics.Middleware())
		app.Get("/metrics", container.Metrics.Handler())
	}
	app.Use(recover.New())
	app.Use(cors.New(corsConfig(cfg.App.CorsAllowedOrigins)))

	// OpenTelemetry tracing middleware (no-op provider unless OTEL_ENABLED)
	app.Use(otelfiber.Middleware())

	// Routes
	registerRoutes(app, container)

	// Static (after the blob-backed /static/reactions route)
	app.Static("/static", cfg.App.StaticDir)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("SERVER", "Server is running", map[string]interface{}{
		"address": "http://localhost:" + s.cfg.App.Port,
	})
	return s.app.Listen(":" + s.cfg.App.Port)
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func corsConfig(origins string) cors.Config {
	origins = strings.TrimSpace(origins)
	if origins == "" {
		origins = "*"
	}
	return cors.Config{
		AllowOrigins: origins,
		// Credentials cannot be combined with a wildcard origin.
		AllowCredentials: origins != "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type",
	}
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	c.HealthController.RegisterRoutes(app)

	c.NotebookController.RegisterRoutes(app)
	c.ExperimentController.RegisterRoutes(app)
	c.ReactionImageController.RegisterRoutes(app)
}
