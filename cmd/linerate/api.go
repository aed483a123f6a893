// Package main provides the linerate CLI and API server.
package main

import (
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"go.opentelemetry.io/otel/trace"

	"github.com/linerate/linerate/pkg/services"
	"github.com/linerate/linerate/pkg/web"
)

type API struct {
	logger *slog.Logger
	tracer trace.Tracer
}

func NewAPI(logger *slog.Logger) *API {
	return &API{
		logger: logger,
	}
}

func (a *API) App() *fiber.App {
	analysisService := services.NewAnalysis(a.logger)
	handlers := web.NewAPIHandlers(analysisService, a.tracer)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("linerate API")
	})

	app.Post("/analyses", handlers.CreateAnalysis)

	t := app.Group("/templates")
	t.Get("/", handlers.GetTemplates)
	t.Get("/:id", handlers.GetTemplate)
	t.Get("/:id/analysis", handlers.GetTemplateAnalysis)

	app.Get("/health", handlers.HealthCheck)

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	err := app.Listen(":" + strconv.Itoa(port))

	return err
}
