// Package main provides the ConfigForge API server implementation.
package main

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"

	"github.com/configforge/configforge/pkg/oracle"
	"github.com/configforge/configforge/pkg/schemas"
	"github.com/configforge/configforge/pkg/services"
	"github.com/configforge/configforge/pkg/web"
	"github.com/configforge/configforge/pkg/wizard"
)

type API struct {
	logger    *slog.Logger
	repo      *schemas.Repository
	generator *services.Generator
	sessions  *wizard.Store
	validate  *validator.Validate
}

func NewAPI(
	logger *slog.Logger,
	schemasDir string,
	apiKey string,
	model string,
	oracleTimeout time.Duration,
) (*API, error) {
	repo, err := schemas.NewRepository(schemasDir, logger)
	if err != nil {
		return nil, err
	}

	completion := oracle.NewOpenAI(apiKey, model, oracleTimeout, logger)

	return &API{
		logger:    logger,
		repo:      repo,
		generator: services.NewGenerator(repo, completion, logger),
		sessions:  wizard.NewStore(),
		validate:  validator.New(validator.WithRequiredStructEnabled()),
	}, nil
}

func (a *API) App() *fiber.App {
	handlers := web.NewAPIHandlers(a.repo, a.generator, a.sessions, a.validate, a.logger)

	app := fiber.New()
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Get("/", func(c fiber.Ctx) error {
		return c.SendString("ConfigForge API")
	})

	app.Get("/sections", handlers.GetSections)
	app.Get("/sections/:name", handlers.GetSection)
	app.Get("/section-order", handlers.GetSectionOrder)
	app.Post("/generate-config", handlers.GenerateConfig)
	app.Post("/validate-config", handlers.ValidateConfig)

	w := app.Group("/wizard")
	w.Post("/next", handlers.WizardNext)
	w.Post("/sessions", handlers.CreateSession)
	w.Post("/sessions/:id/message", handlers.SessionMessage)
	w.Get("/sessions/:id/config", handlers.GetSessionConfig)
	w.Get("/sessions/:id/messages", handlers.GetSessionMessages)
	w.Patch("/sessions/:id/sections/:section", handlers.ToggleSection)

	app.Get("/health", handlers.HealthCheck)

	return app
}

func (a *API) Start(port int) error {
	app := a.App()

	err := app.Listen(":" + strconv.Itoa(port))

	return err
}
