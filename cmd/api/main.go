package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jhoicas/tradechain-api/docs"
	"github.com/jhoicas/tradechain-api/internal/application/report"
	"github.com/jhoicas/tradechain-api/internal/application/usecase"
	"github.com/jhoicas/tradechain-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/tradechain-api/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/tradechain-api/internal/interfaces/http"
	"github.com/jhoicas/tradechain-api/pkg/config"
	"github.com/jhoicas/tradechain-api/pkg/logger"
)

// @title           Tradechain API
// @version         1.0
// @description     Simulación de impuestos y utilidades en una cadena comercial de varias etapas.
// @BasePath        /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	policies, err := regionPolicies(cfg.Sim)
	if err != nil {
		log.Fatal().Err(err).Msg("políticas tributarias")
	}
	defaults, err := simulationDefaults(cfg.Sim)
	if err != nil {
		log.Fatal().Err(err).Msg("valores por defecto de la simulación")
	}

	// Catálogo en memoria, sembrado al arrancar.
	seed := memory.SeedCatalog()
	manufacturerRepo, err := memory.NewManufacturerRepository(seed.Manufacturers...)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo de fabricantes")
	}
	funderRepo, err := memory.NewFunderRepository(seed.Funders...)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo de financiadores")
	}
	retailerRepo, err := memory.NewRetailerRepository(seed.Retailers...)
	if err != nil {
		log.Fatal().Err(err).Msg("catálogo de minoristas")
	}
	policyRepo := memory.NewPolicyRepository(policies)

	simulationUC := usecase.NewSimulationUseCase(manufacturerRepo, funderRepo, retailerRepo, policyRepo, defaults, log)
	analysisUC := usecase.NewAnalysisUseCase(simulationUC)
	catalogUC := usecase.NewCatalogUseCase(manufacturerRepo, funderRepo, retailerRepo, policyRepo, log)
	summaryUC := report.NewSummaryUseCase(simulationUC, analysisUC, infrapdf.NewMarotoPDFGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tradechain API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		SimulationUC: simulationUC,
		AnalysisUC:   analysisUC,
		CatalogUC:    catalogUC,
		SummaryPDF:   summaryUC,
		JWTSecret:    cfg.JWT.Secret,
	})

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: las rutas de administración del catálogo rechazarán todo token")
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
