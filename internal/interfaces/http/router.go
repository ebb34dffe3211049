package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tradechain-api/internal/application/report"
	"github.com/jhoicas/tradechain-api/internal/application/usecase"
	"github.com/jhoicas/tradechain-api/pkg/jwt"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	SimulationUC *usecase.SimulationUseCase
	AnalysisUC   *usecase.AnalysisUseCase
	CatalogUC    *usecase.CatalogUseCase
	SummaryPDF   *report.SummaryUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	simHandler := NewSimulationHandler(deps.SimulationUC, deps.SummaryPDF)
	api.Post("/simulations", simHandler.Simulate)
	api.Post("/reports/summary.pdf", simHandler.SummaryPDF)

	analysis := api.Group("/analysis")
	analysisHandler := NewAnalysisHandler(deps.AnalysisUC)
	analysis.Post("/compare", analysisHandler.Compare)
	analysis.Post("/sensitivity", analysisHandler.Sensitivity)
	analysis.Post("/reverse", analysisHandler.Reverse)
	analysis.Post("/capital", analysisHandler.Capital)
	analysis.Post("/structure", analysisHandler.Structure)

	// Catálogo: lectura pública, escritura solo admin.
	catalog := api.Group("/catalog")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalog.Get("/manufacturers", catalogHandler.ListManufacturers)
	catalog.Get("/funders", catalogHandler.ListFunders)
	catalog.Get("/retailers", catalogHandler.ListRetailers)
	catalog.Get("/policies", catalogHandler.ListPolicies)

	admin := catalog.Group("", AuthMiddleware(deps.JWTSecret), RequireRole(jwt.RoleAdmin))
	admin.Post("/manufacturers", catalogHandler.CreateManufacturer)
	admin.Post("/manufacturers/:id/products", catalogHandler.AddProduct)
	admin.Delete("/manufacturers/:id", catalogHandler.DeleteManufacturer)
	admin.Post("/funders", catalogHandler.CreateFunder)
	admin.Delete("/funders/:id", catalogHandler.DeleteFunder)
	admin.Post("/retailers", catalogHandler.CreateRetailer)
	admin.Delete("/retailers/:id", catalogHandler.DeleteRetailer)
}
