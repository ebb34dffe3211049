package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/tradechain-api/internal/application/dto"
	"github.com/jhoicas/tradechain-api/internal/application/report"
	"github.com/jhoicas/tradechain-api/internal/application/usecase"
	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/jhoicas/tradechain-api/internal/domain/simulation"
	"github.com/jhoicas/tradechain-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/tradechain-api/internal/interfaces/http"
	"github.com/jhoicas/tradechain-api/pkg/logger"
	pkgjwt "github.com/jhoicas/tradechain-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type stubPDF struct{}

func (stubPDF) GenerateSummaryPDF(_ context.Context, s report.Summary) ([]byte, error) {
	return []byte("%PDF-1.3 " + s.ReferenceID), nil
}

// buildApp API completa sobre el catálogo sembrado en memoria.
func buildApp(t *testing.T) *fiber.App {
	t.Helper()
	seed := memory.SeedCatalog()
	mfr, err := memory.NewManufacturerRepository(seed.Manufacturers...)
	require.NoError(t, err)
	funders, err := memory.NewFunderRepository(seed.Funders...)
	require.NoError(t, err)
	retailers, err := memory.NewRetailerRepository(seed.Retailers...)
	require.NoError(t, err)
	policies := memory.NewPolicyRepository(entity.DefaultRegionPolicies())

	defaults := usecase.SimulationDefaults{
		FunderAnnualPercent:   decimal.NewFromInt(6),
		PlatformAnnualPercent: decimal.RequireFromString("4.35"),
		IncludeIncomeTax:      true,
		Platform: simulation.PlatformConfig{
			ID:            "platform",
			Name:          "Plataforma",
			Tax:           simulation.TaxProfile{Region: entity.RegionTibet, Taxpayer: entity.TaxpayerGeneral},
			MarkupPercent: decimal.NewFromInt(10),
		},
		Trader: simulation.TraderConfig{
			Name:          "Comercializador",
			Tax:           simulation.TaxProfile{Region: entity.RegionMainland, Taxpayer: entity.TaxpayerGeneral},
			MarkupPercent: decimal.NewFromInt(5),
		},
		FunderRegion:   entity.RegionTibet,
		RetailerRegion: entity.RegionMainland,
	}
	log := logger.Nop()
	sim := usecase.NewSimulationUseCase(mfr, funders, retailers, policies, defaults, log)
	analysis := usecase.NewAnalysisUseCase(sim)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		SimulationUC: sim,
		AnalysisUC:   analysis,
		CatalogUC:    usecase.NewCatalogUseCase(mfr, funders, retailers, policies, log),
		SummaryPDF:   report.NewSummaryUseCase(sim, analysis, stubPDF{}),
		JWTSecret:    testJWTSecret,
	})
	return app
}

const simulationBody = `{
	"package": [{"manufacturer_id": "m1", "product_id": "p1-1", "quantity": 1}],
	"funder": {"id": "f1"},
	"retailer": {"id": "r1", "markup_percent": "20"}
}`

func do(t *testing.T, app *fiber.App, method, path, body, auth string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Simulación
// ──────────────────────────────────────────────────────────────────────────────

func TestSimulate_OK(t *testing.T) {
	app := buildApp(t)

	resp := do(t, app, http.MethodPost, "/api/simulations", simulationBody, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decode[dto.SimulationResponse](t, resp)
	assert.Equal(t, "platform", out.Platform.Role)
	assert.Nil(t, out.Trader)
	assert.True(t, out.Summary.PackageMSRP.Equal(decimal.NewFromInt(1388)))
	assert.True(t, out.Retailer.OutPriceIncl.IsPositive())
}

func TestSimulate_Errores(t *testing.T) {
	app := buildApp(t)

	tests := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"json inválido", `{"package":`, http.StatusBadRequest, "INVALID_BODY"},
		{"paquete vacío", `{"funder":{"id":"f1"},"retailer":{"id":"r1"}}`, http.StatusBadRequest, "VALIDATION"},
		{"financiador inexistente", strings.Replace(simulationBody, `"f1"`, `"fx"`, 1), http.StatusNotFound, "NOT_FOUND"},
		{"modalidad desconocida", strings.Replace(simulationBody, `"id": "r1"`, `"id": "r1", "mode": "barter"`, 1), http.StatusBadRequest, "VALIDATION"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := do(t, app, http.MethodPost, "/api/simulations", tt.body, "")
			assert.Equal(t, tt.status, resp.StatusCode)
			assert.Equal(t, tt.code, decode[dto.ErrorResponse](t, resp).Code)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Análisis
// ──────────────────────────────────────────────────────────────────────────────

func TestAnalysis_Endpoints(t *testing.T) {
	app := buildApp(t)

	for _, path := range []string{
		"/api/analysis/compare",
		"/api/analysis/sensitivity?param=funder_interest",
		"/api/analysis/reverse?target=150",
		"/api/analysis/capital",
		"/api/analysis/structure",
	} {
		t.Run(path, func(t *testing.T) {
			resp := do(t, app, http.MethodPost, path, simulationBody, "")
			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestAnalysis_Sensitivity(t *testing.T) {
	app := buildApp(t)

	resp := do(t, app, http.MethodPost, "/api/analysis/sensitivity?param=retailer_payment_term", simulationBody, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.SensitivityResponse](t, resp)
	require.Len(t, out.Points, 5)
	assert.True(t, out.Points[2].Value.Equal(decimal.NewFromInt(45)))

	resp = do(t, app, http.MethodPost, "/api/analysis/sensitivity", simulationBody, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/analysis/sensitivity?param=weather", simulationBody, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestAnalysis_Reverse_TargetInvalido(t *testing.T) {
	app := buildApp(t)

	resp := do(t, app, http.MethodPost, "/api/analysis/reverse?target=mucho", simulationBody, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, resp).Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Informe PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestSummaryPDF(t *testing.T) {
	app := buildApp(t)

	resp := do(t, app, http.MethodPost, "/api/reports/summary.pdf", simulationBody, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), `attachment; filename="simulacion-`)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(body, []byte("%PDF")))
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestCatalog_LecturaPublica(t *testing.T) {
	app := buildApp(t)

	resp := do(t, app, http.MethodGet, "/api/catalog/manufacturers", "", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	mfrs := decode[dto.ListResponse[dto.ManufacturerResponse]](t, resp)
	assert.Equal(t, 2, mfrs.Total)

	for _, path := range []string{"/api/catalog/funders", "/api/catalog/retailers", "/api/catalog/policies"} {
		resp := do(t, app, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestCatalog_EscrituraRequiereAdmin(t *testing.T) {
	app := buildApp(t)
	body := `{"name":"Nuevo","taxpayer":"general"}`

	resp := do(t, app, http.MethodPost, "/api/catalog/manufacturers", body, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/catalog/manufacturers", body, tokenForRole(t, "analyst"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = do(t, app, http.MethodDelete, "/api/catalog/funders/f1", "", tokenForRole(t, "analyst"))
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestCatalog_CicloAdmin(t *testing.T) {
	app := buildApp(t)
	admin := tokenForRole(t, pkgjwt.RoleAdmin)

	resp := do(t, app, http.MethodPost, "/api/catalog/manufacturers",
		`{"name":"Cooperativa","taxpayer":"small","products":[{"name":"Té","base_price":"50","msrp":98}]}`, admin)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	m := decode[dto.ManufacturerResponse](t, resp)
	require.Len(t, m.Products, 1)

	resp = do(t, app, http.MethodPost, "/api/catalog/manufacturers/"+m.ID+"/products", `{"name":"Miel","base_price":60,"msrp":120}`, admin)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/catalog/manufacturers/mx/products", `{"name":"Miel","base_price":60,"msrp":120}`, admin)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/catalog/manufacturers", `{"name":"","taxpayer":"general"}`, admin)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = do(t, app, http.MethodPost, "/api/catalog/funders", `{"name":"Banco","default_markup_percent":1,"default_payment_term_months":12}`, admin)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	fu := decode[dto.FunderResponse](t, resp)

	resp = do(t, app, http.MethodPost, "/api/catalog/retailers", `{"name":"Tienda","default_markup_percent":25,"default_payment_term_days":7,"default_taxpayer":"small"}`, admin)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	rt := decode[dto.RetailerResponse](t, resp)

	// Lo recién creado se puede simular.
	sim := `{"package":[{"manufacturer_id":"` + m.ID + `","product_id":"` + m.Products[0].ID + `","quantity":2}],` +
		`"funder":{"id":"` + fu.ID + `"},"retailer":{"id":"` + rt.ID + `"}}`
	resp = do(t, app, http.MethodPost, "/api/simulations", sim, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, path := range []string{
		"/api/catalog/manufacturers/" + m.ID,
		"/api/catalog/funders/" + fu.ID,
		"/api/catalog/retailers/" + rt.ID,
	} {
		resp = do(t, app, http.MethodDelete, path, "", admin)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode, path)
		resp = do(t, app, http.MethodDelete, path, "", admin)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}

	resp = do(t, app, http.MethodPost, "/api/simulations", sim, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCatalog_AgregarProductoNoAfectaSimulacionesPosteriores(t *testing.T) {
	app := buildApp(t)
	admin := tokenForRole(t, pkgjwt.RoleAdmin)

	resp := do(t, app, http.MethodPost, "/api/catalog/manufacturers",
		`{"name":"Cooperativa","taxpayer":"general","products":[{"name":"Té","base_price":50,"msrp":98}]}`, admin)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	m := decode[dto.ManufacturerResponse](t, resp)

	simulate := func(productID string) int {
		body := `{"package":[{"manufacturer_id":"` + m.ID + `","product_id":"` + productID + `","quantity":1}],` +
			`"funder":{"id":"f1"},"retailer":{"id":"r1"}}`
		return do(t, app, http.MethodPost, "/api/simulations", body, "").StatusCode
	}
	require.Equal(t, http.StatusOK, simulate(m.Products[0].ID))

	resp = do(t, app, http.MethodPost, "/api/catalog/manufacturers/"+m.ID+"/products", `{"name":"Miel","base_price":60,"msrp":120}`, admin)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	p := decode[dto.ProductResponse](t, resp)

	// Peticiones posteriores reutilizan los buffers de fiber.
	resp = do(t, app, http.MethodPost, "/api/catalog/manufacturers/mx/products", `{"name":"Otro","base_price":1}`, admin)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = do(t, app, http.MethodPost, "/api/catalog/funders", `{"name":"Banco","default_markup_percent":1,"default_payment_term_months":12}`, admin)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Equal(t, http.StatusOK, simulate(m.Products[0].ID))
	assert.Equal(t, http.StatusOK, simulate(p.ID))

	resp = do(t, app, http.MethodDelete, "/api/catalog/manufacturers/"+m.ID, "", admin)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, http.StatusNotFound, simulate(p.ID))
}
