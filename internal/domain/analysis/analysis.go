// Package analysis herramientas de escenarios ("qué pasaría si") sobre el
// motor de simulación. Cada herramienta corre simulation.Simulate sobre copias
// modificadas de la configuración; no hay caché ni estado compartido.
package analysis

import (
	"fmt"

	"github.com/jhoicas/tradechain-api/internal/domain"
	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/jhoicas/tradechain-api/internal/domain/simulation"
	"github.com/shopspring/decimal"
)

var (
	hundred  = decimal.NewFromInt(100)
	one      = decimal.NewFromInt(1)
	minShare = decimal.RequireFromString("0.01")
)

func ratio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

// ── Comparación compra-venta vs consignación ─────────────────────────────────

// Metric valor de un indicador en ambas modalidades.
type Metric struct {
	Label          string
	Sales          decimal.Decimal
	Consignment    decimal.Decimal
	HigherIsBetter bool
}

// Better modalidad más favorable; vacío si empatan (diferencia < 0.01).
func (m Metric) Better() entity.TradeMode {
	diff := m.Sales.Sub(m.Consignment)
	if diff.Abs().LessThan(minShare) {
		return ""
	}
	if diff.IsPositive() == m.HigherIsBetter {
		return entity.TradeModeSales
	}
	return entity.TradeModeConsignment
}

// ModeComparison indicadores de plataforma y minorista en ambas modalidades.
type ModeComparison struct {
	Platform []Metric
	Retailer []Metric
}

// CompareModes corre la misma configuración en compra-venta y en consignación.
func CompareModes(cfg simulation.Configuration) ModeComparison {
	salesCfg := cfg
	salesCfg.Retailer.Mode = entity.TradeModeSales
	consignCfg := cfg
	consignCfg.Retailer.Mode = entity.TradeModeConsignment

	sales := simulation.Simulate(salesCfg)
	consign := simulation.Simulate(consignCfg)

	return ModeComparison{
		Platform: []Metric{
			{Label: "Utilidad neta", Sales: sales.Platform.NetProfit, Consignment: consign.Platform.NetProfit, HigherIsBetter: true},
			{Label: "Carga tributaria", Sales: sales.Platform.TotalTax(), Consignment: consign.Platform.TotalTax()},
		},
		Retailer: []Metric{
			{Label: "Utilidad neta", Sales: sales.Retailer.NetProfit, Consignment: consign.Retailer.NetProfit, HigherIsBetter: true},
			{Label: "Costo financiero", Sales: sales.Retailer.FinanceCost, Consignment: consign.Retailer.FinanceCost},
		},
	}
}

// ── Sensibilidad ─────────────────────────────────────────────────────────────

// Parameter parámetro que se perturba en el análisis de sensibilidad.
type Parameter string

const (
	ParamPlatformMarkup  Parameter = "platform_markup"
	ParamFunderMarkup    Parameter = "funder_markup"
	ParamFunderInterest  Parameter = "funder_interest"
	ParamRetailerPayTerm Parameter = "retailer_payment_term"
)

// Valid indica si el parámetro es conocido.
func (p Parameter) Valid() bool {
	switch p {
	case ParamPlatformMarkup, ParamFunderMarkup, ParamFunderInterest, ParamRetailerPayTerm:
		return true
	}
	return false
}

// Scenario factor aplicado al parámetro.
type Scenario struct {
	Label  string
	Factor decimal.Decimal
}

// DefaultScenarios -20%, -10%, base, +10%, +20%.
var DefaultScenarios = []Scenario{
	{Label: "Muy pesimista (-20%)", Factor: decimal.RequireFromString("0.8")},
	{Label: "Pesimista (-10%)", Factor: decimal.RequireFromString("0.9")},
	{Label: "Base", Factor: one},
	{Label: "Optimista (+10%)", Factor: decimal.RequireFromString("1.1")},
	{Label: "Muy optimista (+20%)", Factor: decimal.RequireFromString("1.2")},
}

// SensitivityPoint resultado de un escenario.
type SensitivityPoint struct {
	Scenario
	Value     decimal.Decimal // valor aplicado del parámetro (porcentaje o días)
	NetProfit decimal.Decimal // utilidad neta de la plataforma
	ROI       decimal.Decimal // utilidad / ingreso sin IVA × 100
	Delta     decimal.Decimal // diferencia contra el escenario base
}

// Sensitivity corre cada escenario perturbando un solo parámetro.
func Sensitivity(cfg simulation.Configuration, param Parameter, scenarios []Scenario) ([]SensitivityPoint, error) {
	if !param.Valid() {
		return nil, fmt.Errorf("%w: parámetro de sensibilidad %q", domain.ErrInvalidInput, param)
	}
	if len(scenarios) == 0 {
		scenarios = DefaultScenarios
	}

	base := simulation.Simulate(cfg).Platform.NetProfit
	points := make([]SensitivityPoint, 0, len(scenarios))
	for _, sc := range scenarios {
		variant, value := perturb(cfg, param, sc.Factor)
		p := simulation.Simulate(variant).Platform
		points = append(points, SensitivityPoint{
			Scenario:  sc,
			Value:     value,
			NetProfit: p.NetProfit,
			ROI:       ratio(p.NetProfit, p.RevenueExcl).Mul(hundred),
			Delta:     p.NetProfit.Sub(base),
		})
	}
	return points, nil
}

// perturb devuelve una copia con el parámetro escalado. Los plazos se redondean a días enteros.
func perturb(cfg simulation.Configuration, param Parameter, factor decimal.Decimal) (simulation.Configuration, decimal.Decimal) {
	out := cfg
	switch param {
	case ParamPlatformMarkup:
		out.Platform.MarkupPercent = cfg.Platform.MarkupPercent.Mul(factor)
		return out, out.Platform.MarkupPercent
	case ParamFunderMarkup:
		out.Funder.MarkupPercent = cfg.Funder.MarkupPercent.Mul(factor)
		return out, out.Funder.MarkupPercent
	case ParamFunderInterest:
		out.Rates.FunderAnnualPercent = cfg.Rates.FunderAnnualPercent.Mul(factor)
		return out, out.Rates.FunderAnnualPercent
	default:
		days := decimal.NewFromInt(int64(cfg.Retailer.PaymentTermDays)).Mul(factor).Round(0)
		out.Retailer.PaymentTermDays = int(days.IntPart())
		return out, days
	}
}

// ── Precio inverso ───────────────────────────────────────────────────────────

// ReverseQuote precio sugerido de la plataforma para una utilidad objetivo.
type ReverseQuote struct {
	TargetProfit    decimal.Decimal
	CurrentProfit   decimal.Decimal
	SuggestedExcl   decimal.Decimal
	SuggestedIncl   decimal.Decimal
	CurrentMarkup   decimal.Decimal // porcentaje sobre el precio de entrada sin IVA
	SuggestedMarkup decimal.Decimal
}

// ReversePrice estima el ingreso que necesita la plataforma para alcanzar la
// utilidad objetivo sumando la diferencia al ingreso actual. Es una
// aproximación: no recalcula impuestos sobre el incremento.
func ReversePrice(res simulation.Result, target decimal.Decimal) ReverseQuote {
	p := res.Platform
	suggestedExcl := p.RevenueExcl.Add(target.Sub(p.NetProfit))
	markup := func(price decimal.Decimal) decimal.Decimal {
		if p.InPriceExcl.IsZero() {
			return decimal.Zero
		}
		return price.Div(p.InPriceExcl).Sub(one).Mul(hundred)
	}
	return ReverseQuote{
		TargetProfit:    target,
		CurrentProfit:   p.NetProfit,
		SuggestedExcl:   suggestedExcl,
		SuggestedIncl:   suggestedExcl.Mul(one.Add(p.Taxpayer.VATRate())),
		CurrentMarkup:   markup(p.RevenueExcl),
		SuggestedMarkup: markup(suggestedExcl),
	}
}

// ── Eficiencia de capital ────────────────────────────────────────────────────

const (
	minDealDays = 30
	yearDays    = 365
)

// CapitalMetrics rotación y rentabilidad anualizada del capital propio de la plataforma.
type CapitalMetrics struct {
	PayableDays    int
	ReceivableDays int
	FundingGapDays int
	DealDays       int
	AnnualTurnover decimal.Decimal
	OwnCapital     decimal.Decimal
	AnnualizedROE  decimal.Decimal // porcentaje
	Unbounded      bool            // utilidad positiva sin capital propio
}

// CapitalEfficiency anualiza la utilidad de la plataforma sobre el capital
// que debe aportar: la compra si hay brecha de financiación, más los gastos operativos.
func CapitalEfficiency(cfg simulation.Configuration, res simulation.Result) CapitalMetrics {
	p := res.Platform
	ap := cfg.PayableDays()
	ar := cfg.ReceivableDays()
	gap := ar - ap
	if gap < 0 {
		gap = 0
	}
	deal := max(ar, ap, minDealDays)
	turnover := decimal.NewFromInt(yearDays).Div(decimal.NewFromInt(int64(deal)))

	own := p.OperationalCost
	if gap > 0 {
		own = own.Add(p.InPriceIncl)
	}

	return CapitalMetrics{
		PayableDays:    ap,
		ReceivableDays: ar,
		FundingGapDays: gap,
		DealDays:       deal,
		AnnualTurnover: turnover,
		OwnCapital:     own,
		AnnualizedROE:  ratio(p.NetProfit.Mul(turnover), own).Mul(hundred),
		Unbounded:      own.IsZero() && p.NetProfit.IsPositive(),
	}
}

// ── Estructura de costos ─────────────────────────────────────────────────────

// StructureItem componente del ingreso de la plataforma.
type StructureItem struct {
	Label string
	Value decimal.Decimal
	Share decimal.Decimal // porcentaje del ingreso con IVA
}

// CostStructure descompone el ingreso con IVA de la plataforma. Omite
// componentes menores a 0.01 en valor absoluto.
func CostStructure(p simulation.EntityResult) []StructureItem {
	if p.RevenueIncl.IsZero() {
		return []StructureItem{}
	}
	type part struct {
		label string
		value decimal.Decimal
	}
	parts := []part{
		{"Compra de mercancía", p.InPriceIncl},
		{"Carga tributaria neta", p.NetTax()},
		{"Costo financiero", p.FinanceCost},
	}
	if p.CommissionCost.IsPositive() {
		parts = append(parts, part{"Comisión de consignación", p.CommissionCost})
	}
	if p.CostDetails != nil {
		parts = append(parts,
			part{"Almacenamiento", p.CostDetails.Warehousing},
			part{"Logística", p.CostDetails.Logistics},
			part{"Administración", p.CostDetails.Management},
			part{"Otros gastos", p.CostDetails.Other},
		)
	} else if p.OperationalCost.IsPositive() {
		parts = append(parts, part{"Gastos operativos", p.OperationalCost})
	}
	parts = append(parts, part{"Utilidad neta", p.NetProfit})

	items := make([]StructureItem, 0, len(parts))
	for _, pt := range parts {
		if pt.value.Abs().LessThanOrEqual(minShare) {
			continue
		}
		items = append(items, StructureItem{
			Label: pt.label,
			Value: pt.value,
			Share: ratio(pt.value, p.RevenueIncl).Mul(hundred),
		})
	}
	return items
}
