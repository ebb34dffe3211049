package dto

import "github.com/shopspring/decimal"

// MetricResponse indicador en ambas modalidades.
type MetricResponse struct {
	Label       string          `json:"label"`
	Sales       decimal.Decimal `json:"sales"`
	Consignment decimal.Decimal `json:"consignment"`
	Better      string          `json:"better,omitempty"` // sales | consignment; vacío si empatan
}

// ModeComparisonResponse comparación compra-venta vs consignación.
type ModeComparisonResponse struct {
	Platform []MetricResponse `json:"platform"`
	Retailer []MetricResponse `json:"retailer"`
}

// SensitivityPointResponse un escenario del análisis de sensibilidad.
type SensitivityPointResponse struct {
	Label     string          `json:"label"`
	Factor    decimal.Decimal `json:"factor"`
	Value     decimal.Decimal `json:"value"`
	NetProfit decimal.Decimal `json:"net_profit"`
	ROI       decimal.Decimal `json:"roi_percent"`
	Delta     decimal.Decimal `json:"delta"`
}

// SensitivityResponse resultado por parámetro.
type SensitivityResponse struct {
	Parameter string                     `json:"parameter"`
	Points    []SensitivityPointResponse `json:"points"`
}

// ReverseQuoteResponse precio sugerido para una utilidad objetivo.
type ReverseQuoteResponse struct {
	TargetProfit    decimal.Decimal `json:"target_profit"`
	CurrentProfit   decimal.Decimal `json:"current_profit"`
	SuggestedExcl   decimal.Decimal `json:"suggested_price_excl"`
	SuggestedIncl   decimal.Decimal `json:"suggested_price_incl"`
	CurrentMarkup   decimal.Decimal `json:"current_markup_percent"`
	SuggestedMarkup decimal.Decimal `json:"suggested_markup_percent"`
}

// CapitalMetricsResponse eficiencia del capital propio de la plataforma.
type CapitalMetricsResponse struct {
	PayableDays    int             `json:"payable_days"`
	ReceivableDays int             `json:"receivable_days"`
	FundingGapDays int             `json:"funding_gap_days"`
	DealDays       int             `json:"deal_days"`
	AnnualTurnover decimal.Decimal `json:"annual_turnover"`
	OwnCapital     decimal.Decimal `json:"own_capital"`
	AnnualizedROE  decimal.Decimal `json:"annualized_roe_percent"`
	Unbounded      bool            `json:"unbounded"`
}

// StructureItemResponse componente del ingreso de la plataforma.
type StructureItemResponse struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
	Share decimal.Decimal `json:"share_percent"`
}

// CostStructureResponse estructura del ingreso con IVA de la plataforma.
type CostStructureResponse struct {
	RevenueIncl decimal.Decimal         `json:"revenue_incl"`
	Items       []StructureItemResponse `json:"items"`
}
