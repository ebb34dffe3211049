package dto

import "github.com/shopspring/decimal"

// Porcentajes planos: 20 = 20%. Los campos puntero omitidos toman el valor
// por defecto del catálogo, de la política de la región o de la configuración.

// PackageItemRequest línea del paquete de compra.
type PackageItemRequest struct {
	ManufacturerID string `json:"manufacturer_id"`
	ProductID      string `json:"product_id"`
	Quantity       int    `json:"quantity"`
}

// TaxOverride perfil tributario de una etapa.
type TaxOverride struct {
	Region                 *string          `json:"region,omitempty"`   // tibet | mainland
	Taxpayer               *string          `json:"taxpayer,omitempty"` // general | small
	SurchargePercent       *decimal.Decimal `json:"surcharge_percent,omitempty"`
	IncomeTaxPercent       *decimal.Decimal `json:"income_tax_percent,omitempty"`
	VATRefundPercent       *decimal.Decimal `json:"vat_refund_percent,omitempty"`
	IncomeTaxRefundPercent *decimal.Decimal `json:"income_tax_refund_percent,omitempty"`
}

// FunderRequest financiador del catálogo y ajustes.
type FunderRequest struct {
	ID                   string           `json:"id"`
	MarkupPercent        *decimal.Decimal `json:"markup_percent,omitempty"`
	PaymentTermMonths    *int             `json:"payment_term_months,omitempty"`
	LogisticsCostPercent *decimal.Decimal `json:"logistics_cost_percent,omitempty"`
	Tax                  TaxOverride      `json:"tax"`
}

// CostPackageRequest paquete de gastos operativos de la plataforma.
type CostPackageRequest struct {
	WarehousingPercent decimal.Decimal `json:"warehousing_percent"`
	LogisticsPercent   decimal.Decimal `json:"logistics_percent"`
	ManagementPercent  decimal.Decimal `json:"management_percent"`
	OtherPercent       decimal.Decimal `json:"other_percent"`
}

// PlatformRequest ajustes de la plataforma central.
type PlatformRequest struct {
	Name          *string             `json:"name,omitempty"`
	MarkupPercent *decimal.Decimal    `json:"markup_percent,omitempty"`
	Costs         *CostPackageRequest `json:"costs,omitempty"`
	Tax           TaxOverride         `json:"tax"`
}

// TraderRequest comercializador intermedio opcional.
type TraderRequest struct {
	Enabled         bool             `json:"enabled"`
	Name            *string          `json:"name,omitempty"`
	MarkupPercent   *decimal.Decimal `json:"markup_percent,omitempty"`
	PaymentTermDays *int             `json:"payment_term_days,omitempty"`
	Tax             TaxOverride      `json:"tax"`
}

// RetailerRequest minorista del catálogo y ajustes.
type RetailerRequest struct {
	ID              string           `json:"id"`
	Mode            string           `json:"mode"` // sales | consignment; vacío = sales
	MarkupPercent   *decimal.Decimal `json:"markup_percent,omitempty"`
	PaymentTermDays *int             `json:"payment_term_days,omitempty"`
	Tax             TaxOverride      `json:"tax"`
}

// RatesRequest tasas de interés anuales.
type RatesRequest struct {
	FunderAnnualPercent   *decimal.Decimal `json:"funder_annual_percent,omitempty"`
	PlatformAnnualPercent *decimal.Decimal `json:"platform_annual_percent,omitempty"`
}

// SimulationRequest entrada de una simulación de cadena.
type SimulationRequest struct {
	Package          []PackageItemRequest `json:"package"`
	Funder           FunderRequest        `json:"funder"`
	Platform         PlatformRequest      `json:"platform"`
	Trader           TraderRequest        `json:"trader"`
	Retailer         RetailerRequest      `json:"retailer"`
	Rates            RatesRequest         `json:"rates"`
	IncludeIncomeTax *bool                `json:"include_income_tax,omitempty"`
}

// PriceDetailResponse precio de un producto en una etapa.
type PriceDetailResponse struct {
	ProductID      string          `json:"product_id"`
	ProductName    string          `json:"product_name"`
	Quantity       int             `json:"quantity"`
	UnitPriceExcl  decimal.Decimal `json:"unit_price_excl"`
	UnitPriceIncl  decimal.Decimal `json:"unit_price_incl"`
	TotalPriceIncl decimal.Decimal `json:"total_price_incl"`
}

// CostDetailsResponse desglose del paquete de gastos.
type CostDetailsResponse struct {
	Warehousing decimal.Decimal `json:"warehousing"`
	Logistics   decimal.Decimal `json:"logistics"`
	Management  decimal.Decimal `json:"management"`
	Other       decimal.Decimal `json:"other"`
}

// EntityResultResponse resultado de un participante. Montos a 2 decimales,
// TaxBurdenRate a 4.
type EntityResultResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Region      string `json:"region"`
	Taxpayer    string `json:"taxpayer,omitempty"`
	TradeMode   string `json:"trade_mode,omitempty"`
	CentralNode bool   `json:"central_node"`

	InPriceExcl  decimal.Decimal `json:"in_price_excl"`
	InPriceIncl  decimal.Decimal `json:"in_price_incl"`
	CostBasis    decimal.Decimal `json:"cost_basis"`
	OutPriceExcl decimal.Decimal `json:"out_price_excl"`
	OutPriceIncl decimal.Decimal `json:"out_price_incl"`
	RevenueExcl  decimal.Decimal `json:"revenue_excl"`
	RevenueIncl  decimal.Decimal `json:"revenue_incl"`

	VATInput   decimal.Decimal `json:"vat_input"`
	VATOutput  decimal.Decimal `json:"vat_output"`
	VATPayable decimal.Decimal `json:"vat_payable"`
	Surcharges decimal.Decimal `json:"surcharges"`
	IncomeTax  decimal.Decimal `json:"income_tax"`
	TaxRefunds decimal.Decimal `json:"tax_refunds"`
	TotalTax   decimal.Decimal `json:"total_tax"`

	FinanceCost     decimal.Decimal `json:"finance_cost"`
	OperationalCost decimal.Decimal `json:"operational_cost"`
	CommissionCost  decimal.Decimal `json:"commission_cost"`
	GrossProfit     decimal.Decimal `json:"gross_profit"`
	NetProfit       decimal.Decimal `json:"net_profit"`
	CashOutflow     decimal.Decimal `json:"cash_outflow"`
	TaxBurdenRate   decimal.Decimal `json:"tax_burden_rate"`

	Notes          []string              `json:"notes"`
	Warnings       []string              `json:"warnings"`
	ComplianceTips []string              `json:"compliance_tips"`
	Breakdown      []PriceDetailResponse `json:"breakdown"`
	CostDetails    *CostDetailsResponse  `json:"cost_details,omitempty"`
}

// ChainSummary totales de la cadena.
type ChainSummary struct {
	ConsumerPriceIncl decimal.Decimal `json:"consumer_price_incl"`
	PackageMSRP       decimal.Decimal `json:"package_msrp"`
	TotalTax          decimal.Decimal `json:"total_tax"` // neto de devoluciones, sin el IVA del origen
	TotalNetProfit    decimal.Decimal `json:"total_net_profit"`
	WarningCount      int             `json:"warning_count"`
}

// SimulationResponse resultado completo de la cadena.
type SimulationResponse struct {
	Source   EntityResultResponse  `json:"source"`
	Funder   EntityResultResponse  `json:"funder"`
	Platform EntityResultResponse  `json:"platform"`
	Trader   *EntityResultResponse `json:"trader,omitempty"`
	Retailer EntityResultResponse  `json:"retailer"`
	Warnings []string              `json:"warnings"`
	Summary  ChainSummary          `json:"summary"`
}
