package dto

import "github.com/shopspring/decimal"

// ProductRequest entrada para agregar un producto a un fabricante.
type ProductRequest struct {
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"` // IVA incluido
	MSRP      decimal.Decimal `json:"msrp"`
}

// CreateManufacturerRequest entrada para registrar un fabricante.
type CreateManufacturerRequest struct {
	Name           string           `json:"name"`
	Taxpayer       string           `json:"taxpayer"`
	WithoutInvoice bool             `json:"without_invoice"`
	Products       []ProductRequest `json:"products"`
}

// CreateFunderRequest entrada para registrar un financiador.
type CreateFunderRequest struct {
	Name                     string          `json:"name"`
	DefaultMarkupPercent     decimal.Decimal `json:"default_markup_percent"`
	DefaultPaymentTermMonths int             `json:"default_payment_term_months"`
}

// CreateRetailerRequest entrada para registrar un minorista.
type CreateRetailerRequest struct {
	Name                   string          `json:"name"`
	DefaultMarkupPercent   decimal.Decimal `json:"default_markup_percent"`
	DefaultPaymentTermDays int             `json:"default_payment_term_days"`
	DefaultTaxpayer        string          `json:"default_taxpayer"`
}

// ProductResponse producto del catálogo.
type ProductResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	BasePrice decimal.Decimal `json:"base_price"`
	MSRP      decimal.Decimal `json:"msrp"`
}

// ManufacturerResponse fabricante con sus productos.
type ManufacturerResponse struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Taxpayer       string            `json:"taxpayer"`
	TaxpayerLabel  string            `json:"taxpayer_label"`
	WithoutInvoice bool              `json:"without_invoice"`
	Products       []ProductResponse `json:"products"`
}

// FunderResponse financiador del catálogo.
type FunderResponse struct {
	ID                       string          `json:"id"`
	Name                     string          `json:"name"`
	DefaultMarkupPercent     decimal.Decimal `json:"default_markup_percent"`
	DefaultPaymentTermMonths int             `json:"default_payment_term_months"`
}

// RetailerResponse minorista del catálogo.
type RetailerResponse struct {
	ID                     string          `json:"id"`
	Name                   string          `json:"name"`
	DefaultMarkupPercent   decimal.Decimal `json:"default_markup_percent"`
	DefaultPaymentTermDays int             `json:"default_payment_term_days"`
	DefaultTaxpayer        string          `json:"default_taxpayer"`
}

// RegionPolicyResponse política tributaria de una región.
type RegionPolicyResponse struct {
	Region                 string          `json:"region"`
	Preferential           bool            `json:"preferential"`
	SurchargePercent       decimal.Decimal `json:"surcharge_percent"`
	IncomeTaxPercent       decimal.Decimal `json:"income_tax_percent"`
	VATRefundPercent       decimal.Decimal `json:"vat_refund_percent"`
	IncomeTaxRefundPercent decimal.Decimal `json:"income_tax_refund_percent"`
}
