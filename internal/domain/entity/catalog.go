package entity

import "github.com/shopspring/decimal"

// Product producto del catálogo de un fabricante.
type Product struct {
	ID        string
	Name      string
	BasePrice decimal.Decimal // precio de fábrica, IVA incluido
	MSRP      decimal.Decimal // precio sugerido al público
}

// Manufacturer fabricante (origen de la mercancía).
// WithoutInvoice marca a los proveedores que no emiten factura con IVA descontable.
type Manufacturer struct {
	ID             string
	Name           string
	Taxpayer       TaxpayerType
	WithoutInvoice bool
	Products       []Product
}

// FindProduct busca un producto por ID.
func (m *Manufacturer) FindProduct(id string) (Product, bool) {
	for _, p := range m.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Funder financiador: compra al origen y cobra intereses por el plazo.
type Funder struct {
	ID                       string
	Name                     string
	DefaultMarkupPercent     decimal.Decimal
	DefaultPaymentTermMonths int
}

// Retailer canal minorista final.
type Retailer struct {
	ID                     string
	Name                   string
	DefaultMarkupPercent   decimal.Decimal
	DefaultPaymentTermDays int
	DefaultTaxpayer        TaxpayerType
}
