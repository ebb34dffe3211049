package entity

import "github.com/shopspring/decimal"

// TaxpayerType clasificación del contribuyente frente al IVA.
type TaxpayerType string

const (
	TaxpayerGeneral TaxpayerType = "general" // contribuyente general: tasa alta, IVA descontable
	TaxpayerSmall   TaxpayerType = "small"   // pequeño contribuyente: tasa baja, sin descuento de IVA
)

// Region jurisdicción fiscal de un participante.
type Region string

const (
	RegionTibet    Region = "tibet"    // región con incentivos (devoluciones)
	RegionMainland Region = "mainland" // régimen ordinario
)

// TradeMode modalidad comercial del minorista.
type TradeMode string

const (
	TradeModeSales       TradeMode = "sales"       // compra-venta: el minorista adquiere la mercancía
	TradeModeConsignment TradeMode = "consignment" // consignación: vende por cuenta del proveedor a cambio de comisión
)

type taxRates struct {
	goods   decimal.Decimal
	service decimal.Decimal
}

// Única tabla clasificación → tasa. Ningún otro sitio debe codificar tasas de IVA.
var taxpayerRates = map[TaxpayerType]taxRates{
	TaxpayerGeneral: {goods: decimal.RequireFromString("0.13"), service: decimal.RequireFromString("0.06")},
	TaxpayerSmall:   {goods: decimal.RequireFromString("0.01"), service: decimal.RequireFromString("0.01")},
}

// Valid indica si la clasificación es conocida.
func (t TaxpayerType) Valid() bool {
	_, ok := taxpayerRates[t]
	return ok
}

// VATRate tasa de IVA sobre mercancías como fracción (0.13 = 13%).
// Una clasificación desconocida devuelve cero.
func (t TaxpayerType) VATRate() decimal.Decimal {
	return taxpayerRates[t].goods
}

// ServiceRate tasa de IVA sobre servicios (factura de comisión).
func (t TaxpayerType) ServiceRate() decimal.Decimal {
	return taxpayerRates[t].service
}

// Label etiqueta legible con la tasa, p. ej. "Contribuyente general (13%)".
func (t TaxpayerType) Label() string {
	pct := t.VATRate().Shift(2).String() + "%"
	if t == TaxpayerSmall {
		return "Pequeño contribuyente (" + pct + ")"
	}
	return "Contribuyente general (" + pct + ")"
}

// Valid indica si la región es conocida.
func (r Region) Valid() bool {
	return r == RegionTibet || r == RegionMainland
}

// Preferential indica si la región aplica devoluciones de impuestos.
func (r Region) Preferential() bool {
	return r == RegionTibet
}

// Valid indica si la modalidad es conocida.
func (m TradeMode) Valid() bool {
	return m == TradeModeSales || m == TradeModeConsignment
}

// RegionPolicy porcentajes por defecto de una región (20 = 20%).
type RegionPolicy struct {
	Region                 Region
	SurchargePercent       decimal.Decimal // recargo sobre el IVA a pagar
	IncomeTaxPercent       decimal.Decimal
	VATRefundPercent       decimal.Decimal // % del IVA pagado que se devuelve
	IncomeTaxRefundPercent decimal.Decimal // % del impuesto de renta pagado que se devuelve
}

// DefaultRegionPolicies políticas por defecto de ambas regiones.
func DefaultRegionPolicies() map[Region]RegionPolicy {
	return map[Region]RegionPolicy{
		RegionMainland: {
			Region:           RegionMainland,
			SurchargePercent: decimal.NewFromInt(12),
			IncomeTaxPercent: decimal.NewFromInt(25),
		},
		RegionTibet: {
			Region:           RegionTibet,
			SurchargePercent: decimal.NewFromInt(1),
			IncomeTaxPercent: decimal.NewFromInt(15),
		},
	}
}
