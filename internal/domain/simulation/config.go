// Package simulation calcula, participante por participante, precios, IVA,
// recargos, impuesto de renta, devoluciones, costos financieros y utilidad neta
// de una cadena comercial fabricante → financiador → plataforma → (comercializador)
// → minorista.
//
// El motor es una función pura: Simulate(Configuration) Result. No hace I/O, no
// guarda estado y no retorna errores; una configuración mal formada produce
// números degradados (ratios en cero, IVA a pagar nunca negativo) en lugar de
// fallar. Validate está disponible para quien necesite rechazar entradas.
//
// Todos los porcentajes de la configuración son números planos (20 = 20%).
// Cada etapa los convierte a fracción una sola vez al comenzar (ver rates.go).
package simulation

import (
	"fmt"

	"github.com/jhoicas/tradechain-api/internal/domain"
	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PackageLine línea del paquete de compra.
type PackageLine struct {
	Manufacturer entity.Manufacturer
	Product      entity.Product
	Quantity     int
}

// TaxProfile situación fiscal de un participante. Porcentajes como números planos.
type TaxProfile struct {
	Region                 entity.Region
	Taxpayer               entity.TaxpayerType
	SurchargePercent       decimal.Decimal
	IncomeTaxPercent       decimal.Decimal
	VATRefundPercent       decimal.Decimal // solo tiene sentido en la región preferencial
	IncomeTaxRefundPercent decimal.Decimal
}

// FunderConfig financiador. Siempre factura como contribuyente general,
// cualquiera que sea Tax.Taxpayer.
type FunderConfig struct {
	ID                   string
	Name                 string
	Tax                  TaxProfile
	MarkupPercent        decimal.Decimal
	PaymentTermMonths    int
	LogisticsCostPercent decimal.Decimal
}

// CostPackage paquete de gastos operativos de la plataforma, cada línea como
// porcentaje del ingreso sin IVA.
type CostPackage struct {
	WarehousingPercent decimal.Decimal
	LogisticsPercent   decimal.Decimal
	ManagementPercent  decimal.Decimal
	OtherPercent       decimal.Decimal
}

// PlatformConfig plataforma central.
type PlatformConfig struct {
	ID            string
	Name          string
	Tax           TaxProfile
	MarkupPercent decimal.Decimal
	Costs         CostPackage
}

// TraderConfig comercializador intermedio opcional; solo opera en compra-venta.
type TraderConfig struct {
	Enabled         bool
	Name            string
	Tax             TaxProfile
	MarkupPercent   decimal.Decimal
	PaymentTermDays int
}

// RetailerConfig minorista final.
type RetailerConfig struct {
	ID              string
	Name            string
	Tax             TaxProfile
	Mode            entity.TradeMode
	MarkupPercent   decimal.Decimal
	PaymentTermDays int
}

// GlobalRates tasas de interés anuales (porcentaje).
type GlobalRates struct {
	FunderAnnualPercent   decimal.Decimal // interés del financiador, se prorratea por mes
	PlatformAnnualPercent decimal.Decimal // costo de capital de la plataforma, se prorratea por día
}

// Configuration entrada completa de una simulación. Es una instantánea: el
// motor no la modifica.
type Configuration struct {
	Package          []PackageLine
	Funder           FunderConfig
	Platform         PlatformConfig
	Trader           TraderConfig
	Retailer         RetailerConfig
	Rates            GlobalRates
	IncludeIncomeTax bool
}

// PackageMSRP suma del precio sugerido de todas las líneas.
func (c Configuration) PackageMSRP() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Package {
		total = total.Add(l.Product.MSRP.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// ReceivableDays días de cobro de la plataforma: los del comercializador si
// está activo, si no los del minorista.
func (c Configuration) ReceivableDays() int {
	if c.Trader.Enabled {
		return c.Trader.PaymentTermDays
	}
	return c.Retailer.PaymentTermDays
}

// PayableDays días de pago de la plataforma al financiador.
func (c Configuration) PayableDays() int {
	return c.Funder.PaymentTermMonths * daysPerMonth
}

// Validate revisa la forma de la configuración. Simulate no la invoca.
func (c Configuration) Validate() error {
	if len(c.Package) == 0 {
		return fmt.Errorf("%w: el paquete de compra está vacío", domain.ErrInvalidInput)
	}
	for i, l := range c.Package {
		if l.Quantity <= 0 {
			return fmt.Errorf("%w: línea %d: cantidad debe ser positiva", domain.ErrInvalidInput, i+1)
		}
		if !l.Manufacturer.Taxpayer.Valid() {
			return fmt.Errorf("%w: línea %d: clasificación de fabricante %q", domain.ErrInvalidInput, i+1, l.Manufacturer.Taxpayer)
		}
		if l.Product.BasePrice.IsNegative() || l.Product.MSRP.IsNegative() {
			return fmt.Errorf("%w: línea %d: precios negativos", domain.ErrInvalidInput, i+1)
		}
	}

	profiles := []struct {
		stage string
		tax   TaxProfile
	}{
		{"funder", c.Funder.Tax},
		{"platform", c.Platform.Tax},
		{"retailer", c.Retailer.Tax},
	}
	if c.Trader.Enabled {
		profiles = append(profiles, struct {
			stage string
			tax   TaxProfile
		}{"trader", c.Trader.Tax})
	}
	for _, p := range profiles {
		if err := p.tax.validate(); err != nil {
			return fmt.Errorf("%w: %s: %s", domain.ErrInvalidInput, p.stage, err.Error())
		}
	}

	if !c.Retailer.Mode.Valid() {
		return fmt.Errorf("%w: modalidad comercial %q", domain.ErrInvalidInput, c.Retailer.Mode)
	}
	if c.Funder.PaymentTermMonths < 0 || c.Retailer.PaymentTermDays < 0 || c.Trader.PaymentTermDays < 0 {
		return fmt.Errorf("%w: los plazos no pueden ser negativos", domain.ErrInvalidInput)
	}

	percents := map[string]decimal.Decimal{
		"funder.markup":        c.Funder.MarkupPercent,
		"funder.logistics":     c.Funder.LogisticsCostPercent,
		"platform.markup":      c.Platform.MarkupPercent,
		"platform.warehousing": c.Platform.Costs.WarehousingPercent,
		"platform.logistics":   c.Platform.Costs.LogisticsPercent,
		"platform.management":  c.Platform.Costs.ManagementPercent,
		"platform.other":       c.Platform.Costs.OtherPercent,
		"trader.markup":        c.Trader.MarkupPercent,
		"retailer.markup":      c.Retailer.MarkupPercent,
		"rates.funder":         c.Rates.FunderAnnualPercent,
		"rates.platform":       c.Rates.PlatformAnnualPercent,
	}
	for name, v := range percents {
		if v.IsNegative() {
			return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrInvalidInput, name)
		}
	}
	return nil
}

func (t TaxProfile) validate() error {
	if !t.Region.Valid() {
		return fmt.Errorf("región %q", t.Region)
	}
	if !t.Taxpayer.Valid() {
		return fmt.Errorf("clasificación %q", t.Taxpayer)
	}
	for _, v := range []decimal.Decimal{t.SurchargePercent, t.IncomeTaxPercent, t.VATRefundPercent, t.IncomeTaxRefundPercent} {
		if v.IsNegative() || v.GreaterThan(hundred) {
			return fmt.Errorf("porcentaje fuera de rango: %s", v.String())
		}
	}
	return nil
}
