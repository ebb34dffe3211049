package simulation

import (
	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const (
	daysPerMonth  = 30
	monthsPerYear = 12
	daysPerYear   = 365
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// fraction convierte un porcentaje plano (20) en fracción (0.2). Es la única
// frontera porcentaje → fracción del paquete.
func fraction(percent decimal.Decimal) decimal.Decimal {
	return percent.Div(hundred)
}

// ratio num/den; cero si den es cero.
func ratio(num, den decimal.Decimal) decimal.Decimal {
	if den.IsZero() {
		return decimal.Zero
	}
	return num.Div(den)
}

// nonNegative recorta a cero los valores negativos.
func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func qty(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

// taxFractions porcentajes de un TaxProfile ya convertidos a fracción.
type taxFractions struct {
	surcharge       decimal.Decimal
	incomeTax       decimal.Decimal
	vatRefund       decimal.Decimal
	incomeTaxRefund decimal.Decimal
}

func fractionsOf(t TaxProfile) taxFractions {
	return taxFractions{
		surcharge:       fraction(t.SurchargePercent),
		incomeTax:       fraction(t.IncomeTaxPercent),
		vatRefund:       fraction(t.VATRefundPercent),
		incomeTaxRefund: fraction(t.IncomeTaxRefundPercent),
	}
}

// pricingRule cómo se aplica el margen sobre el costo.
type pricingRule int

const (
	// markupOnExcl: sin IVA = costo × (1+m); con IVA = sin IVA × (1+t).
	markupOnExcl pricingRule = iota
	// markupOnIncl: con IVA = costo × (1+m); sin IVA = con IVA / (1+t).
	// Lo usa el minorista pequeño contribuyente, que fija el precio al público.
	markupOnIncl
)

func applyMarkup(cost, markup, rate decimal.Decimal, rule pricingRule) (excl, incl decimal.Decimal) {
	if rule == markupOnIncl {
		incl = cost.Mul(one.Add(markup))
		return incl.Div(one.Add(rate)), incl
	}
	excl = cost.Mul(one.Add(markup))
	return excl, excl.Mul(one.Add(rate))
}

// quote lo que un vendedor factura a su comprador.
type quote struct {
	excl     decimal.Decimal
	incl     decimal.Decimal
	vat      decimal.Decimal
	taxpayer entity.TaxpayerType
	lines    []PriceDetail
}

// deductible indica si el comprador puede descontar el IVA facturado.
func deductible(buyer entity.TaxpayerType) bool {
	return buyer == entity.TaxpayerGeneral
}

// purchase costo reconocido e IVA descontable al comprarle a q.
func (q quote) purchase(buyer entity.TaxpayerType) (costBasis, inputVAT decimal.Decimal) {
	if deductible(buyer) {
		return q.excl, q.vat
	}
	return q.incl, decimal.Zero
}

// settlement impuesto de renta y devoluciones de una etapa.
type settlement struct {
	incomeTax       decimal.Decimal
	vatRefund       decimal.Decimal
	incomeTaxRefund decimal.Decimal
}

func (s settlement) refunds() decimal.Decimal {
	return s.vatRefund.Add(s.incomeTaxRefund)
}

// settle calcula devoluciones e impuesto de renta. La devolución de IVA es
// ingreso gravable; la devolución de renta solo existe si se calcula renta.
func settle(preTax, vatPayable decimal.Decimal, f taxFractions, includeIncomeTax bool) settlement {
	s := settlement{
		incomeTax:       decimal.Zero,
		vatRefund:       vatPayable.Mul(f.vatRefund),
		incomeTaxRefund: decimal.Zero,
	}
	if !includeIncomeTax {
		return s
	}
	s.incomeTax = nonNegative(preTax.Add(s.vatRefund).Mul(f.incomeTax))
	s.incomeTaxRefund = s.incomeTax.Mul(f.incomeTaxRefund)
	return s
}
