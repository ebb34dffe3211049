package simulation

import (
	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// reprice propaga el desglose por producto a la siguiente etapa aplicando la
// misma base de costo y la misma regla de precio que el agregado, de modo que
// la suma de TotalPriceIncl concilia con el OutPriceIncl de la etapa.
func reprice(upstream []PriceDetail, buyer entity.TaxpayerType, markup, rate decimal.Decimal, rule pricingRule) []PriceDetail {
	out := make([]PriceDetail, 0, len(upstream))
	for _, line := range upstream {
		cost := line.UnitPriceIncl
		if deductible(buyer) {
			cost = line.UnitPriceExcl
		}
		excl, incl := applyMarkup(cost, markup, rate, rule)
		out = append(out, PriceDetail{
			ProductID:      line.ProductID,
			ProductName:    line.ProductName,
			Quantity:       line.Quantity,
			UnitPriceExcl:  excl,
			UnitPriceIncl:  incl,
			TotalPriceIncl: incl.Mul(qty(line.Quantity)),
		})
	}
	return out
}

// sumBreakdown suma los totales con IVA del desglose.
func sumBreakdown(lines []PriceDetail) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.TotalPriceIncl)
	}
	return total
}
