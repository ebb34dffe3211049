package simulation

import (
	"fmt"

	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// sourceLine línea del paquete ya valorizada.
type sourceLine struct {
	detail PriceDetail
}

// procurement agregado del paquete de compra.
type procurement struct {
	result EntityResult
	lines  []sourceLine
	// deductibleVAT IVA facturado que el financiador puede descontar.
	deductibleVAT decimal.Decimal
	// fundedCost costo que reconoce el financiador: sin IVA en líneas con
	// factura, con IVA en las demás.
	fundedCost decimal.Decimal
}

// aggregateProcurement colapsa el paquete en un único origen. El precio de
// catálogo se toma con IVA incluido y se separa con la tasa del fabricante.
func aggregateProcurement(pkg []PackageLine) procurement {
	var (
		totalExcl = decimal.Zero
		totalIncl = decimal.Zero
		totalVAT  = decimal.Zero
		p         = procurement{deductibleVAT: decimal.Zero, fundedCost: decimal.Zero}
	)

	makers := map[string]struct{}{}
	for _, item := range pkg {
		makers[item.Manufacturer.ID+"|"+item.Manufacturer.Name] = struct{}{}

		unitIncl := item.Product.BasePrice
		unitExcl := unitIncl.Div(one.Add(item.Manufacturer.Taxpayer.VATRate()))
		lineIncl := unitIncl.Mul(qty(item.Quantity))
		lineExcl := unitExcl.Mul(qty(item.Quantity))
		lineVAT := lineIncl.Sub(lineExcl)

		totalExcl = totalExcl.Add(lineExcl)
		totalIncl = totalIncl.Add(lineIncl)
		totalVAT = totalVAT.Add(lineVAT)

		invoiced := !item.Manufacturer.WithoutInvoice
		if invoiced {
			p.deductibleVAT = p.deductibleVAT.Add(lineVAT)
			p.fundedCost = p.fundedCost.Add(lineExcl)
		} else {
			p.fundedCost = p.fundedCost.Add(lineIncl)
		}

		p.lines = append(p.lines, sourceLine{
			detail: PriceDetail{
				ProductID:      item.Product.ID,
				ProductName:    item.Product.Name,
				Quantity:       item.Quantity,
				UnitPriceExcl:  unitExcl,
				UnitPriceIncl:  unitIncl,
				TotalPriceIncl: lineIncl,
			},
		})
	}

	name := fmt.Sprintf("Paquete de compra (%d productos)", len(pkg))
	notes := []string{"Varios fabricantes"}
	if len(makers) == 1 {
		m := pkg[0].Manufacturer
		name = m.Name
		notes = []string{m.Taxpayer.Label()}
		if m.WithoutInvoice {
			notes = append(notes, "Sin factura descontable")
		}
	}

	breakdown := make([]PriceDetail, 0, len(p.lines))
	for _, l := range p.lines {
		breakdown = append(breakdown, l.detail)
	}

	p.result = EntityResult{
		ID:           SourceID,
		Name:         name,
		Role:         RoleSource,
		Region:       entity.RegionTibet,
		InPriceExcl:  decimal.Zero,
		InPriceIncl:  decimal.Zero,
		CostBasis:    decimal.Zero,
		OutPriceExcl: totalExcl,
		OutPriceIncl: totalIncl,
		RevenueExcl:  totalExcl,
		RevenueIncl:  totalIncl,
		VATInput:     decimal.Zero,
		VATOutput:    totalVAT,
		VATPayable:   totalVAT, // raíz de la cadena: no tiene IVA descontable
		Surcharges:   decimal.Zero,
		IncomeTax:    decimal.Zero,
		TaxRefunds:   decimal.Zero,

		FinanceCost:     decimal.Zero,
		OperationalCost: decimal.Zero,
		CommissionCost:  decimal.Zero,
		GrossProfit:     totalExcl,
		NetProfit:       totalExcl,
		CashOutflow:     decimal.Zero,
		TaxBurdenRate:   ratio(totalVAT, totalExcl),

		Notes:     notes,
		Warnings:  []string{},
		Breakdown: breakdown,
	}
	if len(makers) == 1 {
		p.result.Taxpayer = pkg[0].Manufacturer.Taxpayer
	}
	return p
}
