package simulation

import (
	"fmt"

	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// funderStage aplica el margen del financiador sobre el precio sin IVA del
// origen y cobra los intereses del plazo pactado. Las líneas sin factura no
// aportan IVA descontable y entran al costo con IVA incluido. El financiador
// siempre factura como contribuyente general.
func funderStage(cfg FunderConfig, rates GlobalRates, src procurement, includeIncomeTax bool) (EntityResult, quote) {
	var (
		markup      = fraction(cfg.MarkupPercent)
		logistics   = fraction(cfg.LogisticsCostPercent)
		monthlyRate = fraction(rates.FunderAnnualPercent).Div(decimal.NewFromInt(monthsPerYear))
		tax         = fractionsOf(cfg.Tax)
		rate        = entity.TaxpayerGeneral.VATRate()
	)

	outExcl, outIncl := applyMarkup(src.result.OutPriceExcl, markup, rate, markupOnExcl)
	outVAT := outExcl.Mul(rate)
	inputVAT := src.deductibleVAT

	vatPayable := nonNegative(outVAT.Sub(inputVAT))
	surcharges := vatPayable.Mul(tax.surcharge)
	financeCost := src.result.OutPriceIncl.Mul(monthlyRate).Mul(qty(cfg.PaymentTermMonths))
	opCost := outExcl.Mul(logistics)

	gross := outExcl.Sub(src.fundedCost)
	preTax := gross.Sub(surcharges).Sub(financeCost).Sub(opCost)
	s := settle(preTax, vatPayable, tax, includeIncomeTax)
	net := preTax.Sub(s.incomeTax).Add(s.refunds())

	breakdown := make([]PriceDetail, 0, len(src.lines))
	for _, l := range src.lines {
		ue, ui := applyMarkup(l.detail.UnitPriceExcl, markup, rate, markupOnExcl)
		breakdown = append(breakdown, PriceDetail{
			ProductID:      l.detail.ProductID,
			ProductName:    l.detail.ProductName,
			Quantity:       l.detail.Quantity,
			UnitPriceExcl:  ue,
			UnitPriceIncl:  ui,
			TotalPriceIncl: ui.Mul(qty(l.detail.Quantity)),
		})
	}

	notes := []string{
		entity.TaxpayerGeneral.Label(),
		fmt.Sprintf("Financiación: %d meses", cfg.PaymentTermMonths),
	}
	if s.refunds().IsPositive() {
		notes = append(notes, "Incluye devoluciones de impuestos")
	}
	if opCost.IsPositive() {
		notes = append(notes, "Incluye logística y almacenamiento")
	}

	res := EntityResult{
		ID:           cfg.ID,
		Name:         cfg.Name,
		Role:         RoleFunder,
		Region:       cfg.Tax.Region,
		Taxpayer:     entity.TaxpayerGeneral,
		InPriceExcl:  src.result.OutPriceExcl,
		InPriceIncl:  src.result.OutPriceIncl,
		CostBasis:    src.fundedCost,
		OutPriceExcl: outExcl,
		OutPriceIncl: outIncl,
		RevenueExcl:  outExcl,
		RevenueIncl:  outIncl,

		VATInput:   inputVAT,
		VATOutput:  outVAT,
		VATPayable: vatPayable,
		Surcharges: surcharges,
		IncomeTax:  s.incomeTax,
		TaxRefunds: s.refunds(),

		FinanceCost:     financeCost,
		OperationalCost: opCost,
		CommissionCost:  decimal.Zero,
		GrossProfit:     gross,
		NetProfit:       net,
		CashOutflow:     src.result.OutPriceIncl,
		TaxBurdenRate:   ratio(vatPayable.Add(surcharges).Add(s.incomeTax).Sub(s.refunds()), outExcl),

		Notes:     notes,
		Warnings:  []string{},
		Breakdown: breakdown,
	}

	return res, quote{
		excl:     outExcl,
		incl:     outIncl,
		vat:      outVAT,
		taxpayer: entity.TaxpayerGeneral,
		lines:    breakdown,
	}
}
