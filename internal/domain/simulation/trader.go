package simulation

import (
	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// TraderID identificador fijo del comercializador intermedio.
const TraderID = "trader"

// traderStage revendedor puro entre la plataforma y el minorista: margen,
// IVA, recargo y renta, sin costos financieros ni operativos.
func traderStage(cfg TraderConfig, platform quote, includeIncomeTax bool) (EntityResult, quote) {
	var (
		markup = fraction(cfg.MarkupPercent)
		tax    = fractionsOf(cfg.Tax)
		rate   = cfg.Tax.Taxpayer.VATRate()
	)

	warnings := []string{}
	costBasis, inputVAT := platform.purchase(cfg.Tax.Taxpayer)
	if cfg.Tax.Taxpayer == entity.TaxpayerGeneral && platform.taxpayer == entity.TaxpayerSmall {
		warnings = append(warnings, "IVA descontable insuficiente (proveedor pequeño contribuyente)")
	}

	outExcl, outIncl := applyMarkup(costBasis, markup, rate, markupOnExcl)
	outVAT := outExcl.Mul(rate)

	vatPayable := nonNegative(outVAT.Sub(inputVAT))
	surcharges := vatPayable.Mul(tax.surcharge)
	gross := outExcl.Sub(costBasis)
	preTax := gross.Sub(surcharges)
	s := settle(preTax, vatPayable, tax, includeIncomeTax)
	net := preTax.Sub(s.incomeTax).Add(s.refunds())

	breakdown := reprice(platform.lines, cfg.Tax.Taxpayer, markup, rate, markupOnExcl)

	name := cfg.Name
	if name == "" {
		name = "Comercializador intermedio"
	}

	res := EntityResult{
		ID:           TraderID,
		Name:         name,
		Role:         RoleTrader,
		Region:       cfg.Tax.Region,
		Taxpayer:     cfg.Tax.Taxpayer,
		TradeMode:    entity.TradeModeSales,
		InPriceExcl:  platform.excl,
		InPriceIncl:  platform.incl,
		CostBasis:    costBasis,
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

		FinanceCost:     decimal.Zero,
		OperationalCost: decimal.Zero,
		CommissionCost:  decimal.Zero,
		GrossProfit:     gross,
		NetProfit:       net,
		CashOutflow:     decimal.Zero,
		TaxBurdenRate:   ratio(vatPayable.Add(surcharges).Add(s.incomeTax).Sub(s.refunds()), outExcl),

		Notes:     []string{cfg.Tax.Taxpayer.Label()},
		Warnings:  warnings,
		Breakdown: breakdown,
	}

	return res, quote{
		excl:     outExcl,
		incl:     outIncl,
		vat:      outVAT,
		taxpayer: cfg.Tax.Taxpayer,
		lines:    breakdown,
	}
}
