package simulation

import (
	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/jhoicas/tradechain-api/pkg/money"
	"github.com/shopspring/decimal"
)

// retailerStage precio final al consumidor. En compra-venta el minorista
// compra y revende; en consignación solo cobra una comisión (servicio) y no
// tiene IVA de entrada por mercancía.
func retailerStage(cfg RetailerConfig, up quote, packageMSRP decimal.Decimal, includeIncomeTax bool) (EntityResult, consignmentSettlement) {
	var (
		markup = fraction(cfg.MarkupPercent)
		tax    = fractionsOf(cfg.Tax)
		rate   = cfg.Tax.Taxpayer.VATRate()
		rule   = markupOnExcl
	)
	if cfg.Tax.Taxpayer == entity.TaxpayerSmall {
		rule = markupOnIncl
	}

	warnings := []string{}
	costBasis, inputVAT := up.purchase(cfg.Tax.Taxpayer)
	outExcl, outIncl := applyMarkup(costBasis, markup, rate, rule)
	outVAT := outExcl.Mul(rate)

	var (
		gross      decimal.Decimal
		settlement consignmentSettlement
		modeNote   string
	)
	if cfg.Mode == entity.TradeModeConsignment {
		// El margen sobre el precio del proveedor es una comisión con IVA de servicio incluido.
		serviceRate := cfg.Tax.Taxpayer.ServiceRate()
		commissionTotal := outExcl.Sub(up.excl)
		commissionExcl := commissionTotal.Div(one.Add(serviceRate))
		serviceVAT := commissionExcl.Mul(serviceRate)

		gross = commissionExcl
		inputVAT = decimal.Zero
		outVAT = serviceVAT
		settlement = consignmentSettlement{
			commissionExcl: commissionExcl,
			serviceVAT:     serviceVAT,
			consumerIncl:   outIncl,
		}
		modeNote = "Consignación (comisión)"
	} else {
		if cfg.Tax.Taxpayer == entity.TaxpayerGeneral && up.taxpayer == entity.TaxpayerSmall {
			warnings = append(warnings, "IVA descontable insuficiente (proveedor pequeño contribuyente)")
		}
		gross = outExcl.Sub(costBasis)
		modeNote = "Compra-venta"
	}

	if packageMSRP.IsPositive() && outIncl.GreaterThan(packageMSRP) {
		warnings = append(warnings, "Precio superior al sugerido (excede "+money.Format(outIncl.Sub(packageMSRP), 0)+")")
	}

	vatPayable := nonNegative(outVAT.Sub(inputVAT))
	surcharges := vatPayable.Mul(tax.surcharge)
	preTax := gross.Sub(surcharges)
	incomeTax := decimal.Zero
	if includeIncomeTax {
		incomeTax = nonNegative(preTax.Mul(tax.incomeTax))
	}
	net := preTax.Sub(incomeTax)
	burden := decimal.Zero
	if gross.IsPositive() {
		burden = ratio(vatPayable.Add(surcharges).Add(incomeTax), gross)
	}

	res := EntityResult{
		ID:           cfg.ID,
		Name:         cfg.Name,
		Role:         RoleRetailer,
		Region:       cfg.Tax.Region,
		Taxpayer:     cfg.Tax.Taxpayer,
		TradeMode:    cfg.Mode,
		InPriceExcl:  up.excl,
		InPriceIncl:  up.incl,
		CostBasis:    costBasis,
		OutPriceExcl: outExcl,
		OutPriceIncl: outIncl,
		RevenueExcl:  outExcl,
		RevenueIncl:  outIncl,

		VATInput:   inputVAT,
		VATOutput:  outVAT,
		VATPayable: vatPayable,
		Surcharges: surcharges,
		IncomeTax:  incomeTax,
		TaxRefunds: decimal.Zero,

		FinanceCost:     decimal.Zero,
		OperationalCost: decimal.Zero,
		CommissionCost:  decimal.Zero,
		GrossProfit:     gross,
		NetProfit:       net,
		CashOutflow:     decimal.Zero,
		TaxBurdenRate:   burden,

		Notes:     []string{modeNote, cfg.Tax.Taxpayer.Label()},
		Warnings:  warnings,
		Breakdown: reprice(up.lines, cfg.Tax.Taxpayer, markup, rate, rule),
	}
	return res, settlement
}
