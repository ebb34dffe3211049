package simulation

import (
	"fmt"

	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Diferencia máxima entre la tasa de salida y la tasa efectiva de entrada
// antes de advertir por carga tributaria alta.
var rateMismatchThreshold = decimal.RequireFromString("0.05")

// consignmentSettlement lo que el minorista en consignación le factura a la
// plataforma: la comisión sin IVA, el IVA de servicio y el precio al público.
type consignmentSettlement struct {
	commissionExcl decimal.Decimal
	serviceVAT     decimal.Decimal
	consumerIncl   decimal.Decimal
}

// platformDraft primera fase de la plataforma: precio y desglose propios.
// Se completa en finalize cuando ya se conoce el minorista.
type platformDraft struct {
	cfg       PlatformConfig
	rate      decimal.Decimal
	in        quote
	costBasis decimal.Decimal
	inputVAT  decimal.Decimal
	outExcl   decimal.Decimal
	outIncl   decimal.Decimal
	outVAT    decimal.Decimal
	breakdown []PriceDetail
	warnings  []string
	tips      []string
}

func draftPlatform(cfg PlatformConfig, funder quote, downstream entity.TradeMode) platformDraft {
	d := platformDraft{
		cfg:      cfg,
		rate:     cfg.Tax.Taxpayer.VATRate(),
		in:       funder,
		warnings: []string{},
		tips:     []string{},
	}
	markup := fraction(cfg.MarkupPercent)

	d.costBasis, d.inputVAT = funder.purchase(cfg.Tax.Taxpayer)
	d.outExcl, d.outIncl = applyMarkup(d.costBasis, markup, d.rate, markupOnExcl)
	d.outVAT = d.outExcl.Mul(d.rate)
	d.breakdown = reprice(funder.lines, cfg.Tax.Taxpayer, markup, d.rate, markupOnExcl)

	if cfg.Tax.Taxpayer == entity.TaxpayerGeneral && d.costBasis.IsPositive() {
		effectiveInput := ratio(d.inputVAT, d.costBasis)
		if d.rate.Sub(effectiveInput).GreaterThan(rateMismatchThreshold) {
			d.warnings = append(d.warnings, "Diferencia excesiva entre tasas de entrada y salida: carga tributaria alta")
		}
	}

	if downstream == entity.TradeModeConsignment {
		d.tips = append(d.tips, "Momento de facturación: en consignación el IVA se causa al recibir la liquidación de ventas del consignatario.")
	} else {
		d.tips = append(d.tips, "Momento de facturación: en venta a crédito el IVA se causa en la fecha de pago pactada por escrito.")
	}
	if cfg.Tax.Region.Preferential() {
		d.tips = append(d.tips, "Región preferencial: debe acreditarse operación sustantiva en la región.")
	}
	return d
}

// quote lo que la plataforma le factura al siguiente participante.
func (d platformDraft) quote() quote {
	return quote{
		excl:     d.outExcl,
		incl:     d.outIncl,
		vat:      d.outVAT,
		taxpayer: d.cfg.Tax.Taxpayer,
		lines:    d.breakdown,
	}
}

// finalize segunda fase. consignment es nil salvo que el minorista opere en
// consignación y no exista comercializador intermedio.
func (d platformDraft) finalize(c Configuration, consignment *consignmentSettlement) EntityResult {
	var (
		tax       = fractionsOf(d.cfg.Tax)
		dailyRate = fraction(c.Rates.PlatformAnnualPercent).Div(decimal.NewFromInt(daysPerYear))

		revenueExcl = d.outExcl
		revenueIncl = d.outIncl
		revenueVAT  = d.outVAT
		inputVAT    = d.inputVAT
		commission  = decimal.Zero
	)

	if consignment != nil {
		// La plataforma vende al consumidor y paga la comisión al minorista.
		revenueIncl = consignment.consumerIncl
		revenueExcl = revenueIncl.Div(one.Add(d.rate))
		revenueVAT = revenueExcl.Mul(d.rate)
		commission = consignment.commissionExcl
		if deductible(d.cfg.Tax.Taxpayer) {
			inputVAT = inputVAT.Add(consignment.serviceVAT)
		}
	}

	vatPayable := nonNegative(revenueVAT.Sub(inputVAT))
	surcharges := vatPayable.Mul(tax.surcharge)

	payableDays := c.PayableDays()
	receivableDays := c.ReceivableDays()
	gapDays := receivableDays - payableDays
	if gapDays < 0 {
		gapDays = 0
	}
	financeCost := d.outIncl.Mul(dailyRate).Mul(qty(gapDays))

	costs := &CostDetails{
		Warehousing: d.outExcl.Mul(fraction(d.cfg.Costs.WarehousingPercent)),
		Logistics:   d.outExcl.Mul(fraction(d.cfg.Costs.LogisticsPercent)),
		Management:  d.outExcl.Mul(fraction(d.cfg.Costs.ManagementPercent)),
		Other:       d.outExcl.Mul(fraction(d.cfg.Costs.OtherPercent)),
	}
	opCost := costs.Total()

	gross := revenueExcl.Sub(d.costBasis)
	preTax := gross.Sub(surcharges).Sub(financeCost).Sub(opCost).Sub(commission)
	s := settle(preTax, vatPayable, tax, c.IncludeIncomeTax)
	net := preTax.Sub(s.incomeTax).Add(s.refunds())

	notes := []string{d.cfg.Tax.Taxpayer.Label()}
	if payableDays > receivableDays {
		// El excedente es informativo: no se abona a la utilidad.
		notes = append(notes, fmt.Sprintf("Excedente de caja: %d días", payableDays-receivableDays))
	} else {
		notes = append(notes, fmt.Sprintf("Capital inmovilizado: %d días", gapDays))
	}
	switch {
	case commission.IsPositive():
		notes = append(notes, "Asume la comisión de consignación")
	case c.Trader.Enabled:
		notes = append(notes, "Vende al comercializador")
	default:
		notes = append(notes, "Venta directa al canal final")
	}
	if s.refunds().IsPositive() {
		notes = append(notes, "Incluye devoluciones de impuestos")
	}
	if opCost.IsPositive() {
		notes = append(notes, "Incluye paquete de gastos operativos")
	}

	return EntityResult{
		ID:          d.cfg.ID,
		Name:        d.cfg.Name,
		Role:        RolePlatform,
		Region:      d.cfg.Tax.Region,
		Taxpayer:    d.cfg.Tax.Taxpayer,
		CentralNode: true,

		InPriceExcl:  d.in.excl,
		InPriceIncl:  d.in.incl,
		CostBasis:    d.costBasis,
		OutPriceExcl: d.outExcl,
		OutPriceIncl: d.outIncl,
		RevenueExcl:  revenueExcl,
		RevenueIncl:  revenueIncl,

		VATInput:   inputVAT,
		VATOutput:  revenueVAT,
		VATPayable: vatPayable,
		Surcharges: surcharges,
		IncomeTax:  s.incomeTax,
		TaxRefunds: s.refunds(),

		FinanceCost:     financeCost,
		OperationalCost: opCost,
		CommissionCost:  commission,
		GrossProfit:     gross,
		NetProfit:       net,
		CashOutflow:     decimal.Zero,
		TaxBurdenRate:   ratio(vatPayable.Add(surcharges).Add(s.incomeTax).Sub(s.refunds()), revenueExcl),

		Notes:          notes,
		Warnings:       d.warnings,
		ComplianceTips: d.tips,
		Breakdown:      d.breakdown,
		CostDetails:    costs,
	}
}
