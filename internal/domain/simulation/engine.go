package simulation

import "github.com/jhoicas/tradechain-api/internal/domain/entity"

// Simulate calcula la cadena completa para una configuración.
//
// Orden: origen → financiador → plataforma (borrador) → comercializador →
// minorista → plataforma (cierre). La plataforma se cierra al final porque,
// si el minorista opera en consignación sin comercializador, sus ingresos,
// su IVA descontable y su gasto de comisión dependen del minorista.
//
// Cada llamada construye su propio resultado; es seguro invocarla en paralelo.
func Simulate(cfg Configuration) Result {
	src := aggregateProcurement(cfg.Package)
	funder, funderQuote := funderStage(cfg.Funder, cfg.Rates, src, cfg.IncludeIncomeTax)

	downstream := cfg.Retailer.Mode
	if cfg.Trader.Enabled {
		downstream = entity.TradeModeSales
	}
	draft := draftPlatform(cfg.Platform, funderQuote, downstream)

	supplier := draft.quote()
	var trader *EntityResult
	if cfg.Trader.Enabled {
		tr, trQuote := traderStage(cfg.Trader, supplier, cfg.IncludeIncomeTax)
		trader = &tr
		supplier = trQuote
	}

	retailer, settlement := retailerStage(cfg.Retailer, supplier, cfg.PackageMSRP(), cfg.IncludeIncomeTax)

	var consignment *consignmentSettlement
	if !cfg.Trader.Enabled && cfg.Retailer.Mode == entity.TradeModeConsignment {
		consignment = &settlement
	}
	platform := draft.finalize(cfg, consignment)

	return Result{
		Source:   src.result,
		Funder:   funder,
		Platform: platform,
		Trader:   trader,
		Retailer: retailer,
	}
}
