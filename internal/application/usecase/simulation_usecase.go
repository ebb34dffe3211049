package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jhoicas/tradechain-api/internal/application/dto"
	"github.com/jhoicas/tradechain-api/internal/domain"
	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/jhoicas/tradechain-api/internal/domain/repository"
	"github.com/jhoicas/tradechain-api/internal/domain/simulation"
	"github.com/jhoicas/tradechain-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// SimulationDefaults valores que completan una solicitud.
type SimulationDefaults struct {
	FunderAnnualPercent   decimal.Decimal
	PlatformAnnualPercent decimal.Decimal
	IncludeIncomeTax      bool

	// Platform y Trader traen región y clasificación; los porcentajes de
	// Tax se recalculan desde la política de la región.
	Platform simulation.PlatformConfig
	Trader   simulation.TraderConfig

	FunderRegion   entity.Region
	RetailerRegion entity.Region
}

// SimulationUseCase arma la configuración desde el catálogo y corre el motor.
type SimulationUseCase struct {
	manufacturers repository.ManufacturerRepository
	funders       repository.FunderRepository
	retailers     repository.RetailerRepository
	policies      repository.PolicyRepository
	defaults      SimulationDefaults
	log           *logger.Logger
}

// NewSimulationUseCase construye el caso de uso.
func NewSimulationUseCase(
	manufacturers repository.ManufacturerRepository,
	funders repository.FunderRepository,
	retailers repository.RetailerRepository,
	policies repository.PolicyRepository,
	defaults SimulationDefaults,
	log *logger.Logger,
) *SimulationUseCase {
	return &SimulationUseCase{
		manufacturers: manufacturers,
		funders:       funders,
		retailers:     retailers,
		policies:      policies,
		defaults:      defaults,
		log:           log,
	}
}

// Run valida la solicitud, simula la cadena y devuelve el resultado redondeado.
func (uc *SimulationUseCase) Run(in dto.SimulationRequest) (*dto.SimulationResponse, error) {
	cfg, res, err := uc.Simulate(in)
	if err != nil {
		return nil, err
	}
	return toSimulationResponse(cfg, res), nil
}

// Simulate arma y valida la configuración y corre el motor.
func (uc *SimulationUseCase) Simulate(in dto.SimulationRequest) (simulation.Configuration, simulation.Result, error) {
	cfg, err := uc.BuildConfiguration(in)
	if err != nil {
		uc.log.Warn().Err(err).Msg("simulación rechazada")
		return simulation.Configuration{}, simulation.Result{}, err
	}
	if err := cfg.Validate(); err != nil {
		uc.log.Warn().Err(err).Msg("simulación rechazada")
		return simulation.Configuration{}, simulation.Result{}, fmt.Errorf("simulación: %w", err)
	}

	res := simulation.Simulate(cfg)
	uc.log.Debug().
		Str("run_id", uuid.NewString()).
		Int("lines", len(cfg.Package)).
		Bool("trader", cfg.Trader.Enabled).
		Str("mode", string(cfg.Retailer.Mode)).
		Int("warnings", len(res.Warnings())).
		Str("platform_net", res.Platform.NetProfit.StringFixed(2)).
		Msg("simulación ejecutada")
	return cfg, res, nil
}

// BuildConfiguration resuelve IDs del catálogo, políticas de región y
// valores por defecto. No valida rangos; eso lo hace Configuration.Validate.
func (uc *SimulationUseCase) BuildConfiguration(in dto.SimulationRequest) (simulation.Configuration, error) {
	pkg, err := uc.resolvePackage(in.Package)
	if err != nil {
		return simulation.Configuration{}, err
	}

	funder, err := uc.funders.GetByID(in.Funder.ID)
	if err != nil {
		return simulation.Configuration{}, fmt.Errorf("obtener financiador: %w", err)
	}
	if funder == nil {
		return simulation.Configuration{}, fmt.Errorf("financiador %q: %w", in.Funder.ID, domain.ErrNotFound)
	}
	retailer, err := uc.retailers.GetByID(in.Retailer.ID)
	if err != nil {
		return simulation.Configuration{}, fmt.Errorf("obtener minorista: %w", err)
	}
	if retailer == nil {
		return simulation.Configuration{}, fmt.Errorf("minorista %q: %w", in.Retailer.ID, domain.ErrNotFound)
	}

	cfg := simulation.Configuration{
		Package: pkg,
		Rates: simulation.GlobalRates{
			FunderAnnualPercent:   decOr(in.Rates.FunderAnnualPercent, uc.defaults.FunderAnnualPercent),
			PlatformAnnualPercent: decOr(in.Rates.PlatformAnnualPercent, uc.defaults.PlatformAnnualPercent),
		},
		IncludeIncomeTax: uc.defaults.IncludeIncomeTax,
	}
	if in.IncludeIncomeTax != nil {
		cfg.IncludeIncomeTax = *in.IncludeIncomeTax
	}

	// Financiador: siempre contribuyente general.
	funderTax, err := uc.taxProfile(in.Funder.Tax, uc.defaults.FunderRegion, entity.TaxpayerGeneral)
	if err != nil {
		return simulation.Configuration{}, err
	}
	funderTax.Taxpayer = entity.TaxpayerGeneral
	cfg.Funder = simulation.FunderConfig{
		ID:                   funder.ID,
		Name:                 funder.Name,
		Tax:                  funderTax,
		MarkupPercent:        decOr(in.Funder.MarkupPercent, funder.DefaultMarkupPercent),
		PaymentTermMonths:    intOr(in.Funder.PaymentTermMonths, funder.DefaultPaymentTermMonths),
		LogisticsCostPercent: decOr(in.Funder.LogisticsCostPercent, decimal.Zero),
	}

	platform := uc.defaults.Platform
	platform.Tax, err = uc.taxProfile(in.Platform.Tax, platform.Tax.Region, platform.Tax.Taxpayer)
	if err != nil {
		return simulation.Configuration{}, err
	}
	if in.Platform.Name != nil {
		platform.Name = *in.Platform.Name
	}
	platform.MarkupPercent = decOr(in.Platform.MarkupPercent, platform.MarkupPercent)
	if c := in.Platform.Costs; c != nil {
		platform.Costs = simulation.CostPackage{
			WarehousingPercent: c.WarehousingPercent,
			LogisticsPercent:   c.LogisticsPercent,
			ManagementPercent:  c.ManagementPercent,
			OtherPercent:       c.OtherPercent,
		}
	}
	cfg.Platform = platform

	if in.Trader.Enabled {
		trader := uc.defaults.Trader
		trader.Enabled = true
		trader.Tax, err = uc.taxProfile(in.Trader.Tax, trader.Tax.Region, trader.Tax.Taxpayer)
		if err != nil {
			return simulation.Configuration{}, err
		}
		if in.Trader.Name != nil {
			trader.Name = *in.Trader.Name
		}
		trader.MarkupPercent = decOr(in.Trader.MarkupPercent, trader.MarkupPercent)
		trader.PaymentTermDays = intOr(in.Trader.PaymentTermDays, trader.PaymentTermDays)
		cfg.Trader = trader
	}

	retailerTax, err := uc.taxProfile(in.Retailer.Tax, uc.defaults.RetailerRegion, retailer.DefaultTaxpayer)
	if err != nil {
		return simulation.Configuration{}, err
	}
	mode := entity.TradeMode(in.Retailer.Mode)
	if mode == "" {
		mode = entity.TradeModeSales
	}
	cfg.Retailer = simulation.RetailerConfig{
		ID:              retailer.ID,
		Name:            retailer.Name,
		Tax:             retailerTax,
		Mode:            mode,
		MarkupPercent:   decOr(in.Retailer.MarkupPercent, retailer.DefaultMarkupPercent),
		PaymentTermDays: intOr(in.Retailer.PaymentTermDays, retailer.DefaultPaymentTermDays),
	}

	return cfg, nil
}

func (uc *SimulationUseCase) resolvePackage(items []dto.PackageItemRequest) ([]simulation.PackageLine, error) {
	lines := make([]simulation.PackageLine, 0, len(items))
	for _, it := range items {
		m, err := uc.manufacturers.GetByID(it.ManufacturerID)
		if err != nil {
			return nil, fmt.Errorf("obtener fabricante: %w", err)
		}
		if m == nil {
			return nil, fmt.Errorf("fabricante %q: %w", it.ManufacturerID, domain.ErrNotFound)
		}
		p, ok := m.FindProduct(it.ProductID)
		if !ok {
			return nil, fmt.Errorf("producto %q de %q: %w", it.ProductID, it.ManufacturerID, domain.ErrNotFound)
		}
		m.Products = nil
		lines = append(lines, simulation.PackageLine{Manufacturer: *m, Product: p, Quantity: it.Quantity})
	}
	return lines, nil
}

// taxProfile parte de la política de la región y aplica los ajustes.
// Las devoluciones de la política solo valen en la región preferencial.
func (uc *SimulationUseCase) taxProfile(o dto.TaxOverride, region entity.Region, taxpayer entity.TaxpayerType) (simulation.TaxProfile, error) {
	if o.Region != nil {
		region = entity.Region(*o.Region)
	}
	if o.Taxpayer != nil {
		taxpayer = entity.TaxpayerType(*o.Taxpayer)
	}
	t := simulation.TaxProfile{Region: region, Taxpayer: taxpayer}

	if region.Valid() {
		policy, err := uc.policies.Get(region)
		if err != nil {
			return simulation.TaxProfile{}, fmt.Errorf("obtener política %s: %w", region, err)
		}
		if policy != nil {
			t.SurchargePercent = policy.SurchargePercent
			t.IncomeTaxPercent = policy.IncomeTaxPercent
			if region.Preferential() {
				t.VATRefundPercent = policy.VATRefundPercent
				t.IncomeTaxRefundPercent = policy.IncomeTaxRefundPercent
			}
		}
	}

	t.SurchargePercent = decOr(o.SurchargePercent, t.SurchargePercent)
	t.IncomeTaxPercent = decOr(o.IncomeTaxPercent, t.IncomeTaxPercent)
	t.VATRefundPercent = decOr(o.VATRefundPercent, t.VATRefundPercent)
	t.IncomeTaxRefundPercent = decOr(o.IncomeTaxRefundPercent, t.IncomeTaxRefundPercent)
	return t, nil
}

func decOr(v *decimal.Decimal, def decimal.Decimal) decimal.Decimal {
	if v != nil {
		return *v
	}
	return def
}

func intOr(v *int, def int) int {
	if v != nil {
		return *v
	}
	return def
}

// ── Mapeo a DTO ──────────────────────────────────────────────────────────────

func money2(d decimal.Decimal) decimal.Decimal { return d.Round(2) }
func ratio4(d decimal.Decimal) decimal.Decimal { return d.Round(4) }

func toEntityResponse(e simulation.EntityResult) dto.EntityResultResponse {
	out := dto.EntityResultResponse{
		ID:          e.ID,
		Name:        e.Name,
		Role:        e.Role,
		Region:      string(e.Region),
		Taxpayer:    string(e.Taxpayer),
		TradeMode:   string(e.TradeMode),
		CentralNode: e.CentralNode,

		InPriceExcl:  money2(e.InPriceExcl),
		InPriceIncl:  money2(e.InPriceIncl),
		CostBasis:    money2(e.CostBasis),
		OutPriceExcl: money2(e.OutPriceExcl),
		OutPriceIncl: money2(e.OutPriceIncl),
		RevenueExcl:  money2(e.RevenueExcl),
		RevenueIncl:  money2(e.RevenueIncl),

		VATInput:   money2(e.VATInput),
		VATOutput:  money2(e.VATOutput),
		VATPayable: money2(e.VATPayable),
		Surcharges: money2(e.Surcharges),
		IncomeTax:  money2(e.IncomeTax),
		TaxRefunds: money2(e.TaxRefunds),
		TotalTax:   money2(e.TotalTax()),

		FinanceCost:     money2(e.FinanceCost),
		OperationalCost: money2(e.OperationalCost),
		CommissionCost:  money2(e.CommissionCost),
		GrossProfit:     money2(e.GrossProfit),
		NetProfit:       money2(e.NetProfit),
		CashOutflow:     money2(e.CashOutflow),
		TaxBurdenRate:   ratio4(e.TaxBurdenRate),

		Notes:          nonNilStrings(e.Notes),
		Warnings:       nonNilStrings(e.Warnings),
		ComplianceTips: nonNilStrings(e.ComplianceTips),
		Breakdown:      make([]dto.PriceDetailResponse, 0, len(e.Breakdown)),
	}
	for _, b := range e.Breakdown {
		out.Breakdown = append(out.Breakdown, dto.PriceDetailResponse{
			ProductID:      b.ProductID,
			ProductName:    b.ProductName,
			Quantity:       b.Quantity,
			UnitPriceExcl:  money2(b.UnitPriceExcl),
			UnitPriceIncl:  money2(b.UnitPriceIncl),
			TotalPriceIncl: money2(b.TotalPriceIncl),
		})
	}
	if c := e.CostDetails; c != nil {
		out.CostDetails = &dto.CostDetailsResponse{
			Warehousing: money2(c.Warehousing),
			Logistics:   money2(c.Logistics),
			Management:  money2(c.Management),
			Other:       money2(c.Other),
		}
	}
	return out
}

func toSimulationResponse(cfg simulation.Configuration, res simulation.Result) *dto.SimulationResponse {
	out := &dto.SimulationResponse{
		Source:   toEntityResponse(res.Source),
		Funder:   toEntityResponse(res.Funder),
		Platform: toEntityResponse(res.Platform),
		Retailer: toEntityResponse(res.Retailer),
		Warnings: nonNilStrings(res.Warnings()),
	}
	if res.Trader != nil {
		tr := toEntityResponse(*res.Trader)
		out.Trader = &tr
	}

	totalTax, totalNet := decimal.Zero, decimal.Zero
	for _, e := range res.Chain()[1:] {
		totalTax = totalTax.Add(e.NetTax())
		totalNet = totalNet.Add(e.NetProfit)
	}
	out.Summary = dto.ChainSummary{
		ConsumerPriceIncl: money2(res.Retailer.OutPriceIncl),
		PackageMSRP:       money2(cfg.PackageMSRP()),
		TotalTax:          money2(totalTax),
		TotalNetProfit:    money2(totalNet),
		WarningCount:      len(out.Warnings),
	}
	return out
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
