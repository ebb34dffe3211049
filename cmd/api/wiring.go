package main

import (
	"fmt"

	"github.com/jhoicas/tradechain-api/internal/application/usecase"
	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/jhoicas/tradechain-api/internal/domain/simulation"
	"github.com/jhoicas/tradechain-api/pkg/config"
)

// regionPolicies convierte SIM_<REGION>_* en políticas del dominio.
func regionPolicies(sim config.SimConfig) (map[entity.Region]entity.RegionPolicy, error) {
	out := entity.DefaultRegionPolicies()
	for key, r := range sim.Regions {
		region := entity.Region(key)
		if !region.Valid() {
			return nil, fmt.Errorf("región desconocida %q", key)
		}
		out[region] = entity.RegionPolicy{
			Region:                 region,
			SurchargePercent:       r.SurchargePercent,
			IncomeTaxPercent:       r.IncomeTaxPercent,
			VATRefundPercent:       r.VATRefundPercent,
			IncomeTaxRefundPercent: r.IncomeTaxRefundPercent,
		}
	}
	return out, nil
}

// simulationDefaults arma los valores por defecto de la simulación.
// Los porcentajes tributarios de cada etapa se resuelven luego desde la política.
func simulationDefaults(sim config.SimConfig) (usecase.SimulationDefaults, error) {
	for name, r := range map[string]string{
		"SIM_PLATFORM_REGION": sim.Platform.Region,
		"SIM_TRADER_REGION":   sim.Trader.Region,
		"SIM_FUNDER_REGION":   sim.FunderRegion,
		"SIM_RETAILER_REGION": sim.RetailerRegion,
	} {
		if !entity.Region(r).Valid() {
			return usecase.SimulationDefaults{}, fmt.Errorf("%s: región desconocida %q", name, r)
		}
	}
	for name, tp := range map[string]string{
		"SIM_PLATFORM_TAXPAYER": sim.Platform.Taxpayer,
		"SIM_TRADER_TAXPAYER":   sim.Trader.Taxpayer,
	} {
		if !entity.TaxpayerType(tp).Valid() {
			return usecase.SimulationDefaults{}, fmt.Errorf("%s: clasificación desconocida %q", name, tp)
		}
	}

	return usecase.SimulationDefaults{
		FunderAnnualPercent:   sim.FunderAnnualPercent,
		PlatformAnnualPercent: sim.PlatformAnnualPercent,
		IncludeIncomeTax:      sim.IncludeIncomeTax,
		Platform: simulation.PlatformConfig{
			ID:   sim.Platform.ID,
			Name: sim.Platform.Name,
			Tax: simulation.TaxProfile{
				Region:   entity.Region(sim.Platform.Region),
				Taxpayer: entity.TaxpayerType(sim.Platform.Taxpayer),
			},
			MarkupPercent: sim.Platform.MarkupPercent,
			Costs: simulation.CostPackage{
				WarehousingPercent: sim.Platform.WarehousingPercent,
				LogisticsPercent:   sim.Platform.LogisticsPercent,
				ManagementPercent:  sim.Platform.ManagementPercent,
				OtherPercent:       sim.Platform.OtherPercent,
			},
		},
		Trader: simulation.TraderConfig{
			Name: sim.Trader.Name,
			Tax: simulation.TaxProfile{
				Region:   entity.Region(sim.Trader.Region),
				Taxpayer: entity.TaxpayerType(sim.Trader.Taxpayer),
			},
			MarkupPercent:   sim.Trader.MarkupPercent,
			PaymentTermDays: sim.Trader.PaymentTermDays,
		},
		FunderRegion:   entity.Region(sim.FunderRegion),
		RetailerRegion: entity.Region(sim.RetailerRegion),
	}, nil
}
