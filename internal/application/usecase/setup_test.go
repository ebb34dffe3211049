package usecase_test

import (
	"testing"

	"github.com/jhoicas/tradechain-api/internal/application/dto"
	"github.com/jhoicas/tradechain-api/internal/application/usecase"
	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/jhoicas/tradechain-api/internal/domain/simulation"
	"github.com/jhoicas/tradechain-api/internal/infrastructure/memory"
	"github.com/jhoicas/tradechain-api/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

type fixture struct {
	manufacturers *memory.ManufacturerRepo
	funders       *memory.FunderRepo
	retailers     *memory.RetailerRepo
	policies      *memory.PolicyRepo
	sim           *usecase.SimulationUseCase
	analysis      *usecase.AnalysisUseCase
	catalog       *usecase.CatalogUseCase
}

func testDefaults() usecase.SimulationDefaults {
	return usecase.SimulationDefaults{
		FunderAnnualPercent:   d("6"),
		PlatformAnnualPercent: d("4.35"),
		IncludeIncomeTax:      true,
		Platform: simulation.PlatformConfig{
			ID:            "platform",
			Name:          "Plataforma",
			Tax:           simulation.TaxProfile{Region: entity.RegionTibet, Taxpayer: entity.TaxpayerGeneral},
			MarkupPercent: d("10"),
			Costs: simulation.CostPackage{
				WarehousingPercent: d("1"),
				LogisticsPercent:   d("2"),
				ManagementPercent:  d("1"),
				OtherPercent:       d("0.5"),
			},
		},
		Trader: simulation.TraderConfig{
			Name:          "Comercializador",
			Tax:           simulation.TaxProfile{Region: entity.RegionMainland, Taxpayer: entity.TaxpayerGeneral},
			MarkupPercent: d("5"),
		},
		FunderRegion:   entity.RegionTibet,
		RetailerRegion: entity.RegionMainland,
	}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	seed := memory.SeedCatalog()
	mfr, err := memory.NewManufacturerRepository(seed.Manufacturers...)
	require.NoError(t, err)
	funders, err := memory.NewFunderRepository(seed.Funders...)
	require.NoError(t, err)
	retailers, err := memory.NewRetailerRepository(seed.Retailers...)
	require.NoError(t, err)

	policies := entity.DefaultRegionPolicies()
	tibet := policies[entity.RegionTibet]
	tibet.VATRefundPercent = d("30")
	policies[entity.RegionTibet] = tibet
	mainland := policies[entity.RegionMainland]
	mainland.VATRefundPercent = d("50") // no debe aplicarse fuera de la región preferencial
	policies[entity.RegionMainland] = mainland
	policyRepo := memory.NewPolicyRepository(policies)

	log := logger.Nop()
	sim := usecase.NewSimulationUseCase(mfr, funders, retailers, policyRepo, testDefaults(), log)
	return &fixture{
		manufacturers: mfr,
		funders:       funders,
		retailers:     retailers,
		policies:      policyRepo,
		sim:           sim,
		analysis:      usecase.NewAnalysisUseCase(sim),
		catalog:       usecase.NewCatalogUseCase(mfr, funders, retailers, policyRepo, log),
	}
}

// baseRequest un cordyceps de m1, financiador f1 y minorista r1 con valores del catálogo.
func baseRequest() dto.SimulationRequest {
	return dto.SimulationRequest{
		Package:  []dto.PackageItemRequest{{ManufacturerID: "m1", ProductID: "p1-1", Quantity: 1}},
		Funder:   dto.FunderRequest{ID: "f1"},
		Retailer: dto.RetailerRequest{ID: "r1"},
	}
}

func ptr[T any](v T) *T { return &v }
