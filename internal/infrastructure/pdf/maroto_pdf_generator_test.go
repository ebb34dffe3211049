package pdf

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/jhoicas/tradechain-api/internal/application/dto"
	"github.com/jhoicas/tradechain-api/internal/application/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func party(role, name string, net string) dto.EntityResultResponse {
	return dto.EntityResultResponse{
		ID:             role,
		Name:           name,
		Role:           role,
		Region:         "tibet",
		InPriceIncl:    decimal.RequireFromString("1000"),
		OutPriceIncl:   decimal.RequireFromString("1100"),
		NetProfit:      decimal.RequireFromString(net),
		TaxBurdenRate:  decimal.RequireFromString("0.0123"),
		Notes:          []string{},
		Warnings:       []string{},
		ComplianceTips: []string{},
	}
}

func sampleSummary() report.Summary {
	platform := party("platform", "Plataforma", "42.50")
	platform.CentralNode = true
	platform.ComplianceTips = []string{"Conservar contratos de consignación"}
	return report.Summary{
		ReferenceID: "ref-123",
		GeneratedAt: time.Date(2024, 3, 9, 14, 5, 7, 0, time.UTC),
		Simulation: &dto.SimulationResponse{
			Source:   party("source", "Fabricante", "0"),
			Funder:   party("funder", "Financiador", "12.30"),
			Platform: platform,
			Retailer: party("retailer", "Minorista", "88.00"),
			Warnings: []string{"Precio final supera el sugerido"},
			Summary: dto.ChainSummary{
				ConsumerPriceIncl: decimal.RequireFromString("1320"),
				PackageMSRP:       decimal.RequireFromString("1388"),
				TotalTax:          decimal.RequireFromString("75.10"),
				TotalNetProfit:    decimal.RequireFromString("142.80"),
				WarningCount:      1,
			},
		},
		Structure: &dto.CostStructureResponse{
			RevenueIncl: decimal.RequireFromString("1100"),
			Items: []dto.StructureItemResponse{
				{Label: "Compra de mercancía", Value: decimal.RequireFromString("1000"), Share: decimal.RequireFromString("90.91")},
				{Label: "Utilidad neta", Value: decimal.RequireFromString("42.50"), Share: decimal.RequireFromString("3.86")},
			},
		},
	}
}

func TestGenerateSummaryPDF(t *testing.T) {
	g := NewMarotoPDFGenerator()

	out, err := g.GenerateSummaryPDF(context.Background(), sampleSummary())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateSummaryPDF_ConComercializadorYSinEstructura(t *testing.T) {
	s := sampleSummary()
	trader := party("trader", "Comercializador", "20")
	s.Simulation.Trader = &trader
	s.Structure = nil

	out, err := NewMarotoPDFGenerator().GenerateSummaryPDF(context.Background(), s)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestGenerateSummaryPDF_SinSimulacion(t *testing.T) {
	_, err := NewMarotoPDFGenerator().GenerateSummaryPDF(context.Background(), report.Summary{ReferenceID: "x"})
	require.Error(t, err)
}
