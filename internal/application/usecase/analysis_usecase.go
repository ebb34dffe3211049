package usecase

import (
	"github.com/jhoicas/tradechain-api/internal/application/dto"
	"github.com/jhoicas/tradechain-api/internal/domain/analysis"
	"github.com/shopspring/decimal"
)

// AnalysisUseCase herramientas "qué pasaría si" sobre una solicitud de simulación.
type AnalysisUseCase struct {
	sim *SimulationUseCase
}

// NewAnalysisUseCase construye el caso de uso.
func NewAnalysisUseCase(sim *SimulationUseCase) *AnalysisUseCase {
	return &AnalysisUseCase{sim: sim}
}

// Compare corre la solicitud en compra-venta y en consignación.
func (uc *AnalysisUseCase) Compare(in dto.SimulationRequest) (*dto.ModeComparisonResponse, error) {
	cfg, _, err := uc.sim.Simulate(in)
	if err != nil {
		return nil, err
	}
	cmp := analysis.CompareModes(cfg)
	return &dto.ModeComparisonResponse{
		Platform: toMetrics(cmp.Platform),
		Retailer: toMetrics(cmp.Retailer),
	}, nil
}

func toMetrics(ms []analysis.Metric) []dto.MetricResponse {
	out := make([]dto.MetricResponse, 0, len(ms))
	for _, m := range ms {
		out = append(out, dto.MetricResponse{
			Label:       m.Label,
			Sales:       money2(m.Sales),
			Consignment: money2(m.Consignment),
			Better:      string(m.Better()),
		})
	}
	return out
}

// Sensitivity perturba un parámetro con los escenarios por defecto.
func (uc *AnalysisUseCase) Sensitivity(in dto.SimulationRequest, param string) (*dto.SensitivityResponse, error) {
	cfg, _, err := uc.sim.Simulate(in)
	if err != nil {
		return nil, err
	}
	points, err := analysis.Sensitivity(cfg, analysis.Parameter(param), nil)
	if err != nil {
		return nil, err
	}
	out := &dto.SensitivityResponse{Parameter: param, Points: make([]dto.SensitivityPointResponse, 0, len(points))}
	for _, p := range points {
		out.Points = append(out.Points, dto.SensitivityPointResponse{
			Label:     p.Label,
			Factor:    p.Factor,
			Value:     money2(p.Value),
			NetProfit: money2(p.NetProfit),
			ROI:       money2(p.ROI),
			Delta:     money2(p.Delta),
		})
	}
	return out, nil
}

// Reverse sugiere el precio de la plataforma para una utilidad objetivo.
func (uc *AnalysisUseCase) Reverse(in dto.SimulationRequest, target decimal.Decimal) (*dto.ReverseQuoteResponse, error) {
	_, res, err := uc.sim.Simulate(in)
	if err != nil {
		return nil, err
	}
	q := analysis.ReversePrice(res, target)
	return &dto.ReverseQuoteResponse{
		TargetProfit:    money2(q.TargetProfit),
		CurrentProfit:   money2(q.CurrentProfit),
		SuggestedExcl:   money2(q.SuggestedExcl),
		SuggestedIncl:   money2(q.SuggestedIncl),
		CurrentMarkup:   money2(q.CurrentMarkup),
		SuggestedMarkup: money2(q.SuggestedMarkup),
	}, nil
}

// Capital calcula la rotación y el ROE anualizado de la plataforma.
func (uc *AnalysisUseCase) Capital(in dto.SimulationRequest) (*dto.CapitalMetricsResponse, error) {
	cfg, res, err := uc.sim.Simulate(in)
	if err != nil {
		return nil, err
	}
	m := analysis.CapitalEfficiency(cfg, res)
	return &dto.CapitalMetricsResponse{
		PayableDays:    m.PayableDays,
		ReceivableDays: m.ReceivableDays,
		FundingGapDays: m.FundingGapDays,
		DealDays:       m.DealDays,
		AnnualTurnover: ratio4(m.AnnualTurnover),
		OwnCapital:     money2(m.OwnCapital),
		AnnualizedROE:  money2(m.AnnualizedROE),
		Unbounded:      m.Unbounded,
	}, nil
}

// Structure descompone el ingreso de la plataforma.
func (uc *AnalysisUseCase) Structure(in dto.SimulationRequest) (*dto.CostStructureResponse, error) {
	_, res, err := uc.sim.Simulate(in)
	if err != nil {
		return nil, err
	}
	items := analysis.CostStructure(res.Platform)
	out := &dto.CostStructureResponse{
		RevenueIncl: money2(res.Platform.RevenueIncl),
		Items:       make([]dto.StructureItemResponse, 0, len(items)),
	}
	for _, it := range items {
		out.Items = append(out.Items, dto.StructureItemResponse{
			Label: it.Label,
			Value: money2(it.Value),
			Share: money2(it.Share),
		})
	}
	return out, nil
}
