package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/tradechain-api/internal/application/dto"
	"github.com/jhoicas/tradechain-api/internal/application/usecase"
)

// SummaryUseCase genera el informe PDF de una simulación.
type SummaryUseCase struct {
	sim       *usecase.SimulationUseCase
	analysis  *usecase.AnalysisUseCase
	generator SummaryPDFGenerator
	now       func() time.Time
}

// NewSummaryUseCase construye el caso de uso.
func NewSummaryUseCase(sim *usecase.SimulationUseCase, analysis *usecase.AnalysisUseCase, generator SummaryPDFGenerator) *SummaryUseCase {
	return &SummaryUseCase{sim: sim, analysis: analysis, generator: generator, now: time.Now}
}

// DownloadSummaryPDF simula la solicitud y devuelve el PDF con su nombre de archivo.
//
// Retorna domain.ErrInvalidInput o domain.ErrNotFound (envueltos) si la
// solicitud no se puede simular.
func (uc *SummaryUseCase) DownloadSummaryPDF(ctx context.Context, in dto.SimulationRequest) (pdfBytes []byte, filename string, err error) {
	sim, err := uc.sim.Run(in)
	if err != nil {
		return nil, "", err
	}
	structure, err := uc.analysis.Structure(in)
	if err != nil {
		return nil, "", err
	}

	s := Summary{
		ReferenceID: uuid.New().String(),
		GeneratedAt: uc.now(),
		Simulation:  sim,
		Structure:   structure,
	}
	pdfBytes, err = uc.generator.GenerateSummaryPDF(ctx, s)
	if err != nil {
		return nil, "", fmt.Errorf("informe: generar pdf: %w", err)
	}
	filename = fmt.Sprintf("simulacion-%s.pdf", s.GeneratedAt.Format("20060102-150405"))
	return pdfBytes, filename, nil
}
