package report

import (
	"context"
	"time"

	"github.com/jhoicas/tradechain-api/internal/application/dto"
)

// Summary datos del informe imprimible de una simulación.
type Summary struct {
	ReferenceID string
	GeneratedAt time.Time
	Simulation  *dto.SimulationResponse
	Structure   *dto.CostStructureResponse
}

// SummaryPDFGenerator puerto de salida: renderiza el informe en PDF.
type SummaryPDFGenerator interface {
	GenerateSummaryPDF(ctx context.Context, s Summary) ([]byte, error)
}
