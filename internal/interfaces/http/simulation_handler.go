package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tradechain-api/internal/application/dto"
	"github.com/jhoicas/tradechain-api/internal/application/report"
	"github.com/jhoicas/tradechain-api/internal/application/usecase"
)

// SimulationHandler maneja las simulaciones de la cadena y su informe PDF.
type SimulationHandler struct {
	uc     *usecase.SimulationUseCase
	report *report.SummaryUseCase
}

// NewSimulationHandler construye el handler.
func NewSimulationHandler(uc *usecase.SimulationUseCase, report *report.SummaryUseCase) *SimulationHandler {
	return &SimulationHandler{uc: uc, report: report}
}

// Simulate godoc
// @Summary      Simular la cadena comercial
// @Description  Calcula precios, impuestos y utilidades de origen, financiador, plataforma, comercializador opcional y minorista.
// @Tags         simulations
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SimulationRequest  true  "Paquete, participantes y ajustes"
// @Success      200   {object}  dto.SimulationResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/simulations [post]
func (h *SimulationHandler) Simulate(c *fiber.Ctx) error {
	var in dto.SimulationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Run(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// SummaryPDF godoc
// @Summary      Informe PDF de una simulación
// @Tags         reports
// @Accept       json
// @Produce      application/pdf
// @Param        body  body  dto.SimulationRequest  true  "Paquete, participantes y ajustes"
// @Success      200   {file}    binary
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/reports/summary.pdf [post]
func (h *SimulationHandler) SummaryPDF(c *fiber.Ctx) error {
	var in dto.SimulationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	pdf, filename, err := h.report.DownloadSummaryPDF(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
