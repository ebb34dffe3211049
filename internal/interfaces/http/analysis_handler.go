package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/tradechain-api/internal/application/dto"
	"github.com/jhoicas/tradechain-api/internal/application/usecase"
	"github.com/shopspring/decimal"
)

// AnalysisHandler herramientas de escenarios. Todas reciben la misma
// solicitud de simulación que /api/simulations.
type AnalysisHandler struct {
	uc *usecase.AnalysisUseCase
}

// NewAnalysisHandler construye el handler.
func NewAnalysisHandler(uc *usecase.AnalysisUseCase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// Compare godoc
// @Summary      Comparar compra-venta vs consignación
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SimulationRequest  true  "Solicitud de simulación"
// @Success      200   {object}  dto.ModeComparisonResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/analysis/compare [post]
func (h *AnalysisHandler) Compare(c *fiber.Ctx) error {
	var in dto.SimulationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Compare(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Sensitivity godoc
// @Summary      Sensibilidad de la utilidad de la plataforma
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        param  query     string                 true  "platform_markup | funder_markup | funder_interest | retailer_payment_term"
// @Param        body   body      dto.SimulationRequest  true  "Solicitud de simulación"
// @Success      200    {object}  dto.SensitivityResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/analysis/sensitivity [post]
func (h *AnalysisHandler) Sensitivity(c *fiber.Ctx) error {
	param := c.Query("param")
	if param == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "param es requerido"})
	}
	var in dto.SimulationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Sensitivity(in, param)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Reverse godoc
// @Summary      Precio sugerido para una utilidad objetivo
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        target  query     string                 true  "Utilidad neta objetivo de la plataforma"
// @Param        body    body      dto.SimulationRequest  true  "Solicitud de simulación"
// @Success      200     {object}  dto.ReverseQuoteResponse
// @Failure      400     {object}  dto.ErrorResponse
// @Router       /api/analysis/reverse [post]
func (h *AnalysisHandler) Reverse(c *fiber.Ctx) error {
	target, err := decimal.NewFromString(c.Query("target"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "target debe ser numérico"})
	}
	var in dto.SimulationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Reverse(in, target)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Capital godoc
// @Summary      Eficiencia del capital de la plataforma
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SimulationRequest  true  "Solicitud de simulación"
// @Success      200   {object}  dto.CapitalMetricsResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/analysis/capital [post]
func (h *AnalysisHandler) Capital(c *fiber.Ctx) error {
	var in dto.SimulationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Capital(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Structure godoc
// @Summary      Estructura del ingreso de la plataforma
// @Tags         analysis
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SimulationRequest  true  "Solicitud de simulación"
// @Success      200   {object}  dto.CostStructureResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/analysis/structure [post]
func (h *AnalysisHandler) Structure(c *fiber.Ctx) error {
	var in dto.SimulationRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.Structure(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
