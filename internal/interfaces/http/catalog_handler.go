package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/jhoicas/tradechain-api/internal/application/dto"
	"github.com/jhoicas/tradechain-api/internal/application/usecase"
)

// CatalogHandler consulta (pública) y mantenimiento (admin) del catálogo.
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler construye el handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// pathID copia el parámetro :id; fiber reutiliza el buffer de la petición.
func pathID(c *fiber.Ctx) string {
	return utils.CopyString(c.Params("id"))
}

// ListManufacturers godoc
// @Summary      Listar fabricantes y productos
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.ManufacturerResponse]
// @Router       /api/catalog/manufacturers [get]
func (h *CatalogHandler) ListManufacturers(c *fiber.Ctx) error {
	out, err := h.uc.ListManufacturers()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateManufacturer godoc
// @Summary      Registrar fabricante
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateManufacturerRequest  true  "Fabricante"
// @Success      201   {object}  dto.ManufacturerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/catalog/manufacturers [post]
func (h *CatalogHandler) CreateManufacturer(c *fiber.Ctx) error {
	var in dto.CreateManufacturerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateManufacturer(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// AddProduct godoc
// @Summary      Agregar producto a un fabricante
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path      string              true  "ID del fabricante"
// @Param        body  body      dto.ProductRequest  true  "Producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/catalog/manufacturers/{id}/products [post]
func (h *CatalogHandler) AddProduct(c *fiber.Ctx) error {
	var in dto.ProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.AddProduct(pathID(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteManufacturer godoc
// @Summary      Eliminar fabricante
// @Tags         catalog
// @Security     Bearer
// @Param        id   path  string  true  "ID del fabricante"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/manufacturers/{id} [delete]
func (h *CatalogHandler) DeleteManufacturer(c *fiber.Ctx) error {
	if err := h.uc.DeleteManufacturer(pathID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListFunders godoc
// @Summary      Listar financiadores
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.FunderResponse]
// @Router       /api/catalog/funders [get]
func (h *CatalogHandler) ListFunders(c *fiber.Ctx) error {
	out, err := h.uc.ListFunders()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateFunder godoc
// @Summary      Registrar financiador
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateFunderRequest  true  "Financiador"
// @Success      201   {object}  dto.FunderResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/catalog/funders [post]
func (h *CatalogHandler) CreateFunder(c *fiber.Ctx) error {
	var in dto.CreateFunderRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateFunder(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteFunder godoc
// @Summary      Eliminar financiador
// @Tags         catalog
// @Security     Bearer
// @Param        id   path  string  true  "ID del financiador"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/funders/{id} [delete]
func (h *CatalogHandler) DeleteFunder(c *fiber.Ctx) error {
	if err := h.uc.DeleteFunder(pathID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListRetailers godoc
// @Summary      Listar minoristas
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.RetailerResponse]
// @Router       /api/catalog/retailers [get]
func (h *CatalogHandler) ListRetailers(c *fiber.Ctx) error {
	out, err := h.uc.ListRetailers()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CreateRetailer godoc
// @Summary      Registrar minorista
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateRetailerRequest  true  "Minorista"
// @Success      201   {object}  dto.RetailerResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/catalog/retailers [post]
func (h *CatalogHandler) CreateRetailer(c *fiber.Ctx) error {
	var in dto.CreateRetailerRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	out, err := h.uc.CreateRetailer(in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteRetailer godoc
// @Summary      Eliminar minorista
// @Tags         catalog
// @Security     Bearer
// @Param        id   path  string  true  "ID del minorista"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/catalog/retailers/{id} [delete]
func (h *CatalogHandler) DeleteRetailer(c *fiber.Ctx) error {
	if err := h.uc.DeleteRetailer(pathID(c)); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListPolicies godoc
// @Summary      Políticas tributarias por región
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  dto.ListResponse[dto.RegionPolicyResponse]
// @Router       /api/catalog/policies [get]
func (h *CatalogHandler) ListPolicies(c *fiber.Ctx) error {
	out, err := h.uc.ListPolicies()
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
