package usecase

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/tradechain-api/internal/application/dto"
	"github.com/jhoicas/tradechain-api/internal/domain"
	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/jhoicas/tradechain-api/internal/domain/repository"
	"github.com/jhoicas/tradechain-api/pkg/logger"
)

// CatalogUseCase consulta y mantenimiento del catálogo.
type CatalogUseCase struct {
	manufacturers repository.ManufacturerRepository
	funders       repository.FunderRepository
	retailers     repository.RetailerRepository
	policies      repository.PolicyRepository
	log           *logger.Logger
}

// NewCatalogUseCase construye el caso de uso.
func NewCatalogUseCase(
	manufacturers repository.ManufacturerRepository,
	funders repository.FunderRepository,
	retailers repository.RetailerRepository,
	policies repository.PolicyRepository,
	log *logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		manufacturers: manufacturers,
		funders:       funders,
		retailers:     retailers,
		policies:      policies,
		log:           log,
	}
}

// ── Fabricantes ──────────────────────────────────────────────────────────────

// ListManufacturers lista los fabricantes con sus productos.
func (uc *CatalogUseCase) ListManufacturers() (*dto.ListResponse[dto.ManufacturerResponse], error) {
	list, err := uc.manufacturers.List()
	if err != nil {
		return nil, fmt.Errorf("listar fabricantes: %w", err)
	}
	items := make([]dto.ManufacturerResponse, 0, len(list))
	for _, m := range list {
		items = append(items, toManufacturerResponse(m))
	}
	return &dto.ListResponse[dto.ManufacturerResponse]{Items: items, Total: len(items)}, nil
}

// CreateManufacturer registra un fabricante con productos opcionales.
func (uc *CatalogUseCase) CreateManufacturer(in dto.CreateManufacturerRequest) (*dto.ManufacturerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	taxpayer := entity.TaxpayerType(in.Taxpayer)
	if !taxpayer.Valid() {
		return nil, fmt.Errorf("%w: taxpayer %q", domain.ErrInvalidInput, in.Taxpayer)
	}
	m := &entity.Manufacturer{
		ID:             uuid.New().String(),
		Name:           name,
		Taxpayer:       taxpayer,
		WithoutInvoice: in.WithoutInvoice,
		Products:       make([]entity.Product, 0, len(in.Products)),
	}
	for _, p := range in.Products {
		prod, err := newProduct(p)
		if err != nil {
			return nil, err
		}
		m.Products = append(m.Products, prod)
	}
	if err := uc.manufacturers.Create(m); err != nil {
		return nil, fmt.Errorf("crear fabricante: %w", err)
	}
	uc.log.Info().Str("id", m.ID).Str("name", m.Name).Msg("fabricante registrado")
	out := toManufacturerResponse(m)
	return &out, nil
}

// AddProduct agrega un producto a un fabricante existente.
func (uc *CatalogUseCase) AddProduct(manufacturerID string, in dto.ProductRequest) (*dto.ProductResponse, error) {
	prod, err := newProduct(in)
	if err != nil {
		return nil, err
	}
	if err := uc.manufacturers.AddProduct(manufacturerID, prod); err != nil {
		return nil, fmt.Errorf("agregar producto: %w", err)
	}
	out := toProductResponse(prod)
	return &out, nil
}

func newProduct(in dto.ProductRequest) (entity.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return entity.Product{}, fmt.Errorf("%w: nombre de producto requerido", domain.ErrInvalidInput)
	}
	if in.BasePrice.IsNegative() || in.MSRP.IsNegative() {
		return entity.Product{}, fmt.Errorf("%w: precios negativos en %q", domain.ErrInvalidInput, name)
	}
	return entity.Product{ID: uuid.New().String(), Name: name, BasePrice: in.BasePrice, MSRP: in.MSRP}, nil
}

// DeleteManufacturer elimina un fabricante.
func (uc *CatalogUseCase) DeleteManufacturer(id string) error {
	if err := uc.manufacturers.Delete(id); err != nil {
		return fmt.Errorf("eliminar fabricante: %w", err)
	}
	return nil
}

// ── Financiadores ────────────────────────────────────────────────────────────

// ListFunders lista los financiadores.
func (uc *CatalogUseCase) ListFunders() (*dto.ListResponse[dto.FunderResponse], error) {
	list, err := uc.funders.List()
	if err != nil {
		return nil, fmt.Errorf("listar financiadores: %w", err)
	}
	items := make([]dto.FunderResponse, 0, len(list))
	for _, f := range list {
		items = append(items, toFunderResponse(f))
	}
	return &dto.ListResponse[dto.FunderResponse]{Items: items, Total: len(items)}, nil
}

// CreateFunder registra un financiador.
func (uc *CatalogUseCase) CreateFunder(in dto.CreateFunderRequest) (*dto.FunderResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	if in.DefaultMarkupPercent.IsNegative() || in.DefaultPaymentTermMonths < 0 {
		return nil, fmt.Errorf("%w: margen y plazo no pueden ser negativos", domain.ErrInvalidInput)
	}
	f := &entity.Funder{
		ID:                       uuid.New().String(),
		Name:                     name,
		DefaultMarkupPercent:     in.DefaultMarkupPercent,
		DefaultPaymentTermMonths: in.DefaultPaymentTermMonths,
	}
	if err := uc.funders.Create(f); err != nil {
		return nil, fmt.Errorf("crear financiador: %w", err)
	}
	uc.log.Info().Str("id", f.ID).Str("name", f.Name).Msg("financiador registrado")
	out := toFunderResponse(f)
	return &out, nil
}

// DeleteFunder elimina un financiador.
func (uc *CatalogUseCase) DeleteFunder(id string) error {
	if err := uc.funders.Delete(id); err != nil {
		return fmt.Errorf("eliminar financiador: %w", err)
	}
	return nil
}

// ── Minoristas ───────────────────────────────────────────────────────────────

// ListRetailers lista los minoristas.
func (uc *CatalogUseCase) ListRetailers() (*dto.ListResponse[dto.RetailerResponse], error) {
	list, err := uc.retailers.List()
	if err != nil {
		return nil, fmt.Errorf("listar minoristas: %w", err)
	}
	items := make([]dto.RetailerResponse, 0, len(list))
	for _, r := range list {
		items = append(items, toRetailerResponse(r))
	}
	return &dto.ListResponse[dto.RetailerResponse]{Items: items, Total: len(items)}, nil
}

// CreateRetailer registra un minorista.
func (uc *CatalogUseCase) CreateRetailer(in dto.CreateRetailerRequest) (*dto.RetailerResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	taxpayer := entity.TaxpayerType(in.DefaultTaxpayer)
	if !taxpayer.Valid() {
		return nil, fmt.Errorf("%w: taxpayer %q", domain.ErrInvalidInput, in.DefaultTaxpayer)
	}
	if in.DefaultMarkupPercent.IsNegative() || in.DefaultPaymentTermDays < 0 {
		return nil, fmt.Errorf("%w: margen y plazo no pueden ser negativos", domain.ErrInvalidInput)
	}
	r := &entity.Retailer{
		ID:                     uuid.New().String(),
		Name:                   name,
		DefaultMarkupPercent:   in.DefaultMarkupPercent,
		DefaultPaymentTermDays: in.DefaultPaymentTermDays,
		DefaultTaxpayer:        taxpayer,
	}
	if err := uc.retailers.Create(r); err != nil {
		return nil, fmt.Errorf("crear minorista: %w", err)
	}
	uc.log.Info().Str("id", r.ID).Str("name", r.Name).Msg("minorista registrado")
	out := toRetailerResponse(r)
	return &out, nil
}

// DeleteRetailer elimina un minorista.
func (uc *CatalogUseCase) DeleteRetailer(id string) error {
	if err := uc.retailers.Delete(id); err != nil {
		return fmt.Errorf("eliminar minorista: %w", err)
	}
	return nil
}

// ── Políticas ────────────────────────────────────────────────────────────────

// ListPolicies políticas tributarias por región.
func (uc *CatalogUseCase) ListPolicies() (*dto.ListResponse[dto.RegionPolicyResponse], error) {
	list, err := uc.policies.List()
	if err != nil {
		return nil, fmt.Errorf("listar políticas: %w", err)
	}
	items := make([]dto.RegionPolicyResponse, 0, len(list))
	for _, p := range list {
		items = append(items, dto.RegionPolicyResponse{
			Region:                 string(p.Region),
			Preferential:           p.Region.Preferential(),
			SurchargePercent:       p.SurchargePercent,
			IncomeTaxPercent:       p.IncomeTaxPercent,
			VATRefundPercent:       p.VATRefundPercent,
			IncomeTaxRefundPercent: p.IncomeTaxRefundPercent,
		})
	}
	return &dto.ListResponse[dto.RegionPolicyResponse]{Items: items, Total: len(items)}, nil
}

func toProductResponse(p entity.Product) dto.ProductResponse {
	return dto.ProductResponse{ID: p.ID, Name: p.Name, BasePrice: p.BasePrice, MSRP: p.MSRP}
}

func toManufacturerResponse(m *entity.Manufacturer) dto.ManufacturerResponse {
	products := make([]dto.ProductResponse, 0, len(m.Products))
	for _, p := range m.Products {
		products = append(products, toProductResponse(p))
	}
	return dto.ManufacturerResponse{
		ID:             m.ID,
		Name:           m.Name,
		Taxpayer:       string(m.Taxpayer),
		TaxpayerLabel:  m.Taxpayer.Label(),
		WithoutInvoice: m.WithoutInvoice,
		Products:       products,
	}
}

func toFunderResponse(f *entity.Funder) dto.FunderResponse {
	return dto.FunderResponse{
		ID:                       f.ID,
		Name:                     f.Name,
		DefaultMarkupPercent:     f.DefaultMarkupPercent,
		DefaultPaymentTermMonths: f.DefaultPaymentTermMonths,
	}
}

func toRetailerResponse(r *entity.Retailer) dto.RetailerResponse {
	return dto.RetailerResponse{
		ID:                     r.ID,
		Name:                   r.Name,
		DefaultMarkupPercent:   r.DefaultMarkupPercent,
		DefaultPaymentTermDays: r.DefaultPaymentTermDays,
		DefaultTaxpayer:        string(r.DefaultTaxpayer),
	}
}
