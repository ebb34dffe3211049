package repository

import "github.com/jhoicas/tradechain-api/internal/domain/entity"

// Las lecturas por ID devuelven (nil, nil) cuando el registro no existe;
// el caso de uso decide si es un error.

// ManufacturerRepository define el puerto de persistencia para fabricantes y sus productos (DIP).
type ManufacturerRepository interface {
	Create(m *entity.Manufacturer) error
	GetByID(id string) (*entity.Manufacturer, error)
	List() ([]*entity.Manufacturer, error)
	AddProduct(manufacturerID string, p entity.Product) error
	Delete(id string) error
}

// FunderRepository define el puerto de persistencia para financiadores (DIP).
type FunderRepository interface {
	Create(f *entity.Funder) error
	GetByID(id string) (*entity.Funder, error)
	List() ([]*entity.Funder, error)
	Delete(id string) error
}

// RetailerRepository define el puerto de persistencia para minoristas (DIP).
type RetailerRepository interface {
	Create(r *entity.Retailer) error
	GetByID(id string) (*entity.Retailer, error)
	List() ([]*entity.Retailer, error)
	Delete(id string) error
}

// PolicyRepository políticas tributarias por región.
type PolicyRepository interface {
	Get(region entity.Region) (*entity.RegionPolicy, error)
	List() ([]entity.RegionPolicy, error)
}
