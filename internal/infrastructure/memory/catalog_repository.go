// Package memory adaptadores de persistencia en memoria para el catálogo.
// Cada repositorio protege su mapa con un sync.RWMutex y entrega copias,
// de modo que los llamadores no comparten estado con el almacén.
package memory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/tradechain-api/internal/domain"
	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/jhoicas/tradechain-api/internal/domain/repository"
)

var (
	_ repository.ManufacturerRepository = (*ManufacturerRepo)(nil)
	_ repository.FunderRepository       = (*FunderRepo)(nil)
	_ repository.RetailerRepository     = (*RetailerRepo)(nil)
	_ repository.PolicyRepository       = (*PolicyRepo)(nil)
)

// store mapa genérico con orden de inserción estable.
type store[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

func newStore[T any]() *store[T] {
	return &store[T]{items: map[string]T{}}
}

func (s *store[T]) create(id string, v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; ok {
		return fmt.Errorf("%w: id %s", domain.ErrDuplicate, id)
	}
	s.items[id] = v
	s.order = append(s.order, id)
	return nil
}

func (s *store[T]) get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[id]
	return v, ok
}

func (s *store[T]) list() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

func (s *store[T]) update(id string, fn func(T) T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.items[id]
	if !ok {
		return false
	}
	// Reescribe con la clave ya almacenada: asignar con id reemplaza la
	// clave del mapa por la cadena del llamador.
	for _, k := range s.order {
		if k == id {
			s.items[k] = fn(v)
			break
		}
	}
	return true
}

func (s *store[T]) delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return false
	}
	delete(s.items, id)
	for i, k := range s.order {
		if k == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true
}

// ── Fabricantes ──────────────────────────────────────────────────────────────

// ManufacturerRepo implementación en memoria de ManufacturerRepository.
type ManufacturerRepo struct {
	s *store[entity.Manufacturer]
}

// NewManufacturerRepository construye el repositorio con los fabricantes iniciales.
func NewManufacturerRepository(seed ...entity.Manufacturer) (*ManufacturerRepo, error) {
	r := &ManufacturerRepo{s: newStore[entity.Manufacturer]()}
	for i := range seed {
		if err := r.Create(&seed[i]); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func cloneManufacturer(m entity.Manufacturer) entity.Manufacturer {
	m.Products = append([]entity.Product(nil), m.Products...)
	return m
}

// Create registra un fabricante.
func (r *ManufacturerRepo) Create(m *entity.Manufacturer) error {
	return r.s.create(m.ID, cloneManufacturer(*m))
}

// GetByID obtiene un fabricante por ID.
func (r *ManufacturerRepo) GetByID(id string) (*entity.Manufacturer, error) {
	m, ok := r.s.get(id)
	if !ok {
		return nil, nil
	}
	c := cloneManufacturer(m)
	return &c, nil
}

// List devuelve los fabricantes en orden de registro.
func (r *ManufacturerRepo) List() ([]*entity.Manufacturer, error) {
	all := r.s.list()
	out := make([]*entity.Manufacturer, 0, len(all))
	for _, m := range all {
		c := cloneManufacturer(m)
		out = append(out, &c)
	}
	return out, nil
}

// AddProduct agrega un producto al fabricante.
func (r *ManufacturerRepo) AddProduct(manufacturerID string, p entity.Product) error {
	var dup bool
	found := r.s.update(manufacturerID, func(m entity.Manufacturer) entity.Manufacturer {
		if _, exists := m.FindProduct(p.ID); exists {
			dup = true
			return m
		}
		m = cloneManufacturer(m)
		m.Products = append(m.Products, p)
		return m
	})
	if !found {
		return fmt.Errorf("fabricante %s: %w", manufacturerID, domain.ErrNotFound)
	}
	if dup {
		return fmt.Errorf("%w: producto %s", domain.ErrDuplicate, p.ID)
	}
	return nil
}

// Delete elimina un fabricante.
func (r *ManufacturerRepo) Delete(id string) error {
	if !r.s.delete(id) {
		return fmt.Errorf("fabricante %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ── Financiadores ────────────────────────────────────────────────────────────

// FunderRepo implementación en memoria de FunderRepository.
type FunderRepo struct {
	s *store[entity.Funder]
}

// NewFunderRepository construye el repositorio con los financiadores iniciales.
func NewFunderRepository(seed ...entity.Funder) (*FunderRepo, error) {
	r := &FunderRepo{s: newStore[entity.Funder]()}
	for i := range seed {
		if err := r.Create(&seed[i]); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Create registra un financiador.
func (r *FunderRepo) Create(f *entity.Funder) error {
	return r.s.create(f.ID, *f)
}

// GetByID obtiene un financiador por ID.
func (r *FunderRepo) GetByID(id string) (*entity.Funder, error) {
	f, ok := r.s.get(id)
	if !ok {
		return nil, nil
	}
	return &f, nil
}

// List devuelve los financiadores en orden de registro.
func (r *FunderRepo) List() ([]*entity.Funder, error) {
	all := r.s.list()
	out := make([]*entity.Funder, 0, len(all))
	for i := range all {
		out = append(out, &all[i])
	}
	return out, nil
}

// Delete elimina un financiador.
func (r *FunderRepo) Delete(id string) error {
	if !r.s.delete(id) {
		return fmt.Errorf("financiador %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ── Minoristas ───────────────────────────────────────────────────────────────

// RetailerRepo implementación en memoria de RetailerRepository.
type RetailerRepo struct {
	s *store[entity.Retailer]
}

// NewRetailerRepository construye el repositorio con los minoristas iniciales.
func NewRetailerRepository(seed ...entity.Retailer) (*RetailerRepo, error) {
	r := &RetailerRepo{s: newStore[entity.Retailer]()}
	for i := range seed {
		if err := r.Create(&seed[i]); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Create registra un minorista.
func (r *RetailerRepo) Create(rt *entity.Retailer) error {
	return r.s.create(rt.ID, *rt)
}

// GetByID obtiene un minorista por ID.
func (r *RetailerRepo) GetByID(id string) (*entity.Retailer, error) {
	rt, ok := r.s.get(id)
	if !ok {
		return nil, nil
	}
	return &rt, nil
}

// List devuelve los minoristas en orden de registro.
func (r *RetailerRepo) List() ([]*entity.Retailer, error) {
	all := r.s.list()
	out := make([]*entity.Retailer, 0, len(all))
	for i := range all {
		out = append(out, &all[i])
	}
	return out, nil
}

// Delete elimina un minorista.
func (r *RetailerRepo) Delete(id string) error {
	if !r.s.delete(id) {
		return fmt.Errorf("minorista %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// ── Políticas por región ─────────────────────────────────────────────────────

// PolicyRepo políticas tributarias de solo lectura.
type PolicyRepo struct {
	policies map[entity.Region]entity.RegionPolicy
}

// NewPolicyRepository copia las políticas recibidas.
func NewPolicyRepository(policies map[entity.Region]entity.RegionPolicy) *PolicyRepo {
	cp := make(map[entity.Region]entity.RegionPolicy, len(policies))
	for k, v := range policies {
		cp[k] = v
	}
	return &PolicyRepo{policies: cp}
}

// Get devuelve la política de la región o nil si no existe.
func (r *PolicyRepo) Get(region entity.Region) (*entity.RegionPolicy, error) {
	p, ok := r.policies[region]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// List devuelve las políticas ordenadas por región.
func (r *PolicyRepo) List() ([]entity.RegionPolicy, error) {
	out := make([]entity.RegionPolicy, 0, len(r.policies))
	for _, p := range r.policies {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Region < out[j].Region })
	return out, nil
}
