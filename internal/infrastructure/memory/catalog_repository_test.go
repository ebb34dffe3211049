package memory

import (
	"errors"
	"sync"
	"testing"
	"unsafe"

	"github.com/jhoicas/tradechain-api/internal/domain"
	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededManufacturers(t *testing.T) *ManufacturerRepo {
	t.Helper()
	r, err := NewManufacturerRepository(SeedCatalog().Manufacturers...)
	require.NoError(t, err)
	return r
}

func TestManufacturerRepo_SeedYOrden(t *testing.T) {
	r := seededManufacturers(t)

	list, err := r.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "m1", list[0].ID)
	assert.Equal(t, "m2", list[1].ID)
	assert.Len(t, list[0].Products, 2)
}

func TestManufacturerRepo_GetByID_NoExiste(t *testing.T) {
	r := seededManufacturers(t)
	m, err := r.GetByID("nope")
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestManufacturerRepo_DevuelveCopias(t *testing.T) {
	r := seededManufacturers(t)

	m, err := r.GetByID("m1")
	require.NoError(t, err)
	m.Name = "cambiado"
	m.Products[0].BasePrice = decimal.NewFromInt(1)

	again, err := r.GetByID("m1")
	require.NoError(t, err)
	assert.NotEqual(t, "cambiado", again.Name)
	assert.True(t, again.Products[0].BasePrice.Equal(decimal.NewFromInt(800)))
}

func TestManufacturerRepo_CreateDuplicado(t *testing.T) {
	r := seededManufacturers(t)
	err := r.Create(&entity.Manufacturer{ID: "m1", Name: "otro"})
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestManufacturerRepo_AddProduct(t *testing.T) {
	r := seededManufacturers(t)

	p := entity.Product{ID: "p1-3", Name: "Nuevo", BasePrice: decimal.NewFromInt(50), MSRP: decimal.NewFromInt(99)}
	require.NoError(t, r.AddProduct("m1", p))

	m, _ := r.GetByID("m1")
	got, ok := m.FindProduct("p1-3")
	require.True(t, ok)
	assert.Equal(t, "Nuevo", got.Name)

	assert.True(t, errors.Is(r.AddProduct("m1", p), domain.ErrDuplicate))
	assert.True(t, errors.Is(r.AddProduct("zz", p), domain.ErrNotFound))
}

func TestManufacturerRepo_AddProduct_ConservaLaClave(t *testing.T) {
	r := seededManufacturers(t)

	// ID que comparte memoria con un buffer reutilizable, como los
	// parámetros de ruta de fiber.
	buf := []byte("m1")
	id := unsafe.String(&buf[0], len(buf))
	require.NoError(t, r.AddProduct(id, entity.Product{ID: "p1-9", Name: "Miel", BasePrice: decimal.NewFromInt(60)}))

	copy(buf, "zz")

	m, err := r.GetByID("m1")
	require.NoError(t, err)
	require.NotNil(t, m)
	_, ok := m.FindProduct("p1-9")
	assert.True(t, ok)
}

func TestManufacturerRepo_Delete(t *testing.T) {
	r := seededManufacturers(t)
	require.NoError(t, r.Delete("m1"))

	list, _ := r.List()
	require.Len(t, list, 1)
	assert.Equal(t, "m2", list[0].ID)
	assert.True(t, errors.Is(r.Delete("m1"), domain.ErrNotFound))
}

func TestFunderAndRetailerRepos(t *testing.T) {
	seed := SeedCatalog()
	funders, err := NewFunderRepository(seed.Funders...)
	require.NoError(t, err)
	retailers, err := NewRetailerRepository(seed.Retailers...)
	require.NoError(t, err)

	f, err := funders.GetByID("f2")
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, 3, f.DefaultPaymentTermMonths)

	rt, err := retailers.GetByID("r2")
	require.NoError(t, err)
	require.NotNil(t, rt)
	assert.Equal(t, entity.TaxpayerSmall, rt.DefaultTaxpayer)

	require.NoError(t, funders.Delete("f1"))
	fl, _ := funders.List()
	assert.Len(t, fl, 1)
	assert.True(t, errors.Is(retailers.Delete("nope"), domain.ErrNotFound))
}

func TestSeed_Duplicado(t *testing.T) {
	f := entity.Funder{ID: "f1"}
	_, err := NewFunderRepository(f, f)
	assert.True(t, errors.Is(err, domain.ErrDuplicate))
}

func TestPolicyRepo(t *testing.T) {
	r := NewPolicyRepository(entity.DefaultRegionPolicies())

	list, err := r.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, entity.RegionMainland, list[0].Region)
	assert.Equal(t, entity.RegionTibet, list[1].Region)

	p, err := r.Get(entity.RegionTibet)
	require.NoError(t, err)
	assert.True(t, p.IncomeTaxPercent.Equal(decimal.NewFromInt(15)))

	missing, err := r.Get("mars")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestManufacturerRepo_Concurrente(t *testing.T) {
	r := seededManufacturers(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = r.AddProduct("m2", entity.Product{ID: string(rune('a' + i))})
			_, _ = r.List()
		}(i)
	}
	wg.Wait()

	m, _ := r.GetByID("m2")
	assert.Len(t, m.Products, 22)
}
