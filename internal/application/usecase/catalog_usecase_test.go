package usecase_test

import (
	"errors"
	"testing"

	"github.com/jhoicas/tradechain-api/internal/application/dto"
	"github.com/jhoicas/tradechain-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_ListManufacturers(t *testing.T) {
	f := newFixture(t)

	out, err := f.catalog.ListManufacturers()
	require.NoError(t, err)

	require.Equal(t, 2, out.Total)
	assert.Equal(t, "m1", out.Items[0].ID)
	assert.Equal(t, "Contribuyente general (13%)", out.Items[0].TaxpayerLabel)
	assert.Equal(t, "Pequeño contribuyente (1%)", out.Items[1].TaxpayerLabel)
	assert.Len(t, out.Items[1].Products, 2)
}

func TestCatalog_CreateManufacturer(t *testing.T) {
	f := newFixture(t)

	out, err := f.catalog.CreateManufacturer(dto.CreateManufacturerRequest{
		Name:           "  Cooperativa Nyingchi ",
		Taxpayer:       "small",
		WithoutInvoice: true,
		Products:       []dto.ProductRequest{{Name: "Té", BasePrice: d("50"), MSRP: d("98")}},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Cooperativa Nyingchi", out.Name)
	require.Len(t, out.Products, 1)
	assert.NotEmpty(t, out.Products[0].ID)

	// El nuevo fabricante se puede simular.
	req := baseRequest()
	req.Package = []dto.PackageItemRequest{{ManufacturerID: out.ID, ProductID: out.Products[0].ID, Quantity: 3}}
	sim, err := f.sim.Run(req)
	require.NoError(t, err)
	assert.True(t, sim.Summary.PackageMSRP.Equal(d("294")))
}

func TestCatalog_CreateManufacturer_Invalido(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		name string
		in   dto.CreateManufacturerRequest
	}{
		{"sin nombre", dto.CreateManufacturerRequest{Name: " ", Taxpayer: "general"}},
		{"clasificación", dto.CreateManufacturerRequest{Name: "X", Taxpayer: "medium"}},
		{"producto sin nombre", dto.CreateManufacturerRequest{Name: "X", Taxpayer: "general", Products: []dto.ProductRequest{{BasePrice: d("1")}}}},
		{"precio negativo", dto.CreateManufacturerRequest{Name: "X", Taxpayer: "general", Products: []dto.ProductRequest{{Name: "P", BasePrice: d("-1")}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.catalog.CreateManufacturer(tt.in)
			assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		})
	}

	list, err := f.catalog.ListManufacturers()
	require.NoError(t, err)
	assert.Equal(t, 2, list.Total)
}

func TestCatalog_AddProduct(t *testing.T) {
	f := newFixture(t)

	p, err := f.catalog.AddProduct("m1", dto.ProductRequest{Name: "Miel", BasePrice: d("60"), MSRP: d("120")})
	require.NoError(t, err)

	m, err := f.manufacturers.GetByID("m1")
	require.NoError(t, err)
	found, ok := m.FindProduct(p.ID)
	require.True(t, ok)
	assert.Equal(t, "Miel", found.Name)

	_, err = f.catalog.AddProduct("mx", dto.ProductRequest{Name: "Miel"})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestCatalog_Delete(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.catalog.DeleteManufacturer("m2"))
	assert.True(t, errors.Is(f.catalog.DeleteManufacturer("m2"), domain.ErrNotFound))

	require.NoError(t, f.catalog.DeleteFunder("f2"))
	assert.True(t, errors.Is(f.catalog.DeleteFunder("f2"), domain.ErrNotFound))

	require.NoError(t, f.catalog.DeleteRetailer("r2"))
	assert.True(t, errors.Is(f.catalog.DeleteRetailer("r2"), domain.ErrNotFound))

	funders, err := f.catalog.ListFunders()
	require.NoError(t, err)
	assert.Equal(t, 1, funders.Total)
}

func TestCatalog_FundersYRetailers(t *testing.T) {
	f := newFixture(t)

	fu, err := f.catalog.CreateFunder(dto.CreateFunderRequest{Name: "Banco", DefaultMarkupPercent: d("1.5"), DefaultPaymentTermMonths: 12})
	require.NoError(t, err)
	assert.Equal(t, 12, fu.DefaultPaymentTermMonths)

	_, err = f.catalog.CreateFunder(dto.CreateFunderRequest{Name: "Banco", DefaultPaymentTermMonths: -1})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	rt, err := f.catalog.CreateRetailer(dto.CreateRetailerRequest{Name: "Tienda", DefaultMarkupPercent: d("25"), DefaultPaymentTermDays: 7, DefaultTaxpayer: "small"})
	require.NoError(t, err)
	assert.Equal(t, "small", rt.DefaultTaxpayer)

	_, err = f.catalog.CreateRetailer(dto.CreateRetailerRequest{Name: "Tienda", DefaultTaxpayer: "x"})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	retailers, err := f.catalog.ListRetailers()
	require.NoError(t, err)
	assert.Equal(t, 3, retailers.Total)
	assert.Equal(t, rt.ID, retailers.Items[2].ID)
}

func TestCatalog_ListPolicies(t *testing.T) {
	f := newFixture(t)

	out, err := f.catalog.ListPolicies()
	require.NoError(t, err)

	require.Equal(t, 2, out.Total)
	assert.Equal(t, "mainland", out.Items[0].Region)
	assert.False(t, out.Items[0].Preferential)
	assert.Equal(t, "tibet", out.Items[1].Region)
	assert.True(t, out.Items[1].Preferential)
	assert.True(t, out.Items[1].VATRefundPercent.Equal(d("30")))
}
