package memory

import (
	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Catalog datos iniciales del catálogo.
type Catalog struct {
	Manufacturers []entity.Manufacturer
	Funders       []entity.Funder
	Retailers     []entity.Retailer
}

// SeedCatalog catálogo de arranque: dos fabricantes con dos productos, dos
// financiadores y dos minoristas.
func SeedCatalog() Catalog {
	p := decimal.RequireFromString
	return Catalog{
		Manufacturers: []entity.Manufacturer{
			{
				ID:       "m1",
				Name:     "拉萨特产总厂",
				Taxpayer: entity.TaxpayerGeneral,
				Products: []entity.Product{
					{ID: "p1-1", Name: "极品虫草 (5g)", BasePrice: p("800"), MSRP: p("1388")},
					{ID: "p1-2", Name: "藏红花礼盒", BasePrice: p("200"), MSRP: p("398")},
				},
			},
			{
				ID:       "m2",
				Name:     "林芝松茸合作社",
				Taxpayer: entity.TaxpayerSmall,
				Products: []entity.Product{
					{ID: "p2-1", Name: "干松茸 (250g)", BasePrice: p("150"), MSRP: p("298")},
					{ID: "p2-2", Name: "野生灵芝", BasePrice: p("300"), MSRP: p("588")},
				},
			},
		},
		Funders: []entity.Funder{
			{ID: "f1", Name: "宸铭供应链", DefaultMarkupPercent: p("3"), DefaultPaymentTermMonths: 6},
			{ID: "f2", Name: "其它资方 (短期)", DefaultMarkupPercent: p("2"), DefaultPaymentTermMonths: 3},
		},
		Retailers: []entity.Retailer{
			{ID: "r1", Name: "德商渠道 (商超)", DefaultMarkupPercent: p("20"), DefaultPaymentTermDays: 45, DefaultTaxpayer: entity.TaxpayerGeneral},
			{ID: "r2", Name: "电商直播渠道", DefaultMarkupPercent: p("35"), DefaultPaymentTermDays: 15, DefaultTaxpayer: entity.TaxpayerSmall},
		},
	}
}
