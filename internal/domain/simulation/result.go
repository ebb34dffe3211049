package simulation

import (
	"github.com/jhoicas/tradechain-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Roles de los participantes.
const (
	RoleSource   = "source"
	RoleFunder   = "funder"
	RolePlatform = "platform"
	RoleTrader   = "trader"
	RoleRetailer = "retailer"
)

// SourceID identificador fijo del origen agregado.
const SourceID = "source-aggregate"

// PriceDetail precio de una línea del paquete en una etapa de la cadena.
type PriceDetail struct {
	ProductID      string
	ProductName    string
	Quantity       int
	UnitPriceExcl  decimal.Decimal
	UnitPriceIncl  decimal.Decimal
	TotalPriceIncl decimal.Decimal
}

// CostDetails desglose del paquete de gastos operativos.
type CostDetails struct {
	Warehousing decimal.Decimal
	Logistics   decimal.Decimal
	Management  decimal.Decimal
	Other       decimal.Decimal
}

// Total suma de las cuatro líneas.
func (d CostDetails) Total() decimal.Decimal {
	return d.Warehousing.Add(d.Logistics).Add(d.Management).Add(d.Other)
}

// EntityResult posición fiscal y financiera de un participante.
//
// InPrice* es siempre el OutPrice* del participante anterior; CostBasis es la
// parte de ese precio que el participante reconoce como costo (sin IVA si puede
// descontarlo, con IVA si no). Revenue* coincide con OutPrice* salvo en la
// plataforma cuando absorbe una consignación: ahí es el precio al consumidor.
type EntityResult struct {
	ID          string
	Name        string
	Role        string
	Region      entity.Region
	Taxpayer    entity.TaxpayerType
	TradeMode   entity.TradeMode // solo minorista
	CentralNode bool

	InPriceExcl  decimal.Decimal
	InPriceIncl  decimal.Decimal
	CostBasis    decimal.Decimal
	OutPriceExcl decimal.Decimal
	OutPriceIncl decimal.Decimal
	RevenueExcl  decimal.Decimal
	RevenueIncl  decimal.Decimal

	VATInput   decimal.Decimal
	VATOutput  decimal.Decimal
	VATPayable decimal.Decimal
	Surcharges decimal.Decimal
	IncomeTax  decimal.Decimal
	TaxRefunds decimal.Decimal

	FinanceCost     decimal.Decimal
	OperationalCost decimal.Decimal
	CommissionCost  decimal.Decimal
	GrossProfit     decimal.Decimal
	NetProfit       decimal.Decimal
	CashOutflow     decimal.Decimal
	TaxBurdenRate   decimal.Decimal

	Notes          []string
	Warnings       []string
	ComplianceTips []string
	Breakdown      []PriceDetail
	CostDetails    *CostDetails
}

// TotalTax IVA a pagar + recargos + impuesto de renta (sin restar devoluciones).
func (r EntityResult) TotalTax() decimal.Decimal {
	return r.VATPayable.Add(r.Surcharges).Add(r.IncomeTax)
}

// NetTax carga tributaria neta de devoluciones.
func (r EntityResult) NetTax() decimal.Decimal {
	return r.TotalTax().Sub(r.TaxRefunds)
}

// Result resultado de una simulación. Trader es nil si no hay comercializador.
type Result struct {
	Source   EntityResult
	Funder   EntityResult
	Platform EntityResult
	Trader   *EntityResult
	Retailer EntityResult
}

// Chain participantes en orden de la cadena.
func (r Result) Chain() []EntityResult {
	chain := []EntityResult{r.Source, r.Funder, r.Platform}
	if r.Trader != nil {
		chain = append(chain, *r.Trader)
	}
	return append(chain, r.Retailer)
}

// Warnings todas las alertas de la cadena, en orden.
func (r Result) Warnings() []string {
	var out []string
	for _, e := range r.Chain() {
		out = append(out, e.Warnings...)
	}
	return out
}
