package domain

// ProductRecord representa os dados de entrada de um produto (SKU) para a análise.
// Os valores numéricos já chegam validados como não-negativos pela camada de entrada.
type ProductRecord struct {
	Name         string  `json:"name"`
	SellingPrice float64 `json:"selling_price"`
	VariableCost float64 `json:"variable_cost"`
	QuantitySold float64 `json:"quantity_sold"`
}

// ProductSummary estende o ProductRecord com os totais derivados por produto
type ProductSummary struct {
	ProductRecord
	TotalRevenue       float64 `json:"total_revenue"`
	TotalVariableCost  float64 `json:"total_variable_cost"`
	ContributionMargin float64 `json:"contribution_margin"`
}

// NewProductSummary calcula os totais derivados de um produto ativo
func NewProductSummary(record ProductRecord) ProductSummary {
	totalRevenue := record.SellingPrice * record.QuantitySold
	totalVariableCost := record.VariableCost * record.QuantitySold

	return ProductSummary{
		ProductRecord:      record,
		TotalRevenue:       totalRevenue,
		TotalVariableCost:  totalVariableCost,
		ContributionMargin: totalRevenue - totalVariableCost,
	}
}

// Active indica se o produto participa da análise (quantidade vendida positiva)
func (r ProductRecord) Active() bool {
	return r.QuantitySold > 0
}
