package domain

// PooledTotals agrega os totais de todos os produtos ativos de uma análise.
// Todos os campos ficam zerados quando não há produtos ativos.
type PooledTotals struct {
	TotalRevenue            float64 `json:"total_revenue"`
	TotalVariableCost       float64 `json:"total_variable_cost"`
	TotalContributionMargin float64 `json:"total_contribution_margin"`
	TotalQuantity           float64 `json:"total_quantity"`
}

// Add acumula os totais de um produto ativo no pool
func (t *PooledTotals) Add(summary ProductSummary) {
	t.TotalRevenue += summary.TotalRevenue
	t.TotalVariableCost += summary.TotalVariableCost
	t.TotalContributionMargin += summary.ContributionMargin
	t.TotalQuantity += summary.QuantitySold
}

// HasSignal indica se o pool tem dados suficientes para derivar as métricas CVP
func (t PooledTotals) HasSignal() bool {
	return t.TotalQuantity > 0 && t.TotalRevenue > 0
}

// AvgVariableRate retorna o custo variável médio por unidade do mix
func (t PooledTotals) AvgVariableRate() float64 {
	if t.TotalQuantity == 0 {
		return 0
	}
	return t.TotalVariableCost / t.TotalQuantity
}

// AvgRevenueRate retorna a receita média por unidade do mix
func (t PooledTotals) AvgRevenueRate() float64 {
	if t.TotalQuantity == 0 {
		return 0
	}
	return t.TotalRevenue / t.TotalQuantity
}
