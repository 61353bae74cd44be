package domain

// ChartPoint é uma amostra das retas de custo total e receita total em um
// volume de unidades
type ChartPoint struct {
	Units        float64 `json:"units"`
	TotalCost    float64 `json:"total_cost"`
	TotalRevenue float64 `json:"total_revenue"`
}

// BreakEvenPoint é a coordenada do ponto de equilíbrio sobre a reta de custo,
// usada pelo cliente para anotar o gráfico
type BreakEvenPoint struct {
	Units float64 `json:"units"`
	Value float64 `json:"value"`
}

// ChartSeries é a geometria derivada do gráfico custo/receita por volume.
// BreakEven fica nulo quando o ponto de equilíbrio é inatingível e não há o
// que anotar na reta.
type ChartSeries struct {
	Points    []ChartPoint    `json:"points"`
	BreakEven *BreakEvenPoint `json:"break_even,omitempty"`
	FixedCost float64         `json:"fixed_cost"`
	MaxUnits  float64         `json:"max_units"`
	Step      float64         `json:"step"`
}
