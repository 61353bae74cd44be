package domain

import "time"

// AnalysisStatus classifica o desfecho de uma análise CVP
type AnalysisStatus string

const (
	// AnalysisStatusOK indica que todas as métricas e o gráfico foram calculados
	AnalysisStatusOK AnalysisStatus = "ok"
	// AnalysisStatusEmptyProductSet indica que nenhum produto tem quantidade positiva
	AnalysisStatusEmptyProductSet AnalysisStatus = "empty_product_set"
	// AnalysisStatusInsufficientData indica que o pool não tem receita ou quantidade
	// para derivar as razões (ex.: todos os preços de venda zerados)
	AnalysisStatusInsufficientData AnalysisStatus = "insufficient_data"
)

// Mensagens exibidas pelo cliente quando a análise não produz métricas
const (
	MessageEmptyProductSet  = "Todos os produtos possuem quantidade vendida igual a zero. Informe ao menos um produto com quantidade positiva."
	MessageInsufficientData = "Informe valores válidos diferentes de zero para preço de venda e quantidade antes de calcular as métricas."
)

// AnalysisReport é a resposta completa de uma análise CVP: resumo por
// produto, totais agregados, métricas e a série do gráfico. Métricas e
// gráfico só são preenchidos quando Status é "ok".
type AnalysisReport struct {
	ID          string           `json:"id"`
	Status      AnalysisStatus   `json:"status"`
	Message     string           `json:"message,omitempty"`
	FixedCost   float64          `json:"fixed_cost"`
	Products    []ProductSummary `json:"products,omitempty"`
	Totals      *PooledTotals    `json:"totals,omitempty"`
	Metrics     *CVPMetricsView  `json:"metrics,omitempty"`
	Chart       *ChartSeries     `json:"chart,omitempty"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// AnalysisTemplate são os valores sugeridos para uma nova sessão de análise
type AnalysisTemplate struct {
	FixedCost   float64         `json:"fixed_cost"`
	MaxProducts int             `json:"max_products"`
	Products    []ProductRecord `json:"products"`
}
