package aggregating

import (
	"github.com/vfg2006/cvp-analyzer-api/internal/domain"
)

// Aggregator reduz a lista de produtos de uma análise em totais agregados
type Aggregator interface {
	// Aggregate deriva o resumo de cada produto ativo e o pool de totais.
	// Produtos com quantidade vendida menor ou igual a zero são descartados
	// antes de qualquer cálculo.
	Aggregate(products []domain.ProductRecord) ([]domain.ProductSummary, domain.PooledTotals)
}

type Service struct{}

// NewService cria uma nova instância do agregador de produtos
func NewService() Aggregator {
	return &Service{}
}

// Aggregate é uma função pura: não valida entradas (responsabilidade da
// camada de entrada) e não tem efeitos colaterais. Um conjunto filtrado vazio
// não é erro: retorna resumos vazios e totais zerados.
func (s *Service) Aggregate(products []domain.ProductRecord) ([]domain.ProductSummary, domain.PooledTotals) {
	summaries := make([]domain.ProductSummary, 0, len(products))
	totals := domain.PooledTotals{}

	for _, product := range products {
		if !product.Active() {
			continue
		}

		summary := domain.NewProductSummary(product)
		summaries = append(summaries, summary)
		totals.Add(summary)
	}

	return summaries, totals
}
