package analyzing

import (
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cvp-analyzer-api/internal/config"
	"github.com/vfg2006/cvp-analyzer-api/internal/domain"
	"github.com/vfg2006/cvp-analyzer-api/internal/usecases/aggregating"
	"github.com/vfg2006/cvp-analyzer-api/pkg/utils"
)

// Headroom do domínio do gráfico acima da quantidade vendida, para manter o
// ponto de equilíbrio e o ponto de demanda visíveis
const chartHeadroom = 1.2

// Analyzer expõe o motor de análise CVP
type Analyzer interface {
	// Analyze executa o pipeline completo: agregação, métricas e gráfico.
	// Conjuntos degenerados de entrada não são erros: produzem um relatório
	// com status e mensagem apropriados.
	Analyze(fixedCost float64, products []domain.ProductRecord) *domain.AnalysisReport

	// ComputeMetrics deriva as métricas CVP do pool agregado. Retorna
	// ErrInsufficientData quando o pool não tem quantidade ou receita positiva.
	ComputeMetrics(totals domain.PooledTotals, fixedCost float64) (*domain.CVPMetrics, error)

	// ChartSeries amostra as retas de custo total e receita total sobre o
	// domínio de unidades, com o marcador do ponto de equilíbrio
	ChartSeries(totals domain.PooledTotals, fixedCost float64, metrics *domain.CVPMetrics) *domain.ChartSeries

	// Template retorna os valores sugeridos para uma nova sessão de análise
	Template() *domain.AnalysisTemplate
}

type Service struct {
	cfg        *config.Config
	aggregator aggregating.Aggregator
}

// NewService cria uma nova instância do serviço de análise CVP
func NewService(cfg *config.Config, aggregator aggregating.Aggregator) Analyzer {
	return &Service{
		cfg:        cfg,
		aggregator: aggregator,
	}
}

// Analyze executa uma análise CVP completa para um lote de entradas
func (s *Service) Analyze(fixedCost float64, products []domain.ProductRecord) *domain.AnalysisReport {
	report := &domain.AnalysisReport{
		FixedCost:   fixedCost,
		GeneratedAt: time.Now(),
	}

	if id, err := utils.GenerateID(); err == nil {
		report.ID = id
	} else {
		logrus.WithError(err).Warn("análise: falha ao gerar o ID do relatório")
	}

	summaries, totals := s.aggregator.Aggregate(products)
	if len(summaries) == 0 {
		report.Status = domain.AnalysisStatusEmptyProductSet
		report.Message = domain.MessageEmptyProductSet
		return report
	}

	report.Products = summaries
	report.Totals = &totals

	metrics, err := s.ComputeMetrics(totals, fixedCost)
	if err != nil {
		report.Status = domain.AnalysisStatusInsufficientData
		report.Message = domain.MessageInsufficientData

		logrus.WithFields(logrus.Fields{
			"total_quantity": totals.TotalQuantity,
			"total_revenue":  totals.TotalRevenue,
		}).Info("análise: pool agregado sem sinal para derivar métricas")

		return report
	}

	report.Status = domain.AnalysisStatusOK
	report.Metrics = metrics.View()
	report.Chart = s.ChartSeries(totals, fixedCost, metrics)

	return report
}

// ComputeMetrics deriva as nove métricas CVP do pool agregado.
// Denominador zero em uma métrica específica não é falha: o resultado é +Inf,
// a codificação natural de "ponto de equilíbrio inatingível".
func (s *Service) ComputeMetrics(totals domain.PooledTotals, fixedCost float64) (*domain.CVPMetrics, error) {
	if !totals.HasSignal() {
		return nil, ErrInsufficientData
	}

	metrics := &domain.CVPMetrics{
		ContributionMarginPerUnit: totals.TotalContributionMargin / totals.TotalQuantity,
		ContributionMarginRatio:   totals.TotalContributionMargin / totals.TotalRevenue,
		VariableCostRatio:         totals.TotalVariableCost / totals.TotalRevenue,
		NetOperatingIncome:        totals.TotalContributionMargin - fixedCost,
	}

	metrics.BreakEvenUnits = math.Inf(1)
	if metrics.ContributionMarginPerUnit != 0 {
		metrics.BreakEvenUnits = fixedCost / metrics.ContributionMarginPerUnit
	}

	metrics.BreakEvenDollars = math.Inf(1)
	if metrics.ContributionMarginRatio != 0 {
		metrics.BreakEvenDollars = fixedCost / metrics.ContributionMarginRatio
	}

	metrics.MarginOfSafetyUnits = totals.TotalQuantity - metrics.BreakEvenUnits
	metrics.MarginOfSafetyDollars = totals.TotalRevenue - metrics.BreakEvenDollars

	metrics.DegreeOfOperatingLeverage = math.Inf(1)
	if metrics.NetOperatingIncome != 0 {
		metrics.DegreeOfOperatingLeverage = totals.TotalContributionMargin / metrics.NetOperatingIncome
	}

	return metrics, nil
}

// ChartSeries amostra as duas retas do gráfico sobre o domínio
// [0, ceil(quantidade total * headroom)]. O mix multiproduto é colapsado nas
// duas taxas médias por unidade do pool. Retas por produto não são modeladas.
func (s *Service) ChartSeries(totals domain.PooledTotals, fixedCost float64, metrics *domain.CVPMetrics) *domain.ChartSeries {
	// Domínio degenerado: sem quantidade não há reta, apenas o ponto em zero
	if totals.TotalQuantity <= 0 {
		return &domain.ChartSeries{
			Points:    []domain.ChartPoint{{Units: 0, TotalCost: fixedCost, TotalRevenue: 0}},
			FixedCost: fixedCost,
			MaxUnits:  0,
			Step:      1,
		}
	}

	maxUnits := math.Ceil(totals.TotalQuantity * chartHeadroom)
	step := math.Max(1, math.Floor(maxUnits/float64(s.sampleCount())))

	avgVariableRate := totals.AvgVariableRate()
	avgRevenueRate := totals.AvgRevenueRate()

	points := make([]domain.ChartPoint, 0, int(maxUnits/step)+1)
	for units := 0.0; units <= maxUnits; units += step {
		points = append(points, domain.ChartPoint{
			Units:        units,
			TotalCost:    fixedCost + avgVariableRate*units,
			TotalRevenue: avgRevenueRate * units,
		})
	}

	series := &domain.ChartSeries{
		Points:    points,
		FixedCost: fixedCost,
		MaxUnits:  maxUnits,
		Step:      step,
	}

	if metrics != nil && !math.IsInf(metrics.BreakEvenUnits, 0) {
		series.BreakEven = &domain.BreakEvenPoint{
			Units: metrics.BreakEvenUnits,
			Value: fixedCost + avgVariableRate*metrics.BreakEvenUnits,
		}
	}

	return series
}

// Template retorna os valores iniciais recomendados para uma nova sessão
func (s *Service) Template() *domain.AnalysisTemplate {
	defaults := s.cfg.Analysis

	products := make([]domain.ProductRecord, 0, defaults.DefaultProductCount)
	for i := 0; i < defaults.DefaultProductCount; i++ {
		products = append(products, domain.ProductRecord{
			Name:         fmt.Sprintf("Produto %d", i+1),
			SellingPrice: defaults.DefaultSellingPrice,
			VariableCost: defaults.DefaultVariableCost,
			QuantitySold: defaults.DefaultQuantitySold,
		})
	}

	return &domain.AnalysisTemplate{
		FixedCost:   defaults.DefaultFixedCost,
		MaxProducts: defaults.MaxProducts,
		Products:    products,
	}
}

func (s *Service) sampleCount() int {
	if s.cfg == nil || s.cfg.Analysis.SampleCount <= 0 {
		return config.DefaultSampleCount
	}
	return s.cfg.Analysis.SampleCount
}
