package domain

import (
	"fmt"
	"math"

	"github.com/vfg2006/cvp-analyzer-api/pkg/utils"
)

// CVPMetrics contém as métricas CVP derivadas dos totais agregados.
// Os campos são valores puros de cálculo e podem carregar +Inf quando o
// denominador da métrica é zero (ponto de equilíbrio inatingível).
type CVPMetrics struct {
	ContributionMarginPerUnit float64
	ContributionMarginRatio   float64
	VariableCostRatio         float64
	BreakEvenUnits            float64
	BreakEvenDollars          float64
	MarginOfSafetyUnits       float64
	MarginOfSafetyDollars     float64
	NetOperatingIncome        float64
	DegreeOfOperatingLeverage float64
}

// MetricValue é a representação exibível de uma métrica. JSON não transporta
// ±Inf, então métricas ilimitadas são sinalizadas pelo campo Unbounded e o
// valor numérico é omitido.
type MetricValue struct {
	Value     float64 `json:"value"`
	Unbounded bool    `json:"unbounded,omitempty"`
	Display   string  `json:"display"`
}

// CVPMetricsView é a versão serializável das métricas, com valores
// arredondados e strings de exibição prontas para os widgets
type CVPMetricsView struct {
	ContributionMarginPerUnit MetricValue `json:"contribution_margin_per_unit"`
	ContributionMarginRatio   MetricValue `json:"contribution_margin_ratio"`
	VariableCostRatio         MetricValue `json:"variable_cost_ratio"`
	BreakEvenUnits            MetricValue `json:"break_even_units"`
	BreakEvenDollars          MetricValue `json:"break_even_dollars"`
	MarginOfSafetyUnits       MetricValue `json:"margin_of_safety_units"`
	MarginOfSafetyDollars     MetricValue `json:"margin_of_safety_dollars"`
	NetOperatingIncome        MetricValue `json:"net_operating_income"`
	DegreeOfOperatingLeverage MetricValue `json:"degree_of_operating_leverage"`
}

// View monta a representação exibível das métricas
func (m *CVPMetrics) View() *CVPMetricsView {
	return &CVPMetricsView{
		ContributionMarginPerUnit: newMetricValue(m.ContributionMarginPerUnit, "%.2f"),
		ContributionMarginRatio:   newRatioValue(m.ContributionMarginRatio),
		VariableCostRatio:         newRatioValue(m.VariableCostRatio),
		BreakEvenUnits:            newMetricValue(m.BreakEvenUnits, "%.2f un"),
		BreakEvenDollars:          newMetricValue(m.BreakEvenDollars, "R$ %.2f"),
		MarginOfSafetyUnits:       newMetricValue(m.MarginOfSafetyUnits, "%.2f un"),
		MarginOfSafetyDollars:     newMetricValue(m.MarginOfSafetyDollars, "R$ %.2f"),
		NetOperatingIncome:        newMetricValue(m.NetOperatingIncome, "R$ %.2f"),
		DegreeOfOperatingLeverage: newMetricValue(m.DegreeOfOperatingLeverage, "%.1fx"),
	}
}

func newMetricValue(value float64, format string) MetricValue {
	if math.IsInf(value, 0) || math.IsNaN(value) {
		return unboundedValue(value)
	}

	rounded := utils.RoundWithTwoDecimalPlace(value)
	return MetricValue{
		Value:   rounded,
		Display: fmt.Sprintf(format, rounded),
	}
}

func newRatioValue(ratio float64) MetricValue {
	if math.IsInf(ratio, 0) || math.IsNaN(ratio) {
		return unboundedValue(ratio)
	}

	return MetricValue{
		Value:   utils.RoundWithTwoDecimalPlace(ratio),
		Display: fmt.Sprintf("%.2f%%", ratio*100),
	}
}

func unboundedValue(value float64) MetricValue {
	display := "∞"
	if math.IsInf(value, -1) {
		display = "-∞"
	}

	return MetricValue{
		Unbounded: true,
		Display:   display,
	}
}
