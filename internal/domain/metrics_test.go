package domain

import (
	"math"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCVPMetrics_View(t *testing.T) {
	metrics := &CVPMetrics{
		ContributionMarginPerUnit: 5.0,
		ContributionMarginRatio:   0.5,
		VariableCostRatio:         0.5,
		BreakEvenUnits:            1000.333,
		BreakEvenDollars:          10000.005,
		MarginOfSafetyUnits:       -500.0,
		MarginOfSafetyDollars:     -5000.0,
		NetOperatingIncome:        -2500.0,
		DegreeOfOperatingLeverage: -1.0,
	}

	view := metrics.View()

	assert.Equal(t, 5.0, view.ContributionMarginPerUnit.Value)
	assert.Equal(t, "5.00", view.ContributionMarginPerUnit.Display)

	// Razões exibidas como percentual com duas casas
	assert.Equal(t, 0.5, view.ContributionMarginRatio.Value)
	assert.Equal(t, "50.00%", view.ContributionMarginRatio.Display)
	assert.Equal(t, "50.00%", view.VariableCostRatio.Display)

	// Valores arredondados para duas casas
	assert.Equal(t, 1000.33, view.BreakEvenUnits.Value)
	assert.Equal(t, "1000.33 un", view.BreakEvenUnits.Display)

	assert.Equal(t, "R$ -2500.00", view.NetOperatingIncome.Display)
	assert.Equal(t, "-1.0x", view.DegreeOfOperatingLeverage.Display)

	assert.False(t, view.BreakEvenUnits.Unbounded)
}

func TestCVPMetrics_View_UnboundedSentinels(t *testing.T) {
	metrics := &CVPMetrics{
		ContributionMarginPerUnit: 0,
		ContributionMarginRatio:   0,
		VariableCostRatio:         1,
		BreakEvenUnits:            math.Inf(1),
		BreakEvenDollars:          math.Inf(1),
		MarginOfSafetyUnits:       math.Inf(-1),
		MarginOfSafetyDollars:     math.Inf(-1),
		NetOperatingIncome:        -5000,
		DegreeOfOperatingLeverage: 0,
	}

	view := metrics.View()

	assert.True(t, view.BreakEvenUnits.Unbounded)
	assert.Equal(t, "∞", view.BreakEvenUnits.Display)
	assert.Equal(t, 0.0, view.BreakEvenUnits.Value)

	assert.True(t, view.MarginOfSafetyUnits.Unbounded)
	assert.Equal(t, "-∞", view.MarginOfSafetyUnits.Display)

	// A view nunca carrega ±Inf: precisa ser serializável em JSON
	data, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(view)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}

func TestNewProductSummary(t *testing.T) {
	summary := NewProductSummary(ProductRecord{
		Name:         "Produto A",
		SellingPrice: 10,
		VariableCost: 5,
		QuantitySold: 500,
	})

	assert.Equal(t, 5000.0, summary.TotalRevenue)
	assert.Equal(t, 2500.0, summary.TotalVariableCost)
	assert.Equal(t, 2500.0, summary.ContributionMargin)
}
