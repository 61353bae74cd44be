package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cvp-analyzer-api/internal/config"
	"github.com/vfg2006/cvp-analyzer-api/internal/domain"
	"github.com/vfg2006/cvp-analyzer-api/internal/usecases/analyzing/mocks"
	"github.com/vfg2006/cvp-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/cvp-analyzer-api/pkg/log"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	log.SetupTestLogger()
	os.Exit(m.Run())
}

func testHandlerConfig() *config.Config {
	return &config.Config{
		Analysis: config.Analysis{
			SampleCount: 100,
			MaxProducts: 2,
		},
	}
}

func TestRunAnalysis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	handler := RunAnalysis(mockAnalyzer, testHandlerConfig())

	t.Run("Requisição válida - retorna o relatório do serviço", func(t *testing.T) {
		report := &domain.AnalysisReport{
			ID:     "abc123",
			Status: domain.AnalysisStatusOK,
		}

		mockAnalyzer.EXPECT().
			Analyze(5000.0, gomock.Len(1)).
			Return(report)

		body := bytes.NewBufferString(`{"fixed_cost": 5000, "products": [{"name": "Produto A", "selling_price": 10, "variable_cost": 5, "quantity_sold": 500}]}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/analysis", body)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var got domain.AnalysisReport
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, "abc123", got.ID)
		assert.Equal(t, domain.AnalysisStatusOK, got.Status)
	})

	t.Run("Corpo inválido - retorna VAL_001 sem invocar o serviço", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/v1/analysis", bytes.NewBufferString("{invalid"))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
		assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
	})

	t.Run("Custo fixo negativo - violação do contrato de não-negatividade", func(t *testing.T) {
		body := bytes.NewBufferString(`{"fixed_cost": -1, "products": []}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/analysis", body)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
		assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)
	})

	t.Run("Campos de produto negativos - todas as violações detalhadas", func(t *testing.T) {
		body := bytes.NewBufferString(`{"fixed_cost": 5000, "products": [{"name": "Produto A", "selling_price": -10, "variable_cost": -5, "quantity_sold": -1}]}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/analysis", body)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
		assert.Equal(t, apiErrors.ErrInvalidFormat, apiErr.Code)

		details, ok := apiErr.Details.([]interface{})
		require.True(t, ok)
		assert.Len(t, details, 3)
	})

	t.Run("Produtos acima do limite - requisição rejeitada", func(t *testing.T) {
		body := bytes.NewBufferString(`{"fixed_cost": 0, "products": [
			{"name": "A", "selling_price": 1, "variable_cost": 1, "quantity_sold": 1},
			{"name": "B", "selling_price": 1, "variable_cost": 1, "quantity_sold": 1},
			{"name": "C", "selling_price": 1, "variable_cost": 1, "quantity_sold": 1}
		]}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/analysis", body)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Entradas degeneradas válidas - repassadas ao serviço", func(t *testing.T) {
		report := &domain.AnalysisReport{
			ID:      "def456",
			Status:  domain.AnalysisStatusEmptyProductSet,
			Message: domain.MessageEmptyProductSet,
		}

		mockAnalyzer.EXPECT().
			Analyze(0.0, gomock.Any()).
			Return(report)

		body := bytes.NewBufferString(`{"fixed_cost": 0, "products": [{"name": "Produto A", "selling_price": 10, "variable_cost": 5, "quantity_sold": 0}]}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/analysis", body)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		// Conjunto vazio é um desfecho esperado, não um erro de transporte
		assert.Equal(t, http.StatusOK, rec.Code)

		var got domain.AnalysisReport
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, domain.AnalysisStatusEmptyProductSet, got.Status)
		assert.NotEmpty(t, got.Message)
	})
}

func TestGetAnalysisTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAnalyzer := mocks.NewMockAnalyzer(ctrl)
	handler := GetAnalysisTemplate(mockAnalyzer)

	mockAnalyzer.EXPECT().
		Template().
		Return(&domain.AnalysisTemplate{
			FixedCost:   5000,
			MaxProducts: 100,
			Products: []domain.ProductRecord{
				{Name: "Produto 1", SellingPrice: 10, VariableCost: 5, QuantitySold: 500},
			},
		})

	req := httptest.NewRequest(http.MethodGet, "/v1/analysis/template", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var got domain.AnalysisTemplate
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, 5000.0, got.FixedCost)
	assert.Equal(t, 100, got.MaxProducts)
	assert.Len(t, got.Products, 1)
}
