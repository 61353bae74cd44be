package handler

import (
	"fmt"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/cvp-analyzer-api/internal/config"
	"github.com/vfg2006/cvp-analyzer-api/internal/domain"
	"github.com/vfg2006/cvp-analyzer-api/internal/usecases/analyzing"
	"github.com/vfg2006/cvp-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/cvp-analyzer-api/pkg/log"
	"github.com/vfg2006/cvp-analyzer-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// AnalysisRequest é o corpo da requisição de análise CVP: o custo fixo
// compartilhado e a lista de produtos da sessão
type AnalysisRequest struct {
	FixedCost float64                `json:"fixed_cost"`
	Products  []domain.ProductRecord `json:"products"`
}

// RunAnalysis executa uma análise CVP para o lote de entradas recebido
func RunAnalysis(service analyzing.Analyzer, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req AnalysisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.WithError(err).Warn("análise: corpo de requisição inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		// A validação de não-negatividade é do contorno de entrada; o motor
		// assume valores já validados
		if details := validateAnalysisRequest(&req, cfg.Analysis.MaxProducts); len(details) > 0 {
			logger.WithField("violations", len(details)).Warn("análise: entradas fora do contrato de não-negatividade")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Valores de entrada inválidos", details)
			return
		}

		logger.WithFields(log.Fields{
			"fixed_cost": req.FixedCost,
			"products":   len(req.Products),
		}).Info("análise: executando análise CVP")

		report := service.Analyze(req.FixedCost, req.Products)

		logger.WithFields(log.Fields{
			"report_id": report.ID,
			"status":    report.Status,
		}).Info("análise: relatório gerado")
		logger.Debug(utils.PrettyJson(report))

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("análise: falha ao codificar a resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// GetAnalysisTemplate retorna os valores sugeridos para uma nova sessão de análise
func GetAnalysisTemplate(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		template := service.Template()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(template); err != nil {
			logger.WithError(err).Error("análise: falha ao codificar o template")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// validateAnalysisRequest aplica o contrato do contorno de entrada: valores
// não-negativos e limite de produtos por análise. Retorna a lista de violações
// para compor o detalhe do erro.
func validateAnalysisRequest(req *AnalysisRequest, maxProducts int) []string {
	var details []string

	if req.FixedCost < 0 {
		details = append(details, "fixed_cost deve ser maior ou igual a zero")
	}

	if len(req.Products) > maxProducts {
		details = append(details, fmt.Sprintf("número de produtos excede o limite de %d", maxProducts))
	}

	for i, product := range req.Products {
		if product.SellingPrice < 0 {
			details = append(details, fmt.Sprintf("products[%d].selling_price deve ser maior ou igual a zero", i))
		}
		if product.VariableCost < 0 {
			details = append(details, fmt.Sprintf("products[%d].variable_cost deve ser maior ou igual a zero", i))
		}
		if product.QuantitySold < 0 {
			details = append(details, fmt.Sprintf("products[%d].quantity_sold deve ser maior ou igual a zero", i))
		}
	}

	return details
}
