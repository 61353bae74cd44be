package analyzing

import "errors"

// Erros esperados da análise CVP. Não são falhas do serviço: o cliente os
// apresenta como aviso ou mensagem informativa.
var (
	// ErrInsufficientData indica que o pool agregado não tem quantidade ou
	// receita positiva para derivar as razões (divisão pelo pool zerado
	// nunca é tentada)
	ErrInsufficientData = errors.New("dados insuficientes para calcular as métricas CVP")

	// ErrEmptyProductSet indica que nenhum produto tem quantidade vendida positiva
	ErrEmptyProductSet = errors.New("nenhum produto ativo para analisar")
)
