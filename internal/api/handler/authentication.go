package handler

import (
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/cvp-analyzer-api/internal/usecases/authenticating"
	"github.com/vfg2006/cvp-analyzer-api/pkg/apiErrors"
	"github.com/vfg2006/cvp-analyzer-api/pkg/log"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// Login autentica o cliente de apresentação e retorna o token de acesso
func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req LoginRequest

		// Decodificar o corpo da requisição
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		token, err := service.Login(req.Username, req.Password)
		if err != nil {
			handleLoginError(w, logger, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(LoginResponse{Token: token}); err != nil {
			logger.WithError(err).Error("autenticação: falha ao codificar a resposta")
		}
	})
}

// handleLoginError traduz o erro de autenticação no payload padronizado da API
func handleLoginError(w http.ResponseWriter, logger log.Logger, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		logger.WithError(err).Warn("autenticação: login recusado")
		apiErrors.WriteError(w, authErr.Code, authErr.Details, nil)
		return
	}

	logger.WithError(err).Error("autenticação: erro inesperado no login")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
}
