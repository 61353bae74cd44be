package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cvp-analyzer-api/internal/config"
	"github.com/vfg2006/cvp-analyzer-api/internal/domain"
	"github.com/vfg2006/cvp-analyzer-api/pkg/apiErrors"
	"golang.org/x/crypto/bcrypt"
)

// Validade do token emitido para o cliente de apresentação
const tokenTTL = 24 * time.Hour

// Authenticator autentica o cliente de apresentação da API.
// O modelo é de credencial de serviço única, configurada por ambiente;
// não há cadastro de usuários.
type Authenticator interface {
	Login(username, password string) (string, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	cfg          *config.Config
	passwordHash []byte
}

// NewService cria o autenticador a partir da credencial de serviço configurada
func NewService(cfg *config.Config) (Authenticator, error) {
	if cfg.Auth.ServiceUser == "" || cfg.Auth.ServicePassword == "" {
		return nil, errors.New("credencial de serviço não configurada (AUTH_SERVICE_USER/AUTH_SERVICE_PASSWORD)")
	}

	// A senha em texto plano não é mantida após a inicialização
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Auth.ServicePassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &Service{
		cfg:          cfg,
		passwordHash: hash,
	}, nil
}

// Login valida a credencial de serviço e emite um token JWT
func (s *Service) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Usuário e senha são obrigatórios")
	}

	if username != s.cfg.Auth.ServiceUser {
		logrus.WithField("username", username).Warn("autenticação: usuário de serviço desconhecido")
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Credenciais inválidas")
	}

	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		logrus.WithField("username", username).Warn("autenticação: senha incorreta")
		return "", NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Credenciais inválidas")
	}

	token, err := s.generateJWT(username)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) generateJWT(username string) (string, error) {
	claims := domain.Claims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

// ValidateToken verifica a assinatura e a validade do token JWT
func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, err
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
