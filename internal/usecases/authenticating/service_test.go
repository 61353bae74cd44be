package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/cvp-analyzer-api/internal/config"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		SecretKey: "test_secret_key",
		Auth: config.Auth{
			ServiceUser:     "cvp-web",
			ServicePassword: "super-secret",
		},
	}
}

func TestNewService(t *testing.T) {
	t.Run("Credencial configurada - serviço criado", func(t *testing.T) {
		service, err := NewService(testAuthConfig())
		require.NoError(t, err)
		assert.NotNil(t, service)
	})

	t.Run("Credencial ausente - erro na inicialização", func(t *testing.T) {
		cfg := testAuthConfig()
		cfg.Auth.ServicePassword = ""

		service, err := NewService(cfg)
		assert.Error(t, err)
		assert.Nil(t, service)
	})
}

func TestService_Login(t *testing.T) {
	service, err := NewService(testAuthConfig())
	require.NoError(t, err)

	t.Run("Credenciais corretas - token emitido", func(t *testing.T) {
		token, err := service.Login("cvp-web", "super-secret")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Senha incorreta - credenciais inválidas", func(t *testing.T) {
		token, err := service.Login("cvp-web", "wrong")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("Usuário desconhecido - credenciais inválidas", func(t *testing.T) {
		token, err := service.Login("someone-else", "super-secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("Campos vazios - dados obrigatórios ausentes", func(t *testing.T) {
		token, err := service.Login("", "")
		assert.ErrorIs(t, err, ErrMissingRequiredData)
		assert.Empty(t, token)
	})
}

func TestService_ValidateToken(t *testing.T) {
	service, err := NewService(testAuthConfig())
	require.NoError(t, err)

	t.Run("Token emitido pelo próprio serviço - claims válidas", func(t *testing.T) {
		token, err := service.Login("cvp-web", "super-secret")
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "cvp-web", claims.Username)
	})

	t.Run("Token adulterado - rejeitado", func(t *testing.T) {
		claims, err := service.ValidateToken("not-a-token")
		assert.Error(t, err)
		assert.Nil(t, claims)
	})

	t.Run("Token assinado com outro segredo - rejeitado", func(t *testing.T) {
		otherCfg := testAuthConfig()
		otherCfg.SecretKey = "another_secret"
		otherService, err := NewService(otherCfg)
		require.NoError(t, err)

		token, err := otherService.Login("cvp-web", "super-secret")
		require.NoError(t, err)

		claims, err := service.ValidateToken(token)
		assert.Error(t, err)
		assert.Nil(t, claims)
	})
}
