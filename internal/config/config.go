package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// DefaultSampleCount é o número aproximado de amostras da série do gráfico
const DefaultSampleCount = 100

type Config struct {
	App       App      `mapstructure:",squash"`
	Server    Server   `mapstructure:",squash"`
	Auth      Auth     `mapstructure:",squash"`
	Analysis  Analysis `mapstructure:",squash"`
	SecretKey string   `mapstructure:"secret_key"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Auth struct {
	ServiceUser     string `mapstructure:"auth_service_user"`
	ServicePassword string `mapstructure:"auth_service_password"`
}

// Analysis carrega os parâmetros do motor CVP: limites de entrada, resolução
// do gráfico e os valores sugeridos para uma nova sessão de análise
type Analysis struct {
	SampleCount         int     `mapstructure:"analysis_sample_count"`
	MaxProducts         int     `mapstructure:"analysis_max_products"`
	DefaultProductCount int     `mapstructure:"analysis_default_product_count"`
	DefaultSellingPrice float64 `mapstructure:"analysis_default_selling_price"`
	DefaultVariableCost float64 `mapstructure:"analysis_default_variable_cost"`
	DefaultQuantitySold float64 `mapstructure:"analysis_default_quantity_sold"`
	DefaultFixedCost    float64 `mapstructure:"analysis_default_fixed_cost"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("AUTH_SERVICE_USER", "cvp-web")
	viper.SetDefault("AUTH_SERVICE_PASSWORD", "your_service_password") // ONLY LOCAL

	// Defaults do motor de análise CVP
	viper.SetDefault("ANALYSIS_SAMPLE_COUNT", DefaultSampleCount) // ~100 pontos por série
	viper.SetDefault("ANALYSIS_MAX_PRODUCTS", 100)                // Limite de produtos por análise
	viper.SetDefault("ANALYSIS_DEFAULT_PRODUCT_COUNT", 3)         // Produtos sugeridos em uma nova sessão
	viper.SetDefault("ANALYSIS_DEFAULT_SELLING_PRICE", 10.0)
	viper.SetDefault("ANALYSIS_DEFAULT_VARIABLE_COST", 5.0)
	viper.SetDefault("ANALYSIS_DEFAULT_QUANTITY_SOLD", 500.0)
	viper.SetDefault("ANALYSIS_DEFAULT_FIXED_COST", 5000.0)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a configuração")
	}

	if config.Analysis.MaxProducts <= 0 {
		return nil, errors.New("ANALYSIS_MAX_PRODUCTS deve ser positivo")
	}

	if config.Analysis.DefaultProductCount > config.Analysis.MaxProducts {
		config.Analysis.DefaultProductCount = config.Analysis.MaxProducts
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
