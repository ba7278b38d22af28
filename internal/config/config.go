package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Fontes possíveis para o catálogo de SKUs
const (
	CatalogSourceStatic   = "static"
	CatalogSourceDatabase = "database"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Backend          Backend          `mapstructure:",squash"`
	Cache            Cache            `mapstructure:",squash"`
	Catalog          Catalog          `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	DashboardRefresh DashboardRefresh `mapstructure:",squash"`
	IntegrationsSync IntegrationsSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// Backend descreve o serviço REST remoto (campanhas, analytics, integrações e analista)
type Backend struct {
	URL            string `mapstructure:"backend_url"`
	APIToken       string `mapstructure:"backend_api_token"`
	TimeoutSeconds int    `mapstructure:"backend_timeout_seconds"`
	RetryDelayMS   int    `mapstructure:"backend_retry_delay_ms"`
}

type Cache struct {
	TTLSeconds int `mapstructure:"cache_ttl_seconds"`
}

type Catalog struct {
	Source         string `mapstructure:"catalog_source"`
	RefreshSeconds int    `mapstructure:"catalog_refresh_seconds"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

type DashboardRefresh struct {
	IntervalSeconds int  `mapstructure:"dashboard_refresh_interval_seconds"`
	Enabled         bool `mapstructure:"dashboard_refresh_enabled"`
}

type IntegrationsSync struct {
	CronSchedule        string `mapstructure:"integrations_sync_cron"`
	RequestDelaySeconds int    `mapstructure:"integrations_sync_request_delay_seconds"`
	MaxConcurrentJobs   int    `mapstructure:"integrations_sync_max_concurrent_jobs"`
	Enabled             bool   `mapstructure:"integrations_sync_enabled"`
}

func (b Backend) Timeout() time.Duration {
	return time.Duration(b.TimeoutSeconds) * time.Second
}

func (b Backend) RetryDelay() time.Duration {
	return time.Duration(b.RetryDelayMS) * time.Millisecond
}

func (c Cache) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

func (c Catalog) RefreshInterval() time.Duration {
	return time.Duration(c.RefreshSeconds) * time.Second
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8080)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("BACKEND_URL", "http://localhost:8000/api/v1")
	viper.SetDefault("BACKEND_API_TOKEN", "")
	viper.SetDefault("BACKEND_TIMEOUT_SECONDS", 30)
	viper.SetDefault("BACKEND_RETRY_DELAY_MS", 300)

	viper.SetDefault("CACHE_TTL_SECONDS", 30)

	viper.SetDefault("CATALOG_SOURCE", CatalogSourceStatic)
	viper.SetDefault("CATALOG_REFRESH_SECONDS", 300)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/deep_calm_dev?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "dc")
	viper.SetDefault("DATABASE_PASSWORD", "dcpass")

	// O dashboard original recarregava os dados a cada 30 segundos
	viper.SetDefault("DASHBOARD_REFRESH_INTERVAL_SECONDS", 30)
	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", true)

	viper.SetDefault("INTEGRATIONS_SYNC_CRON", "0 */6 * * *")      // A cada 6 horas
	viper.SetDefault("INTEGRATIONS_SYNC_REQUEST_DELAY_SECONDS", 1) // 1 segundo entre requisições
	viper.SetDefault("INTEGRATIONS_SYNC_MAX_CONCURRENT_JOBS", 2)   // 2 jobs concorrentes
	viper.SetDefault("INTEGRATIONS_SYNC_ENABLED", false)

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Debug("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
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
		return nil, err
	}

	if err := config.normalize(); err != nil {
		return nil, err
	}

	return config, nil
}

// normalize completa os campos derivados e valida combinações inválidas
func (c *Config) normalize() error {
	c.Backend.URL = strings.TrimRight(c.Backend.URL, "/")
	if c.Backend.URL == "" {
		return fmt.Errorf("config: BACKEND_URL é obrigatório")
	}

	c.Catalog.Source = strings.ToLower(strings.TrimSpace(c.Catalog.Source))
	switch c.Catalog.Source {
	case CatalogSourceStatic, CatalogSourceDatabase:
	default:
		return fmt.Errorf("config: CATALOG_SOURCE inválido: %q", c.Catalog.Source)
	}

	origins := make([]string, 0, len(c.Server.AllowedOrigins))
	for _, origin := range c.Server.AllowedOrigins {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	c.Server.AllowedOrigins = origins

	if c.IntegrationsSync.MaxConcurrentJobs < 1 {
		c.IntegrationsSync.MaxConcurrentJobs = 1
	}

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)

	return nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Debug("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
