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

const (
	ModeLive       = "live"
	ModeSimulation = "simulation"
)

type Config struct {
	App       App      `mapstructure:",squash"`
	Server    Server   `mapstructure:",squash"`
	Database  Database `mapstructure:",squash"`
	Meta      Meta     `mapstructure:",squash"`
	Auth      Auth     `mapstructure:",squash"`
	Sync      Sync     `mapstructure:",squash"`
	SecretKey string   `mapstructure:"secret_key"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN           string `mapstructure:"-"`
	Driver        string `mapstructure:"database_driver"`
	Password      string `mapstructure:"database_password"`
	URL           string `mapstructure:"database_url"`
	User          string `mapstructure:"database_user"`
	RunMigrations bool   `mapstructure:"database_run_migrations"`
}

type Meta struct {
	Mode              string        `mapstructure:"meta_mode"`
	BaseURL           string        `mapstructure:"meta_base_url"`
	URL               string        `mapstructure:"meta_url"`
	Version           string        `mapstructure:"meta_version"`
	AccessToken       string        `mapstructure:"meta_access_token"`
	BusinessID        string        `mapstructure:"meta_business_id"`
	RequestTimeout    time.Duration `mapstructure:"meta_request_timeout"`
	SimulationLatency time.Duration `mapstructure:"simulation_latency"`
}

// IsSimulation indica se a plataforma deve ser simulada
func (m Meta) IsSimulation() bool {
	return strings.EqualFold(m.Mode, ModeSimulation)
}

type App struct {
	LogLevel           string   `mapstructure:"log_level"`
	Env                string   `mapstructure:"app_env"`
	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// IsProduction indica se o cookie de sessão deve ser Secure por padrão
func (a App) IsProduction() bool {
	return a.Env == "production" || a.Env == "prod"
}

type Auth struct {
	Users        []string      `mapstructure:"auth_users"`
	TokenTTL     time.Duration `mapstructure:"auth_token_ttl"`
	CookieName   string        `mapstructure:"auth_cookie_name"`
	CookieSecure bool          `mapstructure:"auth_cookie_secure"`
}

type Sync struct {
	CronSchedule      string `mapstructure:"sync_cron"`
	CronEnabled       bool   `mapstructure:"sync_cron_enabled"`
	MaxConcurrentJobs int    `mapstructure:"sync_max_concurrent_jobs"`
	TriggerSecret     string `mapstructure:"sync_trigger_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/adcontrol?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_RUN_MIGRATIONS", true)

	viper.SetDefault("META_MODE", ModeSimulation) // sem credenciais, simula a plataforma
	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v18.0")
	viper.SetDefault("META_ACCESS_TOKEN", "")
	viper.SetDefault("META_BUSINESS_ID", "")
	viper.SetDefault("META_REQUEST_TIMEOUT", "30s")
	viper.SetDefault("SIMULATION_LATENCY", "100ms")

	viper.SetDefault("SECRET_KEY", "your_secret_key")

	viper.SetDefault("AUTH_USERS", "")
	viper.SetDefault("AUTH_TOKEN_TTL", "168h") // 7 dias
	viper.SetDefault("AUTH_COOKIE_NAME", "auth-token")
	viper.SetDefault("AUTH_COOKIE_SECURE", false)

	viper.SetDefault("SYNC_CRON", "0 * * * *") // de hora em hora
	viper.SetDefault("SYNC_CRON_ENABLED", false)
	viper.SetDefault("SYNC_MAX_CONCURRENT_JOBS", 1)
	viper.SetDefault("SYNC_TRIGGER_SECRET", "")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile()

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

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
		return nil, err
	}

	config.finalize()

	return config, nil
}

// finalize preenche os campos derivados e normaliza os valores lidos
func (c *Config) finalize() {
	c.Meta.Mode = strings.ToLower(strings.TrimSpace(c.Meta.Mode))
	c.Meta.URL = fmt.Sprintf("%s/%s", strings.TrimRight(c.Meta.BaseURL, "/"), c.Meta.Version)

	if c.Sync.MaxConcurrentJobs < 1 {
		c.Sync.MaxConcurrentJobs = 1
	}

	if c.Auth.CookieName == "" {
		c.Auth.CookieName = "auth-token"
	}

	if c.App.IsProduction() {
		c.Auth.CookieSecure = true
	}

	c.Auth.Users = compact(c.Auth.Users)
	c.App.CorsAllowedOrigins = compact(c.App.CorsAllowedOrigins)

	c.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		c.Database.Driver,
		c.Database.User,
		c.Database.Password,
		c.Database.URL,
	)
}

// compact remove espaços e entradas vazias de listas separadas por vírgula
func compact(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
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
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
