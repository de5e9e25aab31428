package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Port     int            `mapstructure:"port"`
	Database DatabaseConfig `mapstructure:"db"`
	Audit    AuditConfig    `mapstructure:"audit"`
	HTTP     HTTPConfig     `mapstructure:"http"`
}

// DatabaseConfig holds the store connection parameters
type DatabaseConfig struct {
	Driver         string        `mapstructure:"driver"`
	Host           string        `mapstructure:"host"`
	Port           int           `mapstructure:"port"`
	User           string        `mapstructure:"user"`
	Password       string        `mapstructure:"password"`
	Name           string        `mapstructure:"name"`
	DSN            string        `mapstructure:"dsn"`
	PoolSize       int           `mapstructure:"pool_size"`
	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}

// AuditConfig controls the audit log sink
type AuditConfig struct {
	Table     string `mapstructure:"table"`
	Actor     string `mapstructure:"actor"`
	Bootstrap bool   `mapstructure:"bootstrap"`
}

// HTTPConfig holds request handling limits
type HTTPConfig struct {
	AllowedOrigins []string      `mapstructure:"allowed_origins"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	MaxBodyBytes   int64         `mapstructure:"max_body_bytes"`
}

// envAliases maps flat environment names onto nested keys where the names differ
var envAliases = map[string]string{
	"http.allowed_origins": "CORS_ALLOWED_ORIGINS",
	"http.request_timeout": "REQUEST_TIMEOUT",
	"http.max_body_bytes":  "MAX_BODY_BYTES",
}

// Load reads .env (if present), config.yaml (if present) and the environment
func Load() (*Config, error) {
	return load(".env", ".")
}

func load(envFile, configDir string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configDir)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range envAliases {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", env, err)
		}
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 3000)

	v.SetDefault("db.driver", "mysql")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 0)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "test")
	v.SetDefault("db.dsn", "")
	v.SetDefault("db.pool_size", 10)
	v.SetDefault("db.connect_timeout", 5*time.Second)

	v.SetDefault("audit.table", "logs")
	v.SetDefault("audit.actor", "admin")
	v.SetDefault("audit.bootstrap", true)

	v.SetDefault("http.allowed_origins", []string{"*"})
	v.SetDefault("http.request_timeout", 60*time.Second)
	v.SetDefault("http.max_body_bytes", int64(1<<20))
}

// Validate checks the configuration for values the server cannot start with
func (c *Config) Validate() error {
	var problems []string

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("port %d is out of range", c.Port))
	}
	if c.Database.Driver == "" {
		problems = append(problems, "database driver is required")
	}
	if c.Database.PoolSize < 1 {
		problems = append(problems, "database pool size must be at least 1")
	}
	if c.Database.DSN == "" && c.Database.Name == "" {
		problems = append(problems, "database name or DSN is required")
	}
	if strings.TrimSpace(c.Audit.Table) == "" {
		problems = append(problems, "audit table is required")
	}
	if c.HTTP.RequestTimeout <= 0 {
		problems = append(problems, "request timeout must be positive")
	}
	if c.HTTP.MaxBodyBytes < 1 {
		problems = append(problems, "max body bytes must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, ", "))
	}
	return nil
}

// Addr returns the listen address for the HTTP server
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
