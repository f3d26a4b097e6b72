package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"starwars/internal/pkg/validator"
)

const (
	defaultAppEnv      = "dev"
	defaultPort        = "3000"
	defaultDatabaseURL = "/tmp/test.db"
	defaultLogLevel    = "info"
	defaultLogFormat   = "json"
	defaultDBLogLevel  = "warn"
	defaultCORSOrigins = "*"
	defaultAutoMigrate = true
)

type Config struct {
	AppEnv      string `mapstructure:"APP_ENV" validate:"required"`
	Port        string `mapstructure:"PORT" validate:"required,numeric"`
	DatabaseURL string `mapstructure:"DATABASE_URL" validate:"required"`
	LogLevel    string `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn error"`
	LogFormat   string `mapstructure:"LOG_FORMAT" validate:"oneof=json console"`
	DBLogLevel  string `mapstructure:"DB_LOG_LEVEL" validate:"oneof=silent error warn info"`
	CORSOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`
	AutoMigrate bool   `mapstructure:"AUTO_MIGRATE"`
}

// Load reads an optional .env file, then the process environment.
// Values already present in the environment win over .env.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}
	return fromViper(viper.New())
}

func fromViper(v *viper.Viper) (*Config, error) {
	v.SetDefault("APP_ENV", defaultAppEnv)
	v.SetDefault("PORT", defaultPort)
	v.SetDefault("DATABASE_URL", defaultDatabaseURL)
	v.SetDefault("LOG_LEVEL", defaultLogLevel)
	v.SetDefault("LOG_FORMAT", defaultLogFormat)
	v.SetDefault("DB_LOG_LEVEL", defaultDBLogLevel)
	v.SetDefault("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)
	v.SetDefault("AUTO_MIGRATE", defaultAutoMigrate)
	v.AutomaticEnv()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.DatabaseURL = strings.TrimSpace(cfg.DatabaseURL)
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	cfg.DBLogLevel = strings.ToLower(strings.TrimSpace(cfg.DBLogLevel))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if errs := validator.Validate(cfg); len(errs) > 0 {
		fields := make([]string, 0, len(errs))
		for field, tag := range errs {
			fields = append(fields, fmt.Sprintf("%s(%s)", field, tag))
		}
		sort.Strings(fields)
		return fmt.Errorf("invalid config: %s", strings.Join(fields, ", "))
	}

	if cfg.IsProdLike() && cfg.DatabaseURL == defaultDatabaseURL {
		return fmt.Errorf("in prod/release DATABASE_URL must be set and not default")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return "0.0.0.0:" + c.Port
}

func (c *Config) IsProdLike() bool {
	return c.AppEnv == "prod" || c.AppEnv == "production" || c.AppEnv == "release"
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas. "*" allows any origin.
func (c *Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
