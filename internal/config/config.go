package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// Config holds the application configuration.
type Config struct {
	DatabaseURL    string `mapstructure:"DATABASE_URL"`
	Port           string `mapstructure:"PORT"`
	GinMode        string `mapstructure:"GIN_MODE"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`
	AllowedOrigins string `mapstructure:"ALLOWED_ORIGINS"`
	AutoMigrate    bool   `mapstructure:"AUTO_MIGRATE"`
}

var AppConfig *Config

// defaults also register every key with viper, which AutomaticEnv needs
// before Unmarshal will look a key up in the environment.
var defaults = map[string]any{
	"DATABASE_URL":    "app.db",
	"PORT":            "5555",
	"GIN_MODE":        gin.DebugMode,
	"LOG_LEVEL":       "info",
	"ALLOWED_ORIGINS": "*",
	"AUTO_MIGRATE":    true,
}

// LoadConfig loads the configuration from a .env file in the working
// directory, environment variables and any flags bound to the global viper
// instance, and stores it in AppConfig.
func LoadConfig() error {
	cfg, err := Load(viper.GetViper(), ".")
	if err != nil {
		return err
	}
	AppConfig = cfg
	return nil
}

// Load reads configuration into v from a .env file in dir and the
// environment. Environment variables win over the file.
func Load(v *viper.Viper, dir string) (*Config, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
		log.Println("Warning: .env file not found, loading from environment variables")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return errors.New("DATABASE_URL is required")
	}
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT is required")
	}
	switch c.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("GIN_MODE must be one of debug, release, test; got %q", c.GinMode)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// SlogLevel parses LOG_LEVEL (debug, info, warn, error).
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}
