package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/agrosense/hub/internal/errors"
)

// Config holds all configuration for the service
type Config struct {
	Server     ServerConfig
	Database   PostgresConfig `mapstructure:"database"`
	Dashboard  DashboardConfig
	Monitoring MonitoringConfig
}

type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	Host            string        `mapstructure:"host"`
	Environment     string        `mapstructure:"environment"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"dbname"`
	SSLMode  string `mapstructure:"sslmode"`
}

type DashboardConfig struct {
	// Window is how far back the aggregated reading window reaches.
	Window time.Duration `mapstructure:"window"`
}

type MonitoringConfig struct {
	LogLevel string `mapstructure:"log_level"`
}

// Load initializes configuration from environment variables and config file
func Load() (*Config, error) {
	viper.SetEnvPrefix("AGROHUB")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "__"))
	viper.AutomaticEnv()

	// Set defaults
	setDefaults()

	// Load config file if exists
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults() {
	// Server defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.environment", "development")
	viper.SetDefault("server.read_timeout", "15s")
	viper.SetDefault("server.write_timeout", "15s")
	viper.SetDefault("server.shutdown_timeout", "30s")

	// Database defaults
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.sslmode", "disable")

	// Dashboard defaults
	viper.SetDefault("dashboard.window", "24h")

	// Monitoring defaults
	viper.SetDefault("monitoring.log_level", "info")
}

// validateConfig checks the presence of required connection parameters and
// reports which are missing, never their values.
func validateConfig(config *Config) error {
	missing := []string{}
	if config.Database.Host == "" {
		missing = append(missing, "database.host")
	}
	if config.Database.User == "" {
		missing = append(missing, "database.user")
	}
	if config.Database.DBName == "" {
		missing = append(missing, "database.dbname")
	}
	if len(missing) > 0 {
		return errors.NewConfigurationError("missing required configuration", nil).
			WithDetails(map[string][]string{"missing": missing})
	}
	if config.Dashboard.Window <= 0 {
		return errors.NewConfigurationError("dashboard window must be positive", nil).
			WithDetails(map[string]string{"parameter": "dashboard.window"})
	}
	return nil
}

// IsProduction reports whether query text may not be exposed in errors.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}
