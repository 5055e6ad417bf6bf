package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const envPrefix = "HRMS"

type Config struct {
	Env        string           `mapstructure:"env"`        // Env is the current environment: local, development, production.
	API        APIConfig        `mapstructure:"api"`        // API holds the HRMS backend connection.
	Dashboard  DashboardConfig  `mapstructure:"dashboard"`  // Dashboard holds the watcher settings.
	Monitoring MonitoringConfig `mapstructure:"monitoring"` // Monitoring holds the health and metrics server.
}

// APIConfig struct holds the configuration details for the HRMS REST API.
type APIConfig struct {
	BaseURL string        `mapstructure:"url"`     // BaseURL is the API root in format `https://example.com/api`
	Timeout time.Duration `mapstructure:"timeout"` // Timeout bounds one request, 10s by default.
}

// DashboardConfig struct holds the configuration of the dashboard watcher.
type DashboardConfig struct {
	Interval time.Duration `mapstructure:"interval"` // Interval is the time after that both lists are refetched.
	Recent   int           `mapstructure:"recent"`   // Recent is the number of rows in the recent attendance table.
}

type MonitoringConfig struct {
	Port int `mapstructure:"port"`
}

// Load reads the YAML file at configPath. Every key can be overridden by an
// environment variable, e.g. HRMS_API_URL for api.url.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		return nil, errors.New("config path is empty")
	}

	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defTimeout := 10
	defRecent := 8
	defPort := 8080

	v.SetDefault("env", "local")
	v.SetDefault("api.url", "")
	v.SetDefault("api.timeout", time.Duration(defTimeout)*time.Second)
	v.SetDefault("dashboard.interval", time.Minute)
	v.SetDefault("dashboard.recent", defRecent)
	v.SetDefault("monitoring.port", defPort)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config decode error: %w", err)
	}

	if cfg.API.BaseURL == "" {
		return nil, errors.New("api.url is required")
	}
	if cfg.API.Timeout <= 0 {
		return nil, fmt.Errorf("api.timeout must be positive, got %s", cfg.API.Timeout)
	}
	if cfg.Dashboard.Interval <= 0 {
		return nil, fmt.Errorf("dashboard.interval must be positive, got %s", cfg.Dashboard.Interval)
	}

	return cfg, nil
}

// MustLoad loads the configuration from the file named by CONFIG_PATH and panics on failure.
func MustLoad() *Config {
	cfg, err := Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		panic(err.Error())
	}

	return cfg
}
