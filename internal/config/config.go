// Package config loads service settings from the environment and an optional YAML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// ServiceName is also the config file name without extension.
const ServiceName = "audience-proxy"

const configDir = "configs"

type Config struct {
	Server ServerConfig
	Gemini GeminiConfig
	Log    LogConfig
}

type ServerConfig struct {
	Port string
}

type GeminiConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	// Mock swaps the upstream for an in-process fake. Local runs only.
	Mock bool
}

type LogConfig struct {
	Level       string
	Format      string
	Development bool
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", "8080")
	v.SetDefault("gemini.api_key", "")
	v.SetDefault("gemini.base_url", "https://generativelanguage.googleapis.com/v1beta")
	v.SetDefault("gemini.model", "gemini-2.5-flash")
	v.SetDefault("gemini.timeout", 60*time.Second)
	v.SetDefault("gemini.mock", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("log.development", false)
}

// Load reads configs/<APP_ENV>/audience-proxy.yaml (or CONFIG_PATH) when present,
// then lets environment variables override it: gemini.api_key <- GEMINI_API_KEY.
func Load() (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// PORT is what serverless platforms and most PaaS inject.
	if err := v.BindEnv("server.port", "SERVER_PORT", "PORT"); err != nil {
		return Config{}, fmt.Errorf("bind server.port: %w", err)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		env := os.Getenv("APP_ENV")
		if env == "" {
			env = "dev"
		}
		configPath = filepath.Join(configDir, env)
	}
	v.SetConfigName(ServiceName)
	v.AddConfigPath(configPath)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Server: ServerConfig{
			Port: v.GetString("server.port"),
		},
		Gemini: GeminiConfig{
			APIKey:  strings.TrimSpace(v.GetString("gemini.api_key")),
			BaseURL: v.GetString("gemini.base_url"),
			Model:   v.GetString("gemini.model"),
			Timeout: v.GetDuration("gemini.timeout"),
			Mock:    v.GetBool("gemini.mock"),
		},
		Log: LogConfig{
			Level:       v.GetString("log.level"),
			Format:      v.GetString("log.format"),
			Development: v.GetBool("log.development"),
		},
	}
	if cfg.Gemini.Timeout <= 0 {
		return Config{}, fmt.Errorf("gemini.timeout must be positive, got %s", cfg.Gemini.Timeout)
	}
	return cfg, nil
}
