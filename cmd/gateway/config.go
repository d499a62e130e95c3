// In file: cmd/gateway/config.go
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dileep-u-k/weather-gateway/internal/llm"
	"github.com/dileep-u-k/weather-gateway/internal/log"
	"github.com/dileep-u-k/weather-gateway/internal/weather"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "config.yaml"
	defaultPort       = "8000"
)

// AppConfig is built once at startup and shared read-only by every component.
type AppConfig struct {
	Provider  string                `yaml:"provider"`
	BaseURL   string                `yaml:"base_url"`
	Port      string                `yaml:"port"`
	RedisAddr string                `yaml:"redis_addr"`
	LogLevel  string                `yaml:"log_level"`
	Agent     llm.AgentConfig       `yaml:"agent"`
	Weather   weather.ClientOptions `yaml:"weather"`

	// APIKey only ever comes from the environment.
	APIKey string `yaml:"-"`
}

// LoadConfig reads .env (outside release mode), the optional YAML file named
// by CONFIG_FILE, then environment overrides.
func LoadConfig() (*AppConfig, error) {
	// In Docker (GIN_MODE=release) configuration arrives as real environment variables.
	if os.Getenv("GIN_MODE") != "release" {
		if err := godotenv.Load(); err != nil {
			log.Infof("no .env file found, using the process environment")
		}
	}
	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = defaultConfigFile
	}
	return loadConfigFile(path)
}

func loadConfigFile(path string) (*AppConfig, error) {
	cfg := &AppConfig{}

	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		log.Debugf("config file %s not found, using defaults", path)
	default:
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	applyEnv(cfg)
	applyDefaults(cfg)

	switch cfg.Provider {
	case llm.ProviderOpenRouter:
		cfg.APIKey = os.Getenv("OPENROUTER_API_KEY")
		if cfg.APIKey == "" {
			log.Warnf("WARNING: OPENROUTER_API_KEY not found in env.")
		}
	case llm.ProviderGemini:
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
		if cfg.APIKey == "" {
			log.Warnf("WARNING: GEMINI_API_KEY not found in env.")
		}
	default:
		return nil, fmt.Errorf("unknown LLM provider %q (want %q or %q)", cfg.Provider, llm.ProviderOpenRouter, llm.ProviderGemini)
	}
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	overrides := []struct {
		env    string
		target *string
	}{
		{"LLM_PROVIDER", &cfg.Provider},
		{"LLM_MODEL", &cfg.Agent.Model},
		{"LLM_BASE_URL", &cfg.BaseURL},
		{"PORT", &cfg.Port},
		{"REDIS_ADDR", &cfg.RedisAddr},
		{"LOG_LEVEL", &cfg.LogLevel},
	}
	for _, o := range overrides {
		if v := os.Getenv(o.env); v != "" {
			*o.target = v
		}
	}
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Provider == "" {
		cfg.Provider = llm.ProviderOpenRouter
	}
	if cfg.Port == "" {
		cfg.Port = defaultPort
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = log.LevelInfo
	}
	if cfg.Agent.Model == "" {
		cfg.Agent.Model = llm.DefaultModel
		if cfg.Provider == llm.ProviderGemini {
			cfg.Agent.Model = llm.DefaultGeminiModel
		}
	}
	if cfg.Agent.Temperature == nil {
		zero := float32(0)
		cfg.Agent.Temperature = &zero
	}
	if cfg.Agent.MaxIterations <= 0 {
		cfg.Agent.MaxIterations = llm.DefaultMaxIterations
	}
	if cfg.Agent.SystemPrompt == "" {
		cfg.Agent.SystemPrompt = llm.DefaultSystemPrompt
	}
	if cfg.Provider == llm.ProviderOpenRouter && cfg.BaseURL == "" {
		cfg.BaseURL = llm.DefaultBaseURL
	}
}
