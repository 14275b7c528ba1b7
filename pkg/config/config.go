package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/robohub/config"
	ConfigFileName    = "robohub.yml"
)

// Config holds all RoboHub server settings. Values come from defaults,
// then the optional config file, then environment variables, in that
// order of precedence.
type Config struct {
	// BindAddress is the address the server listens on.
	BindAddress string `yaml:"bind_address"`

	// Port is the server listen port.
	Port string `yaml:"port"`

	// DatabaseURL is the PostgreSQL connection string.
	DatabaseURL string `yaml:"database_url"`

	// JWTSecret signs and verifies bearer tokens. Its absence is a server
	// misconfiguration surfaced at verify time, not a client error.
	JWTSecret string `yaml:"jwt_secret"`

	// TokenTTLSeconds is the validity window for issued tokens.
	TokenTTLSeconds int `yaml:"token_ttl_seconds"`

	// AllowedOrigins is the CORS origin allowlist. Empty allows none.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// AIAPIKey authenticates against the upstream AI provider.
	AIAPIKey string `yaml:"ai_api_key"`

	// AIBaseURL is the OpenAI-compatible API base URL.
	AIBaseURL string `yaml:"ai_base_url"`

	// AIModel is the default chat model.
	AIModel string `yaml:"ai_model"`

	// Web3ProviderURL is the blockchain RPC endpoint.
	Web3ProviderURL string `yaml:"web3_provider_url"`

	// ContractAddress is the platform payment contract.
	ContractAddress string `yaml:"contract_address"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// sources tracks where each value came from
	sources map[string]string
}

func newDefault() *Config {
	return &Config{
		BindAddress:     "0.0.0.0",
		Port:            "8000",
		TokenTTLSeconds: 3600,
		AIBaseURL:       "https://api.openai.com/v1",
		AIModel:         "gpt-3.5-turbo",
		LogLevel:        "info",
		sources:         make(map[string]string),
	}
}

// Load builds the configuration from the optional config file and the
// environment. Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()

	configPath := os.Getenv("ROBOHUB_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	configFile := filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(configFile); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	config.applyEnvConfig()

	return config, nil
}

func (c *Config) applyFileConfig(file *Config) {
	if file.BindAddress != "" {
		c.BindAddress = file.BindAddress
		c.sources["bind_address"] = "file"
	}
	if file.Port != "" {
		c.Port = file.Port
		c.sources["port"] = "file"
	}
	if file.DatabaseURL != "" {
		c.DatabaseURL = file.DatabaseURL
		c.sources["database_url"] = "file"
	}
	if file.JWTSecret != "" {
		c.JWTSecret = file.JWTSecret
		c.sources["jwt_secret"] = "file"
	}
	if file.TokenTTLSeconds != 0 {
		c.TokenTTLSeconds = file.TokenTTLSeconds
		c.sources["token_ttl_seconds"] = "file"
	}
	if len(file.AllowedOrigins) > 0 {
		c.AllowedOrigins = file.AllowedOrigins
		c.sources["allowed_origins"] = "file"
	}
	if file.AIAPIKey != "" {
		c.AIAPIKey = file.AIAPIKey
		c.sources["ai_api_key"] = "file"
	}
	if file.AIBaseURL != "" {
		c.AIBaseURL = file.AIBaseURL
		c.sources["ai_base_url"] = "file"
	}
	if file.AIModel != "" {
		c.AIModel = file.AIModel
		c.sources["ai_model"] = "file"
	}
	if file.Web3ProviderURL != "" {
		c.Web3ProviderURL = file.Web3ProviderURL
		c.sources["web3_provider_url"] = "file"
	}
	if file.ContractAddress != "" {
		c.ContractAddress = file.ContractAddress
		c.sources["contract_address"] = "file"
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = "file"
	}
}

func (c *Config) applyEnvConfig() {
	if val := os.Getenv("BIND_ADDRESS"); val != "" {
		c.BindAddress = val
		c.sources["bind_address"] = "environment"
	}
	if val := os.Getenv("PORT"); val != "" {
		c.Port = val
		c.sources["port"] = "environment"
	}
	if val := os.Getenv("DATABASE_URL"); val != "" {
		c.DatabaseURL = val
		c.sources["database_url"] = "environment"
	}
	if val := os.Getenv("JWT_SECRET"); val != "" {
		c.JWTSecret = val
		c.sources["jwt_secret"] = "environment"
	}
	if val := os.Getenv("TOKEN_TTL_SECONDS"); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			c.TokenTTLSeconds = i
			c.sources["token_ttl_seconds"] = "environment"
		}
	}
	if val := os.Getenv("ALLOWED_ORIGINS"); val != "" {
		c.AllowedOrigins = splitAndTrim(val)
		c.sources["allowed_origins"] = "environment"
	}
	if val := os.Getenv("AI_API_KEY"); val != "" {
		c.AIAPIKey = val
		c.sources["ai_api_key"] = "environment"
	}
	if val := os.Getenv("AI_BASE_URL"); val != "" {
		c.AIBaseURL = val
		c.sources["ai_base_url"] = "environment"
	}
	if val := os.Getenv("AI_MODEL"); val != "" {
		c.AIModel = val
		c.sources["ai_model"] = "environment"
	}
	if val := os.Getenv("WEB3_PROVIDER_URL"); val != "" {
		c.Web3ProviderURL = val
		c.sources["web3_provider_url"] = "environment"
	}
	if val := os.Getenv("CONTRACT_ADDRESS"); val != "" {
		c.ContractAddress = val
		c.sources["contract_address"] = "environment"
	}
	if val := os.Getenv("ROBOHUB_LOG_LEVEL"); val != "" {
		c.LogLevel = val
		c.sources["log_level"] = "environment"
	}
}

// Source returns where a configuration attribute came from.
func (c *Config) Source(name string) string {
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// TokenTTL returns the token validity window as a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLSeconds) * time.Second
}

// Addr returns the host:port the server binds to.
func (c *Config) Addr() string {
	return c.BindAddress + ":" + c.Port
}

// Validate checks settings a server start requires.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	return nil
}

func splitAndTrim(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
