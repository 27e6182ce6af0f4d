package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"tokpee/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Server  ServerConfig
	Admin   AdminConfig
	AI      AIConfig
	Data    DataConfig
	Logging LoggingConfig
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port           string
	GinMode        string
	MaxUploadBytes int64
}

// AdminConfig holds the profiling and metrics listener settings
type AdminConfig struct {
	Port    string
	Enabled bool
}

// AIConfig holds text generation settings. An empty key disables generation.
type AIConfig struct {
	GeminiAPIKey   string
	InsightModel   string
	AssistantModel string
	Timeout        time.Duration
	MaxConcurrent  int
	PromptsDir     string
}

// DataConfig holds catalog seeding settings
type DataConfig struct {
	CatalogFile string
}

// LoggingConfig holds logger settings
type LoggingConfig struct {
	Level       string
	Development bool
}

const defaultMaxUploadBytes = 50 << 20

var validLevels = map[string]bool{"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:  *loadServerConfig(),
		Admin:   *loadAdminConfig(),
		AI:      *loadAIConfig(),
		Data:    *loadDataConfig(),
		Logging: *loadLoggingConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

// GenerationEnabled reports whether a text generation key is configured
func (c *Config) GenerationEnabled() bool {
	return c.AI.GeminiAPIKey != ""
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:           getEnvOrDefault("PORT", "8080"),
		GinMode:        getEnvOrDefault("GIN_MODE", "release"),
		MaxUploadBytes: getEnvInt64OrDefault("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
	}
}

func loadAdminConfig() *AdminConfig {
	return &AdminConfig{
		Port:    getEnvOrDefault("ADMIN_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("ADMIN_ENABLED", true),
	}
}

func loadAIConfig() *AIConfig {
	return &AIConfig{
		GeminiAPIKey:   strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		InsightModel:   getEnvOrDefault("INSIGHT_MODEL", "gemini-3-flash-preview"),
		AssistantModel: getEnvOrDefault("ASSISTANT_MODEL", "gemini-3-pro-preview"),
		Timeout:        getEnvDurationOrDefault("AI_TIMEOUT", 30*time.Second),
		MaxConcurrent:  getEnvIntOrDefault("AI_MAX_CONCURRENT", 4),
		PromptsDir:     getEnvOrDefault("PROMPTS_DIR", ""),
	}
}

func loadDataConfig() *DataConfig {
	return &DataConfig{
		CatalogFile: getEnvOrDefault("CATALOG_FILE", ""),
	}
}

func loadLoggingConfig() *LoggingConfig {
	return &LoggingConfig{
		Level:       strings.ToUpper(getEnvOrDefault("LOG_LEVEL", "INFO")),
		Development: getEnvBoolOrDefault("LOG_DEVELOPMENT", false),
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Server.MaxUploadBytes <= 0 {
		return errors.ConfigInvalid("MAX_UPLOAD_BYTES must be positive")
	}
	if config.AI.MaxConcurrent <= 0 {
		return errors.ConfigInvalid("AI_MAX_CONCURRENT must be positive")
	}
	if config.AI.Timeout <= 0 {
		return errors.ConfigInvalid("AI_TIMEOUT must be positive")
	}
	if !validLevels[config.Logging.Level] {
		return errors.ConfigInvalid("LOG_LEVEL must be one of DEBUG, INFO, WARN, ERROR")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
