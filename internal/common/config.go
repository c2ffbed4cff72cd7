package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server  ServerConfig
	Extract ExtractConfig
	LLM     LLMConfig
}

// ServerConfig holds web server configuration
type ServerConfig struct {
	HTTPAddr    string
	MaxUploadMB int
}

// ExtractConfig holds text-extraction configuration
type ExtractConfig struct {
	AntiwordBin string
	OutputDir   string
}

// LLMConfig holds LLM-related configuration
type LLMConfig struct {
	Model       string
	APIKey      string
	BaseURL     string
	Temperature float32
	Timeout     time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPAddr:    getEnv("CV_HTTP_ADDR", ":8080"),
			MaxUploadMB: getEnvAsInt("CV_MAX_UPLOAD_MB", 10),
		},
		Extract: ExtractConfig{
			AntiwordBin: getEnv("ANTIWORD_BIN", "antiword"),
			OutputDir:   getEnv("CV_OUTPUT_DIR", "./outputs"),
		},
		LLM: LLMConfig{
			Model:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
			APIKey:      getEnv("OPENAI_API_KEY", ""),
			BaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
			Temperature: getEnvAsFloat32("OPENAI_TEMPERATURE", 0.0),
			Timeout:     getEnvAsDuration("OPENAI_TIMEOUT", 45*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration. The API key check is the
// fail-fast gate: without it the LLM call path must never run.
func (c *Config) Validate() error {
	if c.LLM.APIKey == "" {
		return NewAppError("CONFIG_ERROR", "OPENAI_API_KEY is required", ErrMissingCredential)
	}
	if c.Server.HTTPAddr == "" {
		return NewAppError("CONFIG_ERROR", "CV_HTTP_ADDR is required", nil)
	}
	if c.Extract.OutputDir == "" {
		return NewAppError("CONFIG_ERROR", "CV_OUTPUT_DIR is required", nil)
	}
	return nil
}
