package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Server modes select the tool delivery surface.
const (
	ModeStdio = "stdio"
	ModeSSE   = "sse"
)

// Config stores runtime configuration loaded from environment variables.
type Config struct {
	APIURL         string
	APIToken       string
	ServerMode     string
	Host           string
	Port           string
	HTTPTimeoutSec int
}

// Load reads configuration from the environment, providing sensible defaults.
func Load() Config {
	// Load .env file if it exists (useful for development)
	_ = godotenv.Load()
	return Config{
		APIURL:         os.Getenv("OCR_API_URL"),
		APIToken:       os.Getenv("OCR_API_TOKEN"),
		ServerMode:     getEnv("SERVER_MODE", ModeStdio),
		Host:           getEnv("HOST", "127.0.0.1"),
		Port:           getEnv("PORT", "8080"),
		HTTPTimeoutSec: getEnvInt("OCR_HTTP_TIMEOUT_SECONDS", 300),
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		if n, err := strconv.Atoi(val); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}
