package config

import (
	"os"
	"strconv"
	"strings"
)

// Query parameter names accepted by GET /get_name.
const (
	QueryParamName = "name"
	QueryParamNome = "nome"
)

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level    string
	Timezone string
}

// AppConfig is the centralized configuration struct for the application.
// It is populated from environment variables.
type AppConfig struct {
	Port               string
	QueryParam         string
	RouteDiagnostics   bool
	MetricsEnabled     bool
	ShutdownTimeoutSec int
	SwaggerHost        string // published as the API doc host; empty means the serving host
	Log                LogConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
func Load() *AppConfig {
	return &AppConfig{
		Port:               getEnv("PORT", "8080"),
		QueryParam:         queryParam(getEnv("QUERY_PARAM", QueryParamName)),
		RouteDiagnostics:   getEnvBool("ROUTE_DIAGNOSTICS", true),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
		ShutdownTimeoutSec: getEnvInt("SHUTDOWN_TIMEOUT_SEC", 10),
		SwaggerHost:        getEnv("SWAGGER_HOST", ""),
		Log: LogConfig{
			Level:    getEnv("LOG_LEVEL", "info"),
			Timezone: getEnv("LOG_TIMEZONE", "UTC"),
		},
	}
}

// queryParam normalizes the GET /get_name parameter; unknown values fall back to "name".
func queryParam(v string) string {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case QueryParamNome:
		return QueryParamNome
	default:
		return QueryParamName
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err == nil {
			return i
		}
	}
	return def
}
