package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	Environment      string
	CatalogSeedFile  string
	RateLimitRPS     float64
	RateLimitBurst   int
	ShutdownTimeout  time.Duration
	CORSAllowOrigins []string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8081"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		CatalogSeedFile:  getEnv("CATALOG_SEED_FILE", ""),
		RateLimitRPS:     getEnvAsFloat64("RATE_LIMIT_RPS", 20),
		RateLimitBurst:   int(getEnvAsInt64("RATE_LIMIT_BURST", 40)),
		ShutdownTimeout:  time.Duration(getEnvAsInt64("SHUTDOWN_TIMEOUT_SECONDS", 10)) * time.Second,
		CORSAllowOrigins: getEnvAsList("CORS_ALLOW_ORIGINS", []string{"*"}),
	}

	return config, nil
}

// IsDevelopment reports whether debug logging and verbose errors are enabled.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil && intValue > 0 {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		floatValue, err := strconv.ParseFloat(value, 64)
		if err == nil && floatValue > 0 {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists || strings.TrimSpace(value) == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return defaultValue
	}
	return items
}
