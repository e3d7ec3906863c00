package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// AppConfig holds the application configuration
type AppConfig struct {
	Port     string
	Env      string
	LogLevel string

	// StorageBackend is memory, redis or postgres.
	StorageBackend string

	RedisURL          string
	RedisPoolSize     int
	RedisDialTimeout  time.Duration
	RedisMinIdleConns int
	RedisReadTimeout  time.Duration
	RedisMaxRetries   int

	DBURL string

	SessionSecret  string
	ToothChartSync string

	RateLimitRPS   float64
	RateLimitBurst int

	AllowedOrigins []string
}

// IsDevelopment reports whether ENV is development.
func (c *AppConfig) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development")
}

// LoadConfig reads .env when present, then the environment.
func LoadConfig() *AppConfig {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	return &AppConfig{
		Port:              getEnv("PORT", "8930"),
		Env:               getEnv("ENV", "production"),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		StorageBackend:    strings.ToLower(getEnv("STORAGE_BACKEND", "memory")),
		RedisURL:          getEnv("REDIS_URL", ""),
		RedisPoolSize:     getEnvAsInt("REDIS_POOL_SIZE", 10),
		RedisDialTimeout:  getEnvAsDuration("REDIS_DIAL_TIMEOUT", 30*time.Second),
		RedisMinIdleConns: getEnvAsInt("REDIS_MIN_IDLE_CONNS", 5),
		RedisReadTimeout:  getEnvAsDuration("REDIS_READ_TIMEOUT", 10*time.Second),
		RedisMaxRetries:   getEnvAsInt("REDIS_MAX_RETRIES", 3),
		DBURL:             getEnv("DB_URL", ""),
		SessionSecret:     getEnv("SESSION_SECRET", "clinicdesk-dev-secret"),
		ToothChartSync:    getEnv("TOOTH_CHART_SYNC", "mirror"),
		RateLimitRPS:      getEnvAsFloat("RATE_LIMIT_RPS", 15),
		RateLimitBurst:    getEnvAsInt("RATE_LIMIT_BURST", 30),
		AllowedOrigins:    getEnvAsList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}
}

func getEnv(name, defaultValue string) string {
	if value, exists := os.LookupEnv(name); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultValue int) int {
	if value, exists := os.LookupEnv(name); exists && value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
		log.Printf("Warning: Invalid integer value for %s, using default: %d", name, defaultValue)
	}
	return defaultValue
}

func getEnvAsFloat(name string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(name); exists && value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
		log.Printf("Warning: Invalid number value for %s, using default: %g", name, defaultValue)
	}
	return defaultValue
}

func getEnvAsDuration(name string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(name); exists && value != "" {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
		log.Printf("Warning: Invalid duration value for %s, using default: %s", name, defaultValue.String())
	}
	return defaultValue
}

func getEnvAsList(name string, defaultValue []string) []string {
	value, exists := os.LookupEnv(name)
	if !exists || value == "" {
		return defaultValue
	}
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
