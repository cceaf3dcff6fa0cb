package config

import (
	"os"
	"strconv"
	"time"
)

type AppConfig struct {
	HTTPAddr string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	RedisAddr string
	RedisPass string

	JWTSecret  string
	SessionTTL time.Duration

	AllowedOrigins []string

	SeedDemoData bool
}

func Load() AppConfig {
	return AppConfig{
		HTTPAddr: getEnv("HTTP_ADDR", ":8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBPort:     getEnv("DB_PORT", "5432"),
		DBUser:     getEnv("DB_USER", "tamweeli"),
		DBPassword: getEnv("DB_PASSWORD", "tamweeli"),
		DBName:     getEnv("DB_NAME", "tamweeli"),

		RedisAddr: getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass: getEnv("REDIS_PASS", ""),

		JWTSecret:  getEnv("JWT_SECRET", "dev-only-secret"),
		SessionTTL: getEnvDuration("SESSION_TTL", 24*time.Hour),

		AllowedOrigins: []string{getEnv("ALLOWED_ORIGIN", "*")},

		SeedDemoData: getEnvBool("SEED_DEMO_DATA", true),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
