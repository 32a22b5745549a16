package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	DBUrl       string
	DBMaxConns  int
	DBMinConns  int
	// Run GORM auto-migration at startup
	DBAutoMigrate bool
	// Save candidate and nested records in a single transaction
	IntakeAtomicSave bool
	AllowedOrigins   []string
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg := &Config{
		Port:                     getEnv("PORT", "8080"),
		Environment:              getEnv("APP_ENV", "development"),
		DBUrl:                    getEnv("DATABASE_URL", ""),
		DBMaxConns:               getEnvInt("DB_MAX_CONNS", 25),
		DBMinConns:               getEnvInt("DB_MIN_CONNS", 5),
		DBAutoMigrate:            getEnvBool("DB_AUTO_MIGRATE", true),
		IntakeAtomicSave:         getEnvBool("INTAKE_ATOMIC_SAVE", false),
		AllowedOrigins:           getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
		RedisURL:                 getEnv("REDIS_URL", ""),
		RedisPassword:            getEnv("REDIS_PASSWORD", ""),
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether APP_ENV is "production".
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// RateLimitWindow is the rate limit window as a duration.
func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping blanks.
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var items []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimRight(strings.TrimSpace(part), "/"); part != "" {
			items = append(items, part)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}
