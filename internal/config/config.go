package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings for the portal backend.
// Loaded once from the environment at startup and treated as immutable.
type Config struct {
	AppEnv     string
	ServerPort string

	// Postgres
	PGHost     string
	PGPort     string
	PGUser     string
	PGPassword string
	PGDatabase string

	// Sessions
	JWTSecret string
	TokenTTL  time.Duration

	// Cache
	CacheBackend  string // "memory" or "redis"
	AdminCacheTTL time.Duration
	RedisHost     string
	RedisPort     string
	RedisPassword string

	// Rate limiting for public form endpoints
	FormRatePerSec float64
	FormRateBurst  int

	// Resume uploads
	UploadsDir    string
	MaxResumeSize int64

	// CORS
	CORSAllowedOrigins []string
}

// Load reads the configuration from environment variables.
// Returns an error when a required variable is missing.
func Load() (*Config, error) {
	cfg := &Config{}

	var missing []string

	cfg.PGHost = os.Getenv("PG_HOST")
	if cfg.PGHost == "" {
		missing = append(missing, "PG_HOST")
	}
	cfg.PGUser = os.Getenv("PG_USER")
	if cfg.PGUser == "" {
		missing = append(missing, "PG_USER")
	}
	cfg.PGPassword = os.Getenv("PG_PASSWORD")
	if cfg.PGPassword == "" {
		missing = append(missing, "PG_PASSWORD")
	}
	cfg.PGDatabase = os.Getenv("PG_DB")
	if cfg.PGDatabase == "" {
		missing = append(missing, "PG_DB")
	}
	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	cfg.AppEnv = getEnvString("APP_ENV", "development")
	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.PGPort = getEnvString("PG_PORT", "5432")
	cfg.TokenTTL = getEnvDuration("TOKEN_TTL", 24*time.Hour)
	cfg.CacheBackend = getEnvString("CACHE_BACKEND", "memory")
	cfg.AdminCacheTTL = getEnvDuration("ADMIN_CACHE_TTL", 60*time.Second)
	cfg.RedisHost = getEnvString("REDIS_HOST", "localhost")
	cfg.RedisPort = getEnvString("REDIS_PORT", "6379")
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.FormRatePerSec = getEnvFloat("FORM_RATE_PER_SEC", 1)
	cfg.FormRateBurst = getEnvInt("FORM_RATE_BURST", 5)
	cfg.UploadsDir = getEnvString("UPLOADS_DIR", "./uploads")
	cfg.MaxResumeSize = getEnvInt64("MAX_RESUME_SIZE", 5*1024*1024)
	cfg.CORSAllowedOrigins = []string{getEnvString("CORS_ALLOWED_ORIGIN", "http://localhost:3000")}

	return cfg, nil
}

// PostgresDSN builds the connection string for both sqlx and GORM.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvInt64(key string, defaultVal int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return defaultVal
	}
	return i
}

func getEnvFloat(key string, defaultVal float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return defaultVal
	}
	return f
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return defaultVal
	}
	return d
}
