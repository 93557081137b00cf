package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Env      string
	Port     string
	LogLevel string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPath     string

	JWTSecret     string
	JWTExpiration time.Duration

	// CDNRoot prefixes relative asset paths such as avatar thumbnails.
	CDNRoot string
	// APIBaseURL makes the dashboard read lists over HTTP instead of in-process.
	APIBaseURL string
	// RedisAddr enables the redis flash store. Empty keeps messages in memory.
	RedisAddr string

	SessionCacheSize int
}

// Load reads .env (if present) and the process environment.
func Load() AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}

	cfg := AppConfig{
		Env:              get("APP_ENV", "development"),
		Port:             get("PORT", "8080"),
		LogLevel:         get("LOG_LEVEL", "info"),
		DBDriver:         get("DB_DRIVER", "postgres"),
		DBHost:           get("DB_HOST", "localhost"),
		DBPort:           get("DB_PORT", "5432"),
		DBUser:           get("DB_USER", "postgres"),
		DBPassword:       get("DB_PASSWORD", ""),
		DBName:           get("DB_NAME", "backoffice"),
		DBPath:           get("DB_PATH", "backoffice.db"),
		JWTSecret:        get("JWT_SECRET", ""),
		JWTExpiration:    parseDuration(get("JWT_EXPIRATION", "24h"), 24*time.Hour),
		CDNRoot:          get("CDN_ROOT", ""),
		APIBaseURL:       get("API_BASE_URL", ""),
		RedisAddr:        get("REDIS_ADDR", ""),
		SessionCacheSize: parseInt(get("SESSION_CACHE_SIZE", "256"), 256),
	}

	SetJWT(cfg.JWTSecret, cfg.JWTExpiration)
	return cfg
}

func (c AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func parseDuration(v string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func parseInt(v string, def int) int {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
