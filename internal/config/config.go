package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken string

	EsimBaseURL    string
	EsimAccessCode string

	RateMarketURL  string
	RateCentralURL string
	RatePair       string
	RateCurrency   string
	RateFallback   float64
	RateCacheTTL   time.Duration
	SessionTTL     time.Duration

	Port        string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSSLMode   string
	AutoMigrate bool
	GinMode     string
}

func Load() *Config {
	// Local development convenience; a missing .env file is not an error.
	_ = godotenv.Load()

	return &Config{
		BotToken: getEnv("BOT_TOKEN", ""),

		EsimBaseURL:    getEnv("ESIM_BASE_URL", "https://api.esimaccess.com/api/v1/open"),
		EsimAccessCode: getEnv("ESIM_ACCESS_CODE", ""),

		RateMarketURL:  getEnv("RATE_MARKET_URL", "https://api.rapira.net/open/market/rates"),
		RateCentralURL: getEnv("RATE_CENTRAL_URL", "https://www.cbr-xml-daily.ru/daily_json.js"),
		RatePair:       getEnv("RATE_PAIR", "USDT/RUB"),
		RateCurrency:   getEnv("RATE_CURRENCY", "USD"),
		RateFallback:   getEnvFloat("RATE_FALLBACK", 95.0),
		RateCacheTTL:   getEnvDuration("RATE_CACHE_TTL", 300*time.Second),
		SessionTTL:     getEnvDuration("SESSION_TTL", time.Hour),

		Port:        getEnv("PORT", "8080"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "esimstore"),
		DBPassword:  getEnv("DB_PASSWORD", "esimstore_secret"),
		DBName:      getEnv("DB_NAME", "esimstore"),
		DBSSLMode:   getEnv("DB_SSLMODE", "disable"),
		AutoMigrate: getEnv("AUTO_MIGRATE", "false") == "true",
		GinMode:     getEnv("GIN_MODE", "debug"),
	}
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
