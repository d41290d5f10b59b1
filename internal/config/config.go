package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ErrQuoteAPIKeyMissing is returned when no quote provider API key is set.
// The service refuses to start without one.
var ErrQuoteAPIKeyMissing = errors.New("QUOTE_API_KEY is not set")

// Config holds all application settings parsed from the environment.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PostgresHost         string
	PostgresPort         int
	PostgresUser         string
	PostgresPassword     string
	PostgresDB           string
	PostgresMaxOpenConns int
	PostgresMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int

	QuoteAPIURL      string
	QuoteAPIKey      string
	QuoteCacheSecond int

	KafkaBrokers string // comma-separated; empty disables trade-event publishing
	KafkaTopic   string

	SessionExpSecond int
}

// Parse loads environment variables from the given file (if present) and
// returns the application configuration. The quote provider API key is
// mandatory; everything else has a default.
func Parse(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key, defaultValue string) (int, error) {
		return strconv.Atoi(getEnv(key, defaultValue))
	}

	cfg := &Config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresUser:     getEnv("POSTGRES_USER", "user"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "password"),
		PostgresDB:       getEnv("POSTGRES_DB", "database"),

		RedisHost:     getEnv("REDIS_HOST", "localhost"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),

		QuoteAPIURL: getEnv("QUOTE_API_URL", "https://cloud.iexapis.com/stable"),
		QuoteAPIKey: getEnv("QUOTE_API_KEY", ""),

		KafkaBrokers: getEnv("KAFKA_BROKERS", ""),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "trades"),
	}

	if cfg.QuoteAPIKey == "" {
		return nil, ErrQuoteAPIKeyMissing
	}

	var err error
	if cfg.PostgresPort, err = getEnvInt("POSTGRES_PORT", "5432"); err != nil {
		return nil, err
	}
	if cfg.PostgresMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", "16"); err != nil {
		return nil, err
	}
	if cfg.PostgresMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", "8"); err != nil {
		return nil, err
	}
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", "6379"); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", "0"); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", "10"); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", "2"); err != nil {
		return nil, err
	}
	if cfg.QuoteCacheSecond, err = getEnvInt("QUOTE_CACHE_SECOND", "60"); err != nil {
		return nil, err
	}
	if cfg.SessionExpSecond, err = getEnvInt("SESSION_EXP_SECOND", "86400"); err != nil {
		return nil, err
	}

	return cfg, nil
}
