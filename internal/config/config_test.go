package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse_Defaults(t *testing.T) {
	os.Clearenv()
	os.Setenv("QUOTE_API_KEY", "test-key")

	cfg, err := Parse("does-not-exist.env")
	assert.NoError(t, err)

	assert.Equal(t, "localhost", cfg.AppHost)
	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 5432, cfg.PostgresPort)
	assert.Equal(t, 16, cfg.PostgresMaxOpenConns)
	assert.Equal(t, 6379, cfg.RedisPort)
	assert.Equal(t, "test-key", cfg.QuoteAPIKey)
	assert.Equal(t, 60, cfg.QuoteCacheSecond)
	assert.Equal(t, 86400, cfg.SessionExpSecond)
	assert.Equal(t, "", cfg.KafkaBrokers)
	assert.Equal(t, "trades", cfg.KafkaTopic)
}

func TestParse_MissingQuoteAPIKey(t *testing.T) {
	os.Clearenv()

	cfg, err := Parse("does-not-exist.env")
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrQuoteAPIKeyMissing)
}

func TestParse_Overrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("QUOTE_API_KEY", "k")
	os.Setenv("APP_PORT", "9000")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("KAFKA_BROKERS", "localhost:9092,localhost:9093")

	cfg, err := Parse("does-not-exist.env")
	assert.NoError(t, err)
	assert.Equal(t, "9000", cfg.AppPort)
	assert.Equal(t, 5433, cfg.PostgresPort)
	assert.Equal(t, "localhost:9092,localhost:9093", cfg.KafkaBrokers)
}

func TestParse_InvalidInt(t *testing.T) {
	os.Clearenv()
	os.Setenv("QUOTE_API_KEY", "k")
	os.Setenv("POSTGRES_PORT", "not-a-number")

	_, err := Parse("does-not-exist.env")
	assert.Error(t, err)
}

func TestParse_EnvFile(t *testing.T) {
	os.Clearenv()

	f, err := os.CreateTemp(t.TempDir(), "config-*.env")
	assert.NoError(t, err)
	_, err = f.WriteString("QUOTE_API_KEY=file-key\nAPP_HOST=0.0.0.0\n")
	assert.NoError(t, err)
	f.Close()

	cfg, err := Parse(f.Name())
	assert.NoError(t, err)
	assert.Equal(t, "file-key", cfg.QuoteAPIKey)
	assert.Equal(t, "0.0.0.0", cfg.AppHost)
}
