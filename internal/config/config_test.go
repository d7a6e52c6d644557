package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 3*time.Second, cfg.Notice.TTL)
	assert.Equal(t, 5, cfg.Events.Workers)
	assert.Equal(t, 100, cfg.Events.QueueSize)
	assert.True(t, decimal.NewFromInt(30000).Equal(cfg.Events.LargeTransferThreshold))
	assert.False(t, cfg.Journal.Enabled)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("NOTICE_TTL", "500ms")
	t.Setenv("LARGE_TRANSFER_THRESHOLD", "1000.50")
	t.Setenv("JOURNAL_ENABLED", "true")
	t.Setenv("POSTGRES_HOST", "db")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, 500*time.Millisecond, cfg.Notice.TTL)
	assert.True(t, decimal.RequireFromString("1000.50").Equal(cfg.Events.LargeTransferThreshold))
	assert.True(t, cfg.Journal.Enabled)
	assert.Equal(t, "db", cfg.Journal.DB.Host)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero notice ttl", key: "NOTICE_TTL", value: "0s"},
		{name: "zero workers", key: "EVENTS_WORKERS", value: "0"},
		{name: "negative threshold", key: "LARGE_TRANSFER_THRESHOLD", value: "-1"},
		{name: "bad threshold", key: "LARGE_TRANSFER_THRESHOLD", value: "lots"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestDBConfig_DSN(t *testing.T) {
	d := DBConfig{Host: "h", Port: "5432", User: "u", Password: "p", DBName: "treasury", SSLMode: "disable"}

	assert.Equal(t, "host=h port=5432 user=u password=p dbname=treasury sslmode=disable", d.DSN())
	assert.Equal(t, "postgres://u:p@h:5432/treasury?sslmode=disable", d.MigrationURL())
}
