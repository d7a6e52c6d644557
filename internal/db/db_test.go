package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRunMigrations_EmptyArgs(t *testing.T) {
	assert.Error(t, RunMigrations("", "migrations"))
	assert.Error(t, RunMigrations("postgres://u:p@localhost:5432/db", ""))
}

func TestDefaultJournalPoolConfig(t *testing.T) {
	cfg := DefaultJournalPoolConfig(5)

	assert.Equal(t, 7, cfg.MaxConns)
	assert.Equal(t, 1, cfg.MinConns)
	assert.Equal(t, "treasury-simulator", cfg.ApplicationName)
}

func TestSleepCtx(t *testing.T) {
	assert.True(t, sleepCtx(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, sleepCtx(ctx, time.Minute))
}
