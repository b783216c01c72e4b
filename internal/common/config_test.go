package common

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"DB_URL", "GRPC_ADDR", "WATCH_DIRS", "WATCH_INITIAL_SCAN",
		"WATCH_DEBOUNCE", "QUEUE_WORKERS", "QUEUE_SIZE", "QUEUE_PROCESS_TIMEOUT",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, ":8080", cfg.Server.GRPCAddr)
	assert.Empty(t, cfg.Ingest.WatchDirs)
	assert.True(t, cfg.Ingest.InitialScan)
	assert.Equal(t, 500*time.Millisecond, cfg.Ingest.Debounce)
	assert.Equal(t, 4, cfg.Queue.Workers)
	assert.Equal(t, 256, cfg.Queue.Size)
	assert.Equal(t, 3*time.Minute, cfg.Queue.ProcessTimeout)
	assert.Equal(t, int32(20), cfg.Database.MaxConns)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DB_URL", "postgres://localhost/instsys")
	t.Setenv("GRPC_ADDR", ":9090")
	t.Setenv("WATCH_DIRS", "/drop/a, /drop/b ,")
	t.Setenv("WATCH_INITIAL_SCAN", "false")
	t.Setenv("WATCH_DEBOUNCE", "2s")
	t.Setenv("QUEUE_WORKERS", "8")

	cfg := LoadConfig()

	assert.Equal(t, "postgres://localhost/instsys", cfg.Database.DSN)
	assert.Equal(t, ":9090", cfg.Server.GRPCAddr)
	assert.Equal(t, []string{"/drop/a", "/drop/b"}, cfg.Ingest.WatchDirs)
	assert.False(t, cfg.Ingest.InitialScan)
	assert.Equal(t, 2*time.Second, cfg.Ingest.Debounce)
	assert.Equal(t, 8, cfg.Queue.Workers)
}

func TestLoadConfigIgnoresMalformedValues(t *testing.T) {
	t.Setenv("QUEUE_WORKERS", "many")
	t.Setenv("WATCH_DEBOUNCE", "soon")

	cfg := LoadConfig()

	assert.Equal(t, 4, cfg.Queue.Workers)
	assert.Equal(t, 500*time.Millisecond, cfg.Ingest.Debounce)
}

func TestConfigValidate(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{DSN: "postgres://localhost/instsys"},
		Server:   ServerConfig{GRPCAddr: ":8080"},
	}
	require.NoError(t, cfg.Validate())

	cfg.Database.DSN = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)

	var appErr *AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CONFIG_ERROR", appErr.Code)

	cfg.Database.DSN = "postgres://localhost/instsys"
	cfg.Server.GRPCAddr = ""
	assert.Error(t, cfg.Validate())
}
