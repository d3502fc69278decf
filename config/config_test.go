package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load()
	require.NoError(t, err)

	assert.Equal(t, time.Second, c.TurnInterval)
	assert.Equal(t, 500*time.Millisecond, c.StepInterval)
	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "", c.SpectateAddr)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 1.0, c.Scale)
	assert.NotZero(t, c.DieSeed())
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("LUDO_TURN_INTERVAL", "2s")
	t.Setenv("LUDO_SEED", "42")
	t.Setenv("LUDO_SPECTATE_ADDR", ":9000")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 2*time.Second, c.TurnInterval)
	assert.Equal(t, int64(42), c.DieSeed())
	assert.Equal(t, ":9000", c.SpectateAddr)
}

func TestLoadFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "ludo.yaml")
	require.NoError(t, os.WriteFile(file, []byte("step_interval: 250ms\naddr: \":9090\"\n"), 0o644))
	t.Setenv("LUDO_CONFIG", file)
	t.Setenv("LUDO_ADDR", ":7070")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, c.StepInterval)
	// environment wins over the file
	assert.Equal(t, ":7070", c.Addr)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		t.Setenv("LUDO_CONFIG", filepath.Join(t.TempDir(), "none.yaml"))
		_, err := Load()
		assert.Error(t, err)
	})
	t.Run("zero interval", func(t *testing.T) {
		t.Setenv("LUDO_STEP_INTERVAL", "0s")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestSetupLogging(t *testing.T) {
	defer log.SetOutput(os.Stderr)
	defer log.SetLevel(log.InfoLevel)

	assert.Error(t, SetupLogging(Config{LogLevel: "loud"}))

	require.NoError(t, SetupLogging(Config{LogLevel: "debug"}))
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	file := filepath.Join(t.TempDir(), "ludo.log")
	require.NoError(t, SetupLogging(Config{LogLevel: "info", LogFile: file}))
	log.Info("hello")
	data, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}
