package app

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "file")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, BackendFile, cfg.StorageBackend)
	require.Equal(t, 50, cfg.HistorySize)
	require.False(t, cfg.IsProduction())
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "cassandra")
	_, err := LoadConfig()
	require.Error(t, err)
	require.Contains(t, err.Error(), "cassandra")
}

func TestConfigValidateBcryptCost(t *testing.T) {
	cfg := Config{StorageBackend: BackendBolt, BoltPath: "x.db", BcryptCost: 99, HistorySize: 1, PreferencesPath: "p.yaml"}
	require.Error(t, cfg.Validate())
	cfg.BcryptCost = 10
	require.NoError(t, cfg.Validate())
}

func TestNewLoggerFormatAndLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&Config{LogFormat: "json", LogLevel: "warn"}, &buf)
	logger.Info("hidden")
	logger.Warn("shown", slog.String("k", "v"))

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.True(t, strings.HasPrefix(out, "{"))
	require.Contains(t, out, `"k":"v"`)
}

func TestPreferencesCreatedWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")

	prefs, err := LoadPreferences(path)
	require.NoError(t, err)
	require.False(t, prefs.PermanentAdmin)
	require.False(t, prefs.HasMasterPassword())
	require.FileExists(t, path)

	prefs.PermanentAdmin = true
	prefs.MasterPasswordHash = "$2a$04$hash"
	require.NoError(t, SavePreferences(path, prefs))

	again, err := LoadPreferences(path)
	require.NoError(t, err)
	require.Equal(t, prefs, again)
}

func TestBcryptCostInTestMode(t *testing.T) {
	t.Cleanup(RefreshTestMode)
	t.Setenv(testModeEnv, "1")
	RefreshTestMode()
	require.Equal(t, 4, BcryptCost(&Config{BcryptCost: 12}))
}
