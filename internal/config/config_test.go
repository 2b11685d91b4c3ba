package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8181", cfg.Server.Addr)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "2025-01-17", cfg.Calendar.SelectedDate)
	assert.Equal(t, "#3b82f6", cfg.Shell.Splash.BackgroundColor)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	yaml := `
server:
  addr: ":9000"
calendar:
  timezone: Europe/Warsaw
  today: "2025-01-17"
cors:
  allowedorigins:
    - https://shell.example.com
shell:
  appname: Clinic
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))
	t.Setenv("BOOKWELL_SERVER_ADDR", ":9100")
	t.Setenv("BOOKWELL_RATELIMIT_ENABLED", "false")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.Server.Addr, "env overrides file")
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "2025-01-17", cfg.Calendar.Today)
	assert.Equal(t, []string{"https://shell.example.com"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, "Clinic", cfg.Shell.AppName)
	assert.Equal(t, "dist", cfg.Shell.WebDir, "untouched defaults survive")

	loc, err := cfg.Calendar.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Warsaw", loc.String())
}

func TestLoad_EnvList(t *testing.T) {
	t.Setenv("BOOKWELL_CORS_ALLOWEDORIGINS", "http://localhost:5173,capacitor://localhost")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, []string{"http://localhost:5173", "capacitor://localhost"}, cfg.Cors.AllowedOrigins)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "application.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [unterminated"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestCalendar_LocationUnknown(t *testing.T) {
	_, err := Calendar{Timezone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}
