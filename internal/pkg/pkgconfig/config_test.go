package pkgconfig

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViper(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
app:
  name: amviajes
  server:
    address:
      http: ":8080"
modules:
  amviajes:
    enabled: true
    search:
      max_passengers: 10
    airports:
      load_timeout: 3s
    events:
      kafka:
        brokers:
          - localhost:9092
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := NewViper(path)
	require.NoError(t, err)
	defer cfg.Close()

	assert.Equal(t, "amviajes", cfg.GetString("app.name"))
	assert.Equal(t, ":8080", cfg.GetString("app.server.address.http"))
	assert.True(t, cfg.GetBool("modules.amviajes.enabled"))
	assert.Equal(t, 10, cfg.GetInt("modules.amviajes.search.max_passengers"))
	assert.Equal(t, 3*time.Second, cfg.GetDuration("modules.amviajes.airports.load_timeout"))
	assert.Equal(t, []string{"localhost:9092"}, cfg.GetStringSlice("modules.amviajes.events.kafka.brokers"))
}

func TestNewViper_EnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("app:\n  name: amviajes\n"), 0o600))
	t.Setenv("APP_NAME", "override")

	cfg, err := NewViper(path)
	require.NoError(t, err)

	assert.Equal(t, "override", cfg.GetString("app.name"))
}

func TestNewViper_MissingFile(t *testing.T) {
	_, err := NewViper(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
