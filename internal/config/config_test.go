package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njchilds90/allometry"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_YAMLOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "allometry.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  addr: ":9090"
logging:
  level: debug
solver:
  root_policy: nonneg
  max_iterations: 50
batch:
  workers: 2
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format, "unset fields keep defaults")
	assert.Equal(t, 2, cfg.Batch.Workers)

	s := cfg.SolverSettings()
	assert.Equal(t, allometry.SmallestNonNegativeRoot, s.Policy)
	assert.Equal(t, 50, s.MaxIterations)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("ALLOMETRY_ADDR", "127.0.0.1:7000")
	t.Setenv("ALLOMETRY_LOG_LEVEL", "warn")
	t.Setenv("ALLOMETRY_BATCH_WORKERS", "3")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7000", cfg.Server.Addr)
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 3, cfg.Batch.Workers)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"level":   "logging:\n  level: loud\n",
		"format":  "logging:\n  format: xml\n",
		"policy":  "solver:\n  root_policy: largest\n",
		"workers": "batch:\n  workers: 0\n",
		"timeout": "server:\n  read_timeout: soon\n",
		"syntax":  "server: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "allometry.yaml")
	cfg := DefaultConfig()
	cfg.Server.Addr = ":1234"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestGetDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, GetDuration("5s", time.Minute))
	assert.Equal(t, time.Minute, GetDuration("bogus", time.Minute))
}
