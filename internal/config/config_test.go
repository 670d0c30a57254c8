package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rlestep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.Equal(t, DefaultFormat, cfg.Format)
	require.Equal(t, DefaultMaxSteps, cfg.MaxSteps)
	require.True(t, cfg.Descriptions)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Run("overrides defaults", func(t *testing.T) {
		path := writeConfig(t, "format: json\nmax_steps: 50\nverbose: true\n")
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "json", cfg.Format)
		require.Equal(t, 50, cfg.MaxSteps)
		require.True(t, cfg.Verbose)
		require.True(t, cfg.Descriptions, "unset fields keep defaults")
	})

	t.Run("invalid format", func(t *testing.T) {
		_, err := Load(writeConfig(t, "format: xml\n"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "invalid format")
	})

	t.Run("negative max steps", func(t *testing.T) {
		_, err := Load(writeConfig(t, "max_steps: -1\n"))
		require.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "format: [\n"))
		require.Error(t, err)
		require.Contains(t, err.Error(), "parse config")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
