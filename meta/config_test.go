package meta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tron.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		config, err := Load("")

		require.NoError(t, err)
		require.Equal(t, Default(), config)
	})

	t.Run("file overrides defaults", func(t *testing.T) {
		path := writeConfig(t, `
addr: ":9000"
maxDepth: 6
seed: 12
experiment:
  games: 3
  depths: [0, 3]
`)

		config, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, ":9000", config.Addr)
		require.Equal(t, 6, config.MaxDepth)
		require.Equal(t, uint64(12), config.Seed)
		require.Equal(t, DefaultWidth, config.Width, "Unset fields should keep their defaults")
		require.Equal(t, 3, config.Experiment.Games)
		require.Equal(t, []int{0, 3}, config.Experiment.Depths)
	})

	t.Run("rejects invalid values", func(t *testing.T) {
		path := writeConfig(t, "maxDepth: -1\n")

		_, err := Load(path)

		require.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("reports unreadable files", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

		require.Error(t, err)
	})

	t.Run("reports malformed yaml", func(t *testing.T) {
		path := writeConfig(t, "maxDepth: [\n")

		_, err := Load(path)

		require.Error(t, err)
		require.NotErrorIs(t, err, ErrInvalidConfig)
	})
}
