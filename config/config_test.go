package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/pathviz/config"
)

// clearEnv blanks every PATHVIZ_ variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		config.EnvRows, config.EnvWidthPx, config.EnvSeed, config.EnvAlgorithm,
		config.EnvLogLevel, config.EnvFrameDir, config.EnvFrameStride,
	} {
		t.Setenv(k, "")
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, 64, cfg.Rows)
	assert.Equal(t, 1280, cfg.WidthPx)
	assert.Equal(t, "astar", cfg.Algorithm)
}

func TestFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv(config.EnvRows, "32")
	t.Setenv(config.EnvWidthPx, "640")
	t.Setenv(config.EnvSeed, "7")
	t.Setenv(config.EnvAlgorithm, "BFS")
	t.Setenv(config.EnvLogLevel, "debug")
	t.Setenv(config.EnvFrameDir, "/tmp/frames")
	t.Setenv(config.EnvFrameStride, " 4 ")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.Config{
		Rows:        32,
		WidthPx:     640,
		Seed:        7,
		Algorithm:   "bfs",
		LogLevel:    "debug",
		FrameDir:    "/tmp/frames",
		FrameStride: 4,
	}, cfg)
}

func TestFromEnv_Invalid(t *testing.T) {
	cases := map[string]string{
		config.EnvRows:        "many",
		config.EnvSeed:        "0x",
		config.EnvFrameStride: "0",
		config.EnvWidthPx:     "10",
	}
	for key, val := range cases {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, val)
			_, err := config.FromEnv()
			assert.ErrorIs(t, err, config.ErrInvalidValue)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("PATHVIZ_ROWS=16\nPATHVIZ_WIDTH_PX=320\n"), 0o600))

	// an unset variable is taken from the file; a set one wins over it
	require.NoError(t, os.Unsetenv(config.EnvRows))
	t.Setenv(config.EnvWidthPx, "800")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Rows)
	assert.Equal(t, 800, cfg.WidthPx)
}

func TestLoad_MissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}
