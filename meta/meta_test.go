package meta

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"cerke/game"
	"cerke/perspective"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"CERKE_LOG_LEVEL", "CERKE_PERSPECTIVE", "CERKE_FIRST", "CERKE_DATA_DIR", "CERKE_MAX_MOVES", "CERKE_ADDR"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()

	require.NoError(t, err)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, perspective.IaIsDownAndPointsUpward, cfg.Perspective)
	require.Equal(t, game.IASide, cfg.First)
	require.Equal(t, filepath.Join(xdg.DataHome, "cerke"), cfg.DataDir)
	require.Equal(t, DefaultMaxMoves, cfg.MaxMoves)
	require.Equal(t, ":8080", cfg.Addr)
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CERKE_LOG_LEVEL", "debug")
	t.Setenv("CERKE_PERSPECTIVE", "IaIsUpAndPointsDownward")
	t.Setenv("CERKE_FIRST", "ASide")
	t.Setenv("CERKE_DATA_DIR", dir)
	t.Setenv("CERKE_MAX_MOVES", "12")
	t.Setenv("CERKE_ADDR", "127.0.0.1:9000")

	cfg, err := Load()

	require.NoError(t, err)
	level, err := cfg.Level()
	require.NoError(t, err)
	require.Equal(t, zerolog.DebugLevel, level)
	require.Equal(t, perspective.IaIsUpAndPointsDownward, cfg.Perspective)
	require.Equal(t, game.ASide, cfg.First)
	require.Equal(t, filepath.Join(dir, SaveFile), cfg.SavePath())
	require.Equal(t, 12, cfg.MaxMoves)
	require.Equal(t, "127.0.0.1:9000", cfg.Addr)

	require.NoError(t, cfg.EnsureDataDir())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"CERKE_PERSPECTIVE", "sideways"},
		{"CERKE_FIRST", "nobody"},
		{"CERKE_MAX_MOVES", "many"},
		{"CERKE_MAX_MOVES", "0"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
		})
	}

	_, err := Config{LogLevel: "loud"}.Level()
	require.Error(t, err)
}
