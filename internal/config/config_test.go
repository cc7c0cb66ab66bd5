package config

import (
	"ctchen222/noughts-and-crosses/internal/game"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Game.BoardSize)
	assert.Equal(t, game.Cross, cfg.HumanMark())
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
	assert.Empty(t, cfg.Telemetry.Endpoint)

	l := cfg.Layout()
	assert.Equal(t, 100, l.CellSize)
	assert.Equal(t, 10, l.Margin)
	assert.Equal(t, 3, l.Size)
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	t.Setenv("TTT_HUMAN_MARK", "o")
	t.Setenv("TTT_LOG_LEVEL", "debug")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, game.Nought, cfg.HumanMark())
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `log-level: info
game:
  board-size: 4
  human-mark: O
display:
  cell-size: 80
  margin: 5
telemetry:
  endpoint: otel-collector:4317
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Game.BoardSize)
	assert.Equal(t, game.Nought, cfg.HumanMark())
	assert.Equal(t, 80, cfg.Display.CellSize)
	assert.Equal(t, 5, cfg.Display.Margin)
	assert.Equal(t, "otel-collector:4317", cfg.Telemetry.Endpoint)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "board too small", key: "TTT_BOARD_SIZE", val: "2"},
		{name: "board too large", key: "TTT_BOARD_SIZE", val: "10"},
		{name: "unknown mark", key: "TTT_HUMAN_MARK", val: "Z"},
		{name: "unknown log level", key: "TTT_LOG_LEVEL", val: "loud"},
		{name: "margin wider than cell", key: "TTT_MARGIN", val: "100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestValidate_AfterOverride(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	cfg.Game.HumanMark = "x"
	assert.NoError(t, cfg.Validate())

	cfg.Game.BoardSize = 1
	assert.Error(t, cfg.Validate())
}
