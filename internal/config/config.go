package config

import (
	"ctchen222/noughts-and-crosses/internal/display"
	"ctchen222/noughts-and-crosses/internal/game"
	"ctchen222/noughts-and-crosses/internal/validator"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string    `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"warn" validate:"oneof=debug info warn error"`
	Game      Game      `yaml:"game"`
	Display   Display   `yaml:"display"`
	Telemetry Telemetry `yaml:"telemetry"`
}

type Game struct {
	BoardSize int    `yaml:"board-size" env:"TTT_BOARD_SIZE" env-default:"3" validate:"min=3,max=9"`
	HumanMark string `yaml:"human-mark" env:"TTT_HUMAN_MARK" env-default:"X" validate:"mark"`
}

type Display struct {
	CellSize int `yaml:"cell-size" env:"TTT_CELL_SIZE" env-default:"100" validate:"min=1"`
	Margin   int `yaml:"margin" env:"TTT_MARGIN" env-default:"10" validate:"min=0,ltfield=CellSize"`
}

type Telemetry struct {
	// Endpoint is an OTLP gRPC collector address. Empty disables export.
	Endpoint string `yaml:"endpoint" env:"TTT_OTEL_ENDPOINT" env-default:""`
}

// Load reads the config file at path, if it exists, then the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	read := cleanenv.ReadEnv
	if path != "" {
		_, err := os.Stat(path)
		switch {
		case err == nil:
			read = func(cfg any) error { return cleanenv.ReadConfig(path, cfg) }
		case !errors.Is(err, os.ErrNotExist):
			return nil, fmt.Errorf("unable to stat config file: %w", err)
		}
	}
	if err := read(cfg); err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints. It is called by Load and again after
// command-line overrides.
func (c *Config) Validate() error {
	if err := validator.GetValidator().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// HumanMark returns the parsed mark for the human player.
func (c *Config) HumanMark() game.Mark {
	m, err := game.ParseMark(c.Game.HumanMark)
	if err != nil {
		return game.Cross
	}
	return m
}

// Layout returns the screen layout for the configured board.
func (c *Config) Layout() display.Layout {
	return display.Layout{
		CellSize: c.Display.CellSize,
		Margin:   c.Display.Margin,
		Size:     c.Game.BoardSize,
	}
}

// SlogLevel converts LogLevel for the logger.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
