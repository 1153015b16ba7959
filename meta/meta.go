// Package meta holds process-wide settings read from the environment.
package meta

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"

	"cerke/game"
	"cerke/perspective"
)

// DefaultMaxMoves bounds a soak game.
const DefaultMaxMoves = 300

// SaveFile is the name of the persisted game inside DataDir.
const SaveFile = "game.json"

type Config struct {
	LogLevel    string                  `env:"CERKE_LOG_LEVEL"   envDefault:"info"`
	Perspective perspective.Perspective `env:"CERKE_PERSPECTIVE" envDefault:"IaIsDownAndPointsUpward"`
	First       game.AbsoluteSide       `env:"CERKE_FIRST"       envDefault:"IASide"`
	DataDir     string                  `env:"CERKE_DATA_DIR"`
	MaxMoves    int                     `env:"CERKE_MAX_MOVES"   envDefault:"300"`
	Addr        string                  `env:"CERKE_ADDR"        envDefault:":8080"`
}

// Load reads the configuration and fills in the data directory.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DataDir == "" {
		cfg.DataDir = filepath.Join(xdg.DataHome, "cerke")
	}
	if cfg.MaxMoves <= 0 {
		return Config{}, fmt.Errorf("CERKE_MAX_MOVES must be positive, got %d", cfg.MaxMoves)
	}
	return cfg, nil
}

func (c Config) Level() (zerolog.Level, error) {
	return zerolog.ParseLevel(c.LogLevel)
}

func (c Config) SavePath() string {
	return filepath.Join(c.DataDir, SaveFile)
}

// EnsureDataDir creates the data directory if needed.
func (c Config) EnsureDataDir() error {
	if err := os.MkdirAll(c.DataDir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	return nil
}
