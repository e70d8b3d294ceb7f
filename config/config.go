// Package config loads editor settings and key-binding overrides from an
// optional TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/pixelpen/raster"
)

// Config holds the editor's startup settings
type Config struct {
	Grid   GridConfig        `toml:"grid"`
	Export ExportConfig      `toml:"export"`
	Keys   map[string]string `toml:"keys"`
}

type GridConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type ExportConfig struct {
	Symbol string `toml:"symbol"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		Grid:   GridConfig{Width: 32, Height: 16},
		Export: ExportConfig{Symbol: "sprite"},
	}
}

// Load reads path over the defaults. A missing file is not an error;
// you only get one if the file exists and cannot be used.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config read: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config parse: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Grid.Width < 1 || c.Grid.Height < 1 {
		return fmt.Errorf("config: grid size %dx%d: %w", c.Grid.Width, c.Grid.Height, raster.ErrInvalidSize)
	}
	if c.Grid.Width > raster.MaxWidth || c.Grid.Height > raster.MaxHeight {
		return fmt.Errorf("config: grid size %dx%d: %w", c.Grid.Width, c.Grid.Height, raster.ErrSizeExceeded)
	}
	if c.Export.Symbol == "" {
		return fmt.Errorf("config: export symbol must not be empty")
	}
	return nil
}
