package app

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config represents the simulation and window parameters.
type Config struct {
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Density    float64 `yaml:"density"`
	Scale      int     `yaml:"scale"`
	Speed      int     `yaml:"speed"`
	Seed       int64   `yaml:"seed"`
	PanelWidth int     `yaml:"panel_width"`
}

// NewConfig returns a Config populated with the stock setup: a 50x50 board
// seeded at 20% density.
func NewConfig() *Config {
	return &Config{
		Width:      50,
		Height:     50,
		Density:    0.2,
		Scale:      10,
		Speed:      10,
		Seed:       42,
		PanelWidth: 260,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "seeding density in [0,1]")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.Speed, "speed", c.Speed, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board randomization")
	fs.IntVar(&c.PanelWidth, "panel-width", c.PanelWidth, "control panel width in pixels")
}

// LoadFile overlays values from a YAML file onto the config. Keys absent
// from the file keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}
