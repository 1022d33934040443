package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/slotreel/internal/layout"
)

// Bounds is the machine rectangle, anchored at its bottom-left corner.
type Bounds struct {
	X      float64 `yaml:"x" json:"x"`
	Y      float64 `yaml:"y" json:"y"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Config describes one slot machine.
type Config struct {
	Columns int     `yaml:"columns" json:"columns"`
	Rows    int     `yaml:"rows" json:"rows"`
	Speed   float64 `yaml:"speed" json:"speed"`

	// Bounds defaults to a unit cell per slot at the origin.
	Bounds *Bounds `yaml:"bounds,omitempty" json:"bounds,omitempty"`

	// Symbols is the reel strip shared by every reel. Defaults to DefaultSymbols.
	Symbols []string `yaml:"symbols,omitempty" json:"symbols,omitempty"`
}

// DefaultSymbols is the strip used when a config names none.
var DefaultSymbols = []string{"cherry", "lemon", "orange", "plum", "bell", "bar", "seven"}

// Default returns the classic five by three machine.
func Default() *Config {
	return &Config{
		Columns: 5,
		Rows:    3,
		Speed:   1,
	}
}

// GridSize returns (Columns, Rows).
func (c *Config) GridSize() layout.GridSize {
	return layout.GridSize{Columns: c.Columns, Rows: c.Rows}
}

// Rect returns the configured bounds, or a unit cell per slot at the origin.
func (c *Config) Rect() layout.Rect {
	if c.Bounds == nil {
		return layout.NewRect(0, 0, float64(c.Columns), float64(c.Rows))
	}
	return layout.NewRect(c.Bounds.X, c.Bounds.Y, c.Bounds.Width, c.Bounds.Height)
}

// SymbolStrip returns the configured strip or DefaultSymbols.
func (c *Config) SymbolStrip() []string {
	if len(c.Symbols) == 0 {
		return DefaultSymbols
	}
	return c.Symbols
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(path, data)
}

// Parse decodes and validates a configuration document. filename is only
// used for error positions.
func Parse(filename string, data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateSource(filename, data); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate runs the schema check on a config built in code.
func Validate(name string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return validateSource(name, data)
}
