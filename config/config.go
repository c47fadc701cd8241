// Package config loads the hexfield settings file. A copy under config/ on
// disk takes precedence over the embedded default so settings can be edited
// while the game runs.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/hexfield/property"
)

// DefaultFile is the settings file loaded when no other name is given.
const DefaultFile = "hexfield.yaml"

type Config struct {
	Window     WindowConfig   `yaml:"window"`
	Field      FieldConfig    `yaml:"field"`
	Physics    PhysicsConfig  `yaml:"physics"`
	Log        LogConfig      `yaml:"log"`
	HUD        HUDConfig      `yaml:"hud"`
	Properties []PropertySpec `yaml:"properties"`
	Scripts    []string       `yaml:"scripts"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type FieldConfig struct {
	// Size is the edge length of the square odd-r field, in cells.
	Size int `yaml:"size"`
	// TileSize is the on-screen width of one tile in pixels.
	TileSize float64 `yaml:"tile_size"`
	// SpinCenter starts the centre tile rotating.
	SpinCenter bool `yaml:"spin_center"`
}

type PhysicsConfig struct {
	Iterations int     `yaml:"iterations"`
	Damping    float64 `yaml:"damping"`
	// DespawnMargin is how far outside the field, in tiles, a body may
	// travel before it is removed.
	DespawnMargin float64 `yaml:"despawn_margin"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type HUDConfig struct {
	Hidden      bool `yaml:"hidden"`
	PlotSamples int  `yaml:"plot_samples"`
}

// PropertySpec seeds a property at startup.
type PropertySpec struct {
	Name  string    `yaml:"name"`
	Kind  string    `yaml:"kind"`
	Value yaml.Node `yaml:"value"`
}

// Default returns the settings used for any field the file leaves empty.
func Default() Config {
	return Config{
		Window:  WindowConfig{Title: "hexfield", Width: 1280, Height: 800},
		Field:   FieldConfig{Size: 11, TileSize: 56},
		Physics: PhysicsConfig{Iterations: 10, Damping: 0.6, DespawnMargin: 3},
		Log:     LogConfig{Level: "info"},
		HUD:     HUDConfig{PlotSamples: 400},
	}
}

// LoadConfig reads and validates the named settings file.
func LoadConfig(name string) (*Config, error) {
	if name == "" {
		name = DefaultFile
	}
	data, err := Load(name)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", name, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", name, err)
	}
	return cfg, nil
}

// Parse decodes data on top of Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Window.Title == "" {
		c.Window.Title = def.Window.Title
	}
	if c.Window.Width <= 0 {
		c.Window.Width = def.Window.Width
	}
	if c.Window.Height <= 0 {
		c.Window.Height = def.Window.Height
	}
	if c.Field.Size <= 0 {
		c.Field.Size = def.Field.Size
	}
	if c.Field.TileSize <= 0 {
		c.Field.TileSize = def.Field.TileSize
	}
	if c.Physics.Iterations <= 0 {
		c.Physics.Iterations = def.Physics.Iterations
	}
	if c.Physics.DespawnMargin <= 0 {
		c.Physics.DespawnMargin = def.Physics.DespawnMargin
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.HUD.PlotSamples <= 0 {
		c.HUD.PlotSamples = def.HUD.PlotSamples
	}
}

// Validate checks that every property seed can be decoded.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	seen := make(map[string]struct{}, len(c.Properties))
	for i, p := range c.Properties {
		if p.Name == "" {
			return fmt.Errorf("properties[%d]: missing name", i)
		}
		if _, dup := seen[p.Name]; dup {
			return fmt.Errorf("properties[%d]: duplicate name %q", i, p.Name)
		}
		seen[p.Name] = struct{}{}
		if _, err := p.PropertyValue(); err != nil {
			return fmt.Errorf("properties[%d] %s: %w", i, p.Name, err)
		}
	}
	return nil
}

// LogLevel returns the parsed log level, defaulting to info.
func (c *Config) LogLevel() zerolog.Level {
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// PropertyValue decodes the seed value according to Kind. A missing value
// yields the zero value of the kind.
func (p PropertySpec) PropertyValue() (property.Value, error) {
	kind, err := property.ParseKind(p.Kind)
	if err != nil {
		return property.None(), err
	}
	empty := p.Value.Kind == 0
	switch kind {
	case property.KindBool:
		var b bool
		if !empty {
			if err := p.Value.Decode(&b); err != nil {
				return property.None(), fmt.Errorf("bool value: %w", err)
			}
		}
		return property.Bool(b), nil
	case property.KindText:
		var s string
		if !empty {
			if err := p.Value.Decode(&s); err != nil {
				return property.None(), fmt.Errorf("text value: %w", err)
			}
		}
		return property.Text(s), nil
	case property.KindColor:
		var c Color
		if !empty {
			if err := p.Value.Decode(&c); err != nil {
				return property.None(), fmt.Errorf("color value: %w", err)
			}
		}
		return property.Color(c[0], c[1], c[2]), nil
	default:
		return property.None(), nil
	}
}

// Color is an RGB triple written either as "#rrggbb" or as a list of three
// numbers in [0, 1].
type Color [3]float32

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		s := strings.TrimPrefix(value.Value, "#")
		if len(s) != 6 {
			return fmt.Errorf("invalid color format: %s", value.Value)
		}
		for i := 0; i < 3; i++ {
			v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
			if err != nil {
				return fmt.Errorf("invalid color format: %s", value.Value)
			}
			c[i] = float32(v) / 255
		}
		return nil
	case yaml.SequenceNode:
		var rgb []float32
		if err := value.Decode(&rgb); err != nil {
			return err
		}
		if len(rgb) != 3 {
			return fmt.Errorf("color needs 3 channels, got %d", len(rgb))
		}
		for i, v := range rgb {
			if v < 0 || v > 1 {
				return fmt.Errorf("color channel %d out of range: %g", i, v)
			}
			c[i] = v
		}
		return nil
	default:
		return fmt.Errorf("color must be a string or a list")
	}
}
