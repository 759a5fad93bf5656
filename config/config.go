// Package config loads the optional TOML settings file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/hourglass/core"
	"github.com/lixenwraith/hourglass/engine"
	"github.com/lixenwraith/hourglass/input"
	"github.com/lixenwraith/hourglass/parameter"
	"github.com/lixenwraith/hourglass/parameter/visual"
	"github.com/lixenwraith/hourglass/shape"
)

// File mirrors the TOML document
// Pointer fields distinguish an absent key from a zero value
type File struct {
	Duration  *float64          `toml:"duration"`
	Color     string            `toml:"color"`
	ColorMode string            `toml:"color_mode"`
	Shape     string            `toml:"shape"`
	Morph     *bool             `toml:"morph"`
	Sound     *bool             `toml:"sound"`
	Keys      map[string]string `toml:"keys"`
}

// Config is the validated settings set
type Config struct {
	Duration  float64
	Color     core.RGB
	ColorMode engine.ColorMode
	Shape     shape.Preset
	Morph     bool
	Sound     bool
	Keys      map[string]string
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Duration:  parameter.DefaultDuration,
		Color:     visual.RgbSandDefault,
		ColorMode: engine.ColorStatic,
		Shape:     shape.Classic,
		Sound:     true,
		Keys:      map[string]string{},
	}
}

// Load reads and validates a TOML file
// An empty path or a missing file yields the defaults without error
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("config: %s not found, using defaults", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes and validates TOML content over the defaults
func Parse(data []byte) (*Config, error) {
	var f File
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("config: unknown key %q", undecoded[0].String())
	}
	return f.validate()
}

func (f *File) validate() (*Config, error) {
	cfg := Default()

	if f.Duration != nil {
		d := *f.Duration
		if d <= 0 || d > parameter.MaxDuration {
			return nil, fmt.Errorf("config: duration: %g out of range (0, %g]", d, parameter.MaxDuration)
		}
		cfg.Duration = d
	}

	if f.Color != "" {
		c, err := core.ParseHex(f.Color)
		if err != nil {
			return nil, fmt.Errorf("config: color: %w", err)
		}
		cfg.Color = c
	}

	switch strings.ToLower(f.ColorMode) {
	case "", "static":
		cfg.ColorMode = engine.ColorStatic
	case "random":
		cfg.ColorMode = engine.ColorRandom
	case "rainbow":
		cfg.ColorMode = engine.ColorRainbow
	default:
		return nil, fmt.Errorf("config: color_mode: unknown mode %q", f.ColorMode)
	}

	if f.Shape != "" {
		p, err := shape.ParsePreset(f.Shape)
		if err != nil {
			return nil, fmt.Errorf("config: shape: %w", err)
		}
		cfg.Shape = p
	}

	if f.Morph != nil {
		cfg.Morph = *f.Morph
	}
	if f.Sound != nil {
		cfg.Sound = *f.Sound
	}

	// Validate key bindings against a scratch keymap so errors surface at load
	if len(f.Keys) > 0 {
		if err := input.DefaultKeymap().Override(f.Keys); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		cfg.Keys = f.Keys
	}

	return cfg, nil
}

// Apply seeds the runtime state and keymap
// Random color mode is realized by the caller pushing EventColorRandom
func (c *Config) Apply(res *engine.Resource, keymap *input.Keymap) error {
	res.Clock.AddTime(c.Duration - res.Clock.Duration())
	res.Config.SetColor(c.Color)
	res.Config.SetColorMode(c.ColorMode)
	res.Config.SetShape(int(c.Shape))
	if c.Morph {
		res.Config.SetShapeMode(engine.ShapeMorphing)
	} else {
		res.Config.SetShapeMode(engine.ShapeStatic)
	}
	if keymap != nil && len(c.Keys) > 0 {
		if err := keymap.Override(c.Keys); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}
