// Package config loads the scene configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"
	"github.com/philipparndt/gomesh/pkg/geometry"
	"github.com/philipparndt/gomesh/pkg/render"
)

// ErrInvalid is returned for configurations that fail validation
var ErrInvalid = errors.New("invalid configuration")

// None disables a fill or stroke colour
const None = "none"

// Config is the full scene configuration
type Config struct {
	Screen     Screen     `toml:"screen"`
	Projection Projection `toml:"projection"`
	Scene      Scene      `toml:"scene"`
	Style      Style      `toml:"style"`
}

// Screen is the output size in pixels
type Screen struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

// Projection holds the field of view in degrees and the clip planes
type Projection struct {
	FOV  float64 `toml:"fov"`
	Near float64 `toml:"near"`
	Far  float64 `toml:"far"`
}

// Scene places the model and the light
type Scene struct {
	CameraDistance float64    `toml:"camera_distance"`
	Light          [3]float64 `toml:"light"`
	RotationStep   float64    `toml:"rotation_step"`
	Workers        int        `toml:"workers"`
}

// Style holds hex colours such as "#ff8800", or "none"
type Style struct {
	Fill   string `toml:"fill"`
	Stroke string `toml:"stroke"`
}

// Default returns the built-in configuration
func Default() Config {
	opts := render.DefaultOptions()
	return Config{
		Screen:     Screen{Width: opts.Width, Height: opts.Height},
		Projection: Projection{FOV: opts.FOV, Near: opts.Near, Far: opts.Far},
		Scene: Scene{
			CameraDistance: opts.Offset.Z,
			Light:          [3]float64{opts.Light.X, opts.Light.Y, opts.Light.Z},
			RotationStep:   opts.Step,
		},
		Style: Style{Fill: "#ffffff", Stroke: "#000000"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to open config: %w", err)
	}
	defer file.Close()

	cfg, err := Decode(file)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads TOML from r over the defaults and validates the result.
// Unknown keys are an error.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	decoder := toml.NewDecoder(r).DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%s: %w", strict.String(), ErrInvalid)
		}
		return Config{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration
func (c Config) Validate() error {
	if err := c.Options().Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if c.Scene.CameraDistance <= 0 {
		return fmt.Errorf("camera distance %v must be positive: %w", c.Scene.CameraDistance, ErrInvalid)
	}
	if _, _, err := c.Colors(); err != nil {
		return err
	}
	return nil
}

// Options converts the configuration into pipeline options
func (c Config) Options() render.Options {
	opts := render.DefaultOptions()
	opts.Width = c.Screen.Width
	opts.Height = c.Screen.Height
	opts.FOV = c.Projection.FOV
	opts.Near = c.Projection.Near
	opts.Far = c.Projection.Far
	opts.Offset = geometry.NewVector3(0, 0, c.Scene.CameraDistance)
	opts.Light = geometry.NewVector3(c.Scene.Light[0], c.Scene.Light[1], c.Scene.Light[2])
	opts.Step = c.Scene.RotationStep
	opts.Workers = c.Scene.Workers
	return opts
}

// Colors returns the parsed fill and stroke; nil means not drawn
func (c Config) Colors() (fill, stroke *color.RGBA, err error) {
	if fill, err = ParseColor(c.Style.Fill); err != nil {
		return nil, nil, fmt.Errorf("fill: %w", err)
	}
	if stroke, err = ParseColor(c.Style.Stroke); err != nil {
		return nil, nil, fmt.Errorf("stroke: %w", err)
	}
	return fill, stroke, nil
}

// ParseColor parses "#rrggbb" into an opaque colour, or None into nil
func ParseColor(s string) (*color.RGBA, error) {
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, None) {
		return nil, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("colour %q: %w", s, ErrInvalid)
	}
	r, g, b := c.RGB255()
	return &color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
