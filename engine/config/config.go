// Package config loads the viewer's YAML configuration. A file only needs the fields
// it changes: it is merged over the preset named by its variant key.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/Carmen-Shannon/floatarts/common"
	"github.com/Carmen-Shannon/floatarts/engine/transform"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// Variant preset names.
const (
	VariantQuad = "quad"
	VariantCube = "cube"
	VariantLit  = "lit"

	// DefaultVariant is used when neither the file nor the command line names one.
	DefaultVariant = VariantLit
)

// Backend names.
const (
	BackendGL   = "gl"
	BackendWGPU = "wgpu"
)

var errInvalid = errors.New("invalid config")

// Config is the complete viewer configuration.
type Config struct {
	Variant    string     `yaml:"variant"`
	Backend    string     `yaml:"backend"`
	Texture    string     `yaml:"texture"`
	Profiling  bool       `yaml:"profiling"`
	ClearColor [4]float32 `yaml:"clear_color"`

	// MSAA is the WebGPU sample count, 1 or 4. The GL backend ignores it.
	MSAA uint32 `yaml:"msaa"`

	Window     WindowConfig     `yaml:"window"`
	Projection ProjectionConfig `yaml:"projection"`
	Camera     CameraConfig     `yaml:"camera"`
	Animation  AnimationConfig  `yaml:"animation"`
	Light      LightConfig      `yaml:"light"`

	// Keys overrides key codes per action name ("forward", "boost", ...).
	Keys map[string]int `yaml:"keys,omitempty"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	VSync  bool   `yaml:"vsync"`
}

type ProjectionConfig struct {
	Fov  float32 `yaml:"fov"`
	Near float32 `yaml:"near"`
	Far  float32 `yaml:"far"`
}

type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Facing      [3]float32 `yaml:"facing"`
	BaseSpeed   float32    `yaml:"base_speed"`
	BoostSpeed  float32    `yaml:"boost_speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	PitchLimit  float32    `yaml:"pitch_limit"`
}

type AnimationConfig struct {
	Increment float32  `yaml:"increment"`
	Ceiling   *float32 `yaml:"ceiling"`
	Scale     float32  `yaml:"scale"`
}

type LightConfig struct {
	Position    [3]float32 `yaml:"position"`
	Color       [4]float32 `yaml:"color"`
	MarkerScale float32    `yaml:"marker_scale"`
}

// Default returns the preset for a variant.
//
// Parameters:
//   - variant: one of VariantQuad, VariantCube or VariantLit
//
// Returns:
//   - Config: the preset
//   - error: if the variant is unknown
func Default(variant string) (Config, error) {
	c := Config{
		Variant:    variant,
		Backend:    BackendGL,
		Texture:    "assets/textures/brick.png",
		ClearColor: [4]float32{1, 1, 1, 1},
		MSAA:       1,
		Window:     WindowConfig{Title: "Float Arts", Width: 1920, Height: 1080, VSync: true},
		Projection: ProjectionConfig{Fov: 45, Near: 0.1, Far: 1000},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0, 2},
			Facing:      [3]float32{0, 0, -1},
			BaseSpeed:   0.1,
			BoostSpeed:  0.4,
			Sensitivity: 100,
			PitchLimit:  85,
		},
		Light: LightConfig{
			Position:    [3]float32{0.5, 0.5, 0.5},
			Color:       [4]float32{1, 1, 1, 1},
			MarkerScale: 0.1,
		},
	}

	switch variant {
	case VariantQuad:
		c.Animation = AnimationConfig{Scale: 0.5}
	case VariantCube:
		ceiling := float32(10400)
		c.Animation = AnimationConfig{Increment: 30, Ceiling: &ceiling}
	case VariantLit:
		c.Animation = AnimationConfig{Increment: 0.5}
		c.ClearColor = [4]float32{0.07, 0.13, 0.17, 1}
	default:
		return Config{}, fmt.Errorf("%w: unknown variant %q", errInvalid, variant)
	}
	return c, nil
}

// Load reads a YAML file and merges it over the preset for its variant. The variant
// argument, when non-empty, overrides the file's variant key. An empty path yields the
// plain preset.
//
// Parameters:
//   - path: the YAML file path, or "" for no file
//   - variant: a variant override, or "" to use the file's
//
// Returns:
//   - Config: the merged, validated configuration
//   - error: wraps common.ErrInitialization on read, parse or validation failure
func Load(path, variant string) (Config, error) {
	var raw []byte
	if path != "" {
		var err error
		raw, err = os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("%w: read config: %w", common.ErrInitialization, err)
		}
	}

	var head struct {
		Variant string `yaml:"variant"`
	}
	if err := yaml.Unmarshal(raw, &head); err != nil {
		return Config{}, fmt.Errorf("%w: parse config %s: %w", common.ErrInitialization, path, err)
	}
	name := common.Coalesce(variant, head.Variant, DefaultVariant)

	c, err := Default(name)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", common.ErrInitialization, err)
	}
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return Config{}, fmt.Errorf("%w: parse config %s: %w", common.ErrInitialization, path, err)
	}
	c.Variant = name

	if err := c.Validate(); err != nil {
		return Config{}, fmt.Errorf("%w: %w", common.ErrInitialization, err)
	}
	return c, nil
}

// Validate checks ranges that would otherwise produce a degenerate camera or projection.
//
// Returns:
//   - error: the first problem found, or nil
func (c Config) Validate() error {
	switch {
	case c.Backend != BackendGL && c.Backend != BackendWGPU:
		return fmt.Errorf("%w: backend %q, want %q or %q", errInvalid, c.Backend, BackendGL, BackendWGPU)
	case c.MSAA != 1 && c.MSAA != 4:
		return fmt.Errorf("%w: msaa %d, want 1 or 4", errInvalid, c.MSAA)
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", errInvalid, c.Window.Width, c.Window.Height)
	case c.Projection.Fov <= 0 || c.Projection.Fov >= 180:
		return fmt.Errorf("%w: fov %v outside (0, 180)", errInvalid, c.Projection.Fov)
	case c.Projection.Near <= 0 || c.Projection.Far <= c.Projection.Near:
		return fmt.Errorf("%w: clip planes near %v far %v", errInvalid, c.Projection.Near, c.Projection.Far)
	case c.Camera.Facing == [3]float32{}:
		return fmt.Errorf("%w: camera facing is zero", errInvalid)
	case c.Camera.PitchLimit <= 0 || c.Camera.PitchLimit >= 90:
		return fmt.Errorf("%w: pitch limit %v outside (0, 90)", errInvalid, c.Camera.PitchLimit)
	case facingTilt(c.Camera.Facing) > c.Camera.PitchLimit:
		return fmt.Errorf("%w: camera facing %v tilts %.1f degrees from the horizon, limit %v",
			errInvalid, c.Camera.Facing, facingTilt(c.Camera.Facing), c.Camera.PitchLimit)
	case c.Texture == "":
		return fmt.Errorf("%w: no texture path", errInvalid)
	}
	if _, err := c.KeyBindings(); err != nil {
		return err
	}
	return nil
}

// facingTilt returns the angle in degrees between facing and the horizontal plane of
// the +Y up vector the camera is built with.
func facingTilt(facing [3]float32) float32 {
	angle := common.AngleBetween(mgl32.Vec3(facing), mgl32.Vec3{0, 1, 0})
	return mgl32.RadToDeg(common.Abs32(angle - math.Pi/2))
}

// KeyBindings returns the default bindings with the file's overrides applied.
//
// Returns:
//   - [common.ActionCount]int: key code per action
//   - error: if an override names an unknown action
func (c Config) KeyBindings() ([common.ActionCount]int, error) {
	bindings := common.DefaultKeyBindings
	for name, key := range c.Keys {
		found := false
		for a := common.Action(0); int(a) < common.ActionCount; a++ {
			if a.String() == name {
				bindings[a] = key
				found = true
				break
			}
		}
		if !found {
			return bindings, fmt.Errorf("%w: unknown key action %q", errInvalid, name)
		}
	}
	return bindings, nil
}

// TransformVariant converts the configuration into the composer's variant switches.
//
// Returns:
//   - transform.Variant: the variant
func (c Config) TransformVariant() transform.Variant {
	lit := c.Variant == VariantLit
	return transform.Variant{
		Name:       c.Variant,
		Quad:       c.Variant == VariantQuad,
		HasLight:   lit,
		HasNormals: lit,
		Increment:  c.Animation.Increment,
		Ceiling:    c.Animation.Ceiling,
		Scale:      c.Animation.Scale,
	}
}
