// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration of the labs app,
// stored as a TOML file that is reloaded when it changes.
package config

import (
	"bytes"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/scenegraph/base/errors"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// DefaultFile is the config file used when none is given.
const DefaultFile = "~/.config/labs/labs.toml"

// Config is the main config struct for the labs app.
type Config struct {

	// Title is the window title.
	Title string `toml:"title"`

	// Width and Height are the window size in pixels.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	// TPS is the number of frames (ticks) per second.
	TPS int `toml:"tps"`

	// Mode is the draw mode: solid, lines or points.
	Mode string `toml:"mode"`

	// Background is the clear color as a hex string.
	Background string `toml:"background"`

	// PointSize is the size in pixels of points in points mode
	// and for pointer-aware point grids.
	PointSize float32 `toml:"point_size"`

	// LogLevel is the minimum level logged: debug, info, warn or error.
	LogLevel string `toml:"log_level"`

	// Camera configures the view and projection.
	Camera Camera `toml:"camera"`

	// Lab configures the lab scene contents.
	Lab Lab `toml:"lab"`

	// Textures maps texture names to image files, relative to TextureDir.
	Textures map[string]string `toml:"textures"`

	// TextureDir is the directory texture files are read from.
	TextureDir string `toml:"texture_dir"`

	// FlipTextures flips texture images so row 0 is the bottom.
	FlipTextures bool `toml:"flip_textures"`

	// MaxTextureSize limits the size of textures, if positive.
	MaxTextureSize int `toml:"max_texture_size"`
}

// Camera is the camera configuration.
type Camera struct {

	// FOV is the vertical field of view in degrees.
	FOV float32 `toml:"fov"`

	// Near and Far are the clip plane distances.
	Near float32 `toml:"near"`
	Far  float32 `toml:"far"`

	// Eye is the camera position, looking at Target.
	Eye    [3]float32 `toml:"eye"`
	Target [3]float32 `toml:"target"`
}

// Lab is the configuration of the lab scene.
type Lab struct {

	// Name selects the lab: car or gravity.
	Name string `toml:"name"`

	// Color is the car paint color as a hex string.
	Color string `toml:"color"`

	// WheelSpeed is the wheel rotation in degrees per frame.
	WheelSpeed float32 `toml:"wheel_speed"`

	// RadialSteps and LengthSteps are the cylinder resolution.
	RadialSteps int `toml:"radial_steps"`
	LengthSteps int `toml:"length_steps"`

	// GridRows and GridCols are the point grid size of the gravity lab.
	GridRows int `toml:"grid_rows"`
	GridCols int `toml:"grid_cols"`

	// SDFCells is the marching cubes resolution for the SDF body parts.
	SDFCells int `toml:"sdf_cells"`
}

// Defaults sets the default config values.
func (c *Config) Defaults() {
	c.Title = "Labs"
	c.Width = 960
	c.Height = 640
	c.TPS = 60
	c.Mode = "solid"
	c.Background = "#101018"
	c.PointSize = 3
	c.LogLevel = "info"
	c.Camera = Camera{FOV: 50, Near: 0.1, Far: 100, Eye: [3]float32{16, 3, 0}}
	c.Lab = Lab{Name: "car", Color: "#aa00ff", WheelSpeed: 2, RadialSteps: 24, LengthSteps: 1, GridRows: 100, GridCols: 100, SDFCells: 32}
	c.FlipTextures = true
	c.MaxTextureSize = 1024
}

// New returns a new config with default values.
func New() *Config {
	c := &Config{}
	c.Defaults()
	return c
}

// Validate checks the config for values that cannot be used.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	switch strings.ToLower(c.Mode) {
	case "solid", "lines", "points":
	default:
		errs = append(errs, fmt.Errorf("unknown mode %q", c.Mode))
	}
	if _, err := c.Level(); err != nil {
		errs = append(errs, err)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera clip planes %g, %g are invalid", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %g must be in (0, 180)", c.Camera.FOV))
	}
	switch c.Lab.Name {
	case "car", "gravity":
	default:
		errs = append(errs, fmt.Errorf("unknown lab %q", c.Lab.Name))
	}
	return errors.Join(errs...)
}

// Level returns the [slog.Level] for LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	err := lvl.UnmarshalText([]byte(c.LogLevel))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("log level: %w", err)
	}
	return lvl, nil
}

// Aspect returns the window aspect ratio.
func (c *Config) Aspect() float32 {
	return float32(c.Width) / float32(c.Height)
}

// ExpandPath expands a leading ~ in the given path to the
// home directory.
func ExpandPath(path string) (string, error) {
	return homedir.Expand(path)
}

// Open reads the config from the given TOML file, starting from the
// defaults so that values absent from the file keep their default.
// A missing file returns the defaults and an error wrapping
// [fs.ErrNotExist].
func Open(filename string) (*Config, error) {
	c := New()
	fn, err := ExpandPath(filename)
	if err != nil {
		return c, err
	}
	b, err := os.ReadFile(fn)
	if err != nil {
		return c, err
	}
	if err := c.Decode(b); err != nil {
		return c, fmt.Errorf("config %s: %w", fn, err)
	}
	return c, nil
}

// Decode decodes TOML data over the current values and validates
// the result.
func (c *Config) Decode(b []byte) error {
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		return err
	}
	return c.Validate()
}

// Save writes the config to the given TOML file, making the
// directory if needed.
func (c *Config) Save(filename string) error {
	fn, err := ExpandPath(filename)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fn), 0750); err != nil {
		return err
	}
	b, err := toml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(fn, b, 0640)
}

// OpenOrCreate opens the given config file, saving the defaults to it
// first if it does not exist.
func OpenOrCreate(filename string) (*Config, error) {
	c, err := Open(filename)
	if errors.Is(err, fs.ErrNotExist) {
		return c, c.Save(filename)
	}
	return c, err
}
