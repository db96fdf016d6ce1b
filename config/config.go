// Package config holds host settings: defaults, an optional YAML file and command-line overrides
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// ErrInvalid marks a configuration value outside its accepted range
var ErrInvalid = errors.New("invalid config")

// Color modes accepted by the terminal host
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
	ColorMono      = "mono"
)

const (
	maxDimension = 8192
	maxFPS       = 240
)

// Config is the host configuration
// Width and Height are logical play-area units for the window host; the terminal host follows its screen
type Config struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	FPS     int    `yaml:"fps"`
	Seed    string `yaml:"seed"`
	DataDir string `yaml:"data_dir"`
	Debug   bool   `yaml:"debug"`
	Audio   bool   `yaml:"audio"`
	Color   string `yaml:"color"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Width:  960,
		Height: 640,
		FPS:    60,
		Audio:  true,
		Color:  ColorAuto,
	}
}

// Load reads a YAML file over the defaults
// An empty path or a missing file yields the defaults; keys absent from the file keep their default
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse builds the configuration from command-line args
// Precedence: flags explicitly given, then the file named by -config, then defaults
func Parse(name string, args []string) (*Config, error) {
	def := Default()
	fset := flag.NewFlagSet(name, flag.ContinueOnError)

	path := fset.String("config", "", "YAML config file")
	width := fset.Int("width", def.Width, "Logical play-area width (window host)")
	height := fset.Int("height", def.Height, "Logical play-area height (window host)")
	fps := fset.Int("fps", def.FPS, "Frames per second")
	seed := fset.String("seed", def.Seed, "Spawn seed; empty for time-based")
	dataDir := fset.String("data", def.DataDir, "High score directory; empty for the user config dir")
	debug := fset.Bool("debug", def.Debug, "Write debug logs to logs/")
	audio := fset.Bool("audio", def.Audio, "Enable sound")
	color := fset.String("color", def.Color, "Color mode: auto, truecolor, 256, mono")

	if err := fset.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := Load(*path)
	if err != nil {
		return nil, err
	}

	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "fps":
			cfg.FPS = *fps
		case "seed":
			cfg.Seed = *seed
		case "data":
			cfg.DataDir = *dataDir
		case "debug":
			cfg.Debug = *debug
		case "audio":
			cfg.Audio = *audio
		case "color":
			cfg.Color = *color
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects sizes and rates the hosts cannot run with
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Width > maxDimension {
		return fmt.Errorf("%w: width %d", ErrInvalid, c.Width)
	}
	if c.Height <= 0 || c.Height > maxDimension {
		return fmt.Errorf("%w: height %d", ErrInvalid, c.Height)
	}
	if c.FPS <= 0 || c.FPS > maxFPS {
		return fmt.Errorf("%w: fps %d", ErrInvalid, c.FPS)
	}
	switch c.Color {
	case ColorAuto, ColorTrueColor, Color256, ColorMono:
	default:
		return fmt.Errorf("%w: color %q", ErrInvalid, c.Color)
	}
	return nil
}

// SeedValue returns the spawn seed: a hash of Seed when set, else the clock
func (c *Config) SeedValue() uint64 {
	if c.Seed == "" {
		return uint64(time.Now().UnixNano())
	}
	return xxhash.Sum64String(c.Seed)
}

// FrameInterval is the host frame period for FPS
func (c *Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}
