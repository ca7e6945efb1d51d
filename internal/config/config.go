package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/bytelens/internal/scheme"
	"github.com/san-kum/bytelens/internal/view"
)

const (
	DefaultCanvasWidth  = view.DefaultCanvasWidth
	DefaultCanvasHeight = view.DefaultCanvasHeight
	DefaultTheme        = "minimal"
	DefaultLogLevel     = "info"
)

var ErrUnknownPreset = errors.New("config: unknown preset")

type Config struct {
	View     ViewConfig   `yaml:"view"`
	Canvas   CanvasConfig `yaml:"canvas"`
	Workers  int          `yaml:"workers"`
	Theme    string       `yaml:"theme"`
	LogLevel string       `yaml:"log_level"`
	LogFile  string       `yaml:"log_file"`
}

type ViewConfig struct {
	Zoom       int    `yaml:"zoom"`
	Width      int    `yaml:"width"`
	Offset     int    `yaml:"offset"`
	OffsetFine int    `yaml:"offset_fine"`
	Stride     int    `yaml:"stride"`
	Scheme     string `yaml:"scheme"`
}

type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

func DefaultConfig() *Config {
	return &Config{
		View:     defaultView(),
		Canvas:   CanvasConfig{Width: DefaultCanvasWidth, Height: DefaultCanvasHeight},
		Theme:    DefaultTheme,
		LogLevel: DefaultLogLevel,
	}
}

func defaultView() ViewConfig {
	return ViewConfig{
		Zoom:   view.DefaultZoom,
		Width:  view.DefaultRowWidth,
		Stride: view.DefaultStride,
		Scheme: view.DefaultScheme.String(),
	}
}

// Load reads a YAML file on top of DefaultConfig.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := Merge(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays the keys present in a YAML file onto cfg.
func Merge(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Settings converts the view section into validated view settings.
func (c *Config) Settings(bufferLength int) (view.Settings, error) {
	return c.View.Settings(bufferLength, c.Canvas.Width)
}

func (v ViewConfig) Settings(bufferLength, canvasWidth int) (view.Settings, error) {
	sch := view.DefaultScheme
	if v.Scheme != "" {
		parsed, err := scheme.ParseScheme(v.Scheme)
		if err != nil {
			return view.Settings{}, err
		}
		sch = parsed
	}
	s := view.Settings{
		Zoom:         v.Zoom,
		RowWidth:     v.Width,
		Offset:       v.Offset,
		OffsetFine:   v.OffsetFine,
		Stride:       v.Stride,
		Scheme:       sch,
		BufferLength: bufferLength,
		CanvasWidth:  canvasWidth,
	}
	if err := s.Validate(); err != nil {
		return view.Settings{}, err
	}
	return s, nil
}

// Validate checks the canvas section; view fields are checked by Settings.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", view.ErrCanvasSize, c.Canvas.Width, c.Canvas.Height)
	}
	_, err := c.Settings(0)
	return err
}

// ApplyPreset overlays the named preset's view section.
func (c *Config) ApplyPreset(name string) error {
	p := GetPreset(name)
	if p == nil {
		return fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	c.View = *p
	return nil
}
