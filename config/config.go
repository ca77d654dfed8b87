// Package config loads the host settings (window, background, seed, scrolling, terminal
// rendering) from YAML, with an embedded default and an optional on-disk override.
package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"
)

const DefaultName = "config.yaml"

const (
	ScanPairs = "pairs"
	ScanGrid  = "grid"
)

type Config struct {
	Window         WindowConfig     `yaml:"window"`
	Background     YAMLColor        `yaml:"background"`
	Seed           int64            `yaml:"seed"`
	TPS            int              `yaml:"tps"`
	ConnectionScan string           `yaml:"connection_scan"`
	Document       DocumentConfig   `yaml:"document"`
	AutoScroll     AutoScrollConfig `yaml:"autoscroll"`
	Terminal       TerminalConfig   `yaml:"terminal"`
	Debug          bool             `yaml:"debug"`
}

type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type DocumentConfig struct {
	Pages     float64 `yaml:"pages"`
	WheelStep float64 `yaml:"wheel_step"`
}

type AutoScrollConfig struct {
	Enabled bool   `yaml:"enabled"`
	Script  string `yaml:"script"`
}

type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
	Gain       float64 `yaml:"gain"`
}

// Default returns the settings used when a file leaves a field out.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Title:  "particlefield",
			Width:  1280,
			Height: 720,
		},
		Background:     YAMLColor{Color: color.NRGBA{R: 0x0d, G: 0x1a, B: 0x20, A: 0xff}},
		TPS:            60,
		ConnectionScan: ScanPairs,
		Document: DocumentConfig{
			Pages:     5,
			WheelStep: 48,
		},
		AutoScroll: AutoScrollConfig{
			Script: "scripts/drift.tengo",
		},
		Terminal: TerminalConfig{
			CellWidth:  8,
			CellHeight: 16,
			Gain:       6,
		},
	}
}

// LoadConfig reads name over the defaults and validates the result.
func LoadConfig(name string) (Config, error) {
	data, err := Load(name)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", name, err)
	}
	return Parse(data)
}

func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	if c.TPS <= 0 {
		c.TPS = 60
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Document.Pages < 1 {
		c.Document.Pages = 1
	}
	if c.Document.WheelStep <= 0 {
		c.Document.WheelStep = 48
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("config: terminal cell size %vx%v must be positive", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if c.Terminal.Gain <= 0 {
		c.Terminal.Gain = 1
	}
	switch c.ConnectionScan {
	case "":
		c.ConnectionScan = ScanPairs
	case ScanPairs, ScanGrid:
	default:
		return fmt.Errorf("config: unknown connection_scan %q", c.ConnectionScan)
	}
	if c.AutoScroll.Enabled && strings.TrimSpace(c.AutoScroll.Script) == "" {
		return fmt.Errorf("config: autoscroll enabled without a script")
	}
	return nil
}

// YAMLColor accepts "#rrggbb", "#rrggbbaa" or an SVG colour name.
type YAMLColor struct {
	color.Color
}

func (c YAMLColor) NRGBA() color.NRGBA {
	if c.Color == nil {
		return color.NRGBA{A: 0xff}
	}
	return color.NRGBAModel.Convert(c.Color).(color.NRGBA)
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	if named, ok := colornames.Map[strings.ToLower(value.Value)]; ok {
		c.Color = named
		return nil
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
