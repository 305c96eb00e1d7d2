package splitview

import (
	"fmt"
	"image/color"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/esimov/splitview/utils"
)

// Config holds the tunables of the layout and of the host window.
type Config struct {
	// HitPadding is the half width of the band around a divider which
	// grabs the pointer.
	HitPadding float32 `toml:"hit_padding"`
	// DividerThickness is the width of the lines drawn between panes.
	DividerThickness float32 `toml:"divider_thickness"`
	// DividerColor is a hex value (#rrggbb[aa]) or an SVG color name.
	DividerColor string `toml:"divider_color"`
	// MinRatio is the smallest share a visible pane keeps while dragging.
	MinRatio float32 `toml:"min_ratio"`
	// ShowPanel toggles the visibility control panel.
	ShowPanel bool `toml:"show_panel"`

	Window WindowConfig `toml:"window"`

	divider color.NRGBA
}

// WindowConfig describes the host window.
type WindowConfig struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	c := Config{
		HitPadding:       DefaultHitPadding,
		DividerThickness: defaultDividerThickness,
		DividerColor:     "#646464",
		MinRatio:         defaultMinRatio,
		ShowPanel:        true,
		Window: WindowConfig{
			Title:  "Draggable Split Layout",
			Width:  1280,
			Height: 800,
		},
	}
	c.divider = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	return c
}

// LoadConfig reads a TOML file on top of the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("unable to read the config file: %w", err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return cfg, fmt.Errorf("unable to decode %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the ranges and resolves the divider color.
func (c *Config) Validate() error {
	if c.HitPadding < 0 {
		return fmt.Errorf("hit_padding must not be negative, got %v", c.HitPadding)
	}
	if c.DividerThickness < 0 {
		return fmt.Errorf("divider_thickness must not be negative, got %v", c.DividerThickness)
	}
	if c.MinRatio < 0 || c.MinRatio >= 0.5 {
		return fmt.Errorf("min_ratio must be in [0, 0.5), got %v", c.MinRatio)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}
	col, err := utils.ParseColor(c.DividerColor)
	if err != nil {
		return err
	}
	c.divider = col
	return nil
}

// Divider returns the resolved divider color.
func (c Config) Divider() color.NRGBA {
	return c.divider
}

// Apply pushes the splitter settings of the config into every splitter
// of the tree.
func (c Config) Apply(t *Tree) {
	t.Walk(func(n *Node, _ int) bool {
		n.SetMinRatio(c.MinRatio)
		n.SetDividerThickness(c.DividerThickness)
		return true
	})
}
