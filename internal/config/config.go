package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Layer is the layer-shell stacking layer the panel surface lives on.
type Layer string

const (
	LayerBackground Layer = "background"
	LayerBottom     Layer = "bottom"
	LayerTop        Layer = "top"
	LayerOverlay    Layer = "overlay"
)

// Protocol returns the zwlr_layer_shell_v1 layer enum value.
func (l Layer) Protocol() uint32 {
	switch l {
	case LayerBackground:
		return 0
	case LayerBottom:
		return 1
	case LayerOverlay:
		return 3
	default:
		return 2
	}
}

// Anchor selects the screen edge the bar is attached to.
type Anchor string

const (
	AnchorTop    Anchor = "top"
	AnchorBottom Anchor = "bottom"
)

// Color is a packed 0xRRGGBBAA value.
type Color uint32

// ParseColor accepts "#RRGGBB", "#RRGGBBAA", "0xRRGGBBAA" or "RRGGBBAA".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	hex := strings.TrimPrefix(strings.TrimPrefix(strings.TrimPrefix(s, "#"), "0x"), "0X")
	switch len(hex) {
	case 6:
		hex += "ff"
	case 8:
	default:
		return 0, fmt.Errorf("invalid color %q: expected 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color(v), nil
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 24),
		G: uint8(c >> 16),
		B: uint8(c >> 8),
		A: uint8(c),
	}
}

func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseColor(value.Value)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}

// Colors holds the panel palette.
type Colors struct {
	Background       Color `yaml:"background"`
	Text             Color `yaml:"text"`
	ButtonBackground Color `yaml:"button_background"`
	ButtonActive     Color `yaml:"button_active"`
}

// Config represents the effective panel configuration.
type Config struct {
	// PanelItems is the ordered layout-code string: T taskbar, C clock,
	// S flexible spacer.
	PanelItems   string        `yaml:"panel_items"`
	Output       string        `yaml:"output"`
	Layer        Layer         `yaml:"layer"`
	Anchor       Anchor        `yaml:"anchor"`
	Height       int           `yaml:"height"`
	FontSize     float64       `yaml:"font_size"`
	ClockFormat  string        `yaml:"clock_format"`
	CloseTimeout time.Duration `yaml:"close_timeout"`
	LogLevel     string        `yaml:"log_level"`
	Colors       Colors        `yaml:"colors"`
}

const (
	DefaultPanelItems  = "TC"
	DefaultHeight      = 30
	DefaultFontSize    = 10
	DefaultClockFormat = "15:04"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		PanelItems:  DefaultPanelItems,
		Layer:       LayerTop,
		Anchor:      AnchorTop,
		Height:      DefaultHeight,
		FontSize:    DefaultFontSize,
		ClockFormat: DefaultClockFormat,
		LogLevel:    "info",
		Colors: Colors{
			Background:       0x323232ff,
			Text:             0xffffffff,
			ButtonBackground: 0x4a4a4aff,
			ButtonActive:     0x5a8ac6ff,
		},
	}
}

// HasClock reports whether the layout contains a clock item.
func (c *Config) HasClock() bool {
	return strings.ContainsRune(c.PanelItems, 'C')
}

// Validate performs strict validation of the effective configuration.
func (c *Config) Validate() error {
	if c.PanelItems == "" {
		return &ValidationError{Path: "panel_items", Err: fmt.Errorf("panel_items must not be empty")}
	}
	switch c.Layer {
	case LayerBackground, LayerBottom, LayerTop, LayerOverlay:
	default:
		return &ValidationError{Path: "layer", Err: fmt.Errorf("layer must be one of: background, bottom, top, overlay")}
	}
	switch c.Anchor {
	case AnchorTop, AnchorBottom:
	default:
		return &ValidationError{Path: "anchor", Err: fmt.Errorf("anchor must be one of: top, bottom")}
	}
	if c.Height <= 0 {
		return &ValidationError{Path: "height", Err: fmt.Errorf("height must be > 0")}
	}
	if c.FontSize <= 0 {
		return &ValidationError{Path: "font_size", Err: fmt.Errorf("font_size must be > 0")}
	}
	if strings.TrimSpace(c.ClockFormat) == "" {
		return &ValidationError{Path: "clock_format", Err: fmt.Errorf("clock_format must not be empty")}
	}
	if c.CloseTimeout < 0 {
		return &ValidationError{Path: "close_timeout", Err: fmt.Errorf("close_timeout must be >= 0")}
	}
	switch c.LogLevel {
	case "debug", "info", "warning", "error":
	default:
		return &ValidationError{Path: "log_level", Err: fmt.Errorf("log_level must be one of: debug, info, warning, error")}
	}
	return nil
}

// ValidationError ties a validation failure to the YAML path and, when known,
// the file position that set it.
type ValidationError struct {
	Path   string
	Source Source
	Err    error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Source.File != "" && e.Source.Line > 0 {
		return fmt.Sprintf("%s:%d:%d: %s: %v", e.Source.File, e.Source.Line, e.Source.Column, e.Path, e.Err)
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
