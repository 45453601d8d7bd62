package config

import "time"

// RawColors mirrors Colors with optional fields so a partial palette in the
// file keeps the remaining defaults.
type RawColors struct {
	Background       *Color `yaml:"background"`
	Text             *Color `yaml:"text"`
	ButtonBackground *Color `yaml:"button_background"`
	ButtonActive     *Color `yaml:"button_active"`
}

// RawConfig is the file representation. Nil fields were not set.
type RawConfig struct {
	PanelItems   *string        `yaml:"panel_items"`
	Output       *string        `yaml:"output"`
	Layer        *Layer         `yaml:"layer"`
	Anchor       *Anchor        `yaml:"anchor"`
	Height       *int           `yaml:"height"`
	FontSize     *float64       `yaml:"font_size"`
	ClockFormat  *string        `yaml:"clock_format"`
	CloseTimeout *time.Duration `yaml:"close_timeout"`
	LogLevel     *string        `yaml:"log_level"`
	Colors       *RawColors     `yaml:"colors"`
}

func (r RawConfig) merge(other RawConfig) RawConfig {
	out := r
	if other.PanelItems != nil {
		out.PanelItems = other.PanelItems
	}
	if other.Output != nil {
		out.Output = other.Output
	}
	if other.Layer != nil {
		out.Layer = other.Layer
	}
	if other.Anchor != nil {
		out.Anchor = other.Anchor
	}
	if other.Height != nil {
		out.Height = other.Height
	}
	if other.FontSize != nil {
		out.FontSize = other.FontSize
	}
	if other.ClockFormat != nil {
		out.ClockFormat = other.ClockFormat
	}
	if other.CloseTimeout != nil {
		out.CloseTimeout = other.CloseTimeout
	}
	if other.LogLevel != nil {
		out.LogLevel = other.LogLevel
	}
	if other.Colors != nil {
		merged := RawColors{}
		if out.Colors != nil {
			merged = *out.Colors
		}
		if other.Colors.Background != nil {
			merged.Background = other.Colors.Background
		}
		if other.Colors.Text != nil {
			merged.Text = other.Colors.Text
		}
		if other.Colors.ButtonBackground != nil {
			merged.ButtonBackground = other.Colors.ButtonBackground
		}
		if other.Colors.ButtonActive != nil {
			merged.ButtonActive = other.Colors.ButtonActive
		}
		out.Colors = &merged
	}
	return out
}

// Overrides are values supplied on the command line. They win over the file.
type Overrides = RawConfig

// BuildEffectiveConfig applies raw values over DefaultConfig.
func BuildEffectiveConfig(raw RawConfig) *Config {
	cfg := DefaultConfig()

	if raw.PanelItems != nil {
		cfg.PanelItems = *raw.PanelItems
	}
	if raw.Output != nil {
		cfg.Output = *raw.Output
	}
	if raw.Layer != nil {
		cfg.Layer = *raw.Layer
	}
	if raw.Anchor != nil {
		cfg.Anchor = *raw.Anchor
	}
	if raw.Height != nil {
		cfg.Height = *raw.Height
	}
	if raw.FontSize != nil {
		cfg.FontSize = *raw.FontSize
	}
	if raw.ClockFormat != nil {
		cfg.ClockFormat = *raw.ClockFormat
	}
	if raw.CloseTimeout != nil {
		cfg.CloseTimeout = *raw.CloseTimeout
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	if c := raw.Colors; c != nil {
		if c.Background != nil {
			cfg.Colors.Background = *c.Background
		}
		if c.Text != nil {
			cfg.Colors.Text = *c.Text
		}
		if c.ButtonBackground != nil {
			cfg.Colors.ButtonBackground = *c.ButtonBackground
		}
		if c.ButtonActive != nil {
			cfg.Colors.ButtonActive = *c.ButtonActive
		}
	}

	return cfg
}
