package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/adrg/xdg"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
	if cfg.PanelItems != "TC" {
		t.Fatalf("PanelItems = %q, want %q", cfg.PanelItems, "TC")
	}
	if cfg.Height != 30 {
		t.Fatalf("Height = %d, want 30", cfg.Height)
	}
}

func TestLoadFromPath_MissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope", "config.yaml")

	res, err := LoadFromPath(path, RawConfig{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.File != "" {
		t.Fatalf("File = %q, want empty", res.File)
	}
	if res.Config.PanelItems != DefaultPanelItems {
		t.Fatalf("PanelItems = %q, want %q", res.Config.PanelItems, DefaultPanelItems)
	}
}

func TestLoadFromPath_EmptyFileUsesDefaults(t *testing.T) {
	path := writeConfig(t, "# empty\n")

	res, err := LoadFromPath(path, RawConfig{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.ClockFormat != DefaultClockFormat {
		t.Fatalf("ClockFormat = %q, want %q", res.Config.ClockFormat, DefaultClockFormat)
	}
}

func TestLoadFromPath_PanelItemsAndUnknownKeys(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"panel_items: TSC",
		"bogus_key: 12",
		"another: [1, 2]",
		"",
	}, "\n"))

	res, err := LoadFromPath(path, RawConfig{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.PanelItems != "TSC" {
		t.Fatalf("PanelItems = %q, want %q", res.Config.PanelItems, "TSC")
	}
	if got := strings.Join(res.Unknown, ","); got != "another,bogus_key" {
		t.Fatalf("Unknown = %q, want %q", got, "another,bogus_key")
	}
}

func TestLoadFromPath_PartialColorsKeepDefaults(t *testing.T) {
	path := writeConfig(t, strings.Join([]string{
		"colors:",
		"  background: \"#101010\"",
		"  button_active: \"0x11223344\"",
		"",
	}, "\n"))

	res, err := LoadFromPath(path, RawConfig{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	colors := res.Config.Colors
	if colors.Background != 0x101010ff {
		t.Fatalf("Background = %v, want #101010ff", colors.Background)
	}
	if colors.ButtonActive != 0x11223344 {
		t.Fatalf("ButtonActive = %v, want #11223344", colors.ButtonActive)
	}
	if colors.Text != DefaultConfig().Colors.Text {
		t.Fatalf("Text = %v, want default", colors.Text)
	}
}

func TestLoadFromPath_CloseTimeoutDuration(t *testing.T) {
	path := writeConfig(t, "close_timeout: 5s\n")

	res, err := LoadFromPath(path, RawConfig{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.CloseTimeout != 5*time.Second {
		t.Fatalf("CloseTimeout = %v, want 5s", res.Config.CloseTimeout)
	}
}

func TestLoadFromPath_OverridesWinOverFile(t *testing.T) {
	path := writeConfig(t, "panel_items: TC\noutput: DP-1\n")
	items := "CST"

	res, err := LoadFromPath(path, RawConfig{PanelItems: &items})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if res.Config.PanelItems != "CST" {
		t.Fatalf("PanelItems = %q, want %q", res.Config.PanelItems, "CST")
	}
	if res.Config.Output != "DP-1" {
		t.Fatalf("Output = %q, want %q", res.Config.Output, "DP-1")
	}
}

func TestLoadFromPath_ValidationErrorCarriesSource(t *testing.T) {
	path := writeConfig(t, "panel_items: TC\nlayer: sideways\n")

	_, err := LoadFromPath(path, RawConfig{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if verr.Path != "layer" {
		t.Fatalf("Path = %q, want %q", verr.Path, "layer")
	}
	if verr.Source.Line != 2 {
		t.Fatalf("Source.Line = %d, want 2", verr.Source.Line)
	}
	if !strings.Contains(err.Error(), path+":2:") {
		t.Fatalf("error %q does not mention file position", err.Error())
	}
}

func TestLoadFromPath_MalformedYAML(t *testing.T) {
	path := writeConfig(t, "panel_items: [unterminated\n")

	if _, err := LoadFromPath(path, RawConfig{}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want Color
		ok   bool
	}{
		{in: "#323232", want: 0x323232ff, ok: true},
		{in: "#5A8AC6FF", want: 0x5a8ac6ff, ok: true},
		{in: "0x4a4a4a80", want: 0x4a4a4a80, ok: true},
		{in: "ffffff", want: 0xffffffff, ok: true},
		{in: "#fff", ok: false},
		{in: "#zzzzzz", ok: false},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if (err == nil) != tt.ok {
			t.Fatalf("ParseColor(%q) error = %v, want ok=%v", tt.in, err, tt.ok)
		}
		if tt.ok && got != tt.want {
			t.Fatalf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorNRGBA(t *testing.T) {
	c := Color(0x5a8ac6ff).NRGBA()
	if c.R != 0x5a || c.G != 0x8a || c.B != 0xc6 || c.A != 0xff {
		t.Fatalf("NRGBA() = %+v", c)
	}
}

func TestLayerProtocol(t *testing.T) {
	tests := map[Layer]uint32{
		LayerBackground: 0,
		LayerBottom:     1,
		LayerTop:        2,
		LayerOverlay:    3,
	}
	for layer, want := range tests {
		if got := layer.Protocol(); got != want {
			t.Fatalf("%s.Protocol() = %d, want %d", layer, got, want)
		}
	}
}

func TestDefaultConfigPath_UsesXDGConfigHome(t *testing.T) {
	td := t.TempDir()
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", td)
	xdg.Reload()

	want := filepath.Join(td, "t2play", "config.yaml")
	if got := DefaultConfigPath(); got != want {
		t.Fatalf("DefaultConfigPath() = %q, want %q", got, want)
	}
}
