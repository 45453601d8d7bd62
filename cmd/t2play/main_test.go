package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"github.com/1broseidon/t2play/internal/config"
)

func TestParseFlags_OnlyChangedFlagsOverride(t *testing.T) {
	opts, err := parseFlags([]string{"--items", "TSC", "-t", "3s", "--anchor", "bottom"}, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("parseFlags() error: %v", err)
	}
	o := opts.overrides
	if o.PanelItems == nil || *o.PanelItems != "TSC" {
		t.Fatalf("PanelItems override = %v, want TSC", o.PanelItems)
	}
	if o.CloseTimeout == nil || *o.CloseTimeout != 3*time.Second {
		t.Fatalf("CloseTimeout override = %v, want 3s", o.CloseTimeout)
	}
	if o.Anchor == nil || *o.Anchor != config.AnchorBottom {
		t.Fatalf("Anchor override = %v, want bottom", o.Anchor)
	}
	if o.Output != nil || o.Layer != nil || o.Height != nil || o.LogLevel != nil {
		t.Fatal("unset flags produced overrides")
	}
}

func TestParseFlags_Help(t *testing.T) {
	var out bytes.Buffer
	_, err := parseFlags([]string{"--help"}, &out)
	if !errors.Is(err, pflag.ErrHelp) {
		t.Fatalf("parseFlags(--help) error = %v, want ErrHelp", err)
	}
	if !strings.Contains(out.String(), "--items") {
		t.Fatalf("usage does not list flags:\n%s", out.String())
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown flag", args: []string{"--bogus"}},
		{name: "positional", args: []string{"extra"}},
		{name: "bad layer", args: []string{"--config", "/nonexistent/t2play.yaml", "--layer", "sideways"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(tt.args, &bytes.Buffer{}); got != exitUsage {
				t.Fatalf("run(%v) = %d, want %d", tt.args, got, exitUsage)
			}
		})
	}
}

func TestLoadConfig_MalformedFileFallsBackToDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("height: [\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	items := "C"
	opts := &options{configPath: path}
	opts.overrides.PanelItems = &items

	cfg, err := loadConfig(opts)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Height != config.DefaultHeight {
		t.Fatalf("Height = %d, want default %d", cfg.Height, config.DefaultHeight)
	}
	if cfg.PanelItems != "C" {
		t.Fatalf("PanelItems = %q, want flag value kept", cfg.PanelItems)
	}
}
