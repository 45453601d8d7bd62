package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// Source records where a YAML key was set.
type Source struct {
	File   string
	Line   int
	Column int
}

type LoadResult struct {
	Config  *Config
	Sources map[string]Source // YAML-path -> file position
	File    string            // empty when no file was read
	Unknown []string          // top-level keys that were ignored
}

const appName = "t2play"

// DefaultConfigPath returns $XDG_CONFIG_HOME/t2play/config.yaml, falling
// back to ~/.config when the variable is unset.
func DefaultConfigPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.yaml")
}

// Load reads the configuration from the standard location.
func Load() (*LoadResult, error) {
	return LoadFromPath(DefaultConfigPath(), RawConfig{})
}

// LoadFromPath reads path, applies overrides on top and validates the result.
// A missing file is not an error; the defaults plus overrides are returned.
func LoadFromPath(path string, overrides RawConfig) (*LoadResult, error) {
	raw := RawConfig{}
	res := &LoadResult{Sources: map[string]Source{}}

	if exists, err := pathExists(path); err != nil {
		return nil, err
	} else if exists {
		fileRaw, sources, unknown, err := loadRaw(path)
		if err != nil {
			return nil, err
		}
		raw = raw.merge(fileRaw)
		res.Sources = sources
		res.Unknown = unknown
		res.File = path
	}
	raw = raw.merge(overrides)

	cfg := BuildEffectiveConfig(raw)
	if err := cfg.Validate(); err != nil {
		return nil, attachSourceContext(err, res.Sources)
	}
	res.Config = cfg
	return res, nil
}

func loadRaw(path string) (RawConfig, map[string]Source, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return RawConfig{}, nil, nil, fmt.Errorf("%s: failed to read: %w", path, err)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return RawConfig{}, nil, nil, fmt.Errorf("%s: failed to parse yaml: %w", path, err)
	}

	// Unknown keys are ignored so configs shared with other panels load.
	var raw RawConfig
	if doc.Kind != 0 {
		if err := doc.Decode(&raw); err != nil {
			return RawConfig{}, nil, nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	return raw, collectSources(&doc, path), unknownKeys(&doc), nil
}

var knownKeys = map[string]struct{}{
	"panel_items":   {},
	"output":        {},
	"layer":         {},
	"anchor":        {},
	"height":        {},
	"font_size":     {},
	"clock_format":  {},
	"close_timeout": {},
	"log_level":     {},
	"colors":        {},
}

func unknownKeys(doc *yaml.Node) []string {
	node := rootMapping(doc)
	if node == nil {
		return nil
	}
	var out []string
	for i := 0; i+1 < len(node.Content); i += 2 {
		if _, ok := knownKeys[node.Content[i].Value]; !ok {
			out = append(out, node.Content[i].Value)
		}
	}
	sort.Strings(out)
	return out
}

func rootMapping(doc *yaml.Node) *yaml.Node {
	if doc == nil {
		return nil
	}
	node := doc
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil
	}
	return node
}

func pathExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func collectSources(doc *yaml.Node, file string) map[string]Source {
	out := make(map[string]Source)
	if node := rootMapping(doc); node != nil {
		collectSourcesRec(node, file, "", out)
	}
	return out
}

func collectSourcesRec(node *yaml.Node, file string, prefix string, out map[string]Source) {
	if node == nil || node.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		out[path] = Source{File: file, Line: val.Line, Column: val.Column}
		collectSourcesRec(val, file, path, out)
	}
}

func attachSourceContext(err error, sources map[string]Source) error {
	verr, ok := err.(*ValidationError)
	if !ok || verr == nil || verr.Path == "" {
		return err
	}
	if src, ok := sources[verr.Path]; ok {
		verr.Source = src
	}
	return verr
}
