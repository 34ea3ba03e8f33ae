// Package layout persists where the user placed each on-screen control.
//
// The format is picked from the file extension: .json, .yaml/.yml or .toml.
package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml"
	yaml "gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for file extensions with no codec.
var ErrUnsupportedFormat = errors.New("layout: unsupported format")

// Placement is the persisted top-left corner of one control.
type Placement struct {
	Name string `json:"name" yaml:"name" toml:"name"`
	X    int    `json:"x" yaml:"x" toml:"x"`
	Y    int    `json:"y" yaml:"y" toml:"y"`
}

// Layout is the persisted overlay arrangement. Unset fields mean "use the
// default" so an empty layout restores default placement. OpacityPercent is
// a pointer because 0% is a valid setting.
type Layout struct {
	Scale          float64     `json:"scale,omitempty" yaml:"scale,omitempty" toml:"scale,omitempty"`
	OpacityPercent *int        `json:"opacityPercent,omitempty" yaml:"opacityPercent,omitempty" toml:"opacityPercent,omitempty"`
	Controls       []Placement `json:"controls,omitempty" yaml:"controls,omitempty" toml:"controls,omitempty"`
}

// Percent returns a pointer for Layout.OpacityPercent.
func Percent(p int) *int { return &p }

// Opacity returns the stored opacity and whether one is set.
func (l Layout) Opacity() (int, bool) {
	if l.OpacityPercent == nil {
		return 0, false
	}
	return *l.OpacityPercent, true
}

// Lookup returns the placement stored for name.
func (l Layout) Lookup(name string) (Placement, bool) {
	for _, p := range l.Controls {
		if p.Name == name {
			return p, true
		}
	}
	return Placement{}, false
}

// Set stores or replaces the placement for p.Name.
func (l *Layout) Set(p Placement) {
	for i := range l.Controls {
		if l.Controls[i].Name == p.Name {
			l.Controls[i] = p
			return
		}
	}
	l.Controls = append(l.Controls, p)
}

func formatOf(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return "json", nil
	case ".yaml", ".yml":
		return "yaml", nil
	case ".toml":
		return "toml", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// Marshal encodes l in the given format ("json", "yaml" or "toml").
func Marshal(format string, l Layout) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(l, "", "  ")
	case "yaml":
		return yaml.Marshal(l)
	case "toml":
		return toml.Marshal(l)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// Unmarshal decodes data in the given format.
func Unmarshal(format string, data []byte) (Layout, error) {
	var l Layout
	var err error
	switch format {
	case "json":
		err = json.Unmarshal(data, &l)
	case "yaml":
		err = yaml.Unmarshal(data, &l)
	case "toml":
		err = toml.Unmarshal(data, &l)
	default:
		err = fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return l, err
}

// Load reads a layout from disk. Missing files return an empty layout.
func Load(path string) (Layout, error) {
	format, err := formatOf(path)
	if err != nil {
		return Layout{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Layout{}, nil
		}
		return Layout{}, err
	}
	l, err := Unmarshal(format, data)
	if err != nil {
		return Layout{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return l, nil
}

// Save writes a layout to disk, creating parent directories as needed.
func Save(path string, l Layout) error {
	format, err := formatOf(path)
	if err != nil {
		return err
	}
	data, err := Marshal(format, l)
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// FileStore loads and saves a layout at a fixed path.
type FileStore struct {
	Path string
}

func (s FileStore) Load() (Layout, error) { return Load(s.Path) }
func (s FileStore) Save(l Layout) error { return Save(s.Path, l) }
