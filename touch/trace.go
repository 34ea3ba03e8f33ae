package touch

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	yaml "gopkg.in/yaml.v3"
)

// traceEvent is the human-editable form of an Event.
type traceEvent struct {
	Action   string         `yaml:"action"`
	Index    int            `yaml:"index,omitempty"`
	Pointers []tracePointer `yaml:"pointers"`
}

type tracePointer struct {
	ID int32   `yaml:"id"`
	X  float32 `yaml:"x"`
	Y  float32 `yaml:"y"`
}

// ParseYAMLTrace decodes a YAML list of events.
//
//	- action: begin
//	  pointers: [{id: 0, x: 90, y: 50}]
func ParseYAMLTrace(data []byte) ([]Event, error) {
	var raw []traceEvent
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse trace: %w", err)
	}
	out := make([]Event, 0, len(raw))
	for i, te := range raw {
		action, err := ParseAction(strings.ToLower(te.Action))
		if err != nil {
			return nil, fmt.Errorf("event %d: %w", i, err)
		}
		if action != Move && (te.Index < 0 || te.Index >= len(te.Pointers)) {
			return nil, fmt.Errorf("event %d: %w: index %d", i, ErrBadIndex, te.Index)
		}
		ev := Event{Action: action, Index: te.Index, Pointers: make([]Pointer, len(te.Pointers))}
		for j, p := range te.Pointers {
			ev.Pointers[j] = Pointer{ID: p.ID, X: p.X, Y: p.Y}
		}
		out = append(out, ev)
	}
	return out, nil
}

// MarshalYAMLTrace is the inverse of ParseYAMLTrace.
func MarshalYAMLTrace(events []Event) ([]byte, error) {
	raw := make([]traceEvent, len(events))
	for i, ev := range events {
		te := traceEvent{Action: ev.Action.String(), Index: ev.Index, Pointers: make([]tracePointer, len(ev.Pointers))}
		for j, p := range ev.Pointers {
			te.Pointers[j] = tracePointer{ID: p.ID, X: p.X, Y: p.Y}
		}
		raw[i] = te
	}
	return yaml.Marshal(raw)
}

// LoadTrace reads a recorded event stream. Files ending in .yaml or .yml are
// parsed as YAML, anything else as binary frames.
func LoadTrace(path string) ([]Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAMLTrace(data)
	default:
		return NewReader(bytes.NewReader(data)).ReadAll()
	}
}

// SaveTrace writes events in the format chosen by the file extension.
func SaveTrace(path string, events []Event) error {
	var data []byte
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		b, err := MarshalYAMLTrace(events)
		if err != nil {
			return err
		}
		data = b
	default:
		var buf bytes.Buffer
		w := NewWriter(&buf)
		for _, ev := range events {
			if err := w.Write(ev); err != nil {
				return err
			}
		}
		data = buf.Bytes()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
