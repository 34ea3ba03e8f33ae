package testing

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/Alia5/viipad/layout"
	"github.com/Alia5/viipad/overlay"
)

// ErrStoreFailed is returned by a MemoryStore configured to fail.
var ErrStoreFailed = errors.New("mock store failure")

// MemoryStore is an in-memory overlay.LayoutStore.
type MemoryStore struct {
	Layout layout.Layout
	Saves  int
	Fail   bool
}

func (m *MemoryStore) Load() (layout.Layout, error) {
	if m.Fail {
		return layout.Layout{}, ErrStoreFailed
	}
	return m.Layout, nil
}

func (m *MemoryStore) Save(l layout.Layout) error {
	if m.Fail {
		return ErrStoreFailed
	}
	m.Layout = l
	m.Saves++
	return nil
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// DefaultConfig is a 1280x720 overlay at scale 1 and full opacity.
func DefaultConfig() overlay.Config {
	return overlay.Config{Width: 1280, Height: 720, Scale: 1, OpacityPercent: 100}
}

// NewTestOverlay builds an overlay backed by a fresh MemoryStore.
func NewTestOverlay(t *testing.T, cfg overlay.Config) (*overlay.Overlay, *MemoryStore) {
	t.Helper()
	store := &MemoryStore{}
	return overlay.New(cfg, store, DiscardLogger()), store
}
