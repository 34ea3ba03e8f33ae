package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/Alia5/viipad/layout"
	"github.com/Alia5/viipad/overlay"
)

// LayoutCommand groups stick placement subcommands.
type LayoutCommand struct {
	Show  LayoutShow  `cmd:"" help:"Print the stored stick layout"`
	Reset LayoutReset `cmd:"" help:"Restore default placement, scale and opacity"`
}

// LayoutShow prints a layout file, optionally converting its format.
type LayoutShow struct {
	Path   string `help:"Layout file (defaults to the user layout)" env:"VIIPAD_LAYOUT"`
	Format string `help:"Output format: json, yaml or toml (defaults to the file's own)"`
}

func (c *LayoutShow) Run() error {
	return c.Show(os.Stdout)
}

// Show writes the layout to w.
func (c *LayoutShow) Show(w io.Writer) error {
	store, err := layoutStore(c.Path)
	if err != nil {
		return err
	}
	l, err := store.Load()
	if err != nil {
		return fmt.Errorf("failed to load layout: %w", err)
	}

	format := normalizeFormat(c.Format)
	if c.Format == "" {
		format = normalizeFormat(strings.TrimPrefix(filepath.Ext(store.Path), "."))
		if format == "" {
			format = "yaml"
		}
	}
	if format == "" {
		return fmt.Errorf("%w: %q", layout.ErrUnsupportedFormat, c.Format)
	}
	data, err := layout.Marshal(format, l)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// LayoutReset writes the default arrangement for the given screen.
type LayoutReset struct {
	Path    string         `help:"Layout file (defaults to the user layout)" env:"VIIPAD_LAYOUT"`
	Overlay overlay.Config `embed:"" prefix:"overlay."`
}

func (c *LayoutReset) Run(logger *slog.Logger) error {
	store, err := layoutStore(c.Path)
	if err != nil {
		return err
	}
	o := overlay.New(c.Overlay, nil, logger)
	o.SetState(overlay.ShowBasic, false, true)
	if err := store.Save(o.Layout()); err != nil {
		return fmt.Errorf("failed to save layout: %w", err)
	}
	logger.Info("Layout reset", "path", store.Path)
	return nil
}
