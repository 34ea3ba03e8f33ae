package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Alia5/viipad/internal/log"
	"github.com/Alia5/viipad/internal/preview"
	"github.com/Alia5/viipad/overlay"
	"github.com/Alia5/viipad/touch"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"
)

// Preview shows the overlay in the terminal and drives it with the mouse.
type Preview struct {
	Overlay    overlay.Config `embed:"" prefix:"overlay."`
	Layout     string         `help:"Layout file to load and save (defaults to the user layout)" env:"VIIPAD_LAYOUT"`
	CellWidth  int            `help:"Overlay pixels per terminal column" default:"16"`
	CellHeight int            `help:"Overlay pixels per terminal row" default:"32"`
	Fit        bool           `help:"Size the overlay screen to the terminal" default:"true" negatable:""`
	DebugLog   string         `help:"Write preview logs to this file; the terminal is owned by the preview" type:"path"`
	Record     string         `help:"Save the mouse-driven touch stream here on exit (.yaml/.yml, otherwise binary frames)" type:"path"`
}

// Run is called by Kong when the preview command is executed.
func (p *Preview) Run(logger *slog.Logger) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("preview needs an interactive terminal")
	}

	// Anything written to stdout would corrupt the screen.
	uiLogger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if p.DebugLog != "" {
		f, err := os.OpenFile(p.DebugLog, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open preview log: %w", err)
		}
		defer f.Close()
		uiLogger = slog.New(log.NewHandler(f, f, slog.LevelDebug))
	}

	store, err := layoutStore(p.Layout)
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	cfg := p.Overlay
	if p.Fit {
		cols, rows := screen.Size()
		cfg.Width = cols * max(1, p.CellWidth)
		// Last row holds the status line.
		cfg.Height = max(1, rows-1) * max(1, p.CellHeight)
	}
	o := overlay.New(cfg, store, uiLogger)
	logger.Debug("Starting preview", "width", cfg.Width, "height", cfg.Height, "layout", store.Path)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := preview.NewApp(screen, o, p.CellWidth, p.CellHeight, uiLogger)
	if p.Record != "" {
		app.Record()
	}
	if err := app.Run(ctx); err != nil {
		return err
	}
	if p.Record == "" {
		return nil
	}
	screen.Fini()
	if err := touch.SaveTrace(p.Record, app.Recorded()); err != nil {
		return fmt.Errorf("failed to record trace: %w", err)
	}
	logger.Info("Recorded touch trace", "file", p.Record, "frames", len(app.Recorded()))
	return nil
}
