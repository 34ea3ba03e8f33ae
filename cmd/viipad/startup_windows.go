//go:build windows

package main

import (
	"log/slog"
	"os"

	"github.com/Alia5/viipad/internal/launch"
)

func init() {
	if launch.FromDesktop() && len(os.Args) < 2 {
		slog.Info("Detected desktop startup, opening the preview")
		os.Args = append(os.Args, "preview")
	}
}
