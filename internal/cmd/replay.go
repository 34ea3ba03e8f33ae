package cmd

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Alia5/viipad/ctrl"
	"github.com/Alia5/viipad/device"
	"github.com/Alia5/viipad/internal/log"
	"github.com/Alia5/viipad/overlay"
	"github.com/Alia5/viipad/touch"

	"golang.org/x/term"
)

// Replay feeds a recorded touch trace through the overlay and prints what
// the emulation core would receive for every frame.
type Replay struct {
	Trace   string         `arg:"" help:"Touch trace to replay (.yaml/.yml, anything else is read as binary frames)" type:"existingfile"`
	Overlay overlay.Config `embed:"" prefix:"overlay."`
	Layout  string         `help:"Layout file to apply (defaults to the user layout)" env:"VIIPAD_LAYOUT"`
	Edit    bool           `help:"Replay in edit mode; placement changes are saved to the layout"`
	Format  string         `help:"Output encoding" enum:"snapshot,xbox360,dualshock4,vita" default:"snapshot"`
	Hex     bool           `help:"Print binary reports as hex (default when writing to a terminal)"`
	Wire    bool           `help:"Write each device state in its compact wire form instead of the USB report"`
	Output  string         `help:"Write output to this file instead of stdout" short:"o"`
	Record  string         `help:"Also save the replayed touch stream here (.yaml/.yml, otherwise binary frames)"`
}

// SnapshotLine is one JSON line of the snapshot output format.
type SnapshotLine struct {
	Frame   int                `json:"frame"`
	Action  string             `json:"action"`
	Handled bool               `json:"handled"`
	Axes    map[string]float64 `json:"axes"`
	Pressed []string           `json:"pressed,omitempty"`
}

// Run is called by Kong when the replay command is executed.
func (r *Replay) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	var out io.Writer = os.Stdout
	if r.Output != "" {
		f, err := os.Create(r.Output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		out = f
	} else if term.IsTerminal(int(os.Stdout.Fd())) {
		r.Hex = true
	}
	return r.Execute(out, logger, rawLogger)
}

// Execute replays the trace, writing output to w.
func (r *Replay) Execute(w io.Writer, logger *slog.Logger, rawLogger log.RawLogger) error {
	events, err := touch.LoadTrace(r.Trace)
	if err != nil {
		return fmt.Errorf("failed to load trace %s: %w", r.Trace, err)
	}

	var encode device.Encoder
	if r.Format != "snapshot" && r.Format != "" {
		f, err := lookupDevice(r.Format)
		if err != nil {
			return fmt.Errorf("unknown output format: %s", r.Format)
		}
		encode = f.encode
	}

	store, err := layoutStore(r.Layout)
	if err != nil {
		return err
	}
	o := overlay.New(r.Overlay, store, logger)
	if r.Edit {
		o.SetState(overlay.ShowBasic, true, false)
	}

	logger.Info("Replaying touch trace", "file", r.Trace, "frames", len(events), "format", r.Format)

	enc := json.NewEncoder(w)
	handled := 0
	for i, ev := range events {
		if raw, err := ev.MarshalBinary(); err == nil {
			rawLogger.Log(true, raw)
		}
		ok := o.HandleTouch(ev)
		if ok {
			handled++
		}
		s := o.Snapshot()

		if encode == nil {
			if err := enc.Encode(snapshotLine(i, ev, ok, s)); err != nil {
				return fmt.Errorf("failed to write frame %d: %w", i, err)
			}
			continue
		}

		state := encode(s)
		report := state.BuildReport()
		rawLogger.Log(false, report)
		if r.Wire {
			if report, err = state.MarshalBinary(); err != nil {
				return fmt.Errorf("failed to encode frame %d: %w", i, err)
			}
		}
		if r.Hex {
			_, err = fmt.Fprintln(w, hex.EncodeToString(report))
		} else {
			_, err = w.Write(report)
		}
		if err != nil {
			return fmt.Errorf("failed to write frame %d: %w", i, err)
		}
	}

	if r.Record != "" {
		if err := touch.SaveTrace(r.Record, events); err != nil {
			return fmt.Errorf("failed to record trace: %w", err)
		}
		logger.Info("Recorded touch trace", "file", r.Record)
	}

	logger.Info("Replay finished", "frames", len(events), "handled", handled)
	return nil
}

func snapshotLine(frame int, ev touch.Event, handled bool, s ctrl.State) SnapshotLine {
	line := SnapshotLine{
		Frame:   frame,
		Action:  ev.Action.String(),
		Handled: handled,
		Axes:    make(map[string]float64, ctrl.AxisCount),
	}
	for c := 0; c < ctrl.AxisCount; c++ {
		line.Axes[ctrl.AxisName(c)] = s.Axis(c)
	}
	if s.IsPressed(ctrl.StickLeft) {
		line.Pressed = append(line.Pressed, overlay.LeftStick)
	}
	if s.IsPressed(ctrl.StickRight) {
		line.Pressed = append(line.Pressed, overlay.RightStick)
	}
	return line
}
