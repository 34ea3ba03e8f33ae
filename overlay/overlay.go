// Package overlay hosts the on-screen sticks: it routes touch frames to them,
// handles placement editing and aggregates their output into a controller
// snapshot.
package overlay

import (
	"log/slog"
	"math"

	"github.com/Alia5/viipad/ctrl"
	"github.com/Alia5/viipad/geom"
	"github.com/Alia5/viipad/joystick"
	"github.com/Alia5/viipad/layout"
	"github.com/Alia5/viipad/touch"
)

// Display mask bits accepted by SetState.
const (
	ShowBasic = 1 << iota
	ShowL2R2
	ShowTouchSwitch
)

const (
	MinScale = 0.25
	MaxScale = 4.0
	// DefaultArtSize is the outer ring edge length at scale 1.
	DefaultArtSize = 200
)

// Stick names used in persisted layouts.
const (
	LeftStick  = "left"
	RightStick = "right"
)

// LayoutStore is the persistence collaborator for stick placement.
type LayoutStore interface {
	Load() (layout.Layout, error)
	Save(layout.Layout) error
}

// Config is the overlay part of the command line / config file.
type Config struct {
	Width          int     `help:"Screen width in pixels" default:"1280" env:"VIIPAD_SCREEN_WIDTH"`
	Height         int     `help:"Screen height in pixels" default:"720" env:"VIIPAD_SCREEN_HEIGHT"`
	Scale          float64 `help:"Overlay scale (0.25-4.0)" default:"1.0" env:"VIIPAD_OVERLAY_SCALE"`
	OpacityPercent int     `help:"Overlay opacity in percent" default:"100" env:"VIIPAD_OVERLAY_OPACITY"`
	Recenter       bool    `help:"Move a stick's center to where the touch lands" default:"false" env:"VIIPAD_STICK_RECENTER"`
	Color          uint32  `help:"ARGB tint for stick art; 0 keeps the art untinted" default:"0" env:"VIIPAD_STICK_COLOR"`
}

type entry struct {
	name  string
	stick *joystick.Joystick
}

// Overlay is not safe for concurrent use.
type Overlay struct {
	cfg    Config
	store  LayoutStore
	logger *slog.Logger

	sticks  []entry
	mask    int
	edit    bool
	editing *joystick.Joystick
	editID  int32
	saved   layout.Layout
}

// New builds an overlay with the default left and right sticks and applies
// any placement found in store. store may be nil.
func New(cfg Config, store LayoutStore, logger *slog.Logger) *Overlay {
	if logger == nil {
		logger = slog.Default()
	}
	o := &Overlay{
		cfg:    cfg,
		store:  store,
		logger: logger,
		mask:   ShowBasic,
	}
	if store != nil {
		l, err := store.Load()
		if err != nil {
			logger.Error("failed to load overlay layout", "error", err)
		} else {
			o.saved = l
			if l.Scale != 0 {
				o.cfg.Scale = l.Scale
			}
			if p, ok := l.Opacity(); ok {
				o.cfg.OpacityPercent = p
			}
		}
	}
	o.cfg.Scale = clampScale(o.cfg.Scale)
	o.build()
	return o
}

func clampScale(s float64) float64 {
	if s == 0 || math.IsNaN(s) {
		return 1
	}
	return math.Min(MaxScale, math.Max(MinScale, s))
}

// OpacityFromPercent converts a 0-100 user setting to an alpha value.
func OpacityFromPercent(p int) int {
	p = max(0, min(100, p))
	return p * joystick.OpaqueAlpha / 100
}

// build recreates the sticks at the current scale, restoring saved
// positions where present.
func (o *Overlay) build() {
	size := int(DefaultArtSize * o.cfg.Scale)
	margin := size / 4
	top := o.cfg.Height - size - margin

	defaults := []struct {
		name     string
		x        int
		legacyID int
		xControl int
		yControl int
	}{
		{LeftStick, margin, ctrl.StickLeft, ctrl.AxisLeftX, ctrl.AxisLeftY},
		{RightStick, o.cfg.Width - size - margin, ctrl.StickRight, ctrl.AxisRightX, ctrl.AxisRightY},
	}

	o.sticks = o.sticks[:0]
	for _, d := range defaults {
		x, y := d.x, top
		if p, ok := o.saved.Lookup(d.name); ok {
			x, y = p.X, p.Y
		}
		art := stickArt
		art.Width, art.Height = size, size
		outer := geom.FromSize(x, y, size, size)
		j := joystick.New(joystick.Options{
			Art:      art,
			Outer:    outer,
			Inner:    geom.CenteredAt(outer.CenterX(), outer.CenterY(), size/2, size/2),
			LegacyID: d.legacyID,
			XControl: d.xControl,
			YControl: d.yControl,
			Recenter: o.cfg.Recenter,
		})
		j.SetPosition(x, y)
		j.SetOpacity(OpacityFromPercent(o.cfg.OpacityPercent))
		if o.cfg.Color != 0 {
			j.SetColor(o.cfg.Color)
		}
		o.sticks = append(o.sticks, entry{name: d.name, stick: j})
	}
	o.editing = nil
}

// Texture handles the renderer resolves. Both sticks share the same art.
const (
	TextureOuter joystick.TextureID = iota + 1
	TextureInner
	TextureInnerPressed
)

var stickArt = joystick.Art{Outer: TextureOuter, InnerDefault: TextureInner, InnerPressed: TextureInnerPressed}

// Visible reports whether the sticks are shown.
func (o *Overlay) Visible() bool { return o.mask&ShowBasic != 0 }

// EditMode reports whether touches reposition controls instead of driving them.
func (o *Overlay) EditMode() bool { return o.edit }

// Stick returns the stick with the given layout name.
func (o *Overlay) Stick(name string) *joystick.Joystick {
	for _, e := range o.sticks {
		if e.name == name {
			return e.stick
		}
	}
	return nil
}

// OpacityPercent returns the opacity setting shared by every control.
func (o *Overlay) OpacityPercent() int { return o.cfg.OpacityPercent }

// Scale returns the effective overlay scale.
func (o *Overlay) Scale() float64 { return o.cfg.Scale }

// SetState selects which controls are shown, whether the overlay is in edit
// mode and optionally resets placement to the defaults. Tracked contacts are
// released on every call so the two interaction modes never overlap.
func (o *Overlay) SetState(mask int, edit, reset bool) {
	o.releaseAll()
	o.mask = mask
	o.edit = edit
	o.editing = nil
	if reset {
		o.saved = layout.Layout{}
		o.cfg.Scale = 1
		o.cfg.OpacityPercent = 100
		o.build()
		o.save()
	}
	o.logger.Debug("overlay state changed", "mask", mask, "edit", edit, "reset", reset)
}

// SetScale resizes every control, keeping saved positions.
func (o *Overlay) SetScale(scale float64) {
	o.releaseAll()
	o.cfg.Scale = clampScale(scale)
	o.build()
	o.save()
}

// SetOpacityPercent changes the alpha of every control.
func (o *Overlay) SetOpacityPercent(p int) {
	o.cfg.OpacityPercent = max(0, min(100, p))
	a := OpacityFromPercent(o.cfg.OpacityPercent)
	for _, e := range o.sticks {
		e.stick.SetOpacity(a)
	}
	o.save()
}

// HandleTouch routes a frame and reports whether any control consumed it.
func (o *Overlay) HandleTouch(ev touch.Event) bool {
	if !o.Visible() || len(ev.Pointers) == 0 {
		return false
	}
	if o.edit {
		return o.handleEdit(ev)
	}

	handled := false
	for _, e := range o.sticks {
		before := e.stick.TrackID()
		if e.stick.TrackEvent(ev) {
			handled = true
		}
		switch after := e.stick.TrackID(); {
		case before == joystick.NoTrack && after != joystick.NoTrack:
			o.logger.Debug("stick claimed contact", "stick", e.name, "pointer", after)
		case before != joystick.NoTrack && after == joystick.NoTrack:
			o.logger.Debug("stick released contact", "stick", e.name, "pointer", before)
		}
	}
	return handled
}

// handleEdit drags the stick under the contact that began the edit. Other
// contacts are ignored until that contact ends.
func (o *Overlay) handleEdit(ev touch.Event) bool {
	switch ev.Action {
	case touch.Begin:
		if o.editing != nil || !ev.HasChanged() {
			return false
		}
		p := ev.Changed()
		for _, e := range o.sticks {
			if e.stick.Bounds().Contains(int(p.X), int(p.Y)) {
				o.editing = e.stick
				o.editID = p.ID
				e.stick.ConfigureTouch(touch.Single(touch.Begin, p.ID, p.X, p.Y))
				return true
			}
		}
		return false
	case touch.Move:
		if o.editing == nil {
			return false
		}
		i := ev.Find(o.editID)
		if i < 0 {
			return false
		}
		p := ev.Pointers[i]
		o.editing.ConfigureTouch(touch.Single(touch.Move, p.ID, p.X, p.Y))
		return true
	case touch.End:
		if o.editing == nil || !ev.HasChanged() || ev.Changed().ID != o.editID {
			return false
		}
		o.editing = nil
		o.save()
		return true
	}
	return false
}

func (o *Overlay) releaseAll() {
	for _, e := range o.sticks {
		e.stick.Release()
	}
}

// Layout returns the current arrangement as it would be persisted.
func (o *Overlay) Layout() layout.Layout {
	l := layout.Layout{Scale: o.cfg.Scale, OpacityPercent: layout.Percent(o.cfg.OpacityPercent)}
	for _, e := range o.sticks {
		x, y := e.stick.Position()
		l.Set(layout.Placement{Name: e.name, X: x, Y: y})
	}
	return l
}

func (o *Overlay) save() {
	o.saved = o.Layout()
	if o.store == nil {
		return
	}
	if err := o.store.Save(o.saved); err != nil {
		o.logger.Error("failed to save overlay layout", "error", err)
		return
	}
	o.logger.Info("saved overlay layout", "controls", len(o.saved.Controls), "scale", o.saved.Scale)
}

// Snapshot aggregates the sticks into a controller state.
func (o *Overlay) Snapshot() ctrl.State {
	var s ctrl.State
	for _, e := range o.sticks {
		j := e.stick
		s.SetAxis(j.XControl(), j.X())
		s.SetAxis(j.YControl(), j.Y())
		s.SetPressed(j.LegacyID(), j.Pressed())
	}
	return s
}

// Draw renders every visible control.
func (o *Overlay) Draw(d joystick.Drawer) {
	if !o.Visible() {
		return
	}
	for _, e := range o.sticks {
		e.stick.Draw(d)
	}
}
