package overlay_test

import (
	"testing"

	"github.com/Alia5/viipad/ctrl"
	"github.com/Alia5/viipad/geom"
	th "github.com/Alia5/viipad/internal/testing"
	"github.com/Alia5/viipad/joystick"
	"github.com/Alia5/viipad/layout"
	"github.com/Alia5/viipad/overlay"
	"github.com/Alia5/viipad/touch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func center(r geom.Rect) (float32, float32) {
	return float32(r.CenterX()), float32(r.CenterY())
}

func TestDefaultPlacement(t *testing.T) {
	o, _ := th.NewTestOverlay(t, th.DefaultConfig())

	left := o.Stick(overlay.LeftStick)
	right := o.Stick(overlay.RightStick)
	require.NotNil(t, left)
	require.NotNil(t, right)
	assert.Nil(t, o.Stick("middle"))

	assert.Equal(t, geom.FromSize(50, 470, 200, 200), left.Bounds())
	assert.Equal(t, geom.FromSize(1030, 470, 200, 200), right.Bounds())
	assert.Equal(t, ctrl.AxisLeftX, left.XControl())
	assert.Equal(t, ctrl.AxisRightY, right.YControl())
	assert.Equal(t, ctrl.StickRight, right.LegacyID())
}

func TestSnapshotAggregatesSticks(t *testing.T) {
	o, _ := th.NewTestOverlay(t, th.DefaultConfig())
	lx, ly := center(o.Stick(overlay.LeftStick).Bounds())
	rx, ry := center(o.Stick(overlay.RightStick).Bounds())

	assert.True(t, o.HandleTouch(touch.Single(touch.Begin, 0, lx, ly)))
	assert.True(t, o.HandleTouch(touch.Event{
		Action: touch.Begin,
		Index:  1,
		Pointers: []touch.Pointer{
			{ID: 0, X: lx, Y: ly},
			{ID: 1, X: rx, Y: ry},
		},
	}))
	assert.True(t, o.HandleTouch(touch.Event{
		Action: touch.Move,
		Pointers: []touch.Pointer{
			{ID: 0, X: lx + 100, Y: ly},
			{ID: 1, X: rx, Y: ry - 100},
		},
	}))

	s := o.Snapshot()
	assert.InDelta(t, 1.0, s.Axis(ctrl.AxisLeftX), 1e-9)
	assert.InDelta(t, 0.0, s.Axis(ctrl.AxisLeftY), 1e-9)
	assert.InDelta(t, 0.0, s.Axis(ctrl.AxisRightX), 1e-9)
	assert.InDelta(t, -1.0, s.Axis(ctrl.AxisRightY), 1e-9)
	assert.True(t, s.IsPressed(ctrl.StickLeft))
	assert.True(t, s.IsPressed(ctrl.StickRight))

	assert.True(t, o.HandleTouch(touch.Event{
		Action: touch.End,
		Index:  0,
		Pointers: []touch.Pointer{
			{ID: 0, X: lx + 100, Y: ly},
			{ID: 1, X: rx, Y: ry - 100},
		},
	}))
	s = o.Snapshot()
	assert.Equal(t, 0.0, s.Axis(ctrl.AxisLeftX))
	assert.False(t, s.IsPressed(ctrl.StickLeft))
	assert.True(t, s.IsPressed(ctrl.StickRight))
}

func TestTouchOutsideControlsIsNotHandled(t *testing.T) {
	o, _ := th.NewTestOverlay(t, th.DefaultConfig())
	assert.False(t, o.HandleTouch(touch.Single(touch.Begin, 0, 640, 100)))
	assert.False(t, o.HandleTouch(touch.Event{Action: touch.Move}))
	assert.Equal(t, ctrl.State{}, o.Snapshot())
}

func TestHiddenOverlayIgnoresTouches(t *testing.T) {
	o, _ := th.NewTestOverlay(t, th.DefaultConfig())
	o.SetState(0, false, false)
	assert.False(t, o.Visible())

	x, y := center(o.Stick(overlay.LeftStick).Bounds())
	assert.False(t, o.HandleTouch(touch.Single(touch.Begin, 0, x, y)))

	var d countingDrawer
	o.Draw(&d)
	assert.Zero(t, d.n)
}

func TestEditDragPersistsPlacement(t *testing.T) {
	o, store := th.NewTestOverlay(t, th.DefaultConfig())
	o.SetState(overlay.ShowBasic, true, false)
	assert.True(t, o.EditMode())

	left := o.Stick(overlay.LeftStick)
	x, y := center(left.Bounds())

	assert.True(t, o.HandleTouch(touch.Single(touch.Begin, 0, x, y)))
	assert.True(t, o.HandleTouch(touch.Single(touch.Move, 0, x+30, y-20)))
	assert.True(t, o.HandleTouch(touch.Single(touch.Move, 0, x+40, y-40)))
	assert.Equal(t, 0, store.Saves)
	assert.True(t, o.HandleTouch(touch.Single(touch.End, 0, x+40, y-40)))

	want := geom.FromSize(90, 430, 200, 200)
	assert.Equal(t, want, left.Bounds())
	assert.Equal(t, want, left.OriginalBounds())
	assert.Equal(t, joystick.NoTrack, left.TrackID())
	assert.Equal(t, 1, store.Saves)
	p, ok := store.Layout.Lookup(overlay.LeftStick)
	require.True(t, ok)
	assert.Equal(t, layout.Placement{Name: overlay.LeftStick, X: 90, Y: 430}, p)

	// An edit-mode move without a selected control is not consumed.
	assert.False(t, o.HandleTouch(touch.Single(touch.Move, 0, 5, 5)))
}

func TestEnteringEditModeReleasesSticks(t *testing.T) {
	o, _ := th.NewTestOverlay(t, th.DefaultConfig())
	left := o.Stick(overlay.LeftStick)
	x, y := center(left.Bounds())
	require.True(t, o.HandleTouch(touch.Single(touch.Begin, 0, x, y)))
	require.True(t, left.Pressed())

	o.SetState(overlay.ShowBasic, true, false)
	assert.False(t, left.Pressed())
	assert.Equal(t, ctrl.State{}, o.Snapshot())
}

func TestSavedLayoutIsApplied(t *testing.T) {
	store := &th.MemoryStore{Layout: layout.Layout{
		Scale:          0.5,
		OpacityPercent: layout.Percent(50),
		Controls:       []layout.Placement{{Name: overlay.RightStick, X: 600, Y: 10}},
	}}
	o := overlay.New(th.DefaultConfig(), store, th.DiscardLogger())

	right := o.Stick(overlay.RightStick)
	assert.Equal(t, geom.FromSize(600, 10, 100, 100), right.Bounds())
	assert.Equal(t, 0.5, o.Scale())
	assert.Equal(t, overlay.OpacityFromPercent(50), right.Opacity())
	assert.Equal(t, geom.FromSize(25, 595, 100, 100), o.Stick(overlay.LeftStick).Bounds())
}

func TestResetRestoresDefaults(t *testing.T) {
	store := &th.MemoryStore{Layout: layout.Layout{
		Scale:    2,
		Controls: []layout.Placement{{Name: overlay.LeftStick, X: 1, Y: 1}},
	}}
	o := overlay.New(th.DefaultConfig(), store, th.DiscardLogger())
	o.SetState(overlay.ShowBasic, true, true)

	assert.Equal(t, 1.0, o.Scale())
	assert.Equal(t, geom.FromSize(50, 470, 200, 200), o.Stick(overlay.LeftStick).Bounds())
	assert.Equal(t, 1, store.Saves)
	p, _ := store.Layout.Lookup(overlay.LeftStick)
	assert.Equal(t, 50, p.X)
}

func TestScaleAndOpacity(t *testing.T) {
	o, store := th.NewTestOverlay(t, th.DefaultConfig())

	o.SetScale(10)
	assert.Equal(t, overlay.MaxScale, o.Scale())
	o.SetScale(0.1)
	assert.Equal(t, overlay.MinScale, o.Scale())
	assert.Equal(t, 50, o.Stick(overlay.LeftStick).Width())

	o.SetOpacityPercent(150)
	assert.Equal(t, joystick.OpaqueAlpha, o.Stick(overlay.LeftStick).Opacity())
	o.SetOpacityPercent(40)
	assert.Equal(t, 102, o.Stick(overlay.RightStick).Opacity())
	assert.Equal(t, layout.Percent(40), store.Layout.OpacityPercent)
	assert.Equal(t, 40, o.OpacityPercent())
	assert.Equal(t, 4, store.Saves)
}

func TestStoreFailuresDoNotBreakOverlay(t *testing.T) {
	store := &th.MemoryStore{Fail: true}
	o := overlay.New(th.DefaultConfig(), store, th.DiscardLogger())
	require.NotNil(t, o.Stick(overlay.LeftStick))
	o.SetScale(2)
	assert.Equal(t, 2.0, o.Scale())
	assert.Equal(t, 0, store.Saves)
}

func TestOpacityFromPercent(t *testing.T) {
	assert.Equal(t, 0, overlay.OpacityFromPercent(-5))
	assert.Equal(t, 127, overlay.OpacityFromPercent(50))
	assert.Equal(t, 255, overlay.OpacityFromPercent(100))
}

type countingDrawer struct{ n int }

func (c *countingDrawer) DrawSprite(joystick.Sprite) { c.n++ }

func TestDrawVisibleSticks(t *testing.T) {
	o, _ := th.NewTestOverlay(t, th.DefaultConfig())
	var d countingDrawer
	o.Draw(&d)
	assert.Equal(t, 6, d.n)
}

func TestZeroOpacityIsRestored(t *testing.T) {
	o, store := th.NewTestOverlay(t, th.DefaultConfig())
	o.SetOpacityPercent(0)

	restored := overlay.New(th.DefaultConfig(), store, th.DiscardLogger())
	assert.Equal(t, 0, restored.OpacityPercent())
	assert.Equal(t, layout.Percent(0), restored.Layout().OpacityPercent)
	assert.Equal(t, 0, restored.Stick(overlay.LeftStick).Opacity())
}

func TestEditDragFollowsItsOwnContact(t *testing.T) {
	o, store := th.NewTestOverlay(t, th.DefaultConfig())
	o.SetState(overlay.ShowBasic, true, false)
	left := o.Stick(overlay.LeftStick)
	x, y := center(left.Bounds())

	require.True(t, o.HandleTouch(touch.Single(touch.Begin, 0, x, y)))
	assert.False(t, o.HandleTouch(touch.Event{
		Action:   touch.Begin,
		Index:    1,
		Pointers: []touch.Pointer{{ID: 0, X: x, Y: y}, {ID: 1, X: 640, Y: 100}},
	}), "a second contact cannot start another drag")

	// The dragging contact is not first in the frame.
	two := []touch.Pointer{{ID: 1, X: 650, Y: 100}, {ID: 0, X: x + 10, Y: y}}
	assert.True(t, o.HandleTouch(touch.Event{Action: touch.Move, Pointers: two}))
	assert.Equal(t, geom.FromSize(60, 470, 200, 200), left.Bounds())

	assert.False(t, o.HandleTouch(touch.Event{Action: touch.End, Index: 0, Pointers: two}),
		"lifting the other contact keeps the drag going")
	assert.Equal(t, 0, store.Saves)

	assert.True(t, o.HandleTouch(touch.Single(touch.Move, 0, x+20, y)))
	assert.True(t, o.HandleTouch(touch.Single(touch.End, 0, x+20, y)))
	assert.Equal(t, 1, store.Saves)
	p, _ := store.Layout.Lookup(overlay.LeftStick)
	assert.Equal(t, layout.Placement{Name: overlay.LeftStick, X: 70, Y: 470}, p)
}
