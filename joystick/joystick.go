// Package joystick implements a touch-driven virtual analog stick.
//
// A Joystick claims at most one touch contact, follows it while it moves and
// reports a square-gated analog value in [-1, 1] per axis. Rendering is left
// to a Drawer reading the stick's sprites each frame. A Joystick is not safe
// for concurrent use; hosts feed events and read state from one goroutine.
package joystick

import (
	"github.com/Alia5/viipad/geom"
	"github.com/Alia5/viipad/touch"
)

// NoTrack is the TrackID of a stick no contact owns.
const NoTrack int32 = -1

// Options configures a new Joystick.
type Options struct {
	Art Art
	// Outer is the initial screen rectangle of the outer ring.
	Outer geom.Rect
	// Inner is the initial rectangle of the movable knob.
	Inner geom.Rect

	LegacyID int
	XControl int
	YControl int

	// Recenter moves the stick's virtual center to the initial touch point.
	Recenter bool
}

type Joystick struct {
	currentX, currentY float64
	axisX, axisY       float64
	trackID            int32
	pressed            bool

	legacyID int
	xControl int
	yControl int

	posX, posY   int
	prevX, prevY int
	width        int
	height       int

	virtBounds geom.Rect
	origBounds geom.Rect
	opacity    int
	recenter   bool

	outer        Sprite
	innerDefault Sprite
	innerPressed Sprite
	boundsBox    Sprite
}

// New returns a stick resting at o.Outer.
func New(o Options) *Joystick {
	j := &Joystick{
		trackID:  NoTrack,
		legacyID: o.LegacyID,
		xControl: o.XControl,
		yControl: o.YControl,
		width:    o.Art.Width,
		height:   o.Art.Height,
		opacity:  OpaqueAlpha,
		recenter: o.Recenter,
		posX:     o.Outer.Left,
		posY:     o.Outer.Top,

		outer:        Sprite{Texture: o.Art.Outer, Bounds: o.Outer, Alpha: OpaqueAlpha},
		innerDefault: Sprite{Texture: o.Art.InnerDefault, Bounds: o.Inner, Alpha: OpaqueAlpha},
		innerPressed: Sprite{Texture: o.Art.InnerPressed, Bounds: o.Inner, Alpha: OpaqueAlpha},
		boundsBox:    Sprite{Texture: o.Art.Outer, Bounds: o.Outer},
	}
	j.virtBounds = o.Outer
	j.origBounds = o.Outer
	j.setInnerBounds()
	return j
}

// TrackEvent feeds one touch frame to the stick and reports whether the
// frame concerned it: a claim, the release of its contact, or movement of
// its contact.
func (j *Joystick) TrackEvent(ev touch.Event) bool {
	concerned := false

	switch {
	case !ev.HasChanged():
	case ev.Action == touch.Begin:
		p := ev.Changed()
		x, y := int(p.X), int(p.Y)
		if j.trackID == NoTrack && j.Bounds().Contains(x, y) {
			concerned = true
			j.pressed = true
			j.outer.Alpha = 0
			j.boundsBox.Alpha = j.opacity
			if j.recenter {
				j.virtBounds = j.virtBounds.Offset(x-j.virtBounds.CenterX(), y-j.virtBounds.CenterY())
			}
			j.boundsBox.Bounds = j.virtBounds
			j.trackID = p.ID
		}
	case ev.Action == touch.End:
		if j.trackID != NoTrack && ev.Changed().ID == j.trackID {
			j.release()
			return true
		}
	}

	if j.trackID == NoTrack {
		return concerned
	}

	if i := ev.Find(j.trackID); i >= 0 {
		concerned = true
		p := ev.Pointers[i]
		cx, cy := float64(j.virtBounds.CenterX()), float64(j.virtBounds.CenterY())
		maxX := float64(j.virtBounds.Right) - cx
		maxY := float64(j.virtBounds.Bottom) - cy
		j.currentX = (float64(p.X) - cx) / maxX
		j.currentY = (float64(p.Y) - cy) / maxY
		j.setInnerBounds()
	}
	return concerned
}

// Release drops the owned contact as if its End had arrived. It is a no-op
// when nothing is tracked.
func (j *Joystick) Release() {
	if j.trackID == NoTrack {
		return
	}
	j.release()
}

func (j *Joystick) release() {
	j.pressed = false
	j.currentX, j.currentY = 0, 0
	j.axisX, j.axisY = 0, 0
	j.outer.Alpha = j.opacity
	j.boundsBox.Alpha = 0
	j.virtBounds = j.origBounds
	j.outer.Bounds = j.origBounds
	j.boundsBox.Bounds = j.origBounds
	j.setInnerBounds()
	j.trackID = NoTrack
}

// ConfigureTouch moves the stick while the overlay is in edit mode. A Begin
// anchors the drag, each Move shifts the stick by the distance travelled
// since the previous frame.
func (j *Joystick) ConfigureTouch(ev touch.Event) {
	switch ev.Action {
	case touch.Begin:
		j.prevX, j.prevY = int(ev.X()), int(ev.Y())
	case touch.Move:
		x, y := int(ev.X()), int(ev.Y())
		j.posX += x - j.prevX
		j.posY += y - j.prevY
		r := geom.FromSize(j.posX, j.posY, j.width, j.height)
		j.outer.Bounds = r
		j.virtBounds = r
		j.setInnerBounds()
		j.origBounds = r
		j.boundsBox.Bounds = r
		j.prevX, j.prevY = x, y
	}
}

// setInnerBounds clamps the raw offset to the unit circle, places the knob
// and recomputes the reported axes.
func (j *Joystick) setInnerBounds() {
	x, y := ClampToUnitCircle(j.currentX, j.currentY)
	j.currentX, j.currentY = x, y

	vb := j.virtBounds
	px := vb.CenterX() + int(x*float64(vb.Width()/2))
	py := vb.CenterY() + int(y*float64(vb.Height()/2))
	knob := geom.CenteredAt(px, py, j.innerPressed.Bounds.Width(), j.innerPressed.Bounds.Height())
	j.innerDefault.Bounds = knob
	j.innerPressed.Bounds = knob

	j.axisX, j.axisY = SquareProject(x, y)
}

// Draw hands the stick's sprites to d, back to front.
func (j *Joystick) Draw(d Drawer) {
	d.DrawSprite(j.outer)
	if j.pressed {
		d.DrawSprite(j.innerPressed)
	} else {
		d.DrawSprite(j.innerDefault)
	}
	d.DrawSprite(j.boundsBox)
}

// X returns the reported horizontal axis in [-1, 1].
func (j *Joystick) X() float64 { return j.axisX }

// Y returns the reported vertical axis in [-1, 1]. Positive is down.
func (j *Joystick) Y() float64 { return j.axisY }

// Offset returns the clamped disk position before square projection.
func (j *Joystick) Offset() (x, y float64) { return j.currentX, j.currentY }

// LegacyID returns the button control pressed while a contact is tracked.
func (j *Joystick) LegacyID() int { return j.legacyID }

// XControl returns the axis control fed by X.
func (j *Joystick) XControl() int { return j.xControl }

// YControl returns the axis control fed by Y.
func (j *Joystick) YControl() int { return j.yControl }

// TrackID returns the tracked contact ID, or NoTrack.
func (j *Joystick) TrackID() int32 { return j.trackID }

// Pressed reports whether a contact is currently tracked.
func (j *Joystick) Pressed() bool { return j.pressed }

// Width and Height return the intrinsic size of the outer art.
func (j *Joystick) Width() int { return j.width }
func (j *Joystick) Height() int { return j.height }

// Bounds returns the outer ring rectangle used for hit-testing.
func (j *Joystick) Bounds() geom.Rect { return j.outer.Bounds }

// SetBounds places the outer ring directly; used by host layout.
func (j *Joystick) SetBounds(r geom.Rect) { j.outer.Bounds = r }

// VirtualBounds returns the drag area, which grows past Bounds while pressed.
func (j *Joystick) VirtualBounds() geom.Rect { return j.virtBounds }

// OriginalBounds returns the placement the stick returns to on release.
func (j *Joystick) OriginalBounds() geom.Rect { return j.origBounds }

// InnerBounds returns the rectangle of the inner knob art.
func (j *Joystick) InnerBounds() geom.Rect { return j.innerDefault.Bounds }

// SetPosition sets the persisted top-left corner edit-mode drags start from.
func (j *Joystick) SetPosition(x, y int) {
	j.posX, j.posY = x, y
}

// Position returns the persisted top-left corner.
func (j *Joystick) Position() (x, y int) { return j.posX, j.posY }

// Recenter reports whether a Begin moves the stick under the finger.
func (j *Joystick) Recenter() bool { return j.recenter }

// SetRecenter toggles recentering on Begin.
func (j *Joystick) SetRecenter(enable bool) { j.recenter = enable }

// Opacity returns the art alpha in [0, 255].
func (j *Joystick) Opacity() int { return j.opacity }

// SetOpacity sets the alpha shared by the stick's art. The outer ring and
// the bounds box swap visibility depending on whether a contact is tracked.
func (j *Joystick) SetOpacity(value int) {
	j.opacity = value
	j.innerDefault.Alpha = value
	j.innerPressed.Alpha = value
	if j.trackID == NoTrack {
		j.outer.Alpha = value
		j.boundsBox.Alpha = 0
	} else {
		j.outer.Alpha = 0
		j.boundsBox.Alpha = value
	}
}

// SetColor tints the art. The pressed knob keeps a third of its alpha so it
// reads as a highlight over the ring.
func (j *Joystick) SetColor(argb uint32) {
	j.innerDefault.Tint = argb
	j.boundsBox.Tint = argb
	j.outer.Tint = argb

	alpha := uint32(j.innerPressed.Alpha/3) << 24
	j.innerPressed.Tint = alpha | argb&0x00FFFFFF
}

// Sprites returns the outer ring, the knob for the current state and the
// bounds box, in draw order.
func (j *Joystick) Sprites() [3]Sprite {
	inner := j.innerDefault
	if j.pressed {
		inner = j.innerPressed
	}
	return [3]Sprite{j.outer, inner, j.boundsBox}
}
