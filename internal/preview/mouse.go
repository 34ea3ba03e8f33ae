package preview

import (
	"github.com/Alia5/viipad/touch"
	"github.com/gdamore/tcell/v2"
)

// MousePointerID is the contact id mouse-driven frames carry.
const MousePointerID int32 = 0

// MouseBridge turns primary-button mouse reports into a single-contact
// touch stream: press begins a contact, motion while held moves it and the
// release ends it.
type MouseBridge struct {
	cellW, cellH int
	down         bool
	lastX, lastY float32
}

func NewMouseBridge(cellW, cellH int) *MouseBridge {
	return &MouseBridge{cellW: max(1, cellW), cellH: max(1, cellH)}
}

// Translate returns the touch frame for a mouse report, if it produces one.
func (b *MouseBridge) Translate(ev *tcell.EventMouse) (touch.Event, bool) {
	col, row := ev.Position()
	x := float32(col*b.cellW + b.cellW/2)
	y := float32(row*b.cellH + b.cellH/2)
	held := ev.Buttons()&tcell.Button1 != 0

	switch {
	case held && !b.down:
		b.down = true
		b.lastX, b.lastY = x, y
		return touch.Single(touch.Begin, MousePointerID, x, y), true
	case held:
		if x == b.lastX && y == b.lastY {
			return touch.Event{}, false
		}
		b.lastX, b.lastY = x, y
		return touch.Single(touch.Move, MousePointerID, x, y), true
	case b.down:
		b.down = false
		// Some terminals report the release without coordinates; end where
		// the contact was last seen.
		return touch.Single(touch.End, MousePointerID, b.lastX, b.lastY), true
	default:
		return touch.Event{}, false
	}
}

// Held reports whether a contact is currently open.
func (b *MouseBridge) Held() bool { return b.down }
