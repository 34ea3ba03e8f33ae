// Package ctrl holds the controller-state snapshot the overlay hands to an
// emulation core once per frame.
package ctrl

// Axis controls a stick can feed.
const (
	AxisLeftX = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisCount
)

// Legacy stick identifiers. Each maps to one bit of State.Pressed.
const (
	StickLeft = iota
	StickRight
	StickCount
)

// State is a snapshot of all analog inputs. Axis values lie in [-1, 1]
// with positive Y pointing down, as on screen.
type State struct {
	Axes    [AxisCount]float64
	Pressed uint32
}

// SetAxis stores v for the given control. Unknown controls are ignored.
func (s *State) SetAxis(control int, v float64) {
	if control < 0 || control >= AxisCount {
		return
	}
	s.Axes[control] = v
}

// Axis returns the value for control, or 0 for unknown controls.
func (s State) Axis(control int) float64 {
	if control < 0 || control >= AxisCount {
		return 0
	}
	return s.Axes[control]
}

// SetPressed marks the stick with the given legacy id as held.
func (s *State) SetPressed(legacyID int, pressed bool) {
	if legacyID < 0 || legacyID >= 32 {
		return
	}
	if pressed {
		s.Pressed |= 1 << legacyID
	} else {
		s.Pressed &^= 1 << legacyID
	}
}

// IsPressed reports whether the stick with the given legacy id is held.
func (s State) IsPressed(legacyID int) bool {
	if legacyID < 0 || legacyID >= 32 {
		return false
	}
	return s.Pressed&(1<<legacyID) != 0
}

func AxisName(control int) string {
	switch control {
	case AxisLeftX:
		return "lx"
	case AxisLeftY:
		return "ly"
	case AxisRightX:
		return "rx"
	case AxisRightY:
		return "ry"
	default:
		return ""
	}
}
