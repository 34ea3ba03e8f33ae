// Package touch models multi-contact touch events as delivered by a host
// surface: one action per event, naming the contact that changed, plus every
// contact currently on screen.
package touch

import "fmt"

// Action is the kind of change an event carries.
type Action uint8

const (
	// Begin reports a newly added contact at Event.Index.
	Begin Action = iota
	// End reports a removed contact at Event.Index.
	End
	// Move reports that one or more present contacts moved.
	Move
)

func (a Action) String() string {
	switch a {
	case Begin:
		return "begin"
	case End:
		return "end"
	case Move:
		return "move"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// ParseAction is the inverse of Action.String.
func ParseAction(s string) (Action, error) {
	switch s {
	case "begin", "down":
		return Begin, nil
	case "end", "up":
		return End, nil
	case "move":
		return Move, nil
	default:
		return 0, fmt.Errorf("unknown touch action %q", s)
	}
}

// Pointer is one active contact. IDs are stable for the lifetime of a
// contact and may be reused by the host once it ends.
type Pointer struct {
	ID   int32
	X, Y float32
}

// Event is a single touch frame.
type Event struct {
	Action Action
	// Index of the changed contact in Pointers. Only meaningful for Begin and End.
	Index    int
	Pointers []Pointer
}

// X returns the first contact's x coordinate, or 0 for an empty event.
func (e Event) X() float32 {
	if len(e.Pointers) == 0 {
		return 0
	}
	return e.Pointers[0].X
}

// Y returns the first contact's y coordinate, or 0 for an empty event.
func (e Event) Y() float32 {
	if len(e.Pointers) == 0 {
		return 0
	}
	return e.Pointers[0].Y
}

// HasChanged reports whether Index names a contact of the frame.
func (e Event) HasChanged() bool {
	return e.Index >= 0 && e.Index < len(e.Pointers)
}

// Changed returns the contact named by Index. It panics unless HasChanged.
func (e Event) Changed() Pointer {
	return e.Pointers[e.Index]
}

// Find returns the index of the contact with the given id, or -1.
func (e Event) Find(id int32) int {
	for i, p := range e.Pointers {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// Single builds a one-contact event, the common case for mouse-driven hosts.
func Single(action Action, id int32, x, y float32) Event {
	return Event{Action: action, Pointers: []Pointer{{ID: id, X: x, Y: y}}}
}
