package touch

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

const (
	headerSize  = 3
	pointerSize = 12
	// MaxPointers is the largest contact count a frame can carry.
	MaxPointers = math.MaxUint8
)

// ErrShortFrame is returned when a frame ends before its declared contacts.
var ErrShortFrame = errors.New("touch: short frame")

// ErrBadIndex is returned for a Begin or End frame whose index names no
// contact.
var ErrBadIndex = errors.New("touch: index names no contact")

// MarshalBinary encodes the event as a little-endian frame.
// viipad:wire touch c2s action:u8 index:u8 count:u8 pointers:(id:i32 x:f32 y:f32)*count
func (e *Event) MarshalBinary() ([]byte, error) {
	if len(e.Pointers) > MaxPointers {
		return nil, fmt.Errorf("touch: %d contacts exceed frame limit", len(e.Pointers))
	}
	if e.Index < 0 || e.Index > math.MaxUint8 {
		return nil, fmt.Errorf("touch: index %d out of range", e.Index)
	}
	if e.Action != Move && !e.HasChanged() {
		return nil, fmt.Errorf("%w: index %d of %d", ErrBadIndex, e.Index, len(e.Pointers))
	}
	b := make([]byte, headerSize+pointerSize*len(e.Pointers))
	b[0] = byte(e.Action)
	b[1] = byte(e.Index)
	b[2] = byte(len(e.Pointers))
	off := headerSize
	for _, p := range e.Pointers {
		binary.LittleEndian.PutUint32(b[off:off+4], uint32(p.ID))
		binary.LittleEndian.PutUint32(b[off+4:off+8], math.Float32bits(p.X))
		binary.LittleEndian.PutUint32(b[off+8:off+12], math.Float32bits(p.Y))
		off += pointerSize
	}
	return b, nil
}

// UnmarshalBinary decodes a frame produced by MarshalBinary.
func (e *Event) UnmarshalBinary(data []byte) error {
	if len(data) < headerSize {
		return io.ErrUnexpectedEOF
	}
	if data[0] > byte(Move) {
		return fmt.Errorf("touch: invalid action %d", data[0])
	}
	n := int(data[2])
	if len(data) < headerSize+n*pointerSize {
		return ErrShortFrame
	}
	if Action(data[0]) != Move && int(data[1]) >= n {
		return fmt.Errorf("%w: index %d of %d", ErrBadIndex, data[1], n)
	}
	e.Action = Action(data[0])
	e.Index = int(data[1])
	e.Pointers = make([]Pointer, n)
	off := headerSize
	for i := range e.Pointers {
		e.Pointers[i] = Pointer{
			ID: int32(binary.LittleEndian.Uint32(data[off : off+4])),
			X:  math.Float32frombits(binary.LittleEndian.Uint32(data[off+4 : off+8])),
			Y:  math.Float32frombits(binary.LittleEndian.Uint32(data[off+8 : off+12])),
		}
		off += pointerSize
	}
	return nil
}

// FrameSize returns the encoded size of a frame carrying n contacts.
func FrameSize(n int) int {
	return headerSize + n*pointerSize
}
