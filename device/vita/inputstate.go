// Package vita encodes controller snapshots in the layout of the handheld's
// control data: a button word followed by four 8-bit stick axes.
package vita

import (
	"encoding/binary"
	"io"

	"github.com/Alia5/viipad/ctrl"
	"github.com/Alia5/viipad/device"
)

// Stick press bits as exposed on the TV variant.
const (
	ButtonL3 = 0x00000002
	ButtonR3 = 0x00000004
)

// ReportSize is the encoded size of an InputState.
const ReportSize = 8

// InputState mirrors the analog part of the control data. Axes are
// 0-255 with 128 at rest and positive Y pointing down.
// viipad:wire vita c2s buttons:u32 lx:u8 ly:u8 rx:u8 ry:u8
type InputState struct {
	Buttons uint32
	LX, LY  uint8
	RX, RY  uint8
}

var _ device.State = (*InputState)(nil)

// FromState converts an overlay snapshot.
func FromState(s ctrl.State) *InputState {
	v := &InputState{
		LX: device.AxisToU8(s.Axis(ctrl.AxisLeftX)),
		LY: device.AxisToU8(s.Axis(ctrl.AxisLeftY)),
		RX: device.AxisToU8(s.Axis(ctrl.AxisRightX)),
		RY: device.AxisToU8(s.Axis(ctrl.AxisRightY)),
	}
	if s.IsPressed(ctrl.StickLeft) {
		v.Buttons |= ButtonL3
	}
	if s.IsPressed(ctrl.StickRight) {
		v.Buttons |= ButtonR3
	}
	return v
}

// Encode is a device.Encoder for this report format.
func Encode(s ctrl.State) device.State { return FromState(s) }

func (v *InputState) BuildReport() []byte {
	b, _ := v.MarshalBinary()
	return b
}

func (v *InputState) MarshalBinary() ([]byte, error) {
	b := make([]byte, ReportSize)
	binary.LittleEndian.PutUint32(b[0:4], v.Buttons)
	b[4] = v.LX
	b[5] = v.LY
	b[6] = v.RX
	b[7] = v.RY
	return b, nil
}

func (v *InputState) UnmarshalBinary(data []byte) error {
	if len(data) < ReportSize {
		return io.ErrUnexpectedEOF
	}
	v.Buttons = binary.LittleEndian.Uint32(data[0:4])
	v.LX = data[4]
	v.LY = data[5]
	v.RX = data[6]
	v.RY = data[7]
	return nil
}
