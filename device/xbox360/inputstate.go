// Package xbox360 encodes controller snapshots as wired Xbox 360 input reports.
package xbox360

import (
	"encoding/binary"
	"io"

	"github.com/Alia5/viipad/ctrl"
	"github.com/Alia5/viipad/device"
)

// Stick button bitmasks (XInput compatible). The overlay only produces
// thumb presses; the remaining bits stay zero.
const (
	ButtonLThumb = 0x0040
	ButtonRThumb = 0x0080
)

// ReportSize is the length of a wired input report.
const ReportSize = 20

// WireSize is the length of the compact MarshalBinary form.
const WireSize = 10

// InputState is the stick part of an XInput gamepad state. Triggers and
// face buttons are not driven by on-screen sticks and are sent as zero.
// viipad:wire xbox360 c2s buttons:u16 lx:i16 ly:i16 rx:i16 ry:i16
type InputState struct {
	Buttons uint16
	// Sticks: signed 16-bit, positive Y is up
	LX, LY int16
	RX, RY int16
}

var _ device.State = (*InputState)(nil)

// FromState converts an overlay snapshot. Screen Y grows downward, so Y axes
// are negated to XInput's up-positive convention.
func FromState(s ctrl.State) *InputState {
	x := &InputState{
		LX: device.AxisToI16(s.Axis(ctrl.AxisLeftX)),
		LY: device.AxisToI16(-s.Axis(ctrl.AxisLeftY)),
		RX: device.AxisToI16(s.Axis(ctrl.AxisRightX)),
		RY: device.AxisToI16(-s.Axis(ctrl.AxisRightY)),
	}
	if s.IsPressed(ctrl.StickLeft) {
		x.Buttons |= ButtonLThumb
	}
	if s.IsPressed(ctrl.StickRight) {
		x.Buttons |= ButtonRThumb
	}
	return x
}

// Encode is a device.Encoder for this report format.
func Encode(s ctrl.State) device.State { return FromState(s) }

// BuildReport encodes an InputState into the 20-byte Xbox 360 wired USB input report.
// Layout (indices in the returned slice):
//
//	 0: 0x00              - Report ID
//	 1: 0x14              - Payload size (20 bytes)
//	 2-3: Buttons (little-endian)
//	 4-5: LT RT, always 0
//	 6-13: LX LY RX RY (little-endian int16)
//	14-19: Reserved / zero
func (x *InputState) BuildReport() []byte {
	b := make([]byte, ReportSize)
	b[0] = 0x00
	b[1] = 0x14
	binary.LittleEndian.PutUint16(b[2:4], x.Buttons)
	putSticks(b[6:14], x)
	return b
}

// MarshalBinary encodes InputState to its compact 10-byte form.
func (x *InputState) MarshalBinary() ([]byte, error) {
	b := make([]byte, WireSize)
	binary.LittleEndian.PutUint16(b[0:2], x.Buttons)
	putSticks(b[2:10], x)
	return b, nil
}

// UnmarshalBinary decodes the compact form.
func (x *InputState) UnmarshalBinary(data []byte) error {
	if len(data) < WireSize {
		return io.ErrUnexpectedEOF
	}
	x.Buttons = binary.LittleEndian.Uint16(data[0:2])
	x.LX = int16(binary.LittleEndian.Uint16(data[2:4]))
	x.LY = int16(binary.LittleEndian.Uint16(data[4:6]))
	x.RX = int16(binary.LittleEndian.Uint16(data[6:8]))
	x.RY = int16(binary.LittleEndian.Uint16(data[8:10]))
	return nil
}

func putSticks(b []byte, x *InputState) {
	for i, v := range [4]int16{x.LX, x.LY, x.RX, x.RY} {
		binary.LittleEndian.PutUint16(b[2*i:], uint16(v))
	}
}
