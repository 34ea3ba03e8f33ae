// Package dualshock4 encodes stick snapshots as DualShock 4 USB input reports.
package dualshock4

import (
	"encoding/binary"
	"io"

	"github.com/Alia5/viipad/ctrl"
	"github.com/Alia5/viipad/device"
)

// WireSize is the length of the compact MarshalBinary form.
const WireSize = 7

// InputState is the part of a DS4 report the on-screen sticks can drive.
// Stick values are centered on zero with positive Y pointing down, which is
// also the controller's own convention.
type InputState struct {
	LX, LY  int8
	RX, RY  int8
	Buttons uint16
	// Counter is the 6-bit report sequence number.
	Counter uint8
}

var _ device.State = (*InputState)(nil)

// FromState converts an overlay snapshot.
func FromState(s ctrl.State) *InputState {
	d := &InputState{
		LX: device.AxisToI8(s.Axis(ctrl.AxisLeftX)),
		LY: device.AxisToI8(s.Axis(ctrl.AxisLeftY)),
		RX: device.AxisToI8(s.Axis(ctrl.AxisRightX)),
		RY: device.AxisToI8(s.Axis(ctrl.AxisRightY)),
	}
	if s.IsPressed(ctrl.StickLeft) {
		d.Buttons |= ButtonL3
	}
	if s.IsPressed(ctrl.StickRight) {
		d.Buttons |= ButtonR3
	}
	return d
}

// Encode is a device.Encoder for this report format.
func Encode(s ctrl.State) device.State { return FromState(s) }

// BuildReport encodes the 64-byte USB input report.
// Layout (indices in the returned slice):
//
//	 0: 0x01              - Report ID
//	 1-4: LX LY RX RY     - 0..255, 128 is center
//	 5: DPad (low nibble, 8 = neutral) | face buttons (high nibble)
//	 6: L1 R1 L2 R2 Share Options L3 R3
//	 7: PS / touchpad click | counter << 2
//	 8-9: L2 R2 analog
//	19-24: accel X Y Z (little-endian int16)
//	30: battery
//	35, 39: touch contact headers (0x80 = inactive)
func (s *InputState) BuildReport() []byte {
	b := make([]byte, InputReportSize)
	b[0] = ReportIDInput

	b[1] = uint8(int16(s.LX) + 128)
	b[2] = uint8(int16(s.LY) + 128)
	b[3] = uint8(int16(s.RX) + 128)
	b[4] = uint8(int16(s.RY) + 128)

	b[5] = DPadUSBNeutral&DPadMask | uint8(s.Buttons)&0xF0
	b[6] = uint8(s.Buttons >> 8)
	b[7] = (s.Counter & CounterMask) << CounterShift

	accel := [3]int16{DefaultAccelXRaw, DefaultAccelYRaw, DefaultAccelZRaw}
	for i, v := range accel {
		binary.LittleEndian.PutUint16(b[19+2*i:], uint16(v))
	}

	b[30] = BatteryFullyCharged
	b[35] = TouchInactiveMask
	b[39] = TouchInactiveMask
	return b
}

// MarshalBinary encodes InputState to its compact 7-byte form.
func (s *InputState) MarshalBinary() ([]byte, error) {
	b := make([]byte, WireSize)
	b[0] = uint8(s.LX)
	b[1] = uint8(s.LY)
	b[2] = uint8(s.RX)
	b[3] = uint8(s.RY)
	binary.LittleEndian.PutUint16(b[4:6], s.Buttons)
	b[6] = s.Counter
	return b, nil
}

// UnmarshalBinary decodes the compact form.
func (s *InputState) UnmarshalBinary(data []byte) error {
	if len(data) < WireSize {
		return io.ErrUnexpectedEOF
	}
	s.LX = int8(data[0])
	s.LY = int8(data[1])
	s.RX = int8(data[2])
	s.RY = int8(data[3])
	s.Buttons = binary.LittleEndian.Uint16(data[4:6])
	s.Counter = data[6]
	return nil
}
