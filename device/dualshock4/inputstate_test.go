package dualshock4_test

import (
	"testing"

	"github.com/Alia5/viipad/ctrl"
	"github.com/Alia5/viipad/device/dualshock4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputReports(t *testing.T) {
	tests := []struct {
		name    string
		state   ctrl.State
		sticks  []byte
		buttons byte
	}{
		{
			name:    "neutral",
			state:   ctrl.State{},
			sticks:  []byte{0x80, 0x80, 0x80, 0x80},
			buttons: 0x00,
		},
		{
			name: "left pushed right, right pushed up",
			state: ctrl.State{
				Axes:    [ctrl.AxisCount]float64{1, 0, 0, -1},
				Pressed: 1<<ctrl.StickLeft | 1<<ctrl.StickRight,
			},
			sticks:  []byte{0xff, 0x80, 0x80, 0x01},
			buttons: 0xc0,
		},
		{
			name: "only right held",
			state: ctrl.State{
				Axes:    [ctrl.AxisCount]float64{-0.5, 0.5, 0, 0},
				Pressed: 1 << ctrl.StickRight,
			},
			sticks:  []byte{0x40, 0xc0, 0x80, 0x80},
			buttons: 0x80,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := dualshock4.Encode(tt.state).BuildReport()
			require.Len(t, b, dualshock4.InputReportSize)

			assert.Equal(t, byte(dualshock4.ReportIDInput), b[0])
			assert.Equal(t, tt.sticks, b[1:5])
			assert.Equal(t, dualshock4.DPadUSBNeutral, b[5])
			assert.Equal(t, tt.buttons, b[6])
			assert.Equal(t, []byte{0x61, 0xec}, b[23:25], "resting accel Z")
			assert.Equal(t, byte(dualshock4.BatteryFullyCharged), b[30])
			assert.Equal(t, dualshock4.TouchInactiveMask, b[35])
			assert.Equal(t, dualshock4.TouchInactiveMask, b[39])
		})
	}
}

func TestReportCounter(t *testing.T) {
	s := dualshock4.InputState{Counter: 0x41}
	assert.Equal(t, byte(0x04), s.BuildReport()[7])
}

func TestInputStateBinary(t *testing.T) {
	in := dualshock4.InputState{LX: -127, LY: 5, RX: 127, RY: 0, Buttons: dualshock4.ButtonL3, Counter: 9}
	b, err := in.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, dualshock4.WireSize)

	var out dualshock4.InputState
	require.NoError(t, out.UnmarshalBinary(b))
	assert.Equal(t, in, out)
	assert.Error(t, out.UnmarshalBinary(b[:3]))
}
