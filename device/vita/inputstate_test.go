package vita_test

import (
	"testing"

	"github.com/Alia5/viipad/ctrl"
	"github.com/Alia5/viipad/device/vita"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputReports(t *testing.T) {
	tests := []struct {
		name           string
		state          ctrl.State
		expectedReport []byte
	}{
		{
			name:           "neutral",
			state:          ctrl.State{},
			expectedReport: []byte{0x00, 0x00, 0x00, 0x00, 0x80, 0x80, 0x80, 0x80},
		},
		{
			name: "both sticks held at extremes",
			state: ctrl.State{
				Axes:    [ctrl.AxisCount]float64{-1, 1, 1, -1},
				Pressed: 1<<ctrl.StickLeft | 1<<ctrl.StickRight,
			},
			expectedReport: []byte{0x06, 0x00, 0x00, 0x00, 0x01, 0xff, 0xff, 0x01},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedReport, vita.Encode(tt.state).BuildReport())
		})
	}
}

func TestInputStateBinary(t *testing.T) {
	in := vita.InputState{Buttons: vita.ButtonL3, LX: 3, LY: 200, RX: 128, RY: 0}
	b, err := in.MarshalBinary()
	require.NoError(t, err)

	var out vita.InputState
	require.NoError(t, out.UnmarshalBinary(b))
	assert.Equal(t, in, out)
	assert.Error(t, out.UnmarshalBinary(b[:4]))
}
