package joystick_test

import (
	"math"
	"testing"

	"github.com/Alia5/viipad/joystick"
	"github.com/stretchr/testify/assert"
)

func TestSquareProjectAxisAligned(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{name: "0 deg", x: 0.6, y: 0},
		{name: "90 deg", x: 0, y: 0.6},
		{name: "180 deg", x: -1, y: 0},
		{name: "270 deg", x: 0, y: -1},
		{name: "center", x: 0, y: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, py := joystick.SquareProject(tt.x, tt.y)
			assert.Equal(t, tt.x, px)
			assert.Equal(t, tt.y, py)
		})
	}
}

func TestSquareProjectDiagonals(t *testing.T) {
	d := math.Sqrt2 / 2
	tests := []struct {
		name   string
		x, y   float64
		wx, wy float64
	}{
		{name: "45 deg", x: d, y: d, wx: 1, wy: 1},
		{name: "135 deg", x: -d, y: d, wx: -1, wy: 1},
		{name: "225 deg", x: -d, y: -d, wx: -1, wy: -1},
		{name: "315 deg", x: d, y: -d, wx: 1, wy: -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			px, py := joystick.SquareProject(tt.x, tt.y)
			assert.InDelta(t, tt.wx, px, 1e-9)
			assert.InDelta(t, tt.wy, py, 1e-9)
		})
	}
}

func TestSquareProjectNearCenterIsIdentity(t *testing.T) {
	px, py := joystick.SquareProject(0.005, -0.009)
	assert.Equal(t, 0.005, px)
	assert.Equal(t, -0.009, py)
}

func TestSquareProjectBoundaryReachesSquare(t *testing.T) {
	for deg := 0; deg < 360; deg += 5 {
		a := float64(deg) * math.Pi / 180
		px, py := joystick.SquareProject(math.Cos(a), math.Sin(a))
		m := math.Max(math.Abs(px), math.Abs(py))
		assert.InDelta(t, 1.0, m, 1e-9, "angle %d", deg)
		assert.InDelta(t, math.Atan2(math.Sin(a), math.Cos(a)), math.Atan2(py, px), 1e-9, "angle %d", deg)
	}
}

func TestSquareProjectDeterministic(t *testing.T) {
	x1, y1 := joystick.SquareProject(0.3, -0.4)
	x2, y2 := joystick.SquareProject(0.3, -0.4)
	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
}

func TestClampToUnitCircle(t *testing.T) {
	tests := []struct {
		name string
		x, y float64
	}{
		{name: "far right", x: 3, y: 0},
		{name: "diagonal", x: 4, y: 4},
		{name: "steep", x: -0.5, y: 7},
		{name: "third quadrant", x: -2, y: -1.2},
		{name: "just outside", x: 1.0001, y: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cx, cy := joystick.ClampToUnitCircle(tt.x, tt.y)
			assert.InDelta(t, 1.0, math.Hypot(cx, cy), 1e-9)
			assert.InDelta(t, math.Atan2(tt.y, tt.x), math.Atan2(cy, cx), 1e-9)
		})
	}

	x, y := joystick.ClampToUnitCircle(0.5, -0.5)
	assert.Equal(t, 0.5, x)
	assert.Equal(t, -0.5, y)
}
