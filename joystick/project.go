package joystick

import "math"

const (
	maxRadius = 1.0
	// Below this dominant-axis magnitude the square projection is skipped.
	centerEpsilon = 0.01
)

// ClampToUnitCircle pulls a point lying outside the unit circle back onto
// its boundary along the same ray. Points inside are returned unchanged.
func ClampToUnitCircle(x, y float64) (float64, float64) {
	if math.Hypot(y, x) <= maxRadius {
		return x, y
	}
	angle := math.Atan2(y, x) + math.Pi + math.Pi
	return maxRadius * math.Cos(angle), maxRadius * math.Sin(angle)
}

// SquareProject maps a point of the unit disk onto the unit square along the
// ray from the origin, so the disk edge at 45° reports (±1, ±1) the way the
// square gate of a physical stick does.
func SquareProject(x, y float64) (float64, float64) {
	ax, ay := math.Abs(x), math.Abs(y)
	if ax < ay {
		ax, ay = ay, ax
	}
	if ax < centerEpsilon {
		return x, y
	}
	r := ay / ax
	scale := math.Sqrt(1 + r*r)
	return x * scale, y * scale
}
