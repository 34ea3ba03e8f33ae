package device

import "math"

// AxisToI16 converts a normalized axis value into a signed 16-bit stick value.
// Values outside [-1, 1] saturate.
func AxisToI16(v float64) int16 {
	return clampI16(math.Round(v * math.MaxInt16))
}

// AxisToI8 converts a normalized axis value into a signed 8-bit stick value.
func AxisToI8(v float64) int8 {
	return int8(math.Max(math.MinInt8, math.Min(math.MaxInt8, math.Round(v*math.MaxInt8))))
}

// AxisToU8 converts a normalized axis value into an unsigned 8-bit stick
// value centered on 128.
func AxisToU8(v float64) uint8 {
	return clampU8(math.Round(128 + v*127))
}

func clampI16(v float64) int16 {
	if v > math.MaxInt16 {
		return math.MaxInt16
	}
	if v < math.MinInt16 {
		return math.MinInt16
	}
	return int16(v)
}

func clampU8(v float64) uint8 {
	if v > math.MaxUint8 {
		return math.MaxUint8
	}
	if v < 0 {
		return 0
	}
	return uint8(v)
}
