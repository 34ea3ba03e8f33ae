package dualshock4

const (
	ReportIDInput   = 0x01
	InputReportSize = 64
)

const (
	ButtonL3 uint16 = 0x4000
	ButtonR3 uint16 = 0x8000

	DPadMask       uint8 = 0x0F
	DPadUSBNeutral uint8 = 0x08

	CounterMask  = 0x3F
	CounterShift = 2
)

// Accelerometer reading of a controller lying flat, in counts of
// 1/512 m/s². The sticks carry no motion data, so reports use it as a
// resting pose.
const (
	DefaultAccelXRaw int16 = 0
	DefaultAccelYRaw int16 = 0
	DefaultAccelZRaw int16 = -5023
)

const (
	TouchInactiveMask   uint8 = 0x80
	BatteryFullyCharged       = 0x0B
)
