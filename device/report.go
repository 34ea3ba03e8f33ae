// Package device provides report encoders that turn a controller snapshot
// into the byte layout an emulation core or virtual pad expects.
package device

import (
	"encoding"

	"github.com/Alia5/viipad/ctrl"
)

// ReportBuilder is an interface for device input states that can build reports.
type ReportBuilder interface {
	// BuildReport encodes the input state into a byte slice.
	BuildReport() []byte
}

// State is a device input state. Besides the report it has a compact wire
// form for captures.
type State interface {
	ReportBuilder
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// Encoder converts a snapshot into the state of one device type.
type Encoder func(s ctrl.State) State
