package cmd

import (
	"fmt"

	"github.com/Alia5/viipad/device"
	"github.com/Alia5/viipad/device/dualshock4"
	"github.com/Alia5/viipad/device/vita"
	"github.com/Alia5/viipad/device/xbox360"
)

// deviceFormat ties a device's encoder to its compact wire form.
type deviceFormat struct {
	encode   device.Encoder
	newState func() device.State
	wireSize int
}

var deviceFormats = map[string]deviceFormat{
	"xbox360": {
		encode:   xbox360.Encode,
		newState: func() device.State { return &xbox360.InputState{} },
		wireSize: xbox360.WireSize,
	},
	"dualshock4": {
		encode:   dualshock4.Encode,
		newState: func() device.State { return &dualshock4.InputState{} },
		wireSize: dualshock4.WireSize,
	},
	"vita": {
		encode:   vita.Encode,
		newState: func() device.State { return &vita.InputState{} },
		wireSize: vita.ReportSize,
	},
}

func lookupDevice(name string) (deviceFormat, error) {
	f, ok := deviceFormats[name]
	if !ok {
		return deviceFormat{}, fmt.Errorf("unknown device format: %s", name)
	}
	return f, nil
}
