// Package config holds the root command line definition.
package config

import "github.com/Alia5/viipad/internal/cmd"

// Log configures diagnostic output.
type Log struct {
	Level   string `help:"Log level" enum:"trace,debug,info,warn,error" default:"info" env:"VIIPAD_LOG_LEVEL"`
	File    string `help:"Also write logs to this file" env:"VIIPAD_LOG_FILE"`
	RawFile string `help:"Write hex dumps of touch frames and reports to this file" env:"VIIPAD_LOG_RAW_FILE"`
}

// CLI is the root of the kong command tree.
type CLI struct {
	ConfigFile string `name:"config" help:"Config file to load (json, yaml or toml)" env:"VIIPAD_CONFIG"`
	Log        Log    `embed:"" prefix:"log."`

	Replay  cmd.Replay        `cmd:"" help:"Replay a touch trace and print controller output"`
	Decode  cmd.Decode        `cmd:"" help:"Print captured device states as JSON lines"`
	Preview cmd.Preview       `cmd:"" help:"Try the overlay in the terminal with the mouse"`
	Layout  cmd.LayoutCommand `cmd:"" help:"Inspect or reset stick placement"`
	Config  cmd.ConfigCommand `cmd:"" help:"Configuration file helpers"`
}
