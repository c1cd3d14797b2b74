// Package config defines the CLI structure for joycore.
package config

import (
	"joycore/internal/cmd"
)

type Log struct {
	Level string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"JOYCORE_LOG_LEVEL"`
	File  string `help:"Log file path (default: none; logs only to console)" env:"JOYCORE_LOG_FILE"`
}

// CLI is the root command structure for kong parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	Console  cmd.Console  `cmd:"" help:"Run the interactive joystick test console"`
	Describe cmd.Describe `cmd:"" help:"Print the HID report descriptor and field layout for a configuration"`
}
