// Package joystick implements a configurable USB HID joystick device core:
// descriptor generation for a variable number of axes, buttons and hat
// switches, input sampling with calibration and debounce, and change-detected
// report delivery through a caller-supplied transport.
package joystick

import (
	"errors"
	"fmt"
)

// Input count limits imposed by the report format (8-bit axes, one bit per
// button up to 16 bytes, 4-bit hat codes packed two per byte).
const (
	MaxAxes    = 8
	MaxButtons = 128
	MaxHats    = 4
)

// ErrConfig is wrapped by all configuration validation failures.
var ErrConfig = errors.New("joystick: invalid configuration")

// Config fixes the input counts of a device. It is immutable once a Joystick
// has been created from it: the generated descriptor and every report sent
// afterwards share this exact shape.
type Config struct {
	Axes    int `yaml:"axes" toml:"axes" json:"axes"`
	Buttons int `yaml:"buttons" toml:"buttons" json:"buttons"`
	Hats    int `yaml:"hats" toml:"hats" json:"hats"`
}

// DefaultConfig returns the maximum input counts, used when no configuration
// is supplied.
func DefaultConfig() Config {
	return Config{Axes: MaxAxes, Buttons: MaxButtons, Hats: MaxHats}
}

// Validate rejects counts outside the supported ranges. Button counts that
// are not a multiple of 8 and odd hat counts are legal; the descriptor pads
// the remainder of the byte with constant bits.
func (c Config) Validate() error {
	if c.Axes < 0 || c.Axes > MaxAxes {
		return fmt.Errorf("%w: axis count must be 0-%d, got %d", ErrConfig, MaxAxes, c.Axes)
	}
	if c.Buttons < 0 || c.Buttons > MaxButtons {
		return fmt.Errorf("%w: button count must be 0-%d, got %d", ErrConfig, MaxButtons, c.Buttons)
	}
	if c.Hats < 0 || c.Hats > MaxHats {
		return fmt.Errorf("%w: hat count must be 0-%d, got %d", ErrConfig, MaxHats, c.Hats)
	}
	return nil
}

// ReportLength returns the size in bytes of one input report: one byte per
// axis, one bit per button rounded up to a byte, one nibble per hat rounded
// up to a byte.
func (c Config) ReportLength() int {
	return c.Axes + (c.Buttons+7)/8 + (c.Hats+1)/2
}
