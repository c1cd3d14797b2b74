package joystick

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// AxisProfile is the file representation of one axis calibration.
type AxisProfile struct {
	Deadband int  `yaml:"deadband" toml:"deadband"`
	Min      int  `yaml:"min" toml:"min"`
	Max      int  `yaml:"max" toml:"max"`
	Invert   bool `yaml:"invert" toml:"invert"`
}

// Config converts the profile entry to an AxisConfig.
func (p AxisProfile) Config() AxisConfig {
	return AxisConfig{Deadband: p.Deadband, Min: p.Min, Max: p.Max, Invert: p.Invert}
}

// ButtonProfile is the file representation of one button's sampling
// parameters.
type ButtonProfile struct {
	ActiveLow  bool `yaml:"active_low" toml:"active_low"`
	DebounceMs int  `yaml:"debounce_ms" toml:"debounce_ms"`
}

// Config converts the profile entry to a ButtonConfig.
func (p ButtonProfile) Config() ButtonConfig {
	return ButtonConfig{
		ActiveLow: p.ActiveLow,
		Debounce:  time.Duration(p.DebounceMs) * time.Millisecond,
	}
}

// HatProfile is the file representation of one hat's sampling parameters,
// shared by its four direction inputs.
type HatProfile struct {
	ActiveLow  bool `yaml:"active_low" toml:"active_low"`
	DebounceMs int  `yaml:"debounce_ms" toml:"debounce_ms"`
}

// Config converts the profile entry to a HatConfig.
func (p HatProfile) Config() HatConfig {
	return HatConfig{
		ActiveLow: p.ActiveLow,
		Debounce:  time.Duration(p.DebounceMs) * time.Millisecond,
	}
}

// Profile carries per-input calibration loaded from a YAML or TOML file.
// Entries apply positionally to inputs in registration order; inputs beyond
// the listed entries use zero-value defaults.
type Profile struct {
	Axes    []AxisProfile   `yaml:"axes" toml:"axes"`
	Buttons []ButtonProfile `yaml:"buttons" toml:"buttons"`
	Hats    []HatProfile    `yaml:"hats" toml:"hats"`
}

// AxisConfig returns the calibration for axis i, or defaults when the
// profile has no entry for it.
func (p *Profile) AxisConfig(i int) AxisConfig {
	if p == nil || i < 0 || i >= len(p.Axes) {
		return AxisConfig{}
	}
	return p.Axes[i].Config()
}

// ButtonConfig returns the parameters for button i, or defaults.
func (p *Profile) ButtonConfig(i int) ButtonConfig {
	if p == nil || i < 0 || i >= len(p.Buttons) {
		return ButtonConfig{}
	}
	return p.Buttons[i].Config()
}

// HatConfig returns the parameters for hat i, or defaults.
func (p *Profile) HatConfig(i int) HatConfig {
	if p == nil || i < 0 || i >= len(p.Hats) {
		return HatConfig{}
	}
	return p.Hats[i].Config()
}

// LoadProfile reads a calibration profile, picking the decoder from the file
// extension (.yaml/.yml or .toml).
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("joystick: read profile: %w", err)
	}
	var p Profile
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("joystick: parse profile %s: %w", path, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("joystick: parse profile %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("joystick: unsupported profile format %q", filepath.Ext(path))
	}
	return &p, nil
}
