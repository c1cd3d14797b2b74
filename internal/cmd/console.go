// Package cmd implements the joycore CLI commands.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"joycore/console"
	"joycore/joystick"
)

// Counts embeds the device configuration flags shared by commands. Defaults
// are the maximums, matching the behavior when no configuration is supplied.
type Counts struct {
	Axes    int `help:"Number of axes (0-8)" default:"8" env:"JOYCORE_AXES"`
	Buttons int `help:"Number of buttons (0-128)" default:"128" env:"JOYCORE_BUTTONS"`
	Hats    int `help:"Number of hat switches (0-4)" default:"4" env:"JOYCORE_HATS"`
}

func (c Counts) config() joystick.Config {
	return joystick.Config{Axes: c.Axes, Buttons: c.Buttons, Hats: c.Hats}
}

// Console runs the interactive test console against a writer transport.
type Console struct {
	Counts `embed:""`

	Profile string `help:"Calibration profile file (YAML or TOML)" type:"existingfile" optional:""`
	Out     string `help:"Report sink: hex lines on stdout, raw bytes on stdout, or off" enum:"hex,raw,off" default:"hex"`
}

func (c *Console) Run(logger *slog.Logger) error {
	cfg := c.config()
	if err := cfg.Validate(); err != nil {
		return err
	}

	var profile *joystick.Profile
	if c.Profile != "" {
		p, err := joystick.LoadProfile(c.Profile)
		if err != nil {
			return err
		}
		profile = p
		logger.Debug("loaded calibration profile", "file", c.Profile,
			"axes", len(p.Axes), "buttons", len(p.Buttons), "hats", len(p.Hats))
	}

	var sink io.Writer = os.Stdout
	hex := c.Out == "hex"
	if c.Out == "off" {
		sink = io.Discard
	}
	t := &joystick.WriterTransport{W: sink, Hex: hex}

	con, err := console.New(cfg, t, os.Stderr, console.Options{
		Prompt:  term.IsTerminal(int(os.Stdin.Fd())),
		Profile: profile,
	})
	if err != nil {
		return err
	}
	logger.Info("console ready", "axes", cfg.Axes, "buttons", cfg.Buttons,
		"hats", cfg.Hats, "report_bytes", cfg.ReportLength())
	return con.Run(os.Stdin)
}

// Describe prints the generated descriptor and report layout so embedders can
// register the exact bytes with their transport.
type Describe struct {
	Counts `embed:""`
}

func (d *Describe) Run(logger *slog.Logger) error {
	cfg := d.config()
	desc, layout, err := joystick.Build(cfg)
	if err != nil {
		return err
	}

	fmt.Printf("configuration: %d axes, %d buttons, %d hats\n", cfg.Axes, cfg.Buttons, cfg.Hats)
	fmt.Printf("report length: %d bytes\n", layout.ReportLength())
	fmt.Printf("descriptor (%d bytes):\n", len(desc))
	for i := 0; i < len(desc); i += 16 {
		end := min(i+16, len(desc))
		fmt.Printf("  % x\n", desc[i:end])
	}

	if cfg.Axes > 0 {
		names := make([]string, cfg.Axes)
		for i := range names {
			names[i] = joystick.AxisName(i)
		}
		fmt.Printf("axes: bytes 0-%d, signed, -127..127 (%s)\n",
			cfg.Axes-1, strings.Join(names, " "))
	}
	if cfg.Buttons > 0 {
		first := cfg.Axes
		last := cfg.Axes + (cfg.Buttons+7)/8 - 1
		fmt.Printf("buttons: bytes %d-%d, one bit each, LSB-first\n", first, last)
	}
	if cfg.Hats > 0 {
		first := cfg.Axes + (cfg.Buttons+7)/8
		last := first + (cfg.Hats+1)/2 - 1
		names := make([]string, cfg.Hats)
		for i := range names {
			names[i] = joystick.HatName(i)
		}
		fmt.Printf("hats: bytes %d-%d, 4-bit codes, low nibble first (%s)\n",
			first, last, strings.Join(names, " "))
	}

	logger.Debug("descriptor generated", "bytes", len(desc))
	return nil
}
