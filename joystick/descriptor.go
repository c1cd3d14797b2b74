package joystick

import (
	"fmt"

	"joycore/usb/hid"
)

// axisUsages maps axis index to its Generic Desktop usage: X, Y, Z, Rx, Ry,
// Rz, then Slider for anything beyond. Two sliders both carry usage 0x36,
// which is what hosts expect for S0/S1.
func axisUsage(i int) uint16 {
	u := hid.UsageX + uint16(i)
	if u > hid.UsageSlider {
		u = hid.UsageSlider
	}
	return u
}

var axisNames = [MaxAxes]string{"x", "y", "z", "rx", "ry", "rz", "s0", "s1"}

// AxisName returns the conventional short name of axis i (x, y, z, rx, ry,
// rz, s0, s1), or its number for indices outside the supported range.
func AxisName(i int) string {
	if i >= 0 && i < MaxAxes {
		return axisNames[i]
	}
	return fmt.Sprintf("a%d", i)
}

// HatName returns the conventional short name of hat i (h1..h4).
func HatName(i int) string {
	return fmt.Sprintf("h%d", i+1)
}

// Build generates the HID report descriptor for cfg along with the report
// field layout that every report sent for this configuration must follow.
// Identical configurations yield byte-identical descriptors; an invalid
// configuration produces no descriptor bytes at all.
func Build(cfg Config) ([]byte, Layout, error) {
	if err := cfg.Validate(); err != nil {
		return nil, Layout{}, err
	}

	var items []hid.Item

	if cfg.Axes > 0 {
		for i := 0; i < cfg.Axes; i++ {
			items = append(items, hid.Usage{Usage: axisUsage(i)})
		}
		items = append(items,
			hid.LogicalMinimum{Min: -127},
			hid.LogicalMaximum{Max: 127},
			hid.ReportSize{Bits: 8},
			hid.ReportCount{Count: uint16(cfg.Axes)},
			hid.Input{Flags: hid.MainVar},
		)
	}

	if cfg.Buttons > 0 {
		items = append(items,
			hid.UsagePage{Page: hid.UsagePageButton},
			hid.UsageMinimum{Min: 1},
			hid.UsageMaximum{Max: uint16(cfg.Buttons)},
			hid.LogicalMinimum{Min: 0},
			hid.LogicalMaximum{Max: 1},
			hid.ReportCount{Count: uint16(cfg.Buttons)},
			hid.ReportSize{Bits: 1},
			hid.Input{Flags: hid.MainVar},
		)
		if pad := cfg.Buttons % 8; pad != 0 {
			items = append(items,
				hid.ReportSize{Bits: 1},
				hid.ReportCount{Count: uint16(8 - pad)},
				hid.Input{Flags: hid.MainConst | hid.MainVar},
			)
		}
	}

	if cfg.Hats > 0 {
		// The button section leaves the Button page active; hat usages live on
		// Generic Desktop.
		items = append(items, hid.UsagePage{Page: hid.UsagePageGenericDesktop})
		for i := 0; i < cfg.Hats; i++ {
			items = append(items, hid.Usage{Usage: hid.UsageHatSwitch})
		}
		items = append(items,
			hid.LogicalMinimum{Min: 1},
			hid.LogicalMaximum{Max: 8},
			hid.PhysicalMinimum{Min: 0},
			hid.PhysicalMaximum{Max: 315},
			hid.Unit{Unit: hid.UnitRotationDegrees},
			hid.ReportSize{Bits: 4},
			hid.ReportCount{Count: uint16(cfg.Hats)},
			hid.Input{Flags: hid.MainVar | hid.MainNullState},
		)
		if cfg.Hats%2 != 0 {
			items = append(items,
				hid.ReportSize{Bits: 4},
				hid.ReportCount{Count: 1},
				hid.Input{Flags: hid.MainConst | hid.MainVar},
			)
		}
	}

	desc := hid.Descriptor{Items: []hid.Item{
		hid.UsagePage{Page: hid.UsagePageGenericDesktop},
		hid.Usage{Usage: hid.UsageJoystick},
		hid.Collection{Kind: hid.CollectionApplication, Items: items},
	}}

	b, err := desc.Bytes()
	if err != nil {
		return nil, Layout{}, fmt.Errorf("joystick: encode descriptor: %w", err)
	}
	return b, Layout{axes: cfg.Axes, buttons: cfg.Buttons, hats: cfg.Hats}, nil
}

// Layout maps axis, button and hat indices to their byte offset and bit
// position within a report. It is derived from the same Config as the
// descriptor, so the two can never disagree.
//
// Field order: axis bytes first (signed, one per axis), then button bits
// (LSB-first, padded to a byte boundary), then hat nibbles (low nibble =
// lower index).
type Layout struct {
	axes, buttons, hats int
}

// ReportLength returns the report size in bytes for this layout.
func (l Layout) ReportLength() int {
	return l.axes + (l.buttons+7)/8 + (l.hats+1)/2
}

// Axes returns the number of axis fields.
func (l Layout) Axes() int { return l.axes }

// Buttons returns the number of button fields.
func (l Layout) Buttons() int { return l.buttons }

// Hats returns the number of hat fields.
func (l Layout) Hats() int { return l.hats }

func (l Layout) buttonBase() int { return l.axes }
func (l Layout) hatBase() int    { return l.axes + (l.buttons+7)/8 }

// PutAxis writes the signed axis value into report.
func (l Layout) PutAxis(report []byte, i int, v int8) {
	if i < 0 || i >= l.axes {
		panic(fmt.Sprintf("joystick: axis index %d out of range", i))
	}
	report[i] = byte(v)
}

// AxisAt reads the signed axis value back out of report.
func (l Layout) AxisAt(report []byte, i int) int8 {
	if i < 0 || i >= l.axes {
		panic(fmt.Sprintf("joystick: axis index %d out of range", i))
	}
	return int8(report[i])
}

// PutButton sets or clears button i's bit in report.
func (l Layout) PutButton(report []byte, i int, pressed bool) {
	if i < 0 || i >= l.buttons {
		panic(fmt.Sprintf("joystick: button index %d out of range", i))
	}
	idx := l.buttonBase() + i/8
	mask := byte(1) << (i % 8)
	if pressed {
		report[idx] |= mask
	} else {
		report[idx] &^= mask
	}
}

// ButtonAt reads button i's bit back out of report.
func (l Layout) ButtonAt(report []byte, i int) bool {
	if i < 0 || i >= l.buttons {
		panic(fmt.Sprintf("joystick: button index %d out of range", i))
	}
	return report[l.buttonBase()+i/8]&(1<<(i%8)) != 0
}

// PutHat writes hat i's 4-bit position code into report. Even indices occupy
// the low nibble, odd indices the high nibble of the same byte.
func (l Layout) PutHat(report []byte, i int, code uint8) {
	if i < 0 || i >= l.hats {
		panic(fmt.Sprintf("joystick: hat index %d out of range", i))
	}
	idx := l.hatBase() + i/2
	if i%2 == 0 {
		report[idx] = report[idx]&0xF0 | code&0x0F
	} else {
		report[idx] = report[idx]&0x0F | code<<4
	}
}

// HatAt reads hat i's 4-bit position code back out of report.
func (l Layout) HatAt(report []byte, i int) uint8 {
	if i < 0 || i >= l.hats {
		panic(fmt.Sprintf("joystick: hat index %d out of range", i))
	}
	b := report[l.hatBase()+i/2]
	if i%2 == 0 {
		return b & 0x0F
	}
	return b >> 4
}
