package joystick

import (
	"errors"
	"fmt"
	"time"

	"github.com/benbjohnson/clock"
)

// Raw analog sample range expected from AnalogSource implementations by
// default. Axis calibration can narrow it.
const (
	RawMin = 0
	RawMax = 65535
	RawMid = (RawMax - RawMin) / 2
)

// Hat position codes: 0 is centered, 1-8 run clockwise starting at up.
const (
	HatCentered  uint8 = 0
	HatUp        uint8 = 1
	HatUpRight   uint8 = 2
	HatRight     uint8 = 3
	HatDownRight uint8 = 4
	HatDown      uint8 = 5
	HatDownLeft  uint8 = 6
	HatLeft      uint8 = 7
	HatUpLeft    uint8 = 8
)

// ErrNotVirtual is returned when Set is called on an input backed by a
// physical source.
var ErrNotVirtual = errors.New("joystick: only virtual input values can be set")

// AnalogSource yields raw analog samples, nominally in RawMin..RawMax.
// Out-of-range samples are clamped by the Axis, never rejected.
type AnalogSource interface {
	Read() int
}

// DigitalSource yields the raw electrical state of a digital input.
type DigitalSource interface {
	Read() bool
}

// VirtualAnalog is an AnalogSource whose sample is assigned programmatically,
// e.g. by the diagnostic console or a remote-I/O link.
type VirtualAnalog struct {
	value int
}

// NewVirtualAnalog returns a source resting at the raw midpoint.
func NewVirtualAnalog() *VirtualAnalog {
	return &VirtualAnalog{value: RawMid}
}

func (v *VirtualAnalog) Set(raw int) { v.value = raw }
func (v *VirtualAnalog) Read() int   { return v.value }

// VirtualDigital is a DigitalSource whose state is assigned programmatically.
type VirtualDigital struct {
	value bool
}

func (v *VirtualDigital) Set(on bool) { v.value = on }
func (v *VirtualDigital) Read() bool  { return v.value }

// Input is the closed set of input kinds a Joystick accepts: *Axis, *Button
// and *Hat, physical or virtual.
type Input interface {
	input()
}

func (*Axis) input()   {}
func (*Button) input() {}
func (*Hat) input()    {}

// AxisConfig holds the calibration parameters for one axis.
type AxisConfig struct {
	// Deadband is the raw distance from the midpoint treated as centered.
	Deadband int
	// Min and Max are the raw samples mapping to -127 and +127. A zero Max
	// means RawMax.
	Min, Max int
	// Invert flips the sign of the scaled value.
	Invert bool
}

// Axis converts raw analog samples into the signed byte an axis report field
// carries, applying clamping, deadband and scaling.
type Axis struct {
	source   AnalogSource
	min, max int
	deadband int
	invert   int

	midpoint int
	dbRange  int

	value   int8
	lastRaw int
	haveRaw bool

	virtual *VirtualAnalog

	// Suppress forces the axis to report centered while set.
	Suppress bool
}

// NewAxis creates an axis reading from source with the given calibration.
func NewAxis(source AnalogSource, cfg AxisConfig) *Axis {
	if cfg.Max == 0 {
		cfg.Max = RawMax
	}
	a := &Axis{
		source:   source,
		min:      cfg.Min,
		max:      cfg.Max,
		deadband: cfg.Deadband,
		invert:   1,
	}
	if cfg.Invert {
		a.invert = -1
	}
	a.midpoint = a.min + (a.max-a.min)/2
	a.dbRange = a.max - a.min - a.deadband*2
	if v, ok := source.(*VirtualAnalog); ok {
		a.virtual = v
	}
	return a
}

// NewVirtualAxis creates an axis whose raw value is assigned with Set.
func NewVirtualAxis(cfg AxisConfig) *Axis {
	return NewAxis(NewVirtualAnalog(), cfg)
}

// Set assigns the raw sample of a virtual axis.
func (a *Axis) Set(raw int) error {
	if a.virtual == nil {
		return ErrNotVirtual
	}
	a.virtual.Set(raw)
	return nil
}

// Read samples the source and returns the calibrated value in -127..127.
// Samples outside the configured min/max clamp to the nearest extreme.
func (a *Axis) Read() int8 {
	raw := a.source.Read()
	if !a.haveRaw || raw != a.lastRaw {
		a.haveRaw = true
		a.lastRaw = raw
		a.value = a.scale(raw)
	}
	if a.Suppress {
		return 0
	}
	return a.value
}

func (a *Axis) scale(raw int) int8 {
	if a.dbRange <= 0 {
		return 0
	}
	v := min(max(raw, a.min), a.max)
	switch {
	case v < a.midpoint-a.deadband:
		v -= a.min
	case v > a.midpoint+a.deadband:
		v -= a.min + a.deadband*2
	default:
		v = a.dbRange / 2
	}
	return int8(min(max(v*255/a.dbRange-127, -127), 127) * a.invert)
}

// ButtonConfig holds the sampling parameters for one button.
type ButtonConfig struct {
	// ActiveLow inverts the electrical sense: the button reads pressed while
	// the source reads false.
	ActiveLow bool
	// Debounce is the window a physically sampled state must hold before it
	// is committed. Ignored for virtual sources, whose assignments are
	// already discrete.
	Debounce time.Duration
	// Clock drives the debounce window; nil means the wall clock. Tests
	// substitute a mock.
	Clock clock.Clock
}

// Button converts raw digital reads into a debounced, polarity-corrected
// pressed state.
type Button struct {
	source    DigitalSource
	activeLow bool
	debounce  time.Duration
	clk       clock.Clock

	stable    bool
	lastRaw   bool
	lastFlip  time.Time
	state     bool
	lastState bool

	virtual *VirtualDigital

	// Suppress forces the button to report released while set.
	Suppress bool
}

// NewButton creates a button reading from source.
func NewButton(source DigitalSource, cfg ButtonConfig) *Button {
	b := &Button{
		source:    source,
		activeLow: cfg.ActiveLow,
		debounce:  cfg.Debounce,
		clk:       cfg.Clock,
	}
	if b.clk == nil {
		b.clk = clock.New()
	}
	if v, ok := source.(*VirtualDigital); ok {
		b.virtual = v
	}
	return b
}

// NewVirtualButton creates a released button whose state is assigned with
// Set. Virtual buttons carry no debounce.
func NewVirtualButton() *Button {
	return NewButton(&VirtualDigital{}, ButtonConfig{})
}

// Set assigns the pressed state of a virtual button.
func (b *Button) Set(pressed bool) error {
	if b.virtual == nil {
		return ErrNotVirtual
	}
	b.virtual.Set(pressed != b.activeLow)
	return nil
}

// Read samples the source and returns the debounced pressed state.
func (b *Button) Read() bool {
	raw := b.source.Read() != b.activeLow
	if b.debounce > 0 && b.virtual == nil {
		now := b.clk.Now()
		if raw != b.lastRaw {
			b.lastRaw = raw
			b.lastFlip = now
		}
		if raw != b.stable && now.Sub(b.lastFlip) >= b.debounce {
			b.stable = raw
		}
	} else {
		b.stable = raw
	}
	b.lastState = b.state
	b.state = b.stable
	if b.Suppress {
		return false
	}
	return b.state
}

// WasPressed reports whether the last Read observed a release-to-press edge.
func (b *Button) WasPressed() bool { return b.state && !b.lastState }

// WasReleased reports whether the last Read observed a press-to-release edge.
func (b *Button) WasReleased() bool { return !b.state && b.lastState }

// HatConfig holds the sampling parameters shared by a hat's four directions.
type HatConfig struct {
	ActiveLow bool
	Debounce  time.Duration
	Clock     clock.Clock
}

// Hat combines four digital direction inputs (or one assigned compass code)
// into the 4-bit hat switch position.
type Hat struct {
	up, down, left, right *Button

	virtual bool
	code    uint8

	// Suppress forces the hat to report centered while set.
	Suppress bool
}

// NewHat creates a hat switch from four direction sources sharing cfg.
func NewHat(up, down, left, right DigitalSource, cfg HatConfig) *Hat {
	bc := ButtonConfig{ActiveLow: cfg.ActiveLow, Debounce: cfg.Debounce, Clock: cfg.Clock}
	return &Hat{
		up:    NewButton(up, bc),
		down:  NewButton(down, bc),
		left:  NewButton(left, bc),
		right: NewButton(right, bc),
	}
}

// NewVirtualHat creates a centered hat whose compass code is assigned with
// Set.
func NewVirtualHat() *Hat {
	return &Hat{virtual: true, code: HatCentered}
}

// Set assigns the compass code (0-8) of a virtual hat.
func (h *Hat) Set(code uint8) error {
	if !h.virtual {
		return ErrNotVirtual
	}
	if code > HatUpLeft {
		return fmt.Errorf("joystick: hat position must be 0-8, got %d", code)
	}
	h.code = code
	return nil
}

// Read samples the direction inputs and returns the position code 0-8.
// Simultaneous opposite directions cancel to centered.
func (h *Hat) Read() uint8 {
	if h.virtual {
		if h.Suppress {
			return HatCentered
		}
		return h.code
	}

	// Sample all four directions even when suppressed so debounce state
	// keeps tracking the inputs.
	u := h.up.Read()
	d := h.down.Read()
	l := h.left.Read()
	r := h.right.Read()

	if h.Suppress {
		return HatCentered
	}

	if u && d {
		u, d = false, false
	}
	if l && r {
		l, r = false, false
	}

	switch {
	case u && r:
		return HatUpRight
	case u && l:
		return HatUpLeft
	case u:
		return HatUp
	case d && r:
		return HatDownRight
	case d && l:
		return HatDownLeft
	case d:
		return HatDown
	case l:
		return HatLeft
	case r:
		return HatRight
	default:
		return HatCentered
	}
}
