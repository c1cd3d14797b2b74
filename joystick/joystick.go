package joystick

import (
	"bytes"
	"errors"
	"fmt"
	"slices"
)

// ErrCapacity is wrapped when registering more inputs than the configuration
// has slots for.
var ErrCapacity = errors.New("joystick: input capacity exceeded")

// Transport delivers descriptor and report bytes to the host. It is supplied
// by the embedding environment (USB device stack, USB/IP bridge, test
// recorder); this package only guarantees that every Send carries exactly
// ReportLength bytes in the layout fixed by the registered descriptor.
type Transport interface {
	// RegisterDescriptor is called once, before any report is sent.
	RegisterDescriptor(desc []byte) error
	// Send delivers one complete input report. An error is retryable: the
	// controller will offer the same (or fresher) state again next cycle.
	Send(report []byte) error
}

// Joystick owns the registered inputs and the report buffers, and drives the
// transport. One instance owns its state exclusively; all activity happens
// inside the caller's Update loop, so no locking is involved. Multi-unit
// setups create one Joystick per unit.
type Joystick struct {
	cfg       Config
	layout    Layout
	desc      []byte
	transport Transport

	axes    []*Axis
	buttons []*Button
	hats    []*Hat

	report   []byte
	lastSent []byte
	primed   bool
}

// New validates cfg, generates the descriptor, registers it with t and
// returns a controller with no inputs registered yet. No descriptor is
// registered if validation fails.
func New(cfg Config, t Transport) (*Joystick, error) {
	desc, layout, err := Build(cfg)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("%w: nil transport", ErrConfig)
	}
	if err := t.RegisterDescriptor(desc); err != nil {
		return nil, fmt.Errorf("joystick: register descriptor: %w", err)
	}
	n := layout.ReportLength()
	return &Joystick{
		cfg:       cfg,
		layout:    layout,
		desc:      desc,
		transport: t,
		report:    make([]byte, n),
		lastSent:  make([]byte, n),
	}, nil
}

// Config returns the immutable device configuration.
func (j *Joystick) Config() Config { return j.cfg }

// Layout returns the report field layout shared with the descriptor.
func (j *Joystick) Layout() Layout { return j.layout }

// Descriptor returns the generated HID report descriptor bytes.
func (j *Joystick) Descriptor() []byte { return bytes.Clone(j.desc) }

// Register appends inputs to their category in order; the registration order
// defines each input's field index within its category. Registering beyond
// the configured count for a category fails with ErrCapacity and registers
// none of the remaining inputs.
func (j *Joystick) Register(inputs ...Input) error {
	for _, in := range inputs {
		switch in := in.(type) {
		case *Axis:
			if len(j.axes) >= j.cfg.Axes {
				return fmt.Errorf("%w: %d axes configured", ErrCapacity, j.cfg.Axes)
			}
			j.axes = append(j.axes, in)
		case *Button:
			if len(j.buttons) >= j.cfg.Buttons {
				return fmt.Errorf("%w: %d buttons configured", ErrCapacity, j.cfg.Buttons)
			}
			j.buttons = append(j.buttons, in)
		case *Hat:
			if len(j.hats) >= j.cfg.Hats {
				return fmt.Errorf("%w: %d hats configured", ErrCapacity, j.cfg.Hats)
			}
			j.hats = append(j.hats, in)
		default:
			return fmt.Errorf("joystick: unsupported input type %T", in)
		}
	}
	return nil
}

// Axes returns a copy of the registered axes in registration order.
func (j *Joystick) Axes() []*Axis { return slices.Clone(j.axes) }

// Buttons returns a copy of the registered buttons in registration order.
func (j *Joystick) Buttons() []*Button { return slices.Clone(j.buttons) }

// Hats returns a copy of the registered hats in registration order.
func (j *Joystick) Hats() []*Hat { return slices.Clone(j.hats) }

// Update runs one polling cycle: every registered input is read and encoded
// into the report buffer, then the buffer is sent through the transport only
// if it differs from the last successfully sent report. The first cycle
// always sends so the host learns the resting state.
//
// The returned bool reports whether a send happened. A transport error is
// returned as-is for the caller to retry on the next cycle; the last-sent
// buffer is left untouched so unchanged state is re-offered.
func (j *Joystick) Update() (bool, error) {
	for i, a := range j.axes {
		j.layout.PutAxis(j.report, i, a.Read())
	}
	for i, b := range j.buttons {
		j.layout.PutButton(j.report, i, b.Read())
	}
	for i, h := range j.hats {
		j.layout.PutHat(j.report, i, h.Read())
	}

	if j.primed && bytes.Equal(j.report, j.lastSent) {
		return false, nil
	}
	if err := j.transport.Send(j.report); err != nil {
		return false, fmt.Errorf("joystick: send report: %w", err)
	}
	copy(j.lastSent, j.report)
	j.primed = true
	return true, nil
}

// Reset returns every registered virtual input to its resting state and
// forces the next Update to send regardless of change detection. Physical
// inputs are unaffected; they rest wherever their hardware does.
func (j *Joystick) Reset() {
	for _, a := range j.axes {
		if a.virtual != nil {
			a.virtual.Set(RawMid)
		}
	}
	for _, b := range j.buttons {
		if b.virtual != nil {
			_ = b.Set(false)
		}
	}
	for _, h := range j.hats {
		if h.virtual {
			h.code = HatCentered
		}
	}
	j.primed = false
}
