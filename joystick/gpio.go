package joystick

import (
	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/gpio"
)

// PinSource adapts a periph.io digital input pin to a DigitalSource. The pin
// must already be configured as an input (pull-ups per the button's
// active-low sense are the board setup's responsibility).
type PinSource struct {
	Pin gpio.PinIn
}

func (p PinSource) Read() bool {
	return p.Pin.Read() == gpio.High
}

// ADCSource adapts a periph.io analog pin to an AnalogSource, rescaling the
// pin's native sample range to RawMin..RawMax so axis calibration works the
// same regardless of converter bit depth.
type ADCSource struct {
	Pin analog.PinADC

	last int
	have bool
}

// Read samples the pin. A conversion error repeats the previous good sample
// (midpoint before the first one); a transient ADC fault must not corrupt
// the report cycle.
func (a *ADCSource) Read() int {
	s, err := a.Pin.Read()
	if err != nil {
		if a.have {
			return a.last
		}
		return RawMid
	}
	lo, hi := a.Pin.Range()
	span := int(hi.Raw) - int(lo.Raw)
	if span <= 0 {
		return RawMid
	}
	raw := (int(s.Raw) - int(lo.Raw)) * RawMax / span
	a.last = min(max(raw, RawMin), RawMax)
	a.have = true
	return a.last
}
