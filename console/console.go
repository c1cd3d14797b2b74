// Package console implements the line-oriented diagnostic console: a client
// of the joystick API that drives virtual inputs so the report pipeline can
// be exercised without physical wiring.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/benbjohnson/clock"

	"joycore/joystick"
)

// Options tune console behavior. Zero values give an interactive-style
// console with the historical defaults.
type Options struct {
	// PressTime is how long a simulated button or hat click is held.
	// Defaults to 250ms.
	PressTime time.Duration
	// Pace is the delay between steps of the bulk self-tests. Defaults to
	// 50ms.
	Pace time.Duration
	// Clock drives click and pace delays; nil means the wall clock.
	Clock clock.Clock
	// Prompt enables the interactive prompt; disable when input is piped.
	Prompt bool
	// Profile supplies axis calibration for the virtual inputs, applied
	// positionally.
	Profile *joystick.Profile
	// AxisStep is the raw distance between samples of an axis sweep.
	// Defaults to 2048.
	AxisStep int
}

// Console owns a Joystick populated entirely with virtual inputs and maps
// textual commands onto them.
type Console struct {
	js      *joystick.Joystick
	axes    []*joystick.Axis
	buttons []*joystick.Button
	hats    []*joystick.Hat

	out      io.Writer
	clk      clock.Clock
	base     int
	press    time.Duration
	pace     time.Duration
	axisStep int
	prompt   bool
	lastCmd  string
}

// New builds a Joystick for cfg on transport t, registers a full set of
// virtual inputs and returns a console writing responses to out.
func New(cfg joystick.Config, t joystick.Transport, out io.Writer, opts Options) (*Console, error) {
	js, err := joystick.New(cfg, t)
	if err != nil {
		return nil, err
	}
	c := &Console{
		js:       js,
		out:      out,
		clk:      opts.Clock,
		base:     1,
		press:    opts.PressTime,
		pace:     opts.Pace,
		axisStep: opts.AxisStep,
		prompt:   opts.Prompt,
	}
	if c.clk == nil {
		c.clk = clock.New()
	}
	if c.press == 0 {
		c.press = 250 * time.Millisecond
	}
	if c.pace == 0 {
		c.pace = 50 * time.Millisecond
	}
	if c.axisStep <= 0 {
		c.axisStep = 2048
	}

	for i := 0; i < cfg.Axes; i++ {
		a := joystick.NewVirtualAxis(opts.Profile.AxisConfig(i))
		c.axes = append(c.axes, a)
		if err := js.Register(a); err != nil {
			return nil, err
		}
	}
	for i := 0; i < cfg.Buttons; i++ {
		b := joystick.NewVirtualButton()
		c.buttons = append(c.buttons, b)
		if err := js.Register(b); err != nil {
			return nil, err
		}
	}
	for i := 0; i < cfg.Hats; i++ {
		h := joystick.NewVirtualHat()
		c.hats = append(c.hats, h)
		if err := js.Register(h); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Joystick returns the underlying controller.
func (c *Console) Joystick() *joystick.Joystick { return c.js }

// Run reads commands from in until quit or EOF. An empty line repeats the
// previous command.
func (c *Console) Run(in io.Reader) error {
	cfg := c.js.Config()
	fmt.Fprintf(c.out, "joystick test console: %d axes, %d buttons, %d hats (%d report bytes)\n",
		cfg.Axes, cfg.Buttons, cfg.Hats, cfg.ReportLength())
	fmt.Fprintln(c.out, "using 1-based indexing; enter ? for command list")

	// Push the resting report out before taking commands.
	if _, err := c.js.Update(); err != nil {
		fmt.Fprintln(c.out, "!", err)
	}

	sc := bufio.NewScanner(in)
	for {
		if c.prompt {
			fmt.Fprint(c.out, ": ")
		}
		if !sc.Scan() {
			return sc.Err()
		}
		cmd := strings.ToLower(strings.TrimSpace(sc.Text()))
		if cmd == "" && c.lastCmd != "" {
			cmd = c.lastCmd
			fmt.Fprintf(c.out, "( %s )\n", cmd)
		} else {
			c.lastCmd = cmd
		}
		if cmd == "" {
			continue
		}
		if !c.dispatch(cmd) {
			return nil
		}
	}
}

// dispatch runs one command; the return value is false for quit.
func (c *Console) dispatch(cmd string) bool {
	num := number(cmd)
	switch {
	case strings.HasPrefix(cmd, "a"):
		c.axisCmd(cmd, num)
	case strings.HasPrefix(cmd, "b"):
		c.buttonCmd(cmd, num)
	case strings.HasPrefix(cmd, "h"):
		c.hatCmd(cmd, num)
	case strings.HasPrefix(cmd, "t"):
		c.SweepAxes()
		c.SweepButtons()
		c.SweepHats()
		fmt.Fprintln(c.out, "> all tests completed")
	case strings.HasPrefix(cmd, "0"):
		c.base = 0
		fmt.Fprintln(c.out, "> using 0-based indexing")
	case strings.HasPrefix(cmd, "1"):
		c.base = 1
		fmt.Fprintln(c.out, "> using 1-based indexing")
	case strings.HasPrefix(cmd, "p"):
		if num <= 0 {
			fmt.Fprintln(c.out, "> invalid operation")
			break
		}
		c.press = time.Duration(num) * 10 * time.Millisecond
		fmt.Fprintf(c.out, "> button presses set to %v\n", c.press)
	case strings.HasPrefix(cmd, "?"):
		c.help()
	case strings.HasPrefix(cmd, "q"):
		return false
	default:
		fmt.Fprintln(c.out, "> unrecognized command (? for list)")
	}
	return true
}

func (c *Console) axisCmd(cmd string, num int) {
	if strings.HasSuffix(cmd, "t") {
		c.SweepAxes()
		return
	}
	i, ok := c.index(num, len(c.axes), "axis")
	if !ok {
		return
	}
	switch {
	case strings.HasSuffix(cmd, "u"):
		fmt.Fprintf(c.out, "> axis %d up\n", i+c.base)
		c.moveAxis(i, joystick.RawMax)
	case strings.HasSuffix(cmd, "d"):
		fmt.Fprintf(c.out, "> axis %d down\n", i+c.base)
		c.moveAxis(i, joystick.RawMin)
	default:
		fmt.Fprintln(c.out, "> invalid operation")
	}
}

func (c *Console) buttonCmd(cmd string, num int) {
	if strings.HasSuffix(cmd, "t") {
		c.SweepButtons()
		return
	}
	i, ok := c.index(num, len(c.buttons), "button")
	if !ok {
		return
	}
	fmt.Fprintf(c.out, "> button %d click\n", i+c.base)
	c.clickButton(i, c.press)
}

func (c *Console) hatCmd(cmd string, num int) {
	if strings.HasSuffix(cmd, "t") {
		c.SweepHats()
		return
	}
	i, ok := c.index(num, len(c.hats), "hat switch")
	if !ok {
		return
	}
	code, name := hatOperation(cmd)
	if name == "" {
		fmt.Fprintln(c.out, "> invalid operation")
		return
	}
	fmt.Fprintf(c.out, "> hat switch %d %s\n", i+c.base, name)
	c.clickHat(i, code)
}

// hatOperation decodes the direction suffix of a hat command. Diagonals are
// checked first so "h1ul" is not read as plain up.
func hatOperation(cmd string) (uint8, string) {
	switch {
	case strings.Contains(cmd, "u") && strings.Contains(cmd, "l"):
		return joystick.HatUpLeft, "up+left"
	case strings.Contains(cmd, "u") && strings.Contains(cmd, "r"):
		return joystick.HatUpRight, "up+right"
	case strings.Contains(cmd, "d") && strings.Contains(cmd, "l"):
		return joystick.HatDownLeft, "down+left"
	case strings.Contains(cmd, "d") && strings.Contains(cmd, "r"):
		return joystick.HatDownRight, "down+right"
	case strings.HasSuffix(cmd, "u"):
		return joystick.HatUp, "up"
	case strings.HasSuffix(cmd, "d"):
		return joystick.HatDown, "down"
	case strings.HasSuffix(cmd, "l"):
		return joystick.HatLeft, "left"
	case strings.HasSuffix(cmd, "r"):
		return joystick.HatRight, "right"
	}
	return joystick.HatCentered, ""
}

func (c *Console) help() {
	fmt.Fprintln(c.out, "  a = axis (a2u, a1d, at)")
	fmt.Fprintln(c.out, "  b = button (b13, bt)")
	fmt.Fprintln(c.out, "  h = hat (h1u, h1d, h1ul, h1dr, ht)")
	fmt.Fprintln(c.out, "  t = test all")
	fmt.Fprintln(c.out, "  0 = 0-based indexing")
	fmt.Fprintln(c.out, "  1 = 1-based indexing")
	fmt.Fprintln(c.out, "  p = click time in 10ms units (p25 = 250ms)")
	fmt.Fprintln(c.out, "  q = quit")
}

// index converts a user-entered input number to a 0-based slot index.
func (c *Console) index(num, limit int, name string) (int, bool) {
	if limit == 0 {
		fmt.Fprintf(c.out, "> no %s inputs configured\n", name)
		return 0, false
	}
	if num < c.base || num > limit-(1-c.base) {
		fmt.Fprintf(c.out, "> invalid %s specified\n", name)
		return 0, false
	}
	return num - c.base, true
}

// number extracts the digits embedded in a command, 0 when there are none.
func number(cmd string) int {
	n := 0
	for _, r := range cmd {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
		}
	}
	return n
}

func (c *Console) update() {
	if _, err := c.js.Update(); err != nil {
		fmt.Fprintln(c.out, "!", err)
	}
}

// moveAxis sweeps axis i from rest to the target raw value and back.
func (c *Console) moveAxis(i, target int) {
	a := c.axes[i]
	step := c.axisStep
	if target < joystick.RawMid {
		step = -step
	}
	for raw := joystick.RawMid; (step > 0 && raw < target) || (step < 0 && raw > target); raw += step {
		_ = a.Set(raw)
		c.update()
	}
	_ = a.Set(target)
	c.update()
	_ = a.Set(joystick.RawMid)
	c.update()
}

func (c *Console) clickButton(i int, hold time.Duration) {
	_ = c.buttons[i].Set(true)
	c.update()
	c.clk.Sleep(hold)
	_ = c.buttons[i].Set(false)
	c.update()
}

func (c *Console) clickHat(i int, code uint8) {
	_ = c.hats[i].Set(code)
	c.update()
	c.clk.Sleep(c.press)
	_ = c.hats[i].Set(joystick.HatCentered)
	c.update()
}

// SweepAxes runs every axis through its full travel.
func (c *Console) SweepAxes() {
	if len(c.axes) == 0 {
		fmt.Fprintln(c.out, "> no axis inputs configured")
		return
	}
	fmt.Fprint(c.out, "> testing axes...")
	for i := range c.axes {
		c.moveAxis(i, joystick.RawMin)
		c.moveAxis(i, joystick.RawMax)
	}
	fmt.Fprintln(c.out, "done")
}

// SweepButtons clicks every button in turn.
func (c *Console) SweepButtons() {
	if len(c.buttons) == 0 {
		fmt.Fprintln(c.out, "> no button inputs configured")
		return
	}
	fmt.Fprint(c.out, "> testing buttons...")
	for i := range c.buttons {
		c.clickButton(i, c.pace)
		c.clk.Sleep(c.pace)
	}
	fmt.Fprintln(c.out, "done")
}

// SweepHats walks every hat through all eight directions.
func (c *Console) SweepHats() {
	if len(c.hats) == 0 {
		fmt.Fprintln(c.out, "> no hat switch inputs configured")
		return
	}
	fmt.Fprint(c.out, "> testing hat switches...")
	for i := range c.hats {
		for code := joystick.HatUp; code <= joystick.HatUpLeft; code++ {
			_ = c.hats[i].Set(code)
			c.update()
			c.clk.Sleep(c.pace)
		}
		_ = c.hats[i].Set(joystick.HatCentered)
		c.update()
	}
	fmt.Fprintln(c.out, "done")
}
