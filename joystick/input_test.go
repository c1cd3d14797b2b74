package joystick

import (
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type constAnalog int

func (c constAnalog) Read() int { return int(c) }

type constDigital bool

func (c constDigital) Read() bool { return bool(c) }

func TestAxisScale(t *testing.T) {
	tests := []struct {
		name string
		cfg  AxisConfig
		raw  int
		want int8
	}{
		{"minimum", AxisConfig{}, RawMin, -127},
		{"maximum", AxisConfig{}, RawMax, 127},
		{"midpoint", AxisConfig{}, RawMid, 0},
		{"below min clamps", AxisConfig{Min: 1000, Max: 64535}, 0, -127},
		{"at min", AxisConfig{Min: 1000, Max: 64535}, 1000, -127},
		{"above max clamps", AxisConfig{Min: 1000, Max: 64535}, RawMax, 127},
		{"at max", AxisConfig{Min: 1000, Max: 64535}, 64535, 127},
		{"inside deadband", AxisConfig{Deadband: 1000}, RawMid + 900, 0},
		{"deadband low edge", AxisConfig{Deadband: 1000}, RawMid - 1000, 0},
		{"below deadband", AxisConfig{Deadband: 1000}, 20000, -47},
		{"above deadband", AxisConfig{Deadband: 1000}, 45000, 45},
		{"invert minimum", AxisConfig{Invert: true}, RawMin, 127},
		{"invert maximum", AxisConfig{Invert: true}, RawMax, -127},
		{"invert midpoint", AxisConfig{Invert: true}, RawMid, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewAxis(constAnalog(tt.raw), tt.cfg)
			assert.Equal(t, tt.want, a.Read())
		})
	}
}

func TestAxisClampMatchesExtreme(t *testing.T) {
	// A sample beyond the calibrated range reads identically to one exactly at
	// the extreme.
	cfg := AxisConfig{Min: 5000, Max: 60000, Deadband: 200}
	beyond := NewAxis(constAnalog(RawMax), cfg)
	at := NewAxis(constAnalog(60000), cfg)
	assert.Equal(t, at.Read(), beyond.Read())
}

func TestAxisDegenerateRange(t *testing.T) {
	// Deadband swallowing the whole range leaves nothing to scale; the axis
	// pins to centered instead of dividing by zero.
	a := NewAxis(constAnalog(RawMax), AxisConfig{Min: 100, Max: 200, Deadband: 50})
	assert.Equal(t, int8(0), a.Read())
}

func TestAxisVirtual(t *testing.T) {
	a := NewVirtualAxis(AxisConfig{})
	assert.Equal(t, int8(0), a.Read(), "virtual axes rest centered")

	require.NoError(t, a.Set(RawMax))
	assert.Equal(t, int8(127), a.Read())
	require.NoError(t, a.Set(RawMin))
	assert.Equal(t, int8(-127), a.Read())
}

func TestAxisSetPhysical(t *testing.T) {
	a := NewAxis(constAnalog(0), AxisConfig{})
	assert.ErrorIs(t, a.Set(RawMax), ErrNotVirtual)
}

func TestAxisSuppress(t *testing.T) {
	a := NewVirtualAxis(AxisConfig{})
	require.NoError(t, a.Set(RawMax))
	assert.Equal(t, int8(127), a.Read())

	a.Suppress = true
	assert.Equal(t, int8(0), a.Read())
	a.Suppress = false
	assert.Equal(t, int8(127), a.Read())
}

func TestButtonVirtual(t *testing.T) {
	b := NewVirtualButton()
	assert.False(t, b.Read(), "virtual buttons rest released")

	require.NoError(t, b.Set(true))
	assert.True(t, b.Read())
	require.NoError(t, b.Set(false))
	assert.False(t, b.Read())
}

func TestButtonSetPhysical(t *testing.T) {
	b := NewButton(constDigital(false), ButtonConfig{})
	assert.ErrorIs(t, b.Set(true), ErrNotVirtual)
}

func TestButtonActiveLow(t *testing.T) {
	pressed := NewButton(constDigital(false), ButtonConfig{ActiveLow: true})
	assert.True(t, pressed.Read())

	released := NewButton(constDigital(true), ButtonConfig{ActiveLow: true})
	assert.False(t, released.Read())
}

func TestButtonDebounce(t *testing.T) {
	mock := clock.NewMock()
	src := &scriptDigital{}
	b := NewButton(src, ButtonConfig{Debounce: 5 * time.Millisecond, Clock: mock})

	// A fresh press is not committed until it holds for the window.
	src.v = true
	assert.False(t, b.Read())
	mock.Add(5 * time.Millisecond)
	assert.True(t, b.Read())

	// A release that bounces back within the window never registers.
	src.v = false
	mock.Add(2 * time.Millisecond)
	assert.True(t, b.Read())
	src.v = true
	mock.Add(2 * time.Millisecond)
	assert.True(t, b.Read())
	mock.Add(10 * time.Millisecond)
	assert.True(t, b.Read())

	// A clean release commits after the window.
	src.v = false
	assert.True(t, b.Read())
	mock.Add(5 * time.Millisecond)
	assert.False(t, b.Read())
}

type scriptDigital struct{ v bool }

func (s *scriptDigital) Read() bool { return s.v }

func TestButtonEdges(t *testing.T) {
	b := NewVirtualButton()
	b.Read()
	assert.False(t, b.WasPressed())
	assert.False(t, b.WasReleased())

	require.NoError(t, b.Set(true))
	b.Read()
	assert.True(t, b.WasPressed())
	assert.False(t, b.WasReleased())

	b.Read()
	assert.False(t, b.WasPressed(), "held state is not an edge")

	require.NoError(t, b.Set(false))
	b.Read()
	assert.False(t, b.WasPressed())
	assert.True(t, b.WasReleased())
}

func TestButtonSuppress(t *testing.T) {
	b := NewVirtualButton()
	require.NoError(t, b.Set(true))
	assert.True(t, b.Read())

	b.Suppress = true
	assert.False(t, b.Read())
	b.Suppress = false
	assert.True(t, b.Read())
}

func TestHatDirections(t *testing.T) {
	tests := []struct {
		name       string
		u, d, l, r bool
		want       uint8
	}{
		{"centered", false, false, false, false, HatCentered},
		{"up", true, false, false, false, HatUp},
		{"up right", true, false, false, true, HatUpRight},
		{"right", false, false, false, true, HatRight},
		{"down right", false, true, false, true, HatDownRight},
		{"down", false, true, false, false, HatDown},
		{"down left", false, true, true, false, HatDownLeft},
		{"left", false, false, true, false, HatLeft},
		{"up left", true, false, true, false, HatUpLeft},
		{"up down cancels", true, true, false, false, HatCentered},
		{"left right cancels", false, false, true, true, HatCentered},
		{"up down left", true, true, true, false, HatLeft},
		{"up left right", true, false, true, true, HatUp},
		{"all four", true, true, true, true, HatCentered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHat(constDigital(tt.u), constDigital(tt.d),
				constDigital(tt.l), constDigital(tt.r), HatConfig{})
			assert.Equal(t, tt.want, h.Read())
		})
	}
}

func TestHatActiveLow(t *testing.T) {
	h := NewHat(constDigital(false), constDigital(true),
		constDigital(true), constDigital(true), HatConfig{ActiveLow: true})
	assert.Equal(t, HatUp, h.Read())
}

func TestHatVirtual(t *testing.T) {
	h := NewVirtualHat()
	assert.Equal(t, HatCentered, h.Read(), "virtual hats rest centered")

	for code := HatCentered; code <= HatUpLeft; code++ {
		require.NoError(t, h.Set(code))
		assert.Equal(t, code, h.Read())
	}
	assert.Error(t, h.Set(9))
	assert.Equal(t, HatUpLeft, h.Read(), "rejected code leaves the position unchanged")
}

func TestHatSetPhysical(t *testing.T) {
	h := NewHat(constDigital(false), constDigital(false),
		constDigital(false), constDigital(false), HatConfig{})
	assert.ErrorIs(t, h.Set(HatUp), ErrNotVirtual)
}

func TestHatSuppress(t *testing.T) {
	h := NewVirtualHat()
	require.NoError(t, h.Set(HatDown))
	assert.Equal(t, HatDown, h.Read())

	h.Suppress = true
	assert.Equal(t, HatCentered, h.Read())
	h.Suppress = false
	assert.Equal(t, HatDown, h.Read())
}

func TestHatSuppressKeepsDebouncing(t *testing.T) {
	// Direction debounce keeps tracking while suppressed, so lifting the
	// suppression reflects the held direction immediately.
	mock := clock.NewMock()
	up := &scriptDigital{}
	h := NewHat(up, &scriptDigital{}, &scriptDigital{}, &scriptDigital{},
		HatConfig{Debounce: 5 * time.Millisecond, Clock: mock})

	h.Suppress = true
	up.v = true
	assert.Equal(t, HatCentered, h.Read())
	mock.Add(5 * time.Millisecond)
	assert.Equal(t, HatCentered, h.Read())

	h.Suppress = false
	assert.Equal(t, HatUp, h.Read())
}
