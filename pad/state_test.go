package pad_test

import (
	"math"
	"sync"
	"testing"

	"github.com/Alia5/vtouch/pad"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestButtons(t *testing.T) {
	s := pad.New()
	s.ButtonDown(pad.ButtonCross)
	s.ButtonDown(pad.ButtonUp)
	s.ButtonDown(pad.ButtonCross)
	assert.Equal(t, pad.ButtonCross|pad.ButtonUp, s.PeekButtons())

	s.ButtonUp(pad.ButtonCross)
	assert.Equal(t, pad.ButtonUp, s.PeekButtons())

	s.ButtonUp(pad.ButtonSquare)
	assert.Equal(t, pad.ButtonUp, s.PeekButtons())
}

func TestSetAxis(t *testing.T) {
	type testCase struct {
		name   string
		stick  pad.Stick
		x, y   float64
		wantX  float64
		wantY  float64
		stored pad.Stick
	}

	cases := []testCase{
		{name: "in range", stick: pad.StickLeft, x: 0.25, y: -0.5, wantX: 0.25, wantY: -0.5, stored: pad.StickLeft},
		{name: "clamped", stick: pad.StickRight, x: 3, y: -7, wantX: 1, wantY: -1, stored: pad.StickRight},
		{name: "nan zeroed", stick: pad.StickLeft, x: math.NaN(), y: 0.1, wantX: 0, wantY: 0.1, stored: pad.StickLeft},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := pad.New()
			s.SetAxis(tc.stick, tc.x, tc.y)
			x, y := s.PeekAxis(tc.stored)
			assert.Equal(t, tc.wantX, x)
			assert.Equal(t, tc.wantY, y)
		})
	}
}

func TestUnknownStickIgnored(t *testing.T) {
	s := pad.New()
	s.SetAxis(pad.Stick(5), 1, 1)
	x, y := s.PeekAxis(pad.Stick(5))
	assert.Zero(t, x)
	assert.Zero(t, y)
	assert.Equal(t, pad.InputState{}, s.Snapshot())
}

func TestSnapshotAndReset(t *testing.T) {
	s := pad.New()
	s.ButtonDown(pad.ButtonStart)
	s.SetAxis(pad.StickLeft, 0.5, 1)

	assert.Equal(t, pad.InputState{Buttons: pad.ButtonStart, LX: 0.5, LY: 1}, s.Snapshot())

	s.Reset()
	assert.Equal(t, pad.InputState{}, s.Snapshot())
}

func TestInputStateWire(t *testing.T) {
	in := pad.InputState{Buttons: pad.ButtonCircle | pad.ButtonLeft, LX: -1, LY: 0.5, RX: 0.25}
	b, err := in.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, b, pad.InputStateSize)
	assert.Equal(t, []byte{0x80, 0x20, 0x00, 0x00}, b[0:4])

	var out pad.InputState
	require.NoError(t, out.UnmarshalBinary(b))
	assert.Equal(t, in, out)

	assert.Error(t, out.UnmarshalBinary(b[:10]))
}

func TestButtonString(t *testing.T) {
	assert.Equal(t, "none", pad.Button(0).String())
	assert.Equal(t, "right+down", (pad.ButtonRight | pad.ButtonDown).String())
	assert.Equal(t, "unknown", pad.Button(0x00010000).String())
}

func TestConcurrentAccess(t *testing.T) {
	s := pad.New()
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			s.ButtonDown(pad.ButtonCross)
			s.SetAxis(pad.StickLeft, 1, -1)
			s.ButtonUp(pad.ButtonCross)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_ = s.Snapshot()
		}
	}()
	wg.Wait()
	assert.Equal(t, pad.Button(0), s.PeekButtons())
}
