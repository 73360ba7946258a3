package gamepad_test

import (
	"math/rand"
	"testing"

	"github.com/Alia5/vtouch/gamepad"
	"github.com/Alia5/vtouch/pad"
	"github.com/Alia5/vtouch/touch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCross(sink gamepad.InputSink, h gamepad.HapticSink, haptics bool) *gamepad.Button {
	b := gamepad.NewButton(env(sink, h, haptics), pad.ButtonCross, gamepad.ImageRound, gamepad.ImageCross, 1)
	b.SetBounds(touch.Rect{X: 0, Y: 0, W: 100, H: 100})
	return b
}

func TestButtonEdges(t *testing.T) {
	type testCase struct {
		name     string
		events   []touch.PointerEvent
		expected []edge
		held     bool
	}

	press := edge{down: true, button: pad.ButtonCross}
	release := edge{down: false, button: pad.ButtonCross}

	cases := []testCase{
		{
			name:     "tap",
			events:   []touch.PointerEvent{down(0, 50, 50), up(0, 50, 50)},
			expected: []edge{press, release},
		},
		{
			name:   "down outside",
			events: []touch.PointerEvent{down(0, 150, 50), up(0, 150, 50)},
		},
		{
			name:     "second finger joins",
			events:   []touch.PointerEvent{down(0, 10, 10), down(1, 90, 90)},
			expected: []edge{press},
			held:     true,
		},
		{
			name:     "first finger lifts while second holds",
			events:   []touch.PointerEvent{down(0, 10, 10), down(1, 90, 90), up(0, 10, 10)},
			expected: []edge{press},
			held:     true,
		},
		{
			name:     "drag out cancels without up",
			events:   []touch.PointerEvent{down(3, 50, 50), move(3, 50, 150)},
			expected: []edge{press, release},
		},
		{
			name:     "slide in presses",
			events:   []touch.PointerEvent{down(2, -10, 50), move(2, 10, 50)},
			expected: []edge{press},
			held:     true,
		},
		{
			name:     "up of unknown pointer",
			events:   []touch.PointerEvent{down(0, 50, 50), up(9, 50, 50)},
			expected: []edge{press},
			held:     true,
		},
		{
			name:     "repeated move is idempotent",
			events:   []touch.PointerEvent{down(0, 50, 50), move(0, 50, 50), move(0, 50, 50), move(0, 60, 60)},
			expected: []edge{press},
			held:     true,
		},
		{
			name:   "out of range id never captures",
			events: []touch.PointerEvent{down(40, 50, 50), move(40, 50, 50)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sink := newRecorder()
			b := newCross(sink, nil, false)
			for _, ev := range tc.events {
				b.Touch(ev)
			}
			assert.Equal(t, tc.expected, sink.edges)
			assert.Equal(t, tc.held, b.IsDown())
		})
	}
}

func TestButtonEdgeCountsMatchTransitions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sink := newRecorder()
	b := newCross(sink, nil, false)

	var model touch.PointerMask
	wantPress, wantRelease := 0, 0
	for i := 0; i < 5000; i++ {
		ev := touch.PointerEvent{
			ID:   rng.Intn(4),
			Kind: touch.Kind(rng.Intn(3)),
			X:    rng.Float64()*160 - 30,
			Y:    rng.Float64()*160 - 30,
		}
		was := !model.Empty()
		model.Track(ev, ev.X >= 0 && ev.X <= 100 && ev.Y >= 0 && ev.Y <= 100)
		now := !model.Empty()
		if now && !was {
			wantPress++
		}
		if was && !now {
			wantRelease++
		}
		b.Touch(ev)
	}

	require.NotZero(t, wantPress)
	assert.Equal(t, wantPress, sink.count(true))
	assert.Equal(t, wantRelease, sink.count(false))
}

func TestButtonHaptics(t *testing.T) {
	cases := []struct {
		name    string
		enabled bool
		want    int
	}{
		{name: "enabled", enabled: true, want: 1},
		{name: "disabled", enabled: false, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := &buzzer{}
			b := newCross(newRecorder(), h, tc.enabled)
			b.Touch(down(0, 50, 50))
			b.Touch(down(1, 50, 50))
			b.Touch(up(0, 50, 50))
			b.Touch(up(1, 50, 50))
			assert.Equal(t, tc.want, h.n)
		})
	}
}

func TestButtonRelease(t *testing.T) {
	sink := newRecorder()
	b := newCross(sink, nil, false)

	b.Release()
	assert.Empty(t, sink.edges)

	b.Touch(down(0, 50, 50))
	b.Touch(down(1, 50, 50))
	b.Release()
	assert.Equal(t, []edge{{down: true, button: pad.ButtonCross}, {down: false, button: pad.ButtonCross}}, sink.edges)
	assert.False(t, b.IsDown())

	b.Touch(up(0, 50, 50))
	assert.Len(t, sink.edges, 2)
}

func TestButtonDraw(t *testing.T) {
	sink := newRecorder()
	b := newCross(sink, nil, false)
	b.SetAngle(90)
	b.SetFlipH(true)

	r := &drawRecorder{}
	b.Draw(r)
	require.Len(t, r.calls, 2)
	assert.Equal(t, gamepad.ImageRound, r.calls[0].img)
	assert.Equal(t, 1.0, r.calls[0].scale)
	assert.InDelta(t, 1.5707963, r.calls[0].angle, 1e-6)
	assert.True(t, r.calls[0].flipH)
	assert.False(t, r.calls[1].flipH)
	assert.Equal(t, uint32(0xc0b080), r.calls[0].color.RGB)
	assert.InDelta(t, 0.65, r.calls[0].color.Alpha, 1e-9)
	assert.Equal(t, 50.0, r.calls[0].x)

	b.Touch(down(0, 50, 50))
	r = &drawRecorder{}
	b.Draw(r)
	require.Len(t, r.calls, 2)
	assert.Equal(t, 2.0, r.calls[1].scale)
	assert.InDelta(t, 0.65*1.15, r.calls[1].color.Alpha, 1e-9)
}

func TestButtonContentSize(t *testing.T) {
	b := gamepad.NewButton(env(newRecorder(), nil, false), pad.ButtonStart, gamepad.ImageRect, gamepad.ImageStart, 1.5)
	atlas := fixedAtlas{gamepad.ImageRect: {40, 20}}

	gamepad.Place(b, 100, 100, atlas)
	assert.Equal(t, touch.Rect{X: 70, Y: 85, W: 60, H: 30}, b.Bounds())
}

func TestBoolButton(t *testing.T) {
	var flag bool
	b := gamepad.NewBoolButton(gamepad.Style{Opacity: 1}, &flag, gamepad.ImageRect, gamepad.ImageArrow, 1)
	b.SetBounds(touch.Rect{W: 50, H: 50})

	b.Touch(down(0, 25, 25))
	assert.True(t, flag)
	assert.True(t, b.IsDown())

	flag = false
	b.Touch(down(1, 25, 25))
	assert.False(t, flag, "no write without a transition")

	b.Touch(up(0, 25, 25))
	b.Touch(up(1, 25, 25))
	assert.False(t, flag)

	b.Touch(down(2, 25, 25))
	assert.True(t, flag)
	b.Release()
	assert.False(t, flag)
	assert.False(t, b.IsDown())
}

func TestBoolButtonNilFlag(t *testing.T) {
	b := gamepad.NewBoolButton(gamepad.Style{}, nil, gamepad.ImageRect, gamepad.ImageArrow, 1)
	b.SetBounds(touch.Rect{W: 50, H: 50})
	assert.NotPanics(t, func() {
		b.Touch(down(0, 25, 25))
		b.Release()
	})
}
