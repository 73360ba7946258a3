package gamepad_test

import (
	"github.com/Alia5/vtouch/gamepad"
	"github.com/Alia5/vtouch/pad"
	"github.com/Alia5/vtouch/touch"
)

type edge struct {
	down   bool
	button pad.Button
}

// recorder is a pad.State that also logs every call made on it.
type recorder struct {
	*pad.State
	edges []edge
	axes  [][2]float64
}

func newRecorder() *recorder { return &recorder{State: pad.New()} }

func (r *recorder) ButtonDown(b pad.Button) {
	r.edges = append(r.edges, edge{down: true, button: b})
	r.State.ButtonDown(b)
}

func (r *recorder) ButtonUp(b pad.Button) {
	r.edges = append(r.edges, edge{down: false, button: b})
	r.State.ButtonUp(b)
}

func (r *recorder) SetAxis(s pad.Stick, x, y float64) {
	r.axes = append(r.axes, [2]float64{x, y})
	r.State.SetAxis(s, x, y)
}

func (r *recorder) count(down bool) int {
	n := 0
	for _, e := range r.edges {
		if e.down == down {
			n++
		}
	}
	return n
}

func (r *recorder) reset() {
	r.edges = nil
	r.axes = nil
}

type buzzer struct{ n int }

func (b *buzzer) Vibrate(gamepad.HapticKind) { b.n++ }

func env(sink gamepad.InputSink, haptics gamepad.HapticSink, enabled bool) gamepad.Env {
	return gamepad.Env{
		Sink:    sink,
		Haptics: haptics,
		Style:   gamepad.Style{Opacity: 0.65, Haptics: enabled},
	}
}

func down(id int, x, y float64) touch.PointerEvent {
	return touch.PointerEvent{ID: id, Kind: touch.Down, X: x, Y: y}
}

func move(id int, x, y float64) touch.PointerEvent {
	return touch.PointerEvent{ID: id, Kind: touch.Move, X: x, Y: y}
}

func up(id int, x, y float64) touch.PointerEvent {
	return touch.PointerEvent{ID: id, Kind: touch.Up, X: x, Y: y}
}

type fixedAtlas map[gamepad.ImageID][2]float64

func (a fixedAtlas) ImageSize(img gamepad.ImageID) (float64, float64) {
	s := a[img]
	return s[0], s[1]
}

type drawCall struct {
	img     gamepad.ImageID
	x, y    float64
	scale   float64
	angle   float64
	color   gamepad.Color
	flipH   bool
	rotated bool
}

type drawRecorder struct{ calls []drawCall }

func (d *drawRecorder) DrawImageRotated(img gamepad.ImageID, x, y, scale, angle float64, c gamepad.Color, flipH bool) {
	d.calls = append(d.calls, drawCall{img: img, x: x, y: y, scale: scale, angle: angle, color: c, flipH: flipH, rotated: true})
}

func (d *drawRecorder) DrawImage(img gamepad.ImageID, x, y, scale float64, c gamepad.Color, _ gamepad.Align) {
	d.calls = append(d.calls, drawCall{img: img, x: x, y: y, scale: scale, color: c})
}
