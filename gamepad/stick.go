package gamepad

import (
	"github.com/Alia5/vtouch/pad"
	"github.com/Alia5/vtouch/touch"
)

// StickTravel is the thumb travel, before scaling, that maps to full deflection.
const StickTravel = 50.0

// Stick is an analog stick driven by a single dragging pointer.
// Each axis is clamped on its own, so diagonals reach the corners.
type Stick struct {
	env    Env
	bounds touch.Rect
	drag   drag
	stick  pad.Stick
	bgImg  ImageID
	thumb  ImageID
	scale  float64
}

func NewStick(env Env, stick pad.Stick, bg, thumb ImageID, scale float64) *Stick {
	return &Stick{
		env:   env,
		stick: stick,
		bgImg: bg,
		thumb: thumb,
		scale: scale,
	}
}

func (s *Stick) Touch(ev touch.PointerEvent) {
	process, down := s.drag.route(ev, s.bounds.Contains(ev.X, ev.Y))
	if process {
		s.process(ev.X, ev.Y, down)
	}
}

func (s *Stick) process(x, y float64, down bool) {
	if !down {
		s.env.Sink.SetAxis(s.stick, 0, 0)
		return
	}
	dx, dy, ok := normalize(x, y, s.bounds.CenterX(), s.bounds.CenterY(), StickTravel*s.scale)
	if !ok {
		s.env.Sink.SetAxis(s.stick, 0, 0)
		return
	}
	dx, dy = clampSquare(dx, dy)
	// screen Y grows downwards, stick Y grows upwards
	s.env.Sink.SetAxis(s.stick, dx, -dy)
}

func (s *Stick) ContentSize(a Atlas) (w, h float64) {
	return a.ImageSize(s.bgImg)
}

func (s *Stick) Bounds() touch.Rect     { return s.bounds }
func (s *Stick) SetBounds(r touch.Rect) { s.bounds = r }

func (s *Stick) Draw(r Renderer) {
	bg := ColorAlpha(tintBackground, s.env.Style.Opacity)
	cx, cy := s.bounds.CenterX(), s.bounds.CenterY()
	x, y := s.env.Sink.PeekAxis(s.stick)

	r.DrawImage(s.bgImg, cx, cy, s.scale, bg, AlignCenter)
	fg := ColorAlpha(tintThumb, s.env.Style.Opacity)
	r.DrawImage(s.thumb, cx+x*StickTravel*s.scale, cy-y*StickTravel*s.scale, s.scale, fg, AlignCenter)
}

// Release drops the dragging pointer and centres the stick.
func (s *Stick) Release() {
	s.drag.release()
	s.env.Sink.SetAxis(s.stick, 0, 0)
}
