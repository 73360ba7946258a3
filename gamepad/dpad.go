package gamepad

import (
	"math"

	"github.com/Alia5/vtouch/touch"
)

// DPad is an 8-way directional pad driven by a single dragging pointer.
// Diagonals press two direction buttons at once, never three.
type DPad struct {
	env     Env
	bounds  touch.Rect
	drag    drag
	down    Direction
	arrow   ImageID
	overlay ImageID
	scale   float64
	radius  float64
}

// NewDPad creates a pad whose arrows sit radius away from its centre.
// overlay may be empty.
func NewDPad(env Env, arrow, overlay ImageID, scale, radius float64) *DPad {
	return &DPad{
		env:     env,
		arrow:   arrow,
		overlay: overlay,
		scale:   scale,
		radius:  radius,
	}
}

func (p *DPad) Touch(ev touch.PointerEvent) {
	process, down := p.drag.route(ev, p.bounds.Contains(ev.X, ev.Y))
	if process {
		p.process(ev.X, ev.Y, down)
	}
}

func (p *DPad) process(x, y float64, down bool) {
	var next Direction
	if down {
		dx, dy, ok := normalize(x, y, p.bounds.CenterX(), p.bounds.CenterY(), p.radius*p.scale)
		if ok {
			next = Quantize(dx, dy)
		}
	}
	p.apply(next)
}

// apply diffs next against the current mask and fires per-direction edges.
func (p *DPad) apply(next Direction) {
	pressed := next &^ p.down
	released := p.down &^ next
	p.down = next
	for _, d := range directions {
		if pressed&d.dir != 0 {
			p.env.pulse()
			p.env.Sink.ButtonDown(d.button)
		}
		if released&d.dir != 0 {
			p.env.Sink.ButtonUp(d.button)
		}
	}
}

// Directions returns the directions currently held.
func (p *DPad) Directions() Direction { return p.down }

func (p *DPad) ContentSize(Atlas) (w, h float64) {
	return p.radius * 4, p.radius * 4
}

func (p *DPad) Bounds() touch.Rect     { return p.bounds }
func (p *DPad) SetBounds(r touch.Rect) { p.bounds = r }

var (
	arrowOffX = [4]float64{1, 0, -1, 0}
	arrowOffY = [4]float64{0, 1, 0, -1}
)

func (p *DPad) Draw(r Renderer) {
	opacity := p.env.Style.Opacity
	bg := ColorAlpha(tintBackground, opacity)
	fg := ColorAlpha(tintGlyph, opacity)

	buttons := p.env.Sink.PeekButtons()
	cx, cy := p.bounds.CenterX(), p.bounds.CenterY()
	for i, d := range directions {
		x := cx + arrowOffX[i]*p.radius
		y := cy + arrowOffY[i]*p.radius
		angle := float64(i)*math.Pi/2 + math.Pi
		scale := p.scale
		if buttons&d.button != 0 {
			scale *= 2
		}
		r.DrawImageRotated(p.arrow, x, y, scale, angle, bg, false)
		if p.overlay != "" {
			r.DrawImageRotated(p.overlay, x, y, scale, angle, fg, false)
		}
	}
}

func (p *DPad) Release() {
	p.drag.release()
	p.apply(0)
}
