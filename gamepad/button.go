package gamepad

import (
	"math"

	"github.com/Alia5/vtouch/pad"
	"github.com/Alia5/vtouch/touch"
)

// multiTouch is the shared part of buttons any number of pointers can hold.
type multiTouch struct {
	bounds touch.Rect
	mask   touch.PointerMask
	bgImg  ImageID
	img    ImageID
	scale  float64
	angle  float64 // degrees
	flipH  bool
}

// track feeds ev into the mask and returns the logical state before and after.
func (b *multiTouch) track(ev touch.PointerEvent) (was, now bool) {
	was = !b.mask.Empty()
	b.mask.Track(ev, b.bounds.Contains(ev.X, ev.Y))
	return was, !b.mask.Empty()
}

func (b *multiTouch) ContentSize(a Atlas) (w, h float64) {
	w, h = a.ImageSize(b.bgImg)
	return w * b.scale, h * b.scale
}

func (b *multiTouch) Bounds() touch.Rect     { return b.bounds }
func (b *multiTouch) SetBounds(r touch.Rect) { b.bounds = r }

// SetAngle rotates the button images by deg degrees.
func (b *multiTouch) SetAngle(deg float64) { b.angle = deg }

// SetFlipH mirrors the background image horizontally.
func (b *multiTouch) SetFlipH(flip bool) { b.flipH = flip }

func (b *multiTouch) draw(r Renderer, down bool, opacity float64) {
	scale := b.scale
	if down {
		scale *= 2
		opacity *= 1.15
	}
	rad := b.angle * math.Pi / 180
	cx, cy := b.bounds.CenterX(), b.bounds.CenterY()
	r.DrawImageRotated(b.bgImg, cx, cy, scale, rad, ColorAlpha(tintBackground, opacity), b.flipH)
	r.DrawImageRotated(b.img, cx, cy, scale, rad, ColorAlpha(tintGlyph, opacity), false)
}

// Button presses a controller button while at least one pointer holds it.
type Button struct {
	multiTouch
	env Env
	bit pad.Button
}

func NewButton(env Env, bit pad.Button, bg, img ImageID, scale float64) *Button {
	return &Button{
		multiTouch: multiTouch{bgImg: bg, img: img, scale: scale},
		env:        env,
		bit:        bit,
	}
}

func (b *Button) Touch(ev touch.PointerEvent) {
	was, now := b.track(ev)
	switch {
	case now && !was:
		b.env.pulse()
		b.env.Sink.ButtonDown(b.bit)
	case was && !now:
		b.env.Sink.ButtonUp(b.bit)
	}
}

// IsDown reads the controller, so presses from other sources show too.
func (b *Button) IsDown() bool {
	return b.env.Sink.PeekButtons()&b.bit != 0
}

func (b *Button) Bit() pad.Button { return b.bit }

func (b *Button) Draw(r Renderer) {
	b.draw(r, b.IsDown(), b.env.Style.Opacity)
}

func (b *Button) Release() {
	if !b.mask.Empty() {
		b.mask = 0
		b.env.Sink.ButtonUp(b.bit)
	}
}

// BoolButton mirrors its held state into a flag owned by the caller.
type BoolButton struct {
	multiTouch
	style Style
	value *bool
}

func NewBoolButton(style Style, value *bool, bg, img ImageID, scale float64) *BoolButton {
	return &BoolButton{
		multiTouch: multiTouch{bgImg: bg, img: img, scale: scale},
		style:      style,
		value:      value,
	}
}

func (b *BoolButton) Touch(ev touch.PointerEvent) {
	was, now := b.track(ev)
	if was != now && b.value != nil {
		*b.value = now
	}
}

func (b *BoolButton) IsDown() bool { return !b.mask.Empty() }

func (b *BoolButton) Draw(r Renderer) {
	b.draw(r, b.IsDown(), b.style.Opacity)
}

func (b *BoolButton) Release() {
	if !b.mask.Empty() {
		b.mask = 0
		if b.value != nil {
			*b.value = false
		}
	}
}
