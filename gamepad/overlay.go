// Package gamepad implements the on-screen controller widgets: multi-touch
// buttons, an 8-way directional pad and an analog stick. Widgets turn pointer
// events into button edges and axis writes on an InputSink.
//
// All widget methods must be called from a single goroutine.
package gamepad

import "github.com/Alia5/vtouch/touch"

// Widget is one on-screen control.
type Widget interface {
	Touch(ev touch.PointerEvent)
	ContentSize(a Atlas) (w, h float64)
	Draw(r Renderer)
	Bounds() touch.Rect
	SetBounds(r touch.Rect)
	// Release drops every captured pointer, firing the matching release
	// edges so nothing stays pressed.
	Release()
}

// Place centres w's hit region on (cx, cy) using its content size.
func Place(w Widget, cx, cy float64, a Atlas) {
	width, height := w.ContentSize(a)
	w.SetBounds(touch.RectFromCenter(cx, cy, width, height))
}

// Overlay is the set of widgets shown over the emulator screen.
type Overlay struct {
	widgets []Widget
	tracer  Tracer
	hidden  bool
	closed  bool
}

// NewOverlay creates an empty overlay. tracer may be nil.
func NewOverlay(tracer Tracer) *Overlay {
	return &Overlay{tracer: tracer}
}

// Add appends w and returns it.
func (o *Overlay) Add(w Widget) Widget {
	o.widgets = append(o.widgets, w)
	return w
}

func (o *Overlay) Widgets() []Widget { return o.widgets }

// Touch hands ev to every widget. Each widget applies its own hit test, so
// a pointer dragged off a button still reaches it and cancels the press.
func (o *Overlay) Touch(ev touch.PointerEvent) {
	if o.closed || o.hidden {
		return
	}
	if o.tracer != nil {
		o.tracer.Trace(ev)
	}
	for _, w := range o.widgets {
		w.Touch(ev)
	}
}

func (o *Overlay) Draw(r Renderer) {
	if o.closed || o.hidden {
		return
	}
	for _, w := range o.widgets {
		w.Draw(r)
	}
}

// SetVisible shows or hides the overlay. Hiding releases every widget.
func (o *Overlay) SetVisible(visible bool) {
	if o.closed {
		return
	}
	if !visible && !o.hidden {
		o.releaseAll()
	}
	o.hidden = !visible
}

func (o *Overlay) Visible() bool { return !o.hidden && !o.closed }

// Close releases every widget. Further events are ignored.
func (o *Overlay) Close() {
	if o.closed {
		return
	}
	o.releaseAll()
	o.closed = true
}

func (o *Overlay) releaseAll() {
	for _, w := range o.widgets {
		w.Release()
	}
}
