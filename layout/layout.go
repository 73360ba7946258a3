package layout

import (
	"github.com/Alia5/vtouch/gamepad"
	"github.com/Alia5/vtouch/pad"
)

// Screen is the overlay resolution in display-independent pixels.
type Screen struct {
	Width  int
	Height int
}

func setPair(x, y *int, dx, dy int) bool {
	if *x != Unset && *y != Unset {
		return false
	}
	*x, *y = dx, dy
	return true
}

func setOne(v *int, d int) bool {
	if *v != Unset {
		return false
	}
	*v = d
	return true
}

// InitDefaults fills every Unset field of cfg from the screen size and
// button scale. It reports whether anything changed; calling it again on
// its own result changes nothing.
func InitDefaults(cfg *Config, s Screen) bool {
	scale := cfg.ButtonScale
	changed := false

	// face buttons: diamond near the bottom-right corner
	spacing := int(50 * scale)
	changed = setOne(&cfg.ActionButtonSpacing, spacing) || changed
	changed = setPair(&cfg.ActionButtonCenterX, &cfg.ActionButtonCenterY,
		s.Width-spacing*2, s.Height-spacing*2) || changed

	// directional pad: bottom-left, lifted above the stick when it is shown
	radius := int(40 * scale)
	changed = setOne(&cfg.DpadRadius, radius) || changed
	dpadX := int(2.5 * float64(radius))
	dpadY := s.Height - radius
	if cfg.ShowAnalogStick {
		dpadY = int(float64(dpadY) - 200*scale)
	}
	changed = setPair(&cfg.DpadX, &cfg.DpadY, dpadX, dpadY) || changed

	h := float64(s.Height)
	changed = setPair(&cfg.AnalogStickX, &cfg.AnalogStickY, dpadX, int(h-80*scale)) || changed

	// start, select and unthrottle share a row centred at the bottom
	offset := float64(int(100*scale)) * scale
	mid := s.Width / 2
	bottomY := int(h - 60*scale)
	changed = setPair(&cfg.StartKeyX, &cfg.StartKeyY, int(float64(mid)+offset), bottomY) || changed
	changed = setPair(&cfg.SelectKeyX, &cfg.SelectKeyY, mid, bottomY) || changed
	changed = setPair(&cfg.UnthrottleKeyX, &cfg.UnthrottleKeyY, int(float64(mid)-offset), bottomY) || changed

	changed = setPair(&cfg.LKeyX, &cfg.LKeyY, int(70*scale), int(40*scale)) || changed
	changed = setPair(&cfg.RKeyX, &cfg.RKeyY, int(float64(s.Width)-60*scale), int(40*scale)) || changed

	return changed
}

// Point is a widget anchor (its centre) in screen space.
type Point struct {
	X, Y float64
}

func pt(x, y int) Point { return Point{X: float64(x), Y: float64(y)} }

// Placement holds the resolved anchor of every control.
type Placement struct {
	Circle, Cross, Triangle, Square Point
	Start, Select, Unthrottle       Point
	L, R                            Point
	DPad                            Point
	DPadRadius                      float64
	Stick                           Point
	Pause                           Point
}

// Resolve turns a configuration whose defaults have been initialised into
// widget anchors.
func Resolve(cfg Config, s Screen) Placement {
	cx, cy, sp := cfg.ActionButtonCenterX, cfg.ActionButtonCenterY, cfg.ActionButtonSpacing
	return Placement{
		Circle:     pt(cx+sp, cy),
		Cross:      pt(cx, cy+sp),
		Triangle:   pt(cx, cy-sp),
		Square:     pt(cx-sp, cy),
		Start:      pt(cfg.StartKeyX, cfg.StartKeyY),
		Select:     pt(cfg.SelectKeyX, cfg.SelectKeyY),
		Unthrottle: pt(cfg.UnthrottleKeyX, cfg.UnthrottleKeyY),
		L:          pt(cfg.LKeyX, cfg.LKeyY),
		R:          pt(cfg.RKeyX, cfg.RKeyY),
		DPad:       pt(cfg.DpadX, cfg.DpadY),
		DPadRadius: float64(cfg.DpadRadius),
		Stick:      pt(cfg.AnalogStickX, cfg.AnalogStickY),
		Pause:      pt(s.Width/2, 20),
	}
}

// Deps are the collaborators handed to the widgets Build creates.
type Deps struct {
	Sink    gamepad.InputSink
	Haptics gamepad.HapticSink
	Atlas   gamepad.Atlas
	Tracer  gamepad.Tracer

	// Flags toggled by the unthrottle and pause buttons. May be nil.
	Unthrottle *bool
	Pause      *bool
}

// Build creates the overlay for cfg. cfg must already have its defaults
// initialised. The overlay is empty when ShowTouchControls is off.
func Build(cfg Config, s Screen, d Deps) *gamepad.Overlay {
	o := gamepad.NewOverlay(d.Tracer)
	if !cfg.ShowTouchControls {
		return o
	}

	p := Resolve(cfg, s)
	scale := cfg.ButtonScale
	style := gamepad.Style{Opacity: cfg.Opacity(), Haptics: cfg.HapticFeedback}
	env := gamepad.Env{Sink: d.Sink, Haptics: d.Haptics, Style: style}

	add := func(w gamepad.Widget, at Point) gamepad.Widget {
		gamepad.Place(w, at.X, at.Y, d.Atlas)
		return o.Add(w)
	}
	button := func(bit pad.Button, bg, img gamepad.ImageID, at Point) *gamepad.Button {
		b := gamepad.NewButton(env, bit, bg, img, scale)
		add(b, at)
		return b
	}

	if cfg.ShowPauseButton {
		pause := gamepad.NewBoolButton(style, d.Pause, gamepad.ImageRound, gamepad.ImageArrow, scale)
		pause.SetAngle(90)
		add(pause, p.Pause)
	}

	button(pad.ButtonCircle, gamepad.ImageRound, gamepad.ImageCircle, p.Circle)
	button(pad.ButtonCross, gamepad.ImageRound, gamepad.ImageCross, p.Cross)
	button(pad.ButtonTriangle, gamepad.ImageRound, gamepad.ImageTriangle, p.Triangle)
	button(pad.ButtonSquare, gamepad.ImageRound, gamepad.ImageSquare, p.Square)

	button(pad.ButtonStart, gamepad.ImageRect, gamepad.ImageStart, p.Start)
	button(pad.ButtonSelect, gamepad.ImageRect, gamepad.ImageSelect, p.Select)
	unthrottle := gamepad.NewBoolButton(style, d.Unthrottle, gamepad.ImageRect, gamepad.ImageArrow, scale)
	unthrottle.SetAngle(180)
	add(unthrottle, p.Unthrottle)

	button(pad.ButtonLTrigger, gamepad.ImageShoulder, gamepad.ImageL, p.L)
	button(pad.ButtonRTrigger, gamepad.ImageShoulder, gamepad.ImageR, p.R).SetFlipH(true)

	add(gamepad.NewDPad(env, gamepad.ImageDir, gamepad.ImageArrow, scale, p.DPadRadius), p.DPad)

	if cfg.ShowAnalogStick {
		add(gamepad.NewStick(env, pad.StickLeft, gamepad.ImageStickBG, gamepad.ImageStick, scale), p.Stick)
	}
	return o
}
