package gamepad

import (
	"github.com/Alia5/vtouch/pad"
	"github.com/Alia5/vtouch/touch"
)

// InputSink is the emulated controller the widgets drive.
// *pad.State satisfies it.
type InputSink interface {
	ButtonDown(b pad.Button)
	ButtonUp(b pad.Button)
	SetAxis(stick pad.Stick, x, y float64)
	PeekButtons() pad.Button
	PeekAxis(stick pad.Stick) (x, y float64)
}

// HapticKind selects a vibration pattern.
type HapticKind int

const (
	HapticVirtualKey HapticKind = iota
	HapticRumble
)

// HapticSink fires a vibration. Fire-and-forget.
type HapticSink interface {
	Vibrate(kind HapticKind)
}

// HapticFunc adapts a function to HapticSink.
type HapticFunc func(kind HapticKind)

func (f HapticFunc) Vibrate(kind HapticKind) { f(kind) }

// ImageID names an image in the atlas.
type ImageID string

const (
	ImageRound    ImageID = "round"
	ImageRect     ImageID = "rect"
	ImageShoulder ImageID = "shoulder"
	ImageDir      ImageID = "dir"
	ImageArrow    ImageID = "arrow"
	ImageStickBG  ImageID = "stick_bg"
	ImageStick    ImageID = "stick"
	ImageCircle   ImageID = "circle"
	ImageCross    ImageID = "cross"
	ImageTriangle ImageID = "triangle"
	ImageSquare   ImageID = "square"
	ImageStart    ImageID = "start"
	ImageSelect   ImageID = "select"
	ImageL        ImageID = "l"
	ImageR        ImageID = "r"
)

// Align anchors DrawImage output relative to (x, y).
type Align int

const (
	AlignCenter Align = iota
	AlignTopLeft
)

// Color is a packed 0xRRGGBB colour with a separate opacity in [0, 1].
type Color struct {
	RGB   uint32
	Alpha float64
}

// ColorAlpha pairs rgb with opacity clamped to [0, 1].
func ColorAlpha(rgb uint32, opacity float64) Color {
	if opacity != opacity {
		opacity = 0
	}
	return Color{RGB: rgb & 0xFFFFFF, Alpha: min(1, max(0, opacity))}
}

// Renderer draws atlas images. Angles are radians.
type Renderer interface {
	DrawImageRotated(img ImageID, x, y, scale, angle float64, c Color, flipH bool)
	DrawImage(img ImageID, x, y, scale float64, c Color, align Align)
}

// Atlas reports the native size of an image.
type Atlas interface {
	ImageSize(img ImageID) (w, h float64)
}

// Tracer observes every pointer event an overlay receives.
type Tracer interface {
	Trace(ev touch.PointerEvent)
}

// Style is the read-only appearance and feedback snapshot shared by widgets.
type Style struct {
	Opacity float64
	Haptics bool
}

// Env bundles what every widget needs from its surroundings.
type Env struct {
	Sink    InputSink
	Haptics HapticSink
	Style   Style
}

func (e Env) pulse() {
	if e.Style.Haptics && e.Haptics != nil {
		e.Haptics.Vibrate(HapticVirtualKey)
	}
}

const (
	tintBackground uint32 = 0xc0b080
	tintGlyph      uint32 = 0xFFFFFF
	tintThumb      uint32 = 0x808080
)
