package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Alia5/vtouch/gamepad"
)

// Renderer draws atlas images onto one destination image.
type Renderer struct {
	dst   *ebiten.Image
	atlas *Atlas
}

func NewRenderer(dst *ebiten.Image, atlas *Atlas) Renderer {
	return Renderer{dst: dst, atlas: atlas}
}

// Premultiply converts c into the premultiplied scale used by ColorScale.
func Premultiply(c gamepad.Color) [4]float32 {
	a := float32(c.Alpha)
	r := float32(c.RGB>>16&0xFF) / 255
	g := float32(c.RGB>>8&0xFF) / 255
	b := float32(c.RGB&0xFF) / 255
	return [4]float32{r * a, g * a, b * a, a}
}

func tint(op *ebiten.DrawImageOptions, c gamepad.Color) {
	s := Premultiply(c)
	op.ColorScale.Scale(s[0], s[1], s[2], s[3])
}

// DrawImageRotated draws img centred on (x, y), mirrored first when flipH,
// then scaled and rotated by angle radians.
func (r Renderer) DrawImageRotated(img gamepad.ImageID, x, y, scale, angle float64, c gamepad.Color, flipH bool) {
	sub := r.atlas.sub(img)
	b := sub.Bounds()

	var op ebiten.DrawImageOptions
	op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	if flipH {
		op.GeoM.Scale(-1, 1)
	}
	op.GeoM.Scale(scale, scale)
	if angle != 0 {
		op.GeoM.Rotate(angle)
	}
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	tint(&op, c)
	r.dst.DrawImage(sub, &op)
}

func (r Renderer) DrawImage(img gamepad.ImageID, x, y, scale float64, c gamepad.Color, align gamepad.Align) {
	sub := r.atlas.sub(img)
	b := sub.Bounds()

	var op ebiten.DrawImageOptions
	if align == gamepad.AlignCenter {
		op.GeoM.Translate(-float64(b.Dx())/2, -float64(b.Dy())/2)
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	tint(&op, c)
	r.dst.DrawImage(sub, &op)
}
