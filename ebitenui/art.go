package ebitenui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Alia5/vtouch/gamepad"
)

// Sizes of the built-in artwork, in atlas pixels.
const (
	artRound    = 64
	artRectW    = 96
	artRectH    = 40
	artShoulder = 96
	artDir      = 48
	artStickBG  = 128
	artStick    = 64
	artGlyph    = 40
)

type artCell struct {
	id   gamepad.ImageID
	w, h int
	draw func(dst *ebiten.Image, w, h float32)
}

var white = color.White

func roundArt(dst *ebiten.Image, w, h float32) {
	vector.DrawFilledCircle(dst, w/2, h/2, w/2-1, white, true)
}

func rectArt(dst *ebiten.Image, w, h float32) {
	vector.DrawFilledRect(dst, 2, 2, w-4, h-4, white, true)
}

func shoulderArt(dst *ebiten.Image, w, h float32) {
	vector.DrawFilledRect(dst, 2, h/3, w-4, h*2/3-2, white, true)
	vector.DrawFilledCircle(dst, w/3, h/3+2, h/3, white, true)
}

func dirArt(dst *ebiten.Image, w, h float32) {
	vector.DrawFilledRect(dst, 2, 2, w-4, h-4, white, true)
}

// arrowArt is a chevron pointing right; widgets rotate it into place.
func arrowArt(dst *ebiten.Image, w, h float32) {
	vector.StrokeLine(dst, w*0.3, h*0.2, w*0.75, h/2, 5, white, true)
	vector.StrokeLine(dst, w*0.75, h/2, w*0.3, h*0.8, 5, white, true)
}

func stickBGArt(dst *ebiten.Image, w, h float32) {
	vector.StrokeCircle(dst, w/2, h/2, w/2-3, 4, white, true)
}

func circleArt(dst *ebiten.Image, w, h float32) {
	vector.StrokeCircle(dst, w/2, h/2, w/2-6, 4, white, true)
}

func crossArt(dst *ebiten.Image, w, h float32) {
	vector.StrokeLine(dst, 6, 6, w-6, h-6, 4, white, true)
	vector.StrokeLine(dst, w-6, 6, 6, h-6, 4, white, true)
}

func triangleArt(dst *ebiten.Image, w, h float32) {
	top, left, right := [2]float32{w / 2, 5}, [2]float32{5, h - 7}, [2]float32{w - 5, h - 7}
	vector.StrokeLine(dst, top[0], top[1], left[0], left[1], 4, white, true)
	vector.StrokeLine(dst, left[0], left[1], right[0], right[1], 4, white, true)
	vector.StrokeLine(dst, right[0], right[1], top[0], top[1], 4, white, true)
}

func squareArt(dst *ebiten.Image, w, h float32) {
	vector.StrokeRect(dst, 7, 7, w-14, h-14, 4, white, true)
}

// barsArt draws n short horizontal bars, a stand-in for a text label.
func barsArt(n int) func(dst *ebiten.Image, w, h float32) {
	return func(dst *ebiten.Image, w, h float32) {
		gap := h / float32(n+1)
		for i := 1; i <= n; i++ {
			vector.StrokeLine(dst, w*0.2, gap*float32(i), w*0.8, gap*float32(i), 3, white, true)
		}
	}
}

func defaultCells() []artCell {
	return []artCell{
		{gamepad.ImageRound, artRound, artRound, roundArt},
		{gamepad.ImageRect, artRectW, artRectH, rectArt},
		{gamepad.ImageShoulder, artShoulder, artShoulder / 2, shoulderArt},
		{gamepad.ImageDir, artDir, artDir, dirArt},
		{gamepad.ImageArrow, artGlyph, artGlyph, arrowArt},
		{gamepad.ImageStickBG, artStickBG, artStickBG, stickBGArt},
		{gamepad.ImageStick, artStick, artStick, roundArt},
		{gamepad.ImageCircle, artGlyph, artGlyph, circleArt},
		{gamepad.ImageCross, artGlyph, artGlyph, crossArt},
		{gamepad.ImageTriangle, artGlyph, artGlyph, triangleArt},
		{gamepad.ImageSquare, artGlyph, artGlyph, squareArt},
		{gamepad.ImageStart, artGlyph, artGlyph / 2, barsArt(2)},
		{gamepad.ImageSelect, artGlyph, artGlyph / 2, barsArt(1)},
		{gamepad.ImageL, artGlyph, artGlyph / 2, barsArt(1)},
		{gamepad.ImageR, artGlyph, artGlyph / 2, barsArt(1)},
	}
}

// packCells lays cells out left to right in rows no wider than maxW and
// returns their rectangles plus the page size.
func packCells(cells []artCell, maxW, pad int) (rects []image.Rectangle, w, h int) {
	x, y, rowH := pad, pad, 0
	for _, c := range cells {
		if x+c.w+pad > maxW && x > pad {
			x, y = pad, y+rowH+pad
			rowH = 0
		}
		rects = append(rects, image.Rect(x, y, x+c.w, y+c.h))
		x += c.w + pad
		rowH = max(rowH, c.h)
		w = max(w, x)
	}
	return rects, w, y + rowH + pad
}

// DefaultAtlas renders white placeholder artwork for every image the
// widgets use. Colour comes from tinting at draw time.
func DefaultAtlas() *Atlas {
	cells := defaultCells()
	rects, w, h := packCells(cells, 512, 2)
	page := ebiten.NewImage(w, h)
	a := &Atlas{page: page, regions: make(map[gamepad.ImageID]image.Rectangle, len(cells))}
	for i, c := range cells {
		a.regions[c.id] = rects[i]
		cell := ebiten.NewImage(c.w, c.h)
		c.draw(cell, float32(c.w), float32(c.h))
		var op ebiten.DrawImageOptions
		op.GeoM.Translate(float64(rects[i].Min.X), float64(rects[i].Min.Y))
		page.DrawImage(cell, &op)
		cell.Deallocate()
	}
	return a
}
