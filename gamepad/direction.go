package gamepad

import (
	"math"

	"github.com/Alia5/vtouch/pad"
	"github.com/Alia5/vtouch/touch"
)

// Deadzone is the minimum normalized distance from a pad centre that registers.
const Deadzone = 0.17

const (
	maxReach  = 2.0
	minExtent = 1e-6
)

// Direction is a set over {Right, Down, Left, Up}.
type Direction uint8

const (
	DirRight Direction = 1 << iota
	DirDown
	DirLeft
	DirUp
)

var directions = [4]struct {
	dir    Direction
	button pad.Button
}{
	{DirRight, pad.ButtonRight},
	{DirDown, pad.ButtonDown},
	{DirLeft, pad.ButtonLeft},
	{DirUp, pad.ButtonUp},
}

// octants maps a quantized angle (0 = +X, counting towards +Y) to directions.
var octants = [8]Direction{
	DirRight,
	DirRight | DirDown,
	DirDown,
	DirDown | DirLeft,
	DirLeft,
	DirLeft | DirUp,
	DirUp,
	DirUp | DirRight,
}

// normalize returns the offset of (x, y) from (cx, cy) in units of extent.
// ok is false when the extent is degenerate or the result is not finite.
func normalize(x, y, cx, cy, extent float64) (dx, dy float64, ok bool) {
	if !(extent > minExtent) || math.IsInf(extent, 0) {
		return 0, 0, false
	}
	dx = (x - cx) / extent
	dy = (y - cy) / extent
	if !finite(dx) || !finite(dy) {
		return 0, 0, false
	}
	return dx, dy, true
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Quantize maps a normalized offset to one direction or a diagonal pair.
// Offsets inside the deadzone or beyond twice the radius yield none.
func Quantize(dx, dy float64) Direction {
	rad := math.Hypot(dx, dy)
	if rad < Deadzone || rad > maxReach {
		return 0
	}
	octant := int(math.Floor(math.Atan2(dy, dx)/(2*math.Pi)*8+0.5)) & 7
	return octants[octant]
}

// clampSquare limits each axis to [-1, 1] independently.
func clampSquare(dx, dy float64) (float64, float64) {
	return min(1, max(-1, dx)), min(1, max(-1, dy))
}

// drag tracks the single pointer a pad or stick follows.
type drag struct {
	id    int
	owned bool
}

// route applies the ownership rules to ev. process reports whether the
// widget should re-evaluate, down whether the owned pointer is still held.
func (d *drag) route(ev touch.PointerEvent, inside bool) (process, down bool) {
	switch ev.Kind {
	case touch.Down:
		if !d.owned && inside {
			d.id, d.owned = ev.ID, true
			return true, true
		}
	case touch.Move:
		if d.owned && ev.ID == d.id {
			return true, true
		}
	case touch.Up:
		if d.owned && ev.ID == d.id {
			d.owned = false
			return true, false
		}
	}
	return false, false
}

func (d *drag) release() { d.owned = false }
