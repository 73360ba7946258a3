// Package touch provides the pointer primitives shared by all on-screen widgets:
// pointer events, hit regions and the per-widget set of captured pointers.
package touch

import "fmt"

// MaxPointers is the number of distinct pointer IDs a PointerMask can hold.
const MaxPointers = 32

// Kind is the phase of a pointer event.
type Kind uint8

const (
	Down Kind = iota
	Move
	Up
)

func (k Kind) String() string {
	switch k {
	case Down:
		return "down"
	case Move:
		return "move"
	case Up:
		return "up"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// PointerEvent is a single touch update in screen space.
// IDs are recycled by the platform after an Up event.
type PointerEvent struct {
	ID   int
	Kind Kind
	X, Y float64
}

func (e PointerEvent) String() string {
	return fmt.Sprintf("%d %s %.1f %.1f", e.ID, e.Kind, e.X, e.Y)
}

// Rect is an axis-aligned hit region.
type Rect struct {
	X, Y, W, H float64
}

// RectFromCenter returns a w×h rect centred on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Contains reports whether (x, y) lies inside the rect, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W &&
		y >= r.Y && y <= r.Y+r.H
}

func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }
