package ebitenui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Alia5/vtouch/touch"
)

// TouchSource polls ebiten touches, and optionally the left mouse button,
// into pointer events.
type TouchSource struct {
	Mouse bool

	tracker  touch.Tracker
	ids      []ebiten.TouchID
	contacts []touch.Contact
	events   []touch.PointerEvent
}

// Poll returns the events since the previous call. The slice is reused by
// the next call.
func (s *TouchSource) Poll() []touch.PointerEvent {
	s.events = s.events[:0]

	s.ids = ebiten.AppendTouchIDs(s.ids[:0])
	s.contacts = s.contacts[:0]
	for _, id := range s.ids {
		x, y := ebiten.TouchPosition(id)
		s.contacts = append(s.contacts, touch.Contact{Key: int(id), X: float64(x), Y: float64(y)})
	}
	s.events = s.tracker.Update(s.contacts, s.events)

	if s.Mouse {
		x, y := ebiten.CursorPosition()
		pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
		s.events = s.tracker.Mouse(pressed, float64(x), float64(y), s.events)
	}
	return s.events
}
