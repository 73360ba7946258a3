// Package pad holds the emulated controller state that on-screen widgets
// drive: a button register and two analog sticks.
package pad

import "sync"

// State is the emulated controller. Widgets mutate it from the UI thread
// while transports snapshot it from their own goroutines.
type State struct {
	mu      sync.Mutex
	buttons Button
	axes    [numSticks][2]float64
}

func New() *State {
	return &State{}
}

func (s *State) ButtonDown(b Button) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buttons |= b
}

func (s *State) ButtonUp(b Button) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buttons &^= b
}

// SetAxis stores a stick position, clamped to [-1, 1] per axis.
// Unknown sticks are ignored.
func (s *State) SetAxis(stick Stick, x, y float64) {
	if stick < 0 || stick >= numSticks {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.axes[stick] = [2]float64{clampUnit(x), clampUnit(y)}
}

func (s *State) PeekButtons() Button {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buttons
}

func (s *State) PeekAxis(stick Stick) (x, y float64) {
	if stick < 0 || stick >= numSticks {
		return 0, 0
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.axes[stick][0], s.axes[stick][1]
}

// Snapshot copies the whole state.
func (s *State) Snapshot() InputState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return InputState{
		Buttons: s.buttons,
		LX:      float32(s.axes[StickLeft][0]),
		LY:      float32(s.axes[StickLeft][1]),
		RX:      float32(s.axes[StickRight][0]),
		RY:      float32(s.axes[StickRight][1]),
	}
}

// Reset releases every button and centres both sticks.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buttons = 0
	s.axes = [numSticks][2]float64{}
}

func clampUnit(v float64) float64 {
	if v != v {
		return 0
	}
	return min(1, max(-1, v))
}
