package touch

import "math/bits"

// PointerMask is the set of pointer IDs currently captured by one widget.
// IDs outside [0, MaxPointers) are never stored.
type PointerMask uint32

func validID(id int) bool { return id >= 0 && id < MaxPointers }

// Set adds id to the mask.
func (m *PointerMask) Set(id int) {
	if validID(id) {
		*m |= 1 << uint(id)
	}
}

// Clear removes id from the mask. Clearing an absent id is a no-op.
func (m *PointerMask) Clear(id int) {
	if validID(id) {
		*m &^= 1 << uint(id)
	}
}

// Has reports whether id is in the mask.
func (m PointerMask) Has(id int) bool {
	return validID(id) && m&(1<<uint(id)) != 0
}

func (m PointerMask) Empty() bool { return m == 0 }

func (m PointerMask) Count() int { return bits.OnesCount32(uint32(m)) }

// Track applies one event to the mask:
//
//	Down: captured when inside
//	Move: captured when inside, dropped otherwise (drag-out cancels)
//	Up:   always dropped
func (m *PointerMask) Track(ev PointerEvent, inside bool) {
	switch ev.Kind {
	case Down:
		if inside {
			m.Set(ev.ID)
		}
	case Move:
		if inside {
			m.Set(ev.ID)
		} else {
			m.Clear(ev.ID)
		}
	case Up:
		m.Clear(ev.ID)
	}
}
