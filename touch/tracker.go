package touch

// MousePointer is the pointer id reserved for the mouse. Touch contacts
// get ids 1 through MaxPointers-1.
const MousePointer = 0

// Contact is one platform touch point. Key is the platform's identifier,
// which may be any integer and is never reused while the contact lives.
type Contact struct {
	Key  int
	X, Y float64
}

// Tracker turns per-frame contact snapshots into PointerEvents, giving each
// contact a small stable pointer id for as long as it stays down.
type Tracker struct {
	used [MaxPointers]bool
	keys [MaxPointers]int
	pos  [MaxPointers][2]float64
}

func (t *Tracker) emit(out []PointerEvent, id int, kind Kind, x, y float64) []PointerEvent {
	t.pos[id] = [2]float64{x, y}
	return append(out, PointerEvent{ID: id, Kind: kind, X: x, Y: y})
}

// Mouse feeds the mouse state for this frame and appends any resulting events.
func (t *Tracker) Mouse(pressed bool, x, y float64, out []PointerEvent) []PointerEvent {
	const id = MousePointer
	switch {
	case pressed && !t.used[id]:
		t.used[id] = true
		return t.emit(out, id, Down, x, y)
	case pressed && t.pos[id] != [2]float64{x, y}:
		return t.emit(out, id, Move, x, y)
	case !pressed && t.used[id]:
		t.used[id] = false
		return append(out, PointerEvent{ID: id, Kind: Up, X: t.pos[id][0], Y: t.pos[id][1]})
	}
	return out
}

func (t *Tracker) slot(key int) int {
	for i := 1; i < MaxPointers; i++ {
		if t.used[i] && t.keys[i] == key {
			return i
		}
	}
	return -1
}

// Update feeds the touch contacts present this frame and appends the events
// they imply: Up for contacts that vanished (at their last position), then
// Down for new contacts and Move for contacts that moved. Contacts beyond
// the available ids are dropped until one frees up.
func (t *Tracker) Update(contacts []Contact, out []PointerEvent) []PointerEvent {
	var alive [MaxPointers]bool
	for _, c := range contacts {
		if i := t.slot(c.Key); i >= 0 {
			alive[i] = true
		}
	}
	for i := 1; i < MaxPointers; i++ {
		if t.used[i] && !alive[i] {
			t.used[i] = false
			out = append(out, PointerEvent{ID: i, Kind: Up, X: t.pos[i][0], Y: t.pos[i][1]})
		}
	}

	for _, c := range contacts {
		if i := t.slot(c.Key); i >= 0 {
			if t.pos[i] != [2]float64{c.X, c.Y} {
				out = t.emit(out, i, Move, c.X, c.Y)
			}
			continue
		}
		for i := 1; i < MaxPointers; i++ {
			if !t.used[i] {
				t.used[i] = true
				t.keys[i] = c.Key
				out = t.emit(out, i, Down, c.X, c.Y)
				break
			}
		}
	}
	return out
}

// Active reports how many pointers are currently down.
func (t *Tracker) Active() int {
	n := 0
	for _, u := range t.used {
		if u {
			n++
		}
	}
	return n
}

// Reset forgets every pointer and appends an Up for each one that was down.
func (t *Tracker) Reset(out []PointerEvent) []PointerEvent {
	for i := range t.used {
		if t.used[i] {
			t.used[i] = false
			out = append(out, PointerEvent{ID: i, Kind: Up, X: t.pos[i][0], Y: t.pos[i][1]})
		}
	}
	return out
}
