package pad

import "strings"

// Button is a bit in the emulated controller's button register.
type Button uint32

const (
	ButtonSelect   Button = 0x00000001
	ButtonStart    Button = 0x00000008
	ButtonUp       Button = 0x00000010
	ButtonRight    Button = 0x00000020
	ButtonDown     Button = 0x00000040
	ButtonLeft     Button = 0x00000080
	ButtonLTrigger Button = 0x00000100
	ButtonRTrigger Button = 0x00000200
	ButtonTriangle Button = 0x00001000
	ButtonCircle   Button = 0x00002000
	ButtonCross    Button = 0x00004000
	ButtonSquare   Button = 0x00008000
)

var buttonNames = []struct {
	b    Button
	name string
}{
	{ButtonSelect, "select"},
	{ButtonStart, "start"},
	{ButtonUp, "up"},
	{ButtonRight, "right"},
	{ButtonDown, "down"},
	{ButtonLeft, "left"},
	{ButtonLTrigger, "l"},
	{ButtonRTrigger, "r"},
	{ButtonTriangle, "triangle"},
	{ButtonCircle, "circle"},
	{ButtonCross, "cross"},
	{ButtonSquare, "square"},
}

// String lists the set bits joined by "+", or "none".
func (b Button) String() string {
	if b == 0 {
		return "none"
	}
	var parts []string
	for _, n := range buttonNames {
		if b&n.b != 0 {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "unknown"
	}
	return strings.Join(parts, "+")
}

// Stick identifies an analog stick.
type Stick int

const (
	StickLeft Stick = iota
	StickRight

	numSticks
)

// InputStateSize is the wire size of InputState.
const InputStateSize = 20
