package ebitenui

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Alia5/vtouch/gamepad"
)

// Haptics vibrates the device through ebiten. Platforms without a
// vibrator ignore it.
type Haptics struct {
	KeyPulse  time.Duration
	Rumble    time.Duration
	Magnitude float64
}

func DefaultHaptics() Haptics {
	return Haptics{KeyPulse: 20 * time.Millisecond, Rumble: 150 * time.Millisecond, Magnitude: 0.8}
}

func (h Haptics) Vibrate(kind gamepad.HapticKind) {
	d := h.KeyPulse
	if kind == gamepad.HapticRumble {
		d = h.Rumble
	}
	if d <= 0 {
		return
	}
	ebiten.Vibrate(&ebiten.VibrateOptions{Duration: d, Magnitude: h.Magnitude})
}
