// Package layout places the on-screen controls. Positions come from a
// persisted Config; fields left at Unset are filled with defaults derived
// from the screen size and button scale, then written back so later
// sessions reuse (and users can adjust) the same coordinates.
package layout

// Unset marks a persisted field that has not been computed yet.
const Unset = -1

// Config is the persisted overlay configuration.
type Config struct {
	ButtonScale       float64 `json:"buttonScale" yaml:"buttonScale" toml:"buttonScale"`
	ButtonOpacity     int     `json:"buttonOpacity" yaml:"buttonOpacity" toml:"buttonOpacity"` // percent
	HapticFeedback    bool    `json:"hapticFeedback" yaml:"hapticFeedback" toml:"hapticFeedback"`
	ShowTouchControls bool    `json:"showTouchControls" yaml:"showTouchControls" toml:"showTouchControls"`
	ShowAnalogStick   bool    `json:"showAnalogStick" yaml:"showAnalogStick" toml:"showAnalogStick"`
	ShowPauseButton   bool    `json:"showPauseButton" yaml:"showPauseButton" toml:"showPauseButton"`

	ActionButtonSpacing int `json:"actionButtonSpacing" yaml:"actionButtonSpacing" toml:"actionButtonSpacing"`
	ActionButtonCenterX int `json:"actionButtonCenterX" yaml:"actionButtonCenterX" toml:"actionButtonCenterX"`
	ActionButtonCenterY int `json:"actionButtonCenterY" yaml:"actionButtonCenterY" toml:"actionButtonCenterY"`

	DpadRadius int `json:"dpadRadius" yaml:"dpadRadius" toml:"dpadRadius"`
	DpadX      int `json:"dpadX" yaml:"dpadX" toml:"dpadX"`
	DpadY      int `json:"dpadY" yaml:"dpadY" toml:"dpadY"`

	AnalogStickX int `json:"analogStickX" yaml:"analogStickX" toml:"analogStickX"`
	AnalogStickY int `json:"analogStickY" yaml:"analogStickY" toml:"analogStickY"`

	StartKeyX      int `json:"startKeyX" yaml:"startKeyX" toml:"startKeyX"`
	StartKeyY      int `json:"startKeyY" yaml:"startKeyY" toml:"startKeyY"`
	SelectKeyX     int `json:"selectKeyX" yaml:"selectKeyX" toml:"selectKeyX"`
	SelectKeyY     int `json:"selectKeyY" yaml:"selectKeyY" toml:"selectKeyY"`
	UnthrottleKeyX int `json:"unthrottleKeyX" yaml:"unthrottleKeyX" toml:"unthrottleKeyX"`
	UnthrottleKeyY int `json:"unthrottleKeyY" yaml:"unthrottleKeyY" toml:"unthrottleKeyY"`

	LKeyX int `json:"lKeyX" yaml:"lKeyX" toml:"lKeyX"`
	LKeyY int `json:"lKeyY" yaml:"lKeyY" toml:"lKeyY"`
	RKeyX int `json:"rKeyX" yaml:"rKeyX" toml:"rKeyX"`
	RKeyY int `json:"rKeyY" yaml:"rKeyY" toml:"rKeyY"`
}

// DefaultConfig returns a configuration with every coordinate Unset.
func DefaultConfig() Config {
	return Config{
		ButtonScale:       1.15,
		ButtonOpacity:     65,
		HapticFeedback:    false,
		ShowTouchControls: true,
		ShowAnalogStick:   true,
		ShowPauseButton:   false,

		ActionButtonSpacing: Unset,
		ActionButtonCenterX: Unset,
		ActionButtonCenterY: Unset,
		DpadRadius:          Unset,
		DpadX:               Unset,
		DpadY:               Unset,
		AnalogStickX:        Unset,
		AnalogStickY:        Unset,
		StartKeyX:           Unset,
		StartKeyY:           Unset,
		SelectKeyX:          Unset,
		SelectKeyY:          Unset,
		UnthrottleKeyX:      Unset,
		UnthrottleKeyY:      Unset,
		LKeyX:               Unset,
		LKeyY:               Unset,
		RKeyX:               Unset,
		RKeyY:               Unset,
	}
}

// Opacity returns ButtonOpacity as a fraction.
func (c Config) Opacity() float64 {
	return float64(c.ButtonOpacity) / 100
}
