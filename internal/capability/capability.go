package capability

// Capability identifies one boolean fact about the current execution
// environment's input/output abilities
type Capability string

const (
	// Touch means direct finger input on the display
	Touch Capability = "touch"

	// Hover means a pointing device (or proxy pointer) can rest over an
	// element without activating it
	Hover Capability = "hover"

	// Haptics means the device can play tactile feedback
	Haptics Capability = "haptics"

	// ScreenReader means a system screen reader is active
	ScreenReader Capability = "screen_reader"

	// SwitchControl means switch-based assistive navigation is active
	SwitchControl Capability = "switch_control"

	// AssistiveTouch means an on-screen assistive touch aid is active
	AssistiveTouch Capability = "assistive_touch"
)

// All returns every capability in declaration order
func All() []Capability {
	return []Capability{Touch, Hover, Haptics, ScreenReader, SwitchControl, AssistiveTouch}
}

// String returns the string representation of the capability
func (c Capability) String() string {
	return string(c)
}

// Overridable returns true if the capability accepts explicit overrides.
// Touch, hover, and haptics can be forced by callers; the assistive
// capabilities are treated as stable OS-level settings and only resolve
// through testing defaults or live probing.
func (c Capability) Overridable() bool {
	return c == Touch || c == Hover || c == Haptics
}
