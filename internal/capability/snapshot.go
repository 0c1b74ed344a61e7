package capability

import "time"

// Derived constant rules
const (
	// AccessibleTouchTarget is the canonical minimum touch target size
	// in Fyne points (iOS/Android accessibility guidelines)
	AccessibleTouchTarget float32 = 44

	// SpatialHoverDwell is the dwell delay before proxy pointing in XR
	// environments commits a hover
	SpatialHoverDwell = 350 * time.Millisecond
)

// Snapshot is an immutable bundle of all resolved capabilities and the
// two derived constants for one resolution pass. Snapshots have value
// semantics and no identity beyond their fields.
type Snapshot struct {
	Family Family

	Touch          bool
	Hover          bool
	Haptics        bool
	ScreenReader   bool
	SwitchControl  bool
	AssistiveTouch bool

	// MinTouchTarget is the minimum hit target size in points. Always
	// AccessibleTouchTarget on touch-first families; elsewhere it is
	// AccessibleTouchTarget only when touch resolved true. Never negative.
	MinTouchTarget float32

	// HoverDelay is the delay before hover commits. Only meaningful when
	// Hover is true; zero is a valid "no delay" and does not mean hover
	// is unsupported.
	HoverDelay time.Duration

	// UsedTestDefaults records whether test-instrumentation defaults
	// were consulted during this resolution
	UsedTestDefaults bool
}

// Get returns the resolved value for a single capability
func (s Snapshot) Get(c Capability) bool {
	switch c {
	case Touch:
		return s.Touch
	case Hover:
		return s.Hover
	case Haptics:
		return s.Haptics
	case ScreenReader:
		return s.ScreenReader
	case SwitchControl:
		return s.SwitchControl
	case AssistiveTouch:
		return s.AssistiveTouch
	}
	return false
}

// minTouchTarget derives the minimum hit target from the final resolved
// touch value and the family only, never from raw overrides or defaults,
// so override and non-override resolution paths agree once touch agrees.
func minTouchTarget(f Family, touch bool) float32 {
	if f.TouchFirst() {
		return AccessibleTouchTarget
	}
	if touch {
		return AccessibleTouchTarget
	}
	return 0
}

// hoverDelay derives the hover commit delay for a family
func hoverDelay(f Family) time.Duration {
	if f == FamilySpatial {
		return SpatialHoverDwell
	}
	return 0
}
