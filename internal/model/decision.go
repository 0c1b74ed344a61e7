package model

// LayoutDecision is the concrete grid geometry for one presentation.
// Columns is always at least 1; spacing and padding are never negative;
// card dimensions are positive whenever the descriptor carried space.
type LayoutDecision struct {
	Columns    int
	Spacing    float32
	Padding    float32
	CardWidth  float32
	CardHeight float32
}

// InteractionStrategy selects how items are activated
type InteractionStrategy string

const (
	// InteractionTap activates by direct touch
	InteractionTap InteractionStrategy = "tap"

	// InteractionPointer activates by pointer click with hover affordances
	InteractionPointer InteractionStrategy = "pointer"

	// InteractionFocus activates by directional focus and a select button
	InteractionFocus InteractionStrategy = "focus"

	// InteractionBasic is the universal keyboard/activate fallback,
	// always supported
	InteractionBasic InteractionStrategy = "basic"
)

// ExpansionStrategy selects how items reveal detail
type ExpansionStrategy string

const (
	// ExpansionHover reveals detail while the pointer rests on an item
	ExpansionHover ExpansionStrategy = "hover"

	// ExpansionLongPress reveals detail on a held touch, with haptic cue
	ExpansionLongPress ExpansionStrategy = "long_press"

	// ExpansionTap reveals detail on a second tap
	ExpansionTap ExpansionStrategy = "tap"

	// ExpansionFocus reveals detail when an item holds focus
	ExpansionFocus ExpansionStrategy = "focus"

	// ExpansionInline shows detail inline without interaction,
	// always supported
	ExpansionInline ExpansionStrategy = "inline"
)

// CaptureStrategy selects how new content is acquired
type CaptureStrategy string

const (
	// CaptureCamera opens the on-device camera first
	CaptureCamera CaptureStrategy = "camera"

	// CaptureLibrary opens a library or file picker
	CaptureLibrary CaptureStrategy = "library"

	// CaptureNone means the purpose does not acquire content
	CaptureNone CaptureStrategy = "none"
)

// DisplayStrategy selects the overall arrangement of items
type DisplayStrategy string

const (
	DisplayGrid     DisplayStrategy = "grid"
	DisplayList     DisplayStrategy = "list"
	DisplayCarousel DisplayStrategy = "carousel"
	DisplaySingle   DisplayStrategy = "single"
)

// StrategyDecision is the full set of enumerated selections for one
// presentation request. The primary Interaction and Expansion are always
// members of their supported sets, which are never empty.
type StrategyDecision struct {
	Interaction InteractionStrategy
	Expansion   ExpansionStrategy
	Capture     CaptureStrategy
	Display     DisplayStrategy

	SupportedInteractions []InteractionStrategy
	SupportedExpansions   []ExpansionStrategy

	// HapticConfirm asks the renderer to play tactile feedback on
	// commit actions; only set when haptics resolved true and the user
	// has not opted out
	HapticConfirm bool
}

// SupportsInteraction reports membership in the supported interaction set
func (d StrategyDecision) SupportsInteraction(s InteractionStrategy) bool {
	for _, v := range d.SupportedInteractions {
		if v == s {
			return true
		}
	}
	return false
}

// SupportsExpansion reports membership in the supported expansion set
func (d StrategyDecision) SupportsExpansion(s ExpansionStrategy) bool {
	for _, v := range d.SupportedExpansions {
		if v == s {
			return true
		}
	}
	return false
}
