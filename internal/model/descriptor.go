package model

// Purpose is the semantic intent of a content-presentation request
type Purpose string

const (
	// PurposeCapture means acquiring new content (camera, picker)
	PurposeCapture Purpose = "capture"

	// PurposeSelection means choosing among existing items
	PurposeSelection Purpose = "selection"

	// PurposeDisplay means presenting one or few items read-only
	PurposeDisplay Purpose = "display"

	// PurposeBrowse means scanning a larger collection
	PurposeBrowse Purpose = "browse"
)

// Purposes returns every purpose in declaration order
func Purposes() []Purpose {
	return []Purpose{PurposeCapture, PurposeSelection, PurposeDisplay, PurposeBrowse}
}

// Density is the caller's spacing preference
type Density string

const (
	DensityCompact  Density = "compact"
	DensityBalanced Density = "balanced"
	DensitySpacious Density = "spacious"
)

// Normalize maps unrecognized density values to the balanced default
func (d Density) Normalize() Density {
	switch d {
	case DensityCompact, DensityBalanced, DensitySpacious:
		return d
	}
	return DensityBalanced
}

// Complexity is the visual complexity tier of the content
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityStandard Complexity = "standard"
	ComplexityRich     Complexity = "rich"
)

// ContentType categorizes what is being presented
type ContentType string

const (
	ContentMedia    ContentType = "media"
	ContentDocument ContentType = "document"
	ContentForm     ContentType = "form"
	ContentText     ContentType = "text"
)

// Preferences carries free-form user preferences that bias decisions
type Preferences struct {
	Density         Density
	ReduceMotion    bool
	HapticsDisabled bool

	// EmptyStateMessage overrides the default empty-state text when set
	EmptyStateMessage string
}

// ContentDescriptor is the caller-supplied metadata for one presentation
// request. Created per call site, never persisted. Every field has a
// usable zero/default via NewContentDescriptor.
type ContentDescriptor struct {
	Type    ContentType
	Purpose Purpose

	ItemCount int

	AvailableWidth  float32
	AvailableHeight float32

	Complexity  Complexity
	Preferences Preferences
}

// NewContentDescriptor returns a descriptor with defaults for every field
func NewContentDescriptor() ContentDescriptor {
	return ContentDescriptor{
		Type:       ContentMedia,
		Purpose:    PurposeBrowse,
		Complexity: ComplexityStandard,
		Preferences: Preferences{
			Density: DensityBalanced,
		},
	}
}

// HasSpace returns true when the descriptor carries non-zero geometry
func (d ContentDescriptor) HasSpace() bool {
	return d.AvailableWidth > 0 && d.AvailableHeight > 0
}
