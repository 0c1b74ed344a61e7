package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconCamera  = "📷"
	IconLibrary = "🖼"
	IconFolder  = "📁"
)

// Text fragments
const (
	MiddleDotSeparator    = " · "
	DefaultEmptyStateText = "Nothing to show yet"
	CaptureButtonLabel    = "Capture"
	LibraryButtonLabel    = "Choose from library"
)

// Window sizing for the gallery demo
const (
	DefaultWindowWidth  float32 = 900
	DefaultWindowHeight float32 = 640
)

// Gesture thresholds
const (
	SwipeThreshold    float32 = 50.0
	LongPressDuration         = 500 * time.Millisecond
)
