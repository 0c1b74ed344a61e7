package uiconfig

import (
	"time"

	"github.com/adaptkit/adaptkit/internal/capability"
	"github.com/adaptkit/adaptkit/internal/model"
)

// PlatformConfig bundles the input-related facts for the renderer
type PlatformConfig struct {
	Family           capability.Family
	Touch            bool
	Hover            bool
	Haptics          bool
	MinTouchTarget   float32
	HoverDelay       time.Duration
	UsedTestDefaults bool
}

// PerformanceConfig bundles rendering budgets per device class
type PerformanceConfig struct {
	MaxVisibleItems   int
	PrefetchRadius    int
	AnimationsEnabled bool
	ImageScale        float32
}

// AccessibilityConfig bundles the assistive facts for the renderer
type AccessibilityConfig struct {
	ScreenReader   bool
	SwitchControl  bool
	AssistiveTouch bool
	ReduceMotion   bool
	MinTouchTarget float32
	HoverDelay     time.Duration
}

// BuildPlatformConfig maps a snapshot to the platform bundle
func BuildPlatformConfig(snap capability.Snapshot) PlatformConfig {
	return PlatformConfig{
		Family:           snap.Family,
		Touch:            snap.Touch,
		Hover:            snap.Hover,
		Haptics:          snap.Haptics,
		MinTouchTarget:   snap.MinTouchTarget,
		HoverDelay:       snap.HoverDelay,
		UsedTestDefaults: snap.UsedTestDefaults,
	}
}

// Per-family rendering budgets. Wearables get the tightest budget,
// desktops the widest.
var performanceBudgets = map[capability.Family]PerformanceConfig{
	capability.FamilyHandheld:   {MaxVisibleItems: 60, PrefetchRadius: 2, AnimationsEnabled: true, ImageScale: 1.0},
	capability.FamilyDesktop:    {MaxVisibleItems: 200, PrefetchRadius: 3, AnimationsEnabled: true, ImageScale: 1.0},
	capability.FamilyLivingRoom: {MaxVisibleItems: 40, PrefetchRadius: 2, AnimationsEnabled: true, ImageScale: 1.0},
	capability.FamilyWearable:   {MaxVisibleItems: 20, PrefetchRadius: 1, AnimationsEnabled: false, ImageScale: 0.75},
	capability.FamilySpatial:    {MaxVisibleItems: 80, PrefetchRadius: 2, AnimationsEnabled: true, ImageScale: 1.0},
	capability.FamilyUnknown:    {MaxVisibleItems: 30, PrefetchRadius: 1, AnimationsEnabled: false, ImageScale: 1.0},
}

// BuildPerformanceConfig maps a snapshot to the performance bundle
func BuildPerformanceConfig(snap capability.Snapshot) PerformanceConfig {
	return performanceBudgets[snap.Family]
}

// BuildAccessibilityConfig maps a snapshot and user preferences to the
// accessibility bundle. Motion is reduced on explicit preference or
// whenever switch control is active.
func BuildAccessibilityConfig(snap capability.Snapshot, prefs model.Preferences) AccessibilityConfig {
	return AccessibilityConfig{
		ScreenReader:   snap.ScreenReader,
		SwitchControl:  snap.SwitchControl,
		AssistiveTouch: snap.AssistiveTouch,
		ReduceMotion:   prefs.ReduceMotion || snap.SwitchControl,
		MinTouchTarget: snap.MinTouchTarget,
		HoverDelay:     snap.HoverDelay,
	}
}
