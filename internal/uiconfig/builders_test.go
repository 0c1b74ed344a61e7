package uiconfig

import (
	"testing"

	"github.com/adaptkit/adaptkit/internal/capability"
	"github.com/adaptkit/adaptkit/internal/model"
)

func snapshotFor(t *testing.T, family capability.Family) capability.Snapshot {
	t.Helper()
	return capability.NewResolver(family, nil).
		WithOverrides(capability.NewOverrideStore()).
		WithTestMode(true).
		Resolve()
}

func TestBuildPlatformConfig_MirrorsSnapshot(t *testing.T) {
	for _, family := range capability.Families() {
		snap := snapshotFor(t, family)
		cfg := BuildPlatformConfig(snap)

		if cfg.Family != snap.Family {
			t.Errorf("%s: family mismatch", family)
		}
		if cfg.Touch != snap.Touch || cfg.Hover != snap.Hover || cfg.Haptics != snap.Haptics {
			t.Errorf("%s: capability fields diverge from snapshot", family)
		}
		// Derived constants must be copied verbatim, never recomputed
		if cfg.MinTouchTarget != snap.MinTouchTarget {
			t.Errorf("%s: min touch target %g != snapshot %g", family, cfg.MinTouchTarget, snap.MinTouchTarget)
		}
		if cfg.HoverDelay != snap.HoverDelay {
			t.Errorf("%s: hover delay %v != snapshot %v", family, cfg.HoverDelay, snap.HoverDelay)
		}
		if cfg.UsedTestDefaults != snap.UsedTestDefaults {
			t.Errorf("%s: test defaults flag diverges", family)
		}
	}
}

func TestBuildPerformanceConfig_TotalAndPopulated(t *testing.T) {
	for _, family := range capability.Families() {
		cfg := BuildPerformanceConfig(snapshotFor(t, family))

		if cfg.MaxVisibleItems <= 0 {
			t.Errorf("%s: max visible items = %d, expected > 0", family, cfg.MaxVisibleItems)
		}
		if cfg.PrefetchRadius <= 0 {
			t.Errorf("%s: prefetch radius = %d, expected > 0", family, cfg.PrefetchRadius)
		}
		if cfg.ImageScale <= 0 {
			t.Errorf("%s: image scale = %g, expected > 0", family, cfg.ImageScale)
		}
	}
}

func TestBuildPerformanceConfig_WearableTightestBudget(t *testing.T) {
	wearable := BuildPerformanceConfig(snapshotFor(t, capability.FamilyWearable))
	desktop := BuildPerformanceConfig(snapshotFor(t, capability.FamilyDesktop))

	if wearable.MaxVisibleItems >= desktop.MaxVisibleItems {
		t.Errorf("wearable budget %d should be below desktop %d",
			wearable.MaxVisibleItems, desktop.MaxVisibleItems)
	}
	if wearable.AnimationsEnabled {
		t.Error("wearable should disable animations")
	}
}

func TestBuildAccessibilityConfig_CopiesConstants(t *testing.T) {
	for _, family := range capability.Families() {
		snap := snapshotFor(t, family)
		cfg := BuildAccessibilityConfig(snap, model.Preferences{})

		if cfg.MinTouchTarget != snap.MinTouchTarget {
			t.Errorf("%s: min touch target diverges from snapshot", family)
		}
		if cfg.HoverDelay != snap.HoverDelay {
			t.Errorf("%s: hover delay diverges from snapshot", family)
		}
		if cfg.ScreenReader != snap.ScreenReader || cfg.SwitchControl != snap.SwitchControl ||
			cfg.AssistiveTouch != snap.AssistiveTouch {
			t.Errorf("%s: assistive fields diverge from snapshot", family)
		}
	}
}

func TestBuildAccessibilityConfig_ReduceMotion(t *testing.T) {
	snap := snapshotFor(t, capability.FamilyHandheld)

	if BuildAccessibilityConfig(snap, model.Preferences{}).ReduceMotion {
		t.Error("reduce motion should default to false")
	}
	if !BuildAccessibilityConfig(snap, model.Preferences{ReduceMotion: true}).ReduceMotion {
		t.Error("explicit preference should reduce motion")
	}

	snap.SwitchControl = true
	if !BuildAccessibilityConfig(snap, model.Preferences{}).ReduceMotion {
		t.Error("switch control should reduce motion")
	}
}
