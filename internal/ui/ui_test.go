package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"

	"github.com/adaptkit/adaptkit/internal/capability"
	"github.com/adaptkit/adaptkit/internal/config"
	"github.com/adaptkit/adaptkit/internal/model"
)

func snapshotFor(t *testing.T, family capability.Family) capability.Snapshot {
	t.Helper()
	return capability.NewResolver(family, nil).
		WithOverrides(capability.NewOverrideStore()).
		WithTestMode(true).
		Resolve()
}

func TestAdaptiveTheme_TouchGetsRoomierPadding(t *testing.T) {
	handheld := NewAdaptiveTheme(snapshotFor(t, capability.FamilyHandheld), model.DensityBalanced)
	desktop := NewAdaptiveTheme(snapshotFor(t, capability.FamilyDesktop), model.DensityBalanced)

	if handheld.Size(theme.SizeNamePadding) <= desktop.Size(theme.SizeNamePadding) {
		t.Error("touch theme should pad more than pointer theme")
	}
	if handheld.Size(theme.SizeNameScrollBar) <= desktop.Size(theme.SizeNameScrollBar) {
		t.Error("touch theme should widen the scroll bar")
	}
}

func TestAdaptiveTheme_DensityScalesPadding(t *testing.T) {
	snap := snapshotFor(t, capability.FamilyDesktop)

	compact := NewAdaptiveTheme(snap, model.DensityCompact)
	spacious := NewAdaptiveTheme(snap, model.DensitySpacious)

	if compact.Size(theme.SizeNamePadding) >= spacious.Size(theme.SizeNamePadding) {
		t.Error("compact padding should be below spacious padding")
	}
}

func TestBuildEmptyState_MessageOverride(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	state := BuildEmptyState(model.Preferences{})
	if state == nil {
		t.Fatal("empty state should always render")
	}

	custom := BuildEmptyState(model.Preferences{EmptyStateMessage: "No captures yet"})
	if custom == nil {
		t.Fatal("empty state with override should render")
	}
}

func TestBuildGrid_ZeroGeometryFallsBackToEmptyState(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	item := model.NewContentItem("Sample", model.ContentMedia)
	card := NewContentCard(item, model.StrategyDecision{}, 0, nil, nil)

	grid := BuildGrid(model.LayoutDecision{Columns: 1}, model.Preferences{}, card)
	if grid == nil {
		t.Fatal("zero geometry should still render an object")
	}
}

func TestBuildGrid_WithDecision(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	decision := model.LayoutDecision{Columns: 3, Spacing: 8, Padding: 16, CardWidth: 140, CardHeight: 105}

	cards := make([]fyne.CanvasObject, 0, 6)
	for i := 0; i < 6; i++ {
		item := model.NewContentItem("Item", model.ContentMedia)
		cards = append(cards, NewContentCard(item, model.StrategyDecision{}, 0, nil, nil))
	}

	if BuildGrid(decision, model.Preferences{}, cards...) == nil {
		t.Fatal("grid should render for a populated decision")
	}
}

func TestGestureHandler_TapAndSwipe(t *testing.T) {
	var got []GestureType
	handler := NewGestureHandler(model.StrategyDecision{}, func(g GestureType) {
		got = append(got, g)
	})

	// Quick tap
	handler.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)}})
	handler.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(12, 11)}})

	// Horizontal swipe
	handler.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)}})
	handler.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(120, 12)}})

	if len(got) != 2 {
		t.Fatalf("expected 2 gestures, got %d", len(got))
	}
	if got[0] != GestureTap {
		t.Errorf("first gesture = %v, expected tap", got[0])
	}
	if got[1] != GestureSwipeRight {
		t.Errorf("second gesture = %v, expected swipe right", got[1])
	}
}

func TestGestureHandler_LongPressRequiresStrategy(t *testing.T) {
	longPress := func(handler *GestureHandler) {
		handler.TouchDown(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(10, 10)}})
		handler.touchStartTime = time.Now().Add(-2 * LongPressDuration)
		handler.TouchUp(&mobile.TouchEvent{PointEvent: fyne.PointEvent{Position: fyne.NewPos(11, 10)}})
	}

	// Without long-press in the supported set, a held touch degrades to tap
	var got GestureType
	handler := NewGestureHandler(model.StrategyDecision{}, func(g GestureType) { got = g })
	longPress(handler)
	if got != GestureTap {
		t.Errorf("gesture = %v, expected tap without long-press support", got)
	}

	// With the strategy supported, the long press fires
	supported := model.StrategyDecision{
		SupportedExpansions: []model.ExpansionStrategy{model.ExpansionLongPress, model.ExpansionInline},
	}
	handler = NewGestureHandler(supported, func(g GestureType) { got = g })
	longPress(handler)
	if got != GestureLongPress {
		t.Errorf("gesture = %v, expected long press", got)
	}
}

func TestContentCard_HoverExpansionHonorsDelay(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	hover := model.StrategyDecision{Expansion: model.ExpansionHover}

	// Zero delay expands immediately
	expanded := 0
	card := NewContentCard(model.NewContentItem("A", model.ContentMedia), hover, 0, nil,
		func(*model.ContentItem) { expanded++ })
	card.MouseIn(&desktop.MouseEvent{})
	if expanded != 1 {
		t.Fatalf("zero-delay hover should expand immediately, got %d expansions", expanded)
	}

	// A dwell delay defers expansion until it elapses
	fired := make(chan struct{}, 1)
	card = NewContentCard(model.NewContentItem("B", model.ContentMedia), hover, 20*time.Millisecond, nil,
		func(*model.ContentItem) { fired <- struct{}{} })
	card.MouseIn(&desktop.MouseEvent{})
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("hover expansion should fire after the dwell delay")
	}

	// Leaving before the delay elapses disarms the expansion
	card = NewContentCard(model.NewContentItem("C", model.ContentMedia), hover, 50*time.Millisecond, nil,
		func(*model.ContentItem) { fired <- struct{}{} })
	card.MouseIn(&desktop.MouseEvent{})
	card.MouseOut()
	select {
	case <-fired:
		t.Fatal("mouse out should cancel a pending hover expansion")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestRootUI_CaptureFlowAppendsAndReturnsToBrowse(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	config.NewSettings(app).SetCaptureDirectory(t.TempDir())

	window := app.NewWindow("gallery")
	window.Resize(fyne.NewSize(800, 600))

	ui := NewRootUI(window, app, nil)
	before := len(ui.items)
	ui.purpose = model.PurposeCapture
	ui.onCapture()

	if len(ui.items) != before+1 {
		t.Fatalf("capture should append one item, went %d -> %d", before, len(ui.items))
	}
	if ui.purpose != model.PurposeBrowse {
		t.Errorf("capture should return to browse, got %s", ui.purpose)
	}
}

func TestNewRootUI(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	window := app.NewWindow("gallery")
	window.Resize(fyne.NewSize(800, 600))

	ui := NewRootUI(window, app, nil)
	if ui == nil {
		t.Fatal("root UI should mount")
	}
	if window.Content() == nil {
		t.Fatal("root UI should set window content")
	}
}
