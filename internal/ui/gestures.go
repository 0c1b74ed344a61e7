package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/mobile"

	"github.com/adaptkit/adaptkit/internal/model"
)

// GestureType represents different types of gestures
type GestureType int

const (
	GestureTap GestureType = iota
	GestureSwipeLeft
	GestureSwipeRight
	GestureSwipeUp
	GestureSwipeDown
	GestureLongPress
)

// GestureHandler turns raw touch events into gestures, honoring the
// selected strategies: long-press detection only runs when the strategy
// decision supports long-press expansion.
type GestureHandler struct {
	strategies model.StrategyDecision
	onGesture  func(GestureType)

	// Touch tracking
	touchStartTime time.Time
	touchStartPos  fyne.Position
}

// NewGestureHandler creates a gesture handler for the selected strategies
func NewGestureHandler(strategies model.StrategyDecision, onGesture func(GestureType)) *GestureHandler {
	return &GestureHandler{
		strategies: strategies,
		onGesture:  onGesture,
	}
}

// TouchDown handles touch down events for gesture detection
func (gh *GestureHandler) TouchDown(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Now()
	gh.touchStartPos = event.Position
}

// TouchUp handles touch up events for gesture detection
func (gh *GestureHandler) TouchUp(event *mobile.TouchEvent) {
	if gh.touchStartTime.IsZero() {
		return
	}
	duration := time.Since(gh.touchStartTime)

	dx := event.Position.X - gh.touchStartPos.X
	dy := event.Position.Y - gh.touchStartPos.Y
	distance := dx*dx + dy*dy
	threshold := SwipeThreshold * SwipeThreshold

	switch {
	case duration >= LongPressDuration && distance < threshold:
		if gh.strategies.SupportsExpansion(model.ExpansionLongPress) {
			gh.trigger(GestureLongPress)
		} else {
			gh.trigger(GestureTap)
		}
	case distance >= threshold:
		gh.triggerSwipe(dx, dy)
	default:
		gh.trigger(GestureTap)
	}
	gh.touchStartTime = time.Time{}
}

// TouchCancel handles touch cancel events
func (gh *GestureHandler) TouchCancel(event *mobile.TouchEvent) {
	gh.touchStartTime = time.Time{}
}

// triggerSwipe picks the dominant axis and direction
func (gh *GestureHandler) triggerSwipe(dx, dy float32) {
	absDx, absDy := dx, dy
	if absDx < 0 {
		absDx = -absDx
	}
	if absDy < 0 {
		absDy = -absDy
	}

	if absDx > absDy {
		if dx > 0 {
			gh.trigger(GestureSwipeRight)
		} else {
			gh.trigger(GestureSwipeLeft)
		}
		return
	}
	if dy > 0 {
		gh.trigger(GestureSwipeDown)
	} else {
		gh.trigger(GestureSwipeUp)
	}
}

func (gh *GestureHandler) trigger(gesture GestureType) {
	if gh.onGesture != nil {
		gh.onGesture(gesture)
	}
}
