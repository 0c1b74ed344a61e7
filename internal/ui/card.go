package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/adaptkit/adaptkit/internal/model"
)

// ContentCard renders one content item and routes activation through
// the selected interaction strategy. Tap activates; long press expands
// when the strategy set allows it; pointer hover expands after the
// resolved hover delay elapses, and leaving early disarms it.
type ContentCard struct {
	widget.BaseWidget

	item       *model.ContentItem
	strategies model.StrategyDecision
	hoverDelay time.Duration
	onActivate func(*model.ContentItem)
	onExpand   func(*model.ContentItem)

	gestures   *GestureHandler
	hoverTimer *time.Timer
}

// NewContentCard creates a card for an item under the selected strategies
func NewContentCard(item *model.ContentItem, strategies model.StrategyDecision,
	hoverDelay time.Duration, onActivate, onExpand func(*model.ContentItem)) *ContentCard {

	card := &ContentCard{
		item:       item,
		strategies: strategies,
		hoverDelay: hoverDelay,
		onActivate: onActivate,
		onExpand:   onExpand,
	}
	card.gestures = NewGestureHandler(strategies, card.handleGesture)
	card.ExtendBaseWidget(card)
	return card
}

// CreateRenderer builds the card's visual tree
func (c *ContentCard) CreateRenderer() fyne.WidgetRenderer {
	title := c.item.Title
	if title == "" {
		title = string(c.item.Type)
	}
	inner := widget.NewCard(title, c.item.Subtitle, nil)
	return widget.NewSimpleRenderer(inner)
}

// Tapped activates the card
func (c *ContentCard) Tapped(_ *fyne.PointEvent) {
	if c.onActivate != nil {
		c.onActivate(c.item)
	}
}

// TappedSecondary expands on right-click in pointer environments
func (c *ContentCard) TappedSecondary(_ *fyne.PointEvent) {
	c.expand()
}

// MouseIn arms hover expansion when the hover strategy is selected
func (c *ContentCard) MouseIn(_ *desktop.MouseEvent) {
	if c.strategies.Expansion != model.ExpansionHover {
		return
	}
	if c.hoverDelay <= 0 {
		c.expand()
		return
	}
	c.hoverTimer = time.AfterFunc(c.hoverDelay, func() {
		fyne.Do(c.expand)
	})
}

// MouseMoved is part of desktop.Hoverable
func (c *ContentCard) MouseMoved(_ *desktop.MouseEvent) {}

// MouseOut disarms a pending hover expansion
func (c *ContentCard) MouseOut() {
	if c.hoverTimer != nil {
		c.hoverTimer.Stop()
		c.hoverTimer = nil
	}
}

// TouchDown feeds gesture detection
func (c *ContentCard) TouchDown(event *mobile.TouchEvent) {
	c.gestures.TouchDown(event)
}

// TouchUp feeds gesture detection
func (c *ContentCard) TouchUp(event *mobile.TouchEvent) {
	c.gestures.TouchUp(event)
}

// TouchCancel feeds gesture detection
func (c *ContentCard) TouchCancel(event *mobile.TouchEvent) {
	c.gestures.TouchCancel(event)
}

// handleGesture routes detected gestures to the card callbacks
func (c *ContentCard) handleGesture(g GestureType) {
	switch g {
	case GestureLongPress:
		c.expand()
	case GestureTap:
		// Tapped already fires through the standard event path
	}
}

func (c *ContentCard) expand() {
	if c.onExpand != nil {
		c.onExpand(c.item)
	}
}
