package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/adaptkit/adaptkit/internal/model"
)

// BuildGrid arranges the given objects according to a layout decision.
// A zero-geometry decision (no available space) yields the empty state
// instead of a degenerate grid; callers are expected to have checked
// the descriptor, this is the safety net.
func BuildGrid(decision model.LayoutDecision, prefs model.Preferences, objects ...fyne.CanvasObject) fyne.CanvasObject {
	if decision.CardWidth <= 0 || decision.CardHeight <= 0 {
		return BuildEmptyState(prefs)
	}
	if len(objects) == 0 {
		return BuildEmptyState(prefs)
	}

	grid := container.NewGridWrap(fyne.NewSize(decision.CardWidth, decision.CardHeight), objects...)
	return container.NewPadded(container.NewVScroll(grid))
}

// BuildEmptyState renders the reserved empty-collection view, honoring
// the user's message override
func BuildEmptyState(prefs model.Preferences) fyne.CanvasObject {
	message := prefs.EmptyStateMessage
	if message == "" {
		message = DefaultEmptyStateText
	}

	label := widget.NewLabel(message)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Italic: true}
	return container.NewCenter(label)
}
