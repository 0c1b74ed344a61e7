package layout

import (
	"github.com/adaptkit/adaptkit/internal/capability"
	"github.com/adaptkit/adaptkit/internal/model"
)

// Card width bands. The minimum card width decides how many columns the
// available width can hold: pointer precision tolerates denser grids,
// finger precision needs room for hit targets.
const (
	// BaseMinCardWidth applies when neither touch nor hover resolved
	BaseMinCardWidth float32 = 128

	// PointerMinCardWidth applies in hover-capable environments
	PointerMinCardWidth float32 = 112

	// TouchMinCardWidth applies in touch-only environments
	TouchMinCardWidth float32 = 140

	// MaxColumns caps grids on very wide surfaces
	MaxColumns = 8
)

// Density spacing and padding scales
const (
	CompactSpacing  float32 = 4
	BalancedSpacing float32 = 8
	SpaciousSpacing float32 = 16

	CompactPadding  float32 = 8
	BalancedPadding float32 = 16
	SpaciousPadding float32 = 24
)

// Decide computes the grid geometry for one presentation request.
// Pure and total: zero available space yields a zero-geometry decision
// (Columns stays 1), any non-zero space yields a positive card size,
// and a zero item count still yields a positive card band so empty
// states reserve consistent space.
func Decide(snap capability.Snapshot, desc model.ContentDescriptor) model.LayoutDecision {
	if !desc.HasSpace() {
		return model.LayoutDecision{Columns: 1}
	}

	spacing, padding := densityMetrics(desc.Preferences.Density.Normalize())

	// Shrink padding on surfaces it would swallow; at least half the
	// width always reaches the content
	if desc.AvailableWidth <= 2*padding {
		padding = desc.AvailableWidth / 4
	}
	usable := desc.AvailableWidth - 2*padding

	minCard := minCardWidth(snap)
	columns := int((usable + spacing) / (minCard + spacing))
	if columns < 1 {
		columns = 1
	}
	if columns > MaxColumns {
		columns = MaxColumns
	}
	// Fewer items than columns: let the cards grow instead of leaving
	// trailing gutters. A zero count keeps the full band.
	if desc.ItemCount > 0 && columns > desc.ItemCount {
		columns = desc.ItemCount
	}

	cardWidth := (usable - float32(columns-1)*spacing) / float32(columns)
	cardHeight := cardWidth * heightRatio(desc.Type, desc.Complexity)

	maxHeight := desc.AvailableHeight - 2*padding
	if maxHeight > 0 && cardHeight > maxHeight {
		cardHeight = maxHeight
	}

	return model.LayoutDecision{
		Columns:    columns,
		Spacing:    spacing,
		Padding:    padding,
		CardWidth:  cardWidth,
		CardHeight: cardHeight,
	}
}

// minCardWidth picks the card band from the resolved capabilities
func minCardWidth(snap capability.Snapshot) float32 {
	switch {
	case snap.Hover:
		return PointerMinCardWidth
	case snap.Touch:
		w := TouchMinCardWidth
		// Never drop below three comfortable touch targets per card
		if floor := 3 * snap.MinTouchTarget; floor > w {
			w = floor
		}
		return w
	}
	return BaseMinCardWidth
}

// densityMetrics maps the density preference to spacing and padding
func densityMetrics(d model.Density) (spacing, padding float32) {
	switch d {
	case model.DensityCompact:
		return CompactSpacing, CompactPadding
	case model.DensitySpacious:
		return SpaciousSpacing, SpaciousPadding
	}
	return BalancedSpacing, BalancedPadding
}

// heightRatio maps content type and complexity to the card aspect
func heightRatio(t model.ContentType, c model.Complexity) float32 {
	base := float32(0.75)
	switch t {
	case model.ContentDocument:
		base = 1.1
	case model.ContentForm:
		base = 1.2
	case model.ContentText:
		base = 0.9
	}

	switch c {
	case model.ComplexitySimple:
		return base * 0.85
	case model.ComplexityRich:
		return base * 1.2
	}
	return base
}
