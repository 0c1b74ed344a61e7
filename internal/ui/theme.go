package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/adaptkit/adaptkit/internal/capability"
	"github.com/adaptkit/adaptkit/internal/model"
)

// AdaptiveTheme derives padding and text sizing from a capability
// snapshot and the density preference: touch environments get roomier
// paddings, compact density tightens everything.
type AdaptiveTheme struct {
	snapshot capability.Snapshot
	density  model.Density
}

// NewAdaptiveTheme creates a theme for the resolved capabilities
func NewAdaptiveTheme(snapshot capability.Snapshot, density model.Density) fyne.Theme {
	return &AdaptiveTheme{snapshot: snapshot, density: density.Normalize()}
}

// Color returns theme colors
func (t *AdaptiveTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary:
		return color.RGBA{R: 25, G: 118, B: 210, A: 255} // Blue for primary actions
	case theme.ColorNameSuccess:
		return color.RGBA{R: 46, G: 160, B: 67, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 183, G: 28, B: 28, A: 255}
	}
	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *AdaptiveTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *AdaptiveTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes adjusted for capabilities and density
func (t *AdaptiveTheme) Size(name fyne.ThemeSizeName) float32 {
	base := theme.DefaultTheme().Size(name)

	switch name {
	case theme.SizeNamePadding, theme.SizeNameInnerPadding, theme.SizeNameLineSpacing:
		return base * t.spacingScale()
	case theme.SizeNameText:
		if t.density == model.DensityCompact {
			return base - 1
		}
		return base
	case theme.SizeNameScrollBar:
		if t.snapshot.Touch {
			return base + 4 // Wider grab area for fingers
		}
		return base
	}
	return base
}

// spacingScale maps density and touch to a padding multiplier
func (t *AdaptiveTheme) spacingScale() float32 {
	scale := float32(1.0)
	switch t.density {
	case model.DensityCompact:
		scale = 0.75
	case model.DensitySpacious:
		scale = 1.5
	}
	if t.snapshot.Touch && !t.snapshot.Hover {
		scale *= 1.25
	}
	return scale
}
