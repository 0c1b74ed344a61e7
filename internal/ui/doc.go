package ui

// Package ui is the Fyne rendering layer that consumes the engine's
// decisions. It builds adaptive grids from layout decisions, wires
// gestures according to the selected strategies, and derives a theme
// from the capability snapshot. It never recomputes what the engine
// already decided.
