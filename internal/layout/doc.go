package layout

// Package layout implements the tier-2 layout decision engine: a pure
// function from a capability snapshot and a content descriptor to grid
// geometry. It has no rendering responsibility and never fails; zero
// geometry in yields zero geometry out.
