package uiconfig

// Package uiconfig assembles capability snapshots into the named
// configuration bundles the rendering layer consumes. Builders copy the
// snapshot's derived constants verbatim and never recompute them, so
// resolver and consumers cannot drift apart.
