package model

// Package model defines the plain data exchanged between callers, the
// decision engine, and the rendering layer: content descriptors, layout
// and strategy decisions, and gallery content items. Everything here is
// comparable, serializable data with no hidden state.
