package capability

// Package capability implements the layered capability-resolution core:
// a process-wide override store, fixed per-family testing defaults, and
// live hardware probing, combined with strict precedence into immutable
// snapshots carrying the derived layout constants.
