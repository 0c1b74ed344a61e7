package strategy

// Package strategy implements the tier-3 strategy selector: rule-based,
// capability-gated supported sets with fixed per-purpose priority
// orders. Selection is deterministic; ties break by declaration order
// and a universal fallback keeps every supported set non-empty.
