package capability

import "testing"

// Prober answers live hardware capability queries. Implementations that
// need to cross a thread or driver boundary must cache and answer
// synchronously; the resolver never blocks.
type Prober interface {
	Probe(c Capability) bool
}

// Resolver applies the capability precedence rules and produces
// immutable snapshots. Precedence per overridable capability:
// explicit override, then (under test instrumentation) the fixed
// platform default, then the live probe. The non-overridable
// capabilities skip the override step.
//
// Resolution is total: a nil prober or unknown family resolves to
// false rather than failing, so Resolve is safe to call speculatively.
type Resolver struct {
	family    Family
	overrides *OverrideStore
	prober    Prober
	testMode  bool
}

// NewResolver creates a resolver for a platform family using the
// process-wide override store. Test mode follows the Go test runner
// marker so resolutions inside `go test` use the fixed defaults table
// instead of live hardware.
func NewResolver(family Family, prober Prober) *Resolver {
	return &Resolver{
		family:    family,
		overrides: Overrides,
		prober:    prober,
		testMode:  testing.Testing(),
	}
}

// WithOverrides replaces the override store consulted during resolution
func (r *Resolver) WithOverrides(s *OverrideStore) *Resolver {
	r.overrides = s
	return r
}

// WithTestMode forces test-instrumentation defaults on or off,
// regardless of the detected test runner
func (r *Resolver) WithTestMode(enabled bool) *Resolver {
	r.testMode = enabled
	return r
}

// Resolve produces a fresh snapshot of all six capabilities plus the
// derived constants. Never fails.
func (r *Resolver) Resolve() Snapshot {
	s := Snapshot{
		Family:           r.family,
		Touch:            r.resolve(Touch),
		Hover:            r.resolve(Hover),
		Haptics:          r.resolve(Haptics),
		ScreenReader:     r.resolve(ScreenReader),
		SwitchControl:    r.resolve(SwitchControl),
		AssistiveTouch:   r.resolve(AssistiveTouch),
		UsedTestDefaults: r.testMode,
	}
	// Derived constants read only the final resolved touch value and the
	// family, keeping override and probe paths in agreement.
	s.MinTouchTarget = minTouchTarget(r.family, s.Touch)
	s.HoverDelay = hoverDelay(r.family)
	return s
}

// resolve applies the precedence chain for one capability
func (r *Resolver) resolve(c Capability) bool {
	if c.Overridable() && r.overrides != nil {
		if v, ok := r.overrides.Get(c); ok {
			return v
		}
	}
	if r.testMode {
		return DefaultsFor(r.family).Get(c)
	}
	if r.prober == nil {
		return false
	}
	return r.prober.Probe(c)
}
