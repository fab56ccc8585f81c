// SPDX-License-Identifier: MIT

// Package floatmap: functional configuration for Map construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Reusability: Options fields are unexported; public APIs consume ...Option.

package floatmap

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultCapacity is the initial slot count requested when no capacity
	// option is given. Rounded up to a prime by the constructor.
	DefaultCapacity = 16384

	// DefaultLoadFactor is the occupied-slot fraction (full + tombstone)
	// beyond which the table grows and rehashes.
	DefaultLoadFactor = 0.7

	// DefaultGrowFactor multiplies the capacity on each grow.
	DefaultGrowFactor = 2.0

	// DefaultValue is returned by Get for absent keys unless overridden
	// via WithDefaultValue.
	DefaultValue float32 = 0
)

// Internal panic messages (no magic strings).
const (
	panicCapacityInvalid   = "floatmap: WithCapacity: capacity must be > 0"
	panicLoadFactorInvalid = "floatmap: WithLoadFactor: factor must be in (0, 1)"
	panicGrowFactorInvalid = "floatmap: WithGrowFactor: factor must be > 1"
	panicHasherInvalid     = "floatmap: WithHasher: unknown hasher id"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// It is intentionally unexported-fielded to prevent external mutation; public
// entry points accept `...Option` and internally resolve them via
// gatherOptions.
type Options struct {
	capacity     int      // requested initial slots; DefaultCapacity
	loadFactor   float64  // grow threshold; DefaultLoadFactor
	growFactor   float64  // capacity multiplier; DefaultGrowFactor
	defaultValue float32  // value reported for absent keys; DefaultValue
	hasher       HasherID // probe scrambler; HasherXXHash
}

// WithCapacity sets the initial slot count (rounded up to a prime).
//
// Inputs:
//   - n: requested capacity, must be > 0.
//
// Errors:
//   - Panics with a stable message when n <= 0.
//
// Complexity: O(1).
func WithCapacity(n int) Option {
	if n <= 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// WithLoadFactor sets the occupancy fraction that triggers a grow.
// Occupancy counts full AND tombstoned slots, so heavy remove/insert churn
// still resolves into a rehash that purges tombstones.
//
// Inputs:
//   - f: threshold in the open interval (0, 1).
//
// Errors:
//   - Panics with a stable message when f is outside (0, 1).
//
// Complexity: O(1).
func WithLoadFactor(f float64) Option {
	if f <= 0 || f >= 1 {
		panic(panicLoadFactorInvalid)
	}

	return func(o *Options) { o.loadFactor = f }
}

// WithGrowFactor sets the capacity multiplier applied on each grow.
//
// Inputs:
//   - f: multiplier, must be > 1.
//
// Errors:
//   - Panics with a stable message when f <= 1.
//
// Complexity: O(1).
func WithGrowFactor(f float64) Option {
	if f <= 1 {
		panic(panicGrowFactorInvalid)
	}

	return func(o *Options) { o.growFactor = f }
}

// WithDefaultValue sets the value Get reports for absent keys.
// dok.Matrix always uses 0 so that "absent means zero" holds.
//
// Complexity: O(1).
func WithDefaultValue(v float32) Option {
	return func(o *Options) { o.defaultValue = v }
}

// WithHasher selects the key-scrambling hash function.
//
// Errors:
//   - Panics with a stable message on an unknown HasherID.
//
// Complexity: O(1).
func WithHasher(id HasherID) Option {
	if id != HasherXXHash && id != HasherMurmur3 && id != HasherXXH3 {
		panic(panicHasherInvalid)
	}

	return func(o *Options) { o.hasher = id }
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Last-writer-wins semantics; deterministic for a given setter sequence.
// Complexity: O(k) for k setters.
func gatherOptions(user ...Option) Options {
	o := Options{
		capacity:     DefaultCapacity,
		loadFactor:   DefaultLoadFactor,
		growFactor:   DefaultGrowFactor,
		defaultValue: DefaultValue,
		hasher:       HasherXXHash,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}
