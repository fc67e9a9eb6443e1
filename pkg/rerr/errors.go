package rerr

import "fmt"

// ConfigError reports an invalid option combination or a malformed
// requirement expression caught while validating options or compiling
// them against the built World. Fatal: the caller should not retry
// without changing input.
type ConfigError struct {
	// Option names the offending option or requirement token, where known.
	Option string
	Cause  error
}

func (e *ConfigError) Error() string {
	if e.Option == "" {
		return fmt.Sprintf("config error: %v", e.Cause)
	}
	return fmt.Sprintf("config error: %s: %v", e.Option, e.Cause)
}

func (e *ConfigError) Unwrap() error { return e.Cause }

// NewConfigError wraps cause as a ConfigError naming the offending option
// or token.
func NewConfigError(option string, cause error) *ConfigError {
	return &ConfigError{Option: option, Cause: cause}
}

// NameResolutionFailure reports that search_area (or an equivalent lookup)
// could not locate a partial address against the frozen registry. Fatal
// at world-build time — compileArea never emits a partially-resolved
// World.
type NameResolutionFailure struct {
	// Query is the partial address that failed to resolve.
	Query string
	Cause error
}

func (e *NameResolutionFailure) Error() string {
	return fmt.Sprintf("name resolution failed for %q: %v", e.Query, e.Cause)
}

func (e *NameResolutionFailure) Unwrap() error { return e.Cause }

// NewNameResolutionFailure wraps cause as a NameResolutionFailure naming
// the query that could not be resolved.
func NewNameResolutionFailure(query string, cause error) *NameResolutionFailure {
	return &NameResolutionFailure{Query: query, Cause: cause}
}

// PlacementConflict reports that place_item, replace_item, or link_exit
// was attempted against a slot that already holds an assignment. During
// fill this is caught and retried (evict-and-recurse, pkg/fill); in
// plando or validation it is fatal, since there the caller asked for an
// exact, non-negotiable assignment.
type PlacementConflict struct {
	// Slot is the check or exit name that was already assigned.
	Slot string
	Cause error
}

func (e *PlacementConflict) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("placement conflict at %q", e.Slot)
	}
	return fmt.Sprintf("placement conflict at %q: %v", e.Slot, e.Cause)
}

func (e *PlacementConflict) Unwrap() error { return e.Cause }

// NewPlacementConflict reports a conflict at slot, optionally wrapping a
// lower-level cause.
func NewPlacementConflict(slot string, cause error) *PlacementConflict {
	return &PlacementConflict{Slot: slot, Cause: cause}
}

// GenerationFailed reports that reachability could not be achieved after
// exhausting the allowed retries — fill ran out of placements, banned
// bits made completeness impossible, or an entrance shuffle could not
// find a bijective pairing that kept the graph solvable. Surfaced to the
// caller, who may reseed and try again; never a bug by itself.
type GenerationFailed struct {
	// Reason is a short human description of what could not be achieved.
	Reason string
	Cause  error
}

func (e *GenerationFailed) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("generation failed: %s", e.Reason)
	}
	return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Cause)
}

func (e *GenerationFailed) Unwrap() error { return e.Cause }

// NewGenerationFailed wraps cause as a GenerationFailed with reason as
// its human-readable summary.
func NewGenerationFailed(reason string, cause error) *GenerationFailed {
	return &GenerationFailed{Reason: reason, Cause: cause}
}

// AsGenerationFailed folds any error raised during an algorithmic fill
// attempt into a GenerationFailed, per spec.md §7's propagation policy:
// "algorithmic fill failures surface as GenerationFailed" regardless of
// their original category (a PlacementConflict exhausted of evict targets
// is still, from the caller's perspective, a failed generation attempt,
// not a bug). Returns nil if err is nil.
func AsGenerationFailed(reason string, err error) error {
	if err == nil {
		return nil
	}
	return NewGenerationFailed(reason, err)
}

// InvariantViolation reports that a post-randomize check found something
// unreachable that should be reachable (or some other property spec.md §8
// names broken) after generation claimed success. Always fatal and always
// indicates a bug in the solver, fill, or entrance logic — never a
// consequence of unlucky seed input.
type InvariantViolation struct {
	// Check names the testable property that failed (spec.md §8), e.g.
	// "completeness", "bijectivity", "placement-limit".
	Check string
	Cause error
}

func (e *InvariantViolation) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("invariant violated: %s", e.Check)
	}
	return fmt.Sprintf("invariant violated: %s: %v", e.Check, e.Cause)
}

func (e *InvariantViolation) Unwrap() error { return e.Cause }

// NewInvariantViolation wraps cause as an InvariantViolation naming the
// property that failed.
func NewInvariantViolation(check string, cause error) *InvariantViolation {
	return &InvariantViolation{Check: check, Cause: cause}
}
