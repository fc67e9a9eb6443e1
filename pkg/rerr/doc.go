// Package rerr defines the core error taxonomy spec.md §7 names:
// ConfigError, NameResolutionFailure, PlacementConflict, GenerationFailed,
// and InvariantViolation. Each is a distinct type so callers can
// discriminate with errors.As; each wraps an optional cause so %w chains
// reach all the way down to the original stdlib/library error.
package rerr
