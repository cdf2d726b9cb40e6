// Package direrr defines the sentinel errors shared across the diff engine's
// internal layers so callers can classify a failure with errors.Is instead of
// string matching.
package direrr

import "errors"

var (
	// ErrAdapter wraps a failure surfaced by a caller-supplied token.Adapter:
	// a tokenizer or I/O error. The engine reports these verbatim; it never
	// interprets them.
	ErrAdapter = errors.New("diff: adapter error")

	// ErrResource classifies a failure to acquire or bound a working
	// resource. The engine itself never returns it: an LCS search that would
	// exceed a configured MaxCandidates ceiling falls back to reporting the
	// remainder as one unmatched gap instead.
	ErrResource = errors.New("diff: resource error")

	// ErrInvariant wraps a detected violation of the engine's own
	// data-model invariants: an adapter that reports a negative prefix from
	// Open, or one that panics while a position stream is being built.
	// These are programming errors in the adapter or its token type, not
	// normal operating conditions.
	ErrInvariant = errors.New("diff: invariant violation")
)
