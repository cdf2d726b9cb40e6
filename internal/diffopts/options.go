// Package diffopts holds the small set of options an engine call accepts.
// It is a plain struct built by field assignment rather than a
// functional-options framework, since five fields don't warrant one.
package diffopts

// Options configures one Diff call.
type Options struct {
	// WantCommon, if true, emits common chunks for matched runs. If false,
	// only modified chunks are emitted (matched runs still advance the
	// cursors, they just produce no output).
	WantCommon bool

	// PrefixLines is the count of leading tokens the caller already knows
	// are identical across both sources; it is folded into a single
	// leading common run without ever being compared. Zero always works,
	// it just forfeits the optimization.
	PrefixLines int

	// MaxCandidates, if positive, bounds the LCS search to at most
	// MaxCandidates (originalSuffix x modifiedSuffix) cells. Beyond that,
	// the remainder of the input is reported as a single unmatched gap
	// instead of being compared. Zero means unlimited.
	MaxCandidates int

	// Trace, if true, records a diagnostics entry for this call (see
	// internal/diagnostics). Off by default so it costs nothing when
	// unused.
	Trace bool

	// TraceDir is where the diagnostics entry is appended when Trace is
	// true. Empty defaults to ".streamdiff" in the working directory.
	TraceDir string
}
