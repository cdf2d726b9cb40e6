// Package diffengine wires the Token Tree, Position Stream, LCS Engine and
// Diff Assembler together behind a single synchronous entry point, the way
// svn_diff_diff wires svn_diff__get_tokens, svn_diff__lcs and
// svn_diff__diff. It holds no package-level mutable state, so independent
// calls with independent adapters are safe to run on separate goroutines.
package diffengine

import (
	"context"
	"fmt"

	"github.com/arlowright/streamdiff/internal/diagnostics"
	"github.com/arlowright/streamdiff/internal/diff"
	"github.com/arlowright/streamdiff/internal/diffassembler"
	"github.com/arlowright/streamdiff/internal/diffopts"
	"github.com/arlowright/streamdiff/internal/difftree"
	"github.com/arlowright/streamdiff/internal/direrr"
	"github.com/arlowright/streamdiff/internal/lcs"
	"github.com/arlowright/streamdiff/internal/position"
	"github.com/arlowright/streamdiff/internal/token"
)

// Diff computes the diff chain between the original and modified sources
// adapter exposes, according to opts. On error the returned chain is nil;
// errors are classified per the direrr sentinels and unwrap to them with
// errors.Is.
func Diff(ctx context.Context, adapter token.Adapter, opts diffopts.Options) (*diff.Chunk, error) {
	prefixLines, err := adapter.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: opening sources: %v", direrr.ErrAdapter, err)
	}
	if prefixLines < 0 {
		return nil, fmt.Errorf("%w: adapter reported a negative prefix of %d", direrr.ErrInvariant, prefixLines)
	}
	// opts.PrefixLines is the caller's own hint, independent of whatever the
	// adapter auto-detected — e.g. a caller that already knows the first N
	// records are untouched from an external change-tracking source. The
	// larger of the two wins; neither is ever compared, so a wrong adapter
	// prefix of 0 just forfeits the optimization rather than corrupting it.
	if opts.PrefixLines > prefixLines {
		prefixLines = opts.PrefixLines
	}

	// The tree is scratch: it only needs to live long enough to build both
	// position streams. Once that's done, nothing references it and it
	// becomes collectible before the LCS sweep runs — the Go-idiomatic
	// rendering of "the tree arena is released before LCS begins".
	tree := difftree.New()

	originalPositions, err := position.Build(ctx, adapter, tree, token.Original)
	if err != nil {
		return nil, err
	}
	modifiedPositions, err := position.Build(ctx, adapter, tree, token.Modified)
	if err != nil {
		return nil, err
	}

	token.Discard(adapter)
	tree = nil

	run := lcs.Compute(originalPositions, modifiedPositions, prefixLines, opts.MaxCandidates)
	chunks := diffassembler.Assemble(run, opts.WantCommon)

	if opts.Trace {
		var runCount, commonCount, modifiedCount int
		for r := run; r != nil; r = r.Next {
			runCount++
		}
		for c := chunks; c != nil; c = c.Next {
			if c.Type == diff.Common {
				commonCount++
			} else {
				modifiedCount++
			}
		}
		diagnostics.Log(opts.TraceDir, diagnostics.Entry{
			RunID:          diagnostics.NewRunID(),
			OriginalTokens: len(originalPositions),
			ModifiedTokens: len(modifiedPositions),
			Runs:           runCount,
			CommonChunks:   commonCount,
			ModifiedChunks: modifiedCount,
		})
	}

	return chunks, nil
}
