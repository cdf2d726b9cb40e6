// Package diffassembler walks an lcs.Run chain and the gaps between runs to
// produce the engine's output: a linked chain of diff.Chunk. It is a direct
// translation of svn_diff__diff from Subversion's libsvn_diff/diff.c, with
// the 1-based-internal/0-based-external coordinate conversion performed at
// the single point runs turn into chunks.
package diffassembler

import (
	"github.com/arlowright/streamdiff/internal/diff"
	"github.com/arlowright/streamdiff/internal/lcs"
)

// Assemble converts run (the head of an lcs.Run chain) into the head of a
// diff.Chunk chain. When wantCommon is false, matched runs are skipped but
// still advance the cursors, so only modified chunks are emitted.
func Assemble(run *lcs.Run, wantCommon bool) *diff.Chunk {
	var head, tail *diff.Chunk
	emit := func(c *diff.Chunk) {
		if head == nil {
			head = c
		} else {
			tail.Next = c
		}
		tail = c
	}

	originalCursor, modifiedCursor := 1, 1

	for {
		if originalCursor < run.OriginalOffset || modifiedCursor < run.ModifiedOffset {
			emit(&diff.Chunk{
				Type:           diff.Modified,
				OriginalStart:  originalCursor - 1,
				OriginalLength: run.OriginalOffset - originalCursor,
				ModifiedStart:  modifiedCursor - 1,
				ModifiedLength: run.ModifiedOffset - modifiedCursor,
			})
		}

		// The terminator run's own offsets sit one past the end of each
		// stream (sentinel territory); stop here, after emitting any
		// trailing gap above, and before the cursor advances below ever
		// look at them.
		if run.Length == 0 {
			break
		}

		originalCursor = run.OriginalOffset
		modifiedCursor = run.ModifiedOffset

		if wantCommon {
			emit(&diff.Chunk{
				Type:           diff.Common,
				OriginalStart:  originalCursor - 1,
				OriginalLength: run.Length,
				ModifiedStart:  modifiedCursor - 1,
				ModifiedLength: run.Length,
			})
		}

		originalCursor += run.Length
		modifiedCursor += run.Length

		run = run.Next
	}

	return head
}
