// Package linemap projects a line number from one side of a diff to the
// other. Rather than forward-simulating a line's position across a whole
// history of hunks by shifting it past each subsequent edit's
// OldStart/OldLines/NewLines, this package walks the one diff.Chunk chain
// the engine already produced and answers the same question directly,
// without needing a shift/delta simulation at all.
package linemap

import (
	"github.com/arlowright/streamdiff/internal/diff"
	"github.com/arlowright/streamdiff/internal/token"
)

// Translate reports the 1-based line number on the other side of chunks
// that corresponds to line (1-based) on the from side. ok is false when
// line falls inside a modified chunk's range on the from side — the line
// was added, removed, or changed, so it has no stable counterpart.
func Translate(chunks *diff.Chunk, from token.Source, line int) (translated int, ok bool) {
	if line < 1 {
		return 0, false
	}

	for c := chunks; c != nil; c = c.Next {
		start, length := c.OriginalStart, c.OriginalLength
		otherStart := c.ModifiedStart
		if from == token.Modified {
			start, length = c.ModifiedStart, c.ModifiedLength
			otherStart = c.OriginalStart
		}

		// 0-based offset of line within this chunk's from-side range.
		offset := line - 1 - start
		if offset < 0 || offset >= length {
			continue
		}
		if c.Type != diff.Common {
			return 0, false
		}
		return otherStart + offset + 1, true
	}

	return 0, false
}
