// Package lcs computes the longest common subsequence of two position
// streams as a linked chain of matching Runs, the way svn_diff__lcs does for
// the Subversion diff engine this package is modeled on.
//
// The search itself is a classic dynamic-programming LCS over the two
// streams, comparing tokens by identity (position.SameIdentity) instead of
// re-invoking adapter equality. Ties are broken deterministically: earlier
// matches in the original stream win. The DP table holds suffix lengths
// (dp[i][j] is the LCS of everything from i, j onward) specifically so the
// reconstruction walk can run forward from the start and take the first
// available match at each step — walking backward from the end and taking
// matches greedily, the more common textbook construction, finds the LAST
// occurrence of a repeated subsequence instead of the first.
package lcs

import (
	"github.com/arlowright/streamdiff/internal/position"
	"github.com/arlowright/streamdiff/internal/token"
)

// Run describes one maximal contiguous matched segment: Length consecutive
// tokens starting at OriginalOffset in the original stream match, by
// identity, Length consecutive tokens starting at ModifiedOffset in the
// modified stream. Runs are chained in source order and terminated by a
// sentinel Run with Length 0, whose offsets are one past the end of each
// stream — this lets the Diff Assembler treat end-of-input the same way it
// treats every other run.
type Run struct {
	OriginalOffset int
	ModifiedOffset int
	Length         int
	Next           *Run
}

// Compute returns the head of the Run chain for original and modified.
// prefixLines leading tokens (already known identical by the caller) are
// folded into a single leading Run without being compared. maxCandidates, if
// positive, bounds the O(n*m) search: when the remaining suffix would
// require comparing more than maxCandidates cells, the search is skipped
// entirely and the remainder is reported as one fully-unmatched gap — the
// same fallback the line-based matcher this package descends from uses for
// pathologically large edits, just expressed as a configurable ceiling
// instead of a fixed constant.
func Compute(original, modified []position.Position, prefixLines, maxCandidates int) *Run {
	if prefixLines < 0 {
		prefixLines = 0
	}
	if prefixLines > len(original) {
		prefixLines = len(original)
	}
	if prefixLines > len(modified) {
		prefixLines = len(modified)
	}

	var head, tail *Run
	appendRun := func(r *Run) {
		if head == nil {
			head = r
		} else {
			tail.Next = r
		}
		tail = r
	}

	if prefixLines > 0 {
		appendRun(&Run{OriginalOffset: 1, ModifiedOffset: 1, Length: prefixLines})
	}

	oSuffix := original[prefixLines:]
	mSuffix := modified[prefixLines:]

	if len(oSuffix) > 0 && len(mSuffix) > 0 &&
		!(maxCandidates > 0 && len(oSuffix)*len(mSuffix) > maxCandidates) &&
		sharesIdentity(oSuffix, mSuffix) {
		for _, r := range matchRuns(oSuffix, mSuffix) {
			appendRun(r)
		}
	}

	appendRun(&Run{
		OriginalOffset: len(original) + 1,
		ModifiedOffset: len(modified) + 1,
		Length:         0,
	})

	return head
}

// sharesIdentity reports whether any token in oSuffix could possibly match a
// token in mSuffix, using the Tree's per-side occurrence counts rather than
// an O(n*m) scan. It never produces a false negative: if it returns false,
// matchRuns would find nothing. It may produce a (harmless) false positive
// when a shared identity's occurrences are confined to the prefix already
// consumed, in which case matchRuns simply finds zero pairs.
func sharesIdentity(oSuffix, mSuffix []position.Position) bool {
	for _, p := range oSuffix {
		if p.Node.TotalMatches(token.Modified) > 0 {
			return true
		}
	}
	return false
}

type pair struct{ i, j int } // 1-based indices into oSuffix/mSuffix

// matchRuns computes the LCS of oSuffix and mSuffix via dynamic programming
// and groups the resulting matched index pairs into contiguous Runs, with
// offsets translated back to absolute (prefix-relative) 1-based positions.
func matchRuns(oSuffix, mSuffix []position.Position) []*Run {
	n, m := len(oSuffix), len(mSuffix)

	// dp[i][j] is the LCS length of oSuffix[i:] and mSuffix[j:] — the
	// remaining suffixes starting at i, j (0-indexed), not the prefixes
	// ending there. This lets the walk below run forward from (0, 0).
	dp := make([][]int32, n+1)
	for i := range dp {
		dp[i] = make([]int32, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if position.SameIdentity(oSuffix[i], mSuffix[j]) {
				dp[i][j] = dp[i+1][j+1] + 1
			} else if dp[i+1][j] >= dp[i][j+1] {
				dp[i][j] = dp[i+1][j]
			} else {
				dp[i][j] = dp[i][j+1]
			}
		}
	}

	var pairs []pair
	for i, j := 0, 0; i < n && j < m; {
		switch {
		case position.SameIdentity(oSuffix[i], mSuffix[j]):
			pairs = append(pairs, pair{i + 1, j + 1})
			i++
			j++
		case dp[i][j+1] >= dp[i+1][j]:
			j++
		default:
			i++
		}
	}

	var runs []*Run
	for k := 0; k < len(pairs); {
		start := pairs[k]
		length := 1
		for k+length < len(pairs) &&
			pairs[k+length].i == start.i+length &&
			pairs[k+length].j == start.j+length {
			length++
		}
		runs = append(runs, &Run{
			OriginalOffset: oSuffix[start.i-1].Offset,
			ModifiedOffset: mSuffix[start.j-1].Offset,
			Length:         length,
		})
		k += length
	}
	return runs
}
