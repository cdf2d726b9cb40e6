package lcs

import (
	"context"
	"testing"

	"github.com/arlowright/streamdiff/internal/difftree"
	"github.com/arlowright/streamdiff/internal/position"
	"github.com/arlowright/streamdiff/internal/token"
)

// buildStream interns each string in toks through tree under src and returns
// the resulting Position stream, the way internal/position.Build would for a
// string-token adapter.
func buildStream(t *testing.T, tree *difftree.Tree, src token.Source, toks []string) []position.Position {
	t.Helper()
	a := testAdapter{}
	var stream []position.Position
	for i, tok := range toks {
		stream = append(stream, position.Position{Node: tree.Intern(a, src, tok), Offset: i + 1})
	}
	return stream
}

type testAdapter struct{}

func (testAdapter) Open(context.Context) (int, error)                    { return 0, nil }
func (testAdapter) NextToken(context.Context, token.Source) (token.Token, bool, error) {
	return nil, false, nil
}
func (testAdapter) TokenHash(tok token.Token) uint64 {
	s := tok.(string)
	var h uint64 = 14695981039346656037
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}
func (testAdapter) TokenEqual(a, b token.Token) bool { return a.(string) == b.(string) }

func runLen(run *Run) int {
	n := 0
	for r := run; r != nil; r = r.Next {
		n++
	}
	return n
}

func TestCompute_NoOverlapProducesOnlyTerminator(t *testing.T) {
	tree := difftree.New()
	original := buildStream(t, tree, token.Original, []string{"A", "B"})
	modified := buildStream(t, tree, token.Modified, []string{"X", "Y"})

	run := Compute(original, modified, 0, 0)
	if runLen(run) != 1 {
		t.Fatalf("got %d runs, want 1 (terminator only)", runLen(run))
	}
	if run.Length != 0 {
		t.Errorf("terminator.Length = %d, want 0", run.Length)
	}
	if run.OriginalOffset != 3 || run.ModifiedOffset != 3 {
		t.Errorf("terminator offsets = (%d,%d), want (3,3)", run.OriginalOffset, run.ModifiedOffset)
	}
}

func TestCompute_FullMatch(t *testing.T) {
	tree := difftree.New()
	original := buildStream(t, tree, token.Original, []string{"A", "B", "C"})
	modified := buildStream(t, tree, token.Modified, []string{"A", "B", "C"})

	run := Compute(original, modified, 0, 0)
	if run.Length != 3 || run.OriginalOffset != 1 || run.ModifiedOffset != 1 {
		t.Fatalf("first run = %+v, want a length-3 match starting at (1,1)", run)
	}
	if run.Next == nil || run.Next.Length != 0 {
		t.Fatalf("expected a terminator after the single match")
	}
}

func TestCompute_PrefixLinesSkipsComparison(t *testing.T) {
	tree := difftree.New()
	original := buildStream(t, tree, token.Original, []string{"A", "B", "Z"})
	modified := buildStream(t, tree, token.Modified, []string{"A", "B", "Q"})

	run := Compute(original, modified, 2, 0)
	if run.Length != 2 || run.OriginalOffset != 1 || run.ModifiedOffset != 1 {
		t.Fatalf("prefix run = %+v, want a length-2 match starting at (1,1)", run)
	}
}

func TestCompute_PrefixLinesClampedToShorterStream(t *testing.T) {
	tree := difftree.New()
	original := buildStream(t, tree, token.Original, []string{"A"})
	modified := buildStream(t, tree, token.Modified, []string{"A", "B"})

	// A prefix hint larger than either stream must not panic or overrun.
	run := Compute(original, modified, 10, 0)
	if run == nil {
		t.Fatal("Compute returned nil")
	}
}

func TestCompute_MaxCandidatesBoundsTheSearch(t *testing.T) {
	tree := difftree.New()
	toks := make([]string, 20)
	for i := range toks {
		toks[i] = "A"
	}
	original := buildStream(t, tree, token.Original, toks)
	modified := buildStream(t, tree, token.Modified, toks)

	// 20*20 = 400 cells; a ceiling of 10 must skip the search entirely.
	run := Compute(original, modified, 0, 10)
	if runLen(run) != 1 {
		t.Fatalf("got %d runs, want 1 (terminator only, search skipped)", runLen(run))
	}
}

func TestCompute_DisjointStreamsSkipSearchViaSharesIdentity(t *testing.T) {
	tree := difftree.New()
	original := buildStream(t, tree, token.Original, []string{"A", "A", "A"})
	modified := buildStream(t, tree, token.Modified, []string{"B", "B", "B"})

	run := Compute(original, modified, 0, 0)
	if runLen(run) != 1 {
		t.Fatalf("got %d runs, want 1 (terminator only)", runLen(run))
	}
}

func TestCompute_NonContiguousMatchesProduceSeparateRuns(t *testing.T) {
	tree := difftree.New()
	original := buildStream(t, tree, token.Original, []string{"A", "B", "C", "D"})
	modified := buildStream(t, tree, token.Modified, []string{"A", "C"})

	run := Compute(original, modified, 0, 0)

	var runs []*Run
	for r := run; r != nil; r = r.Next {
		runs = append(runs, r)
	}
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3 (two matches + terminator): %+v", len(runs), runs)
	}
	if runs[0].OriginalOffset != 1 || runs[0].ModifiedOffset != 1 || runs[0].Length != 1 {
		t.Errorf("runs[0] = %+v, want match at (1,1) length 1", runs[0])
	}
	if runs[1].OriginalOffset != 3 || runs[1].ModifiedOffset != 2 || runs[1].Length != 1 {
		t.Errorf("runs[1] = %+v, want match at (3,2) length 1", runs[1])
	}
}
