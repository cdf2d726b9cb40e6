// Package lineadapter is a reference token.Adapter that tokenizes text into
// lines, the way a line-oriented diff tool splits its input before
// comparing it — except it feeds the streaming token engine instead of
// calling a diff library directly.
package lineadapter

import (
	"context"
	"strings"

	"github.com/arlowright/streamdiff/internal/token"
)

// Adapter tokenizes two in-memory texts line by line. A trailing "\r" is
// stripped from each line so CRLF and LF inputs compare equal.
type Adapter struct {
	lines  [2][]string
	cursor [2]int
}

// New builds an Adapter over the given original and modified texts. Both
// texts are split into lines right away, so Lines works before Open.
func New(original, modified string) *Adapter {
	return &Adapter{lines: [2][]string{splitLines(original), splitLines(modified)}}
}

// Open implements token.Adapter. It returns the number of leading lines
// shared verbatim by both texts, so the engine can skip LCS work for them.
func (a *Adapter) Open(ctx context.Context) (int, error) {
	a.cursor = [2]int{}

	n := len(a.lines[token.Original])
	if len(a.lines[token.Modified]) < n {
		n = len(a.lines[token.Modified])
	}
	prefix := 0
	for prefix < n && a.lines[token.Original][prefix] == a.lines[token.Modified][prefix] {
		prefix++
	}
	return prefix, nil
}

// NextToken implements token.Adapter.
func (a *Adapter) NextToken(ctx context.Context, src token.Source) (token.Token, bool, error) {
	i := a.cursor[src]
	if i >= len(a.lines[src]) {
		return nil, false, nil
	}
	a.cursor[src]++
	return a.lines[src][i], true, nil
}

// TokenHash implements token.Adapter using FNV-1a over the line's bytes.
func (a *Adapter) TokenHash(tok token.Token) uint64 {
	s := tok.(string)
	var h uint64 = 14695981039346656037
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= 1099511628211
	}
	return h
}

// TokenEqual implements token.Adapter.
func (a *Adapter) TokenEqual(x, y token.Token) bool {
	return x.(string) == y.(string)
}

// Lines returns the tokenized lines for src, for callers (e.g. the
// renderer) that need the original text back alongside the chunk chain.
func (a *Adapter) Lines(src token.Source) []string {
	return a.lines[src]
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, "\n")
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	for i, l := range raw {
		raw[i] = strings.TrimSuffix(l, "\r")
	}
	return raw
}
