// Package difftree deduplicates tokens across both sides of a diff so the
// LCS engine can compare them by identity (a pointer comparison) instead of
// invoking the adapter's equality callback on every step.
//
// A Tree is scratch: once both position streams have been built with it,
// the Tree itself can be dropped. The Node values it handed out stay alive
// for as long as something references them — in Go that simply means the
// position stream that points at them — so there is no separate "tree
// arena" to keep around: the garbage collector is the arena.
package difftree

import "github.com/arlowright/streamdiff/internal/token"

// Node is the canonical representative of one equivalence class of equal
// tokens: every occurrence of an equal token, on either side, interns to the
// same *Node. Its identity is its pointer value.
type Node struct {
	token        token.Token
	totalMatches [2]int
}

// TotalMatches returns how many times this identity occurred on the given
// side across the whole diff (both the prefix and the part that went
// through LCS). The LCS engine uses this to prune identities that can't
// possibly participate in a match: one that never occurs on one side can
// never occur in a common run.
func (n *Node) TotalMatches(src token.Source) int {
	return n.totalMatches[src]
}

// Tree maps each distinct token (by the adapter's hash+equality) to a single
// Node.
type Tree struct {
	buckets map[uint64][]*Node
}

// New creates an empty Tree.
func New() *Tree {
	return &Tree{buckets: make(map[uint64][]*Node)}
}

// Intern hashes tok, locates or inserts the matching Node (using the
// adapter's equality to break hash collisions), increments that Node's
// occurrence count for src, and returns the Node.
func (t *Tree) Intern(adapter token.Adapter, src token.Source, tok token.Token) *Node {
	h := adapter.TokenHash(tok)
	for _, n := range t.buckets[h] {
		if adapter.TokenEqual(n.token, tok) {
			n.totalMatches[src]++
			return n
		}
	}
	n := &Node{token: tok}
	n.totalMatches[src]++
	t.buckets[h] = append(t.buckets[h], n)
	return n
}
