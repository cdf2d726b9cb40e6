// Package position builds the per-source ordered token stream the LCS
// engine operates on: each token is interned through a difftree.Tree and
// recorded as a (identity, offset) pair, offsets being the 1-based index of
// the token within its source.
package position

import (
	"context"
	"fmt"

	"github.com/arlowright/streamdiff/internal/difftree"
	"github.com/arlowright/streamdiff/internal/direrr"
	"github.com/arlowright/streamdiff/internal/token"
)

// Position is one entry in a source's token stream: the interned identity
// plus this token's 1-based offset within its source.
type Position struct {
	Node   *difftree.Node
	Offset int
}

// SameIdentity reports whether a and b were interned to the same identity
// node — the O(1) identity comparison the rest of the engine relies on.
func SameIdentity(a, b Position) bool {
	return a.Node == b.Node
}

// Build drains every remaining token adapter has for src, interning each one
// through tree, and returns the resulting stream in source order.
func Build(ctx context.Context, adapter token.Adapter, tree *difftree.Tree, src token.Source) (stream []Position, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: adapter panicked reading, hashing or comparing a %s token: %v", direrr.ErrInvariant, src, r)
		}
	}()

	offset := 0
	for {
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", direrr.ErrAdapter, ctx.Err())
		default:
		}

		tok, ok, err := adapter.NextToken(ctx, src)
		if err != nil {
			return nil, fmt.Errorf("%w: reading %s token %d: %v", direrr.ErrAdapter, src, offset+1, err)
		}
		if !ok {
			break
		}

		offset++
		node := tree.Intern(adapter, src, tok)
		stream = append(stream, Position{Node: node, Offset: offset})
	}
	return stream, nil
}
