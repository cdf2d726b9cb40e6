// Package diagnostics records an optional, best-effort trace of each diff
// invocation as an append-only trail of events — logging failures here
// must never surface to the diff caller.
package diagnostics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// Entry is one recorded diff invocation.
type Entry struct {
	RunID          string `json:"run_id"`
	Timestamp      string `json:"ts"`
	OriginalTokens int    `json:"original_tokens"`
	ModifiedTokens int    `json:"modified_tokens"`
	Runs           int    `json:"runs"`
	CommonChunks   int    `json:"common_chunks"`
	ModifiedChunks int    `json:"modified_chunks"`
}

// DefaultDir is used when diffopts.Options.TraceDir is left empty.
const DefaultDir = ".streamdiff"

const traceFile = "diff-trace.jsonl"

// NewRunID returns a fresh identifier to tag one diff invocation's entry.
func NewRunID() string {
	return uuid.NewString()
}

// Log appends entry as a single JSON line to dir/diff-trace.jsonl, creating
// dir if necessary. Any failure is swallowed: tracing is strictly
// additive and must never be the reason a diff call fails.
func Log(dir string, entry Entry) {
	if dir == "" {
		dir = DefaultDir
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}

	f, err := os.OpenFile(filepath.Join(dir, traceFile), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	b, err := json.Marshal(entry)
	if err != nil {
		return
	}
	fmt.Fprintf(f, "%s\n", b)
}
