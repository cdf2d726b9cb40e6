package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/arlowright/streamdiff/internal/diagnostics"
	"github.com/arlowright/streamdiff/internal/format"
)

// cmdShowTrace prints the tail of the diagnostics trace log, one rendered
// line per recorded Diff invocation.
func cmdShowTrace(dir string) {
	if dir == "" {
		dir = diagnostics.DefaultDir
	}
	logFile := filepath.Join(dir, "diff-trace.jsonl")

	data, err := os.ReadFile(logFile)
	if err != nil {
		fmt.Println(format.FormatTraceMissing(logFile))
		return
	}

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	start := 0
	if len(lines) > 100 {
		start = len(lines) - 100
	}
	tail := lines[start:]

	fmt.Println(format.FormatTraceSummary(logFile, len(tail), len(lines)))
	fmt.Println()

	for _, line := range tail {
		if line == "" {
			continue
		}
		var entry diagnostics.Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			fmt.Println(line)
			continue
		}
		fmt.Printf("%s%s%s  runs=%d common=%d modified=%d original_tokens=%d modified_tokens=%d  %srun %s%s\n",
			format.Bold, entry.Timestamp, format.Reset,
			entry.Runs, entry.CommonChunks, entry.ModifiedChunks,
			entry.OriginalTokens, entry.ModifiedTokens,
			format.Dim, entry.RunID, format.Reset)
	}
}
