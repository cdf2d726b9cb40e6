// Package cmd implements the streamdiff command-line surface: a small
// flag.FlagSet-per-mode dispatcher that reads two files and renders the
// engine's output.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/arlowright/streamdiff/internal/diagnostics"
	"github.com/arlowright/streamdiff/internal/diffengine"
	"github.com/arlowright/streamdiff/internal/diffopts"
	"github.com/arlowright/streamdiff/internal/format"
	"github.com/arlowright/streamdiff/internal/lineadapter"
	"github.com/arlowright/streamdiff/internal/token"
)

// RunDiff handles the default top-level mode: diff two files.
func RunDiff(args []string) {
	fs := flag.NewFlagSet("streamdiff", flag.ExitOnError)

	sideBySide := fs.Bool("side-by-side", false, "Render a bordered side-by-side view instead of unified")
	noCommon := fs.Bool("no-common", false, "Omit matched lines, emitting only the changed ranges")
	maxCandidates := fs.Int("max-candidates", 0, "Bound the LCS search to at most this many candidate cells (0 = unlimited)")
	trace := fs.Bool("trace", false, "Record a diagnostics trace entry for this run")
	traceDir := fs.String("trace-dir", "", "Directory for the diagnostics trace (default .streamdiff)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `streamdiff: compare two files by their longest common subsequence.

Usage:
    streamdiff <original> <modified>              # unified diff
    streamdiff --side-by-side <original> <modified>
    streamdiff --no-common <original> <modified>  # changed ranges only
    streamdiff --max-candidates <n> <original> <modified>
    streamdiff --trace [--trace-dir <dir>] <original> <modified>

Subcommands:
    streamdiff trace [--dir <dir>]                # show the diagnostics trace log
`)
	}

	fs.Parse(reorderArgs(args))

	if fs.NArg() != 2 {
		fs.Usage()
		os.Exit(1)
	}

	originalPath, modifiedPath := fs.Arg(0), fs.Arg(1)

	originalText, err := os.ReadFile(originalPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", originalPath, err)
		os.Exit(1)
	}
	modifiedText, err := os.ReadFile(modifiedPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", modifiedPath, err)
		os.Exit(1)
	}

	adapter := lineadapter.New(string(originalText), string(modifiedText))

	opts := diffopts.Options{
		WantCommon:    !*noCommon,
		MaxCandidates: *maxCandidates,
		Trace:         *trace,
		TraceDir:      *traceDir,
	}

	chunks, err := diffengine.Diff(context.Background(), adapter, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	original := adapter.Lines(token.Original)
	modified := adapter.Lines(token.Modified)

	if *sideBySide {
		fmt.Println(format.FormatSideBySideDiff(original, modified, chunks))
		return
	}
	fmt.Println(format.RenderUnified(original, modified, chunks))
}

// reorderArgs moves flags before positional args so flag.Parse works
// regardless of argument order (e.g. "original.txt --side-by-side
// modified.txt" → "--side-by-side original.txt modified.txt"). Positional
// args keep their relative order.
func reorderArgs(args []string) []string {
	var flags, positional []string
	i := 0
	for i < len(args) {
		a := args[i]
		if len(a) > 0 && a[0] == '-' {
			flags = append(flags, a)
			if i+1 < len(args) && (len(args[i+1]) == 0 || args[i+1][0] != '-') {
				switch a {
				case "--side-by-side", "--no-common", "--trace":
					// no value
				default:
					i++
					flags = append(flags, args[i])
				}
			}
		} else {
			positional = append(positional, a)
		}
		i++
	}
	return append(flags, positional...)
}

// RunTrace handles the "trace" subcommand: show the diagnostics trace log.
func RunTrace(args []string) {
	fs := flag.NewFlagSet("streamdiff trace", flag.ExitOnError)
	dir := fs.String("dir", diagnostics.DefaultDir, "Directory holding the diagnostics trace log")
	fs.Parse(args)

	cmdShowTrace(*dir)
}
