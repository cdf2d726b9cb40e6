package format

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/arlowright/streamdiff/internal/diff"
)

// RenderUnified renders a diff.Chunk chain as a unified-style text diff
// against the original and modified line slices the chunks' coordinates
// refer to.
func RenderUnified(original, modified []string, chunks *diff.Chunk) string {
	var out []string
	for c := chunks; c != nil; c = c.Next {
		switch c.Type {
		case diff.Common:
			for i := 0; i < c.OriginalLength; i++ {
				out = append(out, "  "+expandTabs(original[c.OriginalStart+i]))
			}
		case diff.Modified:
			for i := 0; i < c.OriginalLength; i++ {
				out = append(out, Red+"- "+expandTabs(original[c.OriginalStart+i])+Reset)
			}
			for i := 0; i < c.ModifiedLength; i++ {
				out = append(out, Green+"+ "+expandTabs(modified[c.ModifiedStart+i])+Reset)
			}
		}
	}
	return strings.Join(out, "\n")
}

// FormatSideBySideDiff renders a side-by-side diff with box-drawing borders,
// one row per output line. The line-level partition comes from the engine's
// own chunk chain; modified chunks are then handed to diffmatchpatch, but
// only the chunk's own paired text, for an intra-chunk character-level
// highlight.
func FormatSideBySideDiff(original, modified []string, chunks *diff.Chunk) string {
	termWidth := TermWidth()
	colW := (termWidth - 7) / 2
	if colW < 20 {
		colW = 20
	}

	var rows []diffRow
	for c := chunks; c != nil; c = c.Next {
		switch c.Type {
		case diff.Common:
			for i := 0; i < c.OriginalLength; i++ {
				l := expandTabs(original[c.OriginalStart+i])
				rows = append(rows, diffRow{tag: "equal", left: l, right: l})
			}
		case diff.Modified:
			rows = append(rows, modifiedRows(
				original[c.OriginalStart:c.OriginalStart+c.OriginalLength],
				modified[c.ModifiedStart:c.ModifiedStart+c.ModifiedLength],
			)...)
		}
	}

	totalRows := len(rows)
	maxDisplay := 40
	truncated := totalRows > maxDisplay
	if truncated {
		rows = rows[:maxDisplay]
	}

	var output []string

	lblL := "─ Before "
	lblR := "─ After "
	output = append(output, fmt.Sprintf("┌%s%s┬%s%s┐",
		lblL, strings.Repeat("─", colW+2-runeLen(lblL)),
		lblR, strings.Repeat("─", colW+2-runeLen(lblR))))

	for _, r := range rows {
		left := padOrTrunc("", colW)
		right := padOrTrunc("", colW)
		if r.tag != "insert" {
			left = padOrTrunc(r.left, colW)
		}
		if r.tag != "delete" {
			right = padOrTrunc(r.right, colW)
		}

		switch r.tag {
		case "equal":
			output = append(output, fmt.Sprintf("│ %s%s%s │ %s%s%s │",
				Dim, left, Reset, Dim, right, Reset))
		case "delete":
			output = append(output, fmt.Sprintf("│ %s%s%s │ %s │",
				Red, left, Reset, strings.Repeat(" ", colW)))
		case "insert":
			output = append(output, fmt.Sprintf("│ %s │ %s%s%s │",
				strings.Repeat(" ", colW), Green, right, Reset))
		case "replace":
			output = append(output, fmt.Sprintf("│ %s%s%s │ %s%s%s │",
				Red, left, Reset, Green, right, Reset))
		}
	}

	output = append(output, fmt.Sprintf("└%s┴%s┘",
		strings.Repeat("─", colW+2), strings.Repeat("─", colW+2)))

	if truncated {
		output = append(output, fmt.Sprintf("  %s… %d more lines not shown%s",
			Dim, totalRows-maxDisplay, Reset))
	}

	return strings.Join(output, "\n")
}

// diffRow is one rendered side-by-side line, tagged by reconstructed
// line-level operation.
type diffRow struct {
	tag   string // "equal", "delete", "insert", "replace"
	left  string
	right string
}

// modifiedRows reconstructs insert/delete/replace rows for one modified
// chunk's paired text, using diffmatchpatch for a character-level diff whose
// Equal/Delete/Insert spans are regrouped into line-level rows, scoped to a
// single chunk's old/new text instead of the whole file. Rows come back as
// plain text; coloring happens once, at final render time, so padding never
// has to account for embedded escape codes.
func modifiedRows(oldLines, newLines []string) []diffRow {
	expanded := func(lines []string) string {
		exp := make([]string, len(lines))
		for i, l := range lines {
			exp[i] = expandTabs(l)
		}
		return strings.Join(exp, "\n")
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expanded(oldLines), expanded(newLines), true)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var rows []diffRow
	var oldBuf, newBuf []string

	flush := func() {
		maxLen := len(oldBuf)
		if len(newBuf) > maxLen {
			maxLen = len(newBuf)
		}
		for i := 0; i < maxLen; i++ {
			switch {
			case i >= len(oldBuf):
				rows = append(rows, diffRow{tag: "insert", right: newBuf[i]})
			case i >= len(newBuf):
				rows = append(rows, diffRow{tag: "delete", left: oldBuf[i]})
			default:
				rows = append(rows, diffRow{tag: "replace", left: oldBuf[i], right: newBuf[i]})
			}
		}
		oldBuf, newBuf = nil, nil
	}

	for _, d := range diffs {
		lines := strings.Split(d.Text, "\n")
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			flush()
			for _, l := range lines {
				rows = append(rows, diffRow{tag: "equal", left: l, right: l})
			}
		case diffmatchpatch.DiffDelete:
			oldBuf = append(oldBuf, lines...)
		case diffmatchpatch.DiffInsert:
			newBuf = append(newBuf, lines...)
		}
	}
	flush()

	return rows
}

// expandTabs renders a single line's tabs as four spaces, the width assumed
// throughout when computing column padding.
func expandTabs(line string) string {
	return strings.ReplaceAll(line, "\t", "    ")
}

func padOrTrunc(s string, w int) string {
	r := []rune(s)
	if len(r) > w {
		return string(r[:w])
	}
	return s + strings.Repeat(" ", w-len(r))
}

func runeLen(s string) int {
	return len([]rune(s))
}
