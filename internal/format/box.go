package format

import (
	"fmt"
	"strings"
)

// FormatTraceMissing renders the "no trace file yet" message shown by the
// trace subcommand when the diagnostics log hasn't been written, boxed and
// titled the same way FormatTraceSummary is.
func FormatTraceMissing(logPath string) string {
	return borderedBox(
		fmt.Sprintf("No trace file at %s\n\nRun a diff with --trace to populate it.", logPath),
		"streamdiff trace")
}

// FormatTraceSummary renders the diagnostics trace log's header: the log
// path and how many of its entries are about to be printed out of the
// total recorded.
func FormatTraceSummary(logPath string, shown, total int) string {
	return borderedBox(
		fmt.Sprintf("%s\nshowing last %d of %d entries", logPath, shown, total),
		"streamdiff trace")
}

// borderedBox renders text inside a bordered box with word wrapping.
func borderedBox(text, title string) string {
	termWidth := TermWidth()
	innerW := termWidth - 4
	if innerW < 30 {
		innerW = 30
	}

	var wrapped []string
	for _, paragraph := range strings.Split(text, "\n") {
		if strings.TrimSpace(paragraph) == "" {
			wrapped = append(wrapped, "")
			continue
		}
		wrapped = append(wrapped, wordWrap(paragraph, innerW)...)
	}

	var output []string

	if title != "" {
		lbl := fmt.Sprintf("─ %s ", title)
		output = append(output, fmt.Sprintf("┌%s%s┐",
			lbl, strings.Repeat("─", innerW+2-runeLen(lbl))))
	} else {
		output = append(output, fmt.Sprintf("┌%s┐",
			strings.Repeat("─", innerW+2)))
	}

	for _, line := range wrapped {
		padded := padOrTrunc(line, innerW)
		output = append(output, fmt.Sprintf("│ %s │", padded))
	}

	output = append(output, fmt.Sprintf("└%s┘",
		strings.Repeat("─", innerW+2)))

	return strings.Join(output, "\n")
}

// wordWrap wraps text to the given width, breaking at word boundaries.
func wordWrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	current := words[0]

	for _, word := range words[1:] {
		if len(current)+1+len(word) <= width {
			current += " " + word
		} else {
			lines = append(lines, current)
			current = word
		}
	}
	lines = append(lines, current)
	return lines
}
