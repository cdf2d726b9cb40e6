package format

import (
	"strings"
	"testing"
)

func TestWordWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  []string
	}{
		{
			name:  "text shorter than width stays on one line",
			text:  "showing last 5 of 5 entries",
			width: 80,
			want:  []string{"showing last 5 of 5 entries"},
		},
		{
			name:  "text wraps at word boundaries",
			text:  "Run a diff with --trace to populate it before inspecting the log",
			width: 20,
			want:  []string{"Run a diff with", "--trace to populate", "it before inspecting", "the log"},
		},
		{
			name:  "empty string returns single empty string",
			text:  "",
			width: 40,
			want:  []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wordWrap(tt.text, tt.width)
			if len(got) != len(tt.want) {
				t.Fatalf("wordWrap(%q, %d) returned %d lines, want %d\ngot:  %v\nwant: %v",
					tt.text, tt.width, len(got), len(tt.want), got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("wordWrap(%q, %d)[%d] = %q, want %q", tt.text, tt.width, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestFormatTraceMissing(t *testing.T) {
	result := FormatTraceMissing("/tmp/.streamdiff/diff-trace.jsonl")

	if !strings.Contains(result, "streamdiff trace") {
		t.Error("should carry the trace box title")
	}
	if !strings.Contains(result, "/tmp/.streamdiff/diff-trace.jsonl") {
		t.Error("should mention the missing log path")
	}
	if !strings.Contains(result, "--trace") {
		t.Error("should tell the reader how to populate the log")
	}

	lines := strings.Split(result, "\n")
	if !strings.HasPrefix(lines[0], "┌") || !strings.HasSuffix(lines[len(lines)-1], "┘") {
		t.Errorf("output should be boxed, got first/last lines %q / %q", lines[0], lines[len(lines)-1])
	}
}

func TestFormatTraceSummary(t *testing.T) {
	result := FormatTraceSummary("/tmp/.streamdiff/diff-trace.jsonl", 3, 10)

	if !strings.Contains(result, "streamdiff trace") {
		t.Error("should carry the trace box title")
	}
	if !strings.Contains(result, "showing last 3 of 10 entries") {
		t.Errorf("should report the shown/total counts, got %q", result)
	}

	lines := strings.Split(result, "\n")
	if len(lines) < 3 {
		t.Fatalf("output should have at least 3 lines (top border, content, bottom border), got %d", len(lines))
	}
	if !strings.Contains(lines[0], "streamdiff trace") {
		t.Error("title should appear in the top border line")
	}
}

func TestFormatTraceSummary_MultiLineBodyKeepsBothLines(t *testing.T) {
	result := FormatTraceSummary("/var/log/trace.jsonl", 1, 1)

	if !strings.Contains(result, "/var/log/trace.jsonl") {
		t.Error("should contain the log path on its own row")
	}
	if !strings.Contains(result, "showing last 1 of 1 entries") {
		t.Error("should contain the count row")
	}
}
