package heuristic

import (
	"strings"
	"testing"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "keyword sentence only",
			text: "Revenue increased. Nothing else happened. John will prepare a report by Friday.",
			want: "Revenue increased.",
		},
		{
			name: "no keywords falls back to first two",
			text: "Hello world. Nice day.",
			want: "Hello world. Nice day.",
		},
		{
			name: "single sentence without keywords",
			text: "Just one thing",
			want: "Just one thing.",
		},
		{
			name: "caps at three keyword sentences",
			text: "Budget approved. Revenue up. Growth slow. Quarter closed. Meeting ended.",
			want: "Budget approved. Revenue up. Growth slow.",
		},
		{
			name: "percent sign is a keyword",
			text: "We chatted. Churn fell 4% overall. Lunch was fine.",
			want: "Churn fell 4% overall.",
		},
		{
			name: "case insensitive",
			text: "THE MEETING STARTED LATE. nobody cared.",
			want: "THE MEETING STARTED LATE.",
		},
		{
			name: "first two of many without keywords",
			text: "One. Two. Three. Four.",
			want: "One. Two.",
		},
		{
			name: "collapses trailing periods",
			text: "Budget is tight...",
			want: "Budget is tight.",
		},
		{
			name: "empty",
			text: "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Summarize(tt.text, 150, 30); got != tt.want {
				t.Errorf("Summarize() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSummarizeIgnoresBounds(t *testing.T) {
	text := "Revenue grew. Budget held. Growth continued."
	if a, b := Summarize(text, 1, 0), Summarize(text, 1000, 500); a != b {
		t.Errorf("length bounds changed output: %q vs %q", a, b)
	}
}

func TestSummarizeKeywordProperty(t *testing.T) {
	text := "Intro. Revenue rose 5%. Coffee. The budget shrank. Quarter two. Meeting notes. Bye."
	got := Summarize(text, 150, 30)

	if !strings.HasSuffix(got, ".") || strings.HasSuffix(got, "..") {
		t.Fatalf("summary %q must end with exactly one period", got)
	}
	units := SentenceList(strings.TrimSuffix(got, "."))
	if len(units) > maxImportant {
		t.Fatalf("summary has %d sentences, want <= %d", len(units), maxImportant)
	}
	for _, u := range units {
		if !containsAny(strings.ToLower(u), summaryKeywords) {
			t.Errorf("sentence %q has no keyword", u)
		}
	}
}
