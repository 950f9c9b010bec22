package heuristic

import "strings"

const (
	maxImportant  = 3
	fallbackFirst = 2
)

var summaryKeywords = []string{
	"increase", "decrease", "revenue", "growth", "%", "budget", "quarter", "meeting",
}

// Summarize builds an extractive summary: up to three sentences mentioning a
// business keyword, or the first two sentences when none do.
//
// maxLength and minLength exist for signature parity with model summarizers
// and are ignored; the output length is bounded only by the sentence cap.
// Empty (or whitespace-only) text yields "".
func Summarize(text string, maxLength, minLength int) string {
	var picked []string
	for s := range Sentences(text) {
		if containsAny(strings.ToLower(s), summaryKeywords) {
			picked = append(picked, s)
			if len(picked) == maxImportant {
				break
			}
		}
	}

	if len(picked) == 0 {
		for s := range Sentences(text) {
			picked = append(picked, s)
			if len(picked) == fallbackFirst {
				break
			}
		}
	}
	if len(picked) == 0 {
		return ""
	}

	return ensurePeriod(strings.Join(picked, sentenceSep))
}

// ensurePeriod leaves exactly one trailing '.'.
func ensurePeriod(s string) string {
	return strings.TrimRight(s, ".") + "."
}
