package heuristic

import (
	"iter"
	"strings"
)

// sentenceSep is the only boundary the segmenter recognises. Abbreviations
// ("Dr. Smith") and spaced decimals are split too.
const sentenceSep = ". "

// Sentences yields the trimmed, non-empty spans of text separated by ". ".
// The sequence is lazy and can be ranged over any number of times.
func Sentences(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := text
		for {
			span, tail, found := strings.Cut(rest, sentenceSep)
			if s := strings.TrimSpace(span); s != "" {
				if !yield(s) {
					return
				}
			}
			if !found {
				return
			}
			rest = tail
		}
	}
}

// SentenceList collects Sentences into a slice.
func SentenceList(text string) []string {
	var out []string
	for s := range Sentences(text) {
		out = append(out, s)
	}
	return out
}

func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
