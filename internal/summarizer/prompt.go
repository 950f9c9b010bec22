package summarizer

import (
	"fmt"
	"strings"
)

const summaryPrompt = `You are summarizing the transcript of a business meeting.
Write a concise summary of between %d and %d words.
Cover decisions, figures and owners that were mentioned. Use plain prose:
no headings, no bullet points, no preamble.

Transcript:
---
%s
---`

func buildPrompt(text string, maxLength, minLength int) string {
	return fmt.Sprintf(summaryPrompt, minLength, maxLength, text)
}

// clampWords cuts s to at most max words, ending on a period.
func clampWords(s string, max int) string {
	words := strings.Fields(s)
	if max <= 0 || len(words) <= max {
		return strings.Join(words, " ")
	}
	return strings.TrimRight(strings.Join(words[:max], " "), ".,;:") + "."
}
