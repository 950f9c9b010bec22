package heuristic

import "strings"

// NoActionItems is what an empty ActionItems renders to.
const NoActionItems = "No specific action items found in the transcript."

const bullet = "• "

var actionPhrases = []string{
	"will prepare", "needs to", "should", "must", "assigned",
	"follow up", "action item", "todo", "task", "deadline",
	"by friday", "by next week", "by wednesday", "scheduled for", "planned for",
}

// ActionItems is an ordered list of action sentences, in transcript order.
type ActionItems []string

// String renders the bullet block, or NoActionItems when empty.
func (a ActionItems) String() string {
	if len(a) == 0 {
		return NoActionItems
	}
	return bullet + strings.Join(a, "\n"+bullet)
}

// ExtractActionItems keeps every sentence containing an action phrase,
// verbatim, with a trailing period appended when missing.
func ExtractActionItems(text string) ActionItems {
	var items ActionItems
	for s := range Sentences(text) {
		if !containsAny(strings.ToLower(s), actionPhrases) {
			continue
		}
		if !strings.HasSuffix(s, ".") {
			s += "."
		}
		items = append(items, s)
	}
	return items
}
