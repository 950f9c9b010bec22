package transcriber

import (
	"context"
	"strings"
)

// SampleTranscript is served for demo runs and, when no speech model could be
// loaded, in place of real audio.
const SampleTranscript = "Good morning everyone, welcome to the quarterly review meeting. " +
	"Our revenue grew by 15% compared to last quarter. " +
	"Marketing spend will increase next month to support the launch. " +
	"Sarah will prepare the budget report by Friday. " +
	"The engineering team needs to finish the API migration by next week. " +
	"We should review the customer feedback before the next meeting. " +
	"Follow up with the design team about the new dashboard. " +
	"Thanks everyone for joining."

// PlaceholderName is the Name of the heuristic transcriber.
const PlaceholderName = "placeholder"

type implPlaceholder struct{}

// NewPlaceholder returns the heuristic transcriber. It never fails: text
// sources pass through, everything else yields SampleTranscript.
func NewPlaceholder() Transcriber {
	return implPlaceholder{}
}

func (implPlaceholder) Name() string      { return PlaceholderName }
func (implPlaceholder) ModelBacked() bool { return false }

func (implPlaceholder) Transcribe(_ context.Context, src Source, _ string) (string, error) {
	if src.Kind == SourceText {
		if text := strings.TrimSpace(src.Text); text != "" {
			return text, nil
		}
	}
	return SampleTranscript, nil
}
