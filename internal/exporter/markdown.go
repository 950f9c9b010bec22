package exporter

import (
	"strings"

	"github.com/nguyentantai21042004/meeting-minutes/internal/analyzer"
)

func renderMarkdown(title string, res analyzer.Result) string {
	var b strings.Builder

	b.WriteString("# " + title + "\n\n")

	b.WriteString("## Summary\n\n")
	b.WriteString(res.Summary + "\n\n")

	b.WriteString("## Action Items\n\n")
	b.WriteString(res.ActionItems.String() + "\n\n")

	b.WriteString("## Transcript\n\n")
	if res.Provenance.Placeholder {
		b.WriteString("**Note:** no speech model was available, this is the placeholder transcript.\n\n")
	}
	b.WriteString(res.Transcript + "\n\n")

	b.WriteString("---\n\n")
	b.WriteString("Transcribed by **" + res.Provenance.Transcriber + "**, summarized by **" + res.Provenance.Summarizer + "**.\n")

	return b.String()
}
