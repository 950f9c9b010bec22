package exporter

import (
	"context"

	"github.com/nguyentantai21042004/meeting-minutes/internal/analyzer"
)

// Files are the paths written for one meeting.
type Files struct {
	Markdown string
	Docx     string
}

// Exporter renders analysis results to the output folder.
type Exporter interface {
	Export(ctx context.Context, name string, res analyzer.Result) (Files, error)
}
