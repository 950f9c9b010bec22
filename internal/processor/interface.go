package processor

import (
	"context"

	"github.com/nguyentantai21042004/meeting-minutes/internal/analyzer"
	"github.com/nguyentantai21042004/meeting-minutes/internal/exporter"
	"github.com/nguyentantai21042004/meeting-minutes/internal/store"
	"github.com/nguyentantai21042004/meeting-minutes/internal/transcriber"
)

// Outcome is everything one processed meeting produced.
type Outcome struct {
	Result analyzer.Result
	Files  exporter.Files
	Run    store.Run
}

// Processor turns meeting files into minutes.
type Processor interface {
	// Analyze runs the pipeline on path and exports the minutes. The input
	// file is left in place.
	Analyze(ctx context.Context, path string) (Outcome, error)
	// AnalyzeSource runs the pipeline on src; filename names the minutes.
	AnalyzeSource(ctx context.Context, filename string, src transcriber.Source) (Outcome, error)
	// Process is Analyze followed by archiving the input. Inputs answered
	// with the placeholder transcript stay in place. It is the watcher
	// handler.
	Process(ctx context.Context, path string) error
}
