package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/store"
	"github.com/nguyentantai21042004/meeting-minutes/internal/transcriber"
)

func (p *implProcessor) Analyze(ctx context.Context, path string) (Outcome, error) {
	src, err := sourceFor(path)
	if err != nil {
		return Outcome{}, err
	}
	return p.AnalyzeSource(ctx, filepath.Base(path), src)
}

func (p *implProcessor) AnalyzeSource(ctx context.Context, filename string, src transcriber.Source) (Outcome, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting meeting analysis: %s", src.Label())
	p.logger.Info(ctx, "========================================")

	// Step 1: Run the pipeline on the shared analyzer
	if busy := p.inference.inUse(); busy > 0 {
		p.logger.Debug(ctx, "Waiting for analyzer (%d run(s) in progress)", busy)
	}
	release, err := p.inference.acquire(ctx)
	if err != nil {
		return Outcome{}, fmt.Errorf("wait for analyzer: %w", err)
	}
	res, err := p.analyzer.ProcessMeeting(ctx, src, p.cfg.Transcriber.Language)
	release()
	if err != nil {
		return Outcome{}, fmt.Errorf("analyze %s: %w", filename, err)
	}
	if res.Provenance.Placeholder {
		p.logger.Warn(ctx, "No speech model available, %s got the placeholder transcript", filename)
	}

	// Step 2: Export minutes
	files, err := p.exporter.Export(ctx, filename, res)
	if err != nil {
		return Outcome{}, fmt.Errorf("export: %w", err)
	}

	// Step 3: Record the run; history is best effort
	run, err := p.store.SaveRun(ctx, store.Run{
		Source:      filename,
		Transcriber: res.Provenance.Transcriber,
		Summarizer:  res.Provenance.Summarizer,
		Placeholder: res.Provenance.Placeholder,
		Summary:     res.Summary,
		ActionItems: len(res.ActionItems),
		OutputPath:  files.Markdown,
		Duration:    time.Since(startTime),
	})
	if err != nil {
		p.logger.Warn(ctx, "Failed to record run for %s: %v", filename, err)
	}

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Analysis completed: %s", filename)
	p.logger.Info(ctx, "Transcriber: %s, summarizer: %s", res.Provenance.Transcriber, res.Provenance.Summarizer)
	p.logger.Info(ctx, "Action items: %d", len(res.ActionItems))
	p.logger.Info(ctx, "Output: %s", files.Markdown)
	p.logger.Info(ctx, "Processing time: %s", time.Since(startTime))
	p.logger.Info(ctx, "========================================")

	return Outcome{Result: res, Files: files, Run: run}, nil
}

func (p *implProcessor) Process(ctx context.Context, path string) error {
	out, err := p.Analyze(ctx, path)
	if err != nil {
		return err
	}

	// Keep recordings answered with the placeholder so they can be retried
	// once a speech model is available.
	if out.Result.Provenance.Placeholder {
		p.logger.Warn(ctx, "Leaving %s in the input folder: no real transcript was produced", path)
		return nil
	}

	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move input to archived folder: %v", err)
	}
	return nil
}
