package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const defaultLimit = 20

func (s *implStore) SaveRun(ctx context.Context, run Run) (Run, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, source, transcriber, summarizer, placeholder,
			summary, actionItems, outputPath, durationMs, createdAt)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Source, run.Transcriber, run.Summarizer, run.Placeholder,
		run.Summary, run.ActionItems, run.OutputPath, run.Duration.Milliseconds(),
		unixFromTime(run.CreatedAt))
	if err != nil {
		return Run{}, fmt.Errorf("insert run: %w", err)
	}
	return run, nil
}

func (s *implStore) RecentRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, source, transcriber, summarizer, placeholder,
			summary, actionItems, outputPath, durationMs, createdAt
		FROM runs
		ORDER BY createdAt DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var durationMs int64
		var createdAt float64
		if err := rows.Scan(&r.ID, &r.Source, &r.Transcriber, &r.Summarizer, &r.Placeholder,
			&r.Summary, &r.ActionItems, &r.OutputPath, &durationMs, &createdAt); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		r.CreatedAt = timeFromUnix(createdAt)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

func (s *implStore) Close() error {
	return s.db.Close()
}

func unixFromTime(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

func timeFromUnix(f float64) time.Time {
	sec := int64(f)
	nsec := int64((f - float64(sec)) * 1e9)
	return time.Unix(sec, nsec)
}
