package store

import (
	"context"
	"time"
)

// Run is one processed meeting.
type Run struct {
	ID          string
	Source      string
	Transcriber string
	Summarizer  string
	Placeholder bool
	Summary     string
	ActionItems int
	OutputPath  string
	Duration    time.Duration
	CreatedAt   time.Time
}

// Store keeps the history of processed meetings.
type Store interface {
	// SaveRun assigns an ID and creation time when they are empty.
	SaveRun(ctx context.Context, run Run) (Run, error)
	// RecentRuns returns the newest runs first.
	RecentRuns(ctx context.Context, limit int) ([]Run, error)
	Close() error
}
