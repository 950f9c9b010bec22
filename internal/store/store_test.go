package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "db", "history.sqlite"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveRunAssignsIdentity(t *testing.T) {
	s := openTestStore(t)

	run, err := s.SaveRun(context.Background(), Run{
		Source:      "standup.wav",
		Transcriber: "whisper-cpp",
		Summarizer:  "gemini",
		Summary:     "Revenue increased.",
		ActionItems: 2,
		OutputPath:  "data/output/standup.md",
		Duration:    1500 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("SaveRun() error = %v", err)
	}
	if run.ID == "" {
		t.Error("SaveRun() left ID empty")
	}
	if run.CreatedAt.IsZero() {
		t.Error("SaveRun() left CreatedAt empty")
	}
}

func TestSaveRunDuplicateID(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run := Run{ID: "fixed", Source: "a.txt", Transcriber: "text", Summarizer: "heuristic"}
	if _, err := s.SaveRun(ctx, run); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SaveRun(ctx, run); err == nil {
		t.Error("SaveRun() with a duplicate ID should fail")
	}
}

func TestRecentRuns(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	for i, name := range []string{"monday.wav", "tuesday.wav", "wednesday.txt"} {
		_, err := s.SaveRun(ctx, Run{
			Source:      name,
			Transcriber: "placeholder",
			Summarizer:  "heuristic",
			Placeholder: i == 1,
			Summary:     "s",
			ActionItems: i,
			Duration:    time.Duration(i) * time.Second,
			CreatedAt:   base.Add(time.Duration(i) * time.Hour),
		})
		if err != nil {
			t.Fatal(err)
		}
	}

	tests := []struct {
		name  string
		limit int
		want  []string
	}{
		{"newest first", 2, []string{"wednesday.txt", "tuesday.wav"}},
		{"default limit", 0, []string{"wednesday.txt", "tuesday.wav", "monday.wav"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs, err := s.RecentRuns(ctx, tt.limit)
			if err != nil {
				t.Fatalf("RecentRuns() error = %v", err)
			}
			if len(runs) != len(tt.want) {
				t.Fatalf("RecentRuns() returned %d runs, want %d", len(runs), len(tt.want))
			}
			for i, want := range tt.want {
				if runs[i].Source != want {
					t.Errorf("runs[%d].Source = %q, want %q", i, runs[i].Source, want)
				}
			}
		})
	}

	runs, err := s.RecentRuns(ctx, 3)
	if err != nil {
		t.Fatal(err)
	}
	tuesday := runs[1]
	if !tuesday.Placeholder || tuesday.ActionItems != 1 || tuesday.Duration != time.Second {
		t.Errorf("round trip lost fields: %+v", tuesday)
	}
	if !tuesday.CreatedAt.Equal(base.Add(time.Hour)) {
		t.Errorf("CreatedAt = %v, want %v", tuesday.CreatedAt, base.Add(time.Hour))
	}
}
