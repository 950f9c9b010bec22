package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/nguyentantai21042004/meeting-minutes/internal/logger"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
	seen  chan string
}

func newRecorder() *recorder {
	return &recorder{seen: make(chan string, 16)}
}

func (r *recorder) handle(_ context.Context, path string) error {
	r.mu.Lock()
	r.paths = append(r.paths, path)
	r.mu.Unlock()
	r.seen <- path
	return nil
}

func waitFor(t *testing.T, r *recorder, want string) {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case got := <-r.seen:
			if got == want {
				return
			}
			t.Errorf("handled unexpected file %s", got)
		case <-deadline:
			t.Fatalf("timed out waiting for %s", want)
		}
	}
}

func startWatcher(t *testing.T, dir string, r *recorder) context.CancelFunc {
	t.Helper()

	w, err := New(dir, r.handle, logger.Nop(), 2)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	w.(*implWatcher).settle = 10 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	t.Cleanup(func() {
		cancel()
		if err := <-done; !errors.Is(err, context.Canceled) {
			t.Errorf("Start() error = %v, want context.Canceled", err)
		}
		w.Stop()
	})
	return cancel
}

func TestNewMissingDir(t *testing.T) {
	if _, err := New(filepath.Join(t.TempDir(), "missing"), newRecorder().handle, logger.Nop(), 1); err == nil {
		t.Error("New() on a missing dir should fail")
	}
}

func TestWatcherHandlesNewMeetingFiles(t *testing.T) {
	dir := t.TempDir()
	r := newRecorder()
	startWatcher(t, dir, r)

	// Give the event loop a moment to start reading.
	time.Sleep(50 * time.Millisecond)

	if err := os.WriteFile(filepath.Join(dir, "slides.pdf"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(dir, "standup.txt")
	if err := os.WriteFile(want, []byte("We met."), 0644); err != nil {
		t.Fatal(err)
	}

	waitFor(t, r, want)
}

func TestWatcherPicksUpPendingFiles(t *testing.T) {
	dir := t.TempDir()
	pending := filepath.Join(dir, "yesterday.wav")
	if err := os.WriteFile(pending, []byte("RIFF"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "readme.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	r := newRecorder()
	startWatcher(t, dir, r)

	waitFor(t, r, pending)
}

func TestClaim(t *testing.T) {
	w := &implWatcher{}

	if !w.claim("a.wav") {
		t.Fatal("first claim should succeed")
	}
	if w.claim("a.wav") {
		t.Error("second claim of an in-flight file should fail")
	}
	w.unclaim("a.wav")
	if !w.claim("a.wav") {
		t.Error("claim after unclaim should succeed")
	}
}
