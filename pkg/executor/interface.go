package executor

import "context"

// Executor runs external tools (ffmpeg, whisper.cpp) on behalf of the
// transcription backends.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	// LookPath reports where name resolves on PATH, like exec.LookPath.
	LookPath(name string) (string, error)
}
