package watcher

import "context"

// Watcher monitors the input folder for meeting files.
type Watcher interface {
	// Start handles files already in the folder, then new ones, until ctx is
	// done. It waits for running handlers before returning.
	Start(ctx context.Context) error
	Stop() error
}

// EventHandler processes one meeting file.
type EventHandler func(ctx context.Context, filePath string) error
