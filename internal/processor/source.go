package processor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nguyentantai21042004/meeting-minutes/internal/transcriber"
)

var ErrUnsupportedFile = errors.New("unsupported meeting file")

// sourceFor maps a file to a transcription source: transcripts are read and
// passed inline, recordings are handed over by path.
func sourceFor(path string) (transcriber.Source, error) {
	switch {
	case transcriber.IsTranscriptFile(path):
		data, err := os.ReadFile(path)
		if err != nil {
			return transcriber.Source{}, fmt.Errorf("read transcript: %w", err)
		}
		return transcriber.FromText(string(data)), nil
	case transcriber.IsMediaFile(path):
		return transcriber.FromFile(path), nil
	default:
		return transcriber.Source{}, fmt.Errorf("%w: %s", ErrUnsupportedFile, filepath.Base(path))
	}
}
