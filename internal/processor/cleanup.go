package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// moveToArchived moves a processed input into the archived folder. An
// existing file of the same name gets a timestamp suffix instead of being
// overwritten.
func (p *implProcessor) moveToArchived(ctx context.Context, path string) error {
	dir := p.cfg.Paths.Archived
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create archived dir: %w", err)
	}

	dest := filepath.Join(dir, filepath.Base(path))
	if _, err := os.Stat(dest); err == nil {
		ext := filepath.Ext(dest)
		dest = fmt.Sprintf("%s-%s%s", strings.TrimSuffix(dest, ext), time.Now().Format("20060102-150405"), ext)
	}

	p.logger.Info(ctx, "Archiving: %s -> %s", path, dest)

	if err := os.Rename(path, dest); err != nil {
		// Rename fails across devices; copy instead.
		if err := copyFile(path, dest); err != nil {
			return fmt.Errorf("archive input: %w", err)
		}
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove archived input: %w", err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	if err := os.WriteFile(dst, data, 0644); err != nil {
		return fmt.Errorf("write destination: %w", err)
	}
	return nil
}
