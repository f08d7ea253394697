// ABOUTME: File journal implementation writing the prepend-style run log
// ABOUTME: Newest entries sit at the top of iotdLog.log

package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"iotd-wallpaper/core/domain"
)

// LogFileName is the run log file created inside the log directory.
const LogFileName = "iotdLog.log"

// FileJournal implements the RunJournal interface on a plain text file.
// Entries are prepended so the newest line reads first.
type FileJournal struct {
	path string
}

// NewFileJournal creates a journal writing to <logDir>/iotdLog.log
func NewFileJournal(logDir string) *FileJournal {
	return &FileJournal{
		path: filepath.Join(logDir, LogFileName),
	}
}

// Path returns the journal file location
func (j *FileJournal) Path() string {
	return j.path
}

// Record renders one entry and prepends it to the log file, creating the
// file and its parent directory as needed. Cost is O(file size) per call.
func (j *FileJournal) Record(ctx context.Context, level domain.LogLevel, message string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	entry := domain.LogEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
	}

	if err := os.MkdirAll(filepath.Dir(j.path), 0o755); err != nil {
		return fmt.Errorf("create log directory: %w", err)
	}

	existing, err := os.ReadFile(j.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("read log file: %w", err)
	}

	content := append([]byte(entry.Render()+"\n"), existing...)

	if err := os.WriteFile(j.path, content, 0o644); err != nil {
		return fmt.Errorf("write log file: %w", err)
	}

	return nil
}
