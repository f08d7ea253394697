// ABOUTME: Journal interface for persisting run log entries
// ABOUTME: Defines the contract for the newest-first run log

package interfaces

import (
	"context"

	"iotd-wallpaper/core/domain"
)

// RunJournal persists run log entries so that the most recent entry
// reads first. Implementations own the log file layout.
type RunJournal interface {
	// Record appends a timestamped entry to the head of the journal
	Record(ctx context.Context, level domain.LogLevel, message string) error
}
