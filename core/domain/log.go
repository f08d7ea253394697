// ABOUTME: Run log domain model: leveled entries with a fixed textual layout
// ABOUTME: Render produces the exact line format stored in the log file

package domain

import (
	"fmt"
	"time"
)

// LogLevel classifies a run log entry
type LogLevel string

const (
	LogLevelInfo  LogLevel = "INFO"
	LogLevelError LogLevel = "ERROR"
)

// LogEntry is one timestamped record in the run log
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Message   string
}

// Render formats the entry as a single log line:
// [2006-01-02 15:04:05] LEVEL message
func (e LogEntry) Render() string {
	return fmt.Sprintf("[%s] %s %s", e.Timestamp.Format("2006-01-02 15:04:05"), e.Level, e.Message)
}
