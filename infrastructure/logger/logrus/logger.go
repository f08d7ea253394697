// ABOUTME: Console logger implementation backed by sirupsen/logrus
// ABOUTME: Maps the structured fields of the Logger interface onto logrus fields

package logrus

import (
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// ConsoleLogger implements the Logger interface using logrus
type ConsoleLogger struct {
	logger *log.Logger
}

// NewConsoleLogger creates a console logger at the given level.
// Unrecognized level names fall back to info.
func NewConsoleLogger(level string) *ConsoleLogger {
	logger := log.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&log.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(parseLevel(level))

	return &ConsoleLogger{logger: logger}
}

// parseLevel maps a level name onto a logrus level
func parseLevel(level string) log.Level {
	switch strings.ToLower(level) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// Debug logs a debug message
func (l *ConsoleLogger) Debug(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Debug(msg)
}

// Info logs an info message
func (l *ConsoleLogger) Info(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Info(msg)
}

// Warn logs a warning message
func (l *ConsoleLogger) Warn(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Warn(msg)
}

// Error logs an error message
func (l *ConsoleLogger) Error(msg string, fields map[string]interface{}) {
	l.logger.WithFields(log.Fields(fields)).Error(msg)
}
