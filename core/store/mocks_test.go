package store

import (
	"context"

	"iotd-wallpaper/core/domain"
)

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	infoFunc  func(msg string, fields map[string]interface{})
	warnFunc  func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}

// mockJournal is a mock implementation of the RunJournal interface
type mockJournal struct {
	recordFunc func(ctx context.Context, level domain.LogLevel, message string) error
}

func (m *mockJournal) Record(ctx context.Context, level domain.LogLevel, message string) error {
	if m.recordFunc != nil {
		return m.recordFunc(ctx, level, message)
	}
	return nil
}
