package wallpaper

import "context"

// mockSetter is a mock implementation of the WallpaperSetter interface
type mockSetter struct {
	setFunc func(ctx context.Context, path string) error
	name    string
}

func (m *mockSetter) Set(ctx context.Context, path string) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, path)
	}
	return nil
}

func (m *mockSetter) Name() string {
	if m.name != "" {
		return m.name
	}
	return "mock"
}

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
