package pipeline

import (
	"context"
	"strings"

	"iotd-wallpaper/core/domain"
)

// mockSource is a mock implementation of the ImageSource interface
type mockSource struct {
	resolveFunc func(ctx context.Context) (domain.ImageReference, error)
}

func (m *mockSource) Resolve(ctx context.Context) (domain.ImageReference, error) {
	if m.resolveFunc != nil {
		return m.resolveFunc(ctx)
	}
	return domain.ImageReference{}, nil
}

// mockAcquirer is a mock implementation of the ImageAcquirer interface
type mockAcquirer struct {
	downloadFunc     func(ctx context.Context, ref domain.ImageReference) ([]byte, error)
	decodeAndFitFunc func(ctx context.Context, ref domain.ImageReference, data []byte) (*domain.DecodedImage, error)
	acquireFunc      func(ctx context.Context, ref domain.ImageReference) (*domain.DecodedImage, error)
}

func (m *mockAcquirer) Download(ctx context.Context, ref domain.ImageReference) ([]byte, error) {
	if m.downloadFunc != nil {
		return m.downloadFunc(ctx, ref)
	}
	return nil, nil
}

func (m *mockAcquirer) DecodeAndFit(ctx context.Context, ref domain.ImageReference, data []byte) (*domain.DecodedImage, error) {
	if m.decodeAndFitFunc != nil {
		return m.decodeAndFitFunc(ctx, ref, data)
	}
	return &domain.DecodedImage{Raw: data}, nil
}

func (m *mockAcquirer) Acquire(ctx context.Context, ref domain.ImageReference) (*domain.DecodedImage, error) {
	if m.acquireFunc != nil {
		return m.acquireFunc(ctx, ref)
	}
	return nil, nil
}

// mockStore is a mock implementation of the ImageStore interface
type mockStore struct {
	persistFunc      func(ctx context.Context, img *domain.DecodedImage, ref domain.ImageReference, cfg domain.RunConfig) (*domain.StoredImageFile, error)
	existingPathFunc func(ref domain.ImageReference, cfg domain.RunConfig) (string, bool)
	cleanupFunc      func(ctx context.Context, keepPath string, cfg domain.RunConfig)
}

func (m *mockStore) Persist(ctx context.Context, img *domain.DecodedImage, ref domain.ImageReference, cfg domain.RunConfig) (*domain.StoredImageFile, error) {
	if m.persistFunc != nil {
		return m.persistFunc(ctx, img, ref, cfg)
	}
	return &domain.StoredImageFile{}, nil
}

func (m *mockStore) ExistingPath(ref domain.ImageReference, cfg domain.RunConfig) (string, bool) {
	if m.existingPathFunc != nil {
		return m.existingPathFunc(ref, cfg)
	}
	return "", false
}

func (m *mockStore) CleanupHistory(ctx context.Context, keepPath string, cfg domain.RunConfig) {
	if m.cleanupFunc != nil {
		m.cleanupFunc(ctx, keepPath, cfg)
	}
}

// mockApplier is a mock implementation of the WallpaperApplier interface
type mockApplier struct {
	applyFunc func(ctx context.Context, img *domain.DecodedImage) error
}

func (m *mockApplier) Apply(ctx context.Context, img *domain.DecodedImage) error {
	if m.applyFunc != nil {
		return m.applyFunc(ctx, img)
	}
	return nil
}

// mockMetadata is a mock implementation of the MetadataService interface
type mockMetadata struct {
	extractFunc func(ctx context.Context, url string) (*domain.PageMetadata, error)
}

func (m *mockMetadata) ExtractMetadata(ctx context.Context, url string) (*domain.PageMetadata, error) {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, url)
	}
	return nil, nil
}

// mockColors is a mock implementation of the AccentColorService interface
type mockColors struct {
	extractFunc func(ctx context.Context, imageURL string) (*domain.RGBColor, error)
}

func (m *mockColors) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, imageURL)
	}
	return nil, nil
}

// recordingJournal captures run log entries in order
type recordingJournal struct {
	entries []journalEntry
	err     error
}

type journalEntry struct {
	level   domain.LogLevel
	message string
}

func (j *recordingJournal) Record(ctx context.Context, level domain.LogLevel, message string) error {
	if j.err != nil {
		return j.err
	}
	j.entries = append(j.entries, journalEntry{level: level, message: message})
	return nil
}

func (j *recordingJournal) errorCount() int {
	n := 0
	for _, e := range j.entries {
		if e.level == domain.LogLevelError {
			n++
		}
	}
	return n
}

func (j *recordingJournal) contains(substr string) bool {
	for _, e := range j.entries {
		if strings.Contains(e.message, substr) {
			return true
		}
	}
	return false
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
