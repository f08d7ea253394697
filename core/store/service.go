// ABOUTME: Image store persists decoded images under the save directory
// ABOUTME: Owns filename derivation, format-preserving encode and history cleanup

package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"iotd-wallpaper/core/domain"
	coreerrors "iotd-wallpaper/core/errors"
	"iotd-wallpaper/core/interfaces"
)

// fallbackFilename is used when the image URL has no usable base name.
// The extension is derived from the decoded format.
const fallbackFilename = "image-of-the-day"

// imageExtensions lists the file extensions cleanup is allowed to delete
var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
}

// Service persists images and manages the saved history
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates an image store
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// Persist writes the image under cfg.SaveDir and, unless history is
// kept, deletes previously saved images. Unresized images are written
// byte for byte from the original download.
func (s *Service) Persist(ctx context.Context, img *domain.DecodedImage, ref domain.ImageReference, cfg domain.RunConfig) (*domain.StoredImageFile, error) {
	if img == nil {
		return nil, errors.New("decoded image cannot be nil")
	}

	if err := os.MkdirAll(cfg.SaveDir, 0o755); err != nil {
		return nil, &coreerrors.IOError{Op: "mkdir", Path: cfg.SaveDir, Err: err}
	}

	filename := s.targetFilename(img, ref)
	path := filepath.Join(cfg.SaveDir, filename)

	data, err := s.encode(img, path)
	if err != nil {
		return nil, err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return nil, &coreerrors.IOError{Op: "write", Path: path, Err: err}
	}

	s.deps.Logger.Debug("Persisted image", map[string]interface{}{
		"path":    path,
		"bytes":   len(data),
		"resized": img.Resized,
	})

	if !cfg.KeepHistory {
		s.CleanupHistory(ctx, path, cfg)
	}

	return &domain.StoredImageFile{Path: path, CreatedAt: time.Now()}, nil
}

// ExistingPath reports the path a reference would be saved to and
// whether a regular file already exists there. The format is unknown
// before download, so the fallback name assumes a JPEG.
func (s *Service) ExistingPath(ref domain.ImageReference, cfg domain.RunConfig) (string, bool) {
	filename := ref.Filename()
	if filename == "" {
		filename = fallbackFilename + ".jpg"
	}

	path := filepath.Join(cfg.SaveDir, filename)
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return path, false
	}
	return path, true
}

// CleanupHistory removes saved images other than keepPath. Only files
// with a known image extension are touched. Failures are logged and
// journaled but never abort the run.
func (s *Service) CleanupHistory(ctx context.Context, keepPath string, cfg domain.RunConfig) {
	entries, err := os.ReadDir(cfg.SaveDir)
	if err != nil {
		s.deps.Logger.Warn("Failed to list save directory for cleanup", map[string]interface{}{
			"dir":   cfg.SaveDir,
			"error": err.Error(),
		})
		s.journalError(ctx, fmt.Sprintf("failed to clean save directory %s: %v", cfg.SaveDir, err))
		return
	}

	keepName := filepath.Base(keepPath)
	for _, entry := range entries {
		if entry.IsDir() || entry.Name() == keepName || !isImageFile(entry.Name()) {
			continue
		}

		path := filepath.Join(cfg.SaveDir, entry.Name())
		if err := os.Remove(path); err != nil {
			s.deps.Logger.Warn("Failed to delete old image", map[string]interface{}{
				"path":  path,
				"error": err.Error(),
			})
			s.journalError(ctx, fmt.Sprintf("failed to delete old image %s: %v", entry.Name(), err))
			continue
		}

		s.deps.Logger.Debug("Deleted old image", map[string]interface{}{"path": path})
	}
}

// targetFilename derives the file name from the reference, falling back
// to a deterministic name keyed on the decoded format. Re-encoded WebP
// images swap their extension to .jpg.
func (s *Service) targetFilename(img *domain.DecodedImage, ref domain.ImageReference) string {
	name := ref.Filename()
	if name == "" {
		name = fallbackFilename + extensionForFormat(img.Format)
	}
	if img.Resized && img.Format == "webp" {
		name = strings.TrimSuffix(name, filepath.Ext(name)) + ".jpg"
	}
	return name
}

// encode produces the bytes to write. Unresized images pass their
// original download through untouched; resized images are re-encoded
// in the source format, except WebP which becomes JPEG.
func (s *Service) encode(img *domain.DecodedImage, path string) ([]byte, error) {
	if !img.Resized {
		return img.Raw, nil
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img.Image, encodeFormat(img.Format)); err != nil {
		return nil, &coreerrors.IOError{Op: "encode", Path: path, Err: err}
	}
	return buf.Bytes(), nil
}

func (s *Service) journalError(ctx context.Context, msg string) {
	if s.deps.Journal == nil {
		return
	}
	_ = s.deps.Journal.Record(ctx, domain.LogLevelError, msg)
}

// encodeFormat maps a decoded format name to an encoder. WebP has no
// encoder here, so resized WebP images are written as JPEG.
func encodeFormat(format string) imaging.Format {
	switch format {
	case "png":
		return imaging.PNG
	case "gif":
		return imaging.GIF
	case "bmp":
		return imaging.BMP
	default:
		return imaging.JPEG
	}
}

func extensionForFormat(format string) string {
	switch format {
	case "png":
		return ".png"
	case "gif":
		return ".gif"
	case "bmp":
		return ".bmp"
	case "webp":
		return ".webp"
	default:
		return ".jpg"
	}
}

func isImageFile(name string) bool {
	return imageExtensions[strings.ToLower(filepath.Ext(name))]
}
