// ABOUTME: Wallpaper applier converts the decoded image to BMP and hands it
// ABOUTME: to the platform setter. The BMP lives at a fixed temp path.

package wallpaper

import (
	"context"
	"errors"
	"image"
	"image/draw"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"

	"iotd-wallpaper/core/domain"
	coreerrors "iotd-wallpaper/core/errors"
	"iotd-wallpaper/core/interfaces"
)

// bmpFilename is the fixed name of the converted wallpaper. It is
// overwritten on every run and must outlive the process: some platforms
// keep a pointer to the file rather than copying it.
const bmpFilename = "iotd_wallpaper.bmp"

// Service converts images to BMP and applies them via the platform setter
type Service struct {
	deps   interfaces.Dependencies
	setter interfaces.WallpaperSetter
	tmpDir string
}

// NewService creates a wallpaper applier backed by the given setter
func NewService(deps interfaces.Dependencies, setter interfaces.WallpaperSetter) *Service {
	return &Service{
		deps:   deps,
		setter: setter,
		tmpDir: os.TempDir(),
	}
}

// Apply writes img as BMP to the fixed temp path and sets it as the
// desktop wallpaper.
func (s *Service) Apply(ctx context.Context, img *domain.DecodedImage) error {
	if img == nil || img.Image == nil {
		return &coreerrors.WallpaperError{Op: "convert", Err: errors.New("no decoded image")}
	}
	if s.setter == nil {
		return &coreerrors.WallpaperError{Op: "apply", Err: errors.New("no wallpaper setter configured")}
	}

	bmpPath := filepath.Join(s.tmpDir, bmpFilename)
	if err := s.writeBMP(bmpPath, img.Image); err != nil {
		return err
	}

	s.deps.Logger.Debug("Converted image to BMP", map[string]interface{}{
		"path":   bmpPath,
		"setter": s.setter.Name(),
	})

	if err := s.setter.Set(ctx, bmpPath); err != nil {
		return &coreerrors.WallpaperError{Op: "apply", Err: err}
	}

	return nil
}

// writeBMP normalizes the bitmap to NRGBA and encodes it at path.
// A partial file left by a failed encode is removed.
func (s *Service) writeBMP(path string, img image.Image) error {
	bounds := img.Bounds()
	normalized := image.NewNRGBA(bounds)
	draw.Draw(normalized, bounds, img, bounds.Min, draw.Src)

	f, err := os.Create(path)
	if err != nil {
		return &coreerrors.WallpaperError{Op: "convert", Err: err}
	}

	if err := bmp.Encode(f, normalized); err != nil {
		f.Close()
		os.Remove(path)
		return &coreerrors.WallpaperError{Op: "convert", Err: err}
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return &coreerrors.WallpaperError{Op: "convert", Err: err}
	}

	return nil
}
