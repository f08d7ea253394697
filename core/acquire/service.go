// ABOUTME: Image acquirer downloads image bytes and bounds them to the target size
// ABOUTME: Images already within bounds keep their original bytes for verbatim saves

package acquire

import (
	"bytes"
	"context"
	"errors"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"time"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp" // WebP support

	"iotd-wallpaper/core/domain"
	coreerrors "iotd-wallpaper/core/errors"
	"iotd-wallpaper/core/interfaces"
)

const (
	// MaxWidth and MaxHeight bound the stored wallpaper dimensions
	MaxWidth  = 3840
	MaxHeight = 2160
)

// downloadCacheTTL keeps downloaded bytes around long enough for the
// enrichment pass to reuse them without a second request
const downloadCacheTTL = 1 * time.Hour

// maxDownloadBytes caps how much of the image payload is read into memory
const maxDownloadBytes = 64 << 20

// Service downloads and decodes images, downscaling them to the bounds
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates an image acquirer
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{deps: deps}
}

// CacheKey returns the cache key holding downloaded bytes for a URL
func CacheKey(url string) string {
	return "imagebytes:" + url
}

// Download retrieves the raw image bytes and caches them for reuse
func (s *Service) Download(ctx context.Context, ref domain.ImageReference) ([]byte, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, ref.URL)
	if err != nil {
		return nil, &coreerrors.DownloadError{URL: ref.URL, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.DownloadError{URL: ref.URL, StatusCode: resp.StatusCode()}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body(), maxDownloadBytes))
	if err != nil {
		return nil, &coreerrors.DownloadError{URL: ref.URL, Err: err}
	}
	if len(data) == 0 {
		return nil, &coreerrors.DownloadError{URL: ref.URL, Err: errors.New("empty response body")}
	}

	if s.deps.Cache != nil {
		_ = s.deps.Cache.Set(ctx, CacheKey(ref.URL), data, downloadCacheTTL)
	}

	s.deps.Logger.Debug("Downloaded image", map[string]interface{}{
		"url":   ref.URL,
		"bytes": len(data),
	})

	return data, nil
}

// DecodeAndFit decodes data and downscales the bitmap so it fits inside
// MaxWidth x MaxHeight, preserving aspect ratio. Images already within
// bounds are returned as decoded, with Raw untouched and Resized false.
// Images are never upscaled.
func (s *Service) DecodeAndFit(ctx context.Context, ref domain.ImageReference, data []byte) (*domain.DecodedImage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &coreerrors.DecodeError{URL: ref.URL, Err: err}
	}

	bounds := img.Bounds()
	decoded := &domain.DecodedImage{
		Image:  img,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Format: format,
		Raw:    data,
	}

	if decoded.Width <= MaxWidth && decoded.Height <= MaxHeight {
		return decoded, nil
	}

	fitted := imaging.Fit(img, MaxWidth, MaxHeight, imaging.Lanczos)
	fittedBounds := fitted.Bounds()

	s.deps.Logger.Debug("Downscaled image to bounds", map[string]interface{}{
		"url":         ref.URL,
		"from_width":  decoded.Width,
		"from_height": decoded.Height,
		"to_width":    fittedBounds.Dx(),
		"to_height":   fittedBounds.Dy(),
	})

	decoded.Image = fitted
	decoded.Width = fittedBounds.Dx()
	decoded.Height = fittedBounds.Dy()
	decoded.Resized = true

	return decoded, nil
}

// Acquire composes Download and DecodeAndFit
func (s *Service) Acquire(ctx context.Context, ref domain.ImageReference) (*domain.DecodedImage, error) {
	data, err := s.Download(ctx, ref)
	if err != nil {
		return nil, err
	}
	return s.DecodeAndFit(ctx, ref, data)
}
