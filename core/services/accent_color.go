// ABOUTME: Accent color extraction service for the applied wallpaper image
// ABOUTME: Uses K-means clustering to find the most prominent color

package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/url"
	"strings"
	"time"

	"github.com/EdlinOrg/prominentcolor"
	_ "golang.org/x/image/webp" // WebP support

	"iotd-wallpaper/core/acquire"
	"iotd-wallpaper/core/domain"
	"iotd-wallpaper/core/interfaces"
)

const (
	defaultColorValue    = 128
	defaultColorCacheTTL = 24 * time.Hour
	colorBodyLimit       = 32 << 20
)

// AccentColorService handles color extraction from images
type AccentColorService struct {
	deps     interfaces.Dependencies
	cacheTTL time.Duration
}

// NewAccentColorService creates a new accent color service
func NewAccentColorService(deps interfaces.Dependencies) *AccentColorService {
	return &AccentColorService{
		deps:     deps,
		cacheTTL: defaultColorCacheTTL,
	}
}

// ExtractColor extracts the prominent color from an image URL.
// Extraction failures degrade to a neutral gray rather than an error.
func (s *AccentColorService) ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error) {
	if imageURL == "" {
		return s.defaultColor(), nil
	}

	// Check cache first
	if s.deps.Cache != nil {
		cacheKey := fmt.Sprintf("accentColor:%s", imageURL)
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var color domain.RGBColor
			// Simple parsing - assumes format "R,G,B"
			if _, err := fmt.Sscanf(string(data), "%d,%d,%d", &color.R, &color.G, &color.B); err == nil {
				return &color, nil
			}
		}
	}

	color, err := s.extractColorFromURL(ctx, imageURL)
	if err != nil {
		s.deps.Logger.Debug("Failed to extract accent color", map[string]interface{}{
			"url":   imageURL,
			"error": err.Error(),
		})
		color = s.defaultColor()
	}

	if color == nil {
		color = s.defaultColor()
	}

	// Cache the result
	if s.deps.Cache != nil {
		cacheKey := fmt.Sprintf("accentColor:%s", imageURL)
		cacheData := fmt.Sprintf("%d,%d,%d", color.R, color.G, color.B)
		_ = s.deps.Cache.Set(ctx, cacheKey, []byte(cacheData), s.cacheTTL)
	}

	return color, nil
}

// extractColorFromURL obtains the image bytes and runs color extraction
func (s *AccentColorService) extractColorFromURL(ctx context.Context, imageURL string) (color *domain.RGBColor, err error) {
	// The clustering library can panic on degenerate images
	defer func() {
		if rec := recover(); rec != nil {
			s.deps.Logger.Debug("Recovered from panic in color extraction", map[string]interface{}{
				"url":   imageURL,
				"panic": fmt.Sprintf("%v", rec),
			})
			color = s.defaultColor()
			err = fmt.Errorf("panic recovered: %v", rec)
		}
	}()

	parsedURL, parseErr := url.Parse(imageURL)
	if parseErr != nil || parsedURL.Scheme == "" || parsedURL.Host == "" {
		return nil, fmt.Errorf("invalid image URL: %s", imageURL)
	}

	// SVG files cannot be decoded as raster images
	if strings.HasSuffix(strings.ToLower(parsedURL.Path), ".svg") {
		return nil, fmt.Errorf("SVG images are not supported")
	}

	data, err := s.imageBytes(ctx, imageURL)
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return s.extractFromImage(imageURL, img)
}

// imageBytes reuses the bytes the acquirer downloaded during the run,
// falling back to a fresh download on a cache miss.
func (s *AccentColorService) imageBytes(ctx context.Context, imageURL string) ([]byte, error) {
	if s.deps.Cache != nil {
		if data, err := s.deps.Cache.Get(ctx, acquire.CacheKey(imageURL)); err == nil && len(data) > 0 {
			return data, nil
		}
	}

	if s.deps.HTTPClient == nil {
		return nil, fmt.Errorf("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, imageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download image: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode())
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body(), colorBodyLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to read image body: %w", err)
	}
	return data, nil
}

// extractFromImage runs K-means clustering over the bitmap
func (s *AccentColorService) extractFromImage(imageURL string, img image.Image) (*domain.RGBColor, error) {
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image has empty bounds")
	}

	imgNRGBA := image.NewNRGBA(bounds)
	draw.Draw(imgNRGBA, bounds, img, bounds.Min, draw.Src)

	// Try to extract color with masks first
	colors, err := prominentcolor.KmeansWithAll(
		prominentcolor.ArgumentDefault,
		imgNRGBA,
		prominentcolor.DefaultK,
		1,
		prominentcolor.GetDefaultMasks(),
	)

	// If no colors found or error, try without masks
	if err != nil || len(colors) == 0 {
		s.deps.Logger.Debug("Retrying color extraction without masks", map[string]interface{}{
			"url":   imageURL,
			"error": err,
		})

		colors, err = prominentcolor.KmeansWithAll(
			prominentcolor.ArgumentDefault,
			imgNRGBA,
			prominentcolor.DefaultK,
			1,
			nil,
		)

		if err != nil || len(colors) == 0 {
			return nil, fmt.Errorf("no colors extracted from image")
		}
	}

	return &domain.RGBColor{
		R: uint8(colors[0].Color.R),
		G: uint8(colors[0].Color.G),
		B: uint8(colors[0].Color.B),
	}, nil
}

// defaultColor returns the default gray color
func (s *AccentColorService) defaultColor() *domain.RGBColor {
	return &domain.RGBColor{
		R: defaultColorValue,
		G: defaultColorValue,
		B: defaultColorValue,
	}
}
