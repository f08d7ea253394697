// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the pipeline

package interfaces

import (
	"context"

	"iotd-wallpaper/core/domain"
)

// ImageSource locates today's image and returns an absolute reference to it
type ImageSource interface {
	Resolve(ctx context.Context) (domain.ImageReference, error)
}

// ImageAcquirer downloads image bytes and decodes them into a bounded bitmap
type ImageAcquirer interface {
	// Download retrieves the raw image bytes
	Download(ctx context.Context, ref domain.ImageReference) ([]byte, error)

	// DecodeAndFit decodes data and downscales it to the configured bounds.
	// Images already within bounds keep their original bytes untouched.
	DecodeAndFit(ctx context.Context, ref domain.ImageReference, data []byte) (*domain.DecodedImage, error)

	// Acquire composes Download and DecodeAndFit
	Acquire(ctx context.Context, ref domain.ImageReference) (*domain.DecodedImage, error)
}

// ImageStore persists decoded images and manages saved history
type ImageStore interface {
	// Persist writes the image under the configured save directory and,
	// unless history is kept, removes previously saved images
	Persist(ctx context.Context, img *domain.DecodedImage, ref domain.ImageReference, cfg domain.RunConfig) (*domain.StoredImageFile, error)

	// ExistingPath reports the path a reference would be saved to and
	// whether a file already exists there
	ExistingPath(ref domain.ImageReference, cfg domain.RunConfig) (string, bool)

	// CleanupHistory removes saved images other than keepPath.
	// Failures are reported but never abort the run.
	CleanupHistory(ctx context.Context, keepPath string, cfg domain.RunConfig)
}

// WallpaperApplier converts a decoded image for the platform and sets it
// as the desktop wallpaper
type WallpaperApplier interface {
	Apply(ctx context.Context, img *domain.DecodedImage) error
}

// MetadataService extracts descriptive metadata from web pages
type MetadataService interface {
	ExtractMetadata(ctx context.Context, url string) (*domain.PageMetadata, error)
}

// AccentColorService extracts the dominant color from images
type AccentColorService interface {
	ExtractColor(ctx context.Context, imageURL string) (*domain.RGBColor, error)
}
