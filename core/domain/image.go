// ABOUTME: Image domain models for the fetch/resize/persist/apply pipeline
// ABOUTME: Defines the image reference, the decoded bitmap and the stored file record

package domain

import (
	"image"
	"net/url"
	"path"
	"strings"
	"time"
)

// ImageReference points at the image selected from the source page or feed.
// It is produced by an image source and consumed immediately by the acquirer.
type ImageReference struct {
	// URL is the absolute URL of the image
	URL string
}

// Filename derives the target file name from the last URL path segment.
// Returns an empty string when the URL has no usable base name; callers
// fall back to a deterministic default in that case.
func (r ImageReference) Filename() string {
	u, err := url.Parse(r.URL)
	if err != nil {
		return ""
	}
	if strings.HasSuffix(u.Path, "/") {
		return ""
	}

	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return ""
	}
	return name
}

// DecodedImage is an in-memory bitmap owned by a single pipeline run.
// Raw holds the downloaded bytes so that an image already within bounds
// can be persisted verbatim, byte for byte.
type DecodedImage struct {
	// Image is the decoded bitmap
	Image image.Image

	// Width and Height are the bitmap dimensions after any downscale
	Width  int
	Height int

	// Format is the detected source format ("jpeg", "png", "gif", "webp", "bmp")
	Format string

	// Raw is the original downloaded payload, unchanged
	Raw []byte

	// Resized reports whether the bitmap was downscaled to fit the bounds
	Resized bool
}

// StoredImageFile records where a run persisted its image.
type StoredImageFile struct {
	// Path is the absolute or configured-directory-relative file path
	Path string

	// CreatedAt is when the file was written
	CreatedAt time.Time
}
