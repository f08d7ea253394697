// ABOUTME: Custom error types for the wallpaper pipeline
// ABOUTME: Each pipeline stage failure maps to one structured error kind

package errors

import (
	"errors"
	"fmt"
)

// FetchError represents a failure to retrieve or read the source page or feed
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetch failed for %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetch failed for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error
func (e *FetchError) Unwrap() error {
	return e.Err
}

// ParseError represents a failure to locate the image in retrieved content
type ParseError struct {
	URL    string
	Reason string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse failed for %s: %s", e.URL, e.Reason)
}

// DownloadError represents a failure to retrieve the image bytes
type DownloadError struct {
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *DownloadError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("download failed for %s: status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("download failed for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error
func (e *DownloadError) Unwrap() error {
	return e.Err
}

// DecodeError represents image bytes that could not be decoded
type DecodeError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode failed for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// IOError represents a filesystem failure while persisting or logging
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface
func (e *IOError) Error() string {
	return fmt.Sprintf("%s failed for %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error
func (e *IOError) Unwrap() error {
	return e.Err
}

// WallpaperError represents a failure to apply the image as wallpaper
type WallpaperError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *WallpaperError) Error() string {
	return fmt.Sprintf("wallpaper %s failed: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *WallpaperError) Unwrap() error {
	return e.Err
}

// IsFetch checks if an error is a FetchError
func IsFetch(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsDownload checks if an error is a DownloadError
func IsDownload(err error) bool {
	var downloadErr *DownloadError
	return errors.As(err, &downloadErr)
}

// IsDecode checks if an error is a DecodeError
func IsDecode(err error) bool {
	var decodeErr *DecodeError
	return errors.As(err, &decodeErr)
}

// IsIO checks if an error is an IOError
func IsIO(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

// IsWallpaper checks if an error is a WallpaperError
func IsWallpaper(err error) bool {
	var wallpaperErr *WallpaperError
	return errors.As(err, &wallpaperErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
