// ABOUTME: Platform wallpaper setter interface
// ABOUTME: Each supported desktop environment provides its own implementation

package interfaces

import "context"

// WallpaperSetter applies an image file as the desktop wallpaper.
// Implementations are platform specific and selected at build time.
type WallpaperSetter interface {
	// Set makes the file at path the current desktop wallpaper.
	// The file is expected to exist and be readable by the desktop session.
	Set(ctx context.Context, path string) error

	// Name identifies the platform mechanism, for log output
	Name() string
}
