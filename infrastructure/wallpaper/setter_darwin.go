//go:build darwin

// ABOUTME: macOS wallpaper setter driving System Events through osascript
// ABOUTME: Applies the image to every desktop

package wallpaper

import (
	"context"
	"fmt"
)

// Setter applies the wallpaper through AppleScript
type Setter struct{}

// NewSetter creates the macOS wallpaper setter
func NewSetter() *Setter {
	return &Setter{}
}

// Name returns the setter's platform name
func (s *Setter) Name() string {
	return "macos"
}

// Set points the desktop wallpaper at the given image file
func (s *Setter) Set(ctx context.Context, path string) error {
	script := fmt.Sprintf(
		`tell application "System Events" to tell every desktop to set picture to POSIX file %q`,
		path,
	)
	return runCommand(ctx, "osascript", "-e", script)
}
