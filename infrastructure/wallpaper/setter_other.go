//go:build !windows && !linux && !darwin

// ABOUTME: Fallback wallpaper setter for platforms without a backend
// ABOUTME: Always reports the platform as unsupported

package wallpaper

import (
	"context"
	"fmt"
	"runtime"
)

// Setter reports wallpaper application as unsupported on this platform
type Setter struct{}

// NewSetter creates the fallback setter
func NewSetter() *Setter {
	return &Setter{}
}

// Name returns the setter's platform name
func (s *Setter) Name() string {
	return "unsupported"
}

// Set always fails; no wallpaper backend exists for this platform
func (s *Setter) Set(ctx context.Context, path string) error {
	return fmt.Errorf("setting the desktop wallpaper is not supported on %s", runtime.GOOS)
}
