//go:build windows

// ABOUTME: Windows wallpaper setter using the user32 SystemParametersInfoW call
// ABOUTME: Updates the user profile and broadcasts the change to the desktop

package wallpaper

import (
	"context"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	spiSetDeskWallpaper = 0x0014
	spifUpdateINIFile   = 0x01
	spifSendChange      = 0x02
)

var (
	user32                   = windows.NewLazySystemDLL("user32.dll")
	procSystemParametersInfo = user32.NewProc("SystemParametersInfoW")
)

// Setter applies the wallpaper through the Win32 user32 API
type Setter struct{}

// NewSetter creates the Windows wallpaper setter
func NewSetter() *Setter {
	return &Setter{}
}

// Name returns the setter's platform name
func (s *Setter) Name() string {
	return "windows"
}

// Set points the desktop wallpaper at the given image file
func (s *Setter) Set(ctx context.Context, path string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	pathPtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return fmt.Errorf("encode wallpaper path: %w", err)
	}

	ret, _, callErr := procSystemParametersInfo.Call(
		uintptr(spiSetDeskWallpaper),
		0,
		uintptr(unsafe.Pointer(pathPtr)),
		uintptr(spifUpdateINIFile|spifSendChange),
	)
	if ret == 0 {
		return fmt.Errorf("SystemParametersInfoW failed: %w", callErr)
	}

	return nil
}
