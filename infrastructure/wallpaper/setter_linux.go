//go:build linux

// ABOUTME: Linux wallpaper setter driving GNOME through gsettings
// ABOUTME: Sets both the light and dark picture-uri keys

package wallpaper

import (
	"context"
	"net/url"
)

const backgroundSchema = "org.gnome.desktop.background"

// Setter applies the wallpaper through gsettings
type Setter struct{}

// NewSetter creates the GNOME wallpaper setter
func NewSetter() *Setter {
	return &Setter{}
}

// Name returns the setter's platform name
func (s *Setter) Name() string {
	return "gnome"
}

// Set points the desktop wallpaper at the given image file
func (s *Setter) Set(ctx context.Context, path string) error {
	uri := fileURI(path)

	if err := runCommand(ctx, "gsettings", "set", backgroundSchema, "picture-uri", uri); err != nil {
		return err
	}

	// The dark key is absent on older GNOME; failure there is not fatal
	_ = runCommand(ctx, "gsettings", "set", backgroundSchema, "picture-uri-dark", uri)

	return nil
}

// fileURI converts an absolute path to a file:// URI
func fileURI(path string) string {
	u := url.URL{Scheme: "file", Path: path}
	return u.String()
}
