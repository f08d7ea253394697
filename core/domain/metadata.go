// ABOUTME: Enrichment domain models: page metadata and the dominant image color
// ABOUTME: Both are best-effort values attached to a run result when available

package domain

import "fmt"

// PageMetadata holds descriptive fields extracted from the source page
type PageMetadata struct {
	// Title is the page or Open Graph title
	Title string

	// Description is the page or Open Graph description
	Description string
}

// RGBColor represents an RGB color value
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the color as a lowercase #rrggbb string
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
