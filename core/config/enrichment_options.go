// ABOUTME: Enrichment configuration for optional run result decoration
// ABOUTME: Controls page metadata and accent color extraction independently

package config

// EnrichmentConfig controls which enrichment features run after the
// wallpaper is applied. Enrichment is best effort and never fails a run.
type EnrichmentConfig struct {
	// ExtractMetadata controls whether page title and description are
	// attached to the run result
	ExtractMetadata bool

	// ExtractColors controls whether the image's dominant color is
	// attached to the run result
	ExtractColors bool
}

// DefaultEnrichmentConfig returns the default configuration with all features enabled
func DefaultEnrichmentConfig() EnrichmentConfig {
	return EnrichmentConfig{
		ExtractMetadata: true,
		ExtractColors:   true,
	}
}

// Any reports whether at least one enrichment feature is enabled
func (c EnrichmentConfig) Any() bool {
	return c.ExtractMetadata || c.ExtractColors
}

// EnrichmentOption is a functional option for configuring enrichment
type EnrichmentOption func(*EnrichmentConfig)

// WithMetadata enables or disables metadata extraction
func WithMetadata(enabled bool) EnrichmentOption {
	return func(c *EnrichmentConfig) {
		c.ExtractMetadata = enabled
	}
}

// WithColors enables or disables color extraction
func WithColors(enabled bool) EnrichmentOption {
	return func(c *EnrichmentConfig) {
		c.ExtractColors = enabled
	}
}

// WithoutMetadata disables metadata extraction
func WithoutMetadata() EnrichmentOption {
	return WithMetadata(false)
}

// WithoutColors disables color extraction
func WithoutColors() EnrichmentOption {
	return WithColors(false)
}

// NewEnrichmentConfig creates a new enrichment configuration with the given options
func NewEnrichmentConfig(opts ...EnrichmentOption) EnrichmentConfig {
	config := DefaultEnrichmentConfig()

	for _, opt := range opts {
		opt(&config)
	}

	return config
}
