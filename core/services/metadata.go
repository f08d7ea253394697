// ABOUTME: Metadata extraction service for the source page title and description
// ABOUTME: Scrapes Open Graph tags with colly and falls back to readability

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/gocolly/colly"
	readability "github.com/go-shiori/go-readability"

	"iotd-wallpaper/core/domain"
	"iotd-wallpaper/core/interfaces"
	"iotd-wallpaper/pkg/utils/text"
)

const (
	collyUserAgent      = "facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)"
	metadataCacheTTL    = 24 * time.Hour
	readabilityTimeout  = 30 * time.Second
	metadataBodyLimit   = 5 * 1024 * 1024
	metadataHTTPTimeout = 10 * time.Second
)

// MetadataService handles metadata extraction from the source page
type MetadataService struct {
	deps interfaces.Dependencies
}

// NewMetadataService creates a new metadata service
func NewMetadataService(deps interfaces.Dependencies) *MetadataService {
	return &MetadataService{
		deps: deps,
	}
}

// ExtractMetadata extracts the title and description from a page URL
func (s *MetadataService) ExtractMetadata(ctx context.Context, targetURL string) (*domain.PageMetadata, error) {
	if targetURL == "" || targetURL == "http://" || targetURL == "://" || targetURL == "about:blank" {
		return nil, errors.New("metadata URL cannot be empty")
	}

	// Check cache first
	if s.deps.Cache != nil {
		cacheKey := "metadata:" + targetURL
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var meta domain.PageMetadata
			if err := json.Unmarshal(data, &meta); err == nil {
				return &meta, nil
			}
		}
	}

	meta := s.extractFromURL(targetURL)
	if meta.Title == "" && meta.Description == "" {
		meta = s.readabilityFallback(targetURL)
	}

	meta.Title = text.Normalize(meta.Title)
	meta.Description = text.Normalize(meta.Description)
	if meta.Title == "" && meta.Description == "" {
		return nil, fmt.Errorf("no metadata found at %s", targetURL)
	}

	// Cache the result
	if s.deps.Cache != nil {
		cacheKey := "metadata:" + targetURL
		if data, err := json.Marshal(meta); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, metadataCacheTTL)
		}
	}

	return &meta, nil
}

// extractFromURL scrapes Open Graph tags, with plain head tags as fallback
func (s *MetadataService) extractFromURL(targetURL string) domain.PageMetadata {
	c := colly.NewCollector(
		colly.UserAgent(collyUserAgent),
		colly.MaxBodySize(metadataBodyLimit),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(metadataHTTPTimeout)

	var meta domain.PageMetadata

	// Open Graph tags
	c.OnHTML("meta", func(e *colly.HTMLElement) {
		content := e.Attr("content")
		if content == "" {
			return
		}

		switch e.Attr("property") {
		case "og:title":
			if meta.Title == "" {
				meta.Title = content
			}
		case "og:description":
			if meta.Description == "" {
				meta.Description = content
			}
		}
	})

	// Fallback to regular head tags
	c.OnHTML("head", func(e *colly.HTMLElement) {
		if meta.Title == "" {
			if title := e.DOM.Find("title").First().Text(); title != "" {
				meta.Title = strings.TrimSpace(title)
			}
		}

		if meta.Description == "" {
			e.DOM.Find("meta[name='description']").Each(func(_ int, sel *goquery.Selection) {
				if content, exists := sel.Attr("content"); exists && content != "" {
					meta.Description = content
				}
			})
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		s.deps.Logger.Debug("Error visiting URL for metadata", map[string]interface{}{
			"url":    targetURL,
			"error":  err.Error(),
			"status": r.StatusCode,
		})
	})

	if err := c.Visit(targetURL); err != nil {
		s.deps.Logger.Debug("Failed to visit URL for metadata extraction", map[string]interface{}{
			"url":   targetURL,
			"error": err.Error(),
		})
	}

	return meta
}

// readabilityFallback extracts the title and excerpt via article parsing
func (s *MetadataService) readabilityFallback(targetURL string) domain.PageMetadata {
	article, err := readability.FromURL(targetURL, readabilityTimeout)
	if err != nil {
		s.deps.Logger.Debug("Readability fallback failed", map[string]interface{}{
			"url":   targetURL,
			"error": err.Error(),
		})
		return domain.PageMetadata{}
	}

	return domain.PageMetadata{
		Title:       article.Title,
		Description: article.Excerpt,
	}
}
