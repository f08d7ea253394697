// ABOUTME: Feed source locates the image of the day from the NASA IOTD feed
// ABOUTME: Prefers image enclosures, then the item image, then content images

package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/mmcdole/gofeed"

	"iotd-wallpaper/core/domain"
	coreerrors "iotd-wallpaper/core/errors"
	"iotd-wallpaper/core/interfaces"
)

// DefaultFeedURL is the NASA Image of the Day RSS feed
const DefaultFeedURL = "https://www.nasa.gov/feeds/iotd-feed/"

// Service locates the image of the day in the RSS feed
type Service struct {
	deps    interfaces.Dependencies
	feedURL string
}

// NewService creates a feed source for the given URL.
// An empty feedURL falls back to DefaultFeedURL.
func NewService(deps interfaces.Dependencies, feedURL string) *Service {
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	return &Service{
		deps:    deps,
		feedURL: feedURL,
	}
}

// Resolve fetches the feed and returns an absolute reference to the
// newest item's image.
func (s *Service) Resolve(ctx context.Context) (domain.ImageReference, error) {
	if s.deps.HTTPClient == nil {
		return domain.ImageReference{}, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, s.feedURL)
	if err != nil {
		return domain.ImageReference{}, &coreerrors.FetchError{URL: s.feedURL, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return domain.ImageReference{}, &coreerrors.FetchError{URL: s.feedURL, StatusCode: resp.StatusCode()}
	}

	body, err := io.ReadAll(resp.Body())
	if err != nil {
		return domain.ImageReference{}, &coreerrors.FetchError{URL: s.feedURL, Err: err}
	}

	parser := gofeed.NewParser()
	parsed, err := parser.Parse(bytes.NewReader(body))
	if err != nil {
		return domain.ImageReference{}, &coreerrors.ParseError{
			URL:    s.feedURL,
			Reason: fmt.Sprintf("feed parse failed: %v", err),
		}
	}

	if len(parsed.Items) == 0 {
		return domain.ImageReference{}, &coreerrors.ParseError{URL: s.feedURL, Reason: "feed has no items"}
	}

	item := parsed.Items[0]
	src := s.imageFromItem(item)
	if src == "" {
		return domain.ImageReference{}, &coreerrors.ParseError{URL: s.feedURL, Reason: "newest feed item has no image"}
	}

	absolute, err := s.resolveImageSrc(src, item.Link)
	if err != nil {
		return domain.ImageReference{}, err
	}

	s.deps.Logger.Debug("Located feed item image", map[string]interface{}{
		"feed": s.feedURL,
		"item": item.Title,
		"src":  src,
	})

	return domain.ImageReference{URL: absolute}, nil
}

// imageFromItem walks the item's media in preference order: enclosures
// with an image MIME type, the item-level image, then the first img tag
// in the content or description HTML.
func (s *Service) imageFromItem(item *gofeed.Item) string {
	for _, e := range item.Enclosures {
		if e != nil && strings.HasPrefix(e.Type, "image/") && e.URL != "" {
			return e.URL
		}
	}

	if item.Image != nil && item.Image.URL != "" {
		return item.Image.URL
	}

	if src := firstContentImage(item.Content); src != "" {
		return src
	}
	return firstContentImage(item.Description)
}

// firstContentImage returns the first img src in an HTML fragment
func firstContentImage(content string) string {
	if content == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return ""
	}

	src, _ := doc.Find("img").First().Attr("src")
	return strings.TrimSpace(src)
}

// resolveImageSrc turns a feed image URL into an absolute URL, using
// the item link as the base for relative references.
func (s *Service) resolveImageSrc(src, itemLink string) (string, error) {
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src, nil
	}
	if strings.HasPrefix(src, "//") {
		return "https:" + src, nil
	}
	if strings.HasPrefix(src, "/") {
		base := itemLink
		if base == "" {
			base = s.feedURL
		}
		parsedURL, err := url.Parse(base)
		if err != nil {
			return "", &coreerrors.ParseError{URL: s.feedURL, Reason: "item link is unparseable"}
		}
		return parsedURL.Scheme + "://" + parsedURL.Host + src, nil
	}
	return "", &coreerrors.ParseError{
		URL:    s.feedURL,
		Reason: fmt.Sprintf("feed image src %q cannot be resolved to an absolute URL", src),
	}
}
