// ABOUTME: Page source locates the image of the day by scraping the gallery page
// ABOUTME: Selects the first article image and resolves its src to an absolute URL

package page

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html/charset"

	"iotd-wallpaper/core/domain"
	coreerrors "iotd-wallpaper/core/errors"
	"iotd-wallpaper/core/interfaces"
)

// DefaultPageURL is the NASA Image of the Day gallery page
const DefaultPageURL = "https://www.nasa.gov/image-of-the-day/"

// imageSelector matches the gallery's lead image
const imageSelector = "article img"

// Service locates the image of the day on the gallery page
type Service struct {
	deps    interfaces.Dependencies
	pageURL string
}

// NewService creates a page source for the given URL.
// An empty pageURL falls back to DefaultPageURL.
func NewService(deps interfaces.Dependencies, pageURL string) *Service {
	if pageURL == "" {
		pageURL = DefaultPageURL
	}
	return &Service{
		deps:    deps,
		pageURL: pageURL,
	}
}

// Resolve fetches the gallery page and returns an absolute reference to
// the first article image.
func (s *Service) Resolve(ctx context.Context) (domain.ImageReference, error) {
	if s.deps.HTTPClient == nil {
		return domain.ImageReference{}, errors.New("HTTP client not configured")
	}

	resp, err := s.deps.HTTPClient.Get(ctx, s.pageURL)
	if err != nil {
		return domain.ImageReference{}, &coreerrors.FetchError{URL: s.pageURL, Err: err}
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return domain.ImageReference{}, &coreerrors.FetchError{URL: s.pageURL, StatusCode: resp.StatusCode()}
	}

	body, err := charset.NewReader(resp.Body(), resp.Header("Content-Type"))
	if err != nil {
		return domain.ImageReference{}, &coreerrors.ParseError{
			URL:    s.pageURL,
			Reason: fmt.Sprintf("charset detection failed: %v", err),
		}
	}

	src, err := s.findImageSrc(body)
	if err != nil {
		return domain.ImageReference{}, err
	}

	absolute, err := s.resolveImageSrc(src)
	if err != nil {
		return domain.ImageReference{}, err
	}

	s.deps.Logger.Debug("Located article image", map[string]interface{}{
		"page": s.pageURL,
		"src":  src,
	})

	return domain.ImageReference{URL: absolute}, nil
}

// findImageSrc parses the document and returns the first matching image src
func (s *Service) findImageSrc(body io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", &coreerrors.ParseError{
			URL:    s.pageURL,
			Reason: fmt.Sprintf("document parse failed: %v", err),
		}
	}

	src, exists := doc.Find(imageSelector).First().Attr("src")
	src = strings.TrimSpace(src)
	if !exists || src == "" {
		return "", &coreerrors.ParseError{URL: s.pageURL, Reason: "no article image found"}
	}
	return src, nil
}

// resolveImageSrc turns a scraped src attribute into an absolute URL.
// Protocol-relative srcs keep https; host-relative srcs inherit the page
// scheme and host.
func (s *Service) resolveImageSrc(src string) (string, error) {
	if strings.HasPrefix(src, "//") {
		return "https:" + src, nil
	}
	if strings.HasPrefix(src, "/") {
		parsedURL, err := url.Parse(s.pageURL)
		if err != nil {
			return "", &coreerrors.ParseError{URL: s.pageURL, Reason: "page URL is unparseable"}
		}
		return parsedURL.Scheme + "://" + parsedURL.Host + src, nil
	}
	if strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") {
		return src, nil
	}
	return "", &coreerrors.ParseError{
		URL:    s.pageURL,
		Reason: fmt.Sprintf("image src %q cannot be resolved to an absolute URL", src),
	}
}
