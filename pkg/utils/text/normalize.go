// ABOUTME: Text utilities for normalizing scraped page metadata
// ABOUTME: Strips markup, decodes entities, and collapses whitespace

package text

import (
	"html"
	"strings"
)

// Normalize strips markup and collapses whitespace so scraped metadata
// reads as a single plain-text line.
func Normalize(s string) string {
	text := stripTags(s)
	text = html.UnescapeString(text)
	return collapseWhitespace(text)
}

// stripTags removes anything between angle brackets
func stripTags(s string) string {
	text := s
	for strings.Contains(text, "<") && strings.Contains(text, ">") {
		start := strings.Index(text, "<")
		end := strings.Index(text, ">")
		if start < end && start >= 0 && end >= 0 {
			text = text[:start] + " " + text[end+1:]
		} else {
			break
		}
	}
	return text
}

// collapseWhitespace reduces runs of whitespace to single spaces
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
