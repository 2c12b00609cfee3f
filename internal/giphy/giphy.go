// Package giphy holds the pure string utilities for Giphy links: gif id
// extraction, embed/thumbnail URL synthesis, and the doge comment generator.
package giphy

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var (
	idPattern   = regexp.MustCompile(`([A-Za-z0-9]+)$`)
	wordPattern = regexp.MustCompile(`\W+`)
)

// EnsureProtocol prefixes schemeless URLs with https so parsing behaves
// consistently.
func EnsureProtocol(rawURL string) string {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return rawURL
	}
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Scheme == "" {
		return "https://" + rawURL
	}
	return rawURL
}

// ExtractGifID returns the Giphy media id from any standard Giphy URL, or ""
// when the link doesn't carry one. Slugs like keyword-keyword-<id> resolve to
// the literal id portion.
func ExtractGifID(rawURL string) string {
	if rawURL == "" {
		return ""
	}

	parsed, err := url.Parse(EnsureProtocol(rawURL))
	if err != nil {
		return ""
	}
	path := strings.TrimRight(parsed.Path, "/")
	if path == "" {
		return ""
	}

	segments := strings.Split(path, "/")
	slug := segments[len(segments)-1]
	if strings.Contains(slug, "-") {
		parts := strings.Split(slug, "-")
		slug = parts[len(parts)-1]
	}

	return idPattern.FindString(slug)
}

// EmbedURL builds the iframe embed URL for a gif id.
func EmbedURL(gifID string) string {
	return fmt.Sprintf("https://giphy.com/embed/%s", gifID)
}

// ThumbnailURL builds the media thumbnail URL for a gif id.
func ThumbnailURL(gifID string) string {
	return fmt.Sprintf("https://media.giphy.com/media/%s/giphy.gif", gifID)
}

// DogeComment stitches a short doge-style comment out of the given content.
// It is decorative: a fixed word salad seeded by the content's longer words.
func DogeComment(content string) string {
	var words []string
	for _, w := range splitWords(content) {
		if len(w) > 2 {
			words = append(words, w)
		}
	}

	picks := append(append([]string{}, words...), "wow", "such", "much", "very")
	if len(picks) > 6 {
		picks = picks[:6]
	}

	anchor := "wow"
	if len(words) > 0 {
		anchor = words[0]
	}

	parts := make([]string, 0, len(picks))
	for _, p := range picks {
		if p == "such" || p == "much" || p == "very" {
			parts = append(parts, p+" "+anchor)
		} else {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func splitWords(text string) []string {
	var tokens []string
	for _, t := range wordPattern.Split(text, -1) {
		if t != "" {
			tokens = append(tokens, strings.ToLower(t))
		}
	}
	return tokens
}
