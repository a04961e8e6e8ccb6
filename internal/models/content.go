package models

import (
	"strings"
	"unicode"
)

// wordsPerMinute is the assumed reading speed used for reading-time
// estimates.
const wordsPerMinute = 200

// EstimateReadingTime returns the reading time for content in whole minutes,
// rounded up. Empty content yields 0; validation upstream rejects empty
// content before it reaches the database.
func EstimateReadingTime(content string) int {
	words := len(strings.Fields(content))
	if words == 0 {
		return 0
	}
	return (words + wordsPerMinute - 1) / wordsPerMinute
}

// Slugify derives a URL-safe slug from a display name: lowercase ASCII
// letters and digits, runs of anything else collapsed to single hyphens.
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	prevHyphen := true // suppress leading hyphen
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			prevHyphen = false
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			// Non-ASCII letters/digits pass through so non-English titles
			// still produce usable slugs.
			b.WriteRune(r)
			prevHyphen = false
		default:
			if !prevHyphen {
				b.WriteByte('-')
				prevHyphen = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
