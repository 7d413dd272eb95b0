package content

import "unicode/utf8"

// ExcerptLimit is the character budget of a story excerpt
const ExcerptLimit = 150

// Ellipsis marks a truncated excerpt
const Ellipsis = "…"

// MakeExcerpt returns content unchanged if it fits in limit characters,
// otherwise its first limit characters followed by an ellipsis.
func MakeExcerpt(content string, limit int) string {
	if limit < 0 {
		limit = 0
	}
	if utf8.RuneCountInString(content) <= limit {
		return content
	}
	n := 0
	for i := range content {
		if n == limit {
			return content[:i] + Ellipsis
		}
		n++
	}
	return content
}
