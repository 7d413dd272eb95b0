package content

import (
	"strings"

	"github.com/darrkasamna/catalog/internal/models"
)

// NormalizeQuery trims and lower-cases search text
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// IsBlankQuery reports whether q has no searchable text
func IsBlankQuery(q string) bool {
	return strings.TrimSpace(q) == ""
}

// MatchesQuery reports whether the story's title, excerpt or content
// contains q, ignoring case. A blank query matches nothing.
func MatchesQuery(s models.Story, q string) bool {
	q = NormalizeQuery(q)
	if q == "" {
		return false
	}
	for _, field := range []string{s.Title, s.Excerpt, s.Content} {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}
