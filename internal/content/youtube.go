package content

import (
	"regexp"
	"strings"
)

const embedBase = "https://www.youtube.com/embed/"

// Checked in order: watch, short link, embed.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`youtube\.com/watch\?v=([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtu\.be/([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/embed/([a-zA-Z0-9_-]{11})`),
}

// ExtractVideoID returns the 11-character YouTube video id of url
func ExtractVideoID(url string) (string, bool) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", false
	}
	for _, re := range videoIDPatterns {
		if m := re.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	return "", false
}

// IsValidVideoURL reports whether url is a recognized YouTube URL
func IsValidVideoURL(url string) bool {
	_, ok := ExtractVideoID(url)
	return ok
}

// EmbedURL converts a YouTube URL into its embeddable form
func EmbedURL(url string) (string, bool) {
	id, ok := ExtractVideoID(url)
	if !ok {
		return "", false
	}
	return embedBase + id, true
}
