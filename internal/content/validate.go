package content

import (
	"fmt"
	"mime"
	"strings"
	"unicode/utf8"

	"github.com/darrkasamna/catalog/internal/models"
	apperr "github.com/darrkasamna/catalog/pkg/errors"
)

const (
	// MaxTitleLength bounds story titles in characters
	MaxTitleLength = 200
	// DefaultMaxMediaBytes is the default media upload limit
	DefaultMaxMediaBytes = 2 * 1024 * 1024
)

// StoryDraft is unvalidated story input
type StoryDraft struct {
	Title    string
	Content  string
	Category string
	VideoURL string
}

// PrepareStory validates a draft and produces the story to create. The
// excerpt is derived here, once, from the trimmed content.
func PrepareStory(d StoryDraft) (models.NewStory, error) {
	title := strings.TrimSpace(d.Title)
	body := strings.TrimSpace(d.Content)

	if title == "" {
		return models.NewStory{}, apperr.Validation("title", "Please enter a story title")
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return models.NewStory{}, apperr.Validation("title",
			fmt.Sprintf("title must be at most %d characters", MaxTitleLength))
	}
	if strings.TrimSpace(d.Category) == "" {
		return models.NewStory{}, apperr.Validation("category", "Please select a category")
	}
	category, ok := ParseCategory(strings.TrimSpace(d.Category))
	if !ok {
		return models.NewStory{}, apperr.Validation("category",
			fmt.Sprintf("unknown category %q", d.Category))
	}
	if body == "" {
		return models.NewStory{}, apperr.Validation("content", "Please enter the story content")
	}

	video := models.None[string]()
	if u := strings.TrimSpace(d.VideoURL); u != "" {
		if !IsValidVideoURL(u) {
			return models.NewStory{}, apperr.Validation("videoUrl", "Please enter a valid YouTube URL")
		}
		video = models.Some(u)
	}

	return models.NewStory{
		Title:    title,
		Excerpt:  MakeExcerpt(body, ExcerptLimit),
		Content:  body,
		Category: category,
		VideoURL: video,
	}, nil
}

// PrepareComment trims and validates comment input
func PrepareComment(author, message string) (string, string, error) {
	author = strings.TrimSpace(author)
	message = strings.TrimSpace(message)
	if author == "" {
		return "", "", apperr.Validation("name", "Please enter your name")
	}
	if message == "" {
		return "", "", apperr.Validation("message", "Please enter a comment")
	}
	return author, message, nil
}

// ValidateMedia checks an upload against the size limit and requires an
// image MIME type.
func ValidateMedia(data []byte, contentType string, maxBytes int) error {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxMediaBytes
	}
	if len(data) == 0 {
		return apperr.Validation("file", "Please select a file first")
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil || !strings.HasPrefix(mediaType, "image/") {
		return apperr.Validation("file", "Please select an image file")
	}
	if len(data) > maxBytes {
		return apperr.Validation("file", "Image size must be less than "+sizeLabel(maxBytes))
	}
	return nil
}

func sizeLabel(n int) string {
	const mb = 1024 * 1024
	if n%mb == 0 {
		return fmt.Sprintf("%dMB", n/mb)
	}
	return fmt.Sprintf("%dKB", n/1024)
}
