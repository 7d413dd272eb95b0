package content

import "testing"

func TestExtractVideoID(t *testing.T) {
	const id = "dQw4w9WgXcQ"

	tests := []struct {
		name     string
		url      string
		expected string
		ok       bool
	}{
		{"short link", "https://youtu.be/" + id, id, true},
		{"watch url", "https://www.youtube.com/watch?v=" + id, id, true},
		{"embed url", "https://www.youtube.com/embed/" + id, id, true},
		{"watch with extra params", "https://youtube.com/watch?v=" + id + "&t=42s", id, true},
		{"surrounding whitespace", "  https://youtu.be/" + id + "  ", id, true},
		{"id with dash and underscore", "https://youtu.be/a-b_c-d_e-f", "a-b_c-d_e-f", true},
		{"not a url", "not a url", "", false},
		{"empty", "", "", false},
		{"id too short", "https://youtu.be/abc", "", false},
		{"other host", "https://vimeo.com/123456789", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, ok := ExtractVideoID(tt.url)
			if result != tt.expected || ok != tt.ok {
				t.Errorf("ExtractVideoID(%q) = %q, %v, want %q, %v", tt.url, result, ok, tt.expected, tt.ok)
			}
			if IsValidVideoURL(tt.url) != tt.ok {
				t.Errorf("IsValidVideoURL(%q) = %v, want %v", tt.url, !tt.ok, tt.ok)
			}
		})
	}
}

func TestEmbedURL(t *testing.T) {
	got, ok := EmbedURL("https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if !ok || got != "https://www.youtube.com/embed/dQw4w9WgXcQ" {
		t.Errorf("EmbedURL() = %q, %v", got, ok)
	}
	if _, ok := EmbedURL("https://example.com"); ok {
		t.Error("EmbedURL() should reject unrecognized urls")
	}
}
