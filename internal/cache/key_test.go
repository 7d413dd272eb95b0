package cache

import (
	"testing"

	"github.com/darrkasamna/catalog/internal/models"
)

func TestKey_HasPrefix(t *testing.T) {
	tests := []struct {
		name     string
		key      Key
		prefix   Key
		expected bool
	}{
		{"latest under stories", LatestStoriesKey(20), StoriesKey(), true},
		{"category under stories", CategoryStoriesKey(models.CategoryIndianHorror), StoriesKey(), true},
		{"search under stories", SearchStoriesKey("ghost"), StoriesKey(), true},
		{"single story is not a list", StoryKey(7), StoriesKey(), false},
		{"exact match", ThumbnailKey(3), ThumbnailKey(3), true},
		{"other thumbnail", ThumbnailKey(3), ThumbnailKey(4), false},
		{"empty prefix matches all", FollowerCountKey(), Key{}, true},
		{"longer prefix", LogoKey(), Key{"logo", "x"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := tt.key.HasPrefix(tt.prefix); result != tt.expected {
				t.Errorf("%v.HasPrefix(%v) = %v, want %v", tt.key, tt.prefix, result, tt.expected)
			}
		})
	}
}

func TestKey_String(t *testing.T) {
	if got, want := LatestStoriesKey(20).String(), "stories:latest:20"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := CommentsKey(42).String(), "comments:42"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestKey_IDDistinguishesSeparators(t *testing.T) {
	a := SearchStoriesKey("a:b")
	b := Key{"stories", "search", "a", "b"}
	if a.id() == b.id() {
		t.Error("keys with different arity must not collide")
	}
}
