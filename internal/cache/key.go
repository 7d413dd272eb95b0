package cache

import (
	"strconv"
	"strings"

	"github.com/darrkasamna/catalog/internal/models"
)

const keySep = "\x1f"

// Key identifies one cacheable read: an entity kind followed by its
// discriminating parameters. A shorter key acts as a prefix for
// invalidation.
type Key []string

// String renders the key for logs
func (k Key) String() string {
	return strings.Join(k, ":")
}

func (k Key) id() string {
	return strings.Join(k, keySep)
}

// HasPrefix reports whether every element of prefix leads k
func (k Key) HasPrefix(prefix Key) bool {
	if len(prefix) > len(k) {
		return false
	}
	for i := range prefix {
		if k[i] != prefix[i] {
			return false
		}
	}
	return true
}

func idArg(id uint64) string {
	return strconv.FormatUint(id, 10)
}

// StoriesKey is the prefix of every story list read
func StoriesKey() Key { return Key{"stories"} }

// LatestStoriesKey keys the newest-first story list
func LatestStoriesKey(limit int) Key { return Key{"stories", "latest", strconv.Itoa(limit)} }

// CategoryStoriesKey keys the story list of one category
func CategoryStoriesKey(c models.StoryCategory) Key { return Key{"stories", "category", string(c)} }

// SearchStoriesKey keys a search result list
func SearchStoriesKey(query string) Key { return Key{"stories", "search", query} }

// StoryKey keys a single story
func StoryKey(id uint64) Key { return Key{"story", idArg(id)} }

// CommentsKey keys the comments of a story
func CommentsKey(storyID uint64) Key { return Key{"comments", idArg(storyID)} }

// LogoKey keys the site logo
func LogoKey() Key { return Key{"logo"} }

// ThumbnailKey keys a story thumbnail
func ThumbnailKey(storyID uint64) Key { return Key{"thumbnail", idArg(storyID)} }

// FollowerCountKey keys the follower counter
func FollowerCountKey() Key { return Key{"followerCount"} }

// AdminKey keys the caller's admin capability
func AdminKey() Key { return Key{"isAdmin"} }
