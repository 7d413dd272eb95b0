package catalog

import (
	"context"
	"strings"

	"github.com/darrkasamna/catalog/internal/cache"
	"github.com/darrkasamna/catalog/internal/content"
	"github.com/darrkasamna/catalog/internal/gateway"
	"github.com/darrkasamna/catalog/internal/models"
	apperr "github.com/darrkasamna/catalog/pkg/errors"
)

// read runs a cached read against the open backend. A backend detached
// between the readiness check and the fetch yields the empty value.
func read[T any](ctx context.Context, c *Client, key cache.Key, empty T, call func(context.Context, gateway.Backend) (T, error)) (T, error) {
	v, err := cache.Read(ctx, c.cache, key, empty, func(ctx context.Context) (T, error) {
		b, ok := c.gw.Backend()
		if !ok {
			return empty, nil
		}
		v, err := call(ctx, b)
		if err != nil {
			return empty, apperr.Classify(err)
		}
		return v, nil
	})
	if err != nil {
		return empty, err
	}
	return v, nil
}

func stories(s []models.Story) []models.Story {
	if s == nil {
		return []models.Story{}
	}
	return s
}

// LatestStories returns the newest stories, newest first
func (c *Client) LatestStories(ctx context.Context, limit int) ([]models.Story, error) {
	if limit <= 0 {
		limit = DefaultLatestLimit
	}
	return read(ctx, c, cache.LatestStoriesKey(limit), []models.Story{},
		func(ctx context.Context, b gateway.Backend) ([]models.Story, error) {
			s, err := b.GetLatestStories(ctx, limit)
			return stories(s), err
		})
}

// StoriesByCategory returns the stories of one category
func (c *Client) StoriesByCategory(ctx context.Context, category models.StoryCategory) ([]models.Story, error) {
	return read(ctx, c, cache.CategoryStoriesKey(category), []models.Story{},
		func(ctx context.Context, b gateway.Backend) ([]models.Story, error) {
			s, err := b.GetStoriesByCategory(ctx, category)
			return stories(s), err
		})
}

// SearchStories returns stories matching text. Blank text yields an empty
// result without contacting the store.
func (c *Client) SearchStories(ctx context.Context, text string) ([]models.Story, error) {
	if content.IsBlankQuery(text) {
		return []models.Story{}, nil
	}
	text = strings.TrimSpace(text)
	return read(ctx, c, cache.SearchStoriesKey(text), []models.Story{},
		func(ctx context.Context, b gateway.Backend) ([]models.Story, error) {
			s, err := b.SearchStories(ctx, text)
			return stories(s), err
		})
}

// Story returns one story, or None while the gateway is not ready
func (c *Client) Story(ctx context.Context, id uint64) (models.Option[models.Story], error) {
	return read(ctx, c, cache.StoryKey(id), models.None[models.Story](),
		func(ctx context.Context, b gateway.Backend) (models.Option[models.Story], error) {
			s, err := b.GetStory(ctx, id)
			if err != nil {
				return models.None[models.Story](), err
			}
			return models.Some(s), nil
		})
}

// Comments returns the comments of a story
func (c *Client) Comments(ctx context.Context, storyID uint64) ([]models.Comment, error) {
	return read(ctx, c, cache.CommentsKey(storyID), []models.Comment{},
		func(ctx context.Context, b gateway.Backend) ([]models.Comment, error) {
			comments, err := b.GetComments(ctx, storyID)
			if comments == nil {
				comments = []models.Comment{}
			}
			return comments, err
		})
}

// Logo returns the site logo if one is set
func (c *Client) Logo(ctx context.Context) (models.Option[models.MediaAsset], error) {
	return read(ctx, c, cache.LogoKey(), models.None[models.MediaAsset](),
		func(ctx context.Context, b gateway.Backend) (models.Option[models.MediaAsset], error) {
			return b.GetLogo(ctx)
		})
}

// Thumbnail returns a story's thumbnail if one is set
func (c *Client) Thumbnail(ctx context.Context, storyID uint64) (models.Option[models.MediaAsset], error) {
	return read(ctx, c, cache.ThumbnailKey(storyID), models.None[models.MediaAsset](),
		func(ctx context.Context, b gateway.Backend) (models.Option[models.MediaAsset], error) {
			return b.GetThumbnail(ctx, storyID)
		})
}

// FollowerCount returns the number of site followers, 0 while not ready
func (c *Client) FollowerCount(ctx context.Context) (uint64, error) {
	return read(ctx, c, cache.FollowerCountKey(), 0,
		func(ctx context.Context, b gateway.Backend) (uint64, error) {
			return b.GetFollowerCount(ctx)
		})
}

// IsAdmin reports whether the caller may perform admin mutations
func (c *Client) IsAdmin(ctx context.Context) (bool, error) {
	return read(ctx, c, cache.AdminKey(), false,
		func(ctx context.Context, b gateway.Backend) (bool, error) {
			return b.IsCallerAdmin(ctx)
		})
}
