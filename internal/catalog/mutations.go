package catalog

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/darrkasamna/catalog/internal/cache"
	"github.com/darrkasamna/catalog/internal/content"
	"github.com/darrkasamna/catalog/internal/gateway"
	apperr "github.com/darrkasamna/catalog/pkg/errors"
	"github.com/darrkasamna/catalog/pkg/logging"
	"github.com/darrkasamna/catalog/pkg/telemetry"
)

// mutate issues one remote call and, only once it succeeds, invalidates
// keys. Remote rejections are classified and leave the cache untouched.
func (c *Client) mutate(ctx context.Context, op string, call func(context.Context, gateway.Backend) error, keys ...cache.Key) error {
	b, ok := c.gw.Backend()
	if !ok {
		c.record(ctx, op, "not_ready")
		return apperr.NotReady()
	}

	ctx, span := telemetry.StartSpan(ctx, "catalog."+op)
	defer span.End()

	start := time.Now()
	if err := call(ctx, b); err != nil {
		err = apperr.Classify(err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.record(ctx, op, apperr.KindOf(err).String())
		logging.FromContext(ctx, c.logger).Warn("Mutation failed",
			zap.String("op", op),
			zap.Error(err))
		return err
	}

	for _, k := range keys {
		c.cache.Invalidate(k)
	}
	c.record(ctx, op, "ok")
	logging.FromContext(ctx, c.logger).Info("Mutation applied",
		zap.String("op", op),
		zap.Duration("took", time.Since(start)))
	return nil
}

func (c *Client) record(ctx context.Context, op, outcome string) {
	c.mutations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("op", op),
		attribute.String("outcome", outcome),
	))
}

func storyKeys(storyID uint64) []cache.Key {
	return []cache.Key{cache.ThumbnailKey(storyID), cache.StoryKey(storyID), cache.StoriesKey()}
}

// CreateStory validates a draft and adds the story, returning its id
func (c *Client) CreateStory(ctx context.Context, draft content.StoryDraft) (uint64, error) {
	story, err := content.PrepareStory(draft)
	if err != nil {
		return 0, err
	}

	var id uint64
	err = c.mutate(ctx, "createStory", func(ctx context.Context, b gateway.Backend) error {
		var err error
		id, err = b.AddStory(ctx, story)
		return err
	}, cache.StoriesKey())
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CreateStoryWithThumbnail adds a story and then uploads its thumbnail.
// When the upload fails the story stays created and the returned error is
// a PartialSuccess carrying the new id.
func (c *Client) CreateStoryWithThumbnail(ctx context.Context, draft content.StoryDraft, data []byte, contentType string) (uint64, error) {
	if _, err := content.PrepareStory(draft); err != nil {
		return 0, err
	}
	if err := content.ValidateMedia(data, contentType, c.maxMediaBytes); err != nil {
		return 0, err
	}

	id, err := c.CreateStory(ctx, draft)
	if err != nil {
		return 0, err
	}

	err = c.mutate(ctx, "uploadThumbnail", func(ctx context.Context, b gateway.Backend) error {
		return b.UploadThumbnail(ctx, id, data, contentType)
	}, storyKeys(id)...)
	if err != nil {
		return id, apperr.PartialSuccess(id, err)
	}
	return id, nil
}

// AddComment appends a comment to a story. In identity mode the caller's
// subject replaces the supplied author.
func (c *Client) AddComment(ctx context.Context, storyID uint64, author, message string) error {
	if c.authorMode == AuthorIdentity {
		if subject := c.gw.Identity().Subject; subject != "" {
			author = subject
		}
	}
	author, message, err := content.PrepareComment(author, message)
	if err != nil {
		return err
	}

	return c.mutate(ctx, "addComment", func(ctx context.Context, b gateway.Backend) error {
		return b.AddComment(ctx, storyID, author, message)
	}, cache.CommentsKey(storyID))
}

// UploadLogo replaces the site logo
func (c *Client) UploadLogo(ctx context.Context, data []byte, contentType string) error {
	if err := content.ValidateMedia(data, contentType, c.maxMediaBytes); err != nil {
		return err
	}
	return c.mutate(ctx, "uploadLogo", func(ctx context.Context, b gateway.Backend) error {
		return b.UploadLogo(ctx, data, contentType)
	}, cache.LogoKey())
}

// DeleteLogo removes the site logo
func (c *Client) DeleteLogo(ctx context.Context) error {
	return c.mutate(ctx, "deleteLogo", func(ctx context.Context, b gateway.Backend) error {
		return b.DeleteLogo(ctx)
	}, cache.LogoKey())
}

// UploadThumbnail replaces a story's thumbnail
func (c *Client) UploadThumbnail(ctx context.Context, storyID uint64, data []byte, contentType string) error {
	if err := content.ValidateMedia(data, contentType, c.maxMediaBytes); err != nil {
		return err
	}
	return c.mutate(ctx, "uploadThumbnail", func(ctx context.Context, b gateway.Backend) error {
		return b.UploadThumbnail(ctx, storyID, data, contentType)
	}, storyKeys(storyID)...)
}

// DeleteThumbnail removes a story's thumbnail
func (c *Client) DeleteThumbnail(ctx context.Context, storyID uint64) error {
	return c.mutate(ctx, "deleteThumbnail", func(ctx context.Context, b gateway.Backend) error {
		return b.DeleteThumbnail(ctx, storyID)
	}, storyKeys(storyID)...)
}

// IncrementView bumps a story's view counter by one
func (c *Client) IncrementView(ctx context.Context, storyID uint64) error {
	return c.mutate(ctx, "incrementView", func(ctx context.Context, b gateway.Backend) error {
		return b.IncrementStoryViewCount(ctx, storyID)
	}, cache.StoryKey(storyID))
}

// Follow follows the site
func (c *Client) Follow(ctx context.Context) error {
	return c.mutate(ctx, "follow", func(ctx context.Context, b gateway.Backend) error {
		return b.FollowWebsite(ctx)
	}, cache.FollowerCountKey())
}
