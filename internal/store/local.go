package store

import (
	"context"

	"github.com/darrkasamna/catalog/internal/auth"
	"github.com/darrkasamna/catalog/internal/gateway"
	"github.com/darrkasamna/catalog/internal/models"
)

// Local is an in-process backend bound to one caller identity
type Local struct {
	svc      *Service
	identity auth.Identity
}

// LocalFactory opens in-process backends. Tokens are verified with
// authority; a nil authority only admits anonymous callers.
func LocalFactory(svc *Service, authority *auth.Authority) gateway.Factory {
	return func(ctx context.Context, id gateway.Identity) (gateway.Backend, error) {
		identity := auth.Anonymous
		if !id.IsAnonymous() {
			if authority == nil {
				return nil, auth.ErrMissingSecret
			}
			verified, err := authority.Verify(id.Token)
			if err != nil {
				return nil, err
			}
			identity = verified
		}
		return &Local{svc: svc, identity: identity}, nil
	}
}

func (l *Local) ctx(ctx context.Context) context.Context {
	return auth.WithIdentity(ctx, l.identity)
}

func (l *Local) AddStory(ctx context.Context, story models.NewStory) (uint64, error) {
	return l.svc.AddStory(l.ctx(ctx), story)
}

func (l *Local) GetStory(ctx context.Context, id uint64) (models.Story, error) {
	return l.svc.GetStory(l.ctx(ctx), id)
}

func (l *Local) GetLatestStories(ctx context.Context, limit int) ([]models.Story, error) {
	return l.svc.GetLatestStories(l.ctx(ctx), limit)
}

func (l *Local) GetStoriesByCategory(ctx context.Context, category models.StoryCategory) ([]models.Story, error) {
	return l.svc.GetStoriesByCategory(l.ctx(ctx), category)
}

func (l *Local) SearchStories(ctx context.Context, text string) ([]models.Story, error) {
	return l.svc.SearchStories(l.ctx(ctx), text)
}

func (l *Local) IncrementStoryViewCount(ctx context.Context, id uint64) error {
	return l.svc.IncrementStoryViewCount(l.ctx(ctx), id)
}

func (l *Local) AddComment(ctx context.Context, storyID uint64, name, message string) error {
	return l.svc.AddComment(l.ctx(ctx), storyID, name, message)
}

func (l *Local) GetComments(ctx context.Context, storyID uint64) ([]models.Comment, error) {
	return l.svc.GetComments(l.ctx(ctx), storyID)
}

func (l *Local) UploadLogo(ctx context.Context, data []byte, contentType string) error {
	return l.svc.UploadLogo(l.ctx(ctx), data, contentType)
}

func (l *Local) GetLogo(ctx context.Context) (models.Option[models.MediaAsset], error) {
	return l.svc.GetLogo(l.ctx(ctx))
}

func (l *Local) DeleteLogo(ctx context.Context) error {
	return l.svc.DeleteLogo(l.ctx(ctx))
}

func (l *Local) UploadThumbnail(ctx context.Context, storyID uint64, data []byte, contentType string) error {
	return l.svc.UploadThumbnail(l.ctx(ctx), storyID, data, contentType)
}

func (l *Local) GetThumbnail(ctx context.Context, storyID uint64) (models.Option[models.MediaAsset], error) {
	return l.svc.GetThumbnail(l.ctx(ctx), storyID)
}

func (l *Local) DeleteThumbnail(ctx context.Context, storyID uint64) error {
	return l.svc.DeleteThumbnail(l.ctx(ctx), storyID)
}

func (l *Local) FollowWebsite(ctx context.Context) error {
	return l.svc.FollowWebsite(l.ctx(ctx))
}

func (l *Local) GetFollowerCount(ctx context.Context) (uint64, error) {
	return l.svc.GetFollowerCount(l.ctx(ctx))
}

func (l *Local) IsCallerAdmin(ctx context.Context) (bool, error) {
	return l.svc.IsCallerAdmin(l.ctx(ctx))
}

var _ gateway.Backend = (*Local)(nil)
