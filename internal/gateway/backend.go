package gateway

import (
	"context"

	"github.com/darrkasamna/catalog/internal/models"
)

//go:generate go run go.uber.org/mock/mockgen -source=backend.go -destination=mocks/backend.go -package=mocks

// Backend is the remote authoritative store. Every call may fail.
type Backend interface {
	AddStory(ctx context.Context, story models.NewStory) (uint64, error)
	GetStory(ctx context.Context, id uint64) (models.Story, error)
	GetLatestStories(ctx context.Context, limit int) ([]models.Story, error)
	GetStoriesByCategory(ctx context.Context, category models.StoryCategory) ([]models.Story, error)
	SearchStories(ctx context.Context, text string) ([]models.Story, error)
	IncrementStoryViewCount(ctx context.Context, id uint64) error

	AddComment(ctx context.Context, storyID uint64, name, message string) error
	GetComments(ctx context.Context, storyID uint64) ([]models.Comment, error)

	UploadLogo(ctx context.Context, data []byte, contentType string) error
	GetLogo(ctx context.Context) (models.Option[models.MediaAsset], error)
	DeleteLogo(ctx context.Context) error

	UploadThumbnail(ctx context.Context, storyID uint64, data []byte, contentType string) error
	GetThumbnail(ctx context.Context, storyID uint64) (models.Option[models.MediaAsset], error)
	DeleteThumbnail(ctx context.Context, storyID uint64) error

	FollowWebsite(ctx context.Context) error
	GetFollowerCount(ctx context.Context) (uint64, error)

	IsCallerAdmin(ctx context.Context) (bool, error)
}

// Identity is the caller on whose behalf the backend is opened
type Identity struct {
	Subject string
	Token   string
}

// Anonymous is the identity of an unauthenticated caller
var Anonymous = Identity{}

// IsAnonymous reports whether no credentials are attached
func (i Identity) IsAnonymous() bool {
	return i.Token == ""
}

// Factory opens a backend for an identity
type Factory func(ctx context.Context, id Identity) (Backend, error)
