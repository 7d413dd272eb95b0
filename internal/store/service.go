// Package store is the authoritative catalog store. It implements the
// remote operations on top of the gorm repositories and gates admin
// mutations on the caller identity carried by the request context.
package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/darrkasamna/catalog/internal/auth"
	"github.com/darrkasamna/catalog/internal/content"
	"github.com/darrkasamna/catalog/internal/db"
	"github.com/darrkasamna/catalog/internal/models"
	apperr "github.com/darrkasamna/catalog/pkg/errors"
	"github.com/darrkasamna/catalog/pkg/logging"
)

const (
	defaultLatestLimit = 20
	maxLatestLimit     = 100
)

// Service implements the catalog operations against the database
type Service struct {
	repo     *db.Repository
	stories  *db.StoryRepository
	comments *db.CommentRepository
	media    *db.MediaRepository
	stats    *db.StatsRepository
	maxMedia int
	logger   *zap.Logger
	now      func() time.Time
}

// New creates a service over database
func New(database *db.DB, maxMediaBytes int) *Service {
	repo := db.NewRepository(database.DB)
	return &Service{
		repo:     repo,
		stories:  db.NewStoryRepository(repo),
		comments: db.NewCommentRepository(repo),
		media:    db.NewMediaRepository(repo),
		stats:    db.NewStatsRepository(repo),
		maxMedia: maxMediaBytes,
		logger:   logging.WithComponent("store"),
		now:      time.Now,
	}
}

func requireAdmin(ctx context.Context, action string) error {
	if !auth.FromContext(ctx).Admin {
		return apperr.New(apperr.KindUnauthorized, "Unauthorized: Only admins can "+action)
	}
	return nil
}

func storyNotFound(id uint64) error {
	return apperr.New(apperr.KindNotFound, fmt.Sprintf("Story %d not found", id))
}

func (s *Service) requireStory(ctx context.Context, id uint64) error {
	story, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load story: %w", err)
	}
	if story == nil {
		return storyNotFound(id)
	}
	return nil
}

// AddStory creates a story and returns its id
func (s *Service) AddStory(ctx context.Context, in models.NewStory) (uint64, error) {
	if err := requireAdmin(ctx, "add stories"); err != nil {
		return 0, err
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Content) == "" {
		return 0, apperr.Validation("story", "title and content are required")
	}
	if !content.IsValidCategory(in.Category) {
		return 0, apperr.Validation("category", fmt.Sprintf("unknown category %q", in.Category))
	}
	if url, ok := in.VideoURL.Get(); ok && !content.IsValidVideoURL(url) {
		return 0, apperr.Validation("videoUrl", "not a YouTube URL")
	}

	excerpt := in.Excerpt
	if excerpt == "" {
		excerpt = content.MakeExcerpt(in.Content, content.ExcerptLimit)
	}
	story := &models.Story{
		Title:      in.Title,
		Excerpt:    excerpt,
		Content:    in.Content,
		Category:   in.Category,
		YoutubeURL: in.VideoURL.Ptr(),
		Timestamp:  s.now().UnixNano(),
	}
	if err := s.stories.Create(ctx, story); err != nil {
		return 0, fmt.Errorf("failed to create story: %w", err)
	}

	s.logger.Info("Story created", zap.Uint64("id", story.ID), zap.String("category", string(story.Category)))
	return story.ID, nil
}

// GetStory returns a story, failing when it does not exist
func (s *Service) GetStory(ctx context.Context, id uint64) (models.Story, error) {
	story, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return models.Story{}, fmt.Errorf("failed to load story: %w", err)
	}
	if story == nil {
		return models.Story{}, storyNotFound(id)
	}
	return *story, nil
}

// GetLatestStories returns up to limit stories, newest first
func (s *Service) GetLatestStories(ctx context.Context, limit int) ([]models.Story, error) {
	if limit <= 0 {
		limit = defaultLatestLimit
	}
	if limit > maxLatestLimit {
		limit = maxLatestLimit
	}
	return s.stories.Latest(ctx, limit)
}

// GetStoriesByCategory returns the stories of a category
func (s *Service) GetStoriesByCategory(ctx context.Context, category models.StoryCategory) ([]models.Story, error) {
	if !content.IsValidCategory(category) {
		return []models.Story{}, nil
	}
	return s.stories.ByCategory(ctx, category)
}

// SearchStories returns stories whose title, excerpt or content contains
// text, ignoring case
func (s *Service) SearchStories(ctx context.Context, text string) ([]models.Story, error) {
	q := content.NormalizeQuery(text)
	if q == "" {
		return []models.Story{}, nil
	}
	candidates, err := s.stories.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to search stories: %w", err)
	}
	// LIKE treats % and _ as wildcards
	matched := make([]models.Story, 0, len(candidates))
	for _, story := range candidates {
		if content.MatchesQuery(story, q) {
			matched = append(matched, story)
		}
	}
	return matched, nil
}

// IncrementStoryViewCount adds one view to a story
func (s *Service) IncrementStoryViewCount(ctx context.Context, id uint64) error {
	ok, err := s.stories.IncrementViews(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	if !ok {
		return storyNotFound(id)
	}
	return nil
}

// AddComment appends a comment to an existing story
func (s *Service) AddComment(ctx context.Context, storyID uint64, name, message string) error {
	name, message, err := content.PrepareComment(name, message)
	if err != nil {
		return err
	}
	if err := s.requireStory(ctx, storyID); err != nil {
		return err
	}
	comment := &models.Comment{
		StoryID:   storyID,
		Name:      name,
		Message:   message,
		Timestamp: s.now().UnixNano(),
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return fmt.Errorf("failed to add comment: %w", err)
	}
	return nil
}

// GetComments returns the comments of a story, oldest first
func (s *Service) GetComments(ctx context.Context, storyID uint64) ([]models.Comment, error) {
	return s.comments.ByStory(ctx, storyID)
}

func (s *Service) putMedia(ctx context.Context, kind string, storyID uint64, data []byte, contentType string) error {
	if err := content.ValidateMedia(data, contentType, s.maxMedia); err != nil {
		return err
	}
	return s.media.Put(ctx, &models.StoredMedia{
		Kind:        kind,
		StoryID:     storyID,
		ContentType: contentType,
		Data:        data,
		UpdatedAt:   s.now().Unix(),
	})
}

func (s *Service) getMedia(ctx context.Context, kind string, storyID uint64) (models.Option[models.MediaAsset], error) {
	m, err := s.media.Get(ctx, kind, storyID)
	if err != nil {
		return models.None[models.MediaAsset](), fmt.Errorf("failed to load %s: %w", kind, err)
	}
	if m == nil {
		return models.None[models.MediaAsset](), nil
	}
	return models.Some(m.Asset()), nil
}

// UploadLogo replaces the site logo
func (s *Service) UploadLogo(ctx context.Context, data []byte, contentType string) error {
	if err := requireAdmin(ctx, "upload the logo"); err != nil {
		return err
	}
	return s.putMedia(ctx, models.MediaKindLogo, 0, data, contentType)
}

// GetLogo returns the site logo if set
func (s *Service) GetLogo(ctx context.Context) (models.Option[models.MediaAsset], error) {
	return s.getMedia(ctx, models.MediaKindLogo, 0)
}

// DeleteLogo removes the site logo
func (s *Service) DeleteLogo(ctx context.Context) error {
	if err := requireAdmin(ctx, "delete the logo"); err != nil {
		return err
	}
	return s.media.Delete(ctx, models.MediaKindLogo, 0)
}

// UploadThumbnail replaces a story's thumbnail
func (s *Service) UploadThumbnail(ctx context.Context, storyID uint64, data []byte, contentType string) error {
	if err := requireAdmin(ctx, "upload thumbnails"); err != nil {
		return err
	}
	if err := s.requireStory(ctx, storyID); err != nil {
		return err
	}
	return s.repo.Transaction(ctx, func(tx *db.Repository) error {
		txs := *s
		txs.media = db.NewMediaRepository(tx)
		if err := txs.putMedia(ctx, models.MediaKindThumbnail, storyID, data, contentType); err != nil {
			return err
		}
		return db.NewStoryRepository(tx).SetHasThumbnail(ctx, storyID, true)
	})
}

// GetThumbnail returns a story's thumbnail if set
func (s *Service) GetThumbnail(ctx context.Context, storyID uint64) (models.Option[models.MediaAsset], error) {
	return s.getMedia(ctx, models.MediaKindThumbnail, storyID)
}

// DeleteThumbnail removes a story's thumbnail
func (s *Service) DeleteThumbnail(ctx context.Context, storyID uint64) error {
	if err := requireAdmin(ctx, "delete thumbnails"); err != nil {
		return err
	}
	return s.repo.Transaction(ctx, func(tx *db.Repository) error {
		if err := db.NewMediaRepository(tx).Delete(ctx, models.MediaKindThumbnail, storyID); err != nil {
			return err
		}
		return db.NewStoryRepository(tx).SetHasThumbnail(ctx, storyID, false)
	})
}

// FollowWebsite adds one follower
func (s *Service) FollowWebsite(ctx context.Context) error {
	return s.stats.IncrementFollowers(ctx)
}

// GetFollowerCount returns the follower count
func (s *Service) GetFollowerCount(ctx context.Context) (uint64, error) {
	return s.stats.Followers(ctx)
}

// IsCallerAdmin reports whether the caller carries the admin role
func (s *Service) IsCallerAdmin(ctx context.Context) (bool, error) {
	return auth.FromContext(ctx).Admin, nil
}
