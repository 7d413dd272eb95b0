package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/darrkasamna/catalog/internal/content"
	"github.com/darrkasamna/catalog/internal/models"
)

// Repository provides database access methods
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new repository
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Transaction runs fn with repositories bound to one transaction
func (r *Repository) Transaction(ctx context.Context, fn func(tx *Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx})
	})
}

// StoryRepository provides story-related database operations
type StoryRepository struct {
	*Repository
}

// NewStoryRepository creates a new story repository
func NewStoryRepository(repo *Repository) *StoryRepository {
	return &StoryRepository{Repository: repo}
}

// GetByID retrieves a story by ID
func (r *StoryRepository) GetByID(ctx context.Context, id uint64) (*models.Story, error) {
	var story models.Story
	if err := r.db.WithContext(ctx).First(&story, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &story, nil
}

// Latest retrieves the newest stories, newest first
func (r *StoryRepository) Latest(ctx context.Context, limit int) ([]models.Story, error) {
	var stories []models.Story
	if err := r.db.WithContext(ctx).
		Order("timestamp DESC").Order("id DESC").
		Limit(limit).
		Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

// ByCategory retrieves the stories of a category, newest first
func (r *StoryRepository) ByCategory(ctx context.Context, category models.StoryCategory) ([]models.Story, error) {
	var stories []models.Story
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("timestamp DESC").Order("id DESC").
		Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

// Search retrieves stories whose title, excerpt or content contains term,
// ignoring case, newest first. SQLite's LOWER only folds ASCII, so on
// sqlite the match runs in Go over every story.
func (r *StoryRepository) Search(ctx context.Context, term string) ([]models.Story, error) {
	query := r.db.WithContext(ctx).Order("timestamp DESC").Order("id DESC")
	if r.db.Dialector.Name() == "sqlite" {
		var all []models.Story
		if err := query.Find(&all).Error; err != nil {
			return nil, err
		}
		q := content.NormalizeQuery(term)
		stories := make([]models.Story, 0, len(all))
		for _, s := range all {
			if content.MatchesQuery(s, q) {
				stories = append(stories, s)
			}
		}
		return stories, nil
	}

	pattern := "%" + term + "%"
	var stories []models.Story
	if err := query.
		Where("LOWER(title) LIKE ? OR LOWER(excerpt) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern, pattern).
		Find(&stories).Error; err != nil {
		return nil, err
	}
	return stories, nil
}

// Create creates a new story, filling in its ID
func (r *StoryRepository) Create(ctx context.Context, story *models.Story) error {
	return r.db.WithContext(ctx).Create(story).Error
}

// IncrementViews adds one to a story's view counter. It reports false when
// no story has the id.
func (r *StoryRepository) IncrementViews(ctx context.Context, id uint64) (bool, error) {
	res := r.db.WithContext(ctx).Model(&models.Story{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	return res.RowsAffected > 0, res.Error
}

// SetHasThumbnail records whether a story has a thumbnail
func (r *StoryRepository) SetHasThumbnail(ctx context.Context, id uint64, has bool) error {
	return r.db.WithContext(ctx).Model(&models.Story{}).
		Where("id = ?", id).
		UpdateColumn("has_thumbnail", has).Error
}

// CommentRepository provides comment-related database operations
type CommentRepository struct {
	*Repository
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(repo *Repository) *CommentRepository {
	return &CommentRepository{Repository: repo}
}

// ByStory retrieves the comments of a story, oldest first
func (r *CommentRepository) ByStory(ctx context.Context, storyID uint64) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).
		Where("story_id = ?", storyID).
		Order("timestamp ASC").Order("id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// Create appends a comment
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(comment).Error
}

// MediaRepository provides media-related database operations
type MediaRepository struct {
	*Repository
}

// NewMediaRepository creates a new media repository
func NewMediaRepository(repo *Repository) *MediaRepository {
	return &MediaRepository{Repository: repo}
}

// Get retrieves a media asset by kind and story
func (r *MediaRepository) Get(ctx context.Context, kind string, storyID uint64) (*models.StoredMedia, error) {
	var media models.StoredMedia
	if err := r.db.WithContext(ctx).
		Where("kind = ? AND story_id = ?", kind, storyID).
		First(&media).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &media, nil
}

// Put inserts or replaces a media asset
func (r *MediaRepository) Put(ctx context.Context, media *models.StoredMedia) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "kind"}, {Name: "story_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content_type", "data", "updated_at"}),
	}).Create(media).Error
}

// Delete removes a media asset. Deleting an absent asset is not an error.
func (r *MediaRepository) Delete(ctx context.Context, kind string, storyID uint64) error {
	return r.db.WithContext(ctx).
		Where("kind = ? AND story_id = ?", kind, storyID).
		Delete(&models.StoredMedia{}).Error
}

// StatsRepository provides site counter operations
type StatsRepository struct {
	*Repository
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(repo *Repository) *StatsRepository {
	return &StatsRepository{Repository: repo}
}

// Followers returns the follower count
func (r *StatsRepository) Followers(ctx context.Context) (uint64, error) {
	var stats models.SiteStats
	if err := r.db.WithContext(ctx).First(&stats, models.SiteStatsID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return stats.Followers, nil
}

// IncrementFollowers adds one follower, creating the stats row if needed
func (r *StatsRepository) IncrementFollowers(ctx context.Context) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"followers": gorm.Expr("site_stats.followers + ?", 1),
		}),
	}).Create(&models.SiteStats{ID: models.SiteStatsID, Followers: 1}).Error
}
