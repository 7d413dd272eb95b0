package api

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/darrkasamna/catalog/internal/models"
	"github.com/darrkasamna/catalog/internal/remote"
	"github.com/darrkasamna/catalog/internal/store"
)

// CatalogAPI serves the catalog store methods
type CatalogAPI struct {
	svc *store.Service
}

// NewCatalogAPI creates the catalog method handlers
func NewCatalogAPI(svc *store.Service) *CatalogAPI {
	return &CatalogAPI{svc: svc}
}

func decode(params json.RawMessage, v interface{}) error {
	if len(params) == 0 || string(params) == "null" {
		return nil
	}
	if err := json.Unmarshal(params, v); err != nil {
		return invalidParams(err)
	}
	return nil
}

// Register registers every catalog method on h
func (a *CatalogAPI) Register(h *JSONRPCHandler) {
	h.RegisterMethod(remote.MethodAddStory, a.AddStory)
	h.RegisterMethod(remote.MethodGetStory, a.GetStory)
	h.RegisterMethod(remote.MethodGetLatestStories, a.GetLatestStories)
	h.RegisterMethod(remote.MethodGetStoriesByCategory, a.GetStoriesByCategory)
	h.RegisterMethod(remote.MethodSearchStories, a.SearchStories)
	h.RegisterMethod(remote.MethodIncrementViewCount, a.IncrementStoryViewCount)
	h.RegisterMethod(remote.MethodAddComment, a.AddComment)
	h.RegisterMethod(remote.MethodGetComments, a.GetComments)
	h.RegisterMethod(remote.MethodUploadLogo, a.UploadLogo)
	h.RegisterMethod(remote.MethodGetLogo, a.GetLogo)
	h.RegisterMethod(remote.MethodDeleteLogo, a.DeleteLogo)
	h.RegisterMethod(remote.MethodUploadThumbnail, a.UploadThumbnail)
	h.RegisterMethod(remote.MethodGetThumbnail, a.GetThumbnail)
	h.RegisterMethod(remote.MethodDeleteThumbnail, a.DeleteThumbnail)
	h.RegisterMethod(remote.MethodFollowWebsite, a.FollowWebsite)
	h.RegisterMethod(remote.MethodGetFollowerCount, a.GetFollowerCount)
	h.RegisterMethod(remote.MethodIsCallerAdmin, a.IsCallerAdmin)
}

// AddStory handles catalog.add_story
func (a *CatalogAPI) AddStory(c *gin.Context, params json.RawMessage) (interface{}, error) {
	var p models.NewStory
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	id, err := a.svc.AddStory(c.Request.Context(), p)
	if err != nil {
		return nil, err
	}
	return remote.AddStoryResult{ID: id}, nil
}

// GetStory handles catalog.get_story
func (a *CatalogAPI) GetStory(c *gin.Context, params json.RawMessage) (interface{}, error) {
	var p remote.StoryIDParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return a.svc.GetStory(c.Request.Context(), p.ID)
}

// GetLatestStories handles catalog.get_latest_stories
func (a *CatalogAPI) GetLatestStories(c *gin.Context, params json.RawMessage) (interface{}, error) {
	var p remote.LatestParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return nonNil(a.svc.GetLatestStories(c.Request.Context(), p.Limit))
}

// GetStoriesByCategory handles catalog.get_stories_by_category
func (a *CatalogAPI) GetStoriesByCategory(c *gin.Context, params json.RawMessage) (interface{}, error) {
	var p remote.CategoryParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return nonNil(a.svc.GetStoriesByCategory(c.Request.Context(), p.Category))
}

// SearchStories handles catalog.search_stories
func (a *CatalogAPI) SearchStories(c *gin.Context, params json.RawMessage) (interface{}, error) {
	var p remote.SearchParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return nonNil(a.svc.SearchStories(c.Request.Context(), p.Text))
}

// IncrementStoryViewCount handles catalog.increment_story_view_count
func (a *CatalogAPI) IncrementStoryViewCount(c *gin.Context, params json.RawMessage) (interface{}, error) {
	var p remote.StoryIDParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return nil, a.svc.IncrementStoryViewCount(c.Request.Context(), p.ID)
}

// AddComment handles catalog.add_comment
func (a *CatalogAPI) AddComment(c *gin.Context, params json.RawMessage) (interface{}, error) {
	var p remote.CommentParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return nil, a.svc.AddComment(c.Request.Context(), p.StoryID, p.Name, p.Message)
}

// GetComments handles catalog.get_comments
func (a *CatalogAPI) GetComments(c *gin.Context, params json.RawMessage) (interface{}, error) {
	var p remote.CommentsParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	comments, err := a.svc.GetComments(c.Request.Context(), p.StoryID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

// UploadLogo handles catalog.upload_logo
func (a *CatalogAPI) UploadLogo(c *gin.Context, params json.RawMessage) (interface{}, error) {
	var p remote.MediaParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return nil, a.svc.UploadLogo(c.Request.Context(), p.Data, p.ContentType)
}

// GetLogo handles catalog.get_logo
func (a *CatalogAPI) GetLogo(c *gin.Context, params json.RawMessage) (interface{}, error) {
	return a.svc.GetLogo(c.Request.Context())
}

// DeleteLogo handles catalog.delete_logo
func (a *CatalogAPI) DeleteLogo(c *gin.Context, params json.RawMessage) (interface{}, error) {
	return nil, a.svc.DeleteLogo(c.Request.Context())
}

// UploadThumbnail handles catalog.upload_thumbnail
func (a *CatalogAPI) UploadThumbnail(c *gin.Context, params json.RawMessage) (interface{}, error) {
	var p remote.MediaParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return nil, a.svc.UploadThumbnail(c.Request.Context(), p.StoryID, p.Data, p.ContentType)
}

// GetThumbnail handles catalog.get_thumbnail
func (a *CatalogAPI) GetThumbnail(c *gin.Context, params json.RawMessage) (interface{}, error) {
	var p remote.ThumbnailParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return a.svc.GetThumbnail(c.Request.Context(), p.StoryID)
}

// DeleteThumbnail handles catalog.delete_thumbnail
func (a *CatalogAPI) DeleteThumbnail(c *gin.Context, params json.RawMessage) (interface{}, error) {
	var p remote.ThumbnailParams
	if err := decode(params, &p); err != nil {
		return nil, err
	}
	return nil, a.svc.DeleteThumbnail(c.Request.Context(), p.StoryID)
}

// FollowWebsite handles catalog.follow_website
func (a *CatalogAPI) FollowWebsite(c *gin.Context, params json.RawMessage) (interface{}, error) {
	return nil, a.svc.FollowWebsite(c.Request.Context())
}

// GetFollowerCount handles catalog.get_follower_count
func (a *CatalogAPI) GetFollowerCount(c *gin.Context, params json.RawMessage) (interface{}, error) {
	n, err := a.svc.GetFollowerCount(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return remote.CountResult{Count: n}, nil
}

// IsCallerAdmin handles catalog.is_caller_admin
func (a *CatalogAPI) IsCallerAdmin(c *gin.Context, params json.RawMessage) (interface{}, error) {
	admin, err := a.svc.IsCallerAdmin(c.Request.Context())
	if err != nil {
		return nil, err
	}
	return remote.AdminResult{Admin: admin}, nil
}

func nonNil(stories []models.Story, err error) (interface{}, error) {
	if err != nil {
		return nil, err
	}
	if stories == nil {
		stories = []models.Story{}
	}
	return stories, nil
}
