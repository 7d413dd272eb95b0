package remote

import "github.com/darrkasamna/catalog/internal/models"

// JSON-RPC method names served by the catalog store
const (
	MethodAddStory             = "catalog.add_story"
	MethodGetStory             = "catalog.get_story"
	MethodGetLatestStories     = "catalog.get_latest_stories"
	MethodGetStoriesByCategory = "catalog.get_stories_by_category"
	MethodSearchStories        = "catalog.search_stories"
	MethodIncrementViewCount   = "catalog.increment_story_view_count"
	MethodAddComment           = "catalog.add_comment"
	MethodGetComments          = "catalog.get_comments"
	MethodUploadLogo           = "catalog.upload_logo"
	MethodGetLogo              = "catalog.get_logo"
	MethodDeleteLogo           = "catalog.delete_logo"
	MethodUploadThumbnail      = "catalog.upload_thumbnail"
	MethodGetThumbnail         = "catalog.get_thumbnail"
	MethodDeleteThumbnail      = "catalog.delete_thumbnail"
	MethodFollowWebsite        = "catalog.follow_website"
	MethodGetFollowerCount     = "catalog.get_follower_count"
	MethodIsCallerAdmin        = "catalog.is_caller_admin"
)

// Request parameters. Every method takes a single named-parameter object.
type (
	StoryIDParams struct {
		ID uint64 `json:"id"`
	}

	LatestParams struct {
		Limit int `json:"limit"`
	}

	CategoryParams struct {
		Category models.StoryCategory `json:"category"`
	}

	SearchParams struct {
		Text string `json:"text"`
	}

	CommentParams struct {
		StoryID uint64 `json:"storyId"`
		Name    string `json:"name"`
		Message string `json:"message"`
	}

	CommentsParams struct {
		StoryID uint64 `json:"storyId"`
	}

	MediaParams struct {
		StoryID     uint64 `json:"storyId,omitempty"`
		Data        []byte `json:"data"`
		ContentType string `json:"contentType"`
	}

	ThumbnailParams struct {
		StoryID uint64 `json:"storyId"`
	}

	AddStoryResult struct {
		ID uint64 `json:"id"`
	}

	CountResult struct {
		Count uint64 `json:"count"`
	}

	AdminResult struct {
		Admin bool `json:"admin"`
	}
)
