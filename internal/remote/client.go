package remote

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/darrkasamna/catalog/internal/gateway"
	"github.com/darrkasamna/catalog/internal/models"
	"github.com/darrkasamna/catalog/pkg/config"
	"github.com/darrkasamna/catalog/pkg/logging"
)

// Client is a gateway.Backend served by a remote catalog store over
// JSON-RPC
type Client struct {
	rpc    *RPCClient
	logger *zap.Logger
}

// New creates a client for cfg.URL authenticating with token
func New(cfg *config.GatewayConfig, token string) (*Client, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("gateway_url is required")
	}

	logger := logging.WithComponent("remote-client")

	var limiter *rate.Limiter
	if cfg.RateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.Burst)
	}
	retry := DefaultRetryConfig()
	retry.MaxRetries = uint64(cfg.MaxRetries)

	client := &Client{
		rpc:    NewRPCClient(cfg.URL, token, &http.Client{Timeout: cfg.Timeout}, limiter, retry, logger),
		logger: logger,
	}

	logger.Info("Remote client initialized", zap.String("url", cfg.URL), zap.Bool("authenticated", token != ""))

	return client, nil
}

// Factory opens remote clients for the identity's token
func Factory(cfg *config.GatewayConfig) gateway.Factory {
	return func(ctx context.Context, id gateway.Identity) (gateway.Backend, error) {
		return New(cfg, id.Token)
	}
}

func (c *Client) AddStory(ctx context.Context, story models.NewStory) (uint64, error) {
	var res AddStoryResult
	if err := c.rpc.Call(ctx, MethodAddStory, story, &res, false); err != nil {
		return 0, err
	}
	return res.ID, nil
}

func (c *Client) GetStory(ctx context.Context, id uint64) (models.Story, error) {
	var story models.Story
	err := c.rpc.Call(ctx, MethodGetStory, StoryIDParams{ID: id}, &story, true)
	return story, err
}

func (c *Client) GetLatestStories(ctx context.Context, limit int) ([]models.Story, error) {
	var stories []models.Story
	err := c.rpc.Call(ctx, MethodGetLatestStories, LatestParams{Limit: limit}, &stories, true)
	return stories, err
}

func (c *Client) GetStoriesByCategory(ctx context.Context, category models.StoryCategory) ([]models.Story, error) {
	var stories []models.Story
	err := c.rpc.Call(ctx, MethodGetStoriesByCategory, CategoryParams{Category: category}, &stories, true)
	return stories, err
}

func (c *Client) SearchStories(ctx context.Context, text string) ([]models.Story, error) {
	var stories []models.Story
	err := c.rpc.Call(ctx, MethodSearchStories, SearchParams{Text: text}, &stories, true)
	return stories, err
}

func (c *Client) IncrementStoryViewCount(ctx context.Context, id uint64) error {
	return c.rpc.Call(ctx, MethodIncrementViewCount, StoryIDParams{ID: id}, nil, false)
}

func (c *Client) AddComment(ctx context.Context, storyID uint64, name, message string) error {
	return c.rpc.Call(ctx, MethodAddComment, CommentParams{StoryID: storyID, Name: name, Message: message}, nil, false)
}

func (c *Client) GetComments(ctx context.Context, storyID uint64) ([]models.Comment, error) {
	var comments []models.Comment
	err := c.rpc.Call(ctx, MethodGetComments, CommentsParams{StoryID: storyID}, &comments, true)
	return comments, err
}

func (c *Client) UploadLogo(ctx context.Context, data []byte, contentType string) error {
	return c.rpc.Call(ctx, MethodUploadLogo, MediaParams{Data: data, ContentType: contentType}, nil, false)
}

func (c *Client) GetLogo(ctx context.Context) (models.Option[models.MediaAsset], error) {
	var logo models.Option[models.MediaAsset]
	err := c.rpc.Call(ctx, MethodGetLogo, nil, &logo, true)
	return logo, err
}

func (c *Client) DeleteLogo(ctx context.Context) error {
	return c.rpc.Call(ctx, MethodDeleteLogo, nil, nil, false)
}

func (c *Client) UploadThumbnail(ctx context.Context, storyID uint64, data []byte, contentType string) error {
	return c.rpc.Call(ctx, MethodUploadThumbnail, MediaParams{StoryID: storyID, Data: data, ContentType: contentType}, nil, false)
}

func (c *Client) GetThumbnail(ctx context.Context, storyID uint64) (models.Option[models.MediaAsset], error) {
	var thumb models.Option[models.MediaAsset]
	err := c.rpc.Call(ctx, MethodGetThumbnail, ThumbnailParams{StoryID: storyID}, &thumb, true)
	return thumb, err
}

func (c *Client) DeleteThumbnail(ctx context.Context, storyID uint64) error {
	return c.rpc.Call(ctx, MethodDeleteThumbnail, ThumbnailParams{StoryID: storyID}, nil, false)
}

func (c *Client) FollowWebsite(ctx context.Context) error {
	return c.rpc.Call(ctx, MethodFollowWebsite, nil, nil, false)
}

func (c *Client) GetFollowerCount(ctx context.Context) (uint64, error) {
	var res CountResult
	err := c.rpc.Call(ctx, MethodGetFollowerCount, nil, &res, true)
	return res.Count, err
}

func (c *Client) IsCallerAdmin(ctx context.Context) (bool, error) {
	var res AdminResult
	err := c.rpc.Call(ctx, MethodIsCallerAdmin, nil, &res, true)
	return res.Admin, err
}

var _ gateway.Backend = (*Client)(nil)
