package remote_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darrkasamna/catalog/internal/api"
	"github.com/darrkasamna/catalog/internal/auth"
	"github.com/darrkasamna/catalog/internal/cache"
	"github.com/darrkasamna/catalog/internal/catalog"
	"github.com/darrkasamna/catalog/internal/content"
	"github.com/darrkasamna/catalog/internal/db"
	"github.com/darrkasamna/catalog/internal/gateway"
	"github.com/darrkasamna/catalog/internal/models"
	"github.com/darrkasamna/catalog/internal/remote"
	"github.com/darrkasamna/catalog/internal/store"
	"github.com/darrkasamna/catalog/pkg/config"
	apperr "github.com/darrkasamna/catalog/pkg/errors"
)

type fixture struct {
	cfg       *config.GatewayConfig
	authority *auth.Authority
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.New(&config.DatabaseConfig{URL: "sqlite://:memory:"}, "error")
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	require.NoError(t, database.Migrate(context.Background()))

	authority, err := auth.NewAuthority("integration-secret", time.Hour)
	require.NoError(t, err)

	engine := gin.New()
	api.NewRouter(database, store.New(database, content.DefaultMaxMediaBytes), api.RouterOptions{
		Authority: authority,
	}).SetupRoutes(engine)

	srv := httptest.NewServer(engine)
	t.Cleanup(srv.Close)

	return &fixture{
		cfg:       &config.GatewayConfig{URL: srv.URL + "/rpc", Timeout: 5 * time.Second},
		authority: authority,
	}
}

func (f *fixture) client(t *testing.T, subject string, admin bool) *catalog.Client {
	t.Helper()
	id := gateway.Anonymous
	if subject != "" {
		token, err := f.authority.Issue(subject, admin)
		require.NoError(t, err)
		id = gateway.Identity{Subject: subject, Token: token}
	}

	gw := gateway.New(remote.Factory(f.cfg))
	require.NoError(t, gw.Connect(context.Background(), id))
	return catalog.New(gw, cache.New(gw.Ready), catalog.Options{})
}

func TestRemote_StoryRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	editor := f.client(t, "editor", true)

	id, err := editor.CreateStory(ctx, content.StoryDraft{
		Title:    "The Lodge",
		Content:  "The guestbook had one more name each morning.",
		Category: string(models.CategoryHauntedPlaces),
	})
	require.NoError(t, err)

	reader := f.client(t, "", false)
	story, err := reader.Story(ctx, id)
	require.NoError(t, err)
	got, ok := story.Get()
	require.True(t, ok)
	assert.Equal(t, "The Lodge", got.Title)
	assert.Equal(t, models.CategoryHauntedPlaces, got.Category)

	stories, err := reader.StoriesByCategory(ctx, models.CategoryHauntedPlaces)
	require.NoError(t, err)
	assert.Len(t, stories, 1)

	require.NoError(t, reader.IncrementView(ctx, id))
	require.NoError(t, reader.IncrementView(ctx, id))
	story, err = reader.Story(ctx, id)
	require.NoError(t, err)
	got, _ = story.Get()
	assert.Equal(t, uint64(2), got.ViewCount)
}

func TestRemote_ReaderWritesAreUnauthorized(t *testing.T) {
	f := newFixture(t)
	reader := f.client(t, "reader", false)

	err := reader.UploadLogo(context.Background(), make([]byte, 500*1024), "image/png")
	require.Error(t, err)
	assert.True(t, apperr.IsUnauthorized(err))
	assert.Contains(t, err.Error(), "Only admins")
}

func TestRemote_CommentsAndFollowers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	editor := f.client(t, "editor", true)
	id, err := editor.CreateStory(ctx, content.StoryDraft{
		Title:    "Static",
		Content:  "The radio only played at 3am.",
		Category: string(models.CategoryPsychologicalHorror),
	})
	require.NoError(t, err)

	reader := f.client(t, "", false)
	require.NoError(t, reader.AddComment(ctx, id, "Asha", "Chilling."))
	comments, err := reader.Comments(ctx, id)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "Asha", comments[0].Name)

	require.NoError(t, reader.Follow(ctx))
	count, err := reader.FollowerCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)

	logo, err := reader.Logo(ctx)
	require.NoError(t, err)
	assert.True(t, logo.IsNone())
}

func TestRemote_MissingStoryIsNotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.client(t, "", false).Story(context.Background(), 404)
	require.Error(t, err)
	assert.True(t, apperr.IsNotFound(err))
	assert.Equal(t, "Story 404 not found", err.Error())
}
