package session

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/darrkasamna/catalog/internal/gateway"
	"github.com/darrkasamna/catalog/internal/gateway/mocks"
	"github.com/darrkasamna/catalog/internal/media"
	"github.com/darrkasamna/catalog/internal/models"
	"github.com/darrkasamna/catalog/internal/prefs"
	"github.com/darrkasamna/catalog/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Cache:    config.CacheConfig{FetchTimeout: time.Second},
		Media:    config.MediaConfig{MaxBytes: 2 * 1024 * 1024},
		Comments: config.CommentsConfig{AuthorMode: "name"},
	}
}

func newTestSession(t *testing.T) (*Session, *mocks.MockBackend, *[]gateway.Identity) {
	t.Helper()
	ctrl := gomock.NewController(t)
	backend := mocks.NewMockBackend(ctrl)
	var opened []gateway.Identity

	factory := func(ctx context.Context, id gateway.Identity) (gateway.Backend, error) {
		opened = append(opened, id)
		return backend, nil
	}
	store := prefs.NewFileStore(filepath.Join(t.TempDir(), "prefs.yaml"))
	s, err := New(testConfig(), factory, store)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s, backend, &opened
}

func TestNew_RejectsUnknownAuthorMode(t *testing.T) {
	cfg := testConfig()
	cfg.Comments.AuthorMode = "nickname"
	_, err := New(cfg, nil, nil)
	assert.Error(t, err)
}

func TestSession_ReadsDegradeBeforeStart(t *testing.T) {
	s, _, _ := newTestSession(t)

	url, err := s.LogoURL(context.Background())
	require.NoError(t, err)
	assert.Equal(t, media.DefaultPlaceholder, url)
	assert.False(t, s.Gateway.Ready())
}

func TestSession_SwitchIdentityDropsState(t *testing.T) {
	s, backend, opened := newTestSession(t)
	ctx := context.Background()

	logo := models.Some(models.MediaAsset{ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}})
	backend.EXPECT().GetLogo(gomock.Any()).Return(logo, nil).Times(2)

	require.NoError(t, s.Start(ctx, gateway.Anonymous))
	url, err := s.LogoURL(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, media.DefaultPlaceholder, url)
	assert.Equal(t, 1, s.Codec.Live())
	assert.Equal(t, 1, s.Cache.Len())

	admin := gateway.Identity{Subject: "editor", Token: "tok"}
	require.NoError(t, s.SwitchIdentity(ctx, admin))
	assert.Equal(t, 0, s.Codec.Live())
	assert.Equal(t, 0, s.Cache.Len())
	assert.Equal(t, admin, s.Gateway.Identity())
	assert.Equal(t, []gateway.Identity{gateway.Anonymous, admin}, *opened)

	_, err = s.LogoURL(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Codec.Live())
}

func TestSession_NightModePreference(t *testing.T) {
	s, _, _ := newTestSession(t)
	ctx := context.Background()

	on, err := prefs.ToggleNightMode(ctx, s.Prefs)
	require.NoError(t, err)
	assert.True(t, on)

	on, err = s.Prefs.NightMode(ctx)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestSession_WithThumbnailReleasesHandle(t *testing.T) {
	s, backend, _ := newTestSession(t)
	ctx := context.Background()
	require.NoError(t, s.Start(ctx, gateway.Anonymous))

	thumb := models.Some(models.MediaAsset{ContentType: "image/jpeg", Data: []byte("jpg")})
	backend.EXPECT().GetThumbnail(gomock.Any(), uint64(3)).Return(thumb, nil)
	backend.EXPECT().GetThumbnail(gomock.Any(), uint64(4)).Return(models.None[models.MediaAsset](), nil)

	err := s.WithThumbnail(ctx, 3, func(h *media.Handle) error {
		require.NotNil(t, h)
		assert.Equal(t, "image/jpeg", h.ContentType)
		uri, err := s.Codec.DataURI(h)
		require.NoError(t, err)
		assert.Equal(t, "data:image/jpeg;base64,anBn", uri)
		assert.Equal(t, 1, s.Codec.Live())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 0, s.Codec.Live())

	called := false
	err = s.WithThumbnail(ctx, 4, func(h *media.Handle) error {
		called = true
		assert.Nil(t, h)
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
}
