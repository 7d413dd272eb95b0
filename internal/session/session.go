// Package session wires the gateway, query cache, media codec and
// catalog client into the single context object a client process holds.
package session

import (
	"context"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/darrkasamna/catalog/internal/cache"
	"github.com/darrkasamna/catalog/internal/catalog"
	"github.com/darrkasamna/catalog/internal/gateway"
	"github.com/darrkasamna/catalog/internal/media"
	"github.com/darrkasamna/catalog/internal/prefs"
	"github.com/darrkasamna/catalog/pkg/config"
	"github.com/darrkasamna/catalog/pkg/logging"
)

// Session owns the client-side state shared by every view
type Session struct {
	Gateway *gateway.Gateway
	Cache   *cache.Cache
	Codec   *media.Codec
	Catalog *catalog.Client
	Prefs   prefs.Store
	Logo    *media.Slot

	logger *zap.Logger
}

// New creates an unstarted session. store may be nil when preferences are
// not needed.
func New(cfg *config.Config, factory gateway.Factory, store prefs.Store) (*Session, error) {
	mode, err := catalog.ParseAuthorMode(cfg.Comments.AuthorMode)
	if err != nil {
		return nil, err
	}

	gw := gateway.New(factory)
	c := cache.New(gw.Ready, cache.WithFetchTimeout(cfg.Cache.FetchTimeout))
	codec := media.NewCodec()

	s := &Session{
		Gateway: gw,
		Cache:   c,
		Codec:   codec,
		Catalog: catalog.New(gw, c, catalog.Options{
			MaxMediaBytes: int(cfg.Media.MaxBytes),
			AuthorMode:    mode,
		}),
		Prefs:  store,
		Logo:   media.NewSlot(codec, cfg.Media.Placeholder),
		logger: logging.WithComponent("session"),
	}

	gw.OnReset(s.reset)
	return s, nil
}

func (s *Session) reset() {
	s.Cache.Reset()
	s.Logo.Close()
	released := s.Codec.ReleaseAll()
	s.logger.Debug("Session state dropped", zap.Int("released_handles", released))
}

// Start opens the gateway for id
func (s *Session) Start(ctx context.Context, id gateway.Identity) error {
	if err := s.Gateway.Connect(ctx, id); err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	return nil
}

// SwitchIdentity reopens the gateway for id. Cached queries and media
// handles from the previous identity are dropped first.
func (s *Session) SwitchIdentity(ctx context.Context, id gateway.Identity) error {
	if err := s.Gateway.Reconnect(ctx, id); err != nil {
		return fmt.Errorf("failed to switch identity: %w", err)
	}
	return nil
}

// LogoURL loads the site logo into the logo slot and returns the URL to
// render, the placeholder when there is none
func (s *Session) LogoURL(ctx context.Context) (string, error) {
	logo, err := s.Catalog.Logo(ctx)
	return s.Logo.Show(logo), err
}

// WithThumbnail loads a story's thumbnail and passes a live handle for it
// to fn. The handle is released when fn returns; fn receives nil when the
// story has no thumbnail.
func (s *Session) WithThumbnail(ctx context.Context, storyID uint64, fn func(*media.Handle) error) error {
	thumb, err := s.Catalog.Thumbnail(ctx, storyID)
	if err != nil {
		return err
	}
	asset, ok := thumb.Get()
	if !ok {
		return fn(nil)
	}
	return media.WithHandle(s.Codec, asset.Data, asset.ContentType, fn)
}

// Close releases media handles and closes the preference store
func (s *Session) Close() error {
	s.Logo.Close()
	s.Codec.ReleaseAll()
	if closer, ok := s.Prefs.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
