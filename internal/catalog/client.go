// Package catalog exposes the story catalog to callers: keyed, memoized
// reads through the query cache and mutations that invalidate exactly the
// keys they affect.
package catalog

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
	"go.uber.org/zap"

	"github.com/darrkasamna/catalog/internal/cache"
	"github.com/darrkasamna/catalog/internal/content"
	"github.com/darrkasamna/catalog/internal/gateway"
	"github.com/darrkasamna/catalog/pkg/logging"
	"github.com/darrkasamna/catalog/pkg/telemetry"
)

// DefaultLatestLimit is the page size of the latest stories list
const DefaultLatestLimit = 20

// AuthorMode selects what is recorded as a comment's author
type AuthorMode string

const (
	// AuthorName records the free-text name supplied with the comment
	AuthorName AuthorMode = "name"
	// AuthorIdentity records the caller's identity subject
	AuthorIdentity AuthorMode = "identity"
)

// ParseAuthorMode parses a configured author mode
func ParseAuthorMode(s string) (AuthorMode, error) {
	switch AuthorMode(s) {
	case AuthorName, AuthorIdentity:
		return AuthorMode(s), nil
	case "":
		return AuthorName, nil
	default:
		return "", fmt.Errorf("unknown comment author mode %q", s)
	}
}

// Options configures a Client
type Options struct {
	MaxMediaBytes int
	AuthorMode    AuthorMode
}

// Client reads and writes the catalog through one gateway and cache pair
type Client struct {
	gw     *gateway.Gateway
	cache  *cache.Cache
	logger *zap.Logger

	maxMediaBytes int
	authorMode    AuthorMode

	mutations metric.Int64Counter
}

// New creates a client over gw and c
func New(gw *gateway.Gateway, c *cache.Cache, opts Options) *Client {
	if opts.MaxMediaBytes <= 0 {
		opts.MaxMediaBytes = content.DefaultMaxMediaBytes
	}
	if opts.AuthorMode == "" {
		opts.AuthorMode = AuthorName
	}
	return &Client{
		gw:            gw,
		cache:         c,
		logger:        logging.WithComponent("catalog"),
		maxMediaBytes: opts.MaxMediaBytes,
		authorMode:    opts.AuthorMode,
		mutations:     telemetry.Counter("catalog.mutations", "Catalog mutations by operation and outcome"),
	}
}

// Cache returns the query cache backing the client
func (c *Client) Cache() *cache.Cache {
	return c.cache
}
