package media

import (
	"encoding/base64"
	"fmt"
	"mime"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/darrkasamna/catalog/pkg/logging"
)

// DefaultPlaceholder is shown when no handle can be produced
const DefaultPlaceholder = "/assets/generated/placeholder.png"

const urlScheme = "blob:catalog/"

// Handle is a transient displayable reference to an encoded payload.
// A handle must be released exactly once.
type Handle struct {
	ID          string
	URL         string
	ContentType string
	Size        int
}

type resource struct {
	data        []byte
	contentType string
}

// Codec turns binary payloads into handles and tracks the live ones
type Codec struct {
	mu     sync.Mutex
	live   map[string]resource
	logger *zap.Logger
}

// NewCodec creates an empty codec
func NewCodec() *Codec {
	return &Codec{
		live:   make(map[string]resource),
		logger: logging.WithComponent("media-codec"),
	}
}

// Encode registers data under a new handle. It never panics; on failure it
// returns nil and the caller should fall back to a placeholder.
func (c *Codec) Encode(data []byte, contentType string) (h *Handle) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Encode panicked", zap.Any("panic", r))
			h = nil
		}
	}()

	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		c.logger.Warn("Cannot encode media", zap.String("content_type", contentType), zap.Error(err))
		return nil
	}

	id, err := uuid.NewRandom()
	if err != nil {
		c.logger.Error("Failed to allocate handle id", zap.Error(err))
		return nil
	}

	buf := make([]byte, len(data))
	copy(buf, data)

	c.mu.Lock()
	c.live[id.String()] = resource{data: buf, contentType: mediaType}
	c.mu.Unlock()

	return &Handle{
		ID:          id.String(),
		URL:         urlScheme + id.String(),
		ContentType: mediaType,
		Size:        len(buf),
	}
}

// Release frees the handle. It reports false when the handle was nil or
// already released.
func (c *Codec) Release(h *Handle) bool {
	if h == nil {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.live[h.ID]; !ok {
		c.logger.Warn("Release of unknown handle", zap.String("handle", h.ID))
		return false
	}
	delete(c.live, h.ID)
	return true
}

// Resolve returns the payload behind a live handle URL
func (c *Codec) Resolve(url string) ([]byte, string, bool) {
	if len(url) <= len(urlScheme) || url[:len(urlScheme)] != urlScheme {
		return nil, "", false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	r, ok := c.live[url[len(urlScheme):]]
	if !ok {
		return nil, "", false
	}
	return r.data, r.contentType, true
}

// DataURI renders a live handle as an inline data URI
func (c *Codec) DataURI(h *Handle) (string, error) {
	if h == nil {
		return "", fmt.Errorf("nil handle")
	}
	data, contentType, ok := c.Resolve(h.URL)
	if !ok {
		return "", fmt.Errorf("handle %s is not live", h.ID)
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// Live returns the number of unreleased handles
func (c *Codec) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.live)
}

// ReleaseAll frees every live handle, returning how many were freed
func (c *Codec) ReleaseAll() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.live)
	c.live = make(map[string]resource)
	if n > 0 {
		c.logger.Info("Released all media handles", zap.Int("count", n))
	}
	return n
}
