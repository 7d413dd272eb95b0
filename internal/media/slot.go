package media

import (
	"sync"

	"github.com/darrkasamna/catalog/internal/models"
)

// Slot holds at most one handle for a display position, such as the site
// logo in a header. Showing a new asset releases the previous handle.
type Slot struct {
	codec       *Codec
	placeholder string

	mu      sync.Mutex
	current *Handle
}

// NewSlot creates a slot that falls back to placeholder
func NewSlot(codec *Codec, placeholder string) *Slot {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}
	return &Slot{codec: codec, placeholder: placeholder}
}

// Show displays asset and returns the URL to render. Absent assets and
// failed encodes render the placeholder.
func (s *Slot) Show(asset models.Option[models.MediaAsset]) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var next *Handle
	if a, ok := asset.Get(); ok {
		next = s.codec.Encode(a.Data, a.ContentType)
	}
	if s.current != nil {
		s.codec.Release(s.current)
	}
	s.current = next
	if next == nil {
		return s.placeholder
	}
	return next.URL
}

// Current returns the handle on display, if any
func (s *Slot) Current() *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Close releases the handle on display
func (s *Slot) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current != nil {
		s.codec.Release(s.current)
		s.current = nil
	}
}

// WithHandle encodes data, passes the handle to fn and releases it on every
// exit path. fn receives nil when encoding failed.
func WithHandle(codec *Codec, data []byte, contentType string, fn func(*Handle) error) error {
	h := codec.Encode(data, contentType)
	defer codec.Release(h)
	return fn(h)
}
