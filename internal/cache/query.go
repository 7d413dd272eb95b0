package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/darrkasamna/catalog/pkg/logging"
	"github.com/darrkasamna/catalog/pkg/telemetry"
)

// DefaultFetchTimeout bounds a single remote fetch
const DefaultFetchTimeout = 30 * time.Second

// Cache memoizes keyed reads. Entries stay fresh until invalidated; there
// is no expiry. Concurrent reads of a stale key share one fetch.
type Cache struct {
	ready        func() bool
	fetchTimeout time.Duration
	logger       *zap.Logger

	mu      sync.Mutex
	entries map[string]*entry
	seq     uint64
	group   singleflight.Group

	hits          metric.Int64Counter
	misses        metric.Int64Counter
	fetches       metric.Int64Counter
	invalidations metric.Int64Counter
}

type entry struct {
	key       Key
	value     interface{}
	fresh     bool
	gen       uint64
	fetchedAt time.Time
}

// Option configures a Cache
type Option func(*Cache)

// WithFetchTimeout bounds each fetch
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Cache) {
		c.fetchTimeout = d
	}
}

// New creates a cache whose reads only reach the remote store while ready
// reports true
func New(ready func() bool, opts ...Option) *Cache {
	c := &Cache{
		ready:         ready,
		fetchTimeout:  DefaultFetchTimeout,
		logger:        logging.WithComponent("query-cache"),
		entries:       make(map[string]*entry),
		hits:          telemetry.Counter("catalog.cache.hits", "Reads served from a fresh entry"),
		misses:        telemetry.Counter("catalog.cache.misses", "Reads of stale or unknown keys"),
		fetches:       telemetry.Counter("catalog.cache.fetches", "Remote fetches started by the cache"),
		invalidations: telemetry.Counter("catalog.cache.invalidations", "Entries marked stale"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Read returns the value cached under key, fetching it when stale. While
// the gateway is not ready it returns empty without fetching. A fetch
// outlives a cancelled caller so other readers of the key still get it.
func Read[T any](ctx context.Context, c *Cache, key Key, empty T, fetch func(context.Context) (T, error)) (T, error) {
	if c.ready != nil && !c.ready() {
		return empty, nil
	}

	id := key.id()
	kind := attribute.String("kind", key[0])

	c.mu.Lock()
	e, ok := c.entries[id]
	if !ok {
		e = &entry{key: key, gen: c.nextGen()}
		c.entries[id] = e
	}
	if e.fresh {
		v := e.value
		c.mu.Unlock()
		c.hits.Add(ctx, 1, metric.WithAttributes(kind))
		val, _ := v.(T)
		return val, nil
	}
	gen := e.gen
	c.mu.Unlock()
	c.misses.Add(ctx, 1, metric.WithAttributes(kind))

	ch := c.group.DoChan(id+"#"+strconv.FormatUint(gen, 10), func() (interface{}, error) {
		fctx := context.WithoutCancel(ctx)
		if c.fetchTimeout > 0 {
			var cancel context.CancelFunc
			fctx, cancel = context.WithTimeout(fctx, c.fetchTimeout)
			defer cancel()
		}
		fctx, span := telemetry.StartSpan(fctx, "cache.fetch",
			trace.WithAttributes(attribute.String("key", key.String())))
		defer span.End()

		c.fetches.Add(fctx, 1, metric.WithAttributes(kind))
		c.logger.Debug("Fetching", zap.Stringer("key", key))

		v, err := fetch(fctx)
		if err != nil {
			span.RecordError(err)
			return nil, err
		}
		c.store(id, e, gen, v)
		return v, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return empty, res.Err
		}
		val, _ := res.Val.(T)
		return val, nil
	case <-ctx.Done():
		return empty, ctx.Err()
	}
}

// store records a fetch result unless the entry was invalidated or dropped
// while the fetch was in flight
func (c *Cache) store(id string, e *entry, gen uint64, v interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.entries[id] != e || e.gen != gen {
		c.logger.Debug("Discarding superseded fetch", zap.Stringer("key", e.key))
		return
	}
	e.value = v
	e.fresh = true
	e.fetchedAt = time.Now()
}

func (c *Cache) nextGen() uint64 {
	c.seq++
	return c.seq
}

// Invalidate marks every entry whose key starts with prefix stale and
// returns how many were marked. The next read of such a key re-fetches.
func (c *Cache) Invalidate(prefix Key) int {
	c.mu.Lock()
	n := 0
	for _, e := range c.entries {
		if e.key.HasPrefix(prefix) {
			e.fresh = false
			e.gen = c.nextGen()
			n++
		}
	}
	c.mu.Unlock()

	if n > 0 {
		c.invalidations.Add(context.Background(), int64(n),
			metric.WithAttributes(attribute.String("prefix", prefix.String())))
	}
	c.logger.Debug("Invalidated", zap.Stringer("prefix", prefix), zap.Int("entries", n))
	return n
}

// InvalidateAll marks every entry stale
func (c *Cache) InvalidateAll() int {
	return c.Invalidate(Key{})
}

// Reset drops every entry. Fetches in flight complete for their callers
// but are not stored.
func (c *Cache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		e.gen = c.nextGen()
	}
	c.entries = make(map[string]*entry)
	c.logger.Info("Cache reset")
}

// Len returns the number of tracked keys
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Lookup returns the memoized value of key without fetching. fresh is
// false when the entry is stale; ok is false when nothing was ever stored.
func Lookup[T any](c *Cache, key Key) (value T, fresh bool, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, found := c.entries[key.id()]
	if !found || (e.value == nil && !e.fresh) {
		return value, false, false
	}
	value, _ = e.value.(T)
	return value, e.fresh, true
}
