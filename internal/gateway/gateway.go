package gateway

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/darrkasamna/catalog/pkg/logging"
)

// Gateway is the single shared handle to the remote store. It is created
// unready; Connect opens the backend once, and Reconnect replaces it after
// an identity change, notifying reset listeners so cached data is dropped.
type Gateway struct {
	factory Factory
	logger  *zap.Logger

	// connMu serializes opening backends so at most one factory call runs
	connMu sync.Mutex

	mu       sync.RWMutex
	backend  Backend
	identity Identity
	ready    chan struct{}
	onReset  []func()
}

// New creates an unready gateway
func New(factory Factory) *Gateway {
	return &Gateway{
		factory: factory,
		logger:  logging.WithComponent("gateway"),
		ready:   make(chan struct{}),
	}
}

// OnReset registers fn to run after every identity change
func (g *Gateway) OnReset(fn func()) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.onReset = append(g.onReset, fn)
}

// Connect opens the backend for id if none is open yet. Later calls are
// no-ops while a backend is open.
func (g *Gateway) Connect(ctx context.Context, id Identity) error {
	g.connMu.Lock()
	defer g.connMu.Unlock()
	return g.connect(ctx, id)
}

func (g *Gateway) connect(ctx context.Context, id Identity) error {
	if g.Ready() {
		return nil
	}

	backend, err := g.factory(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to open backend: %w", err)
	}

	g.mu.Lock()
	g.backend = backend
	g.identity = id
	close(g.ready)
	g.mu.Unlock()

	g.logger.Info("Gateway ready", zap.String("subject", id.Subject))
	return nil
}

// Reconnect replaces the backend with one opened for id. Reset listeners
// run after the swap, before Reconnect returns. On failure the gateway is
// left unready.
func (g *Gateway) Reconnect(ctx context.Context, id Identity) error {
	g.connMu.Lock()
	defer g.connMu.Unlock()

	g.mu.Lock()
	g.backend = nil
	g.identity = Anonymous
	select {
	case <-g.ready:
		g.ready = make(chan struct{})
	default:
	}
	listeners := append([]func(){}, g.onReset...)
	g.mu.Unlock()

	for _, fn := range listeners {
		fn()
	}
	g.logger.Info("Gateway reset", zap.String("subject", id.Subject))

	return g.connect(ctx, id)
}

// Backend returns the open backend, or false when the gateway is not ready
func (g *Gateway) Backend() (Backend, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.backend, g.backend != nil
}

// Ready reports whether a backend is open
func (g *Gateway) Ready() bool {
	_, ok := g.Backend()
	return ok
}

// Identity returns the identity the open backend was created for
func (g *Gateway) Identity() Identity {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.identity
}

// WaitReady blocks until the gateway is ready or ctx is done
func (g *Gateway) WaitReady(ctx context.Context) error {
	g.mu.RLock()
	ready := g.ready
	g.mu.RUnlock()
	select {
	case <-ready:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
