// Package prefs persists client-local display preferences.
package prefs

import (
	"context"
	"strconv"

	"github.com/darrkasamna/catalog/pkg/config"
)

// NightModeKey is the storage key of the night mode preference
const NightModeKey = "darr-ka-samna-night-mode"

// Store persists preferences across sessions
type Store interface {
	NightMode(ctx context.Context) (bool, error)
	SetNightMode(ctx context.Context, on bool) error
}

// ToggleNightMode flips the stored preference and returns the new value
func ToggleNightMode(ctx context.Context, s Store) (bool, error) {
	on, err := s.NightMode(ctx)
	if err != nil {
		return false, err
	}
	if err := s.SetNightMode(ctx, !on); err != nil {
		return on, err
	}
	return !on, nil
}

// NewStore returns the redis store when redis is configured and the file
// store otherwise
func NewStore(cfg *config.Config) (Store, error) {
	if cfg.Redis.Enabled {
		store, err := NewRedisStore(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store, nil
	}
	return NewFileStore(cfg.Prefs.Path), nil
}

// parseFlag reads a stored "true"/"false" value; anything else is false
func parseFlag(s string) bool {
	b, err := strconv.ParseBool(s)
	return err == nil && b
}
