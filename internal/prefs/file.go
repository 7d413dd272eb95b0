package prefs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	"github.com/spf13/viper"
)

// FileStore keeps preferences in a YAML file
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a store backed by path. The file is created on the
// first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) load() (*viper.Viper, error) {
	v := viper.New()
	v.SetConfigFile(s.path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read preferences: %w", err)
	}
	return v, nil
}

// NightMode returns the stored preference, false when unset
func (s *FileStore) NightMode(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.load()
	if err != nil {
		return false, err
	}
	return parseFlag(v.GetString(NightModeKey)), nil
}

// SetNightMode stores the preference
func (s *FileStore) SetNightMode(ctx context.Context, on bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, err := s.load()
	if err != nil {
		return err
	}
	v.Set(NightModeKey, strconv.FormatBool(on))

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create preferences directory: %w", err)
	}
	if err := v.WriteConfigAs(s.path); err != nil {
		return fmt.Errorf("failed to write preferences: %w", err)
	}
	return nil
}
