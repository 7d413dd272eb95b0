package prefs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileStore_DefaultsToOff(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "prefs.yaml"))

	on, err := s.NightMode(context.Background())
	if err != nil {
		t.Fatalf("NightMode() error = %v", err)
	}
	if on {
		t.Error("night mode should default to off")
	}
}

func TestFileStore_PersistsAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.yaml")
	ctx := context.Background()

	if err := NewFileStore(path).SetNightMode(ctx, true); err != nil {
		t.Fatalf("SetNightMode() error = %v", err)
	}

	on, err := NewFileStore(path).NightMode(ctx)
	if err != nil {
		t.Fatalf("NightMode() error = %v", err)
	}
	if !on {
		t.Error("night mode should persist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), NightModeKey) {
		t.Errorf("preferences file missing key: %s", data)
	}
}

func TestToggleNightMode(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "prefs.yaml"))
	ctx := context.Background()

	for i, want := range []bool{true, false, true} {
		got, err := ToggleNightMode(ctx, s)
		if err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
		if got != want {
			t.Errorf("toggle %d = %v, want %v", i, got, want)
		}
	}
}

func TestParseFlag(t *testing.T) {
	tests := []struct {
		in       string
		expected bool
	}{
		{"true", true},
		{"false", false},
		{"", false},
		{"yes", false},
	}
	for _, tt := range tests {
		if got := parseFlag(tt.in); got != tt.expected {
			t.Errorf("parseFlag(%q) = %v, want %v", tt.in, got, tt.expected)
		}
	}
}
