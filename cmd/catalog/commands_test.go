package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/darrkasamna/catalog/internal/media"
	"github.com/darrkasamna/catalog/internal/models"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		arg     string
		want    uint64
		wantErr bool
	}{
		{"42", 42, false},
		{"0", 0, false},
		{"-1", 0, true},
		{"abc", 0, true},
	}
	for _, tt := range tests {
		got, err := parseID(tt.arg)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseID(%q) error = %v, wantErr %v", tt.arg, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("parseID(%q) = %d, want %d", tt.arg, got, tt.want)
		}
	}
}

func TestReadImage_ContentType(t *testing.T) {
	dir := t.TempDir()
	png := []byte("\x89PNG\r\n\x1a\n0000")

	named := filepath.Join(dir, "logo.png")
	unnamed := filepath.Join(dir, "logo")
	for _, p := range []string{named, unnamed} {
		if err := os.WriteFile(p, png, 0o644); err != nil {
			t.Fatal(err)
		}
	}

	for _, p := range []string{named, unnamed} {
		_, ct, err := readImage(p)
		if err != nil {
			t.Fatalf("readImage(%s) error = %v", p, err)
		}
		if ct != "image/png" {
			t.Errorf("readImage(%s) content type = %q, want image/png", p, ct)
		}
	}
}

func TestPrintStories(t *testing.T) {
	var buf bytes.Buffer
	printStories(&buf, nil)
	if !strings.Contains(buf.String(), "No stories found") {
		t.Errorf("empty output = %q", buf.String())
	}

	buf.Reset()
	printStories(&buf, []models.Story{{
		ID:        7,
		Title:     "The Well",
		Category:  models.CategoryIndianHorror,
		ViewCount: 3,
		Timestamp: time.Date(2024, 10, 31, 12, 0, 0, 0, time.UTC).UnixNano(),
	}})
	out := buf.String()
	for _, want := range []string{"The Well", "Indian Horror", "2024-10-31"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintThumbnail(t *testing.T) {
	codec := media.NewCodec()
	err := media.WithHandle(codec, []byte("png"), "image/png", func(h *media.Handle) error {
		var buf bytes.Buffer
		if err := printThumbnail(&buf, codec, h, false); err != nil {
			return err
		}
		if want := "Thumbnail: " + h.URL + " (image/png, 3 bytes)"; !strings.Contains(buf.String(), want) {
			t.Errorf("output = %q, want %q", buf.String(), want)
		}

		buf.Reset()
		if err := printThumbnail(&buf, codec, h, true); err != nil {
			return err
		}
		if want := "data:image/png;base64,cG5n"; !strings.Contains(buf.String(), want) {
			t.Errorf("inline output = %q, want %q", buf.String(), want)
		}
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if codec.Live() != 0 {
		t.Errorf("live handles = %d, want 0", codec.Live())
	}

	var buf bytes.Buffer
	if err := printThumbnail(&buf, codec, nil, true); err != nil || buf.Len() != 0 {
		t.Errorf("nil handle printed %q, err %v", buf.String(), err)
	}
}
