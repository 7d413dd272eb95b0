package content

import (
	"strings"
	"testing"
)

func TestMakeExcerpt(t *testing.T) {
	long := strings.Repeat("a", 151)
	exact := strings.Repeat("b", 150)
	hindi := strings.Repeat("भ", 160)

	tests := []struct {
		name     string
		content  string
		expected string
	}{
		{"empty", "", ""},
		{"short", "A chill in the haveli.", "A chill in the haveli."},
		{"exactly at limit", exact, exact},
		{"one over limit", long, strings.Repeat("a", 150) + Ellipsis},
		{"multibyte counted as characters", hindi, strings.Repeat("भ", 150) + Ellipsis},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := MakeExcerpt(tt.content, ExcerptLimit)
			if result != tt.expected {
				t.Errorf("MakeExcerpt() = %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestMakeExcerpt_IsPrefixOfContent(t *testing.T) {
	for n := 0; n < 400; n += 7 {
		content := strings.Repeat("x", n)
		excerpt := MakeExcerpt(content, ExcerptLimit)
		if excerpt == content {
			continue
		}
		body := strings.TrimSuffix(excerpt, Ellipsis)
		if !strings.HasPrefix(content, body) || len(body) != ExcerptLimit {
			t.Errorf("len %d: excerpt %q is not a %d-char prefix", n, excerpt, ExcerptLimit)
		}
	}
}

func TestMakeExcerpt_ZeroLimit(t *testing.T) {
	if got := MakeExcerpt("abc", 0); got != Ellipsis {
		t.Errorf("MakeExcerpt(abc, 0) = %q, want %q", got, Ellipsis)
	}
	if got := MakeExcerpt("", 0); got != "" {
		t.Errorf("MakeExcerpt(\"\", 0) = %q, want empty", got)
	}
}
