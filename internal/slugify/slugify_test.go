package slugify

import (
	"regexp"
	"strings"
	"testing"
)

func TestSlugifyBasicTitles(t *testing.T) {
	cases := map[string]string{
		"Hi":                        "hi",
		"Hello World":               "hello-world",
		"  Spaces   Everywhere  ":   "spaces-everywhere",
		"Already-hyphenated--title": "already-hyphenated-title",
		"Punctuation, removed!":     "punctuation-removed",
		"under_scores kept":         "under_scores-kept",
	}
	for input, want := range cases {
		if got := Slugify(input); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestSlugifyFoldsAccents(t *testing.T) {
	if got := Slugify("Héllo Wörld"); got != "hello-world" {
		t.Fatalf("expected accents folded, got %q", got)
	}
}

func TestSlugifyEmptyFallsBack(t *testing.T) {
	for _, input := range []string{"", "!!!", "   ", "---"} {
		if got := Slugify(input); got != Fallback {
			t.Fatalf("Slugify(%q) = %q, want %q", input, got, Fallback)
		}
	}
}

func TestSlugifyLengthBounds(t *testing.T) {
	safe := regexp.MustCompile(`^[a-z0-9_-]+$`)

	inputs := []string{
		"Hi",
		strings.Repeat("very long title ", 20),
		strings.Repeat("a", 49) + " tail gets cut",
		"!!!",
	}
	for _, input := range inputs {
		got := Slugify(input)
		if n := len([]rune(got)); n < 1 || n > MaxLength {
			t.Fatalf("Slugify(%q) length %d out of [1, %d]", input, n, MaxLength)
		}
		if !safe.MatchString(got) {
			t.Fatalf("Slugify(%q) = %q contains unsafe characters", input, got)
		}
	}
}

func TestSlugifyTruncationTrimsTrailingHyphen(t *testing.T) {
	// 49 characters followed by a hyphen boundary: the cut lands on the
	// hyphen, which must not survive.
	input := strings.Repeat("a", 49) + " bbbb"
	got := Slugify(input)
	if strings.HasSuffix(got, "-") {
		t.Fatalf("expected trailing hyphen trimmed, got %q", got)
	}
	if got != strings.Repeat("a", 49) {
		t.Fatalf("expected 49 a's, got %q", got)
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"Hello World",
		"Héllo Wörld",
		strings.Repeat("word ", 30),
		"Untitled Post",
	}
	for _, input := range inputs {
		once := Slugify(input)
		if twice := Slugify(once); twice != once {
			t.Fatalf("Slugify not idempotent for %q: %q != %q", input, twice, once)
		}
	}
}
