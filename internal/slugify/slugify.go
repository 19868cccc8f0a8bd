// Package slugify derives filesystem-safe filename fragments from post
// titles. The rules are part of the output naming contract: slugs are
// lowercase, drawn from a restricted alphabet, capped at MaxLength runes,
// and never empty.
package slugify

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// MaxLength bounds the slug so derived filenames stay portable.
const MaxLength = 50

// Fallback is returned when a title yields no usable characters at all.
const Fallback = "untitled-post"

var (
	// disallowed drops everything except word characters, whitespace, and
	// hyphens. Combining marks produced by NFKD decomposition fall out
	// here, which is what ASCII-folds accented letters.
	disallowed = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	collapse   = regexp.MustCompile(`[-\s]+`)
)

// Slugify turns a title into a slug of 1 to MaxLength runes.
func Slugify(title string) string {
	value := norm.NFKD.String(title)
	value = disallowed.ReplaceAllString(value, "")
	value = collapse.ReplaceAllString(value, "-")
	value = strings.Trim(value, "-")
	value = strings.ToLower(value)

	if runes := []rune(value); len(runes) > MaxLength {
		value = string(runes[:MaxLength])
	}
	value = strings.TrimRight(value, "-")

	if value == "" {
		return Fallback
	}
	return value
}
