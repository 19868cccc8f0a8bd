package markdown

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-md2html/internal/dates"
	"github.com/goliatone/go-md2html/pkg/interfaces"
)

// DefaultTitle is used when no title field can be located.
const DefaultTitle = "Untitled Post"

// DefaultTagsLiteral is used when no tags field can be located.
const DefaultTagsLiteral = "[]"

// Field extraction is deliberately a best-effort pattern search over the
// whole document, not a structural parse: source documents are not
// guaranteed well-formed, and a field appearing outside a delimited header
// must still be picked up.
var (
	dateField  = regexp.MustCompile(`(?m)^date:\s*["']?(.+?)["']?\s*$`)
	titleField = regexp.MustCompile(`(?m)^title:\s*["'](.+?)["']`)
	tagsField  = regexp.MustCompile(`(?m)^tags:\s*(\[[^\]]*\])`)

	leadingBlock = regexp.MustCompile(`(?m)^---[\s\S]*?---\s*`)
)

// Extractor pulls date, title, and tags fields out of raw post text,
// delegating date strings to the normalizer. Extract never fails; missing
// fields resolve to defaults.
type Extractor struct {
	dates *dates.Normalizer
}

// NewExtractor constructs an Extractor bound to the supplied date normalizer.
func NewExtractor(normalizer *dates.Normalizer) *Extractor {
	return &Extractor{dates: normalizer}
}

// Extract scans rawText for metadata fields and returns fully-defaulted
// post metadata. The date value, present or not, goes through the
// normalizer so ISODate is always a valid calendar date.
func (e *Extractor) Extract(rawText string) interfaces.PostMetadata {
	meta := interfaces.PostMetadata{
		Title:       DefaultTitle,
		TagsLiteral: DefaultTagsLiteral,
	}

	rawDate := ""
	if m := dateField.FindStringSubmatch(rawText); m != nil {
		rawDate = strings.TrimSpace(m[1])
	}
	meta.ISODate = e.dates.Normalize(rawDate)

	if m := titleField.FindStringSubmatch(rawText); m != nil {
		if title := strings.TrimSpace(m[1]); title != "" {
			meta.Title = title
		}
	}

	if m := tagsField.FindStringSubmatch(rawText); m != nil {
		meta.TagsLiteral = strings.TrimSpace(m[1])
	}

	return meta
}

// StripFrontMatter removes a leading delimited frontmatter block from the
// source, returning the body untouched when no block is present. Blocks
// whose contents are not parseable YAML still get stripped via pattern
// matching so rendering sees only the body.
func StripFrontMatter(source []byte) []byte {
	var discard struct{}
	rest, err := frontmatter.Parse(bytes.NewReader(source), &discard)
	if err == nil {
		return rest
	}

	if loc := leadingBlock.FindIndex(source); loc != nil && loc[0] == 0 {
		return source[loc[1]:]
	}
	return source
}
