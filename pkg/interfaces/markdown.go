package interfaces

import (
	"context"
	"time"
)

// PostMetadata holds the fields recovered from a post's leading metadata
// block. ISODate is always a well-formed YYYY-MM-DD calendar date, Title
// defaults to "Untitled Post", and TagsLiteral carries the raw bracketed
// list text ("[]" when absent) without any semantic parsing.
type PostMetadata struct {
	ISODate     string
	Title       string
	TagsLiteral string
}

// ConvertedFile records a successful source to destination mapping.
type ConvertedFile struct {
	Source      string
	Destination string
}

// SkippedFile records a post that produced no output, with the reason the
// pipeline dropped it. Skips never abort the batch.
type SkippedFile struct {
	Source string
	Reason string
}

// ConversionResult aggregates the outcome of a batch run.
type ConversionResult struct {
	Converted []ConvertedFile
	Skipped   []SkippedFile
}

// Renderer turns Markdown source into HTML. Implementations may fail; the
// pipeline absorbs failures by degrading to preformatted output.
type Renderer interface {
	Render(source []byte) ([]byte, error)
}

// DateParser is an optional natural-language date parsing collaborator.
// A nil DateParser simply skips the free-form tier of the normalization
// chain; the strict layout tiers still apply.
type DateParser func(value string) (time.Time, error)

// Converter exposes the conversion pipeline to hosts and commands.
type Converter interface {
	// ConvertFile processes a single Markdown file and writes its HTML
	// counterpart into the configured output directory.
	ConvertFile(ctx context.Context, path string) (*ConvertedFile, error)
	// ConvertDirectory processes every Markdown file under dir. Per-file
	// failures are recorded on the result, never returned as errors.
	ConvertDirectory(ctx context.Context, dir string) (*ConversionResult, error)
}
