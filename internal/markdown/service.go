package markdown

import (
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/goliatone/go-md2html/internal/logging"
	"github.com/goliatone/go-md2html/internal/slugify"
	"github.com/goliatone/go-md2html/pkg/interfaces"
)

// ServiceConfig encapsulates the collaborators of the conversion pipeline.
type ServiceConfig struct {
	// OutputDir receives the generated HTML documents. Created on demand.
	OutputDir string
	// Pattern limits candidate files within a directory (defaults to "*.md").
	Pattern   string
	Renderer  interfaces.Renderer
	Extractor *Extractor
	Logger    interfaces.Logger
}

// Service orchestrates the per-file conversion pipeline: read, strip the
// leading frontmatter block, render the body, extract metadata from the
// original text, compose the output document, resolve a unique path, write.
// Processing is sequential; every failure is contained to the file being
// processed so no file can abort the batch.
type Service struct {
	outputDir string
	pattern   string
	renderer  interfaces.Renderer
	extractor *Extractor
	logger    interfaces.Logger
}

var _ interfaces.Converter = (*Service)(nil)

// NewService builds a Service from the supplied configuration.
func NewService(cfg ServiceConfig) *Service {
	pattern := strings.TrimSpace(cfg.Pattern)
	if pattern == "" {
		pattern = "*.md"
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}
	return &Service{
		outputDir: cfg.OutputDir,
		pattern:   pattern,
		renderer:  cfg.Renderer,
		extractor: cfg.Extractor,
		logger:    logger,
	}
}

// ConvertDirectory processes every Markdown file directly under dir. An
// inability to enumerate dir is the only fatal condition; per-file failures
// are logged, recorded on the result, and skipped.
func (s *Service) ConvertDirectory(ctx context.Context, dir string) (*interfaces.ConversionResult, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("markdown convert: enumerate %s: %w", dir, err)
	}

	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("markdown convert: create output dir %s: %w", s.outputDir, err)
	}

	runLogger := logging.WithFields(s.logger, map[string]any{
		"run_id": uuid.NewString(),
	})

	result := &interfaces.ConversionResult{}

	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		if entry.IsDir() || !isMarkdownName(entry.Name(), s.pattern) {
			continue
		}

		source := filepath.Join(dir, entry.Name())
		converted, err := s.convertOne(source, runLogger)
		if err != nil {
			runLogger.Error("skipping file", "source", source, "error", err)
			result.Skipped = append(result.Skipped, interfaces.SkippedFile{
				Source: source,
				Reason: err.Error(),
			})
			continue
		}
		result.Converted = append(result.Converted, *converted)
	}

	runLogger.Info("conversion run completed",
		"converted", len(result.Converted),
		"skipped", len(result.Skipped),
	)
	return result, nil
}

// ConvertFile processes a single Markdown file into the output directory.
func (s *Service) ConvertFile(ctx context.Context, path string) (*interfaces.ConvertedFile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("markdown convert: create output dir %s: %w", s.outputDir, err)
	}
	return s.convertOne(path, s.logger)
}

func (s *Service) convertOne(source string, logger interfaces.Logger) (*interfaces.ConvertedFile, error) {
	data, err := os.ReadFile(source)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	// Invalid byte sequences are replaced, never fatal.
	text := strings.ToValidUTF8(string(data), "�")

	body := StripFrontMatter([]byte(text))

	bodyHTML, err := s.renderer.Render(body)
	if err != nil {
		logger.Error("markdown render failed, writing preformatted body",
			"source", source, "error", err)
		bodyHTML = []byte("<pre>" + html.EscapeString(string(body)) + "</pre>")
	}

	// Metadata comes from the original text, not the stripped body, so
	// fields outside the delimited block are still picked up.
	meta := s.extractor.Extract(text)

	baseName := fmt.Sprintf("%s-%s.html", meta.ISODate, slugify.Slugify(meta.Title))
	destination := ResolveOutputPath(s.outputDir, baseName)

	if err := os.WriteFile(destination, composeDocument(meta, bodyHTML), 0o644); err != nil {
		return nil, fmt.Errorf("write %s: %w", destination, err)
	}

	logging.WithConvertContext(logger, source, destination, "").Info("converted")

	return &interfaces.ConvertedFile{
		Source:      source,
		Destination: destination,
	}, nil
}

// composeDocument wraps rendered HTML in regenerated frontmatter suitable
// for static-site generator ingestion.
func composeDocument(meta interfaces.PostMetadata, bodyHTML []byte) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "---\ntitle: \"%s\"\ndate: \"%s\"\ntags: %s\nlayout: post\n---\n\n",
		meta.Title, meta.ISODate, meta.TagsLiteral)
	b.Write(bodyHTML)
	if !strings.HasSuffix(b.String(), "\n") {
		b.WriteString("\n")
	}
	return []byte(b.String())
}

func isMarkdownName(name, pattern string) bool {
	lower := strings.ToLower(name)
	if !strings.HasSuffix(lower, ".md") {
		return false
	}
	ok, err := filepath.Match(pattern, lower)
	if err != nil {
		return false
	}
	return ok
}
