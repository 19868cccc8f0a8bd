package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-md2html/pkg/interfaces"
)

// RenderOptions control how Markdown bodies are rendered into HTML.
type RenderOptions struct {
	// Extensions selects goldmark extensions by name. Empty means the
	// default set (gfm, table, definition, footnote).
	Extensions []string
	// HardWraps renders single newlines as <br> elements.
	HardWraps bool
	// SafeMode suppresses raw HTML passthrough.
	SafeMode bool
}

// GoldmarkRenderer implements interfaces.Renderer using the goldmark engine.
// The renderer is stateless so callers can reuse a single instance without
// additional locking.
type GoldmarkRenderer struct {
	options RenderOptions
}

var _ interfaces.Renderer = (*GoldmarkRenderer)(nil)

// NewGoldmarkRenderer constructs a renderer with the supplied options.
func NewGoldmarkRenderer(options RenderOptions) *GoldmarkRenderer {
	return &GoldmarkRenderer{options: options}
}

// Render converts Markdown source into HTML.
func (r *GoldmarkRenderer) Render(source []byte) ([]byte, error) {
	engine := newGoldmarkEngine(r.options)
	var buf bytes.Buffer
	if err := engine.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("markdown render: %w", err)
	}
	return buf.Bytes(), nil
}

// newGoldmarkEngine builds a goldmark.Markdown configured from the supplied
// options. Unsupported extension names are ignored.
func newGoldmarkEngine(opts RenderOptions) goldmark.Markdown {
	exts := collectExtensions(opts.Extensions)

	parserOptions := []parser.Option{
		parser.WithAutoHeadingID(),
	}

	rendererOptions := []renderer.Option{}

	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}

	if !opts.SafeMode {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
	}

	if len(rendererOptions) > 0 {
		engineOptions = append(engineOptions, goldmark.WithRendererOptions(rendererOptions...))
	}

	if len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		// Tables, fenced code, and definition lists cover the "extra"
		// style syntax legacy posts rely on.
		return []goldmark.Extender{
			extension.GFM,
			extension.Table,
			extension.DefinitionList,
			extension.Footnote,
		}
	}

	var extenders []goldmark.Extender
	seen := map[string]struct{}{}

	for _, name := range names {
		key := strings.ToLower(strings.TrimSpace(name))
		if key == "" {
			continue
		}

		if _, ok := seen[key]; ok {
			continue
		}

		ext, ok := extensionRegistry[key]
		if !ok {
			continue
		}

		extenders = append(extenders, ext)
		seen[key] = struct{}{}
	}

	return extenders
}
