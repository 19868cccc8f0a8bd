// Package md2html converts a directory of Markdown blog posts with
// lightweight frontmatter into standalone HTML files with regenerated
// frontmatter, suitable for ingestion by a static-site generator.
package md2html

import (
	"fmt"
	"time"

	"github.com/goliatone/go-md2html/internal/dates"
	"github.com/goliatone/go-md2html/internal/logging"
	"github.com/goliatone/go-md2html/internal/markdown"
	"github.com/goliatone/go-md2html/pkg/interfaces"
)

// Module wires the conversion pipeline from configuration so hosts can run
// conversions programmatically. Use New to construct one.
type Module struct {
	config     Config
	provider   interfaces.LoggerProvider
	dateParser interfaces.DateParser
	now        func() time.Time
	converter  interfaces.Converter
	logger     interfaces.Logger
}

// Option customises module construction.
type Option func(*Module)

// WithLoggerProvider supplies the provider used to scope module loggers.
// Without one, logging is a no-op.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(m *Module) {
		m.provider = provider
	}
}

// WithDateParser overrides the natural-language date parsing collaborator.
// It takes precedence over Config.NaturalDates.
func WithDateParser(parser interfaces.DateParser) Option {
	return func(m *Module) {
		m.dateParser = parser
	}
}

// WithClock overrides the clock used for fallback dates. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Module) {
		m.now = now
	}
}

// New validates cfg and assembles the converter module.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("md2html: invalid config: %w", err)
	}

	m := &Module{config: cfg}
	for _, opt := range opts {
		opt(m)
	}

	if m.dateParser == nil && cfg.NaturalDates {
		m.dateParser = dates.ParseNatural
	}

	normalizer := dates.NewNormalizer(dates.NormalizerConfig{
		Natural: m.dateParser,
		Now:     m.now,
		Logger:  logging.DatesLogger(m.provider),
	})

	renderer := markdown.NewGoldmarkRenderer(markdown.RenderOptions{
		Extensions: cfg.Render.Extensions,
		HardWraps:  cfg.Render.HardWraps,
		SafeMode:   cfg.Render.SafeMode,
	})

	m.logger = logging.ConvertLogger(m.provider)
	m.converter = markdown.NewService(markdown.ServiceConfig{
		OutputDir: cfg.OutputDir,
		Pattern:   cfg.Pattern,
		Renderer:  renderer,
		Extractor: markdown.NewExtractor(normalizer),
		Logger:    m.logger,
	})

	return m, nil
}

// Config returns the configuration the module was built with.
func (m *Module) Config() Config {
	return m.config
}

// Converter exposes the conversion pipeline.
func (m *Module) Converter() interfaces.Converter {
	return m.converter
}

// Logger returns the module-scoped logger.
func (m *Module) Logger() interfaces.Logger {
	return m.logger
}
