package md2html

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Config captures the runtime configuration of the converter module.
type Config struct {
	// InputDir holds the Markdown posts to convert.
	InputDir string
	// OutputDir receives the generated HTML documents.
	OutputDir string
	// Pattern limits candidate files within InputDir.
	Pattern string
	// NaturalDates enables the free-form date parsing tier of the
	// normalization chain.
	NaturalDates bool
	Render       RenderConfig
	Logging      LoggingConfig
}

// RenderConfig configures the Markdown renderer.
type RenderConfig struct {
	// Extensions selects goldmark extensions by name; empty means defaults.
	Extensions []string
	HardWraps  bool
	SafeMode   bool
}

// LoggingConfig configures the go-logger provider used by the CLI.
type LoggingConfig struct {
	Level     string
	Format    string
	AddSource bool
}

// DefaultConfig returns the configuration the CLI ships with: posts read
// from _posts, HTML written to html_posts, natural-language dates enabled.
func DefaultConfig() Config {
	return Config{
		InputDir:     "_posts",
		OutputDir:    "html_posts",
		Pattern:      "*.md",
		NaturalDates: true,
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Validate reports configuration errors before the module is built.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.InputDir, validation.Required),
		validation.Field(&c.OutputDir, validation.Required),
		validation.Field(&c.Pattern, validation.Required),
		validation.Field(&c.Logging),
	)
}

// Validate reports logging configuration errors.
func (c LoggingConfig) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Level, validation.In("", "trace", "debug", "info", "warn", "warning", "error", "fatal")),
		validation.Field(&c.Format, validation.In("", "json", "console", "pretty")),
	)
}
