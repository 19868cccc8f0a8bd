package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/goliatone/go-md2html"
	convertcmd "github.com/goliatone/go-md2html/internal/commands/convert"
	"github.com/goliatone/go-md2html/internal/logging/gologger"
)

var moduleBuilder = buildModule

func main() {
	if err := runConvert(os.Args[1:]); err != nil {
		log.Fatalf("md2html: %v", err)
	}
}

func runConvert(args []string) error {
	defaults := md2html.DefaultConfig()

	fs := flag.NewFlagSet("md2html", flag.ExitOnError)
	input := fs.String("input", defaults.InputDir, "Directory holding the Markdown posts")
	output := fs.String("output", defaults.OutputDir, "Directory receiving the generated HTML files")
	pattern := fs.String("pattern", defaults.Pattern, "Glob pattern applied when discovering Markdown files")
	naturalDates := fs.Bool("natural-dates", defaults.NaturalDates, "Enable free-form date parsing (set false to rely on fixed layouts only)")
	hardWraps := fs.Bool("hard-wraps", false, "Render single newlines as <br> elements")
	logLevel := fs.String("log-level", defaults.Logging.Level, "Log level (trace, debug, info, warn, error, fatal)")
	logFormat := fs.String("log-format", defaults.Logging.Format, "Log format (json, console, pretty)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := defaults
	cfg.InputDir = *input
	cfg.OutputDir = *output
	cfg.Pattern = *pattern
	cfg.NaturalDates = *naturalDates
	cfg.Render.HardWraps = *hardWraps
	cfg.Logging.Level = *logLevel
	cfg.Logging.Format = *logFormat

	module, err := moduleBuilder(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	handler := convertcmd.NewConvertDirectoryHandler(module.Converter(), module.Logger())
	cmd := convertcmd.ConvertDirectoryCommand{
		Directory: cfg.InputDir,
	}
	if err := handler.Execute(context.Background(), cmd); err != nil {
		return fmt.Errorf("execute convert command: %w", err)
	}

	fmt.Fprintln(os.Stdout, "markdown conversion completed successfully")
	return nil
}

func buildModule(cfg md2html.Config) (*md2html.Module, error) {
	provider, err := gologger.NewProvider(gologger.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		AddSource: cfg.Logging.AddSource,
	})
	if err != nil {
		return nil, err
	}

	return md2html.New(cfg, md2html.WithLoggerProvider(provider))
}
