package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-md2html/pkg/interfaces"
)

const (
	rootModule    = "md2html"
	convertModule = "md2html.convert"
	datesModule   = "md2html.dates"
)

const (
	fieldSourcePath  = "source"
	fieldDestination = "destination"
	fieldRunID       = "run_id"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ConvertLogger returns the logger namespace reserved for the conversion pipeline.
func ConvertLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, convertModule)
}

// DatesLogger returns the logger namespace reserved for date normalization.
func DatesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, datesModule)
}

// WithConvertContext enriches the provided logger with common pipeline fields
// such as source path, destination path, and run id. Empty values are ignored.
func WithConvertContext(logger interfaces.Logger, source, destination, runID string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(source); trimmed != "" {
		fields[fieldSourcePath] = trimmed
	}
	if trimmed := strings.TrimSpace(destination); trimmed != "" {
		fields[fieldDestination] = trimmed
	}
	if trimmed := strings.TrimSpace(runID); trimmed != "" {
		fields[fieldRunID] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
