package convertcmd

import (
	"context"
	"errors"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-md2html/internal/commands"
	"github.com/goliatone/go-md2html/internal/logging"
	"github.com/goliatone/go-md2html/pkg/interfaces"
)

const convertOperation = "md2html.convert_directory"

// ErrConverterRequired is returned when no converter service is wired in.
var ErrConverterRequired = errors.New("convert command: converter is required")

var _ command.Commander[ConvertDirectoryCommand] = (*ConvertDirectoryHandler)(nil)

// ConvertDirectoryHandler orchestrates batch conversions via the shared
// command handler foundation.
type ConvertDirectoryHandler struct {
	inner *commands.Handler[ConvertDirectoryCommand]
}

// NewConvertDirectoryHandler creates a handler bound to the supplied converter.
func NewConvertDirectoryHandler(converter interfaces.Converter, logger interfaces.Logger, opts ...commands.HandlerOption[ConvertDirectoryCommand]) *ConvertDirectoryHandler {
	baseLogger := logger
	if baseLogger == nil {
		baseLogger = logging.NoOp()
	}

	exec := func(ctx context.Context, msg ConvertDirectoryCommand) error {
		if converter == nil {
			return ErrConverterRequired
		}

		result, err := converter.ConvertDirectory(ctx, msg.Directory)
		if err != nil {
			return err
		}
		if result != nil {
			logging.WithFields(baseLogger, map[string]any{
				"converted_count": len(result.Converted),
				"skipped_count":   len(result.Skipped),
			}).Info("md2html.command.convert_directory.completed")
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[ConvertDirectoryCommand]{
		commands.WithLogger[ConvertDirectoryCommand](baseLogger),
		commands.WithOperation[ConvertDirectoryCommand](convertOperation),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &ConvertDirectoryHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute implements command.Commander.
func (h *ConvertDirectoryHandler) Execute(ctx context.Context, msg ConvertDirectoryCommand) error {
	return h.inner.Execute(ctx, msg)
}
