package convertcmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const convertDirectoryMessageType = "md2html.convert_directory"

// ConvertDirectoryCommand triggers a batch conversion of the Markdown files
// under Directory into the converter's configured output directory. The
// command mirrors interfaces.Converter ConvertDirectory semantics.
type ConvertDirectoryCommand struct {
	// Directory selects the filesystem path (relative or absolute) holding the Markdown posts.
	Directory string `json:"directory"`
}

// Type implements command.Message.
func (ConvertDirectoryCommand) Type() string { return convertDirectoryMessageType }

// Validate ensures directory input is present before handlers execute.
func (cmd ConvertDirectoryCommand) Validate() error {
	err := validation.ValidateStruct(&cmd,
		validation.Field(&cmd.Directory, validation.Required, validation.By(func(value any) error {
			if strings.TrimSpace(value.(string)) == "" {
				return validation.NewError("md2html.convert_directory.directory_required", "directory is required")
			}
			return nil
		})),
	)
	if err != nil {
		return err
	}
	return nil
}
