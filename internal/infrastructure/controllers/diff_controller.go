package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/credpatch/internal/domain/commands"
	"github.com/rios0rios0/credpatch/internal/domain/entities"
)

// DiffController handles the "diff" subcommand.
type DiffController struct {
	command commands.Diff
}

// NewDiffController creates a new DiffController.
func NewDiffController(command commands.Diff) *DiffController {
	return &DiffController{command: command}
}

// GetBind returns the Cobra command metadata for the diff controller.
func (it *DiffController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "diff [dir]",
		Short: "Preview the changes a run would make",
		Long: `Run every configured pass without writing and print a unified diff
for each file that would change.`,
	}
}

// Execute prints the preview to the command's output stream.
func (it *DiffController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(commandContext(cmd), settings, cmd.OutOrStdout())
	return err
}
