package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/credpatch/internal/domain/commands"
	"github.com/rios0rios0/credpatch/internal/domain/entities"
)

// PatchController handles the "run" subcommand and the bare root command.
type PatchController struct {
	command commands.Patch
}

// NewPatchController creates a new PatchController.
func NewPatchController(command commands.Patch) *PatchController {
	return &PatchController{command: command}
}

// GetBind returns the Cobra command metadata for the patch controller.
func (it *PatchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run [dir]",
		Short: "Add credentials to fetch calls in the configured scripts",
		Long: `Add credentials: 'include' to fetch call sites that lack it.

Each configured file is resolved against [dir] (default: the configured
base_dir, else the current directory). Files that already hold at least
--threshold markers are left untouched.`,
	}
}

// Execute runs the patch over the configured files.
func (it *PatchController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(commandContext(cmd), settings)
	return err
}
