package controllers

import (
	"github.com/spf13/cobra"

	"github.com/rios0rios0/credpatch/internal/domain/commands"
	"github.com/rios0rios0/credpatch/internal/domain/entities"
)

// ScanController handles the "scan" subcommand.
type ScanController struct {
	command commands.Scan
}

// NewScanController creates a new ScanController.
func NewScanController(command commands.Scan) *ScanController {
	return &ScanController{command: command}
}

// GetBind returns the Cobra command metadata for the scan controller.
func (it *ScanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "scan [dir]",
		Short: "List fetch calls that still lack credentials",
		Long: `Parse the configured scripts and list every fetch call site without a
credentials option, including the ones no pass can patch. Nothing is written.
With --verbose every call site is listed.`,
	}
}

// Execute prints the scan results to the command's output stream.
func (it *ScanController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}

	_, err = it.command.Execute(commandContext(cmd), settings, cmd.OutOrStdout())
	return err
}
