package controllers

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/credpatch/internal/domain/commands"
	"github.com/rios0rios0/credpatch/internal/domain/entities"
)

// WatchController handles the "watch" subcommand.
type WatchController struct {
	command commands.Watch
}

// NewWatchController creates a new WatchController.
func NewWatchController(command commands.Watch) *WatchController {
	return &WatchController{command: command}
}

// GetBind returns the Cobra command metadata for the watch controller.
func (it *WatchController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "watch [dir]",
		Short: "Patch the configured scripts again whenever they change",
		Long: `Run once, then watch the configured files and patch them again after
every write. Stops on SIGINT or SIGTERM.`,
	}
}

// Execute blocks until the process is interrupted.
func (it *WatchController) Execute(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings(cmd, args)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return it.command.Execute(ctx, settings)
}
