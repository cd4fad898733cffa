package main

import (
	"os"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/credpatch/internal"
	"github.com/rios0rios0/credpatch/internal/infrastructure/controllers"
)

func buildRootCommand(patchController *controllers.PatchController) *cobra.Command {
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{
		Use:   "credpatch [dir]",
		Short: "Add credentials: 'include' to fetch calls",
		Long: `Patch client-side scripts so their fetch calls send session cookies.

Every configured script is scanned for fetch call sites without a
credentials option, and credentials: 'include' is inserted into them.
Files that already carry enough markers are left alone, so running the
tool repeatedly is safe.

Usage modes:
  credpatch                 Patch the scripts under the current directory
  credpatch /path/to/site   Patch the scripts under a specific directory
  credpatch diff            Preview the changes without writing
  credpatch watch           Keep patching while the scripts are edited`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          patchController.Execute,
	}

	// Global persistent flags
	controllers.AddPersistentFlags(cmd)

	return cmd
}

func addSubcommands(rootCmd *cobra.Command, appContext *internal.AppInternal) {
	for _, controller := range appContext.GetControllers() {
		bind := controller.GetBind()
		//nolint:exhaustruct // Minimal Command initialization with required fields only
		subCmd := &cobra.Command{
			Use:   bind.Use,
			Short: bind.Short,
			Long:  bind.Long,
			Args:  cobra.MaximumNArgs(1),
			RunE:  controller.Execute,
		}
		rootCmd.AddCommand(subCmd)
	}
}

func main() {
	//nolint:exhaustruct // Minimal TextFormatter initialization with required fields only
	logger.SetFormatter(&logger.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})
	if os.Getenv("DEBUG") == "true" {
		logger.SetLevel(logger.DebugLevel)
	}

	// Inject controllers via DIG
	patchController := injectPatchController()
	cobraRoot := buildRootCommand(patchController)

	// Add all subcommands
	appContext := injectAppContext()
	addSubcommands(cobraRoot, appContext)

	if err := cobraRoot.Execute(); err != nil {
		logger.Fatalf("Error executing 'credpatch': %s", err)
	}
}
