package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/credpatch/internal/domain/entities"
)

// AddPersistentFlags registers the flags shared by every command on the root.
func AddPersistentFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().StringP("config", "c", "",
		"Path to config file (default: auto-detect)")
	cmd.PersistentFlags().Int("threshold", entities.DefaultThreshold,
		"Skip files already holding at least this many credentials markers")
	cmd.PersistentFlags().StringSlice("passes", entities.DefaultPasses(),
		fmt.Sprintf("Passes to run, in order (%s, %s, %s, %s)",
			entities.PassSingleLine, entities.PassMultiLine,
			entities.PassMethodOptions, entities.PassStructural),
	)
	cmd.PersistentFlags().String("manifest", "",
		"Record patched files in this manifest and skip them while unchanged")
	cmd.PersistentFlags().Bool("dry-run", false,
		"Show what would be done without making changes")
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Enable verbose output")
}

// loadSettings builds the run settings: config file (explicit or discovered)
// or defaults, then the positional directory, then explicitly set flags.
func loadSettings(cmd *cobra.Command, args []string) (*entities.Settings, error) {
	flags := cmd.Flags()

	settings := entities.NewDefaultSettings()
	cfgPath, _ := flags.GetString("config")
	if cfgPath == "" {
		if found, err := entities.FindConfigFile(); err == nil {
			cfgPath = found
		} else {
			logger.Debugf("No config file found, using defaults: %v", err)
		}
	}
	if cfgPath != "" {
		logger.Infof("Using config file: %s", cfgPath)
		loaded, err := entities.NewSettings(cfgPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		settings = loaded
	}

	if len(args) > 0 {
		settings.BaseDir = args[0]
	}

	if flags.Changed("threshold") {
		settings.Threshold, _ = flags.GetInt("threshold")
	}
	if flags.Changed("passes") {
		settings.Passes, _ = flags.GetStringSlice("passes")
	}
	if flags.Changed("manifest") {
		settings.Manifest, _ = flags.GetString("manifest")
	}
	settings.DryRun, _ = flags.GetBool("dry-run")
	settings.Verbose, _ = flags.GetBool("verbose")

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return settings, nil
}

// commandContext returns the command's context, or Background when the command
// was not started through Cobra's Execute.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
