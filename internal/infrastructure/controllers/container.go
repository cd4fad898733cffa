package controllers

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/credpatch/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewPatchController); err != nil {
		return err
	}
	if err := container.Provide(NewDiffController); err != nil {
		return err
	}
	if err := container.Provide(NewWatchController); err != nil {
		return err
	}
	if err := container.Provide(NewScanController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	patchController *PatchController,
	diffController *DiffController,
	watchController *WatchController,
	scanController *ScanController,
) *[]entities.Controller {
	return &[]entities.Controller{
		patchController,
		diffController,
		watchController,
		scanController,
	}
}
