package main

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/credpatch/internal"
	"github.com/rios0rios0/credpatch/internal/infrastructure/controllers"
)

func injectAppContext() *internal.AppInternal {
	container := dig.New()

	// Register all providers
	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	// Invoke to get AppInternal
	var appInternal *internal.AppInternal
	if err := container.Invoke(func(ai *internal.AppInternal) {
		appInternal = ai
	}); err != nil {
		panic(err)
	}

	return appInternal
}

func injectPatchController() *controllers.PatchController {
	container := dig.New()

	if err := internal.RegisterProviders(container); err != nil {
		panic(err)
	}

	var patchController *controllers.PatchController
	if err := container.Invoke(func(pc *controllers.PatchController) {
		patchController = pc
	}); err != nil {
		panic(err)
	}

	return patchController
}
