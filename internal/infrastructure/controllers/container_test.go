//go:build unit

package controllers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"github.com/rios0rios0/credpatch/internal/domain/commands"
	"github.com/rios0rios0/credpatch/internal/domain/entities"
	"github.com/rios0rios0/credpatch/internal/infrastructure/controllers"
	"github.com/rios0rios0/credpatch/test/domain/commanddoubles"
)

func TestRegisterProviders(t *testing.T) {
	t.Parallel()

	t.Run("should aggregate every controller in order", func(t *testing.T) {
		t.Parallel()

		// given
		container := dig.New()
		require.NoError(t, container.Provide(func() commands.Patch { return &commanddoubles.StubPatchCommand{} }))
		require.NoError(t, container.Provide(func() commands.Diff { return &commanddoubles.StubDiffCommand{} }))
		require.NoError(t, container.Provide(func() commands.Watch { return &commanddoubles.StubWatchCommand{} }))
		require.NoError(t, container.Provide(func() commands.Scan { return &commanddoubles.StubScanCommand{} }))

		// when
		err := controllers.RegisterProviders(container)

		// then
		require.NoError(t, err)
		var uses []string
		require.NoError(t, container.Invoke(func(all *[]entities.Controller) {
			for _, c := range *all {
				uses = append(uses, c.GetBind().Use)
			}
		}))
		assert.Equal(t, []string{"run [dir]", "diff [dir]", "watch [dir]", "scan [dir]"}, uses)
	})
}
