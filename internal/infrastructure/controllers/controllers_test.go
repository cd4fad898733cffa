//go:build unit

package controllers_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/credpatch/internal/domain/entities"
	"github.com/rios0rios0/credpatch/internal/infrastructure/controllers"
	"github.com/rios0rios0/credpatch/test/domain/commanddoubles"
)

func newCommand(t *testing.T, flags ...string) *cobra.Command {
	t.Helper()
	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "credpatch"}
	controllers.AddPersistentFlags(cmd)
	require.NoError(t, cmd.ParseFlags(flags))
	return cmd
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "credpatch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestPatchController(t *testing.T) {
	t.Parallel()

	t.Run("should expose run metadata", func(t *testing.T) {
		t.Parallel()

		// given
		ctrl := controllers.NewPatchController(&commanddoubles.StubPatchCommand{})

		// when
		bind := ctrl.GetBind()

		// then
		assert.Equal(t, "run [dir]", bind.Use)
		assert.NotEmpty(t, bind.Short)
	})

	t.Run("should load the config file and apply flag overrides", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := writeConfig(t, "base_dir: web\nfiles:\n  - js/app.js\nthreshold: 3\n")
		stub := &commanddoubles.StubPatchCommand{}
		ctrl := controllers.NewPatchController(stub)
		cmd := newCommand(t,
			"--config", cfg,
			"--threshold", "7",
			"--passes", "structural",
			"--manifest", ".manifest.yaml",
			"--dry-run",
		)

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		received := stub.Received()
		require.Len(t, received, 1)
		assert.Equal(t, filepath.Join(filepath.Dir(cfg), "web"), received[0].BaseDir)
		assert.Equal(t, []string{"js/app.js"}, received[0].Files)
		assert.Equal(t, 7, received[0].Threshold)
		assert.Equal(t, []string{entities.PassStructural}, received[0].Passes)
		assert.Equal(t, ".manifest.yaml", received[0].Manifest)
		assert.True(t, received[0].DryRun)
	})

	t.Run("should keep config values for flags left unset", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := writeConfig(t, "threshold: 3\npasses: [method-options]\n")
		stub := &commanddoubles.StubPatchCommand{}
		ctrl := controllers.NewPatchController(stub)
		cmd := newCommand(t, "--config", cfg)

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		received := stub.Received()
		require.Len(t, received, 1)
		assert.Equal(t, 3, received[0].Threshold)
		assert.Equal(t, []string{entities.PassMethodOptions}, received[0].Passes)
		assert.Equal(t, entities.DefaultFiles(), received[0].Files)
		assert.False(t, received[0].DryRun)
	})

	t.Run("should resolve files against the positional directory", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := writeConfig(t, "base_dir: web\n")
		stub := &commanddoubles.StubPatchCommand{}
		ctrl := controllers.NewPatchController(stub)
		cmd := newCommand(t, "--config", cfg)

		// when
		err := ctrl.Execute(cmd, []string{"/srv/app"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "/srv/app", stub.Received()[0].BaseDir)
	})

	t.Run("should reject an invalid threshold before running", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := writeConfig(t, "threshold: 2\n")
		stub := &commanddoubles.StubPatchCommand{}
		ctrl := controllers.NewPatchController(stub)
		cmd := newCommand(t, "--config", cfg, "--threshold", "0")

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "threshold must be at least 1")
		assert.Empty(t, stub.Received())
	})

	t.Run("should fail when the config file cannot be read", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &commanddoubles.StubPatchCommand{}
		ctrl := controllers.NewPatchController(stub)
		cmd := newCommand(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"))

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
		assert.Empty(t, stub.Received())
	})

	t.Run("should return command errors", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := writeConfig(t, "threshold: 5\n")
		ctrl := controllers.NewPatchController(&commanddoubles.StubPatchCommand{Err: errors.New("write failed")})
		cmd := newCommand(t, "--config", cfg)

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.EqualError(t, err, "write failed")
	})
}

func TestDiffController(t *testing.T) {
	t.Parallel()

	t.Run("should write the diff to the command output", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := writeConfig(t, "threshold: 5\n")
		stub := &commanddoubles.StubDiffCommand{Output: "--- a/js/order.js\n"}
		ctrl := controllers.NewDiffController(stub)
		cmd := newCommand(t, "--config", cfg)
		var out bytes.Buffer
		cmd.SetOut(&out)

		// when
		err := ctrl.Execute(cmd, []string{"site"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "--- a/js/order.js\n", out.String())
		assert.Equal(t, "site", stub.Received.BaseDir)
		assert.Equal(t, "diff [dir]", ctrl.GetBind().Use)
	})
}

func TestWatchController(t *testing.T) {
	t.Parallel()

	t.Run("should pass a live context and the loaded settings", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := writeConfig(t, "files: [js/order.js]\n")
		stub := &commanddoubles.StubWatchCommand{}
		ctrl := controllers.NewWatchController(stub)
		cmd := newCommand(t, "--config", cfg, "--verbose")

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		require.NotNil(t, stub.Received)
		assert.Equal(t, []string{"js/order.js"}, stub.Received.Files)
		assert.True(t, stub.Received.Verbose)
		assert.False(t, stub.CtxCanceled)
		assert.Equal(t, "watch [dir]", ctrl.GetBind().Use)
	})
}

func TestScanController(t *testing.T) {
	t.Parallel()

	t.Run("should scan with the loaded settings", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := writeConfig(t, "files: [js/order.js]\n")
		stub := &commanddoubles.StubScanCommand{}
		ctrl := controllers.NewScanController(stub)
		cmd := newCommand(t, "--config", cfg)

		// when
		err := ctrl.Execute(cmd, []string{"site"})

		// then
		require.NoError(t, err)
		assert.Equal(t, "site", stub.Received.BaseDir)
		assert.Equal(t, "scan [dir]", ctrl.GetBind().Use)
	})

	t.Run("should return scan errors", func(t *testing.T) {
		t.Parallel()

		// given
		cfg := writeConfig(t, "threshold: 5\n")
		ctrl := controllers.NewScanController(&commanddoubles.StubScanCommand{Err: errors.New("read failed")})
		cmd := newCommand(t, "--config", cfg)

		// when
		err := ctrl.Execute(cmd, nil)

		// then
		require.EqualError(t, err, "read failed")
	})
}
