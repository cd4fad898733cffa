//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"github.com/rios0rios0/credpatch/internal/domain/entities"
	testkit "github.com/rios0rios0/testkit/pkg/test"
)

// SettingsBuilder helps create test settings with a fluent interface.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	baseDir   string
	files     []string
	threshold int
	passes    []string
	manifest  string
	dryRun    bool
}

// NewSettingsBuilder creates a new settings builder with the production defaults.
func NewSettingsBuilder() *SettingsBuilder {
	defaults := entities.NewDefaultSettings()
	return &SettingsBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		baseDir:     defaults.BaseDir,
		files:       defaults.Files,
		threshold:   defaults.Threshold,
		passes:      defaults.Passes,
	}
}

// WithBaseDir sets the directory files are resolved against.
func (b *SettingsBuilder) WithBaseDir(dir string) *SettingsBuilder {
	b.baseDir = dir
	return b
}

// WithFiles sets the configured file list.
func (b *SettingsBuilder) WithFiles(files ...string) *SettingsBuilder {
	b.files = files
	return b
}

// WithThreshold sets the saturation threshold.
func (b *SettingsBuilder) WithThreshold(threshold int) *SettingsBuilder {
	b.threshold = threshold
	return b
}

// WithPasses sets the pass pipeline.
func (b *SettingsBuilder) WithPasses(passes ...string) *SettingsBuilder {
	b.passes = passes
	return b
}

// WithManifest enables the manifest guard at the given path.
func (b *SettingsBuilder) WithManifest(path string) *SettingsBuilder {
	b.manifest = path
	return b
}

// WithDryRun toggles dry-run mode.
func (b *SettingsBuilder) WithDryRun(dryRun bool) *SettingsBuilder {
	b.dryRun = dryRun
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	return &entities.Settings{
		BaseDir:   b.baseDir,
		Files:     append([]string(nil), b.files...),
		Threshold: b.threshold,
		Passes:    append([]string(nil), b.passes...),
		Manifest:  b.manifest,
		DryRun:    b.dryRun,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	defaults := entities.NewDefaultSettings()
	b.baseDir = defaults.BaseDir
	b.files = defaults.Files
	b.threshold = defaults.Threshold
	b.passes = defaults.Passes
	b.manifest = ""
	b.dryRun = false
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		baseDir:     b.baseDir,
		files:       append([]string(nil), b.files...),
		threshold:   b.threshold,
		passes:      append([]string(nil), b.passes...),
		manifest:    b.manifest,
		dryRun:      b.dryRun,
	}
}
