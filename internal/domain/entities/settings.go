package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	PassSingleLine    = "single-line"
	PassMultiLine     = "multi-line"
	PassMethodOptions = "method-options"
	PassStructural    = "structural"
)

// DefaultFiles lists the scripts patched when no configuration overrides them.
func DefaultFiles() []string {
	return []string{
		"js/transaction.js",
		"js/purchase.js",
		"js/quotation.js",
		"js/order.js",
	}
}

// DefaultPasses is the pipeline run when none is configured.
func DefaultPasses() []string {
	return []string{PassSingleLine, PassMultiLine}
}

// Settings is the runtime configuration for a patch run.
type Settings struct {
	BaseDir   string   `yaml:"base_dir"`
	Files     []string `yaml:"files"`
	Threshold int      `yaml:"threshold"`
	Passes    []string `yaml:"passes"`
	Manifest  string   `yaml:"manifest"` // empty disables the manifest guard

	DryRun  bool `yaml:"-"`
	Verbose bool `yaml:"-"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no config file exists.
func NewDefaultSettings() *Settings {
	return &Settings{
		BaseDir:   ".",
		Files:     DefaultFiles(),
		Threshold: DefaultThreshold,
		Passes:    DefaultPasses(),
	}
}

// NewSettings reads a YAML configuration file, fills in defaults for omitted
// fields and validates the result.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.BaseDir = expandEnv(settings.BaseDir)
	settings.Manifest = expandEnv(settings.Manifest)

	// base dirs are anchored at the config file, not the working directory
	configDir := filepath.Dir(path)
	switch {
	case settings.BaseDir == "":
		settings.BaseDir = configDir
	case !filepath.IsAbs(settings.BaseDir):
		settings.BaseDir = filepath.Join(configDir, settings.BaseDir)
	}

	settings.ApplyDefaults()
	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return &settings, nil
}

// ApplyDefaults fills zero-valued fields with their defaults.
func (s *Settings) ApplyDefaults() {
	if s.BaseDir == "" {
		s.BaseDir = "."
	}
	if len(s.Files) == 0 {
		s.Files = DefaultFiles()
	}
	if s.Threshold == 0 {
		s.Threshold = DefaultThreshold
	}
	if len(s.Passes) == 0 {
		s.Passes = DefaultPasses()
	}
}

// Validate checks the settings for values the patch run cannot work with.
func (s *Settings) Validate() error {
	if len(s.Files) == 0 {
		return errors.New("at least one file must be configured")
	}
	for i, f := range s.Files {
		if f == "" {
			return fmt.Errorf("files[%d] must not be empty", i)
		}
	}
	if s.Threshold < 1 {
		return fmt.Errorf("threshold must be at least 1, got %d", s.Threshold)
	}
	if len(s.Passes) == 0 {
		return errors.New("at least one pass must be configured")
	}
	return nil
}

// ResolvePath returns the on-disk location of a configured file.
func (s *Settings) ResolvePath(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(s.BaseDir, file)
}

// ManifestPath returns the resolved manifest location, or "" when disabled.
func (s *Settings) ManifestPath() string {
	if s.Manifest == "" {
		return ""
	}
	return s.ResolvePath(s.Manifest)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".credpatch.yaml",
		".credpatch.yml",
		"credpatch.yaml",
		"credpatch.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// expandEnv replaces ${VAR} references with their environment values.
func expandEnv(raw string) string {
	if raw == "" {
		return raw
	}
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
