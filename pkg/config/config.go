// Package config handles configuration for xcuitree.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/xcuikit/pkg/waitfor"
)

// Output formats understood by the CLI.
const (
	FormatTree = "tree"
	FormatJSON = "json"
	FormatYAML = "yaml"
	FormatCSV  = "csv"
)

// Formats lists every supported output format.
var Formats = []string{FormatTree, FormatJSON, FormatYAML, FormatCSV}

// Config represents the workspace configuration (config.yaml).
type Config struct {
	// Retry budget for waits
	Retry waitfor.Config `yaml:"retry"`

	Output Output `yaml:"output"`

	// LogFile enables file logging; relative paths live under LogDir.
	LogFile string `yaml:"logFile"`

	// Variables are exposed to ${...} expressions in selectors.
	Variables map[string]string `yaml:"variables"`
}

// Output configures how parsed nodes are printed.
type Output struct {
	Format  string `yaml:"format"`
	NoColor bool   `yaml:"noColor"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Retry:  waitfor.DefaultConfig(),
		Output: Output{Format: FormatTree},
	}
}

// RetryConfig returns the retry budget for waits.
func (c *Config) RetryConfig() waitfor.Config {
	return c.Retry
}

// Validate reports settings no command can run with.
func (c *Config) Validate() error {
	if !IsFormat(c.Output.Format) {
		return fmt.Errorf("unknown output format %q (want one of %v)", c.Output.Format, Formats)
	}
	if c.Retry.WaitPerAttempt < 0 {
		return fmt.Errorf("retry.waitPerAttempt must not be negative, got %s", c.Retry.WaitPerAttempt)
	}
	return nil
}

// IsFormat reports whether f is a supported output format.
func IsFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}

// Load loads configuration from a file. Keys missing from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided config file
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadFromDir looks for config.yaml or config.yml in the directory.
func LoadFromDir(dir string) (*Config, error) {
	for _, name := range []string{"config.yaml", "config.yml"} {
		configPath := filepath.Join(dir, name)
		if _, err := os.Stat(configPath); err == nil {
			return Load(configPath)
		}
	}

	// No config file found
	return Default(), nil
}

// LogFilePath resolves LogFile; "" means file logging is off.
func (c *Config) LogFilePath() string {
	if c.LogFile == "" || filepath.IsAbs(c.LogFile) {
		return c.LogFile
	}
	return filepath.Join(LogDir(), c.LogFile)
}
