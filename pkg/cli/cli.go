// Package cli provides the command-line interface for xcuitree.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/xcuikit/pkg/config"
	"github.com/devicelab-dev/xcuikit/pkg/logger"
)

// Version is set at build time.
var Version = "dev"

const configKey = "config"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Config file (default: config.yaml or config.yml in the working directory)",
		EnvVars: []string{"XCUITREE_CONFIG"},
	},
	&cli.BoolFlag{
		Name:    "verbose",
		Usage:   "Enable verbose logging",
		EnvVars: []string{"XCUITREE_VERBOSE"},
	},
	&cli.BoolFlag{
		Name:  "no-ansi",
		Usage: "Disable ANSI colors",
	},
	&cli.StringFlag{
		Name:  "log-file",
		Usage: "Write logs to this file instead of stderr",
	},
	&cli.StringSliceFlag{
		Name:    "var",
		Aliases: []string{"e"},
		Usage:   "Variable for ${...} expressions in selectors (KEY=VALUE, repeatable)",
	},
}

// NewApp builds the xcuitree application.
func NewApp() *cli.App {
	return &cli.App{
		Name:    "xcuitree",
		Usage:   "Inspect and query XCUITest debug descriptions",
		Version: Version,
		Description: `xcuitree parses the debugDescription XCUITest prints for an element
into flat node records and lets you filter them.

Examples:
  xcuitree parse dump.txt
  xcuitree parse 'dumps/**/*.txt' --format json
  xcuitree find dump.txt --type Button --label Save
  xcuitree find dump.txt --where 'node.depth > 3 && node.hasFrame'
  xcuitree wait --file /tmp/live.txt --id saveButton --attempts 10 --wait 500ms`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			parseCommand,
			findCommand,
			waitCommand,
		},
		Before: setup,
		After: func(c *cli.Context) error {
			logger.Close()
			return nil
		},
	}
}

// Execute runs the CLI.
func Execute() {
	if err := NewApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads the configuration and starts logging.
func setup(c *cli.Context) error {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}
	if c.Bool("no-ansi") {
		cfg.Output.NoColor = true
	}
	for k, v := range parseVars(c.StringSlice("var")) {
		if cfg.Variables == nil {
			cfg.Variables = make(map[string]string)
		}
		cfg.Variables[k] = v
	}

	logPath := c.String("log-file")
	if logPath == "" {
		logPath = cfg.LogFilePath()
	}
	if logPath != "" {
		if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		if err := logger.Init(logPath); err != nil {
			return err
		}
	} else {
		logger.InitConsole(c.App.ErrWriter, c.Bool("verbose"), cfg.Output.NoColor)
	}
	logger.Debug("config: retry=%+v output=%+v", cfg.Retry, cfg.Output)

	if c.App.Metadata == nil {
		c.App.Metadata = make(map[string]interface{})
	}
	c.App.Metadata[configKey] = cfg
	return nil
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.LoadFromDir(".")
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// settings returns the configuration loaded by setup.
func settings(c *cli.Context) *config.Config {
	if cfg, ok := c.App.Metadata[configKey].(*config.Config); ok {
		return cfg
	}
	return config.Default()
}

// parseVars turns KEY=VALUE pairs into a map, ignoring malformed entries.
func parseVars(vars []string) map[string]string {
	result := make(map[string]string)
	for _, v := range vars {
		parts := strings.SplitN(v, "=", 2)
		if len(parts) == 2 {
			result[parts[0]] = parts[1]
		}
	}
	return result
}
