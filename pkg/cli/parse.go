package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/xcuikit/pkg/config"
	"github.com/devicelab-dev/xcuikit/pkg/logger"
	"github.com/devicelab-dev/xcuikit/pkg/uitree"
)

var formatFlag = &cli.StringFlag{
	Name:    "format",
	Aliases: []string{"f"},
	Usage:   "Output format (tree, json, yaml, csv); defaults to the config value",
}

var parseCommand = &cli.Command{
	Name:      "parse",
	Usage:     "Parse debug descriptions into node records",
	ArgsUsage: "[FILE|GLOB...]",
	Description: `Parse the "Element subtree" section of XCUITest debug descriptions.
Reads stdin when no files are given. Globs may use ** to recurse.

Examples:
  xcuitree parse dump.txt
  xcuitree parse 'dumps/**/*.txt' --format csv
  pbpaste | xcuitree parse --where 'node.type == "Button"'`,
	Flags: []cli.Flag{
		formatFlag,
		&cli.StringFlag{
			Name:  "where",
			Usage: "JavaScript predicate over `node`",
		},
	},
	Action: runParse,
}

func runParse(c *cli.Context) error {
	cfg := settings(c)
	format, err := outputFormat(c, cfg)
	if err != nil {
		return err
	}

	sources, err := readSources(c.Args().Slice(), c.App.Reader)
	if err != nil {
		return err
	}

	engine := newEngine(cfg.Variables)
	defer engine.Close()

	var nodes []uitree.Node
	for _, src := range sources {
		parsed := uitree.Parse(src.Content)
		logger.Debug("%s: %d nodes", src.Name, len(parsed))
		nodes = append(nodes, parsed...)
	}

	if where := c.String("where"); where != "" {
		if nodes, err = engine.Filter(nodes, where); err != nil {
			return err
		}
	}
	return writeNodes(c.App.Writer, nodes, format, cfg.Output.NoColor)
}

// outputFormat returns --format, falling back to the configured format.
func outputFormat(c *cli.Context, cfg *config.Config) (string, error) {
	format := cfg.Output.Format
	if c.IsSet("format") {
		format = c.String("format")
	}
	if !config.IsFormat(format) {
		return "", fmt.Errorf("unknown output format %q (want one of %v)", format, config.Formats)
	}
	return format, nil
}
