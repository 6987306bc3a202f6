package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/xcuikit/pkg/uitree"
)

var findCommand = &cli.Command{
	Name:      "find",
	Usage:     "Print the nodes matching a query",
	ArgsUsage: "[FILE|GLOB...]",
	Description: `Filter parsed nodes by selector, predicate and position.
Fails when nothing matches.

Examples:
  xcuitree find dump.txt --type Button --label Save
  xcuitree find dump.txt --type '*Field' --below Email
  xcuitree find dump.txt --where 'node.frame && node.frame.width > 300'
  xcuitree -e name=Save find dump.txt --label '${name}'`,
	Flags: append([]cli.Flag{
		formatFlag,
		&cli.BoolFlag{
			Name:  "first",
			Usage: "Print only the first match",
		},
	}, queryFlags...),
	Action: runFind,
}

func runFind(c *cli.Context) error {
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

	q, err := queryFromFlags(c, engine)
	if err != nil {
		return err
	}

	var matched []uitree.Node
	for _, src := range sources {
		found, err := q.apply(engine, uitree.Parse(src.Content))
		if err != nil {
			return fmt.Errorf("%s: %w", src.Name, err)
		}
		matched = append(matched, found...)
	}

	if len(matched) == 0 {
		return fmt.Errorf("no element matches %s", q.Describe())
	}
	if c.Bool("first") {
		matched = matched[:1]
	}
	return writeNodes(c.App.Writer, matched, format, cfg.Output.NoColor)
}
