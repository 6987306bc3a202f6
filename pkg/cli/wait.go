package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/xcuikit/pkg/core"
	"github.com/devicelab-dev/xcuikit/pkg/jsengine"
	"github.com/devicelab-dev/xcuikit/pkg/logger"
	"github.com/devicelab-dev/xcuikit/pkg/uitree"
	"github.com/devicelab-dev/xcuikit/pkg/waitfor"
)

var waitCommand = &cli.Command{
	Name:  "wait",
	Usage: "Wait until a debug description file contains a matching node",
	Description: `Re-read a file that a running test keeps overwriting with the latest
debug description until the query matches or the retry budget runs out.

Examples:
  xcuitree wait --file /tmp/tree.txt --label Welcome
  xcuitree wait --file /tmp/tree.txt --id saveButton --attempts 10 --wait 500ms`,
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Usage:    "Debug description file to poll",
			Required: true,
		},
		&cli.IntFlag{
			Name:  "attempts",
			Usage: "Total number of attempts (default from config)",
		},
		&cli.DurationFlag{
			Name:  "wait",
			Usage: "Pause between attempts (default from config)",
		},
		formatFlag,
	}, queryFlags...),
	Action: runWait,
}

func runWait(c *cli.Context) error {
	cfg := settings(c)
	format, err := outputFormat(c, cfg)
	if err != nil {
		return err
	}

	retry := cfg.RetryConfig()
	if c.IsSet("attempts") {
		retry.TotalNumberOfAttempts = c.Int("attempts")
	}
	if c.IsSet("wait") {
		retry.WaitPerAttempt = c.Duration("wait")
	}

	engine := newEngine(cfg.Variables)
	defer engine.Close()

	q, err := queryFromFlags(c, engine)
	if err != nil {
		return err
	}

	path := c.String("file")
	logger.Info("waiting for %s in %s (%d x %s)", q.Describe(), path, retry.TotalNumberOfAttempts, retry.WaitPerAttempt)

	nodes, err := waitfor.Result(retry, func() ([]uitree.Node, error) {
		return pollTree(path, q, engine)
	}).Get()
	if err != nil {
		return err
	}
	return writeNodes(c.App.Writer, nodes, format, cfg.Output.NoColor)
}

// pollTree reads path once. A missing file or a miss is retryable; read
// and predicate errors are not.
func pollTree(path string, q nodeQuery, engine *jsengine.Engine) ([]uitree.Node, error) {
	data, err := os.ReadFile(path) //#nosec G304 -- user-provided dump file
	if errors.Is(err, fs.ErrNotExist) {
		return nil, core.NewTestingError("%s does not exist yet", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	matched, err := q.apply(engine, uitree.Parse(string(data)))
	if err != nil {
		return nil, err
	}
	if len(matched) == 0 {
		return nil, core.NewTestingError("no element matches %s in %s", q.Describe(), path)
	}
	return matched, nil
}
