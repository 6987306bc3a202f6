package cli

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/devicelab-dev/xcuikit/pkg/config"
	"github.com/devicelab-dev/xcuikit/pkg/uitree"
)

// treeStyle colors the parts of a tree line.
type treeStyle struct {
	elementType *color.Color
	identifier  *color.Color
	label       *color.Color
	value       *color.Color
	frame       *color.Color
}

func newTreeStyle(noColor bool) treeStyle {
	s := treeStyle{
		elementType: color.New(color.FgCyan, color.Bold),
		identifier:  color.New(color.FgYellow),
		label:       color.New(color.FgGreen),
		value:       color.New(color.FgMagenta),
		frame:       color.New(color.Faint),
	}
	if noColor {
		for _, c := range []*color.Color{s.elementType, s.identifier, s.label, s.value, s.frame} {
			c.DisableColor()
		}
	}
	return s
}

// writeNodes prints nodes in the given format.
func writeNodes(w io.Writer, nodes []uitree.Node, format string, noColor bool) error {
	if nodes == nil {
		nodes = []uitree.Node{}
	}

	switch format {
	case config.FormatTree, "":
		return writeTree(w, nodes, newTreeStyle(noColor))
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(nodes)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(nodes); err != nil {
			return err
		}
		return enc.Close()
	case config.FormatCSV:
		return writeCSV(w, nodes)
	default:
		return fmt.Errorf("unknown output format %q (want one of %v)", format, config.Formats)
	}
}

func writeTree(w io.Writer, nodes []uitree.Node, s treeStyle) error {
	for _, n := range nodes {
		parts := []string{s.elementType.Sprint(n.ElementType)}
		if n.Identifier != nil {
			parts = append(parts, s.identifier.Sprint("#"+*n.Identifier))
		}
		if n.Label != nil {
			parts = append(parts, s.label.Sprintf("'%s'", *n.Label))
		}
		if n.Value != nil {
			parts = append(parts, s.value.Sprint("= "+*n.Value))
		}
		if n.HasFrame() {
			parts = append(parts, s.frame.Sprint(n.Frame.String()))
		}

		indent := strings.Repeat("  ", max(n.Depth, 0))
		if _, err := fmt.Fprintln(w, indent+strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	return nil
}

var csvHeader = []string{"depth", "type", "identifier", "label", "value", "x", "y", "width", "height"}

func writeCSV(w io.Writer, nodes []uitree.Node) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, n := range nodes {
		row := []string{
			strconv.Itoa(n.Depth),
			n.ElementType,
			n.IdentifierText(),
			n.LabelText(),
			n.ValueText(),
			"", "", "", "",
		}
		if n.HasFrame() {
			row[5] = formatFloat(n.Frame.X)
			row[6] = formatFloat(n.Frame.Y)
			row[7] = formatFloat(n.Frame.Width)
			row[8] = formatFloat(n.Frame.Height)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
