package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/arr-ai/grammarguide/graph"
	"github.com/arr-ai/grammarguide/render"
)

var graphFormat string
var noCalledBy bool
var ruleColor, terminalColor string
var ruleSize, terminalSize int
var graphCommand = cli.Command{
	Name:    "graph",
	Aliases: []string{"g"},
	Usage:   "Build the rule graph of a grammar",
	Action:  buildGraph,
	Flags: append([]cli.Flag{
		cli.StringFlag{
			Name:        "format",
			Usage:       "one of dot, json, yaml",
			Value:       "dot",
			Destination: &graphFormat,
		},
		cli.BoolFlag{
			Name:        "no-called-by",
			Usage:       "omit caller -> callee edges",
			Destination: &noCalledBy,
		},
		cli.StringFlag{
			Name:        "rule-color",
			Value:       "#aaf",
			Destination: &ruleColor,
		},
		cli.StringFlag{
			Name:        "terminal-color",
			Value:       "#dc0",
			Destination: &terminalColor,
		},
		cli.IntFlag{
			Name:        "rule-size",
			Value:       20,
			Destination: &ruleSize,
		},
		cli.IntFlag{
			Name:        "terminal-size",
			Value:       10,
			Destination: &terminalSize,
		},
	}, inputFlags...),
}

func buildGraph(c *cli.Context) error {
	table, err := loadTable(os.Stdin)
	if err != nil {
		return err
	}
	g := graph.Build(table)
	if noCalledBy {
		g = g.Without(graph.CalledBy)
	}

	styles := render.DefaultStyles()
	styles[graph.RuleVertex] = render.Style{Shape: "box", Color: ruleColor, Size: ruleSize}
	styles[graph.TerminalVertex] = render.Style{Shape: "ellipse", Color: terminalColor, Size: terminalSize}

	return withOutput(c.App.Writer, func(w io.Writer) error {
		switch graphFormat {
		case "dot":
			return render.DOT(w, g, styles)
		case "json":
			return render.JSON(w, g)
		case "yaml":
			return render.YAML(w, g)
		}
		return fmt.Errorf("unknown format %q", graphFormat)
	})
}
