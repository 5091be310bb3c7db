package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/arr-ai/grammarguide/render"
)

var parseFormat string
var parseCommand = cli.Command{
	Name:    "parse",
	Aliases: []string{"p"},
	Usage:   "Show the rules and terminals of a grammar",
	Action:  parse,
	Flags: append([]cli.Flag{
		cli.StringFlag{
			Name:        "format",
			Usage:       "one of markdown, json, yaml, specific, table, terminals",
			Value:       "markdown",
			Destination: &parseFormat,
		},
	}, inputFlags...),
}

func parse(c *cli.Context) error {
	table, err := loadTable(os.Stdin)
	if err != nil {
		return err
	}
	return withOutput(c.App.Writer, func(w io.Writer) error {
		switch parseFormat {
		case "markdown":
			return render.Markdown(w, table)
		case "json":
			return render.JSON(w, table)
		case "yaml":
			return render.YAML(w, table)
		case "specific":
			return render.Specific(w, table)
		case "table":
			render.RuleTable(w, table)
		case "terminals":
			render.TerminalTable(w, table)
		default:
			return fmt.Errorf("unknown format %q", parseFormat)
		}
		return nil
	})
}
