package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/arr-ai/grammarguide/render"
)

var startingRule string
var treeCommand = cli.Command{
	Name:    "tree",
	Aliases: []string{"t"},
	Usage:   "Print the symbols reachable from a rule",
	Action:  tree,
	Flags: append([]cli.Flag{
		cli.StringFlag{
			Name:        "start",
			Usage:       "rule at the root of the tree, defaults to the first rule",
			Destination: &startingRule,
		},
	}, inputFlags...),
}

func tree(c *cli.Context) error {
	table, err := loadTable(os.Stdin)
	if err != nil {
		return err
	}
	start := startingRule
	if start == "" {
		names := table.Names()
		if len(names) == 0 {
			return fmt.Errorf("tree: grammar has no rules")
		}
		start = names[0]
	}
	return withOutput(c.App.Writer, func(w io.Writer) error {
		return render.Tree(w, table, start)
	})
}
