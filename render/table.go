package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/olekukonko/tablewriter"

	"github.com/arr-ai/grammarguide/grammar"
)

func newTable(w io.Writer, header ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetBorder(false)
	return table
}

// RuleTable lists each rule with its tokens and callers.
func RuleTable(w io.Writer, t *grammar.Table) {
	table := newTable(w, "RULE", "TOKENS", "CALLED BY")
	for _, r := range t.Rules() {
		tokens := make([]string, 0, len(r.Tokens))
		for _, tok := range r.Tokens {
			tokens = append(tokens, tok.Raw)
		}
		table.Append([]string{r.Name, strings.Join(tokens, " "), strings.Join(r.CalledBy, ", ")})
	}
	table.Render()
}

// TerminalTable lists each terminal with the rules using it.
func TerminalTable(w io.Writer, t *grammar.Table) {
	users := map[string][]string{}
	for _, r := range t.Rules() {
		for _, term := range t.TerminalsOf(r.Name) {
			users[term] = append(users[term], r.Name)
		}
	}
	table := newTable(w, "TERMINAL", "DESCRIPTION", "USED BY")
	for _, term := range t.Terminals() {
		table.Append([]string{term, grammar.DescribeTerminal(term), strings.Join(users[term], ", ")})
	}
	table.Render()
}

// Specific dumps the rule table as Go syntax.
func Specific(w io.Writer, t *grammar.Table) error {
	_, err := fmt.Fprintln(w, repr.String(t.Rules(), repr.Indent("  ")))
	return err
}
