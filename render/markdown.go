// Package render writes parsed grammars and their graphs in human readable
// forms. Presentation choices such as colours live here and nowhere else.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/arr-ai/grammarguide/grammar"
)

// Anchor is the markdown anchor id of a rule heading.
func Anchor(rule string) string {
	return strcase.ToKebab(rule)
}

func Markdown(w io.Writer, t *grammar.Table) error {
	var sb strings.Builder
	for i, r := range t.Rules() {
		if i > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "<a id=\"%s\"></a>\n\n# `%s ::=`\n\n", Anchor(r.Name), r.Name)
		if r.Body != "" {
			fmt.Fprintf(&sb, "```\n%s\n```\n\n", r.Body)
		}
		for _, tok := range r.Tokens {
			fmt.Fprintf(&sb, "- #### %s: `%s`", tok.Type, tok.Value)
			if tok.Modifier != grammar.NoModifier {
				fmt.Fprintf(&sb, " (%s)", tok.Modifier.Label())
			}
			if desc := grammar.DescribeTerminal(tok.Value); desc != "" && tok.Type == grammar.TerminalToken {
				fmt.Fprintf(&sb, " _%s_", desc)
			}
			sb.WriteString("\n")
		}
		if len(r.CalledBy) > 0 {
			links := make([]string, 0, len(r.CalledBy))
			for _, caller := range r.CalledBy {
				links = append(links, fmt.Sprintf("[%s](#%s)", caller, Anchor(caller)))
			}
			fmt.Fprintf(&sb, "\ncalled by: %s\n", strings.Join(links, ", "))
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
