package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/arr-ai/frozen"

	"github.com/arr-ai/grammarguide/grammar"
)

type branch struct {
	text  string
	items []*branch
}

type treeWalker struct {
	table    *grammar.Table
	expanded map[string]bool
}

// Tree writes the symbols reachable from start, one level per reference.
// Each rule is expanded once: a later reference prints "(see above)", and a
// reference back into the rule being expanded prints "(recursive)".
func Tree(w io.Writer, t *grammar.Table, start string) error {
	if !t.Has(start) {
		return fmt.Errorf("tree: no rule named %q", start)
	}
	tw := treeWalker{table: t, expanded: map[string]bool{}}
	root := tw.expand(start, start, frozen.NewSet[string]())

	var sb strings.Builder
	sb.WriteString(root.text + "\n")
	root.write(&sb, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

func (tw treeWalker) expand(name, text string, path frozen.Set[string]) *branch {
	b := &branch{text: text}
	tw.expanded[name] = true
	path = path.With(name)
	r, _ := tw.table.Rule(name)
	seen := map[string]bool{}
	for _, tok := range r.Tokens {
		if seen[tok.Raw] {
			continue
		}
		seen[tok.Raw] = true
		switch {
		case tok.Type == grammar.TerminalToken:
			b.items = append(b.items, &branch{text: tok.Raw})
		case path.Has(tok.Value):
			b.items = append(b.items, &branch{text: tok.Raw + " (recursive)"})
		case tw.expanded[tok.Value]:
			b.items = append(b.items, &branch{text: tok.Raw + " (see above)"})
		default:
			b.items = append(b.items, tw.expand(tok.Value, tok.Raw, path))
		}
	}
	return b
}

func (b *branch) write(sb *strings.Builder, indent string) {
	for i, child := range b.items {
		connector, next := "├── ", "│   "
		if i == len(b.items)-1 {
			connector, next = "└── ", "    "
		}
		sb.WriteString(indent + connector + child.text + "\n")
		child.write(sb, indent+next)
	}
}
