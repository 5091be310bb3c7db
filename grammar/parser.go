package grammar

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/arr-ai/frozen"
	"github.com/go-errors/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
)

var (
	// A definition may put its name on one line and `::=` on the next.
	definitionRE = regexp.MustCompile(`(?m)^[ \t]*([A-Za-z0-9_]+)\s*::=`)
	tokenRE      = regexp.MustCompile(
		`(\[(?:[^\]\\\n]|\\.)*\][?*+]?)` + // character class
			`|('[^'\n]*'[?*+]?|"[^"\n]*"[?*+]?)` + // quoted literal
			`|(#x[0-9A-Fa-f]+[?*+]?)` + // hex char code
			`|([A-Za-z0-9_]+[?*+]?)` + // identifier
			`|(/\*[\s\S]*?\*/)`, // comment, e.g. /* ws: explicit */
	)
)

type definition struct {
	name, body string
}

// Parse extracts the rules of an EBNF grammar. Text that does not look like a
// rule definition is ignored, so Parse only fails on an internal fault.
func Parse(text string) (_ *Table, err error) {
	defer recoverFault(&err)

	defs := definitions(text)

	names := frozen.NewSet[string]()
	for _, d := range defs {
		names = names.With(d.name)
	}

	table := newTable()
	for _, d := range defs {
		rule := table.add(d.name)
		if body := strings.TrimSpace(d.body); body != "" {
			rule.Body = strings.TrimSpace(rule.Body + "\n" + body)
		}
		for _, tok := range tokenize(d.body, names) {
			rule.Tokens = append(rule.Tokens, tok)
			if tok.Type == TerminalToken {
				table.terminals = table.terminals.With(tok.Value)
			}
		}
	}
	link(table)

	logrus.WithFields(logrus.Fields{
		"rules":     table.Len(),
		"terminals": table.terminals.Count(),
	}).Trace("parsed grammar")
	return table, nil
}

// recoverFault turns a panic in the parser into err, with the stack attached.
func recoverFault(err *error) {
	if r := recover(); r != nil {
		*err = errors.WrapPrefix(r, "grammar: parser fault", 2)
	}
}

func MustParse(text string) *Table {
	t, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return t
}

// definitions splits text into rule bodies. Each body runs from its `::=` to
// the start of the next definition.
func definitions(text string) []definition {
	locs := definitionRE.FindAllStringSubmatchIndex(text, -1)
	defs := make([]definition, 0, len(locs))
	for i, loc := range locs {
		end := len(text)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		defs = append(defs, definition{
			name: text[loc[2]:loc[3]],
			body: text[loc[1]:end],
		})
	}
	return defs
}

func tokenize(body string, names frozen.Set[string]) []Token {
	matches := tokenRE.FindAllStringSubmatch(body, -1)
	tokens := make([]Token, 0, len(matches))
	for _, m := range matches {
		raw := m[0]
		if m[5] != "" {
			continue
		}
		mod := ModifierOf(raw)
		value := strings.TrimSuffix(raw, mod.Symbol())
		typ := TerminalToken
		if names.Has(value) {
			typ = RuleToken
		}
		tokens = append(tokens, Token{Type: typ, Value: value, Raw: raw, Modifier: mod})
	}
	return tokens
}

// link fills in CalledBy once every token has been classified.
func link(t *Table) {
	for _, caller := range t.Rules() {
		for _, tok := range caller.Tokens {
			if tok.Type != RuleToken {
				continue
			}
			callee, has := t.rules[tok.Value]
			if !has {
				panic(fmt.Errorf("link: rule token %q in %s has no definition", tok.Value, caller.Name))
			}
			if !slices.Contains(callee.CalledBy, caller.Name) {
				callee.CalledBy = append(callee.CalledBy, caller.Name)
			}
		}
	}
}

// DescribeTerminal labels character classes: `[^X]` is "anything except X"
// and `[X]` is "only X". Other terminals have no description.
func DescribeTerminal(value string) string {
	if len(value) < 2 || value[0] != '[' || value[len(value)-1] != ']' {
		return ""
	}
	inner := value[1 : len(value)-1]
	if rest := strings.TrimPrefix(inner, "^"); rest != inner {
		return "anything except " + rest
	}
	return "only " + inner
}
