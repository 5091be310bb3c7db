package grammar

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/arr-ai/frozen"
	"golang.org/x/exp/slices"
)

type TokenType int

const (
	RuleToken TokenType = iota
	TerminalToken
)

func (t TokenType) String() string {
	switch t {
	case RuleToken:
		return "rule"
	case TerminalToken:
		return "terminal"
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

func (t TokenType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Modifier is the repetition quantifier trailing a token.
type Modifier int

const (
	NoModifier Modifier = iota
	Optional
	ZeroOrMore
	OneOrMore
)

var modifierNames = [...]string{"none", "optional", "zero-or-more", "one-or-more"}

func (m Modifier) String() string {
	if m < 0 || int(m) >= len(modifierNames) {
		return fmt.Sprintf("Modifier(%d)", int(m))
	}
	return modifierNames[m]
}

// Symbol returns the quantifier character, or "" for NoModifier.
func (m Modifier) Symbol() string {
	switch m {
	case Optional:
		return "?"
	case ZeroOrMore:
		return "*"
	case OneOrMore:
		return "+"
	}
	return ""
}

// Label is the short human form shown by the markdown view.
func (m Modifier) Label() string {
	switch m {
	case Optional:
		return "1 or none"
	case ZeroOrMore:
		return "0+"
	case OneOrMore:
		return "1+"
	}
	return "none"
}

func (m Modifier) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ModifierOf maps the trailing character of a raw token to its modifier.
func ModifierOf(raw string) Modifier {
	switch {
	case strings.HasSuffix(raw, "?"):
		return Optional
	case strings.HasSuffix(raw, "*"):
		return ZeroOrMore
	case strings.HasSuffix(raw, "+"):
		return OneOrMore
	}
	return NoModifier
}

type Token struct {
	Type     TokenType `json:"type" yaml:"type"`
	Value    string    `json:"value" yaml:"value"`
	Raw      string    `json:"-" yaml:"-"`
	Modifier Modifier  `json:"modifier" yaml:"modifier"`
}

func (t Token) String() string {
	return fmt.Sprintf("%s %s%s", t.Type, t.Value, t.Modifier.Symbol())
}

type Rule struct {
	Name     string   `json:"-" yaml:"-"`
	Body     string   `json:"-" yaml:"-"`
	Tokens   []Token  `json:"tokens" yaml:"tokens"`
	CalledBy []string `json:"called_by" yaml:"called_by"`
}

// Table holds the rules of one parsed grammar and the terminals they use.
// A Table is never updated after Parse returns it.
type Table struct {
	order     []string
	rules     map[string]*Rule
	terminals frozen.Set[string]
}

func newTable() *Table {
	return &Table{rules: map[string]*Rule{}, terminals: frozen.NewSet[string]()}
}

func (t *Table) Len() int {
	return len(t.order)
}

func (t *Table) Has(name string) bool {
	_, has := t.rules[name]
	return has
}

func (t *Table) Rule(name string) (*Rule, bool) {
	r, has := t.rules[name]
	return r, has
}

// Names returns the rule names in definition order.
func (t *Table) Names() []string {
	return append([]string{}, t.order...)
}

// Rules returns the rules in definition order.
func (t *Table) Rules() []*Rule {
	out := make([]*Rule, 0, len(t.order))
	for _, name := range t.order {
		out = append(out, t.rules[name])
	}
	return out
}

func (t *Table) TerminalSet() frozen.Set[string] {
	return t.terminals
}

// Terminals returns every terminal value, sorted.
func (t *Table) Terminals() []string {
	return t.terminals.OrderedElements(func(a, b string) bool { return a < b })
}

// TerminalsOf returns the distinct terminal values used by a rule in first-use order.
func (t *Table) TerminalsOf(name string) []string {
	r, has := t.rules[name]
	if !has {
		return nil
	}
	out := []string{}
	for _, tok := range r.Tokens {
		if tok.Type == TerminalToken && !slices.Contains(out, tok.Value) {
			out = append(out, tok.Value)
		}
	}
	return out
}

type tableView struct {
	Rules           map[string]*Rule    `json:"rules" yaml:"rules"`
	Terminals       []string            `json:"terminals" yaml:"terminals"`
	TerminalsByRule map[string][]string `json:"terminals_by_rule" yaml:"terminals_by_rule"`
}

func (t *Table) export() tableView {
	view := tableView{
		Rules:           make(map[string]*Rule, len(t.rules)),
		Terminals:       append([]string{}, t.Terminals()...),
		TerminalsByRule: make(map[string][]string, len(t.rules)),
	}
	for name, r := range t.rules {
		view.Rules[name] = r
		view.TerminalsByRule[name] = t.TerminalsOf(name)
	}
	return view
}

func (t *Table) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.export())
}

func (t *Table) MarshalYAML() (interface{}, error) {
	return t.export(), nil
}

func (t *Table) add(name string) *Rule {
	if r, has := t.rules[name]; has {
		return r
	}
	r := &Rule{Name: name, Tokens: []Token{}, CalledBy: []string{}}
	t.rules[name] = r
	t.order = append(t.order, name)
	return r
}
