package grammar

import (
	"encoding/json"
	"testing"

	"github.com/arr-ai/frozen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rule(value string, mod Modifier) Token {
	return Token{Type: RuleToken, Value: value, Raw: value + mod.Symbol(), Modifier: mod}
}

func terminal(value string, mod Modifier) Token {
	return Token{Type: TerminalToken, Value: value, Raw: value + mod.Symbol(), Modifier: mod}
}

func TestParseRoundTrip(t *testing.T) {
	table, err := Parse("A ::= B C\nB ::= 'x'\nC ::= [0-9]+\n")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, table.Names())

	a, _ := table.Rule("A")
	assert.Equal(t, []Token{rule("B", NoModifier), rule("C", NoModifier)}, a.Tokens)
	assert.Empty(t, a.CalledBy)

	b, _ := table.Rule("B")
	assert.Equal(t, []Token{terminal("'x'", NoModifier)}, b.Tokens)
	assert.Equal(t, []string{"A"}, b.CalledBy)

	c, _ := table.Rule("C")
	assert.Equal(t, []Token{terminal("[0-9]", OneOrMore)}, c.Tokens)
	assert.Equal(t, []string{"A"}, c.CalledBy)

	assert.Equal(t, []string{"'x'", "[0-9]"}, table.Terminals())
}

func TestParseSelfReference(t *testing.T) {
	table := MustParse("L ::= L ',' L")
	l, has := table.Rule("L")
	require.True(t, has)
	assert.Equal(t, []string{"L"}, l.CalledBy)
	assert.Equal(t, []Token{rule("L", NoModifier), terminal("','", NoModifier), rule("L", NoModifier)}, l.Tokens)
}

func TestParseEmptyBody(t *testing.T) {
	table := MustParse("E ::=")
	e, has := table.Rule("E")
	require.True(t, has)
	assert.Empty(t, e.Tokens)
	assert.Empty(t, e.CalledBy)

	table = MustParse("E ::=\nF ::= E")
	e, _ = table.Rule("E")
	assert.Empty(t, e.Tokens)
	assert.Equal(t, []string{"F"}, e.CalledBy)
}

func TestParseEmptyInput(t *testing.T) {
	for _, text := range []string{"", "\n\n", "no rules here", "= ::= x", "::= orphan"} {
		text := text
		t.Run(text, func(t *testing.T) {
			table, err := Parse(text)
			require.NoError(t, err)
			assert.Zero(t, table.Len())
			assert.Empty(t, table.Terminals())
		})
	}
}

func TestParseModifiers(t *testing.T) {
	for _, test := range []struct {
		body     string
		value    string
		modifier Modifier
	}{
		{"a", "a", NoModifier},
		{"a?", "a", Optional},
		{"a*", "a", ZeroOrMore},
		{"a+", "a", OneOrMore},
		{"'lit'?", "'lit'", Optional},
		{`"lit"*`, `"lit"`, ZeroOrMore},
		{"[^abc]+", "[^abc]", OneOrMore},
		{"#x20?", "#x20", Optional},
	} {
		test := test
		t.Run(test.body, func(t *testing.T) {
			table := MustParse("r ::= " + test.body)
			r, _ := table.Rule("r")
			require.Len(t, r.Tokens, 1)
			assert.Equal(t, test.value, r.Tokens[0].Value)
			assert.Equal(t, test.body, r.Tokens[0].Raw)
			assert.Equal(t, test.modifier, r.Tokens[0].Modifier)
			assert.Equal(t, test.modifier, ModifierOf(test.body))
		})
	}
}

func TestParseForwardReference(t *testing.T) {
	table := MustParse("first ::= second+ 'end'\nsecond ::= 'x'")
	first, _ := table.Rule("first")
	assert.Equal(t, rule("second", OneOrMore), first.Tokens[0])
	second, _ := table.Rule("second")
	assert.Equal(t, []string{"first"}, second.CalledBy)
	assert.False(t, table.TerminalSet().Has("second"))
}

func TestParseUnresolvedReferenceIsTerminal(t *testing.T) {
	table := MustParse("a ::= bee\nb ::= 'x'")
	a, _ := table.Rule("a")
	assert.Equal(t, terminal("bee", NoModifier), a.Tokens[0])
	assert.True(t, table.TerminalSet().Has("bee"))
}

func TestParseContinuationLines(t *testing.T) {
	table := MustParse("expr\n     ::= term\n       | expr '+' term\nterm ::= [0-9]+\n")
	assert.Equal(t, []string{"expr", "term"}, table.Names())
	expr, _ := table.Rule("expr")
	assert.Len(t, expr.Tokens, 4)
	assert.Equal(t, []string{"expr"}, expr.CalledBy)
	term, _ := table.Rule("term")
	assert.Equal(t, []string{"expr"}, term.CalledBy)
}

func TestParseSkipsCommentsAndBrokenLiterals(t *testing.T) {
	table := MustParse("a ::= '/*' b '*/'\n  /* ws: explicit */\nb ::= 'ok' 'unterminated\n")
	a, _ := table.Rule("a")
	assert.Equal(t, []Token{
		terminal("'/*'", NoModifier), rule("b", NoModifier), terminal("'*/'", NoModifier),
	}, a.Tokens)
	b, _ := table.Rule("b")
	assert.Equal(t, []Token{terminal("'ok'", NoModifier), terminal("unterminated", NoModifier)}, b.Tokens)
	assert.False(t, table.TerminalSet().Has("ws"))
}

func TestParseDuplicateDefinition(t *testing.T) {
	table := MustParse("a ::= 'x'\na ::= 'y'")
	assert.Equal(t, 1, table.Len())
	a, _ := table.Rule("a")
	assert.Equal(t, []Token{terminal("'x'", NoModifier), terminal("'y'", NoModifier)}, a.Tokens)
}

func TestParseIdempotent(t *testing.T) {
	first := MustParse(W3C)
	second := MustParse(W3C)
	assert.Equal(t, first.Names(), second.Names())
	assert.Equal(t, first.Rules(), second.Rules())
	assert.Equal(t, first.Terminals(), second.Terminals())
}

func TestParseW3C(t *testing.T) {
	table := MustParse(W3C)
	assert.Equal(t, 18, table.Len())

	for _, r := range table.Rules() {
		for _, tok := range r.Tokens {
			assert.Equal(t, table.Has(tok.Value), tok.Type == RuleToken, "%s in %s", tok.Value, r.Name)
		}
		// called_by is exactly the set of rules whose body uses r
		expected := frozen.NewSet[string]()
		for _, caller := range table.Rules() {
			for _, tok := range caller.Tokens {
				if tok.Type == RuleToken && tok.Value == r.Name {
					expected = expected.With(caller.Name)
				}
			}
		}
		assert.ElementsMatch(t, expected.Elements(), r.CalledBy, r.Name)
	}

	ncname, _ := table.Rule("NCName")
	assert.Equal(t, []string{"Production", "Primary", "URL"}, ncname.CalledBy)
	s, _ := table.Rule("S")
	assert.Equal(t, []string{"#x9", "#xA", "#xD", "#x20"}, table.TerminalsOf("S"))
	assert.Len(t, s.Tokens, 4)
	assert.False(t, table.TerminalSet().Has("explicit"))
}

func TestTableJSON(t *testing.T) {
	data, err := json.Marshal(MustParse("A ::= B?\nB ::= 'x'*"))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"rules": {
			"A": {"tokens": [{"type": "rule", "value": "B", "modifier": "optional"}], "called_by": []},
			"B": {"tokens": [{"type": "terminal", "value": "'x'", "modifier": "zero-or-more"}], "called_by": ["A"]}
		},
		"terminals": ["'x'"],
		"terminals_by_rule": {"A": [], "B": ["'x'"]}
	}`, string(data))

	data, err = json.Marshal(MustParse(""))
	require.NoError(t, err)
	assert.JSONEq(t, `{"rules": {}, "terminals": [], "terminals_by_rule": {}}`, string(data))
}

func TestDescribeTerminal(t *testing.T) {
	assert.Equal(t, "anything except \"", DescribeTerminal(`[^"]`))
	assert.Equal(t, "only 0-9a-f", DescribeTerminal("[0-9a-f]"))
	assert.Equal(t, "", DescribeTerminal("'x'"))
	assert.Equal(t, "", DescribeTerminal("["))
}

func TestLinkFault(t *testing.T) {
	table := newTable()
	r := table.add("a")
	r.Tokens = append(r.Tokens, Token{Type: RuleToken, Value: "ghost"})
	assert.Panics(t, func() { link(table) })

	err := func() (err error) {
		defer recoverFault(&err)
		link(table)
		return nil
	}()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parser fault")
	assert.Contains(t, err.Error(), `"ghost"`)
}
