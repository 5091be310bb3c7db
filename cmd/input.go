package cmd

import (
	"io"
	"io/ioutil"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/grammarguide/grammar"
)

var inGrammarFile string
var useExample bool
var outFile string

var inputFlags = []cli.Flag{
	cli.StringFlag{
		Name:        "grammar",
		Usage:       "input grammar file, - for stdin",
		TakesFile:   true,
		Destination: &inGrammarFile,
	},
	cli.BoolFlag{
		Name:        "example",
		Usage:       "use the built-in W3C EBNF grammar as input",
		Destination: &useExample,
	},
	cli.StringFlag{
		Name:        "output",
		Usage:       "filename to write the output to",
		TakesFile:   true,
		Destination: &outFile,
	},
}

func readGrammar(stdin io.Reader) (string, error) {
	if useExample {
		return grammar.W3C, nil
	}
	var buf []byte
	var err error
	switch inGrammarFile {
	case "", "-":
		buf, err = ioutil.ReadAll(stdin)
	default:
		buf, err = ioutil.ReadFile(inGrammarFile)
	}
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func loadTable(stdin io.Reader) (*grammar.Table, error) {
	text, err := readGrammar(stdin)
	if err != nil {
		return nil, err
	}
	table, err := grammar.Parse(text)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("loaded %d rules", table.Len())
	return table, nil
}

// withOutput runs fn against the --output file, or stdout when none is set.
func withOutput(stdout io.Writer, fn func(w io.Writer) error) error {
	switch outFile {
	case "", "-":
		return fn(stdout)
	default:
		f, err := os.Create(outFile)
		if err != nil {
			return err
		}
		if err := fn(f); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
}
