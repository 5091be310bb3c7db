package grammar

import _ "embed" // for W3C

// W3C is the EBNF notation used by the W3C specifications, written in itself.
//
//go:embed w3c.ebnf
var W3C string
