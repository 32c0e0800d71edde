package script

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// scriptLexer defines the token structure for board scripts. The
// grammar is keyword-driven; keywords are ordinary identifiers matched
// by value, so the lexer stays small.
var scriptLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run from # to end of line
	{Name: "Comment", Pattern: `#[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[ \t\n\r]+`},

	// String literals with escape sequences; names like "E$1" and
	// free text both use these
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	// Numbers, signed, with optional decimal part
	{Name: "Number", Pattern: `[-+]?[0-9]+(?:\.[0-9]+)?`},

	// Punctuation
	{Name: "Colon", Pattern: `:`},
	{Name: "Dot", Pattern: `\.`},
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},

	// Identifiers (keywords and bare words like shape names)
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_-]*`},
})
