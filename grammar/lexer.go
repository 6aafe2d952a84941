package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var MicaLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `//[^\n]*`},

		// Number literals (float before int so "1.5" is not split)
		{Name: "Float", Pattern: `[0-9]+\.[0-9]+`},
		{Name: "Int", Pattern: `[0-9]+`},

		// String literals
		{Name: "String", Pattern: `"(\\.|[^"\\])*"`},

		// Keywords and identifiers
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},

		// Variadic marker (must come before Punctuation's ".")
		{Name: "Ellipsis", Pattern: `\.\.\.`},

		// Operators (longest first)
		{Name: "Operator", Pattern: `(\*\*|==|!=|<=|>=|\+=|-=|\*=|/=|%=|=|[-+*/%<>])`},

		// Punctuation
		{Name: "Punctuation", Pattern: `[@{}\[\]().,:;|]`},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	},
})
