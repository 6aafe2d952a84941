package front

import (
	"github.com/alecthomas/participle/v2/lexer"

	"mica/internal/ir"
)

// Locator maps host-AST positions to IR source locations. When translating
// a fragment extracted from a larger file, LineOffset compensates so
// diagnostics point at the real line.
type Locator struct {
	Source     string
	LineOffset int
}

func (l *Locator) Loc(pos lexer.Position) *ir.Location {
	if pos.Line == 0 {
		return nil
	}
	return &ir.Location{
		Source: l.Source,
		Line:   pos.Line + l.LineOffset - 1,
		Column: pos.Column,
	}
}
