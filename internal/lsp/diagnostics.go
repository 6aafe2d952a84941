package lsp

import (
	"errors"

	"github.com/alecthomas/participle/v2"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"mica/internal/diag"
	"mica/internal/front"
	"mica/internal/ir"
)

// BuiltinCompletions is what completion requests offer.
var BuiltinCompletions = front.BuiltinNames()

// CheckSource translates a document and converts any failure into LSP
// diagnostics. A clean document yields nil, which clears old diagnostics.
func CheckSource(path, text string) []protocol.Diagnostic {
	_, err := front.TranslateSource(text, front.SourceName(path))
	if err == nil {
		return nil
	}
	return convertError(err)
}

func convertError(err error) []protocol.Diagnostic {
	var terr *diag.TranslateError
	if errors.As(err, &terr) {
		return []protocol.Diagnostic{atLocation(terr.Loc, terr.Message, "mica-translate")}
	}

	var uerr *diag.UndeclaredVariableError
	if errors.As(err, &uerr) {
		return []protocol.Diagnostic{atLocation(uerr.Loc, uerr.Error(), "mica-translate")}
	}

	var perr participle.Error
	if errors.As(err, &perr) {
		pos := perr.Position()
		loc := &ir.Location{Line: pos.Line, Column: pos.Column}
		return []protocol.Diagnostic{atLocation(loc, perr.Message(), "mica-parser")}
	}

	return []protocol.Diagnostic{atLocation(nil, err.Error(), "mica")}
}

func atLocation(loc *ir.Location, message, source string) protocol.Diagnostic {
	var line, char uint32
	if loc != nil {
		if loc.Line > 0 {
			line = uint32(loc.Line - 1) // Convert to 0-based indexing
		}
		if loc.Column > 0 {
			char = uint32(loc.Column - 1) // Convert to 0-based indexing
		}
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: char},
			End:   protocol.Position{Line: line, Character: char + 5}, // Rough span for visibility
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Source:   ptrString(source),
		Message:  message,
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
