package diag

import (
	"fmt"

	"mica/internal/ir"
)

// Error codes used in diagnostic headers. Translation is all-or-nothing
// and every user-facing rejection is a TranslateError distinguished by its
// message, so the code table stays small.
const (
	CodeTranslate  = "T0001"
	CodeUndeclared = "T0002"
)

// TranslateError is the single error kind for every construct the
// translator rejects. Loc is nil for synthetic nodes.
type TranslateError struct {
	Loc     *ir.Location
	Message string
}

func (e *TranslateError) Error() string {
	return e.Message
}

// Errorf builds a TranslateError at a location.
func Errorf(loc *ir.Location, format string, args ...any) *TranslateError {
	return &TranslateError{Loc: loc, Message: fmt.Sprintf(format, args...)}
}

// UndeclaredVariableError reports a name absent through the whole scope
// chain in a context that requires strict local resolution.
type UndeclaredVariableError struct {
	Name string
	Loc  *ir.Location
}

func (e *UndeclaredVariableError) Error() string {
	return fmt.Sprintf("Undeclared variable: %s", e.Name)
}
