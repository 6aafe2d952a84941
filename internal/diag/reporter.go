package diag

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"mica/internal/ir"
)

// Reporter formats diagnostics for one source file. Translation errors get
// the full header/excerpt/marker treatment; every other error kind falls
// through to its own Error() text.
type Reporter struct {
	filename string
	lines    []string
}

func NewReporter(filename, source string) *Reporter {
	return &Reporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Format renders any error. TranslateError and UndeclaredVariableError are
// rendered with a source excerpt when they carry a location.
func (r *Reporter) Format(err error) string {
	var te *TranslateError
	if errors.As(err, &te) {
		return r.format(CodeTranslate, te.Message, te.Loc)
	}
	var ue *UndeclaredVariableError
	if errors.As(err, &ue) {
		return r.format(CodeUndeclared, ue.Error(), ue.Loc)
	}
	return err.Error() + "\n"
}

func (r *Reporter) format(code, message string, loc *ir.Location) string {
	var result strings.Builder

	errColor := color.New(color.FgRed, color.Bold).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	result.WriteString(fmt.Sprintf("%s[%s]: %s\n", errColor("error"), code, message))

	if loc == nil {
		return result.String()
	}

	lineNumberWidth := len(fmt.Sprintf("%d", loc.Line))
	if lineNumberWidth < 3 {
		lineNumberWidth = 3
	}
	indent := strings.Repeat(" ", lineNumberWidth)

	result.WriteString(fmt.Sprintf("%s %s %s:%d:%d\n",
		indent, dim("-->"), r.filename, loc.Line, loc.Column))
	result.WriteString(fmt.Sprintf("%s %s\n", indent, dim("│")))

	if loc.Line > 0 && loc.Line <= len(r.lines) {
		result.WriteString(fmt.Sprintf("%s %s %s\n",
			bold(fmt.Sprintf("%*d", lineNumberWidth, loc.Line)),
			dim("│"),
			r.lines[loc.Line-1]))

		marker := strings.Repeat(" ", maxInt(0, loc.Column-1)) + errColor("^")
		result.WriteString(fmt.Sprintf("%s %s %s\n", indent, dim("│"), marker))
	}

	return result.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
