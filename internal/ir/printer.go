package ir

import (
	"fmt"
	"strings"
)

// Printer renders IR nodes as s-expressions. The output is stable across
// runs for identical input programs (labels are versioned per generator,
// tokens never appear), which makes it suitable for golden tests.
type Printer struct {
	output strings.Builder
}

func NewPrinter() *Printer {
	return &Printer{}
}

// Print returns the s-expression form of a node.
func Print(node Node) string {
	p := NewPrinter()
	p.printNode(node)
	return p.output.String()
}

// PrintEnv renders every definition of an env in insertion order, one
// "ref = (lambda ...)" line per function.
func PrintEnv(env *Env) string {
	var out strings.Builder
	for _, ref := range env.Symbols() {
		fn, _ := env.Resolve(ref)
		out.WriteString(ref.Label)
		out.WriteString(" = ")
		out.WriteString(Print(fn))
		out.WriteString("\n")
	}
	return out.String()
}

func (p *Printer) write(format string, args ...any) {
	p.output.WriteString(fmt.Sprintf(format, args...))
}

func (p *Printer) printNode(node Node) {
	switch n := node.(type) {
	case *Symbol:
		p.write("%s", n.Label)
	case *Value:
		p.printValue(n)
	case *Tuple:
		p.write("(")
		for i, item := range n.Items {
			if i > 0 {
				p.write(", ")
			}
			p.printNode(item)
		}
		p.write(")")
	case *Apply:
		p.write("(")
		p.printNode(n.Fn)
		for _, arg := range n.Args {
			p.write(" ")
			p.printNode(arg)
		}
		p.write(")")
	case *Let:
		p.write("(let (")
		for i, b := range n.Bindings {
			if i > 0 {
				p.write(" ")
			}
			p.write("(%s ", b.Sym.Label)
			p.printNode(b.Value)
			p.write(")")
		}
		p.write(") ")
		p.printNode(n.Body)
		p.write(")")
	case *Begin:
		p.write("(begin")
		for _, s := range n.Stmts {
			p.write(" ")
			p.printNode(s)
		}
		p.write(")")
	case *Lambda:
		p.write("(lambda (")
		for i, param := range n.Params {
			if i > 0 {
				p.write(" ")
			}
			p.write("%s", param.Label)
		}
		p.write(") ")
		p.printNode(n.Body)
		p.write(")")
	case *Closure:
		p.write("(closure ")
		p.printNode(n.Fn)
		for _, c := range n.Captures {
			p.write(" ")
			p.printNode(c)
		}
		p.write(")")
	default:
		p.write("<?>")
	}
}

func (p *Printer) printValue(v *Value) {
	switch x := v.X.(type) {
	case nil:
		p.write("none")
	case string:
		p.write("%q", x)
	default:
		p.write("%v", x)
	}
}

func (s *Symbol) String() string  { return Print(s) }
func (v *Value) String() string   { return Print(v) }
func (t *Tuple) String() string   { return Print(t) }
func (a *Apply) String() string   { return Print(a) }
func (l *Let) String() string     { return Print(l) }
func (b *Begin) String() string   { return Print(b) }
func (l *Lambda) String() string  { return Print(l) }
func (c *Closure) String() string { return Print(c) }
