package ir

// Common subexpression elimination over Let binding groups. The IR is
// pure, and bindings inside one group never forward-reference each other,
// so a binding whose value is structurally identical to an earlier one in
// the same group can simply alias the earlier symbol.
//
// CSE returns a rewritten copy; the input tree is never mutated.
func CSE(node Node) Node {
	switch n := node.(type) {
	case *Let:
		bindings := make([]Binding, 0, len(n.Bindings))
		for _, b := range n.Bindings {
			value := CSE(b.Value)
			for _, prior := range bindings {
				if equalNodes(prior.Value, value) {
					value = prior.Sym
					break
				}
			}
			bindings = append(bindings, Binding{Sym: b.Sym, Value: value})
		}
		return &Let{Bindings: bindings, Body: CSE(n.Body), Location: n.Location}
	case *Apply:
		args := make([]Node, len(n.Args))
		for i, a := range n.Args {
			args[i] = CSE(a)
		}
		return &Apply{Fn: CSE(n.Fn), Args: args, CannotFail: n.CannotFail, Location: n.Location}
	case *Tuple:
		items := make([]Node, len(n.Items))
		for i, item := range n.Items {
			items[i] = CSE(item)
		}
		return &Tuple{Items: items, Location: n.Location}
	case *Begin:
		stmts := make([]Node, len(n.Stmts))
		for i, s := range n.Stmts {
			stmts[i] = CSE(s)
		}
		return &Begin{Stmts: stmts, Location: n.Location}
	case *Closure:
		captures := make([]Node, len(n.Captures))
		for i, c := range n.Captures {
			captures[i] = CSE(c)
		}
		return &Closure{Fn: CSE(n.Fn), Captures: captures, Location: n.Location}
	default:
		return node
	}
}

// equalNodes reports structural equality. Symbols compare by identity
// token, values by primitive equality; anything containing a Lambda is
// conservatively unequal.
func equalNodes(a, b Node) bool {
	switch an := a.(type) {
	case *Symbol:
		bn, ok := b.(*Symbol)
		return ok && an.Equal(bn)
	case *Value:
		bn, ok := b.(*Value)
		return ok && an.X == bn.X
	case *Tuple:
		bn, ok := b.(*Tuple)
		if !ok || len(an.Items) != len(bn.Items) {
			return false
		}
		for i := range an.Items {
			if !equalNodes(an.Items[i], bn.Items[i]) {
				return false
			}
		}
		return true
	case *Apply:
		bn, ok := b.(*Apply)
		if !ok || len(an.Args) != len(bn.Args) || an.CannotFail != bn.CannotFail {
			return false
		}
		if !equalNodes(an.Fn, bn.Fn) {
			return false
		}
		for i := range an.Args {
			if !equalNodes(an.Args[i], bn.Args[i]) {
				return false
			}
		}
		return true
	case *Closure:
		bn, ok := b.(*Closure)
		if !ok || len(an.Captures) != len(bn.Captures) {
			return false
		}
		if !equalNodes(an.Fn, bn.Fn) {
			return false
		}
		for i := range an.Captures {
			if !equalNodes(an.Captures[i], bn.Captures[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
