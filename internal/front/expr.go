package front

import (
	"mica/grammar"
	"mica/internal/ir"
)

// Expression translates one host expression into an IR node.
func (t *Translator) Expression(e *grammar.Expr) (ir.Node, error) {
	if e.Closure != nil {
		return t.closureExpr(e.Closure)
	}
	return t.orExpr(e.Or)
}

func (t *Translator) closureExpr(c *grammar.ClosureExpr) (ir.Node, error) {
	loc := t.loc(c.Pos)
	return t.makeClosure(c.Params, func(p *Translator) (ir.Node, error) {
		return p.Expression(c.Body)
	}, loc, "", nil)
}

func (t *Translator) orExpr(e *grammar.OrExpr) (ir.Node, error) {
	node, err := t.andExpr(e.Left)
	if err != nil {
		return nil, err
	}
	for _, rest := range e.Rest {
		right, err := t.andExpr(rest)
		if err != nil {
			return nil, err
		}
		node = &ir.Apply{Fn: builtinOr, Args: []ir.Node{node, right}, Location: t.loc(e.Pos)}
	}
	return node, nil
}

func (t *Translator) andExpr(e *grammar.AndExpr) (ir.Node, error) {
	node, err := t.notExpr(e.Left)
	if err != nil {
		return nil, err
	}
	for _, rest := range e.Rest {
		right, err := t.notExpr(rest)
		if err != nil {
			return nil, err
		}
		node = &ir.Apply{Fn: builtinAnd, Args: []ir.Node{node, right}, Location: t.loc(e.Pos)}
	}
	return node, nil
}

func (t *Translator) notExpr(e *grammar.NotExpr) (ir.Node, error) {
	if e.Not != nil {
		operand, err := t.notExpr(e.Not)
		if err != nil {
			return nil, err
		}
		return &ir.Apply{Fn: builtinNot, Args: []ir.Node{operand}, Location: t.loc(e.Pos)}, nil
	}
	return t.comparison(e.Cmp)
}

func (t *Translator) comparison(e *grammar.Comparison) (ir.Node, error) {
	left, err := t.additive(e.Left)
	if err != nil {
		return nil, err
	}
	switch len(e.Rest) {
	case 0:
		return left, nil
	case 1:
		tail := e.Rest[0]
		right, err := t.additive(tail.Right)
		if err != nil {
			return nil, err
		}
		op := operators[tail.Op].At(t.loc(tail.Pos))
		return &ir.Apply{Fn: op, Args: []ir.Node{left, right}, Location: t.loc(e.Pos)}, nil
	default:
		return nil, errorf(t.loc(e.Pos), "Comparisons must have a maximum of two operands")
	}
}

func (t *Translator) additive(e *grammar.Additive) (ir.Node, error) {
	node, err := t.multiplicative(e.Left)
	if err != nil {
		return nil, err
	}
	for _, tail := range e.Rest {
		right, err := t.multiplicative(tail.Right)
		if err != nil {
			return nil, err
		}
		op := operators[tail.Op].At(t.loc(tail.Pos))
		node = &ir.Apply{Fn: op, Args: []ir.Node{node, right}, Location: t.loc(tail.Pos)}
	}
	return node, nil
}

func (t *Translator) multiplicative(e *grammar.Multiplicative) (ir.Node, error) {
	node, err := t.power(e.Left)
	if err != nil {
		return nil, err
	}
	for _, tail := range e.Rest {
		right, err := t.power(tail.Right)
		if err != nil {
			return nil, err
		}
		op := operators[tail.Op].At(t.loc(tail.Pos))
		node = &ir.Apply{Fn: op, Args: []ir.Node{node, right}, Location: t.loc(tail.Pos)}
	}
	return node, nil
}

func (t *Translator) power(e *grammar.Power) (ir.Node, error) {
	left, err := t.unary(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Right == nil {
		return left, nil
	}
	// Right associative: a ** b ** c is a ** (b ** c).
	right, err := t.power(e.Right)
	if err != nil {
		return nil, err
	}
	return &ir.Apply{Fn: builtinPow, Args: []ir.Node{left, right}, Location: t.loc(e.Pos)}, nil
}

func (t *Translator) unary(e *grammar.Unary) (ir.Node, error) {
	operand, err := t.postfix(e.Operand)
	if err != nil {
		return nil, err
	}
	if e.Op == "-" {
		op := builtinNeg.At(t.loc(e.Pos))
		return &ir.Apply{Fn: op, Args: []ir.Node{operand}, Location: t.loc(e.Pos)}, nil
	}
	return operand, nil
}

func (t *Translator) postfix(e *grammar.Postfix) (ir.Node, error) {
	ops := e.Ops

	var node ir.Node
	// A literal call-target name present in the macro table bypasses
	// ordinary resolution; the macro receives the translated arguments.
	if e.Primary.Ident != nil && len(ops) > 0 && ops[0].Call != nil {
		if macro, ok := t.macros[*e.Primary.Ident]; ok {
			args, err := t.callArgs(ops[0].Call)
			if err != nil {
				return nil, err
			}
			replaced, err := macro(args...)
			if err != nil {
				return nil, err
			}
			node = replaced
			ops = ops[1:]
		}
	}

	if node == nil {
		primary, err := t.primary(e.Primary)
		if err != nil {
			return nil, err
		}
		node = primary
	}

	for _, op := range ops {
		next, err := t.postfixOp(node, op)
		if err != nil {
			return nil, err
		}
		node = next
	}
	return node, nil
}

func (t *Translator) postfixOp(node ir.Node, op *grammar.PostfixOp) (ir.Node, error) {
	loc := t.loc(op.Pos)
	switch {
	case op.Call != nil:
		args, err := t.callArgs(op.Call)
		if err != nil {
			return nil, err
		}
		return &ir.Apply{Fn: node, Args: args, Location: loc}, nil
	case op.Attr != nil:
		attr := &ir.Value{X: op.Attr.Name, Location: loc}
		fn := builtinGetattr.At(loc)
		return &ir.Apply{Fn: fn, Args: []ir.Node{node, attr}, Location: loc}, nil
	case op.Index != nil:
		index, err := t.indexArg(op.Index)
		if err != nil {
			return nil, err
		}
		fn := builtinIndex.At(loc)
		return &ir.Apply{Fn: fn, Args: []ir.Node{node, index}, Location: loc}, nil
	default:
		return nil, errorf(loc, "Unsupported postfix operation")
	}
}

func (t *Translator) callArgs(call *grammar.CallOp) ([]ir.Node, error) {
	for _, arg := range call.Args {
		if arg.Name != "" {
			return nil, errorf(t.loc(arg.Pos), "Keyword arguments are not allowed.")
		}
	}
	args := make([]ir.Node, 0, len(call.Args))
	for _, arg := range call.Args {
		node, err := t.Expression(arg.Value)
		if err != nil {
			return nil, err
		}
		args = append(args, node)
	}
	return args, nil
}

// indexArg translates the bracket contents of a subscript: a plain index
// expression, or a slice with omitted bounds defaulted to 0/none/1.
func (t *Translator) indexArg(idx *grammar.IndexOp) (ir.Node, error) {
	loc := t.loc(idx.Pos)
	if idx.Slice == nil {
		if idx.Start == nil {
			return nil, errorf(loc, "Empty subscript.")
		}
		return t.Expression(idx.Start)
	}

	var start ir.Node = &ir.Value{X: int64(0)}
	if idx.Start != nil {
		node, err := t.Expression(idx.Start)
		if err != nil {
			return nil, err
		}
		start = node
	}
	var stop ir.Node = &ir.Value{X: nil}
	if idx.Slice.Stop != nil {
		node, err := t.Expression(idx.Slice.Stop)
		if err != nil {
			return nil, err
		}
		stop = node
	}
	var step ir.Node = &ir.Value{X: int64(1)}
	if idx.Slice.Step != nil && idx.Slice.Step.Step != nil {
		node, err := t.Expression(idx.Slice.Step.Step)
		if err != nil {
			return nil, err
		}
		step = node
	}
	return &ir.Apply{Fn: builtinSlice, Args: []ir.Node{start, stop, step}, Location: loc}, nil
}

func (t *Translator) primary(e *grammar.Primary) (ir.Node, error) {
	loc := t.loc(e.Pos)
	switch {
	case e.Float != nil:
		return &ir.Value{X: *e.Float, Location: loc}, nil
	case e.Int != nil:
		return &ir.Value{X: *e.Int, Location: loc}, nil
	case e.Str != nil:
		return &ir.Value{X: *e.Str, Location: loc}, nil
	case e.True:
		return &ir.Value{X: true, Location: loc}, nil
	case e.False:
		return &ir.Value{X: false, Location: loc}, nil
	case e.None:
		return &ir.Value{X: nil, Location: loc}, nil
	case e.Ident != nil:
		return t.visitVariable(*e.Ident, loc), nil
	case e.Paren != nil:
		return t.grouped(e.Paren)
	default:
		return nil, errorf(loc, "Unsupported expression")
	}
}

func (t *Translator) grouped(g *grammar.Grouped) (ir.Node, error) {
	if len(g.Items) == 1 && !g.Trailing {
		return t.Expression(g.Items[0])
	}
	items := make([]ir.Node, 0, len(g.Items))
	for _, item := range g.Items {
		node, err := t.Expression(item)
		if err != nil {
			return nil, err
		}
		items = append(items, node)
	}
	return &ir.Tuple{Items: items, Location: t.loc(g.Pos)}, nil
}
