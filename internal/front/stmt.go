package front

import (
	"mica/grammar"
	"mica/internal/ir"
)

// Statement translates one host statement. Assignments come back as
// transient assign nodes; bodyWrapper folds them into Let groups.
func (t *Translator) Statement(s *grammar.Stmt) (ir.Node, error) {
	loc := t.loc(s.Pos)
	switch {
	case s.Fn != nil:
		return t.fnStmt(s.Fn)
	case s.If != nil:
		return t.translateIf(s.If)
	case s.While != nil:
		return t.translateWhile(s.While)
	case s.For != nil:
		return nil, errorf(loc, "For loops are not supported.")
	case s.Return != nil:
		return t.returnStmt(s.Return)
	case s.Break:
		return nil, errorf(loc, "Break is not supported.")
	case s.Continue:
		return nil, errorf(loc, "Continue is not supported.")
	case s.Simple != nil:
		return t.simpleStmt(s.Simple)
	default:
		return nil, errorf(loc, "Unsupported statement")
	}
}

func (t *Translator) returnStmt(s *grammar.ReturnStmt) (ir.Node, error) {
	loc := t.loc(s.Pos)
	if t.returnError != "" {
		return nil, errorf(loc, "%s", t.returnError)
	}
	t.returns = true
	if s.Value == nil {
		return &ir.Value{X: nil, Location: loc}, nil
	}
	return t.Expression(s.Value)
}

// fnStmt lowers a named function definition: the name is bound before the
// body is translated, so recursive references resolve and get captured.
func (t *Translator) fnStmt(fn *grammar.FnDef) (ir.Node, error) {
	loc := t.loc(fn.Pos)
	if len(fn.Decorators) > 0 {
		return nil, errorf(t.loc(fn.Decorators[0].Pos), "Functions should not have decorators.")
	}
	label := fn.Name
	if !t.topLevel {
		label = "#:" + fn.Name
	}
	ref := t.env.Gen(label)

	sym := t.newVariable(fn.Name, loc)
	clos, err := t.makeClosure(fn.Params, func(p *Translator) (ir.Node, error) {
		return p.buildBody(fn.Body)
	}, loc, fn.Name, ref)
	if err != nil {
		return nil, err
	}
	t.recordAssigned(fn.Name)
	return &assign{sym: sym, value: clos, location: loc}, nil
}

func (t *Translator) simpleStmt(s *grammar.SimpleStmt) (ir.Node, error) {
	loc := t.loc(s.Pos)

	// Bare expression statement.
	if s.Op == "" {
		if len(s.Targets) != 1 {
			return nil, errorf(loc, "Deconstructing assignment is not supported.")
		}
		return t.Expression(s.Targets[0])
	}

	if len(s.Targets) != 1 {
		return nil, errorf(loc, "Deconstructing assignment is not supported.")
	}
	target := s.Targets[0]

	if op, ok := augOperators[s.Op]; ok {
		return t.augAssign(target, op, s.Value, loc)
	}

	if name, ok := targetName(target); ok {
		value, err := t.Expression(s.Value)
		if err != nil {
			return nil, err
		}
		return t.makeAssign(name, value, loc), nil
	}

	if p, ok := targetPostfix(target); ok && len(p.Ops) > 0 && p.Ops[len(p.Ops)-1].Index != nil {
		return t.sliceAssign(p, s.Value, loc)
	}

	return nil, errorf(loc, "Unsupported assignment target.")
}

// sliceAssign rewrites v[i] = x into v = setslice(v, i, x). Only a plain
// variable base is accepted: a deeper chain would update a copy.
func (t *Translator) sliceAssign(p *grammar.Postfix, value *grammar.Expr, loc *ir.Location) (ir.Node, error) {
	if len(p.Ops) != 1 || p.Primary.Ident == nil {
		return nil, errorf(loc, "You can only set a slice on a variable.")
	}
	name := *p.Primary.Ident

	prev := t.visitVariable(name, t.loc(p.Primary.Pos))
	index, err := t.indexArg(p.Ops[0].Index)
	if err != nil {
		return nil, err
	}
	val, err := t.Expression(value)
	if err != nil {
		return nil, err
	}
	next := &ir.Apply{
		Fn:       builtinSetslice.At(loc),
		Args:     []ir.Node{prev, index, val},
		Location: loc,
	}
	return t.makeAssign(name, next, loc), nil
}

// augAssign requires the target to already be bound somewhere in scope;
// an unbound target is an undeclared-variable error, not a global read.
func (t *Translator) augAssign(target *grammar.Expr, op *ir.Symbol, value *grammar.Expr, loc *ir.Location) (ir.Node, error) {
	name, ok := targetName(target)
	if !ok {
		return nil, errorf(loc, "Unsupported assignment target.")
	}
	if _, err := t.scope.Get(name); err != nil {
		return nil, undeclared(name, loc)
	}
	prev := t.visitVariable(name, t.loc(target.Pos))
	aug, err := t.Expression(value)
	if err != nil {
		return nil, err
	}
	next := &ir.Apply{
		Fn:       op.At(loc),
		Args:     []ir.Node{prev, aug},
		Location: loc,
	}
	return t.makeAssign(name, next, loc), nil
}

func (t *Translator) recordAssigned(name string) {
	if !t.assignedSet[name] {
		t.assignedSet[name] = true
		t.assignedNames = append(t.assignedNames, name)
	}
}

// targetName unwraps an expression that is a bare identifier.
func targetName(e *grammar.Expr) (string, bool) {
	p, ok := targetPostfix(e)
	if !ok || len(p.Ops) != 0 || p.Primary.Ident == nil {
		return "", false
	}
	return *p.Primary.Ident, true
}

// targetPostfix unwraps an expression that is a single postfix chain with
// no operators around it.
func targetPostfix(e *grammar.Expr) (*grammar.Postfix, bool) {
	if e.Closure != nil {
		return nil, false
	}
	or := e.Or
	if len(or.Rest) != 0 {
		return nil, false
	}
	and := or.Left
	if len(and.Rest) != 0 {
		return nil, false
	}
	not := and.Left
	if not.Not != nil {
		return nil, false
	}
	cmp := not.Cmp
	if len(cmp.Rest) != 0 {
		return nil, false
	}
	add := cmp.Left
	if len(add.Rest) != 0 {
		return nil, false
	}
	mul := add.Left
	if len(mul.Rest) != 0 {
		return nil, false
	}
	pow := mul.Left
	if pow.Right != nil {
		return nil, false
	}
	un := pow.Left
	if un.Op != "" {
		return nil, false
	}
	return un.Operand, true
}

// bodyWrapper translates every statement of a block and returns a wrap
// function that folds the results around a finalizer value: contiguous
// runs of assignments become Let groups, everything else becomes Begin,
// with nested Begins spliced flat.
func (t *Translator) bodyWrapper(block *grammar.Block) (func(final ir.Node) (ir.Node, error), error) {
	var nodes []ir.Node
	for _, stmt := range block.Stmts {
		if t.returns {
			return nil, errorf(t.loc(stmt.Pos), "There should be no statements after return.")
		}
		node, err := t.Statement(stmt)
		if err != nil {
			return nil, err
		}
		// Multi-assignment comes back as a Begin of assigns; splicing it
		// here lets those assigns join the surrounding Let group.
		if b, ok := node.(*ir.Begin); ok {
			nodes = append(nodes, b.Stmts...)
		} else {
			nodes = append(nodes, node)
		}
	}
	groups := groupContiguous(nodes)
	blockLoc := t.loc(block.Pos)

	wrap := func(final ir.Node) (ir.Node, error) {
		result := final
		for i := len(groups) - 1; i >= 0; i-- {
			group := groups[i]
			if a, ok := group[0].(*assign); ok {
				if result == nil {
					return nil, errorf(a.location, "Missing return statement.")
				}
				bindings := make([]ir.Binding, len(group))
				for j, node := range group {
					as := node.(*assign)
					bindings[j] = ir.Binding{Sym: as.sym, Value: as.value}
				}
				result = &ir.Let{Bindings: bindings, Body: result, Location: blockLoc}
				continue
			}
			stmts := group
			if result != nil {
				stmts = append(append([]ir.Node{}, group...), result)
			}
			if len(stmts) == 1 {
				result = stmts[0]
			} else {
				result = &ir.Begin{Stmts: flattenBegins(stmts), Location: blockLoc}
			}
		}
		if result == nil {
			return nil, errorf(blockLoc, "Missing return statement.")
		}
		return result, nil
	}
	return wrap, nil
}

// buildBody is bodyWrapper for function bodies, which must end in return.
func (t *Translator) buildBody(block *grammar.Block) (ir.Node, error) {
	wrap, err := t.bodyWrapper(block)
	if err != nil {
		return nil, err
	}
	body, err := wrap(nil)
	if err != nil {
		return nil, err
	}
	if !t.returns {
		return nil, errorf(t.loc(block.Pos), "Missing return statement.")
	}
	return body, nil
}

// groupContiguous splits nodes into maximal runs of assigns and runs of
// everything else, preserving order.
func groupContiguous(nodes []ir.Node) [][]ir.Node {
	var groups [][]ir.Node
	for _, node := range nodes {
		_, isAssign := node.(*assign)
		if len(groups) == 0 {
			groups = append(groups, []ir.Node{node})
			continue
		}
		last := groups[len(groups)-1]
		_, lastAssign := last[0].(*assign)
		if isAssign == lastAssign {
			groups[len(groups)-1] = append(last, node)
		} else {
			groups = append(groups, []ir.Node{node})
		}
	}
	return groups
}

func flattenBegins(nodes []ir.Node) []ir.Node {
	var out []ir.Node
	for _, node := range nodes {
		if b, ok := node.(*ir.Begin); ok {
			out = append(out, b.Stmts...)
			continue
		}
		out = append(out, node)
	}
	return out
}
