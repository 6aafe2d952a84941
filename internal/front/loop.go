package front

import (
	"mica/grammar"
	"mica/internal/ir"
)

const loopReturnError = "return is not allowed inside a while loop"

// translateWhile lowers a loop into two mutually recursive functions: a
// test function that either invokes the body closure or an identity
// closure over the pre-loop values, and a body function that recurses
// into the test with the updated values. The loop carries in_vars (every
// variable the loop reads or assigns) and surfaces out_vars (every
// variable it assigns) back into the enclosing scope.
func (t *Translator) translateWhile(n *grammar.WhileStmt) (ir.Node, error) {
	loc := t.loc(n.Pos)
	wsym := t.env.GenDerived(t.dest, "loop")
	wbsym := t.env.GenDerived(t.dest, "body")

	inVars, outVars, err := t.exploreVars(n)
	if err != nil {
		return nil, err
	}

	// Touch every in_var in the enclosing scope first, so that free ones
	// are pulled there before the loop shadows them below.
	for _, name := range inVars {
		t.visitVariable(name, loc)
	}

	p := t.sub(subOpts{dest: wsym, returnError: loopReturnError})
	inSyms := make([]*ir.Symbol, len(inVars))
	for i, name := range inVars {
		inSyms[i] = p.newVariable(name, loc)
	}

	// The zero-iteration values must be captured before the body shadows
	// the loop parameters.
	initialValues := make([]ir.Node, len(outVars))
	for i, name := range outVars {
		sym, err := p.scope.Get(name)
		if err != nil {
			return nil, err
		}
		initialValues[i] = sym
	}

	test, err := p.Expression(n.Cond)
	if err != nil {
		return nil, err
	}
	wrap, err := p.bodyWrapper(n.Body)
	if err != nil {
		return nil, err
	}

	// Recurse with the freshest binding of every in_var.
	recurseArgs := make([]ir.Node, len(inVars))
	for i, name := range inVars {
		sym, err := p.scope.Get(name)
		if err != nil {
			return nil, err
		}
		recurseArgs[i] = sym
	}
	loopBody, err := wrap(&ir.Apply{Fn: wsym, Args: recurseArgs, Location: loc})
	if err != nil {
		return nil, err
	}
	bodyRef := p.registerLambda(wbsym, inSyms, loopBody, loc)

	bodyClosure := closureOver(bodyRef, symNodes(inSyms), loc)
	skipClosure := &ir.Closure{
		Fn:       builtinIdentity.At(loc),
		Captures: []ir.Node{&ir.Tuple{Items: initialValues, Location: loc}},
		Location: loc,
	}
	choice := &ir.Apply{
		Fn:         builtinSwitch.At(loc),
		Args:       []ir.Node{test, bodyClosure, skipClosure},
		CannotFail: true,
		Location:   loc,
	}
	testBody := &ir.Apply{Fn: choice, Location: loc}
	t.registerLambda(wsym, inSyms, testBody, loc)

	entryArgs := make([]ir.Node, len(inVars))
	for i, name := range inVars {
		entryArgs[i] = t.visitVariable(name, loc)
	}
	val := &ir.Apply{Fn: wsym.At(loc), Args: entryArgs, Location: loc}
	return t.multiAssign(outVars, val), nil
}

// exploreVars dry-runs the loop against a private definition table to
// discover which variables it reads free and which it assigns. Nothing
// the dry run mints or defines leaks into the real translation.
func (t *Translator) exploreVars(n *grammar.WhileStmt) (inVars, outVars []string, err error) {
	dry := t.sub(subOpts{
		env:         ir.NewEnv(t.env.Namespace, t.env.Source),
		defs:        ir.Discard{},
		returnError: loopReturnError,
	})
	if _, err := dry.Expression(n.Cond); err != nil {
		return nil, nil, err
	}
	if _, err := dry.bodyWrapper(n.Body); err != nil {
		return nil, nil, err
	}

	inVars = append(inVars, dry.freeNames...)
	for _, name := range dry.assignedNames {
		if _, ok := dry.freeSyms[name]; !ok {
			inVars = append(inVars, name)
		}
	}
	return inVars, dry.assignedNames, nil
}

func symNodes(syms []*ir.Symbol) []ir.Node {
	out := make([]ir.Node, len(syms))
	for i, s := range syms {
		out[i] = s
	}
	return out
}

func closureOver(fn ir.Node, captures []ir.Node, loc *ir.Location) ir.Node {
	if len(captures) == 0 {
		return fn
	}
	return &ir.Closure{Fn: fn, Captures: captures, Location: loc}
}
