package front

import (
	"sort"
	"strings"

	"mica/grammar"
	"mica/internal/ir"
)

// translateIf normalizes a conditional into a selection between two
// zero-argument branch closures. Both branches must agree on whether they
// return and on the set of variables they assign; the assigned values are
// merged back into the parent through the closures' results.
func (t *Translator) translateIf(n *grammar.IfStmt) (ir.Node, error) {
	loc := t.loc(n.Pos)

	p1 := t.prepareClosure("", t.env.GenDerived(t.dest, "then"))
	thenWrap, err := p1.bodyWrapper(n.Then)
	if err != nil {
		return nil, err
	}

	elseBlock := n.Else
	if elseBlock == nil {
		elseBlock = &grammar.Block{Pos: n.Pos}
	}
	p2 := t.prepareClosure("", t.env.GenDerived(t.dest, "else"))
	elseWrap, err := p2.bodyWrapper(elseBlock)
	if err != nil {
		return nil, err
	}

	if p1.returns != p2.returns {
		return nil, errorf(loc, "Either none or all branches of an if statement must return a value.")
	}
	if !sameNameSet(p1.assignedNames, p2.assignedNames) {
		return nil, errorf(loc,
			"All branches of an if statement must assign to the same set of variables.\nTrue branch sets: %s\nElse branch sets: %s",
			nameSet(p1.assignedNames), nameSet(p2.assignedNames))
	}

	cond, err := t.Expression(n.Cond)
	if err != nil {
		return nil, err
	}

	// mkapply finishes both branch closures around their merge values and
	// builds the selection. The outer application invokes the chosen
	// zero-argument closure; the selection itself cannot fail.
	mkapply := func(thenFinal, elseFinal ir.Node) (ir.Node, error) {
		thenBody, err := thenWrap(thenFinal)
		if err != nil {
			return nil, err
		}
		thenBranch, err := t.constructClosure(p1, nil, thenBody, loc)
		if err != nil {
			return nil, err
		}
		elseBody, err := elseWrap(elseFinal)
		if err != nil {
			return nil, err
		}
		elseBranch, err := t.constructClosure(p2, nil, elseBody, loc)
		if err != nil {
			return nil, err
		}
		choice := &ir.Apply{
			Fn:         builtinSwitch.At(loc),
			Args:       []ir.Node{cond, thenBranch, elseBranch},
			CannotFail: true,
			Location:   loc,
		}
		return &ir.Apply{Fn: choice, Location: loc}, nil
	}

	if p1.returns {
		t.returns = true
		return mkapply(nil, nil)
	}

	// Merge order follows the first-assignment order of the true branch.
	names := p1.assignedNames
	if len(names) == 1 {
		name := names[0]
		thenSym, err := p1.scope.Get(name)
		if err != nil {
			return nil, err
		}
		elseSym, err := p2.scope.Get(name)
		if err != nil {
			return nil, err
		}
		app, err := mkapply(thenSym, elseSym)
		if err != nil {
			return nil, err
		}
		return t.makeAssign(name, app, nil), nil
	}

	thenVals := make([]ir.Node, len(names))
	elseVals := make([]ir.Node, len(names))
	for i, name := range names {
		thenSym, err := p1.scope.Get(name)
		if err != nil {
			return nil, err
		}
		elseSym, err := p2.scope.Get(name)
		if err != nil {
			return nil, err
		}
		thenVals[i] = thenSym
		elseVals[i] = elseSym
	}
	app, err := mkapply(&ir.Tuple{Items: thenVals}, &ir.Tuple{Items: elseVals})
	if err != nil {
		return nil, err
	}
	return t.multiAssign(names, app), nil
}

func sameNameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	set := make(map[string]bool, len(a))
	for _, name := range a {
		set[name] = true
	}
	for _, name := range b {
		if !set[name] {
			return false
		}
	}
	return true
}

func nameSet(names []string) string {
	if len(names) == 0 {
		return "{}"
	}
	sorted := append([]string{}, names...)
	sort.Strings(sorted)
	return "{" + strings.Join(sorted, ", ") + "}"
}
