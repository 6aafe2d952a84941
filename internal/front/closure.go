package front

import (
	"mica/grammar"
	"mica/internal/ir"
)

// bodyFunc produces the body of a closure inside its sub-translator.
type bodyFunc func(p *Translator) (ir.Node, error)

// prepareClosure spawns the pulling sub-translator a closure body is
// translated in. When the closure has a source-level name, the name is
// pre-bound to the function reference so recursive calls resolve.
func (t *Translator) prepareClosure(variable string, ref *ir.Symbol) *Translator {
	if ref == nil {
		base := variable
		if base == "" {
			base = "lambda"
		}
		ref = t.env.Gen(base)
	}
	p := t.sub(subOpts{pull: true, dest: ref})
	if variable != "" {
		p.scope.Bind(variable, ref)
	}
	return p
}

// constructClosure finishes closure conversion for a translated body. The
// free variables pulled by p become leading parameters of the Lambda; the
// corresponding capture values are resolved in the parent, which records
// them as free there in turn, propagating captures outward. A closure
// with no captures collapses to the bare function reference.
func (t *Translator) constructClosure(p *Translator, args []*ir.Symbol, body ir.Node, loc *ir.Location) (ir.Node, error) {
	closValues := make([]ir.Node, len(p.freeNames))
	params := make([]*ir.Symbol, 0, len(p.freeNames)+len(args))
	for i, name := range p.freeNames {
		closValues[i] = t.visitVariable(name, loc)
		params = append(params, p.freeSyms[name])
	}
	params = append(params, args...)

	ref := p.registerLambda(p.dest, params, body, loc)
	if len(closValues) == 0 {
		return ref, nil
	}
	return &ir.Closure{Fn: ref, Captures: closValues, Location: loc}, nil
}

// makeClosure translates a parameterized body into a Lambda definition
// plus the node that references it at the construction site.
func (t *Translator) makeClosure(params []*grammar.Param, body bodyFunc, loc *ir.Location, variable string, ref *ir.Symbol) (ir.Node, error) {
	p := t.prepareClosure(variable, ref)
	syms := make([]*ir.Symbol, len(params))
	for i, param := range params {
		if param.Variadic {
			return nil, errorf(p.loc(param.Pos), "Varargs are not allowed.")
		}
		if param.Default != nil {
			return nil, errorf(p.loc(param.Pos), "Default arguments are not allowed.")
		}
		syms[i] = p.newVariable(param.Name, p.loc(param.Pos))
	}
	bodyNode, err := body(p)
	if err != nil {
		return nil, err
	}
	return t.constructClosure(p, syms, bodyNode, loc)
}
