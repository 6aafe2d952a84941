package front

import (
	"github.com/alecthomas/participle/v2/lexer"

	"mica/internal/diag"
	"mica/internal/ir"
)

// Macro receives pre-translated argument nodes and returns the node that
// replaces the whole call. Macros are looked up by the literal name of the
// call target before ordinary resolution, which is how opaque call-site
// transforms (e.g. differentiation) hook into translation.
type Macro func(args ...ir.Node) (ir.Node, error)

// Translator lowers one body of host statements into IR. It owns a scope
// frame chained to its parent's, a free-variable accumulator, the set of
// locally assigned names, and the has-returned flag. Sub-translators are
// spawned for every nested body (closures, branches, loops, dry runs).
type Translator struct {
	locator *Locator
	env     *ir.Env
	defs    ir.Definitions
	gen     *ir.GenSym
	macros  map[string]Macro

	// pullFreeVariables makes every free-variable read allocate a fresh
	// local alias recorded in freeVariables, which is what closure
	// conversion consumes.
	pullFreeVariables bool
	topLevel          bool
	returnError       string
	dest              *ir.Symbol

	scope *Tracker

	// freeVariables maps names to symbols in first-encounter order.
	freeNames []string
	freeSyms  map[string]*ir.Symbol

	// localAssignments is an ordered set of names this body assigns.
	assignedNames []string
	assignedSet   map[string]bool

	returns bool
}

type translatorConfig struct {
	locator     *Locator
	env         *ir.Env
	defs        ir.Definitions
	gen         *ir.GenSym
	macros      map[string]Macro
	pull        bool
	topLevel    bool
	returnError string
	dest        *ir.Symbol
	parentScope *Tracker
}

func newTranslator(cfg translatorConfig) *Translator {
	gen := cfg.gen
	if gen == nil {
		gen = ir.NewGenSym()
	}
	dest := cfg.dest
	if dest == nil {
		dest = gen.Sym("lambda")
	}
	defs := cfg.defs
	if defs == nil {
		defs = cfg.env
	}
	return &Translator{
		locator:           cfg.locator,
		env:               cfg.env,
		defs:              defs,
		gen:               gen,
		macros:            cfg.macros,
		pullFreeVariables: cfg.pull,
		topLevel:          cfg.topLevel,
		returnError:       cfg.returnError,
		dest:              dest,
		scope:             NewTracker(cfg.parentScope),
		freeSyms:          make(map[string]*ir.Symbol),
		assignedSet:       make(map[string]bool),
	}
}

type subOpts struct {
	pull        bool
	dest        *ir.Symbol
	returnError string
	env         *ir.Env
	defs        ir.Definitions
}

// sub derives a child translator. Variables bound here are free variables
// there. Everything not overridden is inherited, except the generator and
// the per-body state, which are always fresh.
func (t *Translator) sub(opts subOpts) *Translator {
	env := opts.env
	if env == nil {
		env = t.env
	}
	defs := opts.defs
	if defs == nil {
		defs = t.defs
	}
	returnError := opts.returnError
	if returnError == "" {
		returnError = t.returnError
	}
	return newTranslator(translatorConfig{
		locator:     t.locator,
		env:         env,
		defs:        defs,
		macros:      t.macros,
		pull:        opts.pull,
		returnError: returnError,
		dest:        opts.dest,
		parentScope: t.scope,
	})
}

func (t *Translator) loc(pos lexer.Position) *ir.Location {
	return t.locator.Loc(pos)
}

func errorf(loc *ir.Location, format string, args ...any) error {
	return diag.Errorf(loc, format, args...)
}

func undeclared(name string, loc *ir.Location) error {
	return &diag.UndeclaredVariableError{Name: name, Loc: loc}
}

// recordFree notes a free variable at first encounter, keeping order.
func (t *Translator) recordFree(name string, sym *ir.Symbol) {
	if _, ok := t.freeSyms[name]; !ok {
		t.freeNames = append(t.freeNames, name)
	}
	t.freeSyms[name] = sym
}

// newVariable mints a fresh symbol for name, distinct from any previous
// symbol with the same name, and binds it in the innermost scope.
func (t *Translator) newVariable(name string, loc *ir.Location) *ir.Symbol {
	sym := t.gen.Sym(name).At(loc)
	t.scope.Bind(name, sym)
	return sym
}

// assign is the transient node statement translation produces for a
// single binding; bodyWrapper folds runs of them into Let groups.
type assign struct {
	sym      *ir.Symbol
	value    ir.Node
	location *ir.Location
}

func (a *assign) Loc() *ir.Location { return a.location }
func (a *assign) String() string {
	return "(set " + a.sym.Label + " " + a.value.String() + ")"
}

// makeAssign mints a new symbol for name (assignment never mutates an old
// binding) and records the name in the local-assignment set.
func (t *Translator) makeAssign(name string, value ir.Node, loc *ir.Location) *assign {
	sym := t.newVariable(name, loc)
	if !t.assignedSet[name] {
		t.assignedSet[name] = true
		t.assignedNames = append(t.assignedNames, name)
	}
	return &assign{sym: sym, value: value, location: loc}
}

// multiAssign binds expr to a temporary known to hold a tuple of
// len(names) components, then unpacks each component into a fresh
// variable. The index applications are tagged CannotFail because both
// producers of the tuple are known to emit this exact shape.
func (t *Translator) multiAssign(names []string, expr ir.Node) ir.Node {
	tmp := t.gen.Sym("tmp")
	stmts := []ir.Node{&assign{sym: tmp, value: expr}}
	for i, name := range names {
		idx := &ir.Apply{
			Fn:         builtinIndex,
			Args:       []ir.Node{tmp, &ir.Value{X: int64(i)}},
			CannotFail: true,
		}
		stmts = append(stmts, t.makeAssign(name, idx, nil))
	}
	return &ir.Begin{Stmts: stmts}
}

// visitVariable resolves a name read. Free variables are recorded; in
// pulling mode they additionally get a fresh local alias that shadows the
// outer binding for the rest of this body. A name not found anywhere in
// the chain becomes a by-name global reference, not an error.
func (t *Translator) visitVariable(name string, loc *ir.Location) ir.Node {
	free, sym, err := t.scope.Lookup(name)
	if err != nil {
		return ir.Global(name).At(loc)
	}
	if free {
		if t.pullFreeVariables {
			sym = t.newVariable(name, loc)
		}
		sym = sym.At(loc)
		t.recordFree(name, sym)
	}
	return sym.At(loc)
}

// registerLambda creates a Lambda and associates it to ref through the
// translator's definition sink; a discarding sink makes this a no-op on
// the shared table. Returns ref.
func (t *Translator) registerLambda(ref *ir.Symbol, params []*ir.Symbol, body ir.Node, loc *ir.Location) *ir.Symbol {
	fn := &ir.Lambda{
		Ref:      ref,
		Params:   params,
		Body:     body,
		Env:      t.env,
		Gen:      t.gen,
		Location: loc,
	}
	t.defs.Define(ref, fn)
	return ref.At(loc)
}
