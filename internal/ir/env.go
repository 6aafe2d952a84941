package ir

// Definitions is the append interface translators write lambdas through.
// A committing translator holds the shared *Env; a dry-run translator
// holds Discard, so a dry pass can never touch the shared table.
type Definitions interface {
	Define(ref *Symbol, fn *Lambda)
}

// Discard is the no-op definition sink used by dry-run translators.
type Discard struct{}

func (Discard) Define(*Symbol, *Lambda) {}

// Env is the global definition table of one compilation unit: an
// append-only map from symbol to Lambda with stable insertion order.
// It also owns the generator used for global function references.
type Env struct {
	Namespace string
	Source    string

	gen      *GenSym
	order    []*Symbol
	bindings map[string]*Lambda
}

func NewEnv(namespace, source string) *Env {
	return &Env{
		Namespace: namespace,
		Source:    source,
		gen:       NewGenSym(),
		bindings:  make(map[string]*Lambda),
	}
}

// Gen issues a fresh symbol in the env's namespace, used as the unique
// global reference of a function definition.
func (e *Env) Gen(base string) *Symbol {
	s := e.gen.Sym(base)
	s.Namespace = e.Namespace
	return s
}

// GenDerived issues a fresh symbol tagged after an existing one, used for
// synthetic branch and loop functions ("f:then", "f:loop", ...).
func (e *Env) GenDerived(parent *Symbol, tag string) *Symbol {
	s := e.gen.Derive(parent, tag)
	s.Namespace = e.Namespace
	return s
}

func (e *Env) Define(ref *Symbol, fn *Lambda) {
	if _, ok := e.bindings[ref.Token]; !ok {
		e.order = append(e.order, ref)
	}
	e.bindings[ref.Token] = fn
}

func (e *Env) Resolve(ref *Symbol) (*Lambda, bool) {
	fn, ok := e.bindings[ref.Token]
	return fn, ok
}

func (e *Env) Len() int { return len(e.bindings) }

// Symbols returns the defined references in insertion order.
func (e *Env) Symbols() []*Symbol {
	out := make([]*Symbol, len(e.order))
	copy(out, e.order)
	return out
}
