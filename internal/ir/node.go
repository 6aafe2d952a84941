package ir

// Node is implemented by every IR node. The IR is a closure-based
// expression tree: there is no looping primitive and no nested scope.
// Lambdas only ever live in an Env, referenced by their unique Symbol.
type Node interface {
	Loc() *Location
	String() string
}

const (
	NamespaceLocal   = "local"
	NamespaceGlobal  = "global"
	NamespaceBuiltin = "builtin"
)

// Symbol is a unique identifier. Equality is by uniqueness token; two
// symbols with the same label but different tokens are different variables
// (shadowing always mints a new one). Symbols without a token are
// by-name references into a namespace, typically unresolved globals.
type Symbol struct {
	Label     string
	Namespace string
	Token     string

	Location *Location
}

// Global returns a by-name reference into the global namespace. This is
// what an unresolved variable read becomes; later pipeline stages resolve
// it against the host environment.
func Global(name string) *Symbol {
	return &Symbol{Label: name, Namespace: NamespaceGlobal}
}

// Equal reports whether two symbols name the same variable.
func (s *Symbol) Equal(o *Symbol) bool {
	if o == nil {
		return false
	}
	if s.Token != "" || o.Token != "" {
		return s.Token == o.Token
	}
	return s.Label == o.Label && s.Namespace == o.Namespace
}

// At returns a copy of the symbol carrying a use-site location. The copy
// shares the uniqueness token, so it still names the same variable.
func (s *Symbol) At(loc *Location) *Symbol {
	if loc == nil {
		return s
	}
	c := *s
	c.Location = loc
	return &c
}

func (s *Symbol) Loc() *Location { return s.Location }

// Value wraps a primitive constant.
type Value struct {
	X any

	Location *Location
}

func (v *Value) Loc() *Location { return v.Location }

// Tuple is a fixed-order grouping of nodes.
type Tuple struct {
	Items []Node

	Location *Location
}

func (t *Tuple) Loc() *Location { return t.Location }

// Apply applies a function-valued node to arguments. CannotFail marks
// internally generated tuple-index operations whose bounds are proved at
// translation time; downstream stages may elide the runtime check.
type Apply struct {
	Fn         Node
	Args       []Node
	CannotFail bool

	Location *Location
}

func NewApply(fn Node, args ...Node) *Apply {
	return &Apply{Fn: fn, Args: args}
}

func (a *Apply) Loc() *Location { return a.Location }

// Binding pairs a symbol with the node it is bound to.
type Binding struct {
	Sym   *Symbol
	Value Node
}

// Let binds a group of symbols and evaluates Body with them in scope.
// Bindings are evaluated in order and never forward-reference each other.
type Let struct {
	Bindings []Binding
	Body     Node

	Location *Location
}

func (l *Let) Loc() *Location { return l.Location }

// Begin evaluates statements in order for effect; the last supplies the
// value.
type Begin struct {
	Stmts []Node

	Location *Location
}

func (b *Begin) Loc() *Location { return b.Location }

// Lambda is a top-level function definition. Params lists capture
// parameters first, then the formals. Lambdas are never nested in the
// tree; Closure references them through Ref.
type Lambda struct {
	Ref    *Symbol
	Params []*Symbol
	Body   Node
	Env    *Env
	Gen    *GenSym

	Location *Location
}

func (l *Lambda) Loc() *Location { return l.Location }

// Closure pairs a function reference with the capture values supplying its
// leading parameters.
type Closure struct {
	Fn       Node
	Captures []Node

	Location *Location
}

func (c *Closure) Loc() *Location { return c.Location }
