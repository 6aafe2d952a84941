package front

import (
	"mica/internal/ir"
)

// Tracker maps source-level names to IR symbols along a chain of lexical
// frames. A child frame holds a plain reference to its parent and must not
// outlive it; trackers are created and dropped strictly inside one
// translation call, so the chain never dangles.
type Tracker struct {
	parent   *Tracker
	bindings map[string]*ir.Symbol
}

func NewTracker(parent *Tracker) *Tracker {
	return &Tracker{
		parent:   parent,
		bindings: make(map[string]*ir.Symbol),
	}
}

// Bind inserts into the innermost frame only.
func (t *Tracker) Bind(name string, sym *ir.Symbol) {
	t.bindings[name] = sym
}

// Lookup walks the chain. free is true iff the name resolved above the
// innermost frame. A name absent everywhere is an UndeclaredVariableError;
// most read contexts catch it and fall back to a global reference, strict
// contexts propagate it.
func (t *Tracker) Lookup(name string) (free bool, sym *ir.Symbol, err error) {
	if s, ok := t.bindings[name]; ok {
		return false, s, nil
	}
	if t.parent == nil {
		return false, nil, undeclared(name, nil)
	}
	_, s, err := t.parent.Lookup(name)
	if err != nil {
		return false, nil, err
	}
	return true, s, nil
}

// Get resolves a name strictly, free or not.
func (t *Tracker) Get(name string) (*ir.Symbol, error) {
	_, sym, err := t.Lookup(name)
	return sym, err
}
