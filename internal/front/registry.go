package front

import (
	"fmt"

	"mica/internal/ir"
)

// Compiled is the sentinel a translated entry point is published as. It
// carries the translation result for downstream stages but refuses to be
// invoked directly; only a backend that resolves Entry against Env can
// run it.
type Compiled struct {
	Name  string
	Entry *ir.Symbol
	Env   *ir.Env
}

func (c *Compiled) Invoke(args ...any) (any, error) {
	return nil, fmt.Errorf("function %s is for internal use only", c.Name)
}

// Definitions returns every function reference the unit defined, in
// definition order.
func (c *Compiled) Definitions() []*ir.Symbol {
	return c.Env.Symbols()
}

func (c *Compiled) Namespace() string {
	return c.Env.Namespace
}

// Compile translates a source unit and wraps its entry point.
func Compile(source string, opts ...Option) (*Compiled, error) {
	unit, err := TranslateSource(source, opts...)
	if err != nil {
		return nil, err
	}
	return &Compiled{
		Name:  unit.Entry.Label,
		Entry: unit.Entry,
		Env:   unit.Env,
	}, nil
}
