package ir

import (
	"fmt"

	"github.com/google/uuid"
)

// GenSym issues globally unique symbols. Uniqueness comes from a fresh
// UUID token per symbol; the per-base counters only keep printed labels
// readable ("x", "x#2", "x#3").
type GenSym struct {
	counts map[string]int
}

func NewGenSym() *GenSym {
	return &GenSym{counts: make(map[string]int)}
}

// Sym returns a fresh symbol for base. Repeated calls with the same base
// return distinct symbols with versioned labels.
func (g *GenSym) Sym(base string) *Symbol {
	g.counts[base]++
	label := base
	if n := g.counts[base]; n > 1 {
		label = fmt.Sprintf("%s#%d", base, n)
	}
	return &Symbol{
		Label:     label,
		Namespace: NamespaceLocal,
		Token:     uuid.NewString(),
	}
}

// Derive returns a fresh symbol whose label extends parent's with a
// discriminator tag, used for synthetic branch and loop functions.
func (g *GenSym) Derive(parent *Symbol, tag string) *Symbol {
	return g.Sym(parent.Label + ":" + tag)
}
