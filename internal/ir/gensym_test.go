package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymVersionsLabels(t *testing.T) {
	gen := NewGenSym()

	a := gen.Sym("x")
	b := gen.Sym("x")
	c := gen.Sym("x")

	assert.Equal(t, "x", a.Label)
	assert.Equal(t, "x#2", b.Label)
	assert.Equal(t, "x#3", c.Label)
}

func TestSymTokensAreUnique(t *testing.T) {
	gen := NewGenSym()

	a := gen.Sym("x")
	b := gen.Sym("x")

	assert.NotEmpty(t, a.Token)
	assert.NotEqual(t, a.Token, b.Token)
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a))
}

func TestDeriveExtendsLabel(t *testing.T) {
	gen := NewGenSym()

	f := gen.Sym("f")
	then := gen.Derive(f, "then")
	again := gen.Derive(f, "then")

	assert.Equal(t, "f:then", then.Label)
	assert.Equal(t, "f:then#2", again.Label)
}

func TestIndependentGeneratorsDoNotCollide(t *testing.T) {
	a := NewGenSym().Sym("x")
	b := NewGenSym().Sym("x")

	assert.Equal(t, a.Label, b.Label)
	assert.NotEqual(t, a.Token, b.Token)
}

func TestAtKeepsIdentity(t *testing.T) {
	gen := NewGenSym()

	x := gen.Sym("x")
	located := x.At(&Location{Source: "f.mica", Line: 3, Column: 7})

	assert.True(t, x.Equal(located))
	assert.Nil(t, x.Location)
	assert.Equal(t, 3, located.Location.Line)
}
