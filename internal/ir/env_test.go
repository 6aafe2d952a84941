package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defineStub(env *Env, label string) *Symbol {
	ref := env.Gen(label)
	env.Define(ref, &Lambda{Ref: ref, Body: &Value{X: nil}})
	return ref
}

func TestEnvKeepsInsertionOrder(t *testing.T) {
	env := NewEnv(NamespaceGlobal, "test.mica")

	a := defineStub(env, "a")
	b := defineStub(env, "b")
	c := defineStub(env, "c")

	syms := env.Symbols()
	require.Len(t, syms, 3)
	assert.True(t, syms[0].Equal(a))
	assert.True(t, syms[1].Equal(b))
	assert.True(t, syms[2].Equal(c))
}

func TestEnvResolve(t *testing.T) {
	env := NewEnv(NamespaceGlobal, "test.mica")

	ref := defineStub(env, "f")

	fn, ok := env.Resolve(ref)
	require.True(t, ok)
	assert.True(t, fn.Ref.Equal(ref))

	_, ok = env.Resolve(env.Gen("g"))
	assert.False(t, ok)
}

func TestEnvRedefineKeepsOrder(t *testing.T) {
	env := NewEnv(NamespaceGlobal, "test.mica")

	a := defineStub(env, "a")
	defineStub(env, "b")

	replacement := &Lambda{Ref: a, Body: &Value{X: int64(1)}}
	env.Define(a, replacement)

	assert.Equal(t, 2, env.Len())
	syms := env.Symbols()
	assert.True(t, syms[0].Equal(a))

	fn, ok := env.Resolve(a)
	require.True(t, ok)
	assert.Same(t, replacement, fn)
}

func TestGenUsesEnvNamespace(t *testing.T) {
	env := NewEnv(NamespaceGlobal, "test.mica")

	ref := env.Gen("main")
	assert.Equal(t, NamespaceGlobal, ref.Namespace)

	derived := env.GenDerived(ref, "loop")
	assert.Equal(t, "main:loop", derived.Label)
	assert.Equal(t, NamespaceGlobal, derived.Namespace)
}

func TestDiscardDefinesNothing(t *testing.T) {
	env := NewEnv(NamespaceGlobal, "test.mica")
	var defs Definitions = Discard{}

	ref := env.Gen("f")
	defs.Define(ref, &Lambda{Ref: ref})

	assert.Equal(t, 0, env.Len())
}
