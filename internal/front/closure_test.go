package front

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mica/internal/ir"
)

func TestClosureCapturesFreeVariable(t *testing.T) {
	unit := translateUnit(t, `
fn main(x) {
    f = |y| x + y;
    return f(3);
}
`)
	body := entryLambda(t, unit).Body
	assert.Equal(t, "(let ((f (closure lambda x))) (f 3))", ir.Print(body))

	// The captured parameter leads the inner lambda's parameter list.
	clos := body.(*ir.Let).Bindings[0].Value.(*ir.Closure)
	inner, ok := unit.Env.Resolve(clos.Fn.(*ir.Symbol))
	require.True(t, ok)
	require.Len(t, inner.Params, 2)
	assert.Equal(t, "x", inner.Params[0].Label)
	assert.Equal(t, "y", inner.Params[1].Label)
	assert.Equal(t, "(add x y)", ir.Print(inner.Body))

	// The capture value is the enclosing function's parameter.
	capture := clos.Captures[0].(*ir.Symbol)
	main := entryLambda(t, unit)
	assert.True(t, capture.Equal(main.Params[0]))
}

func TestZeroCaptureClosureCollapses(t *testing.T) {
	unit := translateUnit(t, `
fn main() {
    f = |y| y;
    return f(1);
}
`)
	body := entryLambda(t, unit).Body
	assert.Equal(t, "(let ((f lambda)) (f 1))", ir.Print(body))

	ref, ok := body.(*ir.Let).Bindings[0].Value.(*ir.Symbol)
	require.True(t, ok, "a closure without captures is a bare function reference")
	_, defined := unit.Env.Resolve(ref)
	assert.True(t, defined)
}

func TestShadowingParameterStopsCapture(t *testing.T) {
	body := entryLambda(t, translateUnit(t, `
fn main(x) {
    f = |x| x;
    return f(2);
}
`)).Body
	_, bare := body.(*ir.Let).Bindings[0].Value.(*ir.Symbol)
	assert.True(t, bare, "the parameter shadows the outer x, so nothing is captured")
}

func TestCapturePropagatesThroughNestedClosures(t *testing.T) {
	unit := translateUnit(t, `
fn main(x) {
    f = |a| |b| x;
    return f;
}
`)
	body := entryLambda(t, unit).Body
	assert.Equal(t, "(let ((f (closure lambda x))) f)", ir.Print(body))

	outer := body.(*ir.Let).Bindings[0].Value.(*ir.Closure)
	outerFn, ok := unit.Env.Resolve(outer.Fn.(*ir.Symbol))
	require.True(t, ok)

	// The intermediate closure re-captures its own pulled alias of x.
	innerClos, ok := outerFn.Body.(*ir.Closure)
	require.True(t, ok)
	innerCapture := innerClos.Captures[0].(*ir.Symbol)
	assert.True(t, innerCapture.Equal(outerFn.Params[0]))

	innerFn, ok := unit.Env.Resolve(innerClos.Fn.(*ir.Symbol))
	require.True(t, ok)
	assert.Equal(t, "x", ir.Print(innerFn.Body))
}

func TestNestedNamedFunctionBindsItself(t *testing.T) {
	unit := translateUnit(t, `
fn main() {
    fn f(n) {
        return f(n);
    }
    return f(1);
}
`)
	body := entryLambda(t, unit).Body
	assert.Equal(t, "(let ((f #:f)) (f 1))", ir.Print(body))

	ref := body.(*ir.Let).Bindings[0].Value.(*ir.Symbol)
	inner, ok := unit.Env.Resolve(ref)
	require.True(t, ok)

	// The recursive call goes straight to the function reference.
	recursive := inner.Body.(*ir.Apply).Fn.(*ir.Symbol)
	assert.True(t, recursive.Equal(ref))
}

func TestTopLevelFunctionHasNoCaptureParams(t *testing.T) {
	unit := translateUnit(t, `
fn main(a, b) {
    return a + b;
}
`)
	main := entryLambda(t, unit)
	require.Len(t, main.Params, 2)
	assert.Equal(t, "a", main.Params[0].Label)
	assert.Equal(t, "b", main.Params[1].Label)
}
