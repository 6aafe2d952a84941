package front

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mica/grammar"
	"mica/internal/ir"
	"mica/internal/parser"
)

func TestWhileLowersToRecursion(t *testing.T) {
	unit := translateUnit(t, `
fn main(n) {
    i = 0;
    while i < n {
        i = i + 1;
    }
    return i;
}
`)
	body := entryLambda(t, unit).Body
	assert.Equal(t,
		"(let ((i 0) (tmp (main:loop i n)) (i#2 (index tmp 0))) i#2)",
		ir.Print(body))

	syms := unit.Env.Symbols()
	require.Len(t, syms, 3)
	assert.Equal(t, "main:body", syms[0].Label)
	assert.Equal(t, "main:loop", syms[1].Label)
	assert.Equal(t, "main", syms[2].Label)

	// The test function selects between one more iteration and an
	// identity closure over the zero-iteration values.
	loopFn, _ := unit.Env.Resolve(syms[1])
	require.Len(t, loopFn.Params, 2)
	assert.Equal(t, "i", loopFn.Params[0].Label)
	assert.Equal(t, "n", loopFn.Params[1].Label)
	assert.Equal(t,
		"((switch (lt i n) (closure main:body i n) (closure identity (i))))",
		ir.Print(loopFn.Body))

	// The body function rebinds i and recurses into the test.
	bodyFn, _ := unit.Env.Resolve(syms[0])
	assert.Equal(t,
		"(let ((i#2 (add i 1))) (main:loop i#2 n))",
		ir.Print(bodyFn.Body))
}

func TestWhileDryRunLeavesNoDefinitions(t *testing.T) {
	unit := translateUnit(t, `
fn main(n) {
    i = 0;
    while i < n {
        f = |x| x + i;
        i = f(i);
    }
    return i;
}
`)
	// main, main:loop, main:body, and the single committed |x| lambda.
	// The discovery pass translated the closure too, but against a
	// discarding sink.
	assert.Equal(t, 4, unit.Env.Len())
}

func TestWhileWithoutAssignments(t *testing.T) {
	unit := translateUnit(t, `
fn main(c) {
    while c {
        c;
    }
    return c;
}
`)
	body := entryLambda(t, unit).Body
	assert.Equal(t, "(let ((tmp (main:loop c))) c)", ir.Print(body))

	loopFn, _ := unit.Env.Resolve(unit.Env.Symbols()[1])
	assert.Equal(t,
		"((switch c (closure main:body c) (closure identity ())))",
		ir.Print(loopFn.Body))
}

func TestWhileConditionOnlyVariableStaysLoopCarried(t *testing.T) {
	unit := translateUnit(t, `
fn main(c, n) {
    i = 0;
    while c {
        i = i + n;
    }
    return i;
}
`)
	loopFn, _ := unit.Env.Resolve(unit.Env.Symbols()[1])
	labels := make([]string, len(loopFn.Params))
	for j, p := range loopFn.Params {
		labels[j] = p.Label
	}
	// Free reads of the condition and body come first, then variables the
	// body assigns without reading.
	assert.Equal(t, []string{"c", "i", "n"}, labels)
}

func TestLoopDiscoveryIsRepeatable(t *testing.T) {
	prog, err := parser.ParseSource("test.mica", `
fn main(c, n) {
    i = 0;
    while c {
        i = i + n;
    }
    return i;
}
`)
	require.NoError(t, err)
	loop := prog.Functions[0].Body.Stmts[1].While
	require.NotNil(t, loop)

	env := ir.NewEnv(ir.NamespaceGlobal, "test.mica")
	tr := newTranslator(translatorConfig{
		locator: &Locator{Source: "test.mica", LineOffset: 1},
		env:     env,
	})
	loc := tr.loc(loop.Pos)
	tr.newVariable("c", loc)
	tr.newVariable("n", loc)
	tr.newVariable("i", loc)

	in1, out1, err := tr.exploreVars(loop)
	require.NoError(t, err)
	in2, out2, err := tr.exploreVars(loop)
	require.NoError(t, err)

	assert.Equal(t, in1, in2)
	assert.Equal(t, out1, out2)
	assert.Equal(t, []string{"c", "i", "n"}, in1)
	assert.Equal(t, []string{"i"}, out1)
	assert.Equal(t, 0, env.Len())
}

func TestReturnInsideWhileRejected(t *testing.T) {
	_, err := TranslateSource(`
fn main(c) {
    while c {
        return 1;
    }
    return 2;
}
`)
	assert.ErrorContains(t, err, "return is not allowed inside a while loop")
}

func TestReturnProhibitionMessageIsVerbatim(t *testing.T) {
	tr := newTranslator(translatorConfig{
		locator:     &Locator{Source: "test.mica", LineOffset: 1},
		env:         ir.NewEnv(ir.NamespaceGlobal, "test.mica"),
		returnError: "return is not allowed here (100% of the time)",
	})

	_, err := tr.returnStmt(&grammar.ReturnStmt{})
	assert.ErrorContains(t, err, "return is not allowed here (100% of the time)")
}
