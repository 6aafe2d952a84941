package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleFunction(t *testing.T) {
	source := `fn main() {
    return 1;
}`

	prog, err := ParseSource("test.mica", source)
	require.NoError(t, err)
	require.Len(t, prog.Functions, 1)

	fn := prog.Functions[0]
	assert.Equal(t, "main", fn.Name)
	assert.Empty(t, fn.Params)
	require.Len(t, fn.Body.Stmts, 1)

	ret := fn.Body.Stmts[0].Return
	require.NotNil(t, ret)
	require.NotNil(t, ret.Value)
}

func TestParseParamsAndDecorators(t *testing.T) {
	source := `@compile
fn main(a, b) {
    return a;
}`

	prog, err := ParseSource("test.mica", source)
	require.NoError(t, err)
	require.Len(t, prog.Functions, 1)

	fn := prog.Functions[0]
	require.Len(t, fn.Decorators, 1)
	assert.Equal(t, "compile", fn.Decorators[0].Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
	assert.Equal(t, "b", fn.Params[1].Name)
}

func TestParseVariadicAndDefaultParams(t *testing.T) {
	source := `fn main(...rest, x = 1) {
    return x;
}`

	prog, err := ParseSource("test.mica", source)
	require.NoError(t, err)

	params := prog.Functions[0].Params
	require.Len(t, params, 2)
	assert.True(t, params[0].Variadic)
	assert.Equal(t, "rest", params[0].Name)
	assert.NotNil(t, params[1].Default)
}

func TestParseClosureExpression(t *testing.T) {
	source := `fn main() {
    f = |x| x + 1;
    return f(2);
}`

	prog, err := ParseSource("test.mica", source)
	require.NoError(t, err)

	stmts := prog.Functions[0].Body.Stmts
	require.Len(t, stmts, 2)

	simple := stmts[0].Simple
	require.NotNil(t, simple)
	assert.Equal(t, "=", simple.Op)
	require.NotNil(t, simple.Value.Closure)
	require.Len(t, simple.Value.Closure.Params, 1)
	assert.Equal(t, "x", simple.Value.Closure.Params[0].Name)
}

func TestParseIfElseWhile(t *testing.T) {
	source := `fn main(n) {
    x = 0;
    if n < 10 {
        x = 1;
    } else {
        x = 2;
    }
    while x < n {
        x = x + 1;
    }
    return x;
}`

	prog, err := ParseSource("test.mica", source)
	require.NoError(t, err)

	stmts := prog.Functions[0].Body.Stmts
	require.Len(t, stmts, 4)
	require.NotNil(t, stmts[1].If)
	assert.NotNil(t, stmts[1].If.Else)
	require.NotNil(t, stmts[2].While)
}

func TestParseSliceForms(t *testing.T) {
	source := `fn main(a) {
    w = a[1];
    x = a[1:2];
    y = a[:2];
    z = a[::2];
    return z;
}`

	prog, err := ParseSource("test.mica", source)
	require.NoError(t, err)

	stmts := prog.Functions[0].Body.Stmts
	require.Len(t, stmts, 5)

	index := func(i int) *struct {
		hasStart, hasSlice, hasStep bool
	} {
		ops := stmts[i].Simple.Value.Or.Left.Left.Cmp.Left.Left.Left.Left.Operand.Ops
		require.Len(t, ops, 1)
		idx := ops[0].Index
		require.NotNil(t, idx)
		return &struct{ hasStart, hasSlice, hasStep bool }{
			idx.Start != nil,
			idx.Slice != nil,
			idx.Slice != nil && idx.Slice.Step != nil,
		}
	}

	assert.Equal(t, &struct{ hasStart, hasSlice, hasStep bool }{true, false, false}, index(0))
	assert.Equal(t, &struct{ hasStart, hasSlice, hasStep bool }{true, true, false}, index(1))
	assert.Equal(t, &struct{ hasStart, hasSlice, hasStep bool }{false, true, false}, index(2))
	assert.Equal(t, &struct{ hasStart, hasSlice, hasStep bool }{false, true, true}, index(3))
}

func TestParseTupleGrouping(t *testing.T) {
	source := `fn main() {
    a = (1);
    b = (1, 2);
    c = (1,);
    d = ();
    return d;
}`

	prog, err := ParseSource("test.mica", source)
	require.NoError(t, err)

	stmts := prog.Functions[0].Body.Stmts
	grouped := func(i int) (int, bool) {
		g := stmts[i].Simple.Value.Or.Left.Left.Cmp.Left.Left.Left.Left.Operand.Primary.Paren
		require.NotNil(t, g)
		return len(g.Items), g.Trailing
	}

	n, trailing := grouped(0)
	assert.Equal(t, 1, n)
	assert.False(t, trailing)

	n, _ = grouped(1)
	assert.Equal(t, 2, n)

	n, trailing = grouped(2)
	assert.Equal(t, 1, n)
	assert.True(t, trailing)

	n, _ = grouped(3)
	assert.Equal(t, 0, n)
}

func TestParseKeywordArgument(t *testing.T) {
	source := `fn main() {
    return f(x = 1);
}`

	prog, err := ParseSource("test.mica", source)
	require.NoError(t, err)

	ret := prog.Functions[0].Body.Stmts[0].Return
	ops := ret.Value.Or.Left.Left.Cmp.Left.Left.Left.Left.Operand.Ops
	require.Len(t, ops, 1)
	require.Len(t, ops[0].Call.Args, 1)
	assert.Equal(t, "x", ops[0].Call.Args[0].Name)
}

func TestParseErrorReported(t *testing.T) {
	source := `fn main( {
    return 1;
}`

	_, err := ParseSource("test.mica", source)
	assert.Error(t, err)
}

func TestParseComments(t *testing.T) {
	source := `// leading comment
fn main() {
    return 1; // trailing
}`

	prog, err := ParseSource("test.mica", source)
	require.NoError(t, err)
	require.Len(t, prog.Functions, 1)
}
