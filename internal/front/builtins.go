package front

import (
	"mica/internal/ir"
)

// Builtins are fixed-identity functions recognized by translation rules
// and implemented outside this core. Their tokens are stable strings, so
// two translators always agree on a builtin's identity.
func builtin(name string) *ir.Symbol {
	return &ir.Symbol{
		Label:     name,
		Namespace: ir.NamespaceBuiltin,
		Token:     "builtin:" + name,
	}
}

var (
	builtinAdd      = builtin("add")
	builtinSub      = builtin("sub")
	builtinMul      = builtin("mul")
	builtinDiv      = builtin("div")
	builtinMod      = builtin("mod")
	builtinPow      = builtin("pow")
	builtinLt       = builtin("lt")
	builtinGt       = builtin("gt")
	builtinLe       = builtin("le")
	builtinGe       = builtin("ge")
	builtinEq       = builtin("eq")
	builtinNe       = builtin("ne")
	builtinAnd      = builtin("and")
	builtinOr       = builtin("or")
	builtinNeg      = builtin("neg")
	builtinNot      = builtin("not")
	builtinIndex    = builtin("index")
	builtinSetslice = builtin("setslice")
	builtinGetattr  = builtin("getattr")
	builtinSlice    = builtin("slice")
	builtinSwitch   = builtin("switch")
	builtinIdentity = builtin("identity")
)

// BuiltinNames lists every builtin the translator can emit, in a stable
// order usable for completion.
func BuiltinNames() []string {
	return []string{
		"add", "sub", "mul", "div", "mod", "pow",
		"lt", "gt", "le", "ge", "eq", "ne",
		"and", "or", "neg", "not",
		"index", "setslice", "getattr", "slice",
		"switch", "identity",
	}
}

// operators maps host operator spellings to builtin symbols.
var operators = map[string]*ir.Symbol{
	"+":  builtinAdd,
	"-":  builtinSub,
	"*":  builtinMul,
	"/":  builtinDiv,
	"%":  builtinMod,
	"**": builtinPow,
	"<":  builtinLt,
	">":  builtinGt,
	"<=": builtinLe,
	">=": builtinGe,
	"==": builtinEq,
	"!=": builtinNe,
}

// augOperators maps augmented-assignment spellings to the underlying
// binary operator.
var augOperators = map[string]*ir.Symbol{
	"+=": builtinAdd,
	"-=": builtinSub,
	"*=": builtinMul,
	"/=": builtinDiv,
	"%=": builtinMod,
}
