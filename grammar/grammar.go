package grammar

import "github.com/alecthomas/participle/v2/lexer"

// The grammar below is the host AST consumed by the translator. Participle
// populates Pos on every node, which is all the translator needs to map
// nodes back to source locations.

type Program struct {
	Pos lexer.Position

	Functions []*FnDef `@@*`
}

type FnDef struct {
	Pos lexer.Position

	Decorators []*Decorator `@@*`
	Name       string       `"fn" @Ident`
	Params     []*Param     `"(" [ @@ { "," @@ } ] ")"`
	Body       *Block       `@@`
}

type Decorator struct {
	Pos lexer.Position

	Name string `"@" @Ident`
}

// Param carries default values and a variadic marker so the translator can
// reject them with precise messages instead of a generic parse failure.
type Param struct {
	Pos lexer.Position

	Variadic bool   `[ @Ellipsis ]`
	Name     string `@Ident`
	Default  *Expr  `[ "=" @@ ]`
}

type Block struct {
	Pos lexer.Position

	Stmts []*Stmt `"{" @@* "}"`
}

type Stmt struct {
	Pos lexer.Position

	Fn       *FnDef      `  @@`
	If       *IfStmt     `| @@`
	While    *WhileStmt  `| @@`
	For      *ForStmt    `| @@`
	Return   *ReturnStmt `| @@`
	Break    bool        `| @"break" ";"`
	Continue bool        `| @"continue" ";"`
	Simple   *SimpleStmt `| @@`
}

type IfStmt struct {
	Pos lexer.Position

	Cond *Expr  `"if" @@`
	Then *Block `@@`
	Else *Block `[ "else" @@ ]`
}

type WhileStmt struct {
	Pos lexer.Position

	Cond *Expr  `"while" @@`
	Body *Block `@@`
}

type ForStmt struct {
	Pos lexer.Position

	Var  string `"for" @Ident "in"`
	Iter *Expr  `@@`
	Body *Block `@@`
}

type ReturnStmt struct {
	Pos lexer.Position

	Keyword bool  `@"return"`
	Value   *Expr `[ @@ ] ";"`
}

// SimpleStmt covers expression statements and every assignment form. The
// left-hand side is parsed as a comma list of expressions; the translator
// decides which targets are legal.
type SimpleStmt struct {
	Pos lexer.Position

	Targets []*Expr `@@ { "," @@ }`
	Op      string  `[ @("=" | "+=" | "-=" | "*=" | "/=" | "%=")`
	Value   *Expr   `  @@ ] ";"`
}

// Expressions, one struct per precedence level.

type Expr struct {
	Pos lexer.Position

	Closure *ClosureExpr `  @@`
	Or      *OrExpr      `| @@`
}

type ClosureExpr struct {
	Pos lexer.Position

	Params []*Param `"|" [ @@ { "," @@ } ] "|"`
	Body   *Expr    `@@`
}

type OrExpr struct {
	Pos lexer.Position

	Left *AndExpr   `@@`
	Rest []*AndExpr `{ "or" @@ }`
}

type AndExpr struct {
	Pos lexer.Position

	Left *NotExpr   `@@`
	Rest []*NotExpr `{ "and" @@ }`
}

type NotExpr struct {
	Pos lexer.Position

	Not *NotExpr    `  "not" @@`
	Cmp *Comparison `| @@`
}

// Comparison keeps every chained operand so the translator can reject
// multi-operator chains rather than silently reassociating them.
type Comparison struct {
	Pos lexer.Position

	Left *Additive  `@@`
	Rest []*CmpTail `@@*`
}

type CmpTail struct {
	Pos lexer.Position

	Op    string    `@("==" | "!=" | "<=" | ">=" | "<" | ">")`
	Right *Additive `@@`
}

type Additive struct {
	Pos lexer.Position

	Left *Multiplicative `@@`
	Rest []*AddTail      `@@*`
}

type AddTail struct {
	Pos lexer.Position

	Op    string          `@("+" | "-")`
	Right *Multiplicative `@@`
}

type Multiplicative struct {
	Pos lexer.Position

	Left *Power     `@@`
	Rest []*MulTail `@@*`
}

type MulTail struct {
	Pos lexer.Position

	Op    string `@("*" | "/" | "%")`
	Right *Power `@@`
}

type Power struct {
	Pos lexer.Position

	Left  *Unary `@@`
	Right *Power `[ "**" @@ ]`
}

type Unary struct {
	Pos lexer.Position

	Op      string   `[ @"-" ]`
	Operand *Postfix `@@`
}

type Postfix struct {
	Pos lexer.Position

	Primary *Primary     `@@`
	Ops     []*PostfixOp `@@*`
}

type PostfixOp struct {
	Pos lexer.Position

	Call  *CallOp  `  @@`
	Attr  *AttrOp  `| @@`
	Index *IndexOp `| @@`
}

type CallOp struct {
	Pos lexer.Position

	Open bool   `@"("`
	Args []*Arg `[ @@ { "," @@ } ] ")"`
}

// Arg parses the keyword form so the translator can reject it by name.
type Arg struct {
	Pos lexer.Position

	Name  string `[ @Ident "=" ]`
	Value *Expr  `@@`
}

type AttrOp struct {
	Pos lexer.Position

	Name string `"." @Ident`
}

// IndexOp is a plain subscript when Slice is nil, a slice otherwise.
// Omitted slice bounds stay nil and the translator fills the defaults.
type IndexOp struct {
	Pos lexer.Position

	Open  bool       `@"["`
	Start *Expr      `[ @@ ]`
	Slice *SliceTail `[ @@ ] "]"`
}

type SliceTail struct {
	Pos lexer.Position

	Colon bool      `@":"`
	Stop  *Expr     `[ @@ ]`
	Step  *StepTail `[ @@ ]`
}

type StepTail struct {
	Pos lexer.Position

	Colon bool  `@":"`
	Step  *Expr `[ @@ ]`
}

type Primary struct {
	Pos lexer.Position

	Float *float64 `  @Float`
	Int   *int64   `| @Int`
	Str   *string  `| @String`
	True  bool     `| @"true"`
	False bool     `| @"false"`
	None  bool     `| @"none"`
	Ident *string  `| @Ident`
	Paren *Grouped `| @@`
}

// Grouped is either a parenthesized expression or a tuple literal. A single
// element with no trailing comma is a plain grouping; everything else,
// including "()" and "(x,)", is a tuple.
type Grouped struct {
	Pos lexer.Position

	Open     bool    `@"("`
	Items    []*Expr `[ @@ { "," @@ } ]`
	Trailing bool    `[ @"," ] ")"`
}
