package front

import (
	"mica/grammar"
	"mica/internal/ir"
	"mica/internal/parser"
)

// Option configures a translation run.
type Option func(*options)

type options struct {
	source     string
	lineOffset int
	macros     map[string]Macro
	env        *ir.Env
	gen        *ir.GenSym
}

// SourceName sets the name diagnostics and locations are reported under.
func SourceName(name string) Option {
	return func(o *options) { o.source = name }
}

// LineOffset sets the source line the translated text starts on, for
// fragments extracted from a larger file. The default is 1.
func LineOffset(n int) Option {
	return func(o *options) { o.lineOffset = n }
}

// WithMacros installs call-site macros, consulted by literal callee name
// before ordinary resolution.
func WithMacros(macros map[string]Macro) Option {
	return func(o *options) { o.macros = macros }
}

// WithEnv makes translation append into an existing definition table
// instead of a fresh one.
func WithEnv(env *ir.Env) Option {
	return func(o *options) { o.env = env }
}

// WithGenSym shares one symbol generator across every function of the
// unit, keeping labels unique unit-wide.
func WithGenSym(gen *ir.GenSym) Option {
	return func(o *options) { o.gen = gen }
}

// Unit is the result of translating one source unit: the definition table
// holding every produced Lambda and the entry point, which is the last
// top-level function.
type Unit struct {
	Entry      *ir.Symbol
	Env        *ir.Env
	Decorators []string
}

// TranslateSource parses and translates a unit of source text. Top-level
// functions are translated in order against a shared definition table;
// references between them stay by-name global references. Only the entry
// function may carry decorators.
func TranslateSource(source string, opts ...Option) (*Unit, error) {
	o := options{source: "<string>", lineOffset: 1}
	for _, opt := range opts {
		opt(&o)
	}

	prog, err := parser.ParseSource(o.source, source)
	if err != nil {
		return nil, err
	}
	return translateProgram(prog, o)
}

// TranslateFile is TranslateSource for a file on disk.
func TranslateFile(path string, opts ...Option) (*Unit, error) {
	o := options{source: path, lineOffset: 1}
	for _, opt := range opts {
		opt(&o)
	}

	prog, err := parser.ParseFile(path)
	if err != nil {
		return nil, err
	}
	return translateProgram(prog, o)
}

func translateProgram(prog *grammar.Program, o options) (*Unit, error) {
	env := o.env
	if env == nil {
		env = ir.NewEnv(ir.NamespaceGlobal, o.source)
	}
	locator := &Locator{Source: o.source, LineOffset: o.lineOffset}

	if len(prog.Functions) == 0 {
		return nil, errorf(locator.Loc(prog.Pos), "Expected at least one function definition.")
	}

	unit := &Unit{Env: env}
	for i, fn := range prog.Functions {
		last := i == len(prog.Functions)-1
		if len(fn.Decorators) > 0 && !last {
			return nil, errorf(locator.Loc(fn.Decorators[0].Pos), "Functions should not have decorators.")
		}

		t := newTranslator(translatorConfig{
			locator:  locator,
			env:      env,
			gen:      o.gen,
			macros:   o.macros,
			topLevel: true,
		})
		node, err := t.translateFn(fn)
		if err != nil {
			return nil, err
		}
		ref, ok := node.(*ir.Symbol)
		if !ok {
			return nil, errorf(locator.Loc(fn.Pos), "A top-level function cannot capture variables.")
		}

		if last {
			unit.Entry = ref
			for _, d := range fn.Decorators {
				unit.Decorators = append(unit.Decorators, d.Name)
			}
		}
	}
	return unit, nil
}

// translateFn lowers one top-level function. The empty enclosing scope
// means sibling references resolve as by-name globals, never captures.
func (t *Translator) translateFn(fn *grammar.FnDef) (ir.Node, error) {
	loc := t.loc(fn.Pos)
	ref := t.env.Gen(fn.Name)
	return t.makeClosure(fn.Params, func(p *Translator) (ir.Node, error) {
		return p.buildBody(fn.Body)
	}, loc, fn.Name, ref)
}
