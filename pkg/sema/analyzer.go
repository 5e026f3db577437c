// Package sema implements the Play semantic analyzer: scoping, typing, and
// contextual-use checks over the closed AST produced by pkg/transform.
// Grounded on the reference SemanticAnalyzer
// (original_source/src/play_lang/frontend/semantic_analysis.py), re-architected
// per spec §9: a type switch over ast.Stmt/ast.Expr replaces name-based
// visitor dispatch, an immutable Context replaces the ambient mutable
// in_output/in_loop/current_function_ret_type flags, and every check
// returns an error instead of raising an exception.
package sema

import "github.com/gaarutyunov/play/pkg/ast"

// Analyzer walks a Program once. A fresh Analyzer must be created per
// compilation unit; none of its state is reused (spec §5).
type Analyzer struct {
	syms *symbolTable
}

// New creates an Analyzer with a fresh global scope.
func New() *Analyzer {
	return &Analyzer{syms: newSymbolTable()}
}

// Analyze walks p in program order (spec §4.3 "Program-level ordering")
// and returns the first semantic error encountered, or nil.
func Analyze(p *ast.Program) error {
	return New().analyze(p)
}

func (a *Analyzer) analyze(p *ast.Program) error {
	for _, d := range p.GlobalDecls {
		if err := a.varDecl(d, Context{}); err != nil {
			return err
		}
	}

	for _, f := range p.Functions {
		if err := a.registerFunction(f); err != nil {
			return err
		}
	}

	for _, f := range p.Functions {
		if err := a.visitFun(f); err != nil {
			return err
		}
	}

	return a.block(p.MainBlock, Context{})
}

func (a *Analyzer) registerFunction(f *ast.Fun) error {
	if _, ok := a.syms.lookup(f.Name); ok {
		return errorf(f.Pos, "Function %q already defined.", f.Name)
	}
	params := make([]ast.TypeTag, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Type
	}
	sig := funcSig{Params: params, Ret: f.RetType, IsVoid: f.IsVoid}
	a.syms.define(f.Name, symbol{kind: symFunc, fn: sig})
	return nil
}

func (a *Analyzer) visitFun(f *ast.Fun) error {
	a.syms.enterScope()
	defer a.syms.exitScope()

	for _, p := range f.Params {
		if !a.syms.define(p.Name, symbol{kind: symVar, varType: p.Type}) {
			return errorf(p.Pos, "Symbol %q already defined in current scope.", p.Name)
		}
	}

	ctx := Context{}.enterFunc(f.RetType, f.IsVoid)
	return a.block(f.Body, ctx)
}

func (a *Analyzer) varDecl(d *ast.VarDecl, ctx Context) error {
	for _, item := range d.Items {
		if item.Init != nil {
			t, err := a.expr(item.Init, ctx)
			if err != nil {
				return err
			}
			if !compatible(d.Type, t) {
				return errorf(item.Pos, "Type mismatch in declaration of %q: expected %s, got %s", item.Name, d.Type, t)
			}
		}
		if !a.syms.define(item.Name, symbol{kind: symVar, varType: d.Type}) {
			return errorf(item.Pos, "Symbol %q already defined in current scope.", item.Name)
		}
	}
	return nil
}

// block visits a statement sequence in the current scope. No new scope is
// pushed here: control-flow Blocks (if/elif/else/while/for) share their
// enclosing scope (spec §4.3 "Scoping and symbol table").
func (a *Analyzer) block(b *ast.Block, ctx Context) error {
	for _, s := range b.Stmts {
		if err := a.stmt(s, ctx); err != nil {
			return err
		}
	}
	return nil
}
