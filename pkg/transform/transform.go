// Package transform lowers the participle-produced concrete syntax tree
// (pkg/cst) into the closed AST (pkg/ast), grounded on the reference
// implementation's PlayTransformer (original_source/src/play_lang/frontend/transformer.py).
// Every syntactic flattening the grammar needed for an unambiguous parse —
// declaration chains, assignment groups, elif lists, for-loop init/update —
// is undone here so pkg/sema only ever sees the fixed node kinds in pkg/ast.
package transform

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gaarutyunov/play/pkg/ast"
	"github.com/gaarutyunov/play/pkg/cst"
	"github.com/gaarutyunov/play/pkg/token"
)

func pos(p lexer.Position) token.Position {
	return token.Position{Line: p.Line, Column: p.Column}
}

// Program lowers a full parsed source file.
func Program(p *cst.Program) (*ast.Program, error) {
	out := &ast.Program{Pos: pos(p.Pos)}

	for _, d := range p.GlobalDecls {
		vd, err := VarDecl(d)
		if err != nil {
			return nil, err
		}
		out.GlobalDecls = append(out.GlobalDecls, vd)
	}

	for _, f := range p.Functions {
		fn, err := funcDef(f)
		if err != nil {
			return nil, err
		}
		out.Functions = append(out.Functions, fn)
	}

	block, err := Block(p.MainBlock)
	if err != nil {
		return nil, err
	}
	out.MainBlock = block

	return out, nil
}

func funcDef(f *cst.FuncDef) (*ast.Fun, error) {
	fn := &ast.Fun{Pos: pos(f.Pos), Name: f.Name}

	for _, p := range f.Params {
		fn.Params = append(fn.Params, &ast.Param{Pos: pos(p.Pos), Type: ast.TypeTag(p.Type), Name: p.Name})
	}

	if f.RetType == "void" {
		fn.IsVoid = true
	} else {
		fn.RetType = ast.TypeTag(f.RetType)
	}

	body, err := Block(f.Body)
	if err != nil {
		return nil, err
	}
	fn.Body = body

	return fn, nil
}

// Block lowers a `{ stmt* }` sequence, flattening each cst.Stmt into zero or
// more ast.Stmt — a single cst statement can expand into several (an
// assignment chain produces one Assign per target name in its last group).
func Block(b *cst.Block) (*ast.Block, error) {
	out := &ast.Block{Pos: pos(b.Pos)}
	for _, s := range b.Stmts {
		stmts, err := stmt(s)
		if err != nil {
			return nil, err
		}
		out.Stmts = append(out.Stmts, stmts...)
	}
	return out, nil
}

func stmt(s *cst.Stmt) ([]ast.Stmt, error) {
	switch {
	case s.VarDecl != nil:
		vd, err := VarDecl(s.VarDecl)
		if err != nil {
			return nil, err
		}
		return []ast.Stmt{vd}, nil

	case s.If != nil:
		n, err := ifStmt(s.If)
		if err != nil {
			return nil, err
		}
		return []ast.Stmt{n}, nil

	case s.While != nil:
		n, err := whileStmt(s.While)
		if err != nil {
			return nil, err
		}
		return []ast.Stmt{n}, nil

	case s.For != nil:
		n, err := forStmt(s.For)
		if err != nil {
			return nil, err
		}
		return []ast.Stmt{n}, nil

	case s.Output != nil:
		e, err := Expr(s.Output.Expr)
		if err != nil {
			return nil, err
		}
		return []ast.Stmt{&ast.Output{Pos: pos(s.Output.Pos), Expr: e}}, nil

	case s.Return != nil:
		n, err := returnStmt(s.Return)
		if err != nil {
			return nil, err
		}
		return []ast.Stmt{n}, nil

	case s.Break != nil:
		return []ast.Stmt{&ast.Break{Pos: pos(s.Break.Pos)}}, nil

	case s.FuncCall != nil:
		args, err := exprList(s.FuncCall.Args)
		if err != nil {
			return nil, err
		}
		return []ast.Stmt{&ast.FuncCallStmt{Pos: pos(s.FuncCall.Pos), Name: s.FuncCall.Name, Args: args}}, nil

	case s.Assign != nil:
		return assignOrInput(s.Assign)
	}

	return nil, fmt.Errorf("transform: statement at %s has no recognized production", pos(s.Pos))
}

func ifStmt(i *cst.IfStmt) (*ast.If, error) {
	cond, err := Expr(i.Cond)
	if err != nil {
		return nil, err
	}
	then, err := Block(i.Then)
	if err != nil {
		return nil, err
	}

	out := &ast.If{Pos: pos(i.Pos), Cond: cond, Then: then}

	for _, e := range i.Elifs {
		ec, err := Expr(e.Cond)
		if err != nil {
			return nil, err
		}
		eb, err := Block(e.Block)
		if err != nil {
			return nil, err
		}
		out.Elifs = append(out.Elifs, &ast.Elif{Pos: pos(e.Pos), Cond: ec, Block: eb})
	}

	if i.Else != nil {
		elseBlock, err := Block(i.Else)
		if err != nil {
			return nil, err
		}
		out.Else = elseBlock
	}

	return out, nil
}

func whileStmt(w *cst.WhileStmt) (*ast.While, error) {
	cond, err := Expr(w.Cond)
	if err != nil {
		return nil, err
	}
	block, err := Block(w.Block)
	if err != nil {
		return nil, err
	}
	return &ast.While{Pos: pos(w.Pos), Cond: cond, Block: block}, nil
}

func forStmt(f *cst.ForStmt) (*ast.For, error) {
	initStmts, err := plainAssign(f.Init)
	if err != nil {
		return nil, err
	}
	cond, err := Expr(f.Cond)
	if err != nil {
		return nil, err
	}

	out := &ast.For{Pos: pos(f.Pos), Init: wrapStmts(initStmts), Cond: cond}

	if f.Update.Assign != nil {
		updStmts, err := plainAssign(f.Update.Assign)
		if err != nil {
			return nil, err
		}
		out.UpdateStmt = wrapStmts(updStmts)
	} else {
		updExpr, err := Expr(f.Update.Expr)
		if err != nil {
			return nil, err
		}
		out.UpdateExpr = updExpr
	}

	block, err := Block(f.Block)
	if err != nil {
		return nil, err
	}
	out.Block = block

	return out, nil
}

// wrapStmts collapses a multi-target assignment group into a single Stmt so
// it can occupy For's single-slot Init/UpdateStmt field (spec §4.2(f)).
func wrapStmts(stmts []ast.Stmt) ast.Stmt {
	if len(stmts) == 1 {
		return stmts[0]
	}
	return &ast.Block{Stmts: stmts}
}

func returnStmt(r *cst.ReturnStmt) (*ast.Return, error) {
	if r.Void {
		return &ast.Return{Pos: pos(r.Pos)}, nil
	}
	e, err := Expr(r.Expr)
	if err != nil {
		return nil, err
	}
	return &ast.Return{Pos: pos(r.Pos), Expr: e}, nil
}

func lvalueGroups(groups []*cst.LvalueGroup) [][]string {
	out := make([][]string, len(groups))
	for i, g := range groups {
		out[i] = g.Names
	}
	return out
}

// assignOrInput lowers the merged AssignStmt production. Only the last
// target group ever produces Assign nodes (spec §4.2(c)); an Input node
// claims every group instead, since all of them receive the grabbed value.
func assignOrInput(a *cst.AssignStmt) ([]ast.Stmt, error) {
	if a.Grab != nil {
		var prompt ast.Expr
		if a.Grab.Prompt != nil {
			p, err := Expr(a.Grab.Prompt)
			if err != nil {
				return nil, err
			}
			prompt = p
		}
		return []ast.Stmt{&ast.Input{
			Pos:          pos(a.Pos),
			TargetGroups: lvalueGroups(a.Targets),
			Prompt:       prompt,
		}}, nil
	}

	e, err := Expr(a.Expr)
	if err != nil {
		return nil, err
	}

	last := a.Targets[len(a.Targets)-1]
	stmts := make([]ast.Stmt, 0, len(last.Names))
	for _, name := range last.Names {
		stmts = append(stmts, &ast.Assign{Pos: pos(a.Pos), Target: name, Expr: e})
	}
	return stmts, nil
}

// plainAssign lowers the grab-less assignment shape for_stat uses in its
// init/update slots, applying the same only-last-group rule as assignOrInput.
func plainAssign(a *cst.PlainAssignStmt) ([]ast.Stmt, error) {
	e, err := Expr(a.Expr)
	if err != nil {
		return nil, err
	}
	last := a.Targets[len(a.Targets)-1]
	stmts := make([]ast.Stmt, 0, len(last.Names))
	for _, name := range last.Names {
		stmts = append(stmts, &ast.Assign{Pos: pos(a.Pos), Target: name, Expr: e})
	}
	return stmts, nil
}
