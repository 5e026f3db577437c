package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/gaarutyunov/play/pkg/ast"
)

// astPrinter renders a Program as an indented tree. It is independent of
// pkg/sema's dispatch pattern but follows the same rule: a type switch over
// the closed ast.Stmt/ast.Expr sets, never a visitor interface.
type astPrinter struct {
	w      io.Writer
	indent int
	color  bool
}

func (p *astPrinter) line(format string, args ...any) {
	fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("  ", p.indent), fmt.Sprintf(format, args...))
}

func (p *astPrinter) keyword(s string) string {
	if !p.color {
		return s
	}
	return color.New(color.FgCyan, color.Bold).Sprint(s)
}

func (p *astPrinter) Program(prog *ast.Program) {
	p.line("%s", p.keyword("Program"))
	p.indent++
	for _, d := range prog.GlobalDecls {
		p.stmt(d)
	}
	for _, f := range prog.Functions {
		p.fun(f)
	}
	p.block(prog.MainBlock)
	p.indent--
}

func (p *astPrinter) fun(f *ast.Fun) {
	ret := string(f.RetType)
	if f.IsVoid {
		ret = "void"
	}
	p.line("%s %s(%d params) -> %s", p.keyword("Fun"), f.Name, len(f.Params), ret)
	p.indent++
	p.block(f.Body)
	p.indent--
}

func (p *astPrinter) block(b *ast.Block) {
	p.line("%s", p.keyword("Block"))
	p.indent++
	for _, s := range b.Stmts {
		p.stmt(s)
	}
	p.indent--
}

func (p *astPrinter) stmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.VarDecl:
		p.line("%s %s", p.keyword("VarDecl"), n.Type)
		p.indent++
		for _, item := range n.Items {
			p.line("%s", item.Name)
			if item.Init != nil {
				p.indent++
				p.expr(item.Init)
				p.indent--
			}
		}
		p.indent--
	case *ast.Assign:
		p.line("%s %s <--", p.keyword("Assign"), n.Target)
		p.indent++
		p.expr(n.Expr)
		p.indent--
	case *ast.If:
		p.line("%s", p.keyword("If"))
		p.indent++
		p.expr(n.Cond)
		p.block(n.Then)
		for _, e := range n.Elifs {
			p.line("%s", p.keyword("Elif"))
			p.indent++
			p.expr(e.Cond)
			p.block(e.Block)
			p.indent--
		}
		if n.Else != nil {
			p.line("%s", p.keyword("Else"))
			p.indent++
			p.block(n.Else)
			p.indent--
		}
		p.indent--
	case *ast.While:
		p.line("%s", p.keyword("While"))
		p.indent++
		p.expr(n.Cond)
		p.block(n.Block)
		p.indent--
	case *ast.For:
		p.line("%s", p.keyword("For"))
		p.indent++
		p.stmt(n.Init)
		p.expr(n.Cond)
		if n.UpdateStmt != nil {
			p.stmt(n.UpdateStmt)
		} else {
			p.expr(n.UpdateExpr)
		}
		p.block(n.Block)
		p.indent--
	case *ast.Input:
		p.line("%s groups=%v", p.keyword("Input"), n.TargetGroups)
		if n.Prompt != nil {
			p.indent++
			p.expr(n.Prompt)
			p.indent--
		}
	case *ast.Output:
		p.line("%s", p.keyword("Output"))
		p.indent++
		p.expr(n.Expr)
		p.indent--
	case *ast.Return:
		p.line("%s", p.keyword("Return"))
		if n.Expr != nil {
			p.indent++
			p.expr(n.Expr)
			p.indent--
		}
	case *ast.Break:
		p.line("%s", p.keyword("Break"))
	case *ast.FuncCallStmt:
		p.line("%s %s(%d args)", p.keyword("FuncCallStmt"), n.Name, len(n.Args))
	case *ast.Block:
		p.block(n)
	}
}

func (p *astPrinter) expr(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Literal:
		p.line("%s %v (%s)", p.keyword("Literal"), n.Value, n.Type)
	case *ast.VarAccess:
		p.line("%s %s", p.keyword("VarAccess"), n.Name)
	case *ast.BinOp:
		p.line("%s %s", p.keyword("BinOp"), n.Op)
		p.indent++
		p.expr(n.Left)
		p.expr(n.Right)
		p.indent--
	case *ast.UnaryOp:
		p.line("%s %s", p.keyword("UnaryOp"), n.Op)
		p.indent++
		p.expr(n.Expr)
		p.indent--
	case *ast.FunCallExpr:
		p.line("%s %s(%d args)", p.keyword("FunCallExpr"), n.Name, len(n.Args))
		p.indent++
		for _, a := range n.Args {
			p.expr(a)
		}
		p.indent--
	}
}
