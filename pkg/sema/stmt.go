package sema

import "github.com/gaarutyunov/play/pkg/ast"

// stmt dispatches on the concrete ast.Stmt variant with an explicit type
// switch (spec §9: no visitor-by-name lookup) over the closed set pkg/ast
// defines.
func (a *Analyzer) stmt(s ast.Stmt, ctx Context) error {
	switch n := s.(type) {
	case *ast.VarDecl:
		return a.varDecl(n, ctx)
	case *ast.Block:
		return a.block(n, ctx)
	case *ast.Assign:
		return a.assign(n, ctx)
	case *ast.If:
		return a.ifStmt(n, ctx)
	case *ast.While:
		return a.whileStmt(n, ctx)
	case *ast.For:
		return a.forStmt(n, ctx)
	case *ast.Input:
		return a.input(n, ctx)
	case *ast.Output:
		return a.output(n, ctx)
	case *ast.Return:
		return a.returnStmt(n, ctx)
	case *ast.Break:
		return a.breakStmt(n, ctx)
	case *ast.FuncCallStmt:
		_, err := a.checkFuncCall(n.Pos, n.Name, n.Args, ctx)
		return err
	}
	return errorf(ast.Position{}, "sema: unhandled statement kind %T", s)
}

func (a *Analyzer) assign(n *ast.Assign, ctx Context) error {
	target, ok := a.syms.lookup(n.Target)
	if !ok {
		return errorf(n.Pos, "Variable %q not declared.", n.Target)
	}
	if target.kind != symVar {
		return errorf(n.Pos, "Cannot assign to %q which is a function", n.Target)
	}
	t, err := a.expr(n.Expr, ctx)
	if err != nil {
		return err
	}
	if !compatible(target.varType, t) {
		return errorf(n.Pos, "Type mismatch in assignment to %q: expected %s, got %s", n.Target, target.varType, t)
	}
	return nil
}

func (a *Analyzer) ifStmt(n *ast.If, ctx Context) error {
	t, err := a.expr(n.Cond, ctx)
	if err != nil {
		return err
	}
	if t != ast.Flag {
		return errorf(n.Pos, "If condition must be 'flag', got %s", t)
	}
	if err := a.block(n.Then, ctx); err != nil {
		return err
	}
	for _, e := range n.Elifs {
		ct, err := a.expr(e.Cond, ctx)
		if err != nil {
			return err
		}
		if ct != ast.Flag {
			return errorf(e.Pos, "Elif condition must be 'flag', got %s", ct)
		}
		if err := a.block(e.Block, ctx); err != nil {
			return err
		}
	}
	if n.Else != nil {
		if err := a.block(n.Else, ctx); err != nil {
			return err
		}
	}
	return nil
}

func (a *Analyzer) whileStmt(n *ast.While, ctx Context) error {
	t, err := a.expr(n.Cond, ctx)
	if err != nil {
		return err
	}
	if t != ast.Flag {
		return errorf(n.Pos, "While condition must be 'flag', got %s", t)
	}
	return a.block(n.Block, ctx.enterLoop())
}

func (a *Analyzer) forStmt(n *ast.For, ctx Context) error {
	if err := a.stmt(n.Init, ctx); err != nil {
		return err
	}

	condType, err := a.expr(n.Cond, ctx)
	if err != nil {
		return err
	}
	if condType != ast.Flag {
		return errorf(n.Pos, "For condition must be 'flag', got %s", condType)
	}

	if n.UpdateStmt != nil {
		if err := a.stmt(n.UpdateStmt, ctx); err != nil {
			return err
		}
	} else {
		if _, err := a.expr(n.UpdateExpr, ctx); err != nil {
			return err
		}
	}

	return a.block(n.Block, ctx.enterLoop())
}

func (a *Analyzer) input(n *ast.Input, ctx Context) error {
	if n.Prompt != nil {
		t, err := a.expr(n.Prompt, ctx)
		if err != nil {
			return err
		}
		if t != ast.Label {
			return errorf(n.Pos, "Input prompt must be 'label', got %s", t)
		}
	}
	for _, group := range n.TargetGroups {
		for _, name := range group {
			if _, ok := a.syms.lookup(name); !ok {
				return errorf(n.Pos, "Input target %q not declared", name)
			}
		}
	}
	return nil
}

func (a *Analyzer) output(n *ast.Output, ctx Context) error {
	t, err := a.expr(n.Expr, ctx.enterOutput())
	if err != nil {
		return err
	}
	if t != ast.Label {
		return errorf(n.Pos, "Output requires 'label', got %s", t)
	}
	return nil
}

func (a *Analyzer) returnStmt(n *ast.Return, ctx Context) error {
	if !ctx.inFunc {
		return errorf(n.Pos, "Return statement outside function")
	}
	if n.Expr == nil {
		if !ctx.funcIsVoid {
			return errorf(n.Pos, "Return value expected for non-void function (expected %s)", ctx.funcRet)
		}
		return nil
	}
	t, err := a.expr(n.Expr, ctx)
	if err != nil {
		return err
	}
	if !compatible(ctx.funcRet, t) {
		expected := string(ctx.funcRet)
		if ctx.funcIsVoid {
			expected = "void"
		}
		return errorf(n.Pos, "Invalid return type: expected %s, got %s", expected, t)
	}
	return nil
}

func (a *Analyzer) breakStmt(n *ast.Break, ctx Context) error {
	if !ctx.inLoop() {
		return errorf(n.Pos, "Quit used outside loop")
	}
	return nil
}
