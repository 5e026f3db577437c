package sema

import "github.com/gaarutyunov/play/pkg/ast"

// expr derives a type for e bottom-up, dispatching with an explicit type
// switch (spec §9) rather than a visitor.
func (a *Analyzer) expr(e ast.Expr, ctx Context) (ast.TypeTag, error) {
	switch n := e.(type) {
	case *ast.Literal:
		return n.Type, nil
	case *ast.VarAccess:
		return a.varAccess(n)
	case *ast.BinOp:
		return a.binOp(n, ctx)
	case *ast.UnaryOp:
		return a.unaryOp(n, ctx)
	case *ast.FunCallExpr:
		return a.checkFuncCall(n.Pos, n.Name, n.Args, ctx)
	}
	return "", errorf(ast.Position{}, "sema: unhandled expression kind %T", e)
}

func (a *Analyzer) varAccess(n *ast.VarAccess) (ast.TypeTag, error) {
	sym, ok := a.syms.lookup(n.Name)
	if !ok {
		return "", errorf(n.Pos, "Variable %q not defined", n.Name)
	}
	if sym.kind != symVar {
		return "", errorf(n.Pos, "%q is not a variable", n.Name)
	}
	return sym.varType, nil
}

func (a *Analyzer) binOp(n *ast.BinOp, ctx Context) (ast.TypeTag, error) {
	left, err := a.expr(n.Left, ctx)
	if err != nil {
		return "", err
	}
	right, err := a.expr(n.Right, ctx)
	if err != nil {
		return "", err
	}

	switch n.Op {
	case ast.And, ast.Or:
		if left == ast.Flag && right == ast.Flag {
			return ast.Flag, nil
		}
		return "", errorf(n.Pos, "Logical op %s requires flags, got %s, %s", n.Op, left, right)

	case ast.Eq, ast.Neq, ast.Lt, ast.Leq, ast.Gt, ast.Geq:
		if compatible(left, right) || compatible(right, left) {
			if left.IsNumeric() && right.IsNumeric() {
				return ast.Flag, nil
			}
			if left == right {
				return ast.Flag, nil
			}
		}
		return "", errorf(n.Pos, "Comparison %s types incompatible: %s, %s", n.Op, left, right)

	case ast.Add:
		if left == ast.Label || right == ast.Label {
			return ast.Label, nil
		}
		if left.IsNumeric() && right.IsNumeric() {
			return promote(left, right), nil
		}
		return "", errorf(n.Pos, "Operator + incompatible types: %s, %s", left, right)

	case ast.Sub, ast.Mul, ast.Div, ast.Mod:
		if left.IsNumeric() && right.IsNumeric() {
			return promote(left, right), nil
		}
		return "", errorf(n.Pos, "Operator %s requires numeric, got %s, %s", n.Op, left, right)
	}

	return "", errorf(n.Pos, "sema: unhandled binary operator %s", n.Op)
}

func promote(left, right ast.TypeTag) ast.TypeTag {
	if left == ast.Rate || right == ast.Rate {
		return ast.Rate
	}
	return ast.Rank
}

func (a *Analyzer) unaryOp(n *ast.UnaryOp, ctx Context) (ast.TypeTag, error) {
	t, err := a.expr(n.Expr, ctx)
	if err != nil {
		return "", err
	}

	switch n.Op {
	case ast.Not:
		if t == ast.Flag {
			return ast.Flag, nil
		}
		return "", errorf(n.Pos, "Not (!) requires flag, got %s", t)

	case ast.Neg, ast.Pos:
		if t.IsNumeric() {
			return t, nil
		}
		return "", errorf(n.Pos, "Unary %s requires numeric, got %s", n.Op, t)

	case ast.OutDeref:
		if !ctx.inOutput {
			return "", errorf(n.Pos, "Operator '-->' can only be used in 'drop' statements")
		}
		return t, nil
	}

	return "", errorf(n.Pos, "sema: unhandled unary operator %s", n.Op)
}

func (a *Analyzer) checkFuncCall(pos ast.Position, name string, args []ast.Expr, ctx Context) (ast.TypeTag, error) {
	sym, ok := a.syms.lookup(name)
	if !ok {
		return "", errorf(pos, "Function %q not defined", name)
	}
	if sym.kind != symFunc {
		return "", errorf(pos, "%q is not a function", name)
	}
	if len(args) != len(sym.fn.Params) {
		return "", errorf(pos, "Function %q expects %d args, got %d", name, len(sym.fn.Params), len(args))
	}
	for i, arg := range args {
		t, err := a.expr(arg, ctx)
		if err != nil {
			return "", err
		}
		if !compatible(sym.fn.Params[i], t) {
			return "", errorf(pos, "Argument %d of %q type mismatch: expected %s, got %s", i+1, name, sym.fn.Params[i], t)
		}
	}
	if sym.fn.IsVoid {
		return "", nil
	}
	return sym.fn.Ret, nil
}
