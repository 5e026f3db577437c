package transform

import (
	"strconv"
	"strings"

	"github.com/gaarutyunov/play/pkg/ast"
	"github.com/gaarutyunov/play/pkg/cst"
)

func exprList(in []*cst.Expr) ([]ast.Expr, error) {
	out := make([]ast.Expr, 0, len(in))
	for _, e := range in {
		v, err := Expr(e)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Expr lowers the full precedence ladder (logic -> comparison -> sum ->
// product -> unary -> base) into a left-deep BinOp tree, one layer per
// grammar level, exactly as PlayTransformer's per-level `_binary_op` does.
func Expr(e *cst.Expr) (ast.Expr, error) {
	left, err := compExpr(e.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range e.Ops {
		right, err := compExpr(op.Right)
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Pos: pos(op.Pos), Op: ast.BinOperator(op.Op), Left: left, Right: right}
	}
	return left, nil
}

func compExpr(e *cst.CompExpr) (ast.Expr, error) {
	left, err := sumExpr(e.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range e.Ops {
		right, err := sumExpr(op.Right)
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Pos: pos(op.Pos), Op: ast.BinOperator(op.Op), Left: left, Right: right}
	}
	return left, nil
}

func sumExpr(e *cst.SumExpr) (ast.Expr, error) {
	left, err := prodExpr(e.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range e.Ops {
		right, err := prodExpr(op.Right)
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Pos: pos(op.Pos), Op: ast.BinOperator(op.Op), Left: left, Right: right}
	}
	return left, nil
}

func prodExpr(e *cst.ProdExpr) (ast.Expr, error) {
	left, err := unaryExpr(e.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range e.Ops {
		right, err := unaryExpr(op.Right)
		if err != nil {
			return nil, err
		}
		left = &ast.BinOp{Pos: pos(op.Pos), Op: ast.BinOperator(op.Op), Left: left, Right: right}
	}
	return left, nil
}

// unaryExpr rebuilds the grammar's right-recursive prefix chain from the
// flattened Ops slice: the operator closest to Base in source order is
// applied first (innermost), so Ops is walked back-to-front.
func unaryExpr(u *cst.UnaryExpr) (ast.Expr, error) {
	base, err := baseExpr(u.Base)
	if err != nil {
		return nil, err
	}
	for i := len(u.Ops) - 1; i >= 0; i-- {
		base = &ast.UnaryOp{Pos: pos(u.Pos), Op: ast.UnaryOperator(u.Ops[i]), Expr: base}
	}
	return base, nil
}

func baseExpr(b *cst.BaseExpr) (ast.Expr, error) {
	switch {
	case b.Paren != nil:
		return Expr(b.Paren)

	case b.Real != nil:
		v, err := strconv.ParseFloat(*b.Real, 64)
		if err != nil {
			return nil, err
		}
		return &ast.Literal{Pos: pos(b.Pos), Value: v, Type: ast.Rate}, nil

	case b.Int != nil:
		v, err := strconv.ParseInt(*b.Int, 10, 64)
		if err != nil {
			return nil, err
		}
		return &ast.Literal{Pos: pos(b.Pos), Value: v, Type: ast.Rank}, nil

	case b.Str != nil:
		return &ast.Literal{Pos: pos(b.Pos), Value: strings.Trim(*b.Str, `"`), Type: ast.Label}, nil

	case b.True:
		return &ast.Literal{Pos: pos(b.Pos), Value: true, Type: ast.Flag}, nil

	case b.False:
		return &ast.Literal{Pos: pos(b.Pos), Value: false, Type: ast.Flag}, nil

	case b.Call != nil:
		args, err := exprList(b.Call.Args)
		if err != nil {
			return nil, err
		}
		return &ast.FunCallExpr{Pos: pos(b.Call.Pos), Name: b.Call.Name, Args: args}, nil

	default:
		return &ast.VarAccess{Pos: pos(b.Pos), Name: b.Ident}, nil
	}
}
