package transform

import (
	"github.com/gaarutyunov/play/pkg/ast"
	"github.com/gaarutyunov/play/pkg/cst"
)

// VarDecl lowers `type ":" var_list`. Each comma-separated VarItem is
// independent; chains within one VarItem (`a = b = c <-- 10`) expand into
// several VarInit entries, outermost name first.
func VarDecl(d *cst.VarDecl) (*ast.VarDecl, error) {
	out := &ast.VarDecl{Pos: pos(d.Pos), Type: ast.TypeTag(d.Type)}
	for _, item := range d.Items {
		chain, err := varItemChain(item)
		if err != nil {
			return nil, err
		}
		out.Items = append(out.Items, chain...)
	}
	return out, nil
}

// varItemChain lowers one `var_item`, mirroring PlayTransformer.var_item:
// a chain link with no initializer anywhere beneath it is an InvalidChainError,
// never silently treated as uninitialized.
func varItemChain(item *cst.VarItem) ([]*ast.VarInit, error) {
	if item.Init != nil {
		e, err := Expr(item.Init)
		if err != nil {
			return nil, err
		}
		return []*ast.VarInit{{Pos: pos(item.Pos), Name: item.Name, Init: e}}, nil
	}

	if item.Chain != nil {
		rest, err := varItemChain(item.Chain)
		if err != nil {
			return nil, err
		}
		inner := rest[0]
		if inner.Init == nil {
			return nil, &InvalidChainError{Pos: pos(item.Pos), Name: item.Name, LinkedName: inner.Name}
		}
		head := &ast.VarInit{Pos: pos(item.Pos), Name: item.Name, Init: inner.Init}
		return append([]*ast.VarInit{head}, rest...), nil
	}

	return []*ast.VarInit{{Pos: pos(item.Pos), Name: item.Name}}, nil
}
