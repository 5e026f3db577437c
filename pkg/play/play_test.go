package play_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaarutyunov/play/pkg/ast"
	"github.com/gaarutyunov/play/pkg/play"
)

// TestArithmeticPrecedence is scenario 1 (spec §8): `1 + 2 * 3` must parse
// as `+` over `1` and `* (2, 3)`, and the program must type-check.
func TestArithmeticPrecedence(t *testing.T) {
	prog, err := play.Compile(`rank: x  play { x <-- 1 + 2 * 3 } gameover`)
	require.NoError(t, err)

	require.Len(t, prog.MainBlock.Stmts, 1)
	assign := prog.MainBlock.Stmts[0].(*ast.Assign)
	add, ok := assign.Expr.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.Add, add.Op)

	left := add.Left.(*ast.Literal)
	assert.Equal(t, int64(1), left.Value)

	right, ok := add.Right.(*ast.BinOp)
	require.True(t, ok)
	assert.Equal(t, ast.Mul, right.Op)
}

// TestDeclarationChainValid is scenario 2.
func TestDeclarationChainValid(t *testing.T) {
	prog, err := play.Compile(`rank: a = b = c <-- 10  play { } gameover`)
	require.NoError(t, err)

	require.Len(t, prog.GlobalDecls, 1)
	items := prog.GlobalDecls[0].Items
	require.Len(t, items, 3)
	names := []string{items[0].Name, items[1].Name, items[2].Name}
	assert.Equal(t, []string{"a", "b", "c"}, names)
	for _, it := range items {
		lit := it.Init.(*ast.Literal)
		assert.Equal(t, int64(10), lit.Value)
	}
}

// TestDeclarationChainWithoutInitializer is scenario 3.
func TestDeclarationChainWithoutInitializer(t *testing.T) {
	_, err := play.Compile(`play { rank: a = b } gameover`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid chain")
}

// TestOutputDereferenceMisuse is scenario 4.
func TestOutputDereferenceMisuse(t *testing.T) {
	_, err := play.Compile(`rank: x  play { x <-- -->x } gameover`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Operator '-->' can only be used in 'drop' statements")
}

// TestFunctionCallTypeMismatch is scenario 5.
func TestFunctionCallTypeMismatch(t *testing.T) {
	_, err := play.Compile(`action foo(rank a) -> void { }  play { foo("wrong") } gameover`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Argument 1")
}

// TestIfElifElseShape is scenario 6.
func TestIfElifElseShape(t *testing.T) {
	prog, err := play.Compile(`flag: f  play { choice (f) -> { drop "a" } retry (f) -> { drop "b" } fail -> { drop "c" } } gameover`)
	require.NoError(t, err)

	require.Len(t, prog.MainBlock.Stmts, 1)
	ifNode := prog.MainBlock.Stmts[0].(*ast.If)

	cond := ifNode.Cond.(*ast.VarAccess)
	assert.Equal(t, "f", cond.Name)

	then := ifNode.Then.Stmts[0].(*ast.Output)
	assert.Equal(t, "a", then.Expr.(*ast.Literal).Value)

	require.Len(t, ifNode.Elifs, 1)
	elifCond := ifNode.Elifs[0].Cond.(*ast.VarAccess)
	assert.Equal(t, "f", elifCond.Name)
	elifOut := ifNode.Elifs[0].Block.Stmts[0].(*ast.Output)
	assert.Equal(t, "b", elifOut.Expr.(*ast.Literal).Value)

	require.NotNil(t, ifNode.Else)
	elseOut := ifNode.Else.Stmts[0].(*ast.Output)
	assert.Equal(t, "c", elseOut.Expr.(*ast.Literal).Value)
}

func TestSyntaxErrorSurfacesPosition(t *testing.T) {
	_, err := play.Compile(`play {{ gameover`)
	require.Error(t, err)
	var syn *play.SyntaxError
	require.ErrorAs(t, err, &syn)
	assert.False(t, syn.Pos.IsZero())
}
