package transform

import (
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaarutyunov/play/pkg/ast"
	"github.com/gaarutyunov/play/pkg/cst"
)

func parseProgram(t *testing.T, src string) *cst.Program {
	t.Helper()
	parser, err := participle.Build[cst.Program](
		participle.Lexer(cst.Lexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(10),
	)
	require.NoError(t, err)
	p, err := parser.ParseString("", src)
	require.NoError(t, err)
	return p
}

func TestVarDeclSimple(t *testing.T) {
	src := `
rank: a <-- 1, b
play {
} gameover
`
	prog, err := Program(parseProgram(t, src))
	require.NoError(t, err)
	require.Len(t, prog.GlobalDecls, 1)

	decl := prog.GlobalDecls[0]
	assert.Equal(t, ast.Rank, decl.Type)
	require.Len(t, decl.Items, 2)
	assert.Equal(t, "a", decl.Items[0].Name)
	assert.NotNil(t, decl.Items[0].Init)
	assert.Equal(t, "b", decl.Items[1].Name)
	assert.Nil(t, decl.Items[1].Init)
}

func TestVarDeclChainExpandsEachLink(t *testing.T) {
	src := `
rank: a = b = c <-- 10
play {
} gameover
`
	prog, err := Program(parseProgram(t, src))
	require.NoError(t, err)
	require.Len(t, prog.GlobalDecls, 1)

	items := prog.GlobalDecls[0].Items
	require.Len(t, items, 3)
	assert.Equal(t, "a", items[0].Name)
	assert.Equal(t, "b", items[1].Name)
	assert.Equal(t, "c", items[2].Name)
	for _, it := range items {
		require.NotNil(t, it.Init)
		lit, ok := it.Init.(*ast.Literal)
		require.True(t, ok)
		assert.Equal(t, int64(10), lit.Value)
	}
}

func TestVarDeclChainWithoutValueFails(t *testing.T) {
	src := `
rank: a = b
play {
} gameover
`
	_, err := Program(parseProgram(t, src))
	require.Error(t, err)
	var chainErr *InvalidChainError
	require.ErrorAs(t, err, &chainErr)
	assert.Equal(t, "a", chainErr.Name)
	assert.Equal(t, "b", chainErr.LinkedName)
}

func TestAssignOnlyLastGroupProducesAssignNodes(t *testing.T) {
	src := `
play {
	rank: a, b, c
	a, b = c <-- 10
} gameover
`
	prog, err := Program(parseProgram(t, src))
	require.NoError(t, err)

	body := prog.MainBlock.Stmts
	require.Len(t, body, 3)

	var assigns []*ast.Assign
	for _, s := range body {
		if a, ok := s.(*ast.Assign); ok {
			assigns = append(assigns, a)
		}
	}
	require.Len(t, assigns, 2)
	assert.ElementsMatch(t, []string{"b", "c"}, []string{assigns[0].Target, assigns[1].Target})
}

func TestInputClaimsEveryGroup(t *testing.T) {
	src := `
play {
	rank: x, y
	x, y <-- grab "enter two"
} gameover
`
	prog, err := Program(parseProgram(t, src))
	require.NoError(t, err)

	require.Len(t, prog.MainBlock.Stmts, 2)
	in, ok := prog.MainBlock.Stmts[1].(*ast.Input)
	require.True(t, ok)
	assert.Equal(t, [][]string{{"x"}, {"y"}}, in.TargetGroups)
	require.NotNil(t, in.Prompt)
}

func TestIfElifFailFlattened(t *testing.T) {
	src := `
play {
	choice (true) ->
	{
	}
	retry (false) ->
	{
	}
	retry (true) ->
	{
	}
	fail ->
	{
	}
} gameover
`
	prog, err := Program(parseProgram(t, src))
	require.NoError(t, err)

	require.Len(t, prog.MainBlock.Stmts, 1)
	ifNode, ok := prog.MainBlock.Stmts[0].(*ast.If)
	require.True(t, ok)
	assert.Len(t, ifNode.Elifs, 2)
	assert.NotNil(t, ifNode.Else)
}

func TestForLoopWrapsMultiAssignInBlock(t *testing.T) {
	src := `
play {
	rank: i, j
	loop (i = j <-- 0; i < 10; i <-- i + 1) ->
	{
	}
} gameover
`
	prog, err := Program(parseProgram(t, src))
	require.NoError(t, err)

	require.Len(t, prog.MainBlock.Stmts, 2)
	forNode, ok := prog.MainBlock.Stmts[1].(*ast.For)
	require.True(t, ok)
	initBlock, ok := forNode.Init.(*ast.Block)
	require.True(t, ok)
	assert.Len(t, initBlock.Stmts, 2)
	assert.NotNil(t, forNode.UpdateStmt)
	assert.Nil(t, forNode.UpdateExpr)
}

func TestUnaryChainNestsRightToLeft(t *testing.T) {
	src := `
play {
	drop !-->x
} gameover
`
	prog, err := Program(parseProgram(t, src))
	require.NoError(t, err)

	out, ok := prog.MainBlock.Stmts[0].(*ast.Output)
	require.True(t, ok)
	outer, ok := out.Expr.(*ast.UnaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.Not, outer.Op)
	inner, ok := outer.Expr.(*ast.UnaryOp)
	require.True(t, ok)
	assert.Equal(t, ast.OutDeref, inner.Op)
	access, ok := inner.Expr.(*ast.VarAccess)
	require.True(t, ok)
	assert.Equal(t, "x", access.Name)
}

func TestLiteralTypes(t *testing.T) {
	src := `
play {
	drop 1
	drop 1.5
	drop "hi"
	drop true
	drop false
} gameover
`
	prog, err := Program(parseProgram(t, src))
	require.NoError(t, err)
	require.Len(t, prog.MainBlock.Stmts, 5)

	wantTypes := []ast.TypeTag{ast.Rank, ast.Rate, ast.Label, ast.Flag, ast.Flag}
	for i, want := range wantTypes {
		out := prog.MainBlock.Stmts[i].(*ast.Output)
		lit := out.Expr.(*ast.Literal)
		assert.Equal(t, want, lit.Type)
	}
}
