package sema_test

import (
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaarutyunov/play/pkg/cst"
	"github.com/gaarutyunov/play/pkg/sema"
	"github.com/gaarutyunov/play/pkg/transform"
)

func analyze(t *testing.T, src string) error {
	t.Helper()
	parser, err := participle.Build[cst.Program](
		participle.Lexer(cst.Lexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(10),
	)
	require.NoError(t, err)
	c, err := parser.ParseString("", src)
	require.NoError(t, err)
	prog, err := transform.Program(c)
	require.NoError(t, err)
	return sema.Analyze(prog)
}

func TestEmptyMainBlockAccepted(t *testing.T) {
	err := analyze(t, `play { } gameover`)
	assert.NoError(t, err)
}

func TestVoidActionEmptyBodyAccepted(t *testing.T) {
	err := analyze(t, `
action noop() -> void { }
play {
	noop()
} gameover
`)
	assert.NoError(t, err)
}

func TestQuitOutsideLoopRejected(t *testing.T) {
	err := analyze(t, `
play {
	quit
} gameover
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Quit used outside loop")
}

func TestRewardValueInVoidActionNamesVoid(t *testing.T) {
	err := analyze(t, `
action noop() -> void { reward 1 }
play {
} gameover
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid return type: expected void, got rank")
}

func TestRewardOutsideFunctionRejected(t *testing.T) {
	err := analyze(t, `
play {
	reward void
} gameover
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Return statement outside function")
}

func TestOutputDereferenceOutsideDropRejected(t *testing.T) {
	err := analyze(t, `
rank: x
play {
	x <-- -->x
} gameover
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Operator '-->' can only be used in 'drop'")
}

func TestOutputDereferenceInsideDropAccepted(t *testing.T) {
	err := analyze(t, `
rank: x
play {
	x <-- 1
	drop "x is " + -->x
} gameover
`)
	assert.NoError(t, err)
}

func TestFunctionCallArgTypeMismatch(t *testing.T) {
	err := analyze(t, `
action foo(rank a) -> void { }
play {
	foo("wrong")
} gameover
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Argument 1")
}

func TestRateRankWideningAccepted(t *testing.T) {
	err := analyze(t, `
rate: r
play {
	r <-- 5
} gameover
`)
	assert.NoError(t, err)
}

func TestRankFromRateRejected(t *testing.T) {
	err := analyze(t, `
rank: r
play {
	r <-- 5.0
} gameover
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Type mismatch")
}

func TestLabelAndFlagNeverConvert(t *testing.T) {
	err := analyze(t, `
label: s
play {
	s <-- true
} gameover
`)
	require.Error(t, err)
}

func TestVariableNotDeclared(t *testing.T) {
	err := analyze(t, `
play {
	x <-- 1
} gameover
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not declared")
}

func TestIfElifElseShape(t *testing.T) {
	err := analyze(t, `
flag: f
play {
	f <-- true
	choice (f) -> { drop "a" }
	retry (f) -> { drop "b" }
	fail -> { drop "c" }
} gameover
`)
	assert.NoError(t, err)
}

func TestLoopBodyVariableVisibleAfterLoop(t *testing.T) {
	err := analyze(t, `
rank: i
play {
	i <-- 0
	stay (i < 3) -> {
		rank: doubled <-- i * 2
		i <-- i + 1
	}
	i <-- doubled
} gameover
`)
	assert.NoError(t, err)
}

func TestDuplicateFunctionNameRejected(t *testing.T) {
	err := analyze(t, `
action foo() -> void { }
action foo() -> void { }
play {
} gameover
`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already defined")
}

func TestNumericPromotionCommutative(t *testing.T) {
	err := analyze(t, `
rate: a
rank: x
rate: y
play {
	a <-- x + y
	a <-- y + x
} gameover
`)
	assert.NoError(t, err)
}

func TestFunctionCallAsStatementDiscardsReturn(t *testing.T) {
	err := analyze(t, `
action one() -> rank { reward 1 }
play {
	one()
} gameover
`)
	assert.NoError(t, err)
}
