package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyProgram(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	prog, err := p.ParseString(`play { } gameover`)
	require.NoError(t, err)
	assert.Empty(t, prog.GlobalDecls)
	assert.Empty(t, prog.Functions)
	assert.Empty(t, prog.MainBlock.Stmts)
}

func TestParseFromReader(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	prog, err := p.Parse(strings.NewReader(`rank: x  play { x <-- 1 } gameover`))
	require.NoError(t, err)
	require.Len(t, prog.GlobalDecls, 1)
}

func TestParseSyntaxErrorHasPosition(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	_, err = p.ParseString("play {{ gameover")
	require.Error(t, err)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.False(t, synErr.Pos.IsZero())
}

func TestParseMissingGameoverRejected(t *testing.T) {
	p, err := New()
	require.NoError(t, err)

	_, err = p.ParseString("play { }")
	require.Error(t, err)

	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
}
