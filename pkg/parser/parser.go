// Package parser wraps the participle-generated CST parser (pkg/cst) behind
// a small API and translates participle's own error values into the
// public play.SyntaxError shape (spec §4.1 "Failure", §6 "Error surface").
package parser

import (
	"io"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/gaarutyunov/play/pkg/cst"
	"github.com/gaarutyunov/play/pkg/token"
)

// Parser produces a *cst.Program from Play source text.
type Parser struct {
	inner *participle.Parser[cst.Program]
}

// New builds a Parser over the Play grammar.
func New() (*Parser, error) {
	p, err := participle.Build[cst.Program](
		participle.Lexer(cst.Lexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(10),
	)
	if err != nil {
		return nil, err
	}
	return &Parser{inner: p}, nil
}

// Parse reads and parses a full Play source file.
func (p *Parser) Parse(r io.Reader) (*cst.Program, error) {
	prog, err := p.inner.Parse("", r)
	if err != nil {
		return nil, wrapError(err)
	}
	return prog, nil
}

// ParseString parses Play source held entirely in memory.
func (p *Parser) ParseString(src string) (*cst.Program, error) {
	prog, err := p.inner.ParseString("", src)
	if err != nil {
		return nil, wrapError(err)
	}
	return prog, nil
}

// positioned matches participle's Error interface structurally so wrapError
// does not need to import participle's (unstable) concrete error types.
type positioned interface {
	error
	Message() string
	Position() lexer.Position
}

func wrapError(err error) error {
	if pe, ok := err.(positioned); ok {
		pos := pe.Position()
		return &SyntaxError{
			Pos:     token.Position{Line: pos.Line, Column: pos.Column},
			Message: pe.Message(),
		}
	}
	return &SyntaxError{Message: err.Error()}
}

// SyntaxError is a parse failure (spec §6): lexical or grammatical, always
// positioned when the underlying participle error carries one.
type SyntaxError struct {
	Pos     token.Position
	Message string
}

func (e *SyntaxError) Error() string {
	if e.Pos.IsZero() {
		return "syntax error: " + e.Message
	}
	return e.Pos.String() + ": syntax error: " + e.Message
}
