// Package play composes the three frontend stages — parse, transform,
// analyze — into a single entry point for callers that only want a
// type-checked AST (spec §6 "External interfaces").
package play

import (
	"github.com/gaarutyunov/play/pkg/ast"
	"github.com/gaarutyunov/play/pkg/parser"
	"github.com/gaarutyunov/play/pkg/sema"
	"github.com/gaarutyunov/play/pkg/transform"
)

// SyntaxError is re-exported from pkg/parser so callers of this package
// never need to import it directly to do an errors.As type switch.
type SyntaxError = parser.SyntaxError

// TransformError is re-exported from pkg/transform.
type TransformError = transform.InvalidChainError

// SemanticError is re-exported from pkg/sema.
type SemanticError = sema.Error

// Compile runs a Play source string through the full frontend pipeline and
// returns its validated AST. Source the grammar rejects yields a
// *SyntaxError, a declaration chain without a value a *TransformError, and
// a failed check a *SemanticError. A numeric literal outside the 64-bit
// range is reported with strconv's own *strconv.NumError instead.
func Compile(source string) (*ast.Program, error) {
	p, err := parser.New()
	if err != nil {
		return nil, err
	}

	cstProg, err := p.ParseString(source)
	if err != nil {
		return nil, err
	}

	astProg, err := transform.Program(cstProg)
	if err != nil {
		return nil, err
	}

	if err := sema.Analyze(astProg); err != nil {
		return nil, err
	}

	return astProg, nil
}
