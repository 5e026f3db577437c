// Package ast defines the fixed AST node kinds of the Play frontend (spec
// §3): a Program rooted tree of statements and expressions, fully resolved
// of the syntactic idiosyncrasies pkg/transform removes. Every node carries
// an optional source Position. Stmt and Expr are closed interfaces — the
// variants listed in this package are the only implementations, and
// pkg/sema walks them with an explicit type switch rather than a
// visitor-by-name dispatch (see spec §9 REDESIGN FLAGS).
package ast

import "github.com/gaarutyunov/play/pkg/token"

// Position is re-exported so callers of this package never need to import
// pkg/token just to read a node's location.
type Position = token.Position

// TypeTag is one of Play's four primitive types.
type TypeTag string

const (
	Rank  TypeTag = "rank"
	Rate  TypeTag = "rate"
	Flag  TypeTag = "flag"
	Label TypeTag = "label"
)

func (t TypeTag) String() string { return string(t) }

// IsNumeric reports whether t is rank or rate.
func (t TypeTag) IsNumeric() bool {
	return t == Rank || t == Rate
}

// BinOperator is a binary expression operator.
type BinOperator string

const (
	Add BinOperator = "+"
	Sub BinOperator = "-"
	Mul BinOperator = "*"
	Div BinOperator = "/"
	Mod BinOperator = "%"

	Eq  BinOperator = "=="
	Neq BinOperator = "<>"
	Lt  BinOperator = "<"
	Leq BinOperator = "<="
	Gt  BinOperator = ">"
	Geq BinOperator = ">="

	And BinOperator = "&&"
	Or  BinOperator = "||"
)

// UnaryOperator is a unary expression operator.
type UnaryOperator string

const (
	Not      UnaryOperator = "!"
	Neg      UnaryOperator = "-"
	Pos      UnaryOperator = "+"
	OutDeref UnaryOperator = "-->"
)
