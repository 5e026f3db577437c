// Package token defines the source position type shared across the Play
// frontend. Lexing itself is participle's (pkg/cst); this package exists so
// pkg/ast doesn't need to import participle just to report a location.
package token

import "fmt"

// Position identifies a location in source text.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// IsZero reports whether the position was never set.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}
