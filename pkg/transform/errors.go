package transform

import (
	"fmt"

	"github.com/gaarutyunov/play/pkg/token"
)

// InvalidChainError is the transformer's own failure kind (spec §4.2
// "Failure"): a declaration chain whose innermost link has no initializer,
// e.g. `rank: a = b` with no `<-- expr` anywhere in the chain. The only
// other error it returns is strconv's, for a numeric literal out of range.
type InvalidChainError struct {
	Pos        token.Position
	Name       string
	LinkedName string
}

func (e *InvalidChainError) Error() string {
	return fmt.Sprintf("%s: Invalid chain: %q cannot be equated to %q without a value assignment",
		e.Pos, e.Name, e.LinkedName)
}
