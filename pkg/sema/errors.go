package sema

import (
	"fmt"

	"github.com/gaarutyunov/play/pkg/token"
)

// Error is the single failure kind the analyzer produces (spec §4.3
// "Fatality"): the first violation aborts analysis with one positioned
// message, never a collection.
type Error struct {
	Pos     token.Position
	Message string
}

func (e *Error) Error() string {
	if e.Pos.IsZero() {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

func errorf(pos token.Position, format string, args ...any) error {
	return &Error{Pos: pos, Message: fmt.Sprintf(format, args...)}
}
