package common

import (
	"fmt"

	"github.com/fenlang/fen/internal/token"
)

// Error is a semantic error with the position of the offending node.
// Analysis stops at the first one; there is no accumulation.
type Error struct {
	Pos token.Position
	Msg string
}

// NewError creates a semantic error at pos.
func NewError(pos token.Position, format string, args ...interface{}) *Error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s: error: %s", e.Pos, e.Msg)
	} else if len(e.Pos.Filename) > 0 {
		return fmt.Sprintf("%s: error: %s", e.Pos.Filename, e.Msg)
	}
	return fmt.Sprintf("error: %s", e.Msg)
}
