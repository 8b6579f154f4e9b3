package machine

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEnd is reported when the input ends while a construct is
// still open.
var ErrUnexpectedEnd = errors.New("unexpected end of input")

// Error is a parse failure at a given position.
type Error struct {
	Pos int    // 1-based rune offset
	Msg string // human readable description
	Err error  // underlying kind, usable with errors.Is
}

func newError(pos int, err error) *Error {
	return &Error{Pos: pos, Msg: err.Error(), Err: err}
}

func (e *Error) Error() string {
	return fmt.Sprintf("error at pos %d: %s", e.Pos, e.Msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}
