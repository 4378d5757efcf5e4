package use

import (
	"fmt"
	"go/token"
)

// Err makes an error addressed to the user with no source position.
func Err(message string) *Error {
	return &Error{message: message}
}

// PosErr makes an error addressed to the user pointing at a declaration in the processed source.
func PosErr(fset *token.FileSet, pos token.Pos, message string) *Error {
	return &Error{message: message, fset: fset, pos: pos}
}

// PosErrf is PosErr with formatting.
func PosErrf(fset *token.FileSet, pos token.Pos, format string, args ...any) *Error {
	return PosErr(fset, pos, fmt.Sprintf(format, args...))
}

type Error struct {
	message string

	fset *token.FileSet
	pos  token.Pos
}

func (e *Error) Message() string {
	return e.message
}

func (e *Error) Position() token.Position {
	if e.fset == nil || !e.pos.IsValid() {
		return token.Position{}
	}
	return e.fset.Position(e.pos)
}

func (e *Error) Error() string {
	if p := e.Position(); p.IsValid() {
		return p.String() + ": " + e.message
	}
	return e.message
}
