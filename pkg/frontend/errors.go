package frontend

import (
	"errors"
	"fmt"

	"github.com/rhino1998/sl/pkg/lexer"
	"github.com/rhino1998/sl/pkg/parser"
)

type FileError struct {
	File string
	Err  error
}

// Error prefixes the file name only; lexical and syntax errors already
// carry their line and column.
func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e FileError) Unwrap() error {
	return e.Err
}

// Pos is the source position of the wrapped error, if it has one.
func (e FileError) Pos() (lexer.Position, bool) {
	return parser.Position(e.Err)
}

type ErrorSet struct {
	Errs []error
}

func newErrorSet() *ErrorSet {
	return new(ErrorSet)
}

func (e *ErrorSet) Add(err error) {
	var subErrs *ErrorSet
	if errors.As(err, &subErrs) {
		e.Errs = append(e.Errs, subErrs.Unwrap()...)
	} else {
		e.Errs = append(e.Errs, err)
	}
}

func (e ErrorSet) Error() string {
	return errors.Join(e.Errs...).Error()
}

func (e ErrorSet) Unwrap() []error {
	return e.Errs
}

func (e *ErrorSet) Defer(err error) error {
	if err != nil && e != err {
		e.Add(err)
	}

	if len(e.Errs) == 0 {
		return nil
	}

	return e
}
