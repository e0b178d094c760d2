package parser

import (
	"errors"
	"fmt"

	"github.com/rhino1998/sl/pkg/lexer"
)

// SyntaxError is returned when the token stream does not match the grammar.
// Parsing stops at the first one.
type SyntaxError struct {
	Pos   lexer.Position
	Msg   string
	Found lexer.Token
	Hint  string
}

func (e *SyntaxError) Error() string {
	msg := fmt.Sprintf("syntax error at %s: %s", e.Pos, e.Msg)
	if e.Hint != "" {
		msg += "; " + e.Hint
	}
	return msg
}

type ErrorKind int

const (
	UnknownError ErrorKind = iota
	LexicalError
	SyntaxErrorKind
)

func (k ErrorKind) String() string {
	switch k {
	case LexicalError:
		return "lexical"
	case SyntaxErrorKind:
		return "syntax"
	default:
		return "unknown"
	}
}

// KindOf classifies an error returned by Parse.
func KindOf(err error) ErrorKind {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return LexicalError
	}

	var synErr *SyntaxError
	if errors.As(err, &synErr) {
		return SyntaxErrorKind
	}

	return UnknownError
}

// Position reports where a lexical or syntax error occurred.
func Position(err error) (lexer.Position, bool) {
	var lexErr *lexer.Error
	if errors.As(err, &lexErr) {
		return lexErr.Pos, true
	}

	var synErr *SyntaxError
	if errors.As(err, &synErr) {
		return synErr.Pos, true
	}

	return lexer.Position{}, false
}

func describe(tok lexer.Token) string {
	switch {
	case tok.Kind == lexer.EOF:
		return "end of input"
	case tok.Kind == lexer.String:
		return fmt.Sprintf("string literal %q", tok.Text)
	default:
		return fmt.Sprintf("%s %q", tok.Kind, tok.Text)
	}
}
