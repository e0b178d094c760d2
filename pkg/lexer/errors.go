package lexer

import "fmt"

// Error is a lexical error. It is always fatal to the parse that hit it.
type Error struct {
	Pos Position
	Msg string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexical error at %s: %s", e.Pos, e.Msg)
}
