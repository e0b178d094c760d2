package lexer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"
	"unicode"
)

const eof = -1

var punctuation = map[rune]Kind{
	'+': Plus,
	'-': Minus,
	'*': Asterisk,
	'%': Percent,
	'(': LParen,
	')': RParen,
	'{': LBrace,
	'}': RBrace,
	'[': LBracket,
	']': RBracket,
	';': Semi,
	',': Comma,
}

// Lexer turns a character stream into tokens, one token per call to Next.
// It holds a single character of lookahead and the position of that
// character; nothing else is buffered.
type Lexer struct {
	r *bufio.Reader

	ch   rune
	line int
	col  int

	readErr error
	buf     strings.Builder
}

func New(r io.Reader) *Lexer {
	l := &Lexer{
		r:    bufio.NewReader(r),
		line: 1,
	}
	l.nextch()

	return l
}

func NewString(src string) *Lexer {
	return New(strings.NewReader(src))
}

func (l *Lexer) position() Position {
	return Position{Line: l.line, Column: l.col}
}

func (l *Lexer) nextch() {
	switch l.ch {
	case eof:
		return
	case '\n':
		l.line++
		l.col = 1
	default:
		l.col++
	}

	ch, _, err := l.r.ReadRune()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			l.readErr = err
		}
		l.ch = eof
		return
	}

	l.ch = ch
}

func (l *Lexer) errorf(pos Position, format string, args ...any) error {
	return &Error{Pos: pos, Msg: fmt.Sprintf(format, args...)}
}

// Next returns the next token. Once the end of the stream is reached every
// further call returns an EOF token.
func (l *Lexer) Next() (Token, error) {
	for isWhitespace(l.ch) {
		l.nextch()
	}

	pos := l.position()

	switch {
	case l.ch == eof:
		if l.readErr != nil {
			return Token{}, fmt.Errorf("failed to read source: %w", l.readErr)
		}
		return Token{Kind: EOF, Pos: pos}, nil
	case isLetter(l.ch):
		return l.scanIdent(pos), nil
	case isDigit(l.ch):
		return l.scanNumber(pos)
	case l.ch == '"':
		return l.scanString(pos)
	}

	if kind, ok := punctuation[l.ch]; ok {
		text := string(l.ch)
		l.nextch()
		return Token{Kind: kind, Text: text, Pos: pos}, nil
	}

	switch l.ch {
	case '/':
		return l.scanOperator(pos, Slash, '/', DSlash), nil
	case '=':
		return l.scanOperator(pos, Assign, '=', Equals), nil
	case '<':
		return l.scanOperator(pos, Less, '=', LessEq), nil
	case '>':
		return l.scanOperator(pos, Greater, '=', GreaterEq), nil
	case '!':
		l.nextch()
		if l.ch != '=' {
			return Token{}, l.errorf(pos, "unexpected character '!', expected \"!=\"")
		}
		l.nextch()
		return Token{Kind: NotEquals, Text: "!=", Pos: pos}, nil
	}

	return Token{}, l.errorf(pos, "unexpected character %q", l.ch)
}

// Tokens yields tokens up to and including EOF, or until the first error.
func (l *Lexer) Tokens() iter.Seq2[Token, error] {
	return func(yield func(Token, error) bool) {
		for {
			tok, err := l.Next()
			if !yield(tok, err) {
				return
			}
			if err != nil || tok.Kind == EOF {
				return
			}
		}
	}
}

// scanOperator consumes a one or two character operator. The character after
// the first one is always read; if it does not complete the long form it
// stays in the lookahead buffer as the start of the next token.
func (l *Lexer) scanOperator(pos Position, short Kind, second rune, long Kind) Token {
	first := l.ch
	l.nextch()
	if l.ch == second {
		l.nextch()
		return Token{Kind: long, Text: string(first) + string(second), Pos: pos}
	}

	return Token{Kind: short, Text: string(first), Pos: pos}
}

func (l *Lexer) scanIdent(pos Position) Token {
	l.buf.Reset()
	for isLetter(l.ch) || unicode.IsDigit(l.ch) {
		l.buf.WriteRune(l.ch)
		l.nextch()
	}

	text := l.buf.String()
	return Token{Kind: LookupKeyword(text), Text: text, Pos: pos}
}

func (l *Lexer) scanDigits() {
	for isDigit(l.ch) {
		l.buf.WriteRune(l.ch)
		l.nextch()
	}
}

func (l *Lexer) scanNumber(pos Position) (Token, error) {
	l.buf.Reset()
	kind := Int

	l.scanDigits()

	if l.ch == '.' {
		kind = Float
		l.buf.WriteRune(l.ch)
		l.nextch()
		if !isDigit(l.ch) {
			return Token{}, l.errorf(l.position(), "malformed float literal %q: expected digits after '.'", l.buf.String())
		}
		l.scanDigits()
	}

	if isLetter(l.ch) {
		return Token{}, l.errorf(l.position(), "invalid identifier: %q cannot follow numeric literal %q", l.ch, l.buf.String())
	}

	return Token{Kind: kind, Text: l.buf.String(), Pos: pos}, nil
}

// scanString reads a double quoted literal verbatim; there are no escapes.
func (l *Lexer) scanString(pos Position) (Token, error) {
	l.buf.Reset()
	l.nextch()

	for l.ch != '"' {
		if l.ch == eof {
			if l.readErr != nil {
				return Token{}, fmt.Errorf("failed to read source: %w", l.readErr)
			}
			return Token{}, l.errorf(l.position(), "unterminated string literal starting at %s", pos)
		}
		l.buf.WriteRune(l.ch)
		l.nextch()
	}
	l.nextch()

	return Token{Kind: String, Text: l.buf.String(), Pos: pos}, nil
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isLetter(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

// isDigit reports ASCII digits only; numeric literals never use other scripts.
func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

