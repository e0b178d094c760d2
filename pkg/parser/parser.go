package parser

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rhino1998/sl/pkg/ast"
	"github.com/rhino1998/sl/pkg/lexer"
)

// Parser builds an AST by recursive descent over tokens pulled one at a time
// from a Lexer. It keeps exactly one token of lookahead.
type Parser struct {
	logger *slog.Logger
	lexer  *lexer.Lexer

	tok lexer.Token
}

func New(logger *slog.Logger, l *lexer.Lexer) *Parser {
	if logger == nil {
		logger = slog.Default()
	}

	return &Parser{
		logger: logger,
		lexer:  l,
	}
}

func ParseReader(logger *slog.Logger, r io.Reader) (*ast.Program, error) {
	return New(logger, lexer.New(r)).Parse()
}

func ParseString(src string) (*ast.Program, error) {
	return ParseReader(nil, strings.NewReader(src))
}

// ParseCondition parses src as a single condition that must span the whole
// input.
func ParseCondition(src string) (ast.Expr, error) {
	p := New(nil, lexer.NewString(src))
	err := p.next()
	if err != nil {
		return nil, err
	}

	cond, err := p.condition()
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != lexer.EOF {
		return nil, p.errorf("unexpected %s after expression", describe(p.tok))
	}

	return cond, nil
}

// Parse consumes the whole token stream and returns the program. An empty
// input is an error. The first lexical or syntax error aborts the parse and
// no partial tree is returned.
func (p *Parser) Parse() (*ast.Program, error) {
	err := p.next()
	if err != nil {
		return nil, err
	}

	p.logger.Debug("parsing program")

	if p.tok.Kind == lexer.EOF {
		return nil, p.errorf("empty program")
	}

	prog := &ast.Program{}
	for p.tok.Kind != lexer.EOF {
		stmt, err := p.terminatedStatement()
		if err != nil {
			p.logger.Debug("parse failed", slog.Any("error", err))
			return nil, err
		}

		prog.Stmts = append(prog.Stmts, stmt)
	}

	p.logger.Debug("parsed program", slog.Int("statements", len(prog.Stmts)))

	return prog, nil
}

func (p *Parser) next() error {
	tok, err := p.lexer.Next()
	if err != nil {
		return err
	}

	p.tok = tok
	return nil
}

func (p *Parser) errorf(format string, args ...any) error {
	return &SyntaxError{
		Pos:   p.tok.Pos,
		Msg:   fmt.Sprintf(format, args...),
		Found: p.tok,
	}
}

// expect consumes the current token if it has the given kind and returns it.
// what names the expected token in the error message.
func (p *Parser) expect(kind lexer.Kind, what string) (lexer.Token, error) {
	tok := p.tok
	if tok.Kind != kind {
		return tok, p.errorf("expected %s, found %s", what, describe(tok))
	}

	err := p.next()
	if err != nil {
		return tok, err
	}

	return tok, nil
}

// list parses zero or more comma separated elements up to, but not
// including, the close token.
func (p *Parser) list(close lexer.Kind, elem func() error) error {
	if p.tok.Kind == close {
		return nil
	}

	for {
		err := elem()
		if err != nil {
			return err
		}

		if p.tok.Kind != lexer.Comma {
			return nil
		}

		err = p.next()
		if err != nil {
			return err
		}
	}
}
