package parser

import (
	"errors"

	"github.com/rhino1998/sl/pkg/ast"
	"github.com/rhino1998/sl/pkg/lexer"
)

// terminatedStatement parses a statement and the ';' that must follow it.
func (p *Parser) terminatedStatement() (ast.Stmt, error) {
	lead := p.tok

	stmt, err := p.statement()
	if err != nil {
		return nil, err
	}

	_, err = p.expect(lexer.Semi, "';' after statement")
	if err != nil {
		return nil, withHint(err, lead)
	}

	return stmt, nil
}

// withHint attaches a keyword suggestion to a syntax error when the
// statement it belongs to started with a misspelled keyword.
func withHint(err error, lead lexer.Token) error {
	var synErr *SyntaxError
	if !errors.As(err, &synErr) || synErr.Hint != "" {
		return err
	}

	synErr.Hint = keywordHint(lead)
	return err
}

func (p *Parser) statement() (ast.Stmt, error) {
	switch p.tok.Kind {
	case lexer.Identifier:
		return p.identStatement()
	case lexer.Function:
		return p.function()
	case lexer.If:
		return p.ifConstruction()
	case lexer.While:
		return p.whileConstruction()
	case lexer.Return:
		return p.returnStatement()
	default:
		return nil, p.errorf("expected statement, found %s", describe(p.tok))
	}
}

// identStatement decides between declaration, assignment and call by the
// token after the leading identifier.
func (p *Parser) identStatement() (ast.Stmt, error) {
	first := p.tok
	err := p.next()
	if err != nil {
		return nil, err
	}

	switch p.tok.Kind {
	case lexer.Identifier:
		name := p.tok
		err := p.next()
		if err != nil {
			return nil, err
		}
		return &ast.Declaration{Type: &ast.AtomType{Name: first}, Name: name}, nil

	case lexer.LBracket:
		return p.bracketStatement(first)

	case lexer.Assign:
		err := p.next()
		if err != nil {
			return nil, err
		}

		value, err := p.assignedValue()
		if err != nil {
			return nil, err
		}
		return &ast.Assignment{Target: &ast.Var{Name: first}, Value: value}, nil

	case lexer.LParen:
		args, err := p.actualParams()
		if err != nil {
			return nil, err
		}
		return &ast.FunctionCall{Name: first, Args: args}, nil

	default:
		err := p.errorf("expected declaration, assignment or function call after %q, found %s", first.Text, describe(p.tok))
		return nil, withHint(err, first)
	}
}

// bracketStatement handles "id [ ... ]", which is either an array
// declaration "type[size] name" or an indexed assignment "name[i] = value".
func (p *Parser) bracketStatement(first lexer.Token) (ast.Stmt, error) {
	err := p.next()
	if err != nil {
		return nil, err
	}

	index, err := p.expression()
	if err != nil {
		return nil, err
	}

	_, err = p.expect(lexer.RBracket, "']'")
	if err != nil {
		return nil, err
	}

	switch p.tok.Kind {
	case lexer.Identifier:
		size, ok := index.(*ast.IntLiteral)
		if !ok {
			return nil, &SyntaxError{
				Pos:   index.Pos(),
				Msg:   "expected integer literal for array size",
				Found: p.tok,
			}
		}

		name := p.tok
		err := p.next()
		if err != nil {
			return nil, err
		}

		return &ast.Declaration{
			Type: &ast.ComplexType{Elem: first, Size: size.Token},
			Name: name,
		}, nil

	case lexer.Assign:
		err := p.next()
		if err != nil {
			return nil, err
		}

		value, err := p.assignedValue()
		if err != nil {
			return nil, err
		}

		return &ast.Assignment{
			Target: &ast.IndexAccess{Target: &ast.Var{Name: first}, Index: index},
			Value:  value,
		}, nil

	default:
		return nil, p.errorf("expected variable name or '=' after ']', found %s", describe(p.tok))
	}
}

// assignedValue is the right hand side of an assignment: an array literal
// or an expression.
func (p *Parser) assignedValue() (ast.Expr, error) {
	if p.tok.Kind == lexer.LBracket {
		return p.sequence()
	}

	return p.expression()
}

func (p *Parser) sequence() (*ast.Sequence, error) {
	open, err := p.expect(lexer.LBracket, "'['")
	if err != nil {
		return nil, err
	}

	seq := &ast.Sequence{LBracket: open.Pos}
	err = p.list(lexer.RBracket, func() error {
		elem, err := p.expression()
		if err != nil {
			return err
		}
		seq.Elems = append(seq.Elems, elem)
		return nil
	})
	if err != nil {
		return nil, err
	}

	_, err = p.expect(lexer.RBracket, "']' or ',' in sequence")
	if err != nil {
		return nil, err
	}

	return seq, nil
}

func (p *Parser) actualParams() (*ast.ActualParams, error) {
	open, err := p.expect(lexer.LParen, "'('")
	if err != nil {
		return nil, err
	}

	params := &ast.ActualParams{LParen: open.Pos}
	err = p.list(lexer.RParen, func() error {
		arg, err := p.expression()
		if err != nil {
			return err
		}
		params.Args = append(params.Args, arg)
		return nil
	})
	if err != nil {
		return nil, err
	}

	_, err = p.expect(lexer.RParen, "')' or ',' in argument list")
	if err != nil {
		return nil, err
	}

	return params, nil
}

func (p *Parser) formalParams() (*ast.FormalParams, error) {
	open, err := p.expect(lexer.LParen, "'(' before parameters")
	if err != nil {
		return nil, err
	}

	params := &ast.FormalParams{LParen: open.Pos}
	err = p.list(lexer.RParen, func() error {
		decl, err := p.declaration()
		if err != nil {
			return err
		}
		params.Params = append(params.Params, decl)
		return nil
	})
	if err != nil {
		return nil, err
	}

	_, err = p.expect(lexer.RParen, "')' or ',' in parameter list")
	if err != nil {
		return nil, err
	}

	return params, nil
}

func (p *Parser) declaration() (*ast.Declaration, error) {
	typ, err := p.typ()
	if err != nil {
		return nil, err
	}

	name, err := p.expect(lexer.Identifier, "identifier")
	if err != nil {
		return nil, err
	}

	return &ast.Declaration{Type: typ, Name: name}, nil
}

// typ parses "id" or "id [ int ]".
func (p *Parser) typ() (ast.Type, error) {
	name, err := p.expect(lexer.Identifier, "type name")
	if err != nil {
		return nil, err
	}

	if p.tok.Kind != lexer.LBracket {
		return &ast.AtomType{Name: name}, nil
	}

	err = p.next()
	if err != nil {
		return nil, err
	}

	size, err := p.expect(lexer.Int, "integer literal for array size")
	if err != nil {
		return nil, err
	}

	_, err = p.expect(lexer.RBracket, "']' after array size")
	if err != nil {
		return nil, err
	}

	return &ast.ComplexType{Elem: name, Size: size}, nil
}

// blockBody parses "{ (statement ;)* }" and returns the position of the
// opening brace with the statements.
func (p *Parser) blockBody(what string) (lexer.Position, []ast.Stmt, error) {
	open, err := p.expect(lexer.LBrace, "'{' to open "+what)
	if err != nil {
		return lexer.Position{}, nil, err
	}

	stmts := []ast.Stmt{}
	for p.tok.Kind != lexer.RBrace {
		if p.tok.Kind == lexer.EOF {
			return lexer.Position{}, nil, p.errorf("expected '}' to close %s, found %s", what, describe(p.tok))
		}

		stmt, err := p.terminatedStatement()
		if err != nil {
			return lexer.Position{}, nil, err
		}

		stmts = append(stmts, stmt)
	}

	err = p.next()
	if err != nil {
		return lexer.Position{}, nil, err
	}

	return open.Pos, stmts, nil
}

func (p *Parser) block(what string) (*ast.Block, error) {
	pos, stmts, err := p.blockBody(what)
	if err != nil {
		return nil, err
	}

	return &ast.Block{LBrace: pos, Stmts: stmts}, nil
}

func (p *Parser) function() (*ast.Function, error) {
	keyword, err := p.expect(lexer.Function, "'function'")
	if err != nil {
		return nil, err
	}

	ret, err := p.typ()
	if err != nil {
		return nil, err
	}

	name, err := p.expect(lexer.Identifier, "function name")
	if err != nil {
		return nil, err
	}

	params, err := p.formalParams()
	if err != nil {
		return nil, err
	}

	body, err := p.block("function body")
	if err != nil {
		return nil, err
	}

	return &ast.Function{
		Keyword: keyword.Pos,
		Return:  ret,
		Name:    name,
		Params:  params,
		Body:    body,
	}, nil
}

func (p *Parser) ifConstruction() (*ast.IfConstruction, error) {
	keyword, err := p.expect(lexer.If, "'if'")
	if err != nil {
		return nil, err
	}

	cond, err := p.condition()
	if err != nil {
		return nil, err
	}

	then, err := p.block("if block")
	if err != nil {
		return nil, err
	}

	stmt := &ast.IfConstruction{
		Keyword: keyword.Pos,
		Cond:    cond,
		Then:    then,
		Else:    &ast.ElseBlock{Stmts: []ast.Stmt{}},
	}

	if p.tok.Kind != lexer.Else {
		return stmt, nil
	}

	err = p.next()
	if err != nil {
		return nil, err
	}

	pos, stmts, err := p.blockBody("else block")
	if err != nil {
		return nil, err
	}

	stmt.Else = &ast.ElseBlock{LBrace: pos, Stmts: stmts}

	return stmt, nil
}

func (p *Parser) whileConstruction() (*ast.WhileConstruction, error) {
	keyword, err := p.expect(lexer.While, "'while'")
	if err != nil {
		return nil, err
	}

	cond, err := p.condition()
	if err != nil {
		return nil, err
	}

	body, err := p.block("while block")
	if err != nil {
		return nil, err
	}

	return &ast.WhileConstruction{Keyword: keyword.Pos, Cond: cond, Body: body}, nil
}

func (p *Parser) returnStatement() (*ast.ReturnStatement, error) {
	keyword, err := p.expect(lexer.Return, "'return'")
	if err != nil {
		return nil, err
	}

	value, err := p.expression()
	if err != nil {
		return nil, err
	}

	return &ast.ReturnStatement{Keyword: keyword.Pos, Value: value}, nil
}
