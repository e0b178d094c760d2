package parser

import (
	"github.com/rhino1998/sl/pkg/ast"
	"github.com/rhino1998/sl/pkg/lexer"
)

var relationalOperators = map[lexer.Kind]ast.Operator{
	lexer.Less:      ast.Less,
	lexer.Greater:   ast.Greater,
	lexer.LessEq:    ast.LessEq,
	lexer.GreaterEq: ast.GreaterEq,
	lexer.Equals:    ast.Eq,
	lexer.NotEquals: ast.NotEq,
}

var additiveOperators = map[lexer.Kind]ast.Operator{
	lexer.Plus:  ast.Add,
	lexer.Minus: ast.Sub,
}

var multiplicativeOperators = map[lexer.Kind]ast.Operator{
	lexer.Asterisk: ast.Mul,
	lexer.Slash:    ast.Div,
	lexer.DSlash:   ast.IntDiv,
	lexer.Percent:  ast.Mod,
}

// fold parses "left (op right)*" for the operators in ops, nesting
// repeated operators to the left.
func (p *Parser) fold(left ast.Expr, ops map[lexer.Kind]ast.Operator, operand func() (ast.Expr, error)) (ast.Expr, error) {
	for {
		op, ok := ops[p.tok.Kind]
		if !ok {
			return left, nil
		}

		opPos := p.tok.Pos
		err := p.next()
		if err != nil {
			return nil, err
		}

		right, err := operand()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{Op: op, OpPos: opPos, Left: left, Right: right}
	}
}

// condition := or_operand (OR or_operand)*
func (p *Parser) condition() (ast.Expr, error) {
	left, err := p.orOperand()
	if err != nil {
		return nil, err
	}

	return p.fold(left, map[lexer.Kind]ast.Operator{lexer.Or: ast.Or}, p.orOperand)
}

// or_operand := and_operand (AND and_operand)*
func (p *Parser) orOperand() (ast.Expr, error) {
	left, err := p.andOperand()
	if err != nil {
		return nil, err
	}

	return p.fold(left, map[lexer.Kind]ast.Operator{lexer.And: ast.And}, p.andOperand)
}

// and_operand := logical_operand (relop expression)*
func (p *Parser) andOperand() (ast.Expr, error) {
	left, err := p.logicalOperand()
	if err != nil {
		return nil, err
	}

	return p.fold(left, relationalOperators, p.expression)
}

// logical_operand := NOT logical_operand | ( condition ) | expression
//
// A parenthesised condition followed by an arithmetic operator becomes the
// left operand of that operator, so "(a+b)*c < d" reads as expected.
func (p *Parser) logicalOperand() (ast.Expr, error) {
	switch p.tok.Kind {
	case lexer.Not:
		opPos := p.tok.Pos
		err := p.next()
		if err != nil {
			return nil, err
		}

		operand, err := p.logicalOperand()
		if err != nil {
			return nil, err
		}

		return &ast.LogicalNot{OpPos: opPos, Operand: operand}, nil

	case lexer.LParen:
		err := p.next()
		if err != nil {
			return nil, err
		}

		cond, err := p.condition()
		if err != nil {
			return nil, err
		}

		_, err = p.expect(lexer.RParen, "')'")
		if err != nil {
			return nil, err
		}

		left, err := p.fold(cond, multiplicativeOperators, p.factor)
		if err != nil {
			return nil, err
		}

		return p.fold(left, additiveOperators, p.term)

	default:
		return p.expression()
	}
}

// expression := term ((+|-) term)*
func (p *Parser) expression() (ast.Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}

	return p.fold(left, additiveOperators, p.term)
}

// term := factor ((*|/|//|%) factor)*
func (p *Parser) term() (ast.Expr, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}

	return p.fold(left, multiplicativeOperators, p.factor)
}

// factor := - operand | operand
func (p *Parser) factor() (ast.Expr, error) {
	if p.tok.Kind != lexer.Minus {
		return p.operand()
	}

	opPos := p.tok.Pos
	err := p.next()
	if err != nil {
		return nil, err
	}

	operand, err := p.operand()
	if err != nil {
		return nil, err
	}

	return &ast.UnaryMinus{OpPos: opPos, Operand: operand}, nil
}

// operand := literal | id | id ( args ) | id [ expression ] | ( expression )
func (p *Parser) operand() (ast.Expr, error) {
	tok := p.tok

	switch tok.Kind {
	case lexer.String, lexer.Int, lexer.Float:
		err := p.next()
		if err != nil {
			return nil, err
		}

		switch tok.Kind {
		case lexer.String:
			return &ast.StringLiteral{Token: tok}, nil
		case lexer.Int:
			return &ast.IntLiteral{Token: tok}, nil
		default:
			return &ast.FloatLiteral{Token: tok}, nil
		}

	case lexer.Identifier:
		err := p.next()
		if err != nil {
			return nil, err
		}

		switch p.tok.Kind {
		case lexer.LParen:
			args, err := p.actualParams()
			if err != nil {
				return nil, err
			}
			return &ast.FunctionCall{Name: tok, Args: args}, nil

		case lexer.LBracket:
			err := p.next()
			if err != nil {
				return nil, err
			}

			index, err := p.expression()
			if err != nil {
				return nil, err
			}

			_, err = p.expect(lexer.RBracket, "']' after index")
			if err != nil {
				return nil, err
			}

			return &ast.IndexAccess{Target: &ast.Var{Name: tok}, Index: index}, nil

		default:
			return &ast.Var{Name: tok}, nil
		}

	case lexer.LParen:
		err := p.next()
		if err != nil {
			return nil, err
		}

		expr, err := p.expression()
		if err != nil {
			return nil, err
		}

		_, err = p.expect(lexer.RParen, "')'")
		if err != nil {
			return nil, err
		}

		return expr, nil

	default:
		return nil, p.errorf("expected operand, found %s", describe(tok))
	}
}
