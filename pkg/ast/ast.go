package ast

import "github.com/rhino1998/sl/pkg/lexer"

type Node interface {
	Pos() lexer.Position
	node()
}

type Stmt interface {
	Node
	stmt()
}

type Expr interface {
	Node
	expr()
}

type Type interface {
	Node
	typ()
}

// Program is the root of a parsed source file.
type Program struct {
	Stmts []Stmt
}

func (p *Program) Pos() lexer.Position {
	if len(p.Stmts) == 0 {
		return lexer.Position{Line: 1, Column: 1}
	}
	return p.Stmts[0].Pos()
}

func (*Program) node() {}

type Block struct {
	LBrace lexer.Position
	Stmts  []Stmt
}

func (b *Block) Pos() lexer.Position { return b.LBrace }
func (*Block) node()                 {}

// ElseBlock is the else branch of an if. An if without else carries an
// empty ElseBlock, never nil.
type ElseBlock struct {
	LBrace lexer.Position
	Stmts  []Stmt
}

func (b *ElseBlock) Pos() lexer.Position { return b.LBrace }
func (*ElseBlock) node()                 {}

type Declaration struct {
	Type Type
	Name lexer.Token
}

func (d *Declaration) Pos() lexer.Position { return d.Type.Pos() }
func (*Declaration) node()                 {}
func (*Declaration) stmt()                 {}

// Assignment stores Value into Target. Target is a *Var or an
// *IndexAccess; Value may be a *Sequence.
type Assignment struct {
	Target Expr
	Value  Expr
}

func (a *Assignment) Pos() lexer.Position { return a.Target.Pos() }
func (*Assignment) node()                 {}
func (*Assignment) stmt()                 {}

type Function struct {
	Keyword lexer.Position
	Return  Type
	Name    lexer.Token
	Params  *FormalParams
	Body    *Block
}

func (f *Function) Pos() lexer.Position { return f.Keyword }
func (*Function) node()                 {}
func (*Function) stmt()                 {}

// Sequence is an array literal.
type Sequence struct {
	LBracket lexer.Position
	Elems    []Expr
}

func (s *Sequence) Pos() lexer.Position { return s.LBracket }
func (*Sequence) node()                 {}
func (*Sequence) expr()                 {}

type FormalParams struct {
	LParen lexer.Position
	Params []*Declaration
}

func (p *FormalParams) Pos() lexer.Position { return p.LParen }
func (*FormalParams) node()                 {}

type ActualParams struct {
	LParen lexer.Position
	Args   []Expr
}

func (p *ActualParams) Pos() lexer.Position { return p.LParen }
func (*ActualParams) node()                 {}

type IfConstruction struct {
	Keyword lexer.Position
	Cond    Expr
	Then    *Block
	Else    *ElseBlock
}

func (i *IfConstruction) Pos() lexer.Position { return i.Keyword }
func (*IfConstruction) node()                 {}
func (*IfConstruction) stmt()                 {}

type WhileConstruction struct {
	Keyword lexer.Position
	Cond    Expr
	Body    *Block
}

func (w *WhileConstruction) Pos() lexer.Position { return w.Keyword }
func (*WhileConstruction) node()                 {}
func (*WhileConstruction) stmt()                 {}

type ReturnStatement struct {
	Keyword lexer.Position
	Value   Expr
}

func (r *ReturnStatement) Pos() lexer.Position { return r.Keyword }
func (*ReturnStatement) node()                 {}
func (*ReturnStatement) stmt()                 {}

// Literals keep the raw token text; conversion to numbers happens later.

type StringLiteral struct {
	Token lexer.Token
}

func (l *StringLiteral) Pos() lexer.Position { return l.Token.Pos }
func (*StringLiteral) node()                 {}
func (*StringLiteral) expr()                 {}

type IntLiteral struct {
	Token lexer.Token
}

func (l *IntLiteral) Pos() lexer.Position { return l.Token.Pos }
func (*IntLiteral) node()                 {}
func (*IntLiteral) expr()                 {}

type FloatLiteral struct {
	Token lexer.Token
}

func (l *FloatLiteral) Pos() lexer.Position { return l.Token.Pos }
func (*FloatLiteral) node()                 {}
func (*FloatLiteral) expr()                 {}

type Var struct {
	Name lexer.Token
}

func (v *Var) Pos() lexer.Position { return v.Name.Pos }
func (*Var) node()                 {}
func (*Var) expr()                 {}

type AtomType struct {
	Name lexer.Token
}

func (t *AtomType) Pos() lexer.Position { return t.Name.Pos }
func (*AtomType) node()                 {}
func (*AtomType) typ()                  {}

// ComplexType is a fixed size array of Elem.
type ComplexType struct {
	Elem lexer.Token
	Size lexer.Token
}

func (t *ComplexType) Pos() lexer.Position { return t.Elem.Pos }
func (*ComplexType) node()                 {}
func (*ComplexType) typ()                  {}

// FunctionCall is both an expression and, on its own, a statement.
type FunctionCall struct {
	Name lexer.Token
	Args *ActualParams
}

func (c *FunctionCall) Pos() lexer.Position { return c.Name.Pos }
func (*FunctionCall) node()                 {}
func (*FunctionCall) expr()                 {}
func (*FunctionCall) stmt()                 {}

type IndexAccess struct {
	Target *Var
	Index  Expr
}

func (i *IndexAccess) Pos() lexer.Position { return i.Target.Pos() }
func (*IndexAccess) node()                 {}
func (*IndexAccess) expr()                 {}

type UnaryMinus struct {
	OpPos   lexer.Position
	Operand Expr
}

func (u *UnaryMinus) Pos() lexer.Position { return u.OpPos }
func (*UnaryMinus) node()                 {}
func (*UnaryMinus) expr()                 {}

type LogicalNot struct {
	OpPos   lexer.Position
	Operand Expr
}

func (n *LogicalNot) Pos() lexer.Position { return n.OpPos }
func (*LogicalNot) node()                 {}
func (*LogicalNot) expr()                 {}

type BinaryExpr struct {
	Op    Operator
	OpPos lexer.Position
	Left  Expr
	Right Expr
}

func (b *BinaryExpr) Pos() lexer.Position { return b.Left.Pos() }
func (*BinaryExpr) node()                 {}
func (*BinaryExpr) expr()                 {}
