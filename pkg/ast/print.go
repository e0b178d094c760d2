package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/rhino1998/sl/pkg/lexer"
)

const (
	branch = "|+-"
	guide  = "|   "
)

// Fprint writes node as an indented tree, one node per line. Children are
// introduced by a branch glyph and nested one guide deeper than their parent;
// token fields are printed inline as "name: KIND "text" (line:col)".
func Fprint(w io.Writer, node Node) error {
	p := &printer{w: w}
	p.node(node)
	return p.err
}

func Sprint(node Node) string {
	var sb strings.Builder
	_ = Fprint(&sb, node)
	return sb.String()
}

type printer struct {
	w     io.Writer
	depth int
	err   error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) prefix() {
	p.printf("%s%s", strings.Repeat(guide, p.depth), branch)
}

func (p *printer) child(n Node) {
	p.prefix()
	p.depth++
	p.node(n)
	p.depth--
}

func (p *printer) token(name string, tok lexer.Token) {
	p.prefix()
	p.printf("%s: %s %q (%s)\n", name, tok.Kind, tok.Text, tok.Pos)
}

func (p *printer) list(name string, nodes []Node) {
	p.printf("%s\n", name)
	for _, n := range nodes {
		p.child(n)
	}
}

func (p *printer) node(node Node) {
	switch n := node.(type) {
	case *Program:
		p.list("Program", stmtNodes(n.Stmts))
	case *Block:
		p.list("Block", stmtNodes(n.Stmts))
	case *ElseBlock:
		p.list("ElseBlock", stmtNodes(n.Stmts))
	case *Sequence:
		p.list("Sequence", exprNodes(n.Elems))
	case *FormalParams:
		nodes := make([]Node, 0, len(n.Params))
		for _, param := range n.Params {
			nodes = append(nodes, param)
		}
		p.list("FormalParams", nodes)
	case *ActualParams:
		p.list("ActualParams", exprNodes(n.Args))
	case *Declaration:
		p.printf("Declaration\n")
		p.child(n.Type)
		p.token("id", n.Name)
	case *Assignment:
		p.printf("Assignment\n")
		p.child(n.Target)
		p.child(n.Value)
	case *Function:
		p.printf("Function\n")
		p.child(n.Return)
		p.token("id", n.Name)
		p.child(n.Params)
		p.child(n.Body)
	case *IfConstruction:
		p.printf("IfConstruction\n")
		p.child(n.Cond)
		p.child(n.Then)
		p.child(n.Else)
	case *WhileConstruction:
		p.printf("WhileConstruction\n")
		p.child(n.Cond)
		p.child(n.Body)
	case *ReturnStatement:
		p.printf("ReturnStatement\n")
		p.child(n.Value)
	case *StringLiteral:
		p.printf("StringLiteral\n")
		p.token("value", n.Token)
	case *IntLiteral:
		p.printf("IntLiteral\n")
		p.token("value", n.Token)
	case *FloatLiteral:
		p.printf("FloatLiteral\n")
		p.token("value", n.Token)
	case *Var:
		p.printf("Var\n")
		p.token("id", n.Name)
	case *AtomType:
		p.printf("AtomType\n")
		p.token("id", n.Name)
	case *ComplexType:
		p.printf("ComplexType\n")
		p.token("id", n.Elem)
		p.token("size", n.Size)
	case *FunctionCall:
		p.printf("FunctionCall\n")
		p.token("id", n.Name)
		p.child(n.Args)
	case *IndexAccess:
		p.printf("IndexAccess\n")
		p.child(n.Target)
		p.child(n.Index)
	case *UnaryMinus:
		p.printf("UnaryMinus\n")
		p.child(n.Operand)
	case *LogicalNot:
		p.printf("LogicalNot\n")
		p.child(n.Operand)
	case *BinaryExpr:
		p.printf("%s\n", n.Op.Name())
		p.child(n.Left)
		p.child(n.Right)
	default:
		p.printf("<unknown %T>\n", n)
	}
}

func stmtNodes(stmts []Stmt) []Node {
	nodes := make([]Node, 0, len(stmts))
	for _, s := range stmts {
		nodes = append(nodes, s)
	}
	return nodes
}

func exprNodes(exprs []Expr) []Node {
	nodes := make([]Node, 0, len(exprs))
	for _, e := range exprs {
		nodes = append(nodes, e)
	}
	return nodes
}
