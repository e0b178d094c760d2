package ast

import (
	"fmt"
	"io"
	"strings"
)

// Binding strength of each expression layer, loosest first.
const (
	precOr = iota + 1
	precAnd
	precRelational
	precNot
	precAdditive
	precMultiplicative
	precUnary
	precAtom
)

func precedence(e Expr) int {
	switch e := e.(type) {
	case *BinaryExpr:
		switch {
		case e.Op == Or:
			return precOr
		case e.Op == And:
			return precAnd
		case e.Op.IsComparison():
			return precRelational
		case e.Op == Add || e.Op == Sub:
			return precAdditive
		default:
			return precMultiplicative
		}
	case *LogicalNot:
		return precNot
	case *UnaryMinus:
		return precUnary
	default:
		return precAtom
	}
}

// Format writes node back out as source text in canonical layout: one
// statement per line, tab indentation, single spaces around binary
// operators and the minimum parentheses the grammar needs.
func Format(w io.Writer, node Node) error {
	f := &formatter{}
	f.node(node)
	_, err := io.WriteString(w, f.sb.String())
	return err
}

func FormatString(node Node) string {
	f := &formatter{}
	f.node(node)
	return f.sb.String()
}

type formatter struct {
	sb     strings.Builder
	indent int
}

func (f *formatter) write(s string) {
	f.sb.WriteString(s)
}

func (f *formatter) stmts(stmts []Stmt) {
	for _, s := range stmts {
		f.write(strings.Repeat("\t", f.indent))
		f.node(s)
		f.write(";\n")
	}
}

func (f *formatter) body(stmts []Stmt) {
	f.write("{\n")
	f.indent++
	f.stmts(stmts)
	f.indent--
	f.write(strings.Repeat("\t", f.indent))
	f.write("}")
}

// operand writes e, parenthesised if it binds looser than min.
func (f *formatter) operand(e Expr, min int) {
	if precedence(e) < min {
		f.write("(")
		f.node(e)
		f.write(")")
		return
	}
	f.node(e)
}

func (f *formatter) exprs(exprs []Expr) {
	for i, e := range exprs {
		if i > 0 {
			f.write(", ")
		}
		f.node(e)
	}
}

func (f *formatter) node(node Node) {
	switch n := node.(type) {
	case *Program:
		f.stmts(n.Stmts)
	case *Block:
		f.body(n.Stmts)
	case *ElseBlock:
		f.body(n.Stmts)
	case *Declaration:
		f.node(n.Type)
		f.write(" " + n.Name.Text)
	case *Assignment:
		f.node(n.Target)
		f.write(" = ")
		f.node(n.Value)
	case *Function:
		f.write("function ")
		f.node(n.Return)
		f.write(" " + n.Name.Text)
		f.node(n.Params)
		f.write(" ")
		f.node(n.Body)
	case *FormalParams:
		f.write("(")
		for i, p := range n.Params {
			if i > 0 {
				f.write(", ")
			}
			f.node(p)
		}
		f.write(")")
	case *ActualParams:
		f.write("(")
		f.exprs(n.Args)
		f.write(")")
	case *Sequence:
		f.write("[")
		f.exprs(n.Elems)
		f.write("]")
	case *IfConstruction:
		f.write("if ")
		f.node(n.Cond)
		f.write(" ")
		f.node(n.Then)
		if n.Else != nil && len(n.Else.Stmts) > 0 {
			f.write(" else ")
			f.node(n.Else)
		}
	case *WhileConstruction:
		f.write("while ")
		f.node(n.Cond)
		f.write(" ")
		f.node(n.Body)
	case *ReturnStatement:
		f.write("return ")
		f.node(n.Value)
	case *StringLiteral:
		f.write(`"` + n.Token.Text + `"`)
	case *IntLiteral:
		f.write(n.Token.Text)
	case *FloatLiteral:
		f.write(n.Token.Text)
	case *Var:
		f.write(n.Name.Text)
	case *AtomType:
		f.write(n.Name.Text)
	case *ComplexType:
		f.write(n.Elem.Text + "[" + n.Size.Text + "]")
	case *FunctionCall:
		f.write(n.Name.Text)
		f.node(n.Args)
	case *IndexAccess:
		f.node(n.Target)
		f.write("[")
		f.node(n.Index)
		f.write("]")
	case *UnaryMinus:
		f.write("-")
		f.operand(n.Operand, precAtom)
	case *LogicalNot:
		f.write("not ")
		f.operand(n.Operand, precNot)
	case *BinaryExpr:
		prec := precedence(n)
		f.operand(n.Left, prec)
		f.write(" " + string(n.Op) + " ")
		right := prec + 1
		if n.Op.IsComparison() {
			right = precAdditive
		}
		f.operand(n.Right, right)
	default:
		f.write(fmt.Sprintf("<unknown %T>", n))
	}
}
