package parser_test

import (
	"fmt"
	"strings"

	"github.com/rhino1998/sl/pkg/ast"
)

// sexpr renders a tree in the compact form used by the assertions below,
// e.g. Sub(Sub(Var(a),Var(b)),Var(c)).
func sexpr(node ast.Node) string {
	switch n := node.(type) {
	case *ast.Program:
		return "Program" + stmtList(n.Stmts)
	case *ast.Block:
		return "Block" + stmtList(n.Stmts)
	case *ast.ElseBlock:
		return "ElseBlock" + stmtList(n.Stmts)
	case *ast.Sequence:
		return "Sequence" + exprList(n.Elems)
	case *ast.Declaration:
		return fmt.Sprintf("Declaration(%s,%s)", sexpr(n.Type), n.Name.Text)
	case *ast.Assignment:
		return fmt.Sprintf("Assignment(%s,%s)", sexpr(n.Target), sexpr(n.Value))
	case *ast.Function:
		params := make([]string, 0, len(n.Params.Params))
		for _, param := range n.Params.Params {
			params = append(params, sexpr(param))
		}
		return fmt.Sprintf("Function(%s,%s,[%s],%s)", sexpr(n.Return), n.Name.Text, strings.Join(params, ","), sexpr(n.Body))
	case *ast.IfConstruction:
		return fmt.Sprintf("IfConstruction(%s,%s,%s)", sexpr(n.Cond), sexpr(n.Then), sexpr(n.Else))
	case *ast.WhileConstruction:
		return fmt.Sprintf("WhileConstruction(%s,%s)", sexpr(n.Cond), sexpr(n.Body))
	case *ast.ReturnStatement:
		return fmt.Sprintf("ReturnStatement(%s)", sexpr(n.Value))
	case *ast.StringLiteral:
		return fmt.Sprintf("String(%q)", n.Token.Text)
	case *ast.IntLiteral:
		return fmt.Sprintf("Int(%s)", n.Token.Text)
	case *ast.FloatLiteral:
		return fmt.Sprintf("Float(%s)", n.Token.Text)
	case *ast.Var:
		return fmt.Sprintf("Var(%s)", n.Name.Text)
	case *ast.AtomType:
		return fmt.Sprintf("AtomType(%s)", n.Name.Text)
	case *ast.ComplexType:
		return fmt.Sprintf("ComplexType(%s,%s)", n.Elem.Text, n.Size.Text)
	case *ast.FunctionCall:
		return fmt.Sprintf("FunctionCall(%s,%s)", n.Name.Text, exprList(n.Args.Args))
	case *ast.IndexAccess:
		return fmt.Sprintf("IndexAccess(%s,%s)", sexpr(n.Target), sexpr(n.Index))
	case *ast.UnaryMinus:
		return fmt.Sprintf("UnaryMinus(%s)", sexpr(n.Operand))
	case *ast.LogicalNot:
		return fmt.Sprintf("LogicalNot(%s)", sexpr(n.Operand))
	case *ast.BinaryExpr:
		return fmt.Sprintf("%s(%s,%s)", n.Op.Name(), sexpr(n.Left), sexpr(n.Right))
	default:
		return fmt.Sprintf("<%T>", n)
	}
}

func stmtList(stmts []ast.Stmt) string {
	parts := make([]string, 0, len(stmts))
	for _, s := range stmts {
		parts = append(parts, sexpr(s))
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func exprList(exprs []ast.Expr) string {
	parts := make([]string, 0, len(exprs))
	for _, e := range exprs {
		parts = append(parts, sexpr(e))
	}
	return "[" + strings.Join(parts, ",") + "]"
}
