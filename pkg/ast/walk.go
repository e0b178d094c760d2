package ast

// Visitor is called for each node during Walk.
// If it returns false, the children of the node are not visited.
type Visitor func(node Node) bool

// Walk traverses an AST in depth-first order.
func Walk(node Node, v Visitor) {
	if node == nil || !v(node) {
		return
	}

	switch n := node.(type) {
	case *Program:
		for _, s := range n.Stmts {
			Walk(s, v)
		}
	case *Block:
		for _, s := range n.Stmts {
			Walk(s, v)
		}
	case *ElseBlock:
		for _, s := range n.Stmts {
			Walk(s, v)
		}
	case *Sequence:
		for _, e := range n.Elems {
			Walk(e, v)
		}
	case *FormalParams:
		for _, d := range n.Params {
			Walk(d, v)
		}
	case *ActualParams:
		for _, e := range n.Args {
			Walk(e, v)
		}
	case *Declaration:
		Walk(n.Type, v)
	case *Assignment:
		Walk(n.Target, v)
		Walk(n.Value, v)
	case *Function:
		Walk(n.Return, v)
		Walk(n.Params, v)
		Walk(n.Body, v)
	case *IfConstruction:
		Walk(n.Cond, v)
		Walk(n.Then, v)
		Walk(n.Else, v)
	case *WhileConstruction:
		Walk(n.Cond, v)
		Walk(n.Body, v)
	case *ReturnStatement:
		Walk(n.Value, v)
	case *FunctionCall:
		Walk(n.Args, v)
	case *IndexAccess:
		Walk(n.Target, v)
		Walk(n.Index, v)
	case *UnaryMinus:
		Walk(n.Operand, v)
	case *LogicalNot:
		Walk(n.Operand, v)
	case *BinaryExpr:
		Walk(n.Left, v)
		Walk(n.Right, v)
	}
}
