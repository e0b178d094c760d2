package ast

import (
	"fmt"
	"io"

	"github.com/rhino1998/sl/pkg/lexer"
	"gopkg.in/yaml.v3"
)

// FprintYAML writes a YAML representation of the AST to w. Keys keep the
// order the fields have in the node types.
func FprintYAML(w io.Writer, node Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	err := enc.Encode(toYAML(node))
	if err != nil {
		return fmt.Errorf("failed to encode ast: %w", err)
	}

	return enc.Close()
}

func scalar(v string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v}
}

func mapping(kind string, pos lexer.Position, pairs ...any) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	m.Content = append(m.Content, scalar("kind"), scalar(kind))
	m.Content = append(m.Content, scalar("pos"), scalar(pos.String()))

	for i := 0; i+1 < len(pairs); i += 2 {
		m.Content = append(m.Content, scalar(pairs[i].(string)), pairs[i+1].(*yaml.Node))
	}

	return m
}

func sequence[T Node](nodes []T) *yaml.Node {
	s := &yaml.Node{Kind: yaml.SequenceNode}
	for _, n := range nodes {
		s.Content = append(s.Content, toYAML(n))
	}
	return s
}

func tokenYAML(tok lexer.Token) *yaml.Node {
	return scalar(tok.Text)
}

func toYAML(node Node) *yaml.Node {
	switch n := node.(type) {
	case *Program:
		return mapping("Program", n.Pos(), "stmts", sequence(n.Stmts))
	case *Block:
		return mapping("Block", n.Pos(), "stmts", sequence(n.Stmts))
	case *ElseBlock:
		return mapping("ElseBlock", n.Pos(), "stmts", sequence(n.Stmts))
	case *Sequence:
		return mapping("Sequence", n.Pos(), "elems", sequence(n.Elems))
	case *FormalParams:
		return mapping("FormalParams", n.Pos(), "params", sequence(n.Params))
	case *ActualParams:
		return mapping("ActualParams", n.Pos(), "args", sequence(n.Args))
	case *Declaration:
		return mapping("Declaration", n.Pos(), "type", toYAML(n.Type), "name", tokenYAML(n.Name))
	case *Assignment:
		return mapping("Assignment", n.Pos(), "target", toYAML(n.Target), "value", toYAML(n.Value))
	case *Function:
		return mapping("Function", n.Pos(),
			"return", toYAML(n.Return),
			"name", tokenYAML(n.Name),
			"params", toYAML(n.Params),
			"body", toYAML(n.Body),
		)
	case *IfConstruction:
		return mapping("IfConstruction", n.Pos(),
			"cond", toYAML(n.Cond),
			"then", toYAML(n.Then),
			"else", toYAML(n.Else),
		)
	case *WhileConstruction:
		return mapping("WhileConstruction", n.Pos(), "cond", toYAML(n.Cond), "body", toYAML(n.Body))
	case *ReturnStatement:
		return mapping("ReturnStatement", n.Pos(), "value", toYAML(n.Value))
	case *StringLiteral:
		return mapping("StringLiteral", n.Pos(), "value", tokenYAML(n.Token))
	case *IntLiteral:
		return mapping("IntLiteral", n.Pos(), "value", tokenYAML(n.Token))
	case *FloatLiteral:
		return mapping("FloatLiteral", n.Pos(), "value", tokenYAML(n.Token))
	case *Var:
		return mapping("Var", n.Pos(), "name", tokenYAML(n.Name))
	case *AtomType:
		return mapping("AtomType", n.Pos(), "name", tokenYAML(n.Name))
	case *ComplexType:
		return mapping("ComplexType", n.Pos(), "elem", tokenYAML(n.Elem), "size", tokenYAML(n.Size))
	case *FunctionCall:
		return mapping("FunctionCall", n.Pos(), "name", tokenYAML(n.Name), "args", toYAML(n.Args))
	case *IndexAccess:
		return mapping("IndexAccess", n.Pos(), "target", toYAML(n.Target), "index", toYAML(n.Index))
	case *UnaryMinus:
		return mapping("UnaryMinus", n.Pos(), "operand", toYAML(n.Operand))
	case *LogicalNot:
		return mapping("LogicalNot", n.Pos(), "operand", toYAML(n.Operand))
	case *BinaryExpr:
		return mapping(n.Op.Name(), n.Pos(), "left", toYAML(n.Left), "right", toYAML(n.Right))
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}
