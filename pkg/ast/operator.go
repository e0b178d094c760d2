package ast

type Operator string

func (o Operator) IsComparison() bool {
	switch o {
	case Less,
		Greater,
		LessEq,
		GreaterEq,
		Eq,
		NotEq:
		return true
	default:
		return false
	}
}

func (o Operator) IsLogical() bool {
	switch o {
	case Or, And:
		return true
	default:
		return false
	}
}

func (o Operator) IsArithmetic() bool {
	switch o {
	case Add,
		Sub,
		Mul,
		Div,
		IntDiv,
		Mod:
		return true
	default:
		return false
	}
}

// Name is the node name used by the tree printer.
func (o Operator) Name() string {
	switch o {
	case Less:
		return "Less"
	case Greater:
		return "Greater"
	case LessEq:
		return "LessEq"
	case GreaterEq:
		return "GreaterEq"
	case Eq:
		return "Eq"
	case NotEq:
		return "NotEq"
	case Or:
		return "Or"
	case And:
		return "And"
	case Add:
		return "Add"
	case Sub:
		return "Sub"
	case Div:
		return "Div"
	case Mul:
		return "Mul"
	case IntDiv:
		return "IntDiv"
	case Mod:
		return "Mod"
	default:
		return "<unknown>"
	}
}

const (
	Mul    Operator = "*"
	Div    Operator = "/"
	IntDiv Operator = "//"
	Mod    Operator = "%"

	Add Operator = "+"
	Sub Operator = "-"

	Eq        Operator = "=="
	NotEq     Operator = "!="
	Less      Operator = "<"
	Greater   Operator = ">"
	LessEq    Operator = "<="
	GreaterEq Operator = ">="

	And Operator = "and"
	Or  Operator = "or"
)
