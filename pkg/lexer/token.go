package lexer

import "fmt"

type Kind int

const (
	EOF Kind = iota
	String
	Identifier
	Int
	Float

	Assign    // =
	Less      // <
	Greater   // >
	Equals    // ==
	NotEquals // !=
	LessEq    // <=
	GreaterEq // >=

	Plus     // +
	Minus    // -
	Asterisk // *
	Slash    // /
	DSlash   // //
	Percent  // %

	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]
	Semi     // ;
	Comma    // ,

	For
	While
	Return
	Function
	If
	Else
	And
	Or
	Not
)

var kindNames = [...]string{
	EOF:        "EOF",
	String:     "STRING-LITERAL",
	Identifier: "ID",
	Int:        "INT-LITERAL",
	Float:      "FLOAT-LITERAL",
	Assign:     "ASSIGN",
	Less:       "L",
	Greater:    "G",
	Equals:     "EQUALS",
	NotEquals:  "NOT-EQUALS",
	LessEq:     "LE",
	GreaterEq:  "GE",
	Plus:       "PLUS",
	Minus:      "MINUS",
	Asterisk:   "ASTERISK",
	Slash:      "SLASH",
	DSlash:     "DSLASH",
	Percent:    "PERCENT",
	LParen:     "LBR",
	RParen:     "RBR",
	LBrace:     "LCBR",
	RBrace:     "RCBR",
	LBracket:   "LSBR",
	RBracket:   "RSBR",
	Semi:       "SEMI",
	Comma:      "COMMA",
	For:        "FOR",
	While:      "WHILE",
	Return:     "RETURN",
	Function:   "FUNCTION",
	If:         "IF",
	Else:       "ELSE",
	And:        "AND",
	Or:         "OR",
	Not:        "NOT",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", int(k))
}

func (k Kind) IsKeyword() bool {
	return k >= For && k <= Not
}

func (k Kind) IsLiteral() bool {
	return k == String || k == Int || k == Float
}

var keywords = map[string]Kind{
	"for":      For,
	"while":    While,
	"return":   Return,
	"function": Function,
	"if":       If,
	"else":     Else,
	"and":      And,
	"or":       Or,
	"not":      Not,
}

// Keywords returns the reserved words in a stable order.
func Keywords() []string {
	return []string{"and", "else", "for", "function", "if", "not", "or", "return", "while"}
}

// LookupKeyword returns the keyword kind for text, or Identifier.
func LookupKeyword(text string) Kind {
	if k, ok := keywords[text]; ok {
		return k
	}

	return Identifier
}

// Position is a 1-based line and column in the source.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

func (p Position) IsValid() bool {
	return p.Line > 0
}

type Token struct {
	Kind Kind
	Text string
	Pos  Position
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %s", t.Kind, t.Text, t.Pos)
}
