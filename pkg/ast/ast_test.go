package ast_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rhino1998/sl/pkg/ast"
	"github.com/rhino1998/sl/pkg/lexer"
	"github.com/rhino1998/sl/pkg/parser"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()

	prog, err := parser.ParseString(src)
	require.NoError(t, err)
	return prog
}

func TestFprint(t *testing.T) {
	r := require.New(t)

	prog := mustParse(t, "x = a + 1;")

	var buf bytes.Buffer
	r.NoError(ast.Fprint(&buf, prog))
	r.Equal(strings.Join([]string{
		"Program",
		"|+-Assignment",
		"|   |+-Var",
		`|   |   |+-id: ID "x" (1:1)`,
		"|   |+-Add",
		"|   |   |+-Var",
		`|   |   |   |+-id: ID "a" (1:5)`,
		"|   |   |+-IntLiteral",
		`|   |   |   |+-value: INT-LITERAL "1" (1:9)`,
		"",
	}, "\n"), buf.String())
}

func TestFprint_EmptyElse(t *testing.T) {
	r := require.New(t)

	out := ast.Sprint(mustParse(t, "if a { };"))
	r.Equal(strings.Join([]string{
		"Program",
		"|+-IfConstruction",
		"|   |+-Var",
		`|   |   |+-id: ID "a" (1:4)`,
		"|   |+-Block",
		"|   |+-ElseBlock",
		"",
	}, "\n"), out)
}

func TestWalk(t *testing.T) {
	r := require.New(t)

	prog := mustParse(t, "function int f(int a) { return g(a, b[1]) * 2; }; f(3);")

	var vars []string
	calls := 0
	ast.Walk(prog, func(node ast.Node) bool {
		switch n := node.(type) {
		case *ast.Var:
			vars = append(vars, n.Name.Text)
		case *ast.FunctionCall:
			calls++
		}
		return true
	})

	r.Equal([]string{"a", "b"}, vars)
	r.Equal(2, calls)
}

func TestWalk_Prune(t *testing.T) {
	r := require.New(t)

	prog := mustParse(t, "while a { x = y; }; z = w;")

	var vars []string
	ast.Walk(prog, func(node ast.Node) bool {
		if _, ok := node.(*ast.WhileConstruction); ok {
			return false
		}
		if v, ok := node.(*ast.Var); ok {
			vars = append(vars, v.Name.Text)
		}
		return true
	})

	r.Equal([]string{"z", "w"}, vars)
}

func TestFormat(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"int x;", "int x;\n"},
		{"x=(a+b)*c;", "x = (a + b) * c;\n"},
		{"x=a-(b-c);", "x = a - (b - c);\n"},
		{"x=-(a*b);", "x = -(a * b);\n"},
		{"if not(a<b)or c{f();}else{g();};", "if not (a < b) or c {\n\tf();\n} else {\n\tg();\n};\n"},
		{"if a {} else {};", "if a {\n};\n"},
		{"function int[2] f(int a,float b){return a;};", "function int[2] f(int a, float b) {\n\treturn a;\n};\n"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			prog := mustParse(t, tt.src)

			var buf bytes.Buffer
			require.NoError(t, ast.Format(&buf, prog))
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestFprintYAML(t *testing.T) {
	r := require.New(t)

	prog := mustParse(t, "int[3] xs;\nxs[0] = f(1);")

	var buf bytes.Buffer
	r.NoError(ast.FprintYAML(&buf, prog))

	var doc struct {
		Kind  string `yaml:"kind"`
		Pos   string `yaml:"pos"`
		Stmts []struct {
			Kind string         `yaml:"kind"`
			Pos  string         `yaml:"pos"`
			Type map[string]any `yaml:"type"`
			Name string         `yaml:"name"`

			Target map[string]any `yaml:"target"`
			Value  map[string]any `yaml:"value"`
		} `yaml:"stmts"`
	}
	r.NoError(yaml.Unmarshal(buf.Bytes(), &doc))

	r.Equal("Program", doc.Kind)
	r.Len(doc.Stmts, 2)

	r.Equal("Declaration", doc.Stmts[0].Kind)
	r.Equal("xs", doc.Stmts[0].Name)
	r.Equal("ComplexType", doc.Stmts[0].Type["kind"])
	r.Equal("3", doc.Stmts[0].Type["size"])

	r.Equal("Assignment", doc.Stmts[1].Kind)
	r.Equal("2:1", doc.Stmts[1].Pos)
	r.Equal("IndexAccess", doc.Stmts[1].Target["kind"])
	r.Equal("FunctionCall", doc.Stmts[1].Value["kind"])

	r.True(strings.HasPrefix(buf.String(), "kind: Program\n"))
}

func TestOperator(t *testing.T) {
	r := require.New(t)

	for _, op := range []ast.Operator{ast.Less, ast.Greater, ast.LessEq, ast.GreaterEq, ast.Eq, ast.NotEq} {
		r.True(op.IsComparison(), op)
		r.False(op.IsArithmetic(), op)
	}

	for _, op := range []ast.Operator{ast.Add, ast.Sub, ast.Mul, ast.Div, ast.IntDiv, ast.Mod} {
		r.True(op.IsArithmetic(), op)
		r.False(op.IsLogical(), op)
	}

	r.True(ast.And.IsLogical())
	r.True(ast.Or.IsLogical())
	r.Equal("IntDiv", ast.IntDiv.Name())
	r.Equal("NotEq", ast.NotEq.Name())
}

func TestPositions(t *testing.T) {
	r := require.New(t)

	prog := mustParse(t, "function int f() {\n  return -x;\n};")
	fn := prog.Stmts[0].(*ast.Function)
	r.Equal(lexer.Position{Line: 1, Column: 1}, fn.Pos())
	r.Equal(lexer.Position{Line: 1, Column: 15}, fn.Params.Pos())
	r.Equal(lexer.Position{Line: 1, Column: 18}, fn.Body.Pos())

	ret := fn.Body.Stmts[0].(*ast.ReturnStatement)
	r.Equal(lexer.Position{Line: 2, Column: 3}, ret.Pos())
	r.Equal(lexer.Position{Line: 2, Column: 10}, ret.Value.Pos())
}
