package callgraph_test

import (
	"testing"

	"github.com/rhino1998/sl/pkg/callgraph"
	"github.com/rhino1998/sl/pkg/parser"
	"github.com/stretchr/testify/require"
)

func build(t *testing.T, src string) *callgraph.Graph {
	t.Helper()

	prog, err := parser.ParseString(src)
	require.NoError(t, err)
	return callgraph.Build(prog)
}

func TestBuild(t *testing.T) {
	r := require.New(t)

	g := build(t, `
function int sq(int x) { return x * x; };
function int sum(int[3] xs) {
	int s;
	s = sq(xs[0]) + sq(xs[1]);
	print(s);
	return s;
};
sum(xs);
`)

	r.Equal([]string{"sq", "sum"}, g.Functions())
	r.Empty(g.Calls("sq"))
	r.Equal([]string{"print", "sq"}, g.Calls("sum"))
	r.Equal(map[string][]string{"print": {"sum"}}, g.Undefined())

	fn, ok := g.Def("sq")
	r.True(ok)
	r.Equal("sq", fn.Name.Text)

	_, ok = g.Def("print")
	r.False(ok)
}

func TestBuild_Nested(t *testing.T) {
	r := require.New(t)

	g := build(t, `
function int outer() {
	function int inner() { return leaf(); };
	return inner();
};
function int leaf() { return 1; };
`)

	r.Equal([]string{"inner", "leaf", "outer"}, g.Functions())
	r.Equal([]string{"inner"}, g.Calls("outer"))
	r.Equal([]string{"leaf"}, g.Calls("inner"))
	r.Empty(g.Undefined())
}

func TestOrder(t *testing.T) {
	r := require.New(t)

	g := build(t, `
function int c() { return 1; };
function int b() { return c(); };
function int a() { return b() + c(); };
`)

	ordered, recursive, err := g.Order()
	r.NoError(err)
	r.Equal([]string{"c", "b", "a"}, ordered)
	r.Empty(recursive)
}

func TestOrder_Recursive(t *testing.T) {
	r := require.New(t)

	g := build(t, `
function int fact(int n) {
	if n <= 1 { return 1; };
	return n * fact(n - 1);
};
function int even(int n) { if n == 0 { return 1; }; return odd(n - 1); };
function int odd(int n) { if n == 0 { return 0; }; return even(n - 1); };
function int one() { return 1; };
`)

	ordered, recursive, err := g.Order()
	r.NoError(err)
	r.Equal([]string{"one"}, ordered)
	r.Equal([]string{"even", "fact", "odd"}, recursive)
}
