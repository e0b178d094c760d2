// Package callgraph records which functions a program defines and which
// functions each of them calls.
package callgraph

import (
	"errors"
	"maps"
	"slices"

	"github.com/rhino1998/sl/pkg/ast"
	"github.com/rhino1998/sl/pkg/topological"
)

type Graph struct {
	defs  map[string]*ast.Function
	calls map[string]map[string]struct{}
}

// Build collects every function definition in prog, nested ones included.
// Calls made inside a nested function belong to that function, not to the
// one enclosing it. When a name is defined twice the first definition wins.
func Build(prog *ast.Program) *Graph {
	g := &Graph{
		defs:  make(map[string]*ast.Function),
		calls: make(map[string]map[string]struct{}),
	}

	ast.Walk(prog, func(node ast.Node) bool {
		fn, ok := node.(*ast.Function)
		if !ok {
			return true
		}

		name := fn.Name.Text
		if _, ok := g.defs[name]; ok {
			return true
		}

		g.defs[name] = fn
		g.calls[name] = make(map[string]struct{})
		ast.Walk(fn.Body, func(node ast.Node) bool {
			switch n := node.(type) {
			case *ast.Function:
				return false
			case *ast.FunctionCall:
				g.calls[name][n.Name.Text] = struct{}{}
			}
			return true
		})

		return true
	})

	return g
}

// Functions returns the names of the defined functions in sorted order.
func (g *Graph) Functions() []string {
	return slices.Sorted(maps.Keys(g.defs))
}

func (g *Graph) Def(name string) (*ast.Function, bool) {
	fn, ok := g.defs[name]
	return fn, ok
}

// Calls returns every name called from the body of function name, including
// names that the program never defines.
func (g *Graph) Calls(name string) []string {
	return slices.Sorted(maps.Keys(g.calls[name]))
}

// Undefined returns the called names that have no definition, mapped to the
// functions calling them.
func (g *Graph) Undefined() map[string][]string {
	undefined := make(map[string][]string)
	for _, caller := range g.Functions() {
		for _, callee := range g.Calls(caller) {
			if _, ok := g.defs[callee]; !ok {
				undefined[callee] = append(undefined[callee], caller)
			}
		}
	}

	return undefined
}

// Order lists functions so that each one comes after the functions it calls.
// Functions that are recursive, or that call a recursive function, cannot be
// placed and are returned separately.
func (g *Graph) Order() (ordered []string, recursive []string, err error) {
	ordered, err = topological.Sort(g.Functions(), g.Calls)

	var cycleErr *topological.CycleError[string]
	if errors.As(err, &cycleErr) {
		return ordered, cycleErr.Keys, nil
	}

	return ordered, nil, err
}
