package form

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrymomot/formstate/pkg/formpath"
	"github.com/dmitrymomot/formstate/pkg/validator"
)

// Binding attaches an ordered rule set to a path. When a value at one of the
// DependantPaths changes, the binding is evaluated again even though its own
// value did not change.
type Binding struct {
	Path           string
	RuleSet        []validator.RuleSpec
	DependantPaths []string
}

// Bind is shorthand for a Binding without dependant paths.
func Bind(path string, rules ...validator.RuleSpec) Binding {
	return Binding{Path: path, RuleSet: rules}
}

// DependsOn returns a copy of b with paths added to its dependant paths.
func (b Binding) DependsOn(paths ...string) Binding {
	b.DependantPaths = append(slices.Clone(b.DependantPaths), paths...)
	return b
}

type compiledBinding struct {
	source Binding
	path   formpath.Path
	key    string
	deps   []formpath.Path
}

// compile parses and checks bindings without touching any form state.
func compile(bindings []Binding, reg *validator.Registry) ([]compiledBinding, *graph, error) {
	out := make([]compiledBinding, 0, len(bindings))
	for i, b := range bindings {
		p, err := formpath.Parse(b.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: binding %d: %w", ErrInvalidBinding, i, err)
		}
		if err := reg.Validate(b.RuleSet); err != nil {
			return nil, nil, fmt.Errorf("binding %q: %w", p, err)
		}

		cb := compiledBinding{
			source: Binding{
				Path:           b.Path,
				RuleSet:        slices.Clone(b.RuleSet),
				DependantPaths: slices.Clone(b.DependantPaths),
			},
			path: p,
			key:  p.Normalize().String(),
		}
		for _, d := range b.DependantPaths {
			dp, err := formpath.Parse(d)
			if err != nil {
				return nil, nil, fmt.Errorf("%w: binding %q: dependant path: %w", ErrInvalidBinding, p, err)
			}
			cb.deps = append(cb.deps, dp)
		}
		out = append(out, cb)
	}

	g := newGraph(out)
	if cycle := g.findCycle(out); cycle != nil {
		names := make([]string, len(cycle))
		for i, idx := range cycle {
			names[i] = out[idx].key
		}
		return nil, nil, fmt.Errorf("%w: %s", ErrDependencyCycle, strings.Join(names, " -> "))
	}
	return out, g, nil
}

// graph indexes bindings by the distinct paths they are bound to or depend on.
// Nodes are keyed by canonical path, and below maps every canonical proper
// prefix of a node path to the nodes under it.
type graph struct {
	nodes []graphNode
	index map[string]int
	below map[string][]int
}

type graphNode struct {
	path formpath.Path
	// owners are bindings on this path, watchers list it as a dependant path.
	owners   []int
	watchers []int
}

func newGraph(bindings []compiledBinding) *graph {
	g := &graph{index: make(map[string]int), below: make(map[string][]int)}
	for i, b := range bindings {
		n := g.node(b.path)
		g.nodes[n].owners = append(g.nodes[n].owners, i)
		for _, d := range b.deps {
			n := g.node(d)
			if !slices.Contains(g.nodes[n].watchers, i) {
				g.nodes[n].watchers = append(g.nodes[n].watchers, i)
			}
		}
	}
	return g
}

func (g *graph) node(p formpath.Path) int {
	canonical := p.Normalize()
	key := canonical.String()
	if n, ok := g.index[key]; ok {
		return n
	}
	n := len(g.nodes)
	g.nodes = append(g.nodes, graphNode{path: p})
	g.index[key] = n
	for k := range len(canonical) {
		prefix := canonical[:k].String()
		g.below[prefix] = append(g.below[prefix], n)
	}
	return n
}

// overlapping returns, in node order, the nodes whose path is an ancestor, a
// descendant or the same location as p.
func (g *graph) overlapping(p formpath.Path) []int {
	canonical := p.Normalize()
	var out []int
	for k := 0; k <= len(canonical); k++ {
		if n, ok := g.index[canonical[:k].String()]; ok {
			out = append(out, n)
		}
	}
	out = append(out, g.below[canonical.String()]...)
	slices.Sort(out)
	return out
}

// watchersOf returns the bindings that must be re-evaluated when the value at
// p changes.
func (g *graph) watchersOf(p formpath.Path) []int {
	var out []int
	for _, n := range g.overlapping(p) {
		out = append(out, g.nodes[n].watchers...)
	}
	return out
}

// affected returns, in binding order, every binding to evaluate after a write
// to p: bindings on an overlapping path, bindings watching an overlapping
// path, and transitively the watchers of every binding collected so far.
func (g *graph) affected(bindings []compiledBinding, p formpath.Path) []int {
	seen := make(map[int]bool)
	var queue []int
	push := func(i int) {
		if !seen[i] {
			seen[i] = true
			queue = append(queue, i)
		}
	}

	for _, n := range g.overlapping(p) {
		for _, i := range g.nodes[n].owners {
			push(i)
		}
		for _, i := range g.nodes[n].watchers {
			push(i)
		}
	}
	for len(queue) > 0 {
		b := queue[0]
		queue = queue[1:]
		for _, w := range g.watchersOf(bindings[b].path) {
			push(w)
		}
	}

	out := make([]int, 0, len(seen))
	for i := range seen {
		out = append(out, i)
	}
	slices.Sort(out)
	return out
}

// findCycle returns the bindings of a re-evaluation cycle, first binding
// repeated at the end, or nil when there is none.
func (g *graph) findCycle(bindings []compiledBinding) []int {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make([]int, len(bindings))
	var stack []int

	var visit func(i int) []int
	visit = func(i int) []int {
		state[i] = visiting
		stack = append(stack, i)
		for _, w := range g.watchersOf(bindings[i].path) {
			switch state[w] {
			case visiting:
				start := slices.Index(stack, w)
				return append(slices.Clone(stack[start:]), w)
			case unvisited:
				if cycle := visit(w); cycle != nil {
					return cycle
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[i] = done
		return nil
	}

	for i := range bindings {
		if state[i] == unvisited {
			if cycle := visit(i); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
