// Package graph implements the directed dependency graph the Prolog
// backend uses to refuse rule sets whose resolution would not terminate.
package graph

// Graph is a directed graph over vertices 0..n-1, held as adjacency lists.
type Graph struct {
	adj [][]int
}

// New returns an edgeless graph with n vertices.
func New(n int) *Graph {
	return &Graph{make([][]int, n)}
}

// AddEdge adds the directed edge u → v.
func (g *Graph) AddEdge(u, v int) {
	g.adj[u] = append(g.adj[u], v)
}

// HasCycle reports whether the graph contains a directed cycle. Each
// vertex is white before its visit, grey while its subtree is being
// explored and black once finished; reaching a grey vertex closes a cycle.
func (g *Graph) HasCycle() bool {
	const (
		white = iota
		grey
		black
	)
	state := make([]int, len(g.adj))

	var dfs func(int) bool
	dfs = func(v int) bool {
		state[v] = grey
		for _, w := range g.adj[v] {
			switch state[w] {
			case grey:
				return true
			case white:
				if dfs(w) {
					return true
				}
			}
		}
		state[v] = black
		return false
	}

	for v := range g.adj {
		if state[v] == white && dfs(v) {
			return true
		}
	}
	return false
}
