package topo_test

import (
	"fmt"
	"testing"

	"github.com/rockie/rk-utils/topo"
)

// chainGraph builds N0 ← N1 ← ... ← N(n-1): every node depends on its predecessor.
func chainGraph(n int) topo.DepGraph[string] {
	g := topo.DepGraph[string]{}
	g.AddDependency("N0")
	for i := 1; i < n; i++ {
		g.AddDependency(fmt.Sprintf("N%d", i), fmt.Sprintf("N%d", i-1))
	}

	return g
}

// layeredGraph builds `layers` rows of `width` nodes, each depending on every
// node of the previous row: V = layers*width, E = (layers-1)*width².
func layeredGraph(layers, width int) topo.DepGraph[int] {
	g := topo.DepGraph[int]{}
	for l := 0; l < layers; l++ {
		for w := 0; w < width; w++ {
			id := l*width + w
			g.AddDependency(id)
			if l == 0 {
				continue
			}
			for p := 0; p < width; p++ {
				g.AddDependency(id, (l-1)*width+p)
			}
		}
	}

	return g
}

// BenchmarkSort_Chain10000 measures Sort on a 10,000 node chain, O(V+E).
func BenchmarkSort_Chain10000(b *testing.B) {
	g := chainGraph(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = topo.Sort(g)
	}
}

// BenchmarkSort_Layered measures Sort on a dense layered graph.
func BenchmarkSort_Layered(b *testing.B) {
	g := layeredGraph(20, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = topo.Sort(g)
	}
}

// BenchmarkSortOrdered_Layered adds the heap frontier cost on the same graph.
func BenchmarkSortOrdered_Layered(b *testing.B) {
	g := layeredGraph(20, 50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = topo.SortOrdered(g)
	}
}
