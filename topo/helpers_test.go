package topo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rockie/rk-utils/topo"
)

// position returns index of v in order or -1 if not found.
func position[ID comparable](order []ID, v ID) int {
	for i, x := range order {
		if x == v {
			return i
		}
	}

	return -1
}

// assertTopological checks that order holds every node of g exactly once and
// that each dependency precedes its dependent.
func assertTopological[ID comparable](t *testing.T, g topo.DepGraph[ID], order []ID) {
	t.Helper()
	assert.ElementsMatch(t, g.Nodes(), order)
	for id, deps := range g {
		for dep := range deps {
			assert.Lessf(t, position(order, dep), position(order, id),
				"%v depends on %v and must come after it", id, dep)
		}
	}
}

// graphOf builds a DepGraph[string] from id → dependency list pairs.
func graphOf(edges map[string][]string) topo.DepGraph[string] {
	g := topo.DepGraph[string]{}
	for id, deps := range edges {
		g.AddDependency(id, deps...)
	}

	return g
}
