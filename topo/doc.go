// Package topo orders the nodes of a dependency graph so that every node
// comes after all of the nodes it depends on.
//
// What:
//
//   - Sort: Kahn-style topological sort over a DepGraph (node → set of
//     dependencies). Nodes that only appear as somebody's dependency are
//     included in the output as well.
//   - SortOrdered: Sort with the natural < order used to break ties, giving
//     a reproducible result for string or numeric ids.
//   - Sorter: the working state behind Sort (remaining dependencies, reverse
//     edges and the ready frontier), exposed for callers that want to drive
//     resolution themselves.
//
// Why:
//
//   - Start services, run migrations or build packages in dependency order
//   - Report exactly which ids take part in (or hang off) a cycle instead of
//     a bare "cycle detected"
//
// Ordering:
//
// Without WithLess the frontier is a stack and ties come out in no particular
// order; the only guarantee is that an id never precedes one of its
// dependencies. With WithLess (or SortOrdered) the frontier is a min-heap and
// the smallest ready id is always emitted first.
//
// Errors:
//
//   - ErrCycleDetected  some ids never became ready; the concrete error is a
//     *CycleError carrying the unresolved ids, use errors.As to get them
//   - ErrHookAborted    the WithOnEmit hook returned an error
//
// Complexity:
//
//   - Time:   O(V + E) (O((V + E) log V) with WithLess)
//   - Memory: O(V + E) for the working copy; the input graph is never mutated
//
// Example:
//
//	g := topo.DepGraph[string]{}
//	g.AddDependency("b", "a")
//	g.AddDependency("c", "b")
//	order, err := topo.Sort(g) // [a b c]
package topo
