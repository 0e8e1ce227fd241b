package topo

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Sorter is the working state of a topological sort.
//
// dependsOn holds exactly the ids that still have at least one unresolved
// dependency. dependents is the reverse edge set and never shrinks. An id is
// pushed onto the ready frontier at most once and never after it was popped.
type Sorter[ID comparable] struct {
	dependsOn  DepGraph[ID]
	dependents DepGraph[ID]
	ready      frontier[ID]
	less       func(a, b ID) bool
	size       int // number of distinct ids seen in the input
}

// NewSorter builds the working state for g. Only WithLess is consulted; the
// remaining options apply to Sort. g is copied and never modified.
func NewSorter[ID comparable](g DepGraph[ID], opts ...Option[ID]) *Sorter[ID] {
	o := defaultOptions[ID]()
	for _, opt := range opts {
		opt(&o)
	}

	return newSorter(g, o.less)
}

func newSorter[ID comparable](g DepGraph[ID], less func(a, b ID) bool) *Sorter[ID] {
	s := &Sorter[ID]{
		dependsOn:  make(DepGraph[ID], len(g)),
		dependents: make(DepGraph[ID], len(g)),
		ready:      newFrontier(less),
		less:       less,
		size:       len(g),
	}
	// ids referenced only as a dependency, never as a key of g
	implied := make(Set[ID])

	for id, deps := range g {
		if len(deps) == 0 {
			s.ready.push(id)
			continue
		}
		for dep := range deps {
			s.dependsOn.AddDependency(id, dep)
			s.dependents.AddDependency(dep, id)
			if _, isKey := g[dep]; !isKey {
				implied.Add(dep)
			}
		}
	}
	for id := range implied {
		s.ready.push(id)
	}
	s.size += implied.Len()

	return s
}

// Next pops an id from the ready frontier. It reports false once the
// frontier is empty.
func (s *Sorter[ID]) Next() (ID, bool) {
	return s.ready.pop()
}

// Dependents returns the ids that depend on dependency. The returned set
// must not be modified.
func (s *Sorter[ID]) Dependents(dependency ID) Set[ID] {
	return s.dependents[dependency]
}

// Resolve marks dependency as satisfied for dependent. When dependent has no
// dependencies left it moves to the ready frontier. Resolving an edge twice,
// or an edge that never existed, is a no-op.
func (s *Sorter[ID]) Resolve(dependent, dependency ID) {
	deps, ok := s.dependsOn[dependent]
	if !ok {
		return
	}
	deps.Remove(dependency)
	if deps.Len() == 0 {
		delete(s.dependsOn, dependent)
		s.ready.push(dependent)
	}
}

// IsResolved reports whether every id has had all of its dependencies
// satisfied.
func (s *Sorter[ID]) IsResolved() bool {
	return len(s.dependsOn) == 0
}

// Unresolved returns the ids that still have pending dependencies, sorted
// when the Sorter was built with WithLess.
func (s *Sorter[ID]) Unresolved() []ID {
	return s.sorted(maps.Keys(s.dependsOn))
}

// sorted orders ids in place by s.less, if any, and returns them.
func (s *Sorter[ID]) sorted(ids []ID) []ID {
	if s.less != nil {
		slices.SortFunc(ids, s.less)
	}

	return ids
}
