package topo

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sort returns the ids of g ordered so that every id comes after all of its
// dependencies. Ids that only appear as a dependency are included.
//
// If some ids can never become ready (a cycle, a self-dependency, or an id
// depending on either), Sort returns a nil order and a *CycleError listing
// all of them; errors.Is(err, ErrCycleDetected) holds.
// If the WithOnEmit hook fails, Sort returns an error wrapping both
// ErrHookAborted and the hook's error.
//
// g is read once to build a private working copy and is not retained.
func Sort[ID comparable](g DepGraph[ID], opts ...Option[ID]) ([]ID, error) {
	// 1. Apply optional settings
	o := defaultOptions[ID]()
	for _, opt := range opts {
		opt(&o)
	}
	// 2. Build working state from g
	s := newSorter(g, o.less)
	order := make([]ID, 0, s.size)
	// 3. Drain the frontier, releasing dependents as their last dependency is emitted
	for {
		id, ok := s.Next()
		if !ok {
			break
		}
		order = append(order, id)
		if o.onEmit != nil {
			if err := o.onEmit(id); err != nil {
				return nil, fmt.Errorf("%w at %v: %w", ErrHookAborted, id, err)
			}
		}
		for dependent := range s.Dependents(id) {
			s.Resolve(dependent, id)
		}
	}
	// 4. Anything still waiting on a dependency is part of, or behind, a cycle
	if !s.IsResolved() {
		unresolved := s.Unresolved()
		o.log.Info("cyclic reference detected", "unresolved", unresolved, "emitted", len(order))

		return nil, &CycleError[ID]{Unresolved: unresolved}
	}
	o.log.V(1).Info("topological sort complete", "nodes", len(order))

	return order, nil
}

// SortOrdered is Sort with ties broken by the natural < order of ID, so the
// result is reproducible across runs. A WithLess among opts takes precedence.
func SortOrdered[ID constraints.Ordered](g DepGraph[ID], opts ...Option[ID]) ([]ID, error) {
	natural := WithLess(func(a, b ID) bool { return a < b })

	return Sort(g, append([]Option[ID]{natural}, opts...)...)
}
