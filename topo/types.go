package topo

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"
	"golang.org/x/exp/maps"
)

var (
	// ErrCycleDetected indicates that one or more ids could not be resolved.
	// Sort returns it wrapped in a *CycleError.
	ErrCycleDetected = errors.New("topo: cyclic reference detected")

	// ErrHookAborted indicates that the WithOnEmit hook stopped the sort.
	ErrHookAborted = errors.New("topo: aborted by emit hook")
)

// CycleError reports the ids left unresolved after the ready frontier ran dry.
// Every id that is part of a cycle is listed, together with any id that
// (transitively) depends on one.
type CycleError[ID comparable] struct {
	// Unresolved holds the ids that still had pending dependencies.
	// It is sorted when the sort was run with WithLess or SortOrdered.
	Unresolved []ID
}

// Error implements the error interface.
func (e *CycleError[ID]) Error() string {
	return fmt.Sprintf("%s for ids: %v", ErrCycleDetected, e.Unresolved)
}

// Is lets errors.Is(err, ErrCycleDetected) match a *CycleError.
func (e *CycleError[ID]) Is(target error) bool {
	return target == ErrCycleDetected
}

// Set is an unordered collection of distinct ids.
type Set[ID comparable] map[ID]struct{}

// NewSet returns a Set holding ids.
func NewSet[ID comparable](ids ...ID) Set[ID] {
	s := make(Set[ID], len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Add inserts id; adding an existing id is a no-op.
func (s Set[ID]) Add(id ID) { s[id] = struct{}{} }

// Remove deletes id; removing an absent id is a no-op.
func (s Set[ID]) Remove(id ID) { delete(s, id) }

// Has reports whether id is in the set.
func (s Set[ID]) Has(id ID) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of ids in the set.
func (s Set[ID]) Len() int { return len(s) }

// Slice returns the ids in unspecified order.
func (s Set[ID]) Slice() []ID { return maps.Keys(s) }

// DepGraph maps every node to the set of nodes it depends on.
// A node with no dependencies is present with an empty (or nil) set.
type DepGraph[ID comparable] map[ID]Set[ID]

// AddDependency records that id depends on each of deps. The key for id is
// created even when deps is empty, so AddDependency(id) declares a root.
func (g DepGraph[ID]) AddDependency(id ID, deps ...ID) {
	set, ok := g[id]
	if !ok || set == nil {
		set = make(Set[ID], len(deps))
		g[id] = set
	}
	for _, d := range deps {
		set.Add(d)
	}
}

// Nodes returns every id that appears in g, either as a key or as a
// dependency, in unspecified order.
func (g DepGraph[ID]) Nodes() []ID {
	all := make(Set[ID], len(g))
	for id, deps := range g {
		all.Add(id)
		for d := range deps {
			all.Add(d)
		}
	}

	return all.Slice()
}

// Option configures optional behavior for Sort.
type Option[ID comparable] func(*options[ID])

// options holds settings for Sort.
type options[ID comparable] struct {
	less   func(a, b ID) bool // tie-break for the frontier; nil means LIFO
	onEmit func(id ID) error  // called after each id is appended
	log    logr.Logger
}

// defaultOptions returns the default options: LIFO frontier, no hook and a
// discarding logger.
func defaultOptions[ID comparable]() options[ID] {
	return options[ID]{log: logr.Discard()}
}

// WithLess returns an Option that breaks ties between ready ids with less:
// the smallest ready id is always emitted next, and the unresolved ids of a
// CycleError are sorted by less. Passing nil has no effect.
func WithLess[ID comparable](less func(a, b ID) bool) Option[ID] {
	return func(o *options[ID]) {
		if less != nil {
			o.less = less
		}
	}
}

// WithOnEmit returns an Option that installs fn as a post-emit hook.
// Returning an error from fn aborts the sort with ErrHookAborted.
func WithOnEmit[ID comparable](fn func(id ID) error) Option[ID] {
	return func(o *options[ID]) {
		o.onEmit = fn
	}
}

// WithLogger returns an Option that sends sort diagnostics to l.
// A Logger without a sink has no effect.
func WithLogger[ID comparable](l logr.Logger) Option[ID] {
	return func(o *options[ID]) {
		if l.GetSink() != nil {
			o.log = l
		}
	}
}
