package topo

import "container/heap"

// frontier holds the ids whose dependencies are all satisfied.
type frontier[ID comparable] interface {
	push(id ID)
	pop() (ID, bool)
}

// newFrontier returns a LIFO stack when less is nil, a min-heap otherwise.
func newFrontier[ID comparable](less func(a, b ID) bool) frontier[ID] {
	if less == nil {
		return &stack[ID]{}
	}

	return &minHeap[ID]{less: less}
}

// stack pops the most recently pushed id first.
type stack[ID comparable] struct {
	items []ID
}

func (s *stack[ID]) push(id ID) { s.items = append(s.items, id) }

func (s *stack[ID]) pop() (ID, bool) {
	var zero ID
	n := len(s.items)
	if n == 0 {
		return zero, false
	}
	id := s.items[n-1]
	s.items[n-1] = zero // drop reference for GC
	s.items = s.items[:n-1]

	return id, true
}

// minHeap pops the smallest id according to less.
type minHeap[ID comparable] struct {
	items []ID
	less  func(a, b ID) bool
}

func (h *minHeap[ID]) push(id ID) { heap.Push((*heapAdapter[ID])(h), id) }

func (h *minHeap[ID]) pop() (ID, bool) {
	if len(h.items) == 0 {
		var zero ID
		return zero, false
	}

	return heap.Pop((*heapAdapter[ID])(h)).(ID), true
}

// heapAdapter exposes minHeap through heap.Interface without putting the
// exported-looking Push/Pop methods on minHeap itself.
type heapAdapter[ID comparable] minHeap[ID]

func (a *heapAdapter[ID]) Len() int           { return len(a.items) }
func (a *heapAdapter[ID]) Less(i, j int) bool { return a.less(a.items[i], a.items[j]) }
func (a *heapAdapter[ID]) Swap(i, j int)      { a.items[i], a.items[j] = a.items[j], a.items[i] }
func (a *heapAdapter[ID]) Push(x any)         { a.items = append(a.items, x.(ID)) }
func (a *heapAdapter[ID]) Pop() any {
	var zero ID
	n := len(a.items)
	id := a.items[n-1]
	a.items[n-1] = zero
	a.items = a.items[:n-1]

	return id
}
