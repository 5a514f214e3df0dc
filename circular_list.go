// Package circular implements a circular doubly linked list with two kinds of
// iterators over the same ring.
//
// Iterator is the bounded kind: it starts at the head and becomes none after
// the last element, so a Begin/End pair is one exhaustible pass. LoopIterator
// never runs out: LoopBegin and LoopEnd are the same position, and the Loop*
// algorithms of this package treat an equal pair as one full circuit of the
// ring instead of an empty range.
//
// Misuse, like erasing a location that is not in the list, is reported through
// package check and aborts the operation. The list is not safe for concurrent
// use.
package circular

import (
	"fmt"

	"github.com/snwfog/circular.go/pkg/check"
)

type node[E any] struct {
	Value      E
	prev, next *node[E]
}

// CircularList is a ring of elements anchored at a head node. The zero value
// is an empty list ready to use.
type CircularList[E any] struct {
	head *node[E]
	len  int
}

// New returns a list holding elems in order.
func New[E any](elems ...E) *CircularList[E] {
	l := &CircularList[E]{}
	for _, e := range elems {
		l.insert(nil, e)
	}

	return l
}

// Len returns the number of elements.
func (l *CircularList[E]) Len() int {
	return l.len
}

func (l *CircularList[E]) Empty() bool {
	return l.len == 0
}

func (l *CircularList[E]) Begin() Iterator[E] {
	return Iterator[E]{node: l.head, head: l.head}
}

// End returns the none iterator. It remembers the head so that End().Prev()
// yields the last element.
func (l *CircularList[E]) End() Iterator[E] {
	return Iterator[E]{head: l.head}
}

func (l *CircularList[E]) LoopBegin() LoopIterator[E] {
	return LoopIterator[E]{node: l.head}
}

// LoopEnd is the same position as LoopBegin.
func (l *CircularList[E]) LoopEnd() LoopIterator[E] {
	return LoopIterator[E]{node: l.head}
}

// Exist reports whether c references a node of this list.
func (l *CircularList[E]) Exist(c Cursor[E]) bool {
	return l.exist(c.position())
}

func (l *CircularList[E]) exist(n *node[E]) bool {
	if n == nil {
		return false
	}

	return scan(l.head, l.head, func(m *node[E]) bool { return m == n }) != nil
}

// region Mutation

// Insert places v immediately before at and returns an iterator to it.
// Inserting before the head moves the head to the new element. When at is
// End(), v is appended after the last element and the head stays.
func (l *CircularList[E]) Insert(at Iterator[E], v E) Iterator[E] {
	return l.iter(l.insert(at.node, v))
}

// InsertLoop is Insert for loop iterators; an unbound at appends.
func (l *CircularList[E]) InsertLoop(at LoopIterator[E], v E) LoopIterator[E] {
	return LoopIterator[E]{node: l.insert(at.node, v)}
}

func (l *CircularList[E]) insert(at *node[E], v E) *node[E] {
	n := &node[E]{Value: v}

	if l.head == nil {
		check.OrAbort(at == nil, ErrNotEmptyLocation, "insert")
		n.prev, n.next = n, n
		l.head, l.len = n, 1
		return n
	}

	if at == nil {
		return l.link(n, l.head)
	}

	check.OrAbort(at.next != nil, ErrNotInList, "insert")
	if check.Enabled() {
		check.OrAbort(l.exist(at), ErrNotInList, "insert")
	}

	l.link(n, at)
	if at == l.head {
		l.head = n
	}

	return n
}

// link splices n in before dest.
func (l *CircularList[E]) link(n, dest *node[E]) *node[E] {
	prev := dest.prev
	prev.next, n.prev = n, prev
	n.next, dest.prev = dest, n
	l.len++
	return n
}

// Erase removes the element at and returns an iterator to its successor:
// Begin() when the head was erased, End() when the last element was erased or
// the list became empty.
func (l *CircularList[E]) Erase(at Iterator[E]) Iterator[E] {
	next, wasHead := l.erase(at.node)

	switch {
	case l.head == nil:
		return Iterator[E]{}
	case wasHead:
		return l.Begin()
	case next == l.head:
		return l.End()
	}

	return l.iter(next)
}

// EraseLoop removes the element at and returns its successor, or an unbound
// iterator when the list became empty.
func (l *CircularList[E]) EraseLoop(at LoopIterator[E]) LoopIterator[E] {
	next, _ := l.erase(at.node)
	if l.head == nil {
		return LoopIterator[E]{}
	}

	return LoopIterator[E]{node: next}
}

func (l *CircularList[E]) erase(at *node[E]) (next *node[E], wasHead bool) {
	check.OrAbort(l.head != nil, ErrEmptyList, "erase")
	// unlinked nodes have no neighbours
	check.OrAbort(at != nil && at.next != nil, ErrNotInList, "erase")
	if check.Enabled() {
		check.OrAbort(l.exist(at), ErrNotInList, "erase")
	}

	next, wasHead = at.next, at == l.head
	at.prev.next = at.next
	at.next.prev = at.prev
	at.prev, at.next = nil, nil

	l.len--
	if l.len == 0 {
		l.head = nil
	} else if wasHead {
		l.head = next
	}

	return next, wasHead
}

// Clear releases every element. The ring is broken first so the walk ends.
func (l *CircularList[E]) Clear() {
	if l.head == nil {
		return
	}

	l.head.prev.next = nil
	for n := l.head; n != nil; {
		next := n.next
		n.prev, n.next = nil, nil
		n = next
	}

	l.head, l.len = nil, 0
}

// endregion

// region Copy & move

// Clone returns a deep copy of the list. Element values are copied by
// assignment.
func (l *CircularList[E]) Clone() *CircularList[E] {
	c := &CircularList[E]{}
	c.CopyFrom(l)
	return c
}

// CopyFrom replaces the contents of l with a copy of src.
func (l *CircularList[E]) CopyFrom(src *CircularList[E]) {
	if l == src {
		return
	}

	l.Clear()
	for n, i := src.head, 0; i < src.len; n, i = n.next, i+1 {
		l.insert(nil, n.Value)
	}
}

// Move transfers the contents of l to a new list and leaves l empty.
func (l *CircularList[E]) Move() *CircularList[E] {
	m := &CircularList[E]{}
	m.MoveFrom(l)
	return m
}

// MoveFrom releases the contents of l, takes over the ring of src and leaves
// src empty. Iterators into src stay valid and now reference l.
func (l *CircularList[E]) MoveFrom(src *CircularList[E]) {
	if l == src {
		return
	}

	l.Clear()
	l.head, l.len = src.head, src.len
	src.head, src.len = nil, 0
}

func (l *CircularList[E]) Swap(other *CircularList[E]) {
	l.head, other.head = other.head, l.head
	l.len, other.len = other.len, l.len
}

// endregion

// Values returns the elements in bounded iteration order.
func (l *CircularList[E]) Values() []E {
	values := make([]E, 0, l.len)
	for it := l.Begin(); !it.Equal(l.End()); it = it.Next() {
		values = append(values, it.node.Value)
	}

	return values
}

func (l *CircularList[E]) String() string {
	return fmt.Sprint(l.Values())
}

func (l *CircularList[E]) iter(n *node[E]) Iterator[E] {
	return Iterator[E]{node: n, head: l.head}
}
