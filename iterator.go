package circular

import (
	"github.com/snwfog/circular.go/pkg/check"
)

// Cursor is a position in a CircularList. Both Iterator and LoopIterator are
// cursors.
type Cursor[E any] interface {
	position() *node[E]
}

// region Iterator

// Iterator walks the ring once, starting from the head it was created with.
// The zero value is the none iterator.
//
// Iterators become invalid when their element is erased. An iterator created
// before the head moved keeps stopping at the old head.
type Iterator[E any] struct {
	node *node[E]
	head *node[E]
}

func (it Iterator[E]) position() *node[E] {
	return it.node
}

// Valid reports whether it references an element, i.e. it is not none.
func (it Iterator[E]) Valid() bool {
	return it.node != nil
}

// Equal reports whether both iterators reference the same element or are
// both none.
func (it Iterator[E]) Equal(o Iterator[E]) bool {
	return it.node == o.node
}

// Next returns the following position; after the last element it returns
// none.
func (it Iterator[E]) Next() Iterator[E] {
	check.OrAbort(it.node != nil, ErrInvalidPosition, "next of none")
	if it.node.next == it.head {
		return Iterator[E]{head: it.head}
	}

	return Iterator[E]{node: it.node.next, head: it.head}
}

// Prev returns the preceding position. Prev of none is the last element.
func (it Iterator[E]) Prev() Iterator[E] {
	if it.node == nil {
		check.OrAbort(it.head != nil, ErrInvalidPosition, "prev of none")
		return Iterator[E]{node: it.head.prev, head: it.head}
	}

	check.OrAbort(it.node != it.head, ErrInvalidPosition, "prev of begin")
	return Iterator[E]{node: it.node.prev, head: it.head}
}

func (it Iterator[E]) Value() E {
	check.OrAbort(it.node != nil, ErrInvalidPosition, "value")
	return it.node.Value
}

func (it Iterator[E]) Set(v E) {
	check.OrAbort(it.node != nil, ErrInvalidPosition, "set")
	it.node.Value = v
}

// Loop returns a loop iterator at the same element; none becomes unbound.
func (it Iterator[E]) Loop() LoopIterator[E] {
	return LoopIterator[E]{node: it.node}
}

// endregion

// region LoopIterator

// LoopIterator walks the ring without end. The zero value is the unbound
// iterator returned by loop searches that find nothing.
type LoopIterator[E any] struct {
	node *node[E]
}

func (it LoopIterator[E]) position() *node[E] {
	return it.node
}

// Valid reports whether it is bound to an element.
func (it LoopIterator[E]) Valid() bool {
	return it.node != nil
}

// Equal reports whether both iterators reference the same element. LoopBegin
// and LoopEnd are always equal.
func (it LoopIterator[E]) Equal(o LoopIterator[E]) bool {
	return it.node == o.node
}

// Next moves to the following element, from the last one back to the head.
func (it LoopIterator[E]) Next() LoopIterator[E] {
	check.OrAbort(it.node != nil, ErrInvalidPosition, "next of unbound")
	return LoopIterator[E]{node: it.node.next}
}

func (it LoopIterator[E]) Prev() LoopIterator[E] {
	check.OrAbort(it.node != nil, ErrInvalidPosition, "prev of unbound")
	return LoopIterator[E]{node: it.node.prev}
}

func (it LoopIterator[E]) Value() E {
	check.OrAbort(it.node != nil, ErrInvalidPosition, "value")
	return it.node.Value
}

func (it LoopIterator[E]) Set(v E) {
	check.OrAbort(it.node != nil, ErrInvalidPosition, "set")
	it.node.Value = v
}

// endregion

// Same compares a loop iterator with a bounded one. They are the same when
// they reference the same element; an unbound loop iterator is the same as
// none, which lets loop search results be checked against End().
func Same[E any](l LoopIterator[E], b Iterator[E]) bool {
	return l.node == b.node
}
