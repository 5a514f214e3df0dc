package circular

import (
	"github.com/snwfog/circular.go/pkg/check"
	"github.com/snwfog/circular.go/pkg/identify"
)

// region Bounded

// FindIf returns the first position in [begin, end) whose element satisfies
// pred, or end.
func FindIf[E any](begin, end Iterator[E], pred func(E) bool) Iterator[E] {
	check.OrAbort(pred != nil, ErrNilFunc, "find if")
	for it := begin; !it.Equal(end); it = it.Next() {
		if pred(it.node.Value) {
			return it
		}
	}

	return end
}

func Find[E comparable](begin, end Iterator[E], v E) Iterator[E] {
	return FindIf(begin, end, func(e E) bool { return e == v })
}

// FindKey returns the first position whose element has the identity key, as
// computed by identify.Key.
func FindKey[E any](begin, end Iterator[E], key uint64) Iterator[E] {
	return FindIf(begin, end, func(e E) bool { return identify.Key(e) == key })
}

// endregion

// region Loop

// scan visits nodes from begin until it reaches end, going once around the
// ring when begin and end coincide, and returns the first node for which
// visit is true. A nil end is taken as begin. An end that is not on the ring
// of begin, or an unlinked begin, ends the scan after at most one circuit.
func scan[E any](begin, end *node[E], visit func(*node[E]) bool) *node[E] {
	if begin == nil || begin.next == nil {
		return nil
	}

	if end == nil {
		end = begin
	}

	// true only until the first step, so the second arrival at end stops
	wrapped := begin == end
	for n := begin; n != end || wrapped; n = n.next {
		if visit(n) {
			return n
		}

		wrapped = false
		if n.next == begin {
			break
		}
	}

	return nil
}

// LoopFindIf returns the first position from begin to end whose element
// satisfies pred. When begin equals end, every element is tested exactly once.
// When nothing matches, the result is unbound, which is Same as End().
func LoopFindIf[E any](begin, end LoopIterator[E], pred func(E) bool) LoopIterator[E] {
	check.OrAbort(pred != nil, ErrNilFunc, "loop find if")
	return LoopIterator[E]{node: scan(begin.node, end.node, func(n *node[E]) bool {
		return pred(n.Value)
	})}
}

func LoopFind[E comparable](begin, end LoopIterator[E], v E) LoopIterator[E] {
	return LoopFindIf(begin, end, func(e E) bool { return e == v })
}

func LoopFindKey[E any](begin, end LoopIterator[E], key uint64) LoopIterator[E] {
	return LoopFindIf(begin, end, func(e E) bool { return identify.Key(e) == key })
}

// LoopAdjacentFind returns the position of the first element p for which
// pred(p, next(p)) holds. When first equals last all pairs of the ring are
// tested, including the last element with the first one. Otherwise the pair
// ending at last is not tested.
func LoopAdjacentFind[E any](first, last LoopIterator[E], pred func(a, b E) bool) LoopIterator[E] {
	check.OrAbort(pred != nil, ErrNilFunc, "loop adjacent find")
	whole := last.node == nil || first.node == last.node
	return LoopIterator[E]{node: scan(first.node, last.node, func(n *node[E]) bool {
		return (whole || n.next != last.node) && pred(n.Value, n.next.Value)
	})}
}

// LoopForEach calls fn with a pointer to every element from first to last,
// going once around the ring when they coincide.
func LoopForEach[E any](first, last LoopIterator[E], fn func(*E)) {
	check.OrAbort(fn != nil, ErrNilFunc, "loop for each")
	scan(first.node, last.node, func(n *node[E]) bool {
		fn(&n.Value)
		return false
	})
}

// endregion
