//go:build go1.18

package qlist

import (
	"github.com/bradenaw/juniper/xsort"

	"github.com/bradenaw/qlist/internal/xlist"
)

// order returns the comparison that sorts values ascending, or descending if descend is set.
func order(descend bool) xsort.Less[string] {
	less := xsort.Less[string](xsort.OrderedLess[string])
	if descend {
		return xsort.Reverse(less)
	}
	return less
}

// mergeTwo moves every element of left and right onto the back of out, in order. left and right
// must each already be sorted the same direction. On equal values left goes first, so the merge is
// stable when left holds the earlier elements.
func mergeTwo(left, right, out *xlist.Node[*Element], less xsort.Less[string]) {
	for !left.Empty() && !right.Empty() {
		a := elementOf(left.Next()).Value
		b := elementOf(right.Next()).Value
		if less(b, a) {
			out.MoveToBack(right.Next())
		} else {
			out.MoveToBack(left.Next())
		}
	}
	out.SpliceBack(left)
	out.SpliceBack(right)
}

// Sort sorts the queue by value in ascending order, or descending order if descend is set. The sort
// is stable.
func (q *Queue) Sort(descend bool) {
	if !q.valid() {
		return
	}
	mergeSort(&q.head, order(descend))
}

func mergeSort(h *xlist.Node[*Element], less xsort.Less[string]) {
	if h.Empty() || h.Singular() {
		return
	}
	slow, fast := h, h
	for {
		fast = fast.Next().Next()
		slow = slow.Next()
		if fast == h || fast.Next() == h {
			break
		}
	}

	var left, right xlist.Node[*Element]
	h.CutPosition(&left, slow)
	right.Init()
	right.SpliceBack(h)

	mergeSort(&left, less)
	mergeSort(&right, less)
	mergeTwo(&left, &right, h, less)
}

// Ascend deletes every element that has a strictly smaller element anywhere after it, leaving the
// queue in ascending order. It returns the resulting size.
func (q *Queue) Ascend() int {
	return q.filterMonotonic(order(false))
}

// Descend deletes every element that has a strictly greater element anywhere after it, leaving the
// queue in descending order. It returns the resulting size.
func (q *Queue) Descend() int {
	return q.filterMonotonic(order(true))
}

// filterMonotonic walks back to front holding the last value kept. An element is deleted if that
// value sorts strictly before it under less, otherwise it is kept and becomes the new bound.
func (q *Queue) filterMonotonic(less xsort.Less[string]) int {
	if !q.valid() {
		return 0
	}
	if q.head.Empty() || q.head.Singular() {
		return q.Size()
	}
	bound := elementOf(q.head.Prev()).Value
	n := 1
	for curr := q.head.Prev().Prev(); curr != &q.head; {
		prev := curr.Prev()
		if value := elementOf(curr).Value; less(bound, value) {
			unlinkAndRelease(curr)
		} else {
			bound = value
			n++
		}
		curr = prev
	}
	return n
}
