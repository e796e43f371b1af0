//go:build go1.18

package qlist

import (
	"github.com/bradenaw/qlist/internal/xlist"
)

// DeleteMid deletes the middle element of the queue, which for an even number of elements is the
// second of the two in the center. It returns false if the queue is absent or empty.
func (q *Queue) DeleteMid() bool {
	if !q.valid() || q.head.Empty() {
		return false
	}
	slow, fast := q.head.Next(), q.head.Next()
	for fast != &q.head && fast.Next() != &q.head {
		slow = slow.Next()
		fast = fast.Next().Next()
	}
	unlinkAndRelease(slow)
	return true
}

// DeleteDup deletes every element whose value equals that of a neighbor, so that each run of equal
// values disappears entirely and only values that appear once survive. Only neighbors are compared,
// so the queue should already be sorted. It returns false only if the queue is absent.
func (q *Queue) DeleteDup() bool {
	if !q.valid() {
		return false
	}
	for curr := q.head.Next(); curr != &q.head; {
		dup := false
		for next := curr.Next(); next != &q.head && elementOf(next).Value == elementOf(curr).Value; next = curr.Next() {
			unlinkAndRelease(next)
			dup = true
		}
		next := curr.Next()
		if dup {
			unlinkAndRelease(curr)
		}
		curr = next
	}
	return true
}

// Swap exchanges every two adjacent elements. A trailing unpaired element stays where it is.
func (q *Queue) Swap() {
	if !q.valid() {
		return
	}
	for first := q.head.Next(); first != &q.head && first.Next() != &q.head; first = first.Next() {
		xlist.MoveAfter(first, first.Next())
	}
}

// Reverse reverses the order of the queue in place.
func (q *Queue) Reverse() {
	if !q.valid() {
		return
	}
	q.head.Reverse()
}

// ReverseK reverses the queue in consecutive groups of k elements. A final group of fewer than k
// elements keeps its order.
func (q *Queue) ReverseK(k int) {
	if !q.valid() || q.head.Empty() || q.head.Singular() || k <= 1 {
		return
	}
	var group xlist.Node[*Element]
	anchor := &q.head
	for n := q.head.Len(); n >= k; n -= k {
		first := anchor.Next()
		last := anchor
		for i := 0; i < k; i++ {
			last = last.Next()
		}
		anchor.CutPosition(&group, last)
		group.Reverse()
		anchor.SpliceFront(&group)
		anchor = first
	}
}
