//go:build go1.18

// Package qlist implements a queue of strings on top of a circular doubly-linked list with a
// sentinel head, along with a set of in-place transformations over it: reversal, k-group reversal,
// pairwise swap, middle and duplicate deletion, monotonic filtering, merge sort, and a stable merge
// of many sorted queues.
//
// A Queue is owned by a single goroutine. None of its methods may be called concurrently.
//
// Every method tolerates a nil *Queue and treats it as an absent queue: predicates return false,
// counts return zero, and mutations do nothing.
package qlist

import (
	"errors"
	"fmt"

	"github.com/bradenaw/juniper/xslices"

	"github.com/bradenaw/qlist/internal/xlist"
)

var (
	// ErrBrokenLink is returned by Check when a node's neighbors do not point back at it.
	ErrBrokenLink = errors.New("qlist: broken link")
	// ErrSizeMismatch is returned by Check when walking forward and backward disagree on length.
	ErrSizeMismatch = errors.New("qlist: size mismatch")
)

// Queue is a sequence of Elements. The zero value is not usable; create queues with New.
type Queue struct {
	head xlist.Node[*Element]
}

// New returns an empty queue.
func New() *Queue {
	q := &Queue{}
	q.head.Init()
	return q
}

// valid returns false for a nil queue or one that has been freed.
func (q *Queue) valid() bool { return q != nil && q.head.Linked() }

// Free releases every element in the queue, front to back, and then the queue itself. The queue
// behaves as absent afterwards.
func (q *Queue) Free() {
	if !q.valid() {
		return
	}
	for curr := q.head.Next(); curr != &q.head; {
		next := curr.Next()
		unlinkAndRelease(curr)
		curr = next
	}
	q.head = xlist.Node[*Element]{}
}

func (q *Queue) IsEmpty() bool    { return q.valid() && q.head.Empty() }
func (q *Queue) IsSingular() bool { return q.valid() && q.head.Singular() }

// Size returns the number of elements in the queue. It takes time linear in the size of the queue.
func (q *Queue) Size() int {
	if !q.valid() {
		return 0
	}
	return q.head.Len()
}

// Front returns the first element of the queue without removing it, or nil if there is none.
func (q *Queue) Front() *Element {
	if !q.valid() || q.head.Empty() {
		return nil
	}
	return elementOf(q.head.Next())
}

// Back returns the last element of the queue without removing it, or nil if there is none.
func (q *Queue) Back() *Element {
	if !q.valid() || q.head.Empty() {
		return nil
	}
	return elementOf(q.head.Prev())
}

func (q *Queue) elements() []*Element {
	var out []*Element
	for curr := q.head.Next(); curr != &q.head; curr = curr.Next() {
		out = append(out, elementOf(curr))
	}
	return out
}

// Values returns the values in the queue from front to back.
func (q *Queue) Values() []string {
	if !q.valid() {
		return nil
	}
	return xslices.Map(q.elements(), func(e *Element) string { return e.Value })
}

// InsertHead adds a copy of s to the front of the queue. It returns false only if the queue is
// absent.
func (q *Queue) InsertHead(s string) bool {
	if !q.valid() {
		return false
	}
	e := newElement(s)
	q.head.PushFront(&e.link)
	return true
}

// InsertTail adds a copy of s to the back of the queue. It returns false only if the queue is
// absent.
func (q *Queue) InsertTail(s string) bool {
	if !q.valid() {
		return false
	}
	e := newElement(s)
	q.head.PushBack(&e.link)
	return true
}

// RemoveHead detaches and returns the first element of the queue, or nil if the queue is absent or
// empty. If sp is not empty, up to len(sp)-1 bytes of the element's value are copied into it followed
// by a terminating zero byte.
//
// The caller owns the returned element and should Release it when done.
func (q *Queue) RemoveHead(sp []byte) *Element {
	if !q.valid() || q.head.Empty() {
		return nil
	}
	return remove(q.head.Next(), sp)
}

// RemoveTail is RemoveHead for the last element of the queue.
func (q *Queue) RemoveTail(sp []byte) *Element {
	if !q.valid() || q.head.Empty() {
		return nil
	}
	return remove(q.head.Prev(), sp)
}

func remove(n *xlist.Node[*Element], sp []byte) *Element {
	e := elementOf(n)
	xlist.Remove(n)
	if len(sp) > 0 {
		k := copy(sp[:len(sp)-1], e.Value)
		sp[k] = 0
	}
	return e
}

// Check walks the queue in both directions and returns an error describing the first structural
// problem found, if any.
func (q *Queue) Check() error {
	if !q.valid() {
		return nil
	}
	return check(&q.head)
}

func check[T any](h *xlist.Node[T]) error {
	forward := 0
	for curr := h; ; curr = curr.Next() {
		if curr.Next() == nil || curr.Prev() == nil {
			return fmt.Errorf("%w: detached node at position %d", ErrBrokenLink, forward)
		}
		if curr.Next().Prev() != curr || curr.Prev().Next() != curr {
			return fmt.Errorf("%w: at position %d", ErrBrokenLink, forward)
		}
		if curr.Next() == h {
			break
		}
		forward++
	}
	backward := 0
	for curr := h.Prev(); curr != h; curr = curr.Prev() {
		backward++
		if backward > forward {
			break
		}
	}
	if forward != backward {
		return fmt.Errorf("%w: %d forward, %d backward", ErrSizeMismatch, forward, backward)
	}
	return nil
}
