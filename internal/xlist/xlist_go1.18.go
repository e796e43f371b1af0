//go:build go1.18

// Package xlist is a circular doubly-linked list held together by a sentinel node.
//
// A list is named by its sentinel: a Node whose next and prev point back to itself when the list is
// empty. Nodes are meant to be embedded in the value they link, with Owner pointing back at that
// value so that walking the list can recover it.
//
// None of the functions here are safe for concurrent use.
package xlist

type Node[T any] struct {
	prev  *Node[T]
	next  *Node[T]
	Owner T
}

// Init makes n an empty list, discarding whatever it was linked to before.
func (n *Node[T]) Init() { n.next = n; n.prev = n }

func (n *Node[T]) Next() *Node[T] { return n.next }
func (n *Node[T]) Prev() *Node[T] { return n.prev }

// Linked returns true if n is part of a list, including when n is an empty sentinel.
func (n *Node[T]) Linked() bool { return n.next != nil }

func (h *Node[T]) Empty() bool    { return h.next == h }
func (h *Node[T]) Singular() bool { return h.next != h && h.next == h.prev }

func (h *Node[T]) Len() int {
	n := 0
	for curr := h.next; curr != h; curr = curr.next {
		n++
	}
	return n
}

func link[T any](n, prev, next *Node[T]) {
	next.prev = n
	n.next = next
	n.prev = prev
	prev.next = n
}

func unlink[T any](n *Node[T]) {
	n.prev.next = n.next
	n.next.prev = n.prev
}

// PushFront links n directly after h.
func (h *Node[T]) PushFront(n *Node[T]) { link(n, h, h.next) }

// PushBack links n directly before h, which is the back when h is a sentinel.
func (h *Node[T]) PushBack(n *Node[T]) { link(n, h.prev, h) }

// Remove unlinks n from whatever list it is in. n's links are cleared.
func Remove[T any](n *Node[T]) {
	unlink(n)
	n.next = nil
	n.prev = nil
}

// MoveAfter moves n to directly after mark. n and mark may be in different lists.
func MoveAfter[T any](n *Node[T], mark *Node[T]) {
	if n == mark || mark.next == n {
		return
	}
	unlink(n)
	link(n, mark, mark.next)
}

// MoveToBack moves n from whatever list it is in to the back of h.
func (h *Node[T]) MoveToBack(n *Node[T]) {
	unlink(n)
	h.PushBack(n)
}

func splice[T any](list, prev, next *Node[T]) {
	first := list.next
	last := list.prev

	first.prev = prev
	prev.next = first

	last.next = next
	next.prev = last
}

// SpliceFront moves every node of list to directly after h, in order. list is left empty.
func (h *Node[T]) SpliceFront(list *Node[T]) {
	if list.Empty() {
		return
	}
	splice(list, h, h.next)
	list.Init()
}

// SpliceBack moves every node of list to directly before h, in order. list is left empty.
func (h *Node[T]) SpliceBack(list *Node[T]) {
	if list.Empty() {
		return
	}
	splice(list, h.prev, h)
	list.Init()
}

// CutPosition moves the nodes from h.Next() through entry inclusive into list, which is
// reinitialized first. entry must be reachable from h by following Next, and must not be h itself
// unless the cut is meant to be empty.
//
// h does not need to be a sentinel: cutting after an element node detaches the run that follows it,
// which is how a segment is lifted out of the middle of a list.
func (h *Node[T]) CutPosition(list *Node[T], entry *Node[T]) {
	list.Init()
	if h.Empty() || entry == h {
		return
	}
	rest := entry.next

	list.next = h.next
	list.next.prev = list
	list.prev = entry
	entry.next = list

	h.next = rest
	rest.prev = h
}

// Reverse reverses the order of every node in the list named by h, in place.
func (h *Node[T]) Reverse() {
	curr := h
	for {
		next := curr.next
		curr.next, curr.prev = curr.prev, next
		curr = next
		if curr == h {
			return
		}
	}
}
