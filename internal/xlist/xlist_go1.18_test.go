//go:build go1.18

package xlist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newList(values ...int) *Node[int] {
	var h Node[int]
	h.Init()
	for _, v := range values {
		h.PushBack(&Node[int]{Owner: v})
	}
	return &h
}

func requireList(t *testing.T, h *Node[int], expected ...int) {
	t.Helper()

	var forward []int
	for curr := h.Next(); curr != h; curr = curr.Next() {
		require.Same(t, curr, curr.Next().Prev())
		require.Same(t, curr, curr.Prev().Next())
		forward = append(forward, curr.Owner)
		require.LessOrEqual(t, len(forward), len(expected), "list longer than expected: %v", forward)
	}
	var backward []int
	for curr := h.Prev(); curr != h; curr = curr.Prev() {
		backward = append([]int{curr.Owner}, backward...)
		require.LessOrEqual(t, len(backward), len(expected))
	}

	if len(expected) == 0 {
		require.Empty(t, forward)
		require.True(t, h.Empty())
		return
	}
	require.Equal(t, expected, forward)
	require.Equal(t, expected, backward)
	require.Equal(t, len(expected), h.Len())
}

func TestEmptyAndSingular(t *testing.T) {
	h := newList()
	require.True(t, h.Empty())
	require.False(t, h.Singular())
	require.True(t, h.Linked())
	require.Equal(t, 0, h.Len())

	h.PushBack(&Node[int]{Owner: 1})
	require.False(t, h.Empty())
	require.True(t, h.Singular())

	h.PushBack(&Node[int]{Owner: 2})
	require.False(t, h.Singular())
}

func TestPushFrontBack(t *testing.T) {
	h := newList()
	for i := 0; i < 5; i++ {
		h.PushFront(&Node[int]{Owner: i})
	}
	requireList(t, h, 4, 3, 2, 1, 0)

	h.PushBack(&Node[int]{Owner: 9})
	requireList(t, h, 4, 3, 2, 1, 0, 9)
}

func TestRemove(t *testing.T) {
	h := newList(0, 1, 2, 3)

	Remove(h.Next().Next())
	requireList(t, h, 0, 2, 3)

	back := h.Prev()
	Remove(back)
	require.False(t, back.Linked())
	requireList(t, h, 0, 2)

	Remove(h.Next())
	Remove(h.Next())
	requireList(t, h)
}

func TestMoveAfter(t *testing.T) {
	h := newList(0, 1, 2, 3)
	first := h.Next()

	MoveAfter(first, first.Next())
	requireList(t, h, 1, 0, 2, 3)

	// Already in place.
	MoveAfter(first, h.Next())
	requireList(t, h, 1, 0, 2, 3)

	MoveAfter(h.Prev(), h)
	requireList(t, h, 3, 1, 0, 2)
}

func TestMoveToBack(t *testing.T) {
	a := newList(0, 1)
	b := newList(5)

	b.MoveToBack(a.Next())
	requireList(t, a, 1)
	requireList(t, b, 5, 0)

	a.MoveToBack(a.Next())
	requireList(t, a, 1)
}

func TestSplice(t *testing.T) {
	h := newList(3, 4)
	front := newList(1, 2)
	back := newList(5, 6)

	h.SpliceFront(front)
	h.SpliceBack(back)
	requireList(t, h, 1, 2, 3, 4, 5, 6)
	requireList(t, front)
	requireList(t, back)

	h.SpliceBack(newList())
	requireList(t, h, 1, 2, 3, 4, 5, 6)
}

func TestCutPosition(t *testing.T) {
	h := newList(0, 1, 2, 3, 4)
	var left Node[int]

	h.CutPosition(&left, h.Next().Next())
	requireList(t, &left, 0, 1)
	requireList(t, h, 2, 3, 4)

	// Cutting at the sentinel itself yields nothing.
	h.CutPosition(&left, h)
	requireList(t, &left)
	requireList(t, h, 2, 3, 4)

	h.CutPosition(&left, h.Prev())
	requireList(t, &left, 2, 3, 4)
	requireList(t, h)

	h.CutPosition(&left, h)
	requireList(t, &left)
}

func TestCutPositionFromElement(t *testing.T) {
	h := newList(0, 1, 2, 3, 4)
	anchor := h.Next()
	var mid Node[int]

	anchor.CutPosition(&mid, anchor.Next().Next().Next())
	requireList(t, &mid, 1, 2, 3)
	requireList(t, h, 0, 4)

	mid.Reverse()
	anchor.SpliceFront(&mid)
	requireList(t, h, 0, 3, 2, 1, 4)
}

func TestReverse(t *testing.T) {
	h := newList()
	h.Reverse()
	requireList(t, h)

	h = newList(1)
	h.Reverse()
	requireList(t, h, 1)

	h = newList(1, 2, 3, 4)
	h.Reverse()
	requireList(t, h, 4, 3, 2, 1)
	h.Reverse()
	requireList(t, h, 1, 2, 3, 4)
}
