//go:build go1.18

package qlist

import (
	"strings"

	"github.com/bradenaw/qlist/internal/xlist"
)

// Element is a member of a Queue. It owns one string value and can be linked into at most one queue
// at a time.
type Element struct {
	Value string

	link xlist.Node[*Element]
}

// newElement returns a detached element holding a private copy of s. Like a C string, s ends at its
// first NUL byte, if it has one.
func newElement(s string) *Element {
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	e := &Element{Value: string([]byte(s))}
	e.link.Owner = e
	return e
}

func elementOf(n *xlist.Node[*Element]) *Element { return n.Owner }

// Release destroys an element that has been removed from its queue. The element must not be used
// afterwards.
func (e *Element) Release() {
	if e == nil {
		return
	}
	if e.link.Linked() {
		xlist.Remove(&e.link)
	}
	e.Value = ""
	e.link.Owner = nil
}

// unlinkAndRelease detaches n from its queue and destroys the element that owns it.
func unlinkAndRelease(n *xlist.Node[*Element]) {
	e := elementOf(n)
	xlist.Remove(n)
	e.Release()
}
