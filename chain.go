//go:build go1.18

package qlist

import (
	"github.com/bradenaw/juniper/xslices"

	"github.com/bradenaw/qlist/internal/xlist"
)

// Chain is an ordered collection of queues, each wrapped in a Context. It is the input to Merge.
type Chain struct {
	head   xlist.Node[*Context]
	nextID int
}

// Context is a queue's entry in a Chain.
type Context struct {
	Queue *Queue
	// ID is assigned in creation order, starting from zero.
	ID int
	// Size is the size of Queue as of the last Merge over the chain it belongs to.
	Size int

	chain *Chain
	link  xlist.Node[*Context]
}

func NewChain() *Chain {
	c := &Chain{}
	c.head.Init()
	return c
}

func (c *Chain) valid() bool { return c != nil && c.head.Linked() }

// Add appends a context holding a new, empty queue to the back of the chain.
func (c *Chain) Add() *Context {
	if !c.valid() {
		return nil
	}
	ctx := &Context{Queue: New(), ID: c.nextID, chain: c}
	ctx.link.Owner = ctx
	c.nextID++
	c.head.PushBack(&ctx.link)
	return ctx
}

func (c *Chain) Len() int {
	if !c.valid() {
		return 0
	}
	return c.head.Len()
}

// Contexts returns the chain's contexts from front to back.
func (c *Chain) Contexts() []*Context {
	if !c.valid() {
		return nil
	}
	var out []*Context
	for curr := c.head.Next(); curr != &c.head; curr = curr.Next() {
		out = append(out, curr.Owner)
	}
	return out
}

// Find returns the context with the given id, or false in the second return if there is none.
func (c *Chain) Find(id int) (*Context, bool) {
	if !c.valid() {
		return nil, false
	}
	for curr := c.head.Next(); curr != &c.head; curr = curr.Next() {
		if curr.Owner.ID == id {
			return curr.Owner, true
		}
	}
	return nil, false
}

// Remove takes ctx out of the chain and frees its queue. It does nothing if ctx does not belong to
// the chain.
func (c *Chain) Remove(ctx *Context) {
	if !c.valid() || ctx == nil || ctx.chain != c {
		return
	}
	xlist.Remove(&ctx.link)
	ctx.chain = nil
	ctx.Queue.Free()
	ctx.Queue = nil
	ctx.Size = 0
}

// Free removes every context in the chain, freeing their queues.
func (c *Chain) Free() {
	if !c.valid() {
		return
	}
	for !c.head.Empty() {
		c.Remove(c.head.Next().Owner)
	}
	c.head = xlist.Node[*Context]{}
}

// Check runs Queue.Check over the chain itself and every queue in it.
func (c *Chain) Check() error {
	if !c.valid() {
		return nil
	}
	if err := check(&c.head); err != nil {
		return err
	}
	for _, ctx := range c.Contexts() {
		if err := ctx.Queue.Check(); err != nil {
			return err
		}
	}
	return nil
}

// Merge merges every queue in the chain, each of which must already be sorted in the direction given
// by descend, into the queue of the first context. All other queues are left empty. Elements with
// equal values keep the order they had, with earlier queues in the chain coming first.
//
// Every context's Size is updated, and the size of the merged queue is returned. Merge returns 0 for
// an absent or empty chain.
func Merge(c *Chain, descend bool) int {
	if !c.valid() || c.head.Empty() {
		return 0
	}
	contexts := c.Contexts()
	var queues []*Queue
	for _, q := range xslices.Map(contexts, func(ctx *Context) *Queue { return ctx.Queue }) {
		// Queues freed out from under the chain are skipped.
		if q.valid() {
			queues = append(queues, q)
		}
	}
	if len(queues) == 0 {
		return 0
	}

	// Merge neighbors pairwise until one queue is left. The left operand always precedes the right in
	// chain order, which keeps ties stable.
	less := order(descend)
	var merged xlist.Node[*Element]
	for len(queues) > 1 {
		next := queues[:0]
		for i := 0; i < len(queues); i += 2 {
			if i+1 == len(queues) {
				next = append(next, queues[i])
				break
			}
			left, right := queues[i], queues[i+1]
			merged.Init()
			mergeTwo(&left.head, &right.head, &merged, less)
			left.head.SpliceBack(&merged)
			next = append(next, left)
		}
		queues = next
	}

	for _, ctx := range contexts {
		ctx.Size = ctx.Queue.Size()
	}
	return queues[0].Size()
}
