// Package demo holds the sample pairings used by layoutctl.
package demo

import (
	"github.com/rawbytedev/intrusive"
)

// Link is the intrusive field threaded through a Chain. It owns the next
// node, in field view.
type Link struct {
	next *intrusive.Owned[Link]
}

// Node is a container carrying a Link.
type Node struct {
	Value int
	Name  string
	Link  Link
}

// Header and Record exercise nested paths.
type Header struct {
	Seq  uint64
	Link Link
}

type Record struct {
	Flags  uint8
	Header Header
	Data   [16]byte
}

var (
	NodeLink   = intrusive.MustDeclare[Node, Link]("Link")
	RecordLink = intrusive.MustDeclare[Record, Link]("Header.Link")
	RecordSeq  = intrusive.MustDeclare[Record, uint64]("Header.Seq")
)

// Chain is a singly linked list of field view handles. It only knows Link;
// callers get their containers back through a Translator.
type Chain struct {
	head, tail *intrusive.Owned[Link]
	n          int
}

func NewChain() *Chain { return &Chain{} }

func (c *Chain) Len() int { return c.n }

// PushBack takes over l.
func (c *Chain) PushBack(l *intrusive.Owned[Link]) {
	l.Get().next = nil
	if c.tail == nil {
		c.head = l
	} else {
		c.tail.Get().next = l
	}
	c.tail = l
	c.n++
}

// PopFront hands back the first handle, or nil when empty.
func (c *Chain) PopFront() *intrusive.Owned[Link] {
	o := c.head
	if o == nil {
		return nil
	}
	link := o.Get()
	c.head, link.next = link.next, nil
	if c.head == nil {
		c.tail = nil
	}
	c.n--
	return o
}

// Walk calls fn with each handle in order until fn returns false. fn may
// borrow the handle but must not transfer it.
func (c *Chain) Walk(fn func(*intrusive.Owned[Link]) bool) {
	for o := c.head; o != nil; o = o.Get().next {
		if !fn(o) {
			return
		}
	}
}

// BuildNodes pushes one node per value and returns the chain.
func BuildNodes(values []int) *Chain {
	c := NewChain()
	for _, v := range values {
		c.PushBack(NodeLink.IntoField(intrusive.Take(&Node{Value: v})))
	}
	return c
}

// DrainValues empties c, releasing every node and returning their values in order.
func DrainValues(c *Chain) []int {
	out := make([]int, 0, c.Len())
	for o := c.PopFront(); o != nil; o = c.PopFront() {
		out = append(out, NodeLink.Release(o).Value)
	}
	return out
}
