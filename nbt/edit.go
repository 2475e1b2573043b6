package nbt

import (
	"fmt"

	"github.com/joshuapare/nbtkit/pkg/types"
)

func invalidOp(format string, args ...any) error {
	return types.Wrap(types.ErrInvalidOperation, fmt.Sprintf(format, args...), nil)
}

// container returns the current node if it can take children.
func (c *Cursor) container(op string) (*Node, error) {
	p := c.current
	switch {
	case p == nil:
		return nil, invalidOp("%s: cursor is empty", op)
	case p.released:
		return nil, types.ErrReleased
	case !p.typ.IsContainer():
		return nil, invalidOp("%s: %s is not a container", op, p.typ)
	}
	return p, nil
}

// admit checks that n may become a child of p. Insertion additionally
// requires n to be unlinked and, in a Compound, to carry a key no sibling
// already uses.
func (c *Cursor) admit(op string, p, n *Node, insert bool) error {
	if n.released {
		return types.ErrReleased
	}
	if n == p || n == c.Root() {
		return invalidOp("%s: node is an ancestor of the target", op)
	}
	for _, a := range c.stack {
		if a == n {
			return invalidOp("%s: node is an ancestor of the target", op)
		}
	}
	if p.typ == types.TagCompound && !n.hasKey {
		return invalidOp("%s: compound children need a key", op)
	}
	if !insert {
		return nil
	}
	if n.prev != nil || n.next != nil {
		return invalidOp("%s: node is already linked", op)
	}
	switch p.typ {
	case types.TagCompound:
		for ch := p.first; ch != nil; ch = ch.next {
			if ch == n {
				return invalidOp("%s: node is already linked", op)
			}
			if ch.hasKey && ch.key == n.key {
				return invalidOp("%s: duplicate key %q", op, n.key)
			}
		}
	case types.TagList:
		if p.first == n {
			return invalidOp("%s: node is already linked", op)
		}
		if p.first != nil && p.first.typ != n.typ {
			return invalidOp("%s: list of %s cannot hold %s", op, p.first.typ, n.typ)
		}
	}
	return nil
}

// admitChain runs admit on every node of the chain starting at head and
// checks the chain against itself: unique keys in a Compound, one element
// type in a List.
func (c *Cursor) admitChain(p, head *Node) error {
	var seen map[string]bool
	if p.typ == types.TagCompound {
		seen = make(map[string]bool)
	}
	for m := head; m != nil; m = m.next {
		if err := c.admit("prepend", p, m, false); err != nil {
			return err
		}
		switch p.typ {
		case types.TagCompound:
			if seen[m.key] {
				return invalidOp("prepend: duplicate key %q", m.key)
			}
			seen[m.key] = true
		case types.TagList:
			if m.typ != head.typ {
				return invalidOp("prepend: list of %s cannot hold %s", head.typ, m.typ)
			}
		}
	}
	return nil
}

func nodeOf(c *Cursor) *Node {
	if c == nil {
		return nil
	}
	return c.current
}

// Prepend makes child's node the first child of the current container.
// The container's previous chain is dropped from the tree without being
// released; child's own sibling chain comes along, and every node of it
// is checked as if it were inserted.
//
// A standalone child should be Borrowing (or switched with SetOwnership)
// once attached, since the tree now governs its lifetime.
func (c *Cursor) Prepend(child *Cursor) error {
	p, err := c.container("prepend")
	if err != nil {
		return err
	}
	n := nodeOf(child)
	if n == nil {
		return invalidOp("prepend: child is empty")
	}
	if n.prev != nil {
		return invalidOp("prepend: child is not the head of its chain")
	}
	if err := c.admitChain(p, n); err != nil {
		return err
	}
	p.first = n
	if p.typ == types.TagList {
		p.elem = n.typ
	}
	return nil
}

// InsertAfter links node directly after sibling among the current
// container's children. A nil or Empty sibling inserts at the head.
func (c *Cursor) InsertAfter(sibling, node *Cursor) error {
	p, n, sib, err := c.prepareInsert("insert after", sibling, node)
	if err != nil {
		return err
	}
	if sib == nil {
		n.next = p.first
		if p.first != nil {
			p.first.prev = n
		}
		p.first = n
	} else {
		n.prev = sib
		n.next = sib.next
		if sib.next != nil {
			sib.next.prev = n
		}
		sib.next = n
	}
	c.noteElem(p, n)
	return nil
}

// InsertBefore links node directly before sibling among the current
// container's children. A nil or Empty sibling appends at the tail.
func (c *Cursor) InsertBefore(sibling, node *Cursor) error {
	p, n, sib, err := c.prepareInsert("insert before", sibling, node)
	if err != nil {
		return err
	}
	if sib == nil {
		tail := p.tail()
		n.prev = tail
		if tail == nil {
			p.first = n
		} else {
			tail.next = n
		}
	} else {
		n.next = sib
		n.prev = sib.prev
		if sib.prev != nil {
			sib.prev.next = n
		} else {
			p.first = n
		}
		sib.prev = n
	}
	c.noteElem(p, n)
	return nil
}

func (c *Cursor) prepareInsert(op string, sibling, node *Cursor) (p, n, sib *Node, err error) {
	if p, err = c.container(op); err != nil {
		return nil, nil, nil, err
	}
	if n = nodeOf(node); n == nil {
		return nil, nil, nil, invalidOp("%s: node is empty", op)
	}
	if sib = nodeOf(sibling); sib != nil && !p.hasChild(sib) {
		return nil, nil, nil, invalidOp("%s: sibling is not a child of the target", op)
	}
	if err = c.admit(op, p, n, true); err != nil {
		return nil, nil, nil, err
	}
	return p, n, sib, nil
}

func (c *Cursor) noteElem(p, n *Node) {
	if p.typ == types.TagList {
		p.elem = n.typ
	}
}

// ChildCount returns the number of direct children of the current node,
// 0 when Empty or a leaf.
func (c *Cursor) ChildCount() int {
	if c.current == nil {
		return 0
	}
	return c.current.ChildCount()
}

// RemoveKey detaches and releases the child with the given key.
func (c *Cursor) RemoveKey(key string) error {
	if _, err := c.container("remove"); err != nil {
		return err
	}
	scan := c.scratch()
	if err := scan.ChildKey(key); err != nil {
		return err
	}
	c.removeChild(scan.current)
	return nil
}

// RemoveIndex detaches and releases the i-th child.
func (c *Cursor) RemoveIndex(i int) error {
	if _, err := c.container("remove"); err != nil {
		return err
	}
	scan := c.scratch()
	if err := scan.ChildIndex(i); err != nil {
		return err
	}
	c.removeChild(scan.current)
	return nil
}

func (c *Cursor) removeChild(n *Node) {
	p := c.current
	p.detach(n)
	n.release()
	if p.typ == types.TagList && p.first == nil {
		p.elem = n.typ
	}
}

// RemoveChildren releases every child of the current node. The node
// itself stays, childless. No-op when Empty or a leaf.
func (c *Cursor) RemoveChildren() {
	p := c.current
	if p == nil {
		return
	}
	for p.first != nil {
		ch := p.first
		p.detach(ch)
		ch.release()
	}
}
