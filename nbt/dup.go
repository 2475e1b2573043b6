package nbt

import (
	"fmt"

	"github.com/joshuapare/nbtkit/pkg/types"
)

// Dup deep-copies the subtree at the current node into a new standalone
// tree with the given ownership. The copy shares no storage with the
// source and keeps its structure as is, sibling order and keys included.
func (c *Cursor) Dup(own Ownership) (*Cursor, error) {
	n := c.current
	if n == nil {
		return nil, invalidOp("dup: cursor is empty")
	}
	out, err := copySubtree(n)
	if err != nil {
		return nil, fmt.Errorf("dup %s: %w", c.Path(), err)
	}
	return newCursor(out, own), nil
}

// copySubtree copies n and its descendants, linking each child copy
// behind the previous one.
func copySubtree(n *Node) (*Node, error) {
	if n.released {
		return nil, types.ErrReleased
	}
	if !n.typ.IsContainer() {
		return n.cloneLeaf(), nil
	}
	out := NewNode(n.typ, Name{s: n.key, ok: n.hasKey})
	out.elem = n.elem
	var tail *Node
	for ch := n.first; ch != nil; ch = ch.next {
		dup, err := copySubtree(ch)
		if err != nil {
			return nil, err
		}
		dup.prev = tail
		if tail == nil {
			out.first = dup
		} else {
			tail.next = dup
		}
		tail = dup
	}
	return out, nil
}
