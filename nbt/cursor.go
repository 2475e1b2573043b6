package nbt

import (
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Cursor is a position in a tag tree.
//
// The zero Cursor is a valid Empty cursor with no tree.
type Cursor struct {
	cell    *Cell
	current *Node
	stack   []*Node // ancestors, root first
	closed  bool
}

func newCursor(root *Node, own Ownership) *Cursor {
	return &Cursor{cell: newCell(root, own), current: root}
}

// FromNode wraps an existing raw root. Under Owning the returned cursor
// becomes responsible for releasing root. A nil root yields an Empty
// cursor.
func FromNode(root *Node, own Ownership) *Cursor {
	return newCursor(root, own)
}

// Clone returns a cursor at the same position sharing this cursor's Cell.
// The clone must be closed independently.
func (c *Cursor) Clone() *Cursor {
	out := &Cursor{cell: c.cell, current: c.current}
	if len(c.stack) > 0 {
		out.stack = append([]*Node(nil), c.stack...)
	}
	if c.cell != nil {
		c.cell.retain()
	}
	return out
}

// Close drops this cursor's reference to its Cell. When it was the last
// reference and the Cell is Owning, the whole tree is released. Closing
// twice is a no-op.
func (c *Cursor) Close() {
	if c == nil || c.closed {
		return
	}
	c.closed = true
	if c.cell != nil {
		c.cell.release()
	}
	c.current = nil
	c.stack = nil
}

// RefCount returns the number of live cursors sharing this Cell.
func (c *Cursor) RefCount() int {
	if c.cell == nil {
		return 0
	}
	return c.cell.refs
}

// SetOwnership switches the release policy of the shared Cell. It affects
// every cursor cloned from the same origin.
func (c *Cursor) SetOwnership(o Ownership) {
	if c.cell != nil {
		c.cell.policy = o
	}
}

// Ownership returns the release policy of the shared Cell.
func (c *Cursor) Ownership() Ownership {
	if c.cell == nil {
		return Borrowing
	}
	return c.cell.policy
}

// Node returns the current raw node, or nil when Empty.
func (c *Cursor) Node() *Node { return c.current }

// Root returns the root node of the Cell, or nil.
func (c *Cursor) Root() *Node {
	if c.cell == nil {
		return nil
	}
	return c.cell.root
}

// Type returns the current node's tag, or TagInvalid when Empty.
func (c *Cursor) Type() types.TagType {
	if c.current == nil {
		return types.TagInvalid
	}
	return c.current.typ
}

// IsType reports whether Type() == t.
func (c *Cursor) IsType(t types.TagType) bool { return c.Type() == t }

// Valid reports whether the cursor points at a node.
func (c *Cursor) Valid() bool { return c.current != nil }

// Equal reports whether both cursors point at the same node of the same
// tree.
func (c *Cursor) Equal(o *Cursor) bool {
	if c == nil || o == nil {
		return c == o
	}
	return c.current == o.current && c.Root() == o.Root()
}

// Depth returns the number of ancestors above the current position.
func (c *Cursor) Depth() int { return len(c.stack) }

// parentNode returns the direct ancestor, or nil at the root.
func (c *Cursor) parentNode() *Node {
	if len(c.stack) == 0 {
		return nil
	}
	return c.stack[len(c.stack)-1]
}

// scratch returns an unregistered cursor at the same node for internal
// probing. It holds no Cell reference and must not be closed.
func (c *Cursor) scratch() Cursor {
	return Cursor{cell: c.cell, current: c.current}
}
