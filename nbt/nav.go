package nbt

import (
	"fmt"

	"github.com/joshuapare/nbtkit/pkg/types"
)

// Next moves to the following sibling. Moving past the last sibling lands
// on Empty and still reports true; it reports false only when the cursor
// was already Empty.
func (c *Cursor) Next() bool {
	if c.current == nil {
		return false
	}
	c.current = c.current.next
	return true
}

// Prev moves to the preceding sibling, with the same Empty rules as Next.
func (c *Cursor) Prev() bool {
	if c.current == nil {
		return false
	}
	c.current = c.current.prev
	return true
}

// Child descends to the first child of a List or Compound. An empty
// container leaves the cursor Empty with the container on the stack, so
// Parent returns to it.
func (c *Cursor) Child() error {
	n := c.current
	if n == nil {
		return types.Wrap(types.ErrInvalidOperation, "child of empty cursor", nil)
	}
	if !n.typ.IsContainer() {
		return types.Wrap(types.ErrInvalidOperation, fmt.Sprintf("%s has no children", n.typ), nil)
	}
	c.stack = append(c.stack, n)
	c.current = n.first
	return nil
}

// ChildKey descends to the child with the given key. On a miss the cursor
// is left where it was.
func (c *Cursor) ChildKey(key string) error {
	if err := c.Child(); err != nil {
		return err
	}
	for n := c.current; n != nil; n = n.next {
		if n.hasKey && n.key == key {
			c.current = n
			return nil
		}
	}
	c.pop()
	return types.Wrap(types.ErrNotFound, fmt.Sprintf("no child %q", key), nil)
}

// ChildIndex descends to the i-th child (zero based). On a miss the
// cursor is left where it was.
func (c *Cursor) ChildIndex(i int) error {
	if err := c.Child(); err != nil {
		return err
	}
	if i >= 0 {
		n := c.current
		for j := 0; j < i && n != nil; j++ {
			n = n.next
		}
		if n != nil {
			c.current = n
			return nil
		}
	}
	c.pop()
	return types.Wrap(types.ErrNotFound, fmt.Sprintf("no child at index %d", i), nil)
}

// Parent moves to the direct ancestor. At the root it returns ErrNoParent
// and does not move.
func (c *Cursor) Parent() error {
	if len(c.stack) == 0 {
		return types.ErrNoParent
	}
	c.pop()
	return nil
}

// GotoRoot moves to the Cell root and clears the ancestor stack.
func (c *Cursor) GotoRoot() {
	c.current = c.Root()
	c.stack = c.stack[:0]
}

// MakeInvalid moves to Empty. The ancestor stack is kept, so Parent still
// works afterwards.
func (c *Cursor) MakeInvalid() {
	c.current = nil
}

func (c *Cursor) pop() {
	last := len(c.stack) - 1
	c.current = c.stack[last]
	c.stack = c.stack[:last]
}
