package nbt

import (
	"github.com/joshuapare/nbtkit/internal/logger"
)

// Ownership is the release policy of a Cell.
type Ownership int

const (
	// Owning frees the whole root subtree when the last cursor is closed.
	Owning Ownership = iota
	// Borrowing never frees; the node's lifetime is governed elsewhere,
	// typically by the tree it is attached to.
	Borrowing
)

func (o Ownership) String() string {
	if o == Borrowing {
		return "borrowing"
	}
	return "owning"
}

// Cell is the reference-counted lifetime holder for a tree's root. Every
// Cursor cloned from another shares its Cell. The counter is not
// synchronized; cursors sharing a Cell must not be used concurrently.
type Cell struct {
	root   *Node
	policy Ownership
	refs   int
	freed  bool
}

func newCell(root *Node, own Ownership) *Cell {
	return &Cell{root: root, policy: own, refs: 1}
}

func (c *Cell) retain() { c.refs++ }

// release drops one reference and frees the root subtree exactly once when
// the count reaches zero under the Owning policy.
func (c *Cell) release() {
	if c.refs == 0 {
		return
	}
	c.refs--
	if c.refs > 0 || c.policy != Owning || c.freed || c.root == nil {
		return
	}
	c.freed = true
	if c.root.released {
		return
	}
	logger.L.Debug("releasing tree", "root", c.root.typ.String())
	c.root.release()
}
