package nbt

import (
	"fmt"

	"github.com/joshuapare/nbtkit/pkg/types"
)

func newLeaf(t types.TagType, name Name, own Ownership, set func(*Node)) *Cursor {
	n := NewNode(t, name)
	set(n)
	return newCursor(n, own)
}

// NewByte creates a standalone Byte tree.
func NewByte(v int8, name Name, own Ownership) *Cursor {
	return newLeaf(types.TagByte, name, own, func(n *Node) { n.i = int64(v) })
}

// NewShort creates a standalone Short tree.
func NewShort(v int16, name Name, own Ownership) *Cursor {
	return newLeaf(types.TagShort, name, own, func(n *Node) { n.i = int64(v) })
}

// NewInt creates a standalone Int tree.
func NewInt(v int32, name Name, own Ownership) *Cursor {
	return newLeaf(types.TagInt, name, own, func(n *Node) { n.i = int64(v) })
}

// NewLong creates a standalone Long tree.
func NewLong(v int64, name Name, own Ownership) *Cursor {
	return newLeaf(types.TagLong, name, own, func(n *Node) { n.i = v })
}

// NewFloat creates a standalone Float tree.
func NewFloat(v float32, name Name, own Ownership) *Cursor {
	return newLeaf(types.TagFloat, name, own, func(n *Node) { n.f = float64(v) })
}

// NewDouble creates a standalone Double tree.
func NewDouble(v float64, name Name, own Ownership) *Cursor {
	return newLeaf(types.TagDouble, name, own, func(n *Node) { n.f = v })
}

// NewString creates a standalone String tree.
func NewString(v string, name Name, own Ownership) *Cursor {
	return newLeaf(types.TagString, name, own, func(n *Node) { n.str = v })
}

// NewByteArray creates a standalone ByteArray tree holding a copy of v.
func NewByteArray(v []byte, name Name, own Ownership) *Cursor {
	return newLeaf(types.TagByteArray, name, own, func(n *Node) {
		n.bytes = append(make([]byte, 0, len(v)), v...)
	})
}

// NewIntArray creates a standalone IntArray tree holding a copy of v.
func NewIntArray(v []int32, name Name, own Ownership) *Cursor {
	return newLeaf(types.TagIntArray, name, own, func(n *Node) {
		n.ints = append(make([]int32, 0, len(v)), v...)
	})
}

// NewLongArray creates a standalone LongArray tree holding a copy of v.
func NewLongArray(v []int64, name Name, own Ownership) *Cursor {
	return newLeaf(types.TagLongArray, name, own, func(n *Node) {
		n.longs = append(make([]int64, 0, len(v)), v...)
	})
}

// NewCompound creates an empty Compound.
func NewCompound(name Name, own Ownership) *Cursor {
	return newCursor(NewNode(types.TagCompound, name), own)
}

// NewList creates an empty List. Its element type is fixed by the first
// element inserted.
func NewList(name Name, own Ownership) *Cursor {
	return newCursor(NewNode(types.TagList, name), own)
}

// NewTag creates a node of type t holding the zero value for that type.
func NewTag(t types.TagType, name Name, own Ownership) (*Cursor, error) {
	if !t.Valid() {
		return nil, types.Wrap(types.ErrInvalidOperation, fmt.Sprintf("cannot create %s tag", t), nil)
	}
	n := NewNode(t, name)
	switch t {
	case types.TagByteArray:
		n.bytes = []byte{}
	case types.TagIntArray:
		n.ints = []int32{}
	case types.TagLongArray:
		n.longs = []int64{}
	}
	return newCursor(n, own), nil
}
