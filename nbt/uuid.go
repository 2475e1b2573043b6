package nbt

import (
	"encoding/binary"
	"fmt"

	"github.com/google/uuid"

	"github.com/joshuapare/nbtkit/pkg/types"
)

// UUIDs are stored the way Minecraft does since 1.16: an IntArray of four
// big-endian words, most significant first.

func uuidInts(u uuid.UUID) []int32 {
	out := make([]int32, 4)
	for i := range out {
		out[i] = int32(binary.BigEndian.Uint32(u[i*4:]))
	}
	return out
}

// NewUUID creates an IntArray tree holding u.
func NewUUID(u uuid.UUID, name Name, own Ownership) *Cursor {
	return newLeaf(types.TagIntArray, name, own, func(n *Node) { n.ints = uuidInts(u) })
}

// UUID decodes an IntArray of length 4.
func (c *Cursor) UUID() (uuid.UUID, error) {
	n, err := c.checked(types.TagIntArray)
	if err != nil {
		return uuid.Nil, err
	}
	if len(n.ints) != 4 {
		return uuid.Nil, types.Wrap(types.ErrTypeMismatch, fmt.Sprintf("uuid needs 4 ints, have %d", len(n.ints)), nil)
	}
	var u uuid.UUID
	for i, w := range n.ints {
		binary.BigEndian.PutUint32(u[i*4:], uint32(w))
	}
	return u, nil
}

// SetUUID replaces an IntArray payload with u.
func (c *Cursor) SetUUID(u uuid.UUID) error {
	n, err := c.checked(types.TagIntArray)
	if err != nil {
		return err
	}
	n.ints = uuidInts(u)
	return nil
}
