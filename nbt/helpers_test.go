package nbt

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/pkg/types"
)

// buildSample returns an owning cursor at the root of
//
//	{ a: 1b, b: "two", l: [10, 20, 30], c: { d: 4L } }
func buildSample(t *testing.T) *Cursor {
	t.Helper()
	root := NewCompound(NoKey, Owning)

	add := func(parent *Cursor, child *Cursor) {
		t.Helper()
		require.NoError(t, parent.InsertBefore(nil, child))
		child.Close()
	}

	add(root, NewByte(1, Key("a"), Borrowing))
	add(root, NewString("two", Key("b"), Borrowing))

	list := NewList(Key("l"), Borrowing)
	for _, v := range []int32{10, 20, 30} {
		add(list, NewInt(v, NoKey, Borrowing))
	}
	add(root, list)

	inner := NewCompound(Key("c"), Borrowing)
	add(inner, NewLong(4, Key("d"), Borrowing))
	add(root, inner)
	return root
}

// requireLinks checks the sibling-link invariants of every container
// under n.
func requireLinks(t *testing.T, n *Node) {
	t.Helper()
	if n.first != nil {
		require.Nil(t, n.first.prev, "head of %s chain has prev", n.typ)
	}
	for ch := n.first; ch != nil; ch = ch.next {
		if ch.next != nil {
			require.Same(t, ch, ch.next.prev)
		}
		require.False(t, ch.released)
		if ch.typ.IsContainer() {
			requireLinks(t, ch)
		}
	}
}

func childKeys(n *Node) []string {
	var keys []string
	for ch := n.first; ch != nil; ch = ch.next {
		keys = append(keys, ch.key)
	}
	return keys
}

func childInts(n *Node) []int64 {
	var vals []int64
	for ch := n.first; ch != nil; ch = ch.next {
		vals = append(vals, ch.i)
	}
	return vals
}

func mustType(t *testing.T, c *Cursor, want types.TagType) {
	t.Helper()
	require.Equal(t, want, c.Type())
}
