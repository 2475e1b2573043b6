package nbt

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/pkg/types"
)

func TestScalarConstructors_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		c    *Cursor
		typ  types.TagType
		get  func(*Cursor) (any, error)
		want any
	}{
		{"byte", NewByte(-7, NoKey, Owning), types.TagByte, func(c *Cursor) (any, error) { return c.Byte() }, int8(-7)},
		{"short", NewShort(300, NoKey, Owning), types.TagShort, func(c *Cursor) (any, error) { return c.Short() }, int16(300)},
		{"int", NewInt(-70000, NoKey, Owning), types.TagInt, func(c *Cursor) (any, error) { return c.Int() }, int32(-70000)},
		{"long", NewLong(1<<40, NoKey, Owning), types.TagLong, func(c *Cursor) (any, error) { return c.Long() }, int64(1 << 40)},
		{"float", NewFloat(1.5, NoKey, Owning), types.TagFloat, func(c *Cursor) (any, error) { return c.Float() }, float32(1.5)},
		{"double", NewDouble(-2.25, NoKey, Owning), types.TagDouble, func(c *Cursor) (any, error) { return c.Double() }, -2.25},
		{"string", NewString("héllo", NoKey, Owning), types.TagString, func(c *Cursor) (any, error) { return c.StringValue() }, "héllo"},
		{"bytes", NewByteArray([]byte{1, 2}, NoKey, Owning), types.TagByteArray, func(c *Cursor) (any, error) { return c.ByteArray() }, []byte{1, 2}},
		{"ints", NewIntArray([]int32{3, 4}, NoKey, Owning), types.TagIntArray, func(c *Cursor) (any, error) { return c.IntArray() }, []int32{3, 4}},
		{"longs", NewLongArray([]int64{5}, NoKey, Owning), types.TagLongArray, func(c *Cursor) (any, error) { return c.LongArray() }, []int64{5}},
	}

	accessors := map[types.TagType]func(*Cursor) error{
		types.TagByte:      func(c *Cursor) error { _, err := c.Byte(); return err },
		types.TagShort:     func(c *Cursor) error { _, err := c.Short(); return err },
		types.TagInt:       func(c *Cursor) error { _, err := c.Int(); return err },
		types.TagLong:      func(c *Cursor) error { _, err := c.Long(); return err },
		types.TagFloat:     func(c *Cursor) error { _, err := c.Float(); return err },
		types.TagDouble:    func(c *Cursor) error { _, err := c.Double(); return err },
		types.TagString:    func(c *Cursor) error { _, err := c.StringValue(); return err },
		types.TagByteArray: func(c *Cursor) error { _, err := c.ByteArray(); return err },
		types.TagIntArray:  func(c *Cursor) error { _, err := c.IntArray(); return err },
		types.TagLongArray: func(c *Cursor) error { _, err := c.LongArray(); return err },
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer tt.c.Close()
			require.Equal(t, tt.typ, tt.c.Type())
			require.True(t, tt.c.IsType(tt.typ))

			got, err := tt.get(tt.c)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			for typ, access := range accessors {
				if typ == tt.typ {
					continue
				}
				err := access(tt.c)
				require.ErrorIs(t, err, types.ErrTypeMismatch, "accessor for %s", typ)
				require.True(t, types.IsKind(err, types.ErrKindType))
			}
		})
	}
}

func TestInteger_WidensAllIntegerTags(t *testing.T) {
	for _, c := range []*Cursor{
		NewByte(-1, NoKey, Owning),
		NewShort(-1, NoKey, Owning),
		NewInt(-1, NoKey, Owning),
		NewLong(-1, NoKey, Owning),
	} {
		v, err := c.Integer()
		require.NoError(t, err)
		require.Equal(t, int64(-1), v)
		c.Close()
	}

	s := NewString("x", NoKey, Owning)
	defer s.Close()
	_, err := s.Integer()
	require.ErrorIs(t, err, types.ErrTypeMismatch)
}

func TestArrayConstructors_Copy(t *testing.T) {
	src := []byte{1, 2, 3}
	c := NewByteArray(src, NoKey, Owning)
	defer c.Close()
	src[0] = 99

	got, err := c.ByteArray()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, got)
}

func TestSetters(t *testing.T) {
	c := NewInt(1, Key("n"), Owning)
	defer c.Close()

	require.NoError(t, c.SetInt(42))
	v, err := c.Int()
	require.NoError(t, err)
	require.Equal(t, int32(42), v)

	require.ErrorIs(t, c.SetString("no"), types.ErrTypeMismatch)
	require.ErrorIs(t, c.SetByte(1), types.ErrTypeMismatch)

	s := NewString("a", NoKey, Owning)
	defer s.Close()
	require.NoError(t, s.SetString("b"))
	got, _ := s.StringValue()
	require.Equal(t, "b", got)

	arr := NewLongArray(nil, NoKey, Owning)
	defer arr.Close()
	in := []int64{7, 8}
	require.NoError(t, arr.SetLongArray(in))
	in[0] = 0
	longs, _ := arr.LongArray()
	require.Equal(t, []int64{7, 8}, longs)
}

func TestKeys(t *testing.T) {
	c := NewByte(1, NoKey, Owning)
	defer c.Close()

	_, ok := c.Key()
	require.False(t, ok)

	c.SetKey("")
	k, ok := c.Key()
	require.True(t, ok, "empty key is a real key")
	require.Equal(t, "", k)

	c.SetKey("name")
	k, _ = c.Key()
	require.Equal(t, "name", k)

	c.ClearKey()
	_, ok = c.Key()
	require.False(t, ok)

	var empty Cursor
	empty.SetKey("ignored")
	_, ok = empty.Key()
	require.False(t, ok)
}

func TestNewTag(t *testing.T) {
	for _, typ := range []types.TagType{types.TagByte, types.TagString, types.TagList, types.TagCompound, types.TagIntArray} {
		c, err := NewTag(typ, NoKey, Owning)
		require.NoError(t, err)
		require.Equal(t, typ, c.Type())
		c.Close()
	}

	_, err := NewTag(types.TagEnd, NoKey, Owning)
	require.ErrorIs(t, err, types.ErrInvalidOperation)
	_, err = NewTag(types.TagInvalid, NoKey, Owning)
	require.ErrorIs(t, err, types.ErrInvalidOperation)
}

func TestUUID(t *testing.T) {
	u := uuid.MustParse("f81d4fae-7dec-11d0-a765-00a0c91e6bf6")
	c := NewUUID(u, Key("UUID"), Owning)
	defer c.Close()

	ints, err := c.IntArray()
	require.NoError(t, err)
	require.Len(t, ints, 4)
	require.Equal(t, int32(-132296786), ints[0]) // 0xf81d4fae

	got, err := c.UUID()
	require.NoError(t, err)
	require.Equal(t, u, got)

	other := uuid.New()
	require.NoError(t, c.SetUUID(other))
	got, _ = c.UUID()
	require.Equal(t, other, got)

	short := NewIntArray([]int32{1, 2}, NoKey, Owning)
	defer short.Close()
	_, err = short.UUID()
	require.ErrorIs(t, err, types.ErrTypeMismatch)
}

func TestEmptyCursor(t *testing.T) {
	var c Cursor
	require.False(t, c.Valid())
	require.Equal(t, types.TagInvalid, c.Type())
	require.True(t, c.IsType(types.TagInvalid))
	require.Equal(t, 0, c.ChildCount())
	require.Equal(t, 0, c.RefCount())

	_, err := c.Byte()
	require.ErrorIs(t, err, types.ErrTypeMismatch)
	c.Close()
	c.Close()
}

func TestClone_SharesCell(t *testing.T) {
	root := NewCompound(NoKey, Owning)
	require.Equal(t, 1, root.RefCount())

	clone := root.Clone()
	require.Equal(t, 2, root.RefCount())
	require.True(t, clone.Equal(root))

	clone.Close()
	clone.Close() // second close is a no-op
	require.Equal(t, 1, root.RefCount())
	require.False(t, root.Root().Released())

	node := root.Root()
	root.Close()
	require.True(t, node.Released())
}

func TestClone_CopiesStack(t *testing.T) {
	root := NewCompound(NoKey, Owning)
	defer root.Close()
	child := NewCompound(Key("a"), Borrowing)
	defer child.Close()
	require.NoError(t, root.Prepend(child))
	require.NoError(t, root.ChildKey("a"))

	clone := root.Clone()
	defer clone.Close()
	require.NoError(t, clone.Parent())

	require.Equal(t, 1, root.Depth(), "clone navigation must not touch the original")
	require.Equal(t, 0, clone.Depth())
}

func TestOwnership_BorrowingDoesNotFree(t *testing.T) {
	c := NewCompound(NoKey, Borrowing)
	leaf := NewInt(1, Key("x"), Borrowing)
	require.NoError(t, c.InsertAfter(nil, leaf))
	leaf.Close()

	root := c.Root()
	c.Close()
	require.False(t, root.Released())
	require.False(t, root.FirstChild().Released())
}

func TestOwnership_OwningFreesRecursively(t *testing.T) {
	c := NewCompound(NoKey, Owning)
	list := NewList(Key("l"), Borrowing)
	require.NoError(t, c.InsertAfter(nil, list))
	e1 := NewInt(1, NoKey, Borrowing)
	e2 := NewInt(2, NoKey, Borrowing)
	require.NoError(t, list.InsertBefore(nil, e1))
	require.NoError(t, list.InsertBefore(nil, e2))

	nodes := []*Node{c.Root(), list.Node(), e1.Node(), e2.Node()}
	for _, x := range []*Cursor{list, e1, e2} {
		x.Close()
	}
	for _, n := range nodes {
		require.False(t, n.Released())
	}

	c.Close()
	for _, n := range nodes {
		require.True(t, n.Released())
	}
}

func TestSetOwnership_Retroactive(t *testing.T) {
	c := NewCompound(NoKey, Owning)
	clone := c.Clone()
	clone.SetOwnership(Borrowing)
	require.Equal(t, Borrowing, c.Ownership())

	root := c.Root()
	c.Close()
	clone.Close()
	require.False(t, root.Released())

	again := FromNode(root, Borrowing)
	again.SetOwnership(Owning)
	again.Close()
	require.True(t, root.Released())
}

func TestReleasedNode_AccessorsFail(t *testing.T) {
	root := NewCompound(NoKey, Owning)
	defer root.Close()
	leaf := NewInt(5, Key("x"), Borrowing)
	defer leaf.Close()
	require.NoError(t, root.InsertAfter(nil, leaf))

	require.NoError(t, root.RemoveKey("x"))

	_, err := leaf.Int()
	require.ErrorIs(t, err, types.ErrReleased)
	require.True(t, errors.Is(leaf.SetInt(1), types.ErrReleased))
}

func TestOwnership_String(t *testing.T) {
	assert.Equal(t, "owning", Owning.String())
	assert.Equal(t, "borrowing", Borrowing.String())
}
