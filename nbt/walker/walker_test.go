package walker

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

func insert(t *testing.T, parent, child *nbt.Cursor) {
	t.Helper()
	require.NoError(t, parent.InsertBefore(nil, child))
	child.Close()
}

// sampleTree builds
//
//	{ name: "Steve", pos: [1.0d, 2.0d], inv: [{id: "stone"}, {id: "dirt"}], seed: [L; 1L, 2L] }
func sampleTree(t *testing.T) *nbt.Cursor {
	t.Helper()
	root := nbt.NewCompound(nbt.NoKey, nbt.Owning)
	insert(t, root, nbt.NewString("Steve", nbt.Key("name"), nbt.Borrowing))

	pos := nbt.NewList(nbt.Key("pos"), nbt.Borrowing)
	insert(t, pos, nbt.NewDouble(1, nbt.NoKey, nbt.Borrowing))
	insert(t, pos, nbt.NewDouble(2, nbt.NoKey, nbt.Borrowing))
	insert(t, root, pos)

	inv := nbt.NewList(nbt.Key("inv"), nbt.Borrowing)
	for _, id := range []string{"stone", "dirt"} {
		item := nbt.NewCompound(nbt.NoKey, nbt.Borrowing)
		insert(t, item, nbt.NewString(id, nbt.Key("id"), nbt.Borrowing))
		insert(t, inv, item)
	}
	insert(t, root, inv)
	insert(t, root, nbt.NewLongArray([]int64{1, 2}, nbt.Key("seed"), nbt.Borrowing))
	return root
}

func TestWalk_PreOrder(t *testing.T) {
	root := sampleTree(t)
	defer root.Close()

	var paths []string
	var depths []int
	err := Walk(root.Root(), func(r Ref) error {
		paths = append(paths, r.Path())
		depths = append(depths, r.Depth)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		"", "name", "pos", "pos[0]", "pos[1]",
		"inv", "inv[0]", "inv[0].id", "inv[1]", "inv[1].id", "seed",
	}, paths)
	require.Equal(t, []int{0, 1, 1, 2, 2, 1, 2, 3, 2, 3, 1}, depths)
}

func TestWalk_ParentAndIndex(t *testing.T) {
	root := sampleTree(t)
	defer root.Close()

	err := Walk(root.Root(), func(r Ref) error {
		if r.Depth == 0 {
			require.Nil(t, r.Parent)
			return nil
		}
		require.NotNil(t, r.Parent)
		if r.Path() == "inv[1]" {
			require.Equal(t, 1, r.Index)
			require.Equal(t, types.TagList, r.Parent.Type())
		}
		return nil
	})
	require.NoError(t, err)
}

func TestWalk_SkipChildren(t *testing.T) {
	root := sampleTree(t)
	defer root.Close()

	var paths []string
	err := Walk(root.Root(), func(r Ref) error {
		paths = append(paths, r.Path())
		if r.Path() == "inv" || r.Path() == "pos" {
			return SkipChildren
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"", "name", "pos", "inv", "seed"}, paths)
}

func TestWalk_StopsOnError(t *testing.T) {
	root := sampleTree(t)
	defer root.Close()

	boom := errors.New("boom")
	visited := 0
	err := Walk(root.Root(), func(r Ref) error {
		visited++
		if r.Path() == "pos[0]" {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
	require.Equal(t, 4, visited)
}

func TestWalk_Nil(t *testing.T) {
	require.NoError(t, Walk(nil, func(Ref) error { return errors.New("unreachable") }))
}

func TestWalk_SharedNode(t *testing.T) {
	shared := nbt.NewNode(types.TagInt, nbt.NoKey)
	p := nbt.NewNode(types.TagList, nbt.Key("p"))
	q := nbt.NewNode(types.TagList, nbt.Key("q"))
	p.SetChildren([]*nbt.Node{shared})
	q.SetChildren([]*nbt.Node{shared})
	root := nbt.NewNode(types.TagCompound, nbt.NoKey)
	root.SetChildren([]*nbt.Node{p, q})

	err := Walk(root, func(Ref) error { return nil })
	require.ErrorIs(t, err, ErrCycle)
}

func TestWalker_Reuse(t *testing.T) {
	root := sampleTree(t)
	defer root.Close()

	var w Walker
	for i := 0; i < 2; i++ {
		count := 0
		require.NoError(t, w.Walk(root.Root(), func(Ref) error { count++; return nil }))
		require.Equal(t, 11, count)
	}
}

func TestFind(t *testing.T) {
	root := sampleTree(t)
	defer root.Close()

	n, path, err := Find(root.Root(), func(r Ref) bool {
		return r.Node.Type() == types.TagString && r.Node.Str() == "dirt"
	})
	require.NoError(t, err)
	require.Equal(t, "inv[1].id", path)
	require.Equal(t, "dirt", n.Str())

	_, _, err = Find(root.Root(), func(Ref) bool { return false })
	require.ErrorIs(t, err, types.ErrNotFound)
}

func TestCount(t *testing.T) {
	root := sampleTree(t)
	defer root.Close()

	stats, err := Count(root.Root())
	require.NoError(t, err)
	require.Equal(t, uint64(11), stats.TotalNodes)
	require.Equal(t, uint64(3), stats.ByType[types.TagCompound])
	require.Equal(t, uint64(2), stats.ByType[types.TagList])
	require.Equal(t, uint64(3), stats.ByType[types.TagString])
	require.Equal(t, uint64(2), stats.ByType[types.TagDouble])
	require.Equal(t, uint64(5), stats.Containers())
	require.Equal(t, 3, stats.MaxDepth)
	require.Equal(t, 4, stats.MaxChildren)
	require.Equal(t, uint64(2), stats.ArrayElements)

	out := stats.String()
	require.Contains(t, out, "Total: 11 nodes")
	require.Contains(t, out, "Compound:")
	require.NotContains(t, out, "Byte:")
}

func TestValidate_Clean(t *testing.T) {
	root := sampleTree(t)
	defer root.Close()
	require.NoError(t, Validate(root.Root(), types.Limits{}))
}

func TestValidate_Limits(t *testing.T) {
	root := sampleTree(t)
	defer root.Close()

	err := Validate(root.Root(), types.Limits{MaxDepth: 2, MaxListLen: 1, MaxArrayLen: 1, MaxStringLen: 4})
	require.Error(t, err)

	var msgs []string
	for _, p := range Problems(err) {
		msgs = append(msgs, p.Error())
	}
	all := strings.Join(msgs, "\n")
	require.Contains(t, all, "inv[0].id: depth 3 exceeds 2")
	require.Contains(t, all, "pos: list longer than 1")
	require.Contains(t, all, "seed: array of 2 elements exceeds 1")
	require.Contains(t, all, `name: string of 5 bytes exceeds 4`)
}

func TestValidate_Structure(t *testing.T) {
	a := nbt.NewNode(types.TagInt, nbt.Key("a"))
	dup := nbt.NewNode(types.TagInt, nbt.Key("a"))
	unkeyed := nbt.NewNode(types.TagInt, nbt.NoKey)

	mixed := nbt.NewNode(types.TagList, nbt.Key("mixed"))
	mixed.SetChildren([]*nbt.Node{
		nbt.NewNode(types.TagInt, nbt.NoKey),
		nbt.NewNode(types.TagString, nbt.NoKey),
	})

	gone := nbt.NewCompound(nbt.Key("gone"), nbt.Owning)
	goneNode := gone.Node()
	gone.Close()

	root := nbt.NewNode(types.TagCompound, nbt.NoKey)
	root.SetChildren([]*nbt.Node{a, dup, unkeyed, mixed, goneNode})

	problems := Problems(Validate(root, types.Limits{}))
	var msgs []string
	for _, p := range problems {
		msgs = append(msgs, p.Error())
	}
	require.ElementsMatch(t, []string{
		`<root>: duplicate key "a"`,
		"<root>: child 2 has no key",
		"mixed: element 1 is String in list of Int",
		"gone: released node still linked",
	}, msgs)
}

func TestValidate_BrokenLinks(t *testing.T) {
	a := nbt.NewNode(types.TagInt, nbt.NoKey)
	b := nbt.NewNode(types.TagInt, nbt.NoKey)
	list := nbt.NewNode(types.TagList, nbt.NoKey)
	list.SetChildren([]*nbt.Node{a, b})

	other := nbt.NewNode(types.TagList, nbt.NoKey)
	other.SetChildren([]*nbt.Node{b}) // b.prev is now nil

	problems := Problems(Validate(list, types.Limits{}))
	require.Len(t, problems, 1)
	require.Contains(t, problems[0].Msg, "broken back link")
}

func TestValidate_LoopingChain(t *testing.T) {
	a := nbt.NewNode(types.TagInt, nbt.NoKey)
	list := nbt.NewNode(types.TagList, nbt.NoKey)
	list.SetChildren([]*nbt.Node{a})
	list.AppendChild(a) // a.next = a

	err := Validate(list, types.Limits{})
	require.Error(t, err)
	var msgs []string
	for _, p := range Problems(err) {
		msgs = append(msgs, p.Msg)
	}
	require.Contains(t, msgs, "sibling chain loops")
}
