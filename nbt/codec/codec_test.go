package codec_test

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/codec"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// helloWorld is the canonical minimal uncompressed file: a compound named
// "hello world" holding name = "Bananrama".
var helloWorld = []byte{
	0x0A, 0x00, 0x0B, 'h', 'e', 'l', 'l', 'o', ' ', 'w', 'o', 'r', 'l', 'd',
	0x08, 0x00, 0x04, 'n', 'a', 'm', 'e',
	0x00, 0x09, 'B', 'a', 'n', 'a', 'n', 'r', 'a', 'm', 'a',
	0x00,
}

type snapshot struct {
	Type     types.TagType
	Key      string
	HasKey   bool
	I        int64
	F        float64
	S        string
	Bytes    []byte
	Ints     []int32
	Longs    []int64
	Elem     types.TagType
	Children []snapshot
}

func snap(n *nbt.Node) snapshot {
	k, ok := n.Key()
	s := snapshot{
		Type: n.Type(), Key: k, HasKey: ok,
		I: n.Int(), F: n.Float(), S: n.Str(),
		Bytes: n.Bytes(), Ints: n.Ints(), Longs: n.Longs(),
		Elem: n.ElemType(),
	}
	for ch := n.FirstChild(); ch != nil; ch = ch.Next() {
		s.Children = append(s.Children, snap(ch))
	}
	return s
}

func insert(t *testing.T, parent, child *nbt.Cursor) {
	t.Helper()
	require.NoError(t, parent.InsertBefore(nil, child))
	child.Close()
}

// buildLevel builds a tree touching every tag type.
func buildLevel(t *testing.T) *nbt.Cursor {
	t.Helper()
	root := nbt.NewCompound(nbt.Key("Level"), nbt.Owning)
	insert(t, root, nbt.NewByte(-1, nbt.Key("b"), nbt.Borrowing))
	insert(t, root, nbt.NewShort(-300, nbt.Key("s"), nbt.Borrowing))
	insert(t, root, nbt.NewInt(math.MinInt32, nbt.Key("i"), nbt.Borrowing))
	insert(t, root, nbt.NewLong(math.MaxInt64, nbt.Key("l"), nbt.Borrowing))
	insert(t, root, nbt.NewFloat(0.5, nbt.Key("f"), nbt.Borrowing))
	insert(t, root, nbt.NewDouble(math.Pi, nbt.Key("d"), nbt.Borrowing))
	insert(t, root, nbt.NewString("nul\x00 and 😀", nbt.Key("str"), nbt.Borrowing))
	insert(t, root, nbt.NewByteArray([]byte{0, 1, 255}, nbt.Key("ba"), nbt.Borrowing))
	insert(t, root, nbt.NewIntArray([]int32{-1, 2}, nbt.Key("ia"), nbt.Borrowing))
	insert(t, root, nbt.NewLongArray([]int64{math.MinInt64}, nbt.Key("la"), nbt.Borrowing))
	insert(t, root, nbt.NewList(nbt.Key("empty"), nbt.Borrowing))

	list := nbt.NewList(nbt.Key("pos"), nbt.Borrowing)
	for _, v := range []float64{1, 2.5, -3} {
		insert(t, list, nbt.NewDouble(v, nbt.NoKey, nbt.Borrowing))
	}
	insert(t, root, list)

	items := nbt.NewList(nbt.Key("items"), nbt.Borrowing)
	for i := 0; i < 2; i++ {
		item := nbt.NewCompound(nbt.NoKey, nbt.Borrowing)
		insert(t, item, nbt.NewString("minecraft:stone", nbt.Key("id"), nbt.Borrowing))
		insert(t, item, nbt.NewByte(int8(i), nbt.Key("Count"), nbt.Borrowing))
		insert(t, items, item)
	}
	insert(t, root, items)
	insert(t, root, nbt.NewString("", nbt.Key(""), nbt.Borrowing))
	return root
}

func TestDecode_HelloWorld(t *testing.T) {
	c := codec.New(types.CodecOptions{Compression: types.CompressionNone})
	cur, err := nbt.Decode(c, helloWorld)
	require.NoError(t, err)
	defer cur.Close()

	k, ok := cur.Key()
	require.True(t, ok)
	require.Equal(t, "hello world", k)
	require.NoError(t, cur.ChildKey("name"))
	s, err := cur.StringValue()
	require.NoError(t, err)
	require.Equal(t, "Bananrama", s)

	out, err := cur.Pack(c, types.SaveOptions{})
	require.NoError(t, err)
	require.Equal(t, helloWorld, out)
}

func TestRoundTrip(t *testing.T) {
	root := buildLevel(t)
	defer root.Close()
	want := snap(root.Node())

	for _, comp := range []types.Compression{types.CompressionNone, types.CompressionGzip, types.CompressionZlib} {
		for _, order := range []types.ByteOrder{types.BigEndian, types.LittleEndian} {
			t.Run(comp.String()+"/"+order.String(), func(t *testing.T) {
				enc := codec.New(types.CodecOptions{Compression: comp, ByteOrder: order})
				data, err := root.Pack(enc, types.SaveOptions{})
				require.NoError(t, err)
				require.Equal(t, comp, codec.Sniff(data))

				dec := codec.New(types.CodecOptions{ByteOrder: order})
				back, err := nbt.Decode(dec, data)
				require.NoError(t, err)
				defer back.Close()

				if diff := cmp.Diff(want, snap(back.Node())); diff != "" {
					t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
				}
			})
		}
	}
}

func TestEncode_ByteOrder(t *testing.T) {
	root := nbt.NewInt(1, nbt.NoKey, nbt.Owning)
	defer root.Close()

	big, err := root.Pack(codec.New(types.CodecOptions{Compression: types.CompressionNone}), types.SaveOptions{})
	require.NoError(t, err)
	require.Equal(t, []byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}, big)

	little, err := root.Pack(codec.Bedrock(), types.SaveOptions{})
	require.NoError(t, err)
	require.Equal(t, []byte{0x03, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}, little)
}

func TestEncode_InsufficientBuffer(t *testing.T) {
	root := buildLevel(t)
	defer root.Close()

	for _, comp := range []types.Compression{types.CompressionNone, types.CompressionGzip} {
		c := codec.New(types.CodecOptions{Compression: comp})
		_, err := c.Encode(root.Node(), make([]byte, 8))
		require.ErrorIs(t, err, types.ErrInsufficientBuffer, comp.String())
	}
}

func TestPack_GrowthIsDeterministic(t *testing.T) {
	root := buildLevel(t)
	defer root.Close()

	for _, comp := range []types.Compression{types.CompressionNone, types.CompressionGzip, types.CompressionZlib} {
		c := codec.New(types.CodecOptions{Compression: comp})
		grown, err := root.Pack(c, types.SaveOptions{})
		require.NoError(t, err)
		once, err := root.Pack(c, types.SaveOptions{InitialBits: 20, MaxBits: 20})
		require.NoError(t, err)
		require.True(t, bytes.Equal(grown, once), comp.String())
	}
}

func TestEncode_Errors(t *testing.T) {
	c := codec.New(types.CodecOptions{Compression: types.CompressionNone})

	mixed := nbt.NewNode(types.TagList, nbt.NoKey)
	mixed.SetChildren([]*nbt.Node{
		nbt.NewNode(types.TagInt, nbt.NoKey),
		nbt.NewNode(types.TagString, nbt.NoKey),
	})
	_, err := c.Encode(mixed, make([]byte, 64))
	require.ErrorIs(t, err, types.ErrInvalidOperation)

	_, err = c.Encode(nil, make([]byte, 64))
	require.ErrorIs(t, err, types.ErrInvalidOperation)
}

func TestDecode_Truncated(t *testing.T) {
	root := buildLevel(t)
	defer root.Close()
	c := codec.New(types.CodecOptions{Compression: types.CompressionNone})
	data, err := root.Pack(c, types.SaveOptions{})
	require.NoError(t, err)

	for i := 0; i < len(data); i++ {
		_, err := c.Decode(data[:i])
		require.ErrorIs(t, err, types.ErrDecode, "prefix %d", i)
	}
}

func TestDecode_Malformed(t *testing.T) {
	c := codec.New(types.CodecOptions{Compression: types.CompressionNone})
	tests := []struct {
		name string
		data []byte
	}{
		{"end root", []byte{0x00}},
		{"unknown root", []byte{0x2A, 0x00, 0x00}},
		{"trailing", append(append([]byte(nil), helloWorld...), 0xFF)},
		{"negative array", []byte{0x07, 0x00, 0x00, 0xFF, 0xFF, 0xFF, 0xFF}},
		{"end list with elements", []byte{0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02}},
		{"unknown child", []byte{0x0A, 0x00, 0x00, 0x63, 0x00, 0x00}},
		{"duplicate key", []byte{
			0x0A, 0x00, 0x00,
			0x01, 0x00, 0x01, 'a', 0x01,
			0x01, 0x00, 0x01, 'a', 0x02,
			0x00,
		}},
		{"bad gzip", []byte{0x1F, 0x8B, 0x00}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dec := c
			if tt.name == "bad gzip" {
				dec = codec.Java()
			}
			_, err := dec.Decode(tt.data)
			require.ErrorIs(t, err, types.ErrDecode)
		})
	}
}

func TestDecode_Limits(t *testing.T) {
	root := buildLevel(t)
	defer root.Close()

	raw, err := root.Pack(codec.New(types.CodecOptions{Compression: types.CompressionNone}), types.SaveOptions{})
	require.NoError(t, err)
	gz, err := root.Pack(codec.Java(), types.SaveOptions{})
	require.NoError(t, err)

	tests := []struct {
		name   string
		limits types.Limits
		data   []byte
	}{
		{"depth", types.Limits{MaxDepth: 1}, raw},
		{"array", types.Limits{MaxArrayLen: 2}, raw},
		{"list", types.Limits{MaxListLen: 2}, raw},
		{"string", types.Limits{MaxStringLen: 4}, raw},
		{"inflated", types.Limits{MaxDecompressedSize: 16}, gz},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := codec.New(types.CodecOptions{Limits: tt.limits})
			_, err := c.Decode(tt.data)
			require.ErrorIs(t, err, types.ErrDecode)
			require.ErrorIs(t, err, types.ErrLimit)
		})
	}

	_, err = codec.New(types.CodecOptions{Limits: types.Limits{MaxDepth: 3}}).Decode(raw)
	require.NoError(t, err, "root, items list and item compound nest three deep")
}

func TestSaveAndLoad(t *testing.T) {
	root := buildLevel(t)
	defer root.Close()
	path := filepath.Join(t.TempDir(), "level.dat")

	c := codec.Java()
	require.NoError(t, root.SaveToFile(path, c, types.SaveOptions{Atomic: true}))

	back, err := nbt.Load(path, c)
	require.NoError(t, err)
	defer back.Close()
	require.Equal(t, snap(root.Node()), snap(back.Node()))

	require.NoError(t, back.Seek("items[1].Count"))
	v, err := back.Byte()
	require.NoError(t, err)
	require.Equal(t, int8(1), v)
}

func TestSniff(t *testing.T) {
	require.Equal(t, types.CompressionGzip, codec.Sniff([]byte{0x1F, 0x8B, 0x08}))
	require.Equal(t, types.CompressionZlib, codec.Sniff([]byte{0x78, 0x9C}))
	require.Equal(t, types.CompressionNone, codec.Sniff(helloWorld))
}
