package nbtfile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/nbtfile"
	"github.com/joshuapare/nbtkit/pkg/types"
)

func TestParseValue_Integers(t *testing.T) {
	tests := []struct {
		typ  types.TagType
		in   string
		want int64
	}{
		{types.TagByte, "42", 42},
		{types.TagByte, "-128", -128},
		{types.TagByte, "true", 1},
		{types.TagByte, "false", 0},
		{types.TagShort, "0x7fff", 32767},
		{types.TagInt, " -7 ", -7},
		{types.TagInt, "0b101", 5},
		{types.TagLong, "9223372036854775807", 9223372036854775807},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String()+"/"+tt.in, func(t *testing.T) {
			cur, err := nbtfile.ParseValue(tt.typ, tt.in, nbt.NoKey)
			require.NoError(t, err)
			defer cur.Close()
			assert.Equal(t, tt.typ, cur.Type())
			got, err := cur.Integer()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseValue_Others(t *testing.T) {
	f, err := nbtfile.ParseValue(types.TagFloat, "0.5", nbt.Key("f"))
	require.NoError(t, err)
	fv, _ := f.Float()
	assert.InDelta(t, 0.5, fv, 1e-9)
	key, ok := f.Key()
	assert.True(t, ok)
	assert.Equal(t, "f", key)
	f.Close()

	d, err := nbtfile.ParseValue(types.TagDouble, "-1e3", nbt.NoKey)
	require.NoError(t, err)
	dv, _ := d.Double()
	assert.InDelta(t, -1000.0, dv, 1e-9)
	d.Close()

	s, err := nbtfile.ParseValue(types.TagString, " padded, text ", nbt.NoKey)
	require.NoError(t, err)
	sv, _ := s.StringValue()
	assert.Equal(t, " padded, text ", sv)
	s.Close()

	b, err := nbtfile.ParseValue(types.TagByteArray, "[1, -1, 0x10]", nbt.NoKey)
	require.NoError(t, err)
	bv, _ := b.ByteArray()
	assert.Equal(t, []byte{1, 0xff, 0x10}, bv)
	b.Close()

	i, err := nbtfile.ParseValue(types.TagIntArray, "1,2,3", nbt.NoKey)
	require.NoError(t, err)
	iv, _ := i.IntArray()
	assert.Equal(t, []int32{1, 2, 3}, iv)
	i.Close()

	l, err := nbtfile.ParseValue(types.TagLongArray, "[]", nbt.NoKey)
	require.NoError(t, err)
	lv, _ := l.LongArray()
	assert.Empty(t, lv)
	l.Close()

	for _, typ := range []types.TagType{types.TagCompound, types.TagList} {
		c, err := nbtfile.ParseValue(typ, "", nbt.NoKey)
		require.NoError(t, err)
		assert.Equal(t, typ, c.Type())
		assert.Zero(t, c.ChildCount())
		c.Close()
	}
}

func TestParseValue_Errors(t *testing.T) {
	tests := []struct {
		typ types.TagType
		in  string
	}{
		{types.TagByte, "128"},
		{types.TagByte, "yes"},
		{types.TagShort, "70000"},
		{types.TagInt, "1.5"},
		{types.TagFloat, "abc"},
		{types.TagIntArray, "1,,2"},
		{types.TagCompound, "{a:1}"},
		{types.TagEnd, ""},
		{types.TagInvalid, ""},
	}
	for _, tt := range tests {
		t.Run(tt.typ.String()+"/"+tt.in, func(t *testing.T) {
			_, err := nbtfile.ParseValue(tt.typ, tt.in, nbt.NoKey)
			require.ErrorIs(t, err, types.ErrInvalidOperation)
		})
	}
}
