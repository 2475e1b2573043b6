package nbtfile

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// ParseValue builds a standalone Owning tag of type t from its command
// line form:
//
//	Byte            42, -1, 0x7f, true, false
//	Short/Int/Long  decimal, 0x hex, 0o octal or 0b binary
//	Float/Double    anything strconv.ParseFloat accepts
//	String          the text verbatim
//	arrays          comma separated integers, optionally in [ ]
//	Compound/List   "", "{}" or "[]" for an empty container
func ParseValue(t types.TagType, s string, name nbt.Name) (*nbt.Cursor, error) {
	switch t {
	case types.TagByte:
		switch s {
		case "true":
			return nbt.NewByte(1, name, nbt.Owning), nil
		case "false":
			return nbt.NewByte(0, name, nbt.Owning), nil
		}
		v, err := parseInt(s, 8)
		if err != nil {
			return nil, err
		}
		return nbt.NewByte(int8(v), name, nbt.Owning), nil
	case types.TagShort:
		v, err := parseInt(s, 16)
		if err != nil {
			return nil, err
		}
		return nbt.NewShort(int16(v), name, nbt.Owning), nil
	case types.TagInt:
		v, err := parseInt(s, 32)
		if err != nil {
			return nil, err
		}
		return nbt.NewInt(int32(v), name, nbt.Owning), nil
	case types.TagLong:
		v, err := parseInt(s, 64)
		if err != nil {
			return nil, err
		}
		return nbt.NewLong(v, name, nbt.Owning), nil
	case types.TagFloat:
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
		if err != nil {
			return nil, badValue(t, s, err)
		}
		return nbt.NewFloat(float32(v), name, nbt.Owning), nil
	case types.TagDouble:
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, badValue(t, s, err)
		}
		return nbt.NewDouble(v, name, nbt.Owning), nil
	case types.TagString:
		return nbt.NewString(s, name, nbt.Owning), nil
	case types.TagByteArray:
		vs, err := parseInts(s, 8)
		if err != nil {
			return nil, err
		}
		b := make([]byte, len(vs))
		for i, v := range vs {
			b[i] = byte(v)
		}
		return nbt.NewByteArray(b, name, nbt.Owning), nil
	case types.TagIntArray:
		vs, err := parseInts(s, 32)
		if err != nil {
			return nil, err
		}
		out := make([]int32, len(vs))
		for i, v := range vs {
			out[i] = int32(v)
		}
		return nbt.NewIntArray(out, name, nbt.Owning), nil
	case types.TagLongArray:
		vs, err := parseInts(s, 64)
		if err != nil {
			return nil, err
		}
		return nbt.NewLongArray(vs, name, nbt.Owning), nil
	case types.TagCompound, types.TagList:
		switch strings.TrimSpace(s) {
		case "", "{}", "[]":
		default:
			return nil, badValue(t, s, fmt.Errorf("only empty containers can be parsed"))
		}
		return nbt.NewTag(t, name, nbt.Owning)
	}
	return nil, types.Wrap(types.ErrInvalidOperation, "cannot parse a value of type "+t.String(), nil)
}

func badValue(t types.TagType, s string, err error) error {
	return types.Wrap(types.ErrInvalidOperation, fmt.Sprintf("invalid %s value %q", t, s), err)
}

func parseInt(s string, bits int) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, bits)
	if err != nil {
		return 0, badValue(intType(bits), s, err)
	}
	return v, nil
}

func parseInts(s string, bits int) ([]int64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return []int64{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		v, err := parseInt(p, bits)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func intType(bits int) types.TagType {
	switch bits {
	case 8:
		return types.TagByte
	case 16:
		return types.TagShort
	case 32:
		return types.TagInt
	}
	return types.TagLong
}
