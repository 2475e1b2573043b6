package types

import "fmt"

// TagType enumerates the kinds of node a tag tree can hold.
//
// TagInvalid is the "no node" answer for an empty cursor. TagEnd is the
// wire-level terminator and never a real payload.
type TagType uint8

const (
	TagInvalid TagType = iota
	TagEnd
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

var tagNames = [...]string{
	TagInvalid:   "Invalid",
	TagEnd:       "End",
	TagByte:      "Byte",
	TagShort:     "Short",
	TagInt:       "Int",
	TagLong:      "Long",
	TagFloat:     "Float",
	TagDouble:    "Double",
	TagByteArray: "ByteArray",
	TagString:    "String",
	TagList:      "List",
	TagCompound:  "Compound",
	TagIntArray:  "IntArray",
	TagLongArray: "LongArray",
}

// String implements the Stringer interface for TagType.
func (t TagType) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("UNKNOWN_TAG_%d", uint8(t))
}

// Valid reports whether t is a real payload type (not Invalid, not End).
func (t TagType) Valid() bool {
	return t >= TagByte && t <= TagLongArray
}

// IsInteger reports whether t is one of Byte, Short, Int or Long.
func (t TagType) IsInteger() bool {
	switch t {
	case TagByte, TagShort, TagInt, TagLong:
		return true
	}
	return false
}

// IsFloat reports whether t is Float or Double.
func (t TagType) IsFloat() bool {
	return t == TagFloat || t == TagDouble
}

// IsArray reports whether t is one of the length-prefixed array types.
func (t TagType) IsArray() bool {
	switch t {
	case TagByteArray, TagIntArray, TagLongArray:
		return true
	}
	return false
}

// IsContainer reports whether t holds child nodes.
func (t TagType) IsContainer() bool {
	return t == TagList || t == TagCompound
}

// ParseTagType resolves a case-sensitive tag name ("Byte", "Compound", ...)
// as printed by String. Short CLI aliases are accepted as well.
func ParseTagType(s string) (TagType, error) {
	for i, name := range tagNames {
		if name == s && TagType(i).Valid() {
			return TagType(i), nil
		}
	}
	switch s {
	case "byte", "b":
		return TagByte, nil
	case "short", "s":
		return TagShort, nil
	case "int", "i":
		return TagInt, nil
	case "long", "l":
		return TagLong, nil
	case "float", "f":
		return TagFloat, nil
	case "double", "d":
		return TagDouble, nil
	case "string", "str":
		return TagString, nil
	case "bytes", "byte_array":
		return TagByteArray, nil
	case "ints", "int_array":
		return TagIntArray, nil
	case "longs", "long_array":
		return TagLongArray, nil
	case "list":
		return TagList, nil
	case "compound":
		return TagCompound, nil
	}
	return TagInvalid, fmt.Errorf("unknown tag type %q", s)
}
