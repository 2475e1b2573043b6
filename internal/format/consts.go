// Package format holds the wire-level constants of the tag stream: tag IDs,
// compression magic numbers and the sentinel errors shared by the codec.
package format

import "github.com/joshuapare/nbtkit/pkg/types"

// Wire tag IDs as they appear in the byte stream.
const (
	IDEnd       byte = 0
	IDByte      byte = 1
	IDShort     byte = 2
	IDInt       byte = 3
	IDLong      byte = 4
	IDFloat     byte = 5
	IDDouble    byte = 6
	IDByteArray byte = 7
	IDString    byte = 8
	IDList      byte = 9
	IDCompound  byte = 10
	IDIntArray  byte = 11
	IDLongArray byte = 12
)

// Compression magic numbers.
const (
	GzipMagic0 = 0x1F
	GzipMagic1 = 0x8B
	ZlibMagic0 = 0x78
)

var idToTag = [...]types.TagType{
	IDEnd:       types.TagEnd,
	IDByte:      types.TagByte,
	IDShort:     types.TagShort,
	IDInt:       types.TagInt,
	IDLong:      types.TagLong,
	IDFloat:     types.TagFloat,
	IDDouble:    types.TagDouble,
	IDByteArray: types.TagByteArray,
	IDString:    types.TagString,
	IDList:      types.TagList,
	IDCompound:  types.TagCompound,
	IDIntArray:  types.TagIntArray,
	IDLongArray: types.TagLongArray,
}

// TagFromID maps a wire ID to a TagType. Unknown IDs yield TagInvalid.
func TagFromID(id byte) types.TagType {
	if int(id) < len(idToTag) {
		return idToTag[id]
	}
	return types.TagInvalid
}

// IDFromTag maps a TagType to its wire ID. ok is false for TagInvalid and
// unknown values.
func IDFromTag(t types.TagType) (byte, bool) {
	for id, tag := range idToTag {
		if tag == t {
			return byte(id), true
		}
	}
	return 0, false
}

// ScalarSize returns the fixed payload width of a scalar tag, 0 otherwise.
func ScalarSize(t types.TagType) int {
	switch t {
	case types.TagByte:
		return 1
	case types.TagShort:
		return 2
	case types.TagInt, types.TagFloat:
		return 4
	case types.TagLong, types.TagDouble:
		return 8
	default:
		return 0
	}
}
