// Package codec implements the binary tag stream used by Minecraft:
// a single named root tag, optionally wrapped in gzip or zlib, with
// big-endian (Java edition) or little-endian (Bedrock) numbers and
// modified UTF-8 strings.
//
// A *Codec satisfies both nbt.Decoder and nbt.Encoder:
//
//	c := codec.New(types.CodecOptions{Compression: types.CompressionGzip})
//	cur, err := nbt.Load("level.dat", c)
//	...
//	err = cur.SaveToFile("level.dat", c, types.DefaultSaveOptions())
package codec

import (
	"encoding/binary"

	"github.com/joshuapare/nbtkit/internal/format"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Codec encodes and decodes tag trees. It holds no per-call state and is
// safe for concurrent use.
type Codec struct {
	opts   types.CodecOptions
	order  binary.ByteOrder
	limits types.Limits
}

// New returns a Codec for opts. Zero limits select types.DefaultLimits.
func New(opts types.CodecOptions) *Codec {
	opts.Limits = opts.Limits.OrDefault()
	var order binary.ByteOrder = binary.BigEndian
	if opts.ByteOrder == types.LittleEndian {
		order = binary.LittleEndian
	}
	return &Codec{opts: opts, order: order, limits: opts.Limits}
}

// Java returns the codec for Java edition files: gzip on encode, sniffed
// on decode, big-endian.
func Java() *Codec {
	return New(types.CodecOptions{})
}

// Bedrock returns the codec for uncompressed little-endian Bedrock data.
func Bedrock() *Codec {
	return New(types.CodecOptions{Compression: types.CompressionNone, ByteOrder: types.LittleEndian})
}

// Options returns the effective options.
func (c *Codec) Options() types.CodecOptions { return c.opts }

// Sniff reports the compression wrapper detected at the start of data.
func Sniff(data []byte) types.Compression { return format.Sniff(data) }
