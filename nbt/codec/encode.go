package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/joshuapare/nbtkit/internal/buf"
	"github.com/joshuapare/nbtkit/internal/format"
	"github.com/joshuapare/nbtkit/internal/mutf8"
	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Encode writes the tree under root into dst and returns the byte count.
// When dst is too small the error wraps types.ErrInsufficientBuffer and
// dst holds garbage. Output is deterministic: the gzip header carries no
// timestamp.
func (c *Codec) Encode(root *nbt.Node, dst []byte) (int, error) {
	if root == nil {
		return 0, types.Wrap(types.ErrInvalidOperation, "encode: nil root", nil)
	}
	sink := buf.NewFixed(dst)

	var (
		w     io.Writer = sink
		flush io.Closer
	)
	switch c.opts.Compression {
	case types.CompressionAuto, types.CompressionGzip:
		gz, err := gzip.NewWriterLevel(sink, c.level(gzip.DefaultCompression))
		if err != nil {
			return 0, types.Wrap(types.ErrInvalidOperation, "gzip level", err)
		}
		w, flush = gz, gz
	case types.CompressionZlib:
		zw, err := zlib.NewWriterLevel(sink, c.level(zlib.DefaultCompression))
		if err != nil {
			return 0, types.Wrap(types.ErrInvalidOperation, "zlib level", err)
		}
		w, flush = zw, zw
	}

	e := &encoder{w: buf.NewWriter(w, c.order)}
	if err := e.named(root); err != nil {
		return 0, err
	}
	err := e.w.Err()
	if err == nil && flush != nil {
		err = flush.Close()
	}
	if err != nil {
		if errors.Is(err, buf.ErrFull) {
			return 0, types.Wrap(types.ErrInsufficientBuffer, fmt.Sprintf("encode into %d bytes", len(dst)), nil)
		}
		return 0, types.Wrap(types.ErrIO, "encode", err)
	}
	return sink.Len(), nil
}

func (c *Codec) level(def int) int {
	if c.opts.CompressionLevel == 0 {
		return def
	}
	return c.opts.CompressionLevel
}

type encoder struct {
	w *buf.Writer
}

func encodeErr(msg string, args ...any) error {
	return types.Wrap(types.ErrInvalidOperation, "encode: "+fmt.Sprintf(msg, args...), nil)
}

func (e *encoder) named(n *nbt.Node) error {
	if n.Released() {
		return types.ErrReleased
	}
	id, ok := format.IDFromTag(n.Type())
	if !ok || !n.Type().Valid() {
		return encodeErr("cannot write %s tag", n.Type())
	}
	key, _ := n.Key()
	e.w.U8(id)
	if err := e.string(key); err != nil {
		return err
	}
	return e.payload(n)
}

func (e *encoder) string(s string) error {
	p, err := mutf8.Encode(s)
	if err != nil {
		return encodeErr("%v", err)
	}
	if len(p) > types.MaxStringLenWire {
		return encodeErr("string of %d bytes exceeds %d", len(p), types.MaxStringLenWire)
	}
	e.w.U16(uint16(len(p)))
	e.w.Bytes(p)
	return nil
}

func (e *encoder) payload(n *nbt.Node) error {
	if n.Released() {
		return types.ErrReleased
	}
	switch n.Type() {
	case types.TagByte:
		e.w.U8(uint8(n.Int()))
	case types.TagShort:
		e.w.U16(uint16(n.Int()))
	case types.TagInt:
		e.w.I32(int32(n.Int()))
	case types.TagLong:
		e.w.I64(n.Int())
	case types.TagFloat:
		e.w.F32(float32(n.Float()))
	case types.TagDouble:
		e.w.F64(n.Float())
	case types.TagString:
		return e.string(n.Str())
	case types.TagByteArray:
		e.w.I32(int32(len(n.Bytes())))
		e.w.Bytes(n.Bytes())
	case types.TagIntArray:
		e.w.I32(int32(len(n.Ints())))
		for _, v := range n.Ints() {
			e.w.I32(v)
		}
	case types.TagLongArray:
		e.w.I32(int32(len(n.Longs())))
		for _, v := range n.Longs() {
			e.w.I64(v)
		}
	case types.TagList:
		return e.list(n)
	case types.TagCompound:
		for ch := n.FirstChild(); ch != nil; ch = ch.Next() {
			if err := e.named(ch); err != nil {
				return err
			}
		}
		e.w.U8(format.IDEnd)
	default:
		return encodeErr("cannot write %s payload", n.Type())
	}
	return nil
}

func (e *encoder) list(n *nbt.Node) error {
	elem := n.ElemType()
	id, ok := format.IDFromTag(elem)
	if !ok {
		id = format.IDEnd
	}
	count := n.ChildCount()
	if count > 0 && id == format.IDEnd {
		return encodeErr("list elements of type %s", elem)
	}
	e.w.U8(id)
	e.w.I32(int32(count))
	for ch := n.FirstChild(); ch != nil; ch = ch.Next() {
		if ch.Type() != elem {
			return encodeErr("%v: %s in list of %s", format.ErrMixedList, ch.Type(), elem)
		}
		if err := e.payload(ch); err != nil {
			return err
		}
	}
	return nil
}
