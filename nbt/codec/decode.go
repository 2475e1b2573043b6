package codec

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"

	"github.com/joshuapare/nbtkit/internal/buf"
	"github.com/joshuapare/nbtkit/internal/format"
	"github.com/joshuapare/nbtkit/internal/logger"
	"github.com/joshuapare/nbtkit/internal/mutf8"
	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Decode parses data into a detached tree. The root node keeps its wire
// name as key. Nothing in the returned tree aliases data.
func (c *Codec) Decode(data []byte) (*nbt.Node, error) {
	raw, err := c.inflate(data)
	if err != nil {
		return nil, err
	}
	d := &decoder{r: buf.NewReader(raw, c.order), limits: c.limits}
	root, err := d.root()
	if err != nil {
		return nil, err
	}
	if rest := d.r.Remaining(); rest > 0 {
		return nil, d.fail(fmt.Errorf("%w: %d bytes", format.ErrTrailingData, rest))
	}
	return root, nil
}

func (c *Codec) inflate(data []byte) ([]byte, error) {
	comp := c.opts.Compression
	if comp == types.CompressionAuto {
		comp = format.Sniff(data)
	}

	var (
		rc  io.ReadCloser
		err error
	)
	switch comp {
	case types.CompressionGzip:
		rc, err = gzip.NewReader(bytes.NewReader(data))
	case types.CompressionZlib:
		rc, err = zlib.NewReader(bytes.NewReader(data))
	default:
		return data, nil
	}
	if err != nil {
		return nil, types.Wrap(types.ErrDecode, comp.String()+" header", err)
	}
	defer rc.Close()

	limit := c.limits.MaxDecompressedSize
	out, err := io.ReadAll(io.LimitReader(rc, limit+1))
	if err != nil {
		return nil, types.Wrap(types.ErrDecode, comp.String()+" stream", err)
	}
	if int64(len(out)) > limit {
		return nil, limitErr("decompressed size exceeds %d bytes", limit)
	}
	logger.L.Debug("inflated tag stream", "compression", comp.String(), "in", len(data), "out", len(out))
	return out, nil
}

func limitErr(msg string, args ...any) error {
	return types.Wrap(types.ErrDecode, "decode", types.Wrap(types.ErrLimit, fmt.Sprintf(msg, args...), nil))
}

type decoder struct {
	r      *buf.Reader
	limits types.Limits
}

func (d *decoder) fail(err error) error {
	var te *types.Error
	if errors.As(err, &te) {
		return err
	}
	return types.Wrap(types.ErrDecode, fmt.Sprintf("decode at offset %d", d.r.Offset()), err)
}

func (d *decoder) root() (*nbt.Node, error) {
	id, err := d.r.U8()
	if err != nil {
		return nil, d.fail(err)
	}
	t := format.TagFromID(id)
	if t == types.TagEnd {
		return nil, d.fail(format.ErrRootNotNamed)
	}
	if !t.Valid() {
		return nil, d.fail(fmt.Errorf("%w: %d", format.ErrUnknownTag, id))
	}
	name, err := d.string()
	if err != nil {
		return nil, err
	}
	n := nbt.NewNode(t, nbt.Key(name))
	if err := d.payload(n, 0); err != nil {
		return nil, err
	}
	return n, nil
}

func (d *decoder) string() (string, error) {
	size, err := d.r.U16()
	if err != nil {
		return "", d.fail(err)
	}
	if int(size) > d.limits.MaxStringLen {
		return "", limitErr("string of %d bytes exceeds %d", size, d.limits.MaxStringLen)
	}
	p, err := d.r.Bytes(int(size))
	if err != nil {
		return "", d.fail(err)
	}
	s, err := mutf8.Decode(p)
	if err != nil {
		return "", d.fail(err)
	}
	return s, nil
}

func (d *decoder) count(limit int, what string) (int, error) {
	v, err := d.r.I32()
	if err != nil {
		return 0, d.fail(err)
	}
	if v < 0 {
		return 0, d.fail(fmt.Errorf("%w: %s of %d", format.ErrNegativeLength, what, v))
	}
	if int(v) > limit {
		return 0, limitErr("%s of %d elements exceeds %d", what, v, limit)
	}
	return int(v), nil
}

func (d *decoder) payload(n *nbt.Node, depth int) error {
	switch n.Type() {
	case types.TagByte:
		v, err := d.r.U8()
		if err != nil {
			return d.fail(err)
		}
		n.SetInt(int64(int8(v)))
	case types.TagShort:
		v, err := d.r.I16()
		if err != nil {
			return d.fail(err)
		}
		n.SetInt(int64(v))
	case types.TagInt:
		v, err := d.r.I32()
		if err != nil {
			return d.fail(err)
		}
		n.SetInt(int64(v))
	case types.TagLong:
		v, err := d.r.I64()
		if err != nil {
			return d.fail(err)
		}
		n.SetInt(v)
	case types.TagFloat:
		v, err := d.r.F32()
		if err != nil {
			return d.fail(err)
		}
		n.SetFloat(float64(v))
	case types.TagDouble:
		v, err := d.r.F64()
		if err != nil {
			return d.fail(err)
		}
		n.SetFloat(v)
	case types.TagString:
		s, err := d.string()
		if err != nil {
			return err
		}
		n.SetStr(s)
	case types.TagByteArray:
		size, err := d.count(d.limits.MaxArrayLen, "byte array")
		if err != nil {
			return err
		}
		p, err := d.r.Bytes(size)
		if err != nil {
			return d.fail(err)
		}
		n.SetBytes(append(make([]byte, 0, size), p...))
	case types.TagIntArray:
		size, err := d.count(d.limits.MaxArrayLen, "int array")
		if err != nil {
			return err
		}
		v, err := d.r.Int32s(size)
		if err != nil {
			return d.fail(err)
		}
		n.SetInts(v)
	case types.TagLongArray:
		size, err := d.count(d.limits.MaxArrayLen, "long array")
		if err != nil {
			return err
		}
		v, err := d.r.Int64s(size)
		if err != nil {
			return d.fail(err)
		}
		n.SetLongs(v)
	case types.TagList:
		return d.list(n, depth)
	case types.TagCompound:
		return d.compound(n, depth)
	default:
		return d.fail(fmt.Errorf("%w: %s", format.ErrUnknownTag, n.Type()))
	}
	return nil
}

func (d *decoder) enter(depth int) error {
	if depth+1 > d.limits.MaxDepth {
		return limitErr("nesting deeper than %d", d.limits.MaxDepth)
	}
	return nil
}

func (d *decoder) list(n *nbt.Node, depth int) error {
	if err := d.enter(depth); err != nil {
		return err
	}
	id, err := d.r.U8()
	if err != nil {
		return d.fail(err)
	}
	elem := format.TagFromID(id)
	if elem == types.TagInvalid {
		return d.fail(fmt.Errorf("%w: list element id %d", format.ErrUnknownTag, id))
	}
	size, err := d.count(d.limits.MaxListLen, "list")
	if err != nil {
		return err
	}
	n.SetElemType(elem)
	if size == 0 {
		return nil
	}
	if elem == types.TagEnd {
		return d.fail(fmt.Errorf("%w: %d End elements", format.ErrMixedList, size))
	}
	// Every element occupies at least one byte.
	if size > d.r.Remaining() {
		return d.fail(fmt.Errorf("%w: list of %d elements", buf.ErrTruncated, size))
	}
	children := make([]*nbt.Node, size)
	for i := range children {
		ch := nbt.NewNode(elem, nbt.NoKey)
		if err := d.payload(ch, depth+1); err != nil {
			return err
		}
		children[i] = ch
	}
	n.SetChildren(children)
	return nil
}

func (d *decoder) compound(n *nbt.Node, depth int) error {
	if err := d.enter(depth); err != nil {
		return err
	}
	var (
		children []*nbt.Node
		seen     = make(map[string]struct{})
	)
	for {
		id, err := d.r.U8()
		if err != nil {
			return d.fail(err)
		}
		t := format.TagFromID(id)
		if t == types.TagEnd {
			break
		}
		if t == types.TagInvalid {
			return d.fail(fmt.Errorf("%w: %d", format.ErrUnknownTag, id))
		}
		key, err := d.string()
		if err != nil {
			return err
		}
		if _, dup := seen[key]; dup {
			return d.fail(fmt.Errorf("duplicate key %q", key))
		}
		seen[key] = struct{}{}
		ch := nbt.NewNode(t, nbt.Key(key))
		if err := d.payload(ch, depth+1); err != nil {
			return err
		}
		children = append(children, ch)
	}
	n.SetChildren(children)
	return nil
}
