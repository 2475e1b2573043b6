package nbt

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joshuapare/nbtkit/internal/logger"
	"github.com/joshuapare/nbtkit/internal/mmfile"
	"github.com/joshuapare/nbtkit/internal/writer"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Decoder turns an encoded byte stream into a detached tree. It must not
// retain data: Load hands it memory that is unmapped afterwards.
type Decoder interface {
	Decode(data []byte) (*Node, error)
}

// Encoder serialises the tree under root into dst and returns the number
// of bytes written. When dst is too small it must return an error wrapping
// types.ErrInsufficientBuffer.
type Encoder interface {
	Encode(root *Node, dst []byte) (int, error)
}

// SetLogger installs the logger used for debug records. nil restores the
// discarding default.
func SetLogger(l *slog.Logger) { logger.Set(l) }

// Decode builds an Owning cursor at the root of the tree dec decodes from
// data.
func Decode(dec Decoder, data []byte) (*Cursor, error) {
	root, err := dec.Decode(data)
	if err != nil {
		if _, typed := types.KindOf(err); typed {
			return nil, err
		}
		return nil, types.Wrap(types.ErrDecode, "decode", err)
	}
	if root == nil {
		return nil, types.Wrap(types.ErrDecode, "decoder returned no root", nil)
	}
	return newCursor(root, Owning), nil
}

// Load reads the file at path and decodes it like Decode.
func Load(path string, dec Decoder) (*Cursor, error) {
	data, cleanup, err := mmfile.Map(path)
	if err != nil {
		return nil, types.Wrap(types.ErrIO, "open "+path, err)
	}
	defer func() { _ = cleanup() }()

	c, err := Decode(dec, data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	logger.L.Debug("loaded tree", "path", path, "bytes", len(data))
	return c, nil
}

// Pack encodes the whole tree (from the Cell root, whatever the current
// position) into a freshly sized buffer. The capacity starts at
// 1<<opts.InitialBits and doubles while the encoder reports
// ErrInsufficientBuffer, up to 1<<opts.MaxBits.
func (c *Cursor) Pack(enc Encoder, opts types.SaveOptions) ([]byte, error) {
	root := c.Root()
	if root == nil {
		return nil, invalidOp("pack: cursor has no tree")
	}
	if root.released {
		return nil, types.ErrReleased
	}
	opts = opts.OrDefault()
	for bits := opts.InitialBits; bits <= opts.MaxBits; bits++ {
		dst := make([]byte, 1<<bits)
		n, err := enc.Encode(root, dst)
		if err == nil {
			if n < 0 || n > len(dst) {
				return nil, invalidOp("pack: encoder reported %d bytes for a %d byte buffer", n, len(dst))
			}
			return dst[:n], nil
		}
		if !errors.Is(err, types.ErrInsufficientBuffer) {
			return nil, fmt.Errorf("pack: %w", err)
		}
		logger.L.Debug("encode buffer too small", "capacity", len(dst))
	}
	return nil, types.Wrap(types.ErrInsufficientBuffer,
		fmt.Sprintf("pack: tree does not fit in %d bytes", 1<<opts.MaxBits), nil)
}

// SaveToFile packs the tree and writes it to path. See types.SaveOptions
// for the write modes.
func (c *Cursor) SaveToFile(path string, enc Encoder, opts types.SaveOptions) error {
	if path == "" {
		return types.Wrap(types.ErrIO, "save: empty path", nil)
	}
	data, err := c.Pack(enc, opts)
	if err != nil {
		return err
	}
	w := &writer.FileWriter{Path: path, Atomic: opts.Atomic, Sync: opts.Sync}
	if err := w.Write(data); err != nil {
		return types.Wrap(types.ErrIO, "save "+path, err)
	}
	logger.L.Debug("saved tree", "path", path, "bytes", len(data), "atomic", opts.Atomic)
	return nil
}
