package nbtfile

import (
	"fmt"
	"os"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/codec"
	"github.com/joshuapare/nbtkit/nbt/walker"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// FileInfo describes a tag file without exposing its tree.
type FileInfo struct {
	Path        string
	Size        int64
	Compression types.Compression
	ByteOrder   types.ByteOrder
	RootName    string
	RootType    types.TagType
	Stats       *walker.Stats
}

// Open decodes the file at path into an Owning cursor at its root. The
// caller must Close it.
func Open(path string, opts *OpenOptions) (*nbt.Cursor, error) {
	if opts == nil {
		opts = &OpenOptions{}
	}
	return nbt.Load(path, codec.New(opts.Codec))
}

// OpenBytes decodes an in-memory stream. data is not retained.
func OpenBytes(data []byte, opts *OpenOptions) (*nbt.Cursor, error) {
	if opts == nil {
		opts = &OpenOptions{}
	}
	return nbt.Decode(codec.New(opts.Codec), data)
}

// Get opens path and returns a cursor positioned at tagPath. Closing the
// returned cursor frees the whole tree.
func Get(path, tagPath string, opts *OpenOptions) (*nbt.Cursor, error) {
	cur, err := Open(path, opts)
	if err != nil {
		return nil, err
	}
	if err := cur.Seek(tagPath); err != nil {
		cur.Close()
		return nil, fmt.Errorf("failed to find tag %q: %w", tagPath, err)
	}
	return cur, nil
}

// Info returns the container format and tree statistics of a file.
func Info(path string, opts *OpenOptions) (*FileInfo, error) {
	if opts == nil {
		opts = &OpenOptions{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, types.Wrap(types.ErrIO, "failed to read "+path, err)
	}
	cur, err := OpenBytes(data, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	defer cur.Close()

	stats, err := walker.Count(cur.Root())
	if err != nil {
		return nil, err
	}
	name, _ := cur.Key()
	return &FileInfo{
		Path:        path,
		Size:        int64(len(data)),
		Compression: codec.Sniff(data),
		ByteOrder:   opts.Codec.ByteOrder,
		RootName:    name,
		RootType:    cur.Type(),
		Stats:       stats,
	}, nil
}
