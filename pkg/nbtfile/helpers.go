package nbtfile

import (
	"fmt"
	"io"
	"os"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/codec"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// copyFile copies a file from src to dst.
func copyFile(src, dst string) error {
	srcFile, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer srcFile.Close()

	dstFile, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create destination: %w", err)
	}
	defer dstFile.Close()

	if _, copyErr := io.Copy(dstFile, srcFile); copyErr != nil {
		return fmt.Errorf("failed to copy data: %w", copyErr)
	}

	return dstFile.Close()
}

// fileExists checks if a file exists and is not a directory.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func backup(path string) error {
	backupPath := path + ".bak"
	if err := copyFile(path, backupPath); err != nil {
		return types.Wrap(types.ErrIO, "failed to create backup at "+backupPath, err)
	}
	return nil
}

// loadForEdit reads path and returns the tree together with a codec that
// writes it back in the same compression.
func loadForEdit(path string, opts *OperationOptions) (*nbt.Cursor, *codec.Codec, error) {
	if !fileExists(path) {
		return nil, nil, types.Wrap(types.ErrIO, "file not found: "+path, nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, types.Wrap(types.ErrIO, "failed to read "+path, err)
	}
	readOpts := opts.Codec
	if readOpts.Compression == types.CompressionAuto {
		readOpts.Compression = codec.Sniff(data)
	}
	c := codec.New(readOpts)
	cur, err := nbt.Decode(c, data)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return cur, c, nil
}

// splitPath separates the parent path from the final segment.
func splitPath(tagPath string) ([]nbt.Segment, nbt.Segment, error) {
	segs, err := nbt.ParsePath(tagPath)
	if err != nil {
		return nil, nbt.Segment{}, types.Wrap(types.ErrNotFound, "bad tag path", err)
	}
	if len(segs) == 0 {
		return nil, nbt.Segment{}, types.Wrap(types.ErrInvalidOperation, "tag path must name a child of the root", nil)
	}
	return segs[:len(segs)-1], segs[len(segs)-1], nil
}
