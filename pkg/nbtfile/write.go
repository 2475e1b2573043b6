package nbtfile

import (
	"fmt"

	"github.com/joshuapare/nbtkit/nbt"
	"github.com/joshuapare/nbtkit/nbt/codec"
	"github.com/joshuapare/nbtkit/nbt/walker"
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Save writes the tree behind c to path. A nil opts writes gzip,
// big-endian, atomically.
func Save(c *nbt.Cursor, path string, opts *SaveOptions) error {
	if opts == nil {
		opts = &SaveOptions{Write: types.SaveOptions{Atomic: true}}
	}
	if opts.CreateBackup && fileExists(path) {
		if err := backup(path); err != nil {
			return err
		}
	}
	return c.SaveToFile(path, codec.New(opts.Codec), opts.Write)
}

// SetValue parses value as a tag of type t and stores it at tagPath,
// replacing any tag already there in the same position. A missing final
// segment is created: a key is added to its compound, and an index equal
// to the list length appends.
//
// Example:
//
//	err := nbtfile.SetValue("level.dat", "Data.Difficulty", types.TagByte, "2", nil)
func SetValue(path, tagPath string, t types.TagType, value string, opts *OperationOptions) error {
	parentSegs, last, err := splitPath(tagPath)
	if err != nil {
		return err
	}
	name := nbt.NoKey
	if !last.IsIndex {
		name = nbt.Key(last.Key)
	}
	node, err := ParseValue(t, value, name)
	if err != nil {
		return err
	}
	defer node.Close()

	return modify(path, opts, func(root *nbt.Cursor) error {
		if err := root.SeekSegments(parentSegs); err != nil {
			return fmt.Errorf("failed to find parent of %q: %w", tagPath, err)
		}
		if err := replaceChild(root, last, node); err != nil {
			return fmt.Errorf("failed to set %q: %w", tagPath, err)
		}
		node.SetOwnership(nbt.Borrowing)
		return nil
	})
}

// Remove deletes the tag at tagPath.
func Remove(path, tagPath string, opts *OperationOptions) error {
	parentSegs, last, err := splitPath(tagPath)
	if err != nil {
		return err
	}
	return modify(path, opts, func(root *nbt.Cursor) error {
		if err := root.SeekSegments(parentSegs); err != nil {
			return fmt.Errorf("failed to find parent of %q: %w", tagPath, err)
		}
		if last.IsIndex {
			err = root.RemoveIndex(last.Index)
		} else {
			err = root.RemoveKey(last.Key)
		}
		if err != nil {
			return fmt.Errorf("failed to remove %q: %w", tagPath, err)
		}
		return nil
	})
}

// CopyTag copies the tag at srcPath in srcFile to dstPath in dstFile,
// which may be the same file. dstPath follows the SetValue rules; a key
// segment renames the copy.
func CopyTag(srcFile, srcPath, dstFile, dstPath string, opts *OperationOptions) error {
	if opts == nil {
		opts = &OperationOptions{}
	}
	parentSegs, last, err := splitPath(dstPath)
	if err != nil {
		return err
	}
	src, err := Get(srcFile, srcPath, &OpenOptions{Codec: opts.Codec})
	if err != nil {
		return err
	}
	dup, err := src.Dup(nbt.Owning)
	src.Close()
	if err != nil {
		return err
	}
	defer dup.Close()
	if last.IsIndex {
		dup.ClearKey()
	} else {
		dup.SetKey(last.Key)
	}

	return modify(dstFile, opts, func(root *nbt.Cursor) error {
		if err := root.SeekSegments(parentSegs); err != nil {
			return fmt.Errorf("failed to find parent of %q: %w", dstPath, err)
		}
		if err := replaceChild(root, last, dup); err != nil {
			return fmt.Errorf("failed to copy to %q: %w", dstPath, err)
		}
		dup.SetOwnership(nbt.Borrowing)
		return nil
	})
}

// Convert re-encodes in into out with the given codec options. The input
// compression is sniffed; its byte order is taken from from.
func Convert(in, out string, from, to types.CodecOptions) error {
	from.Compression = types.CompressionAuto
	cur, err := Open(in, &OpenOptions{Codec: from})
	if err != nil {
		return err
	}
	defer cur.Close()
	return Save(cur, out, &SaveOptions{Codec: to, Write: types.SaveOptions{Atomic: true}})
}

// modify runs the read-edit-validate-write cycle shared by the editing
// operations.
func modify(path string, opts *OperationOptions, edit func(root *nbt.Cursor) error) error {
	if opts == nil {
		opts = &OperationOptions{}
	}
	if !fileExists(path) {
		return types.Wrap(types.ErrIO, "file not found: "+path, nil)
	}
	if opts.CreateBackup && !opts.DryRun {
		if err := backup(path); err != nil {
			return err
		}
	}

	root, c, err := loadForEdit(path, opts)
	if err != nil {
		return err
	}
	defer root.Close()

	if err := edit(root); err != nil {
		return err
	}
	if err := walker.Validate(root.Root(), c.Options().Limits); err != nil {
		return types.Wrap(types.ErrInvalidOperation, "edited tree is invalid", err)
	}
	if opts.DryRun {
		return nil
	}
	return root.SaveToFile(path, c, types.SaveOptions{Atomic: true, Sync: opts.Sync})
}

// replaceChild puts node at seg under the container at cur, keeping the
// position of a tag it replaces.
func replaceChild(cur *nbt.Cursor, seg nbt.Segment, node *nbt.Cursor) error {
	parent := cur.Node()
	if parent == nil || !parent.Type().IsContainer() {
		return types.Wrap(types.ErrInvalidOperation, "parent is not a container", nil)
	}
	if seg.IsIndex && parent.Type() != types.TagList {
		return types.Wrap(types.ErrInvalidOperation, "index into "+parent.Type().String(), nil)
	}
	if !seg.IsIndex && parent.Type() != types.TagCompound {
		return types.Wrap(types.ErrInvalidOperation, "key into "+parent.Type().String(), nil)
	}

	existing := cur.Clone()
	defer existing.Close()
	if seg.IsIndex {
		err := existing.ChildIndex(seg.Index)
		switch {
		case err == nil:
		case seg.Index == parent.ChildCount():
			return cur.InsertBefore(nil, node)
		default:
			return err
		}
		if parent.ChildCount() > 1 && parent.ElemType() != node.Type() {
			return types.Wrap(types.ErrInvalidOperation, fmt.Sprintf("list of %s cannot hold %s", parent.ElemType(), node.Type()), nil)
		}
	} else if err := existing.ChildKey(seg.Key); err != nil {
		return cur.InsertBefore(nil, node)
	}

	// existing now names the slot; step back to the tag before it.
	existing.Prev()
	if seg.IsIndex {
		if err := cur.RemoveIndex(seg.Index); err != nil {
			return err
		}
	} else if err := cur.RemoveKey(seg.Key); err != nil {
		return err
	}
	return cur.InsertAfter(existing, node)
}
