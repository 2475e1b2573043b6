// Package nbt provides a stateful cursor over an NBT-style tag tree.
//
// A tree is a rooted, ordered tree of Nodes. Each node has a TagType, an
// optional key and a payload; List and Compound nodes hold children.
// Cursors point at one node (or at nothing, the Empty state) and keep the
// path of ancestors they descended through, so the tree itself needs no
// parent pointers.
//
// Cursors cloned from one another share a reference-counted Cell holding
// the root. Under the Owning policy the root subtree is released when the
// last cursor is closed; under Borrowing it never is, which is how a node
// built standalone is handed over to the tree it is inserted into:
//
//	root := nbt.NewCompound(nbt.NoKey, nbt.Owning)
//	defer root.Close()
//
//	child := nbt.NewByte(10, nbt.Key("key"), nbt.Borrowing)
//	defer child.Close()
//
//	if err := root.Prepend(child); err != nil {
//		return err
//	}
//	_ = root.ChildKey("key")
//	v, _ := root.Byte() // 10
//
// Bytes on the wire are the business of an Encoder and a Decoder; the
// nbt/codec package provides the standard binary layout. Pack grows its
// output buffer geometrically until the encoder fits.
//
// Cursors are not safe for concurrent use. Cursors sharing a Cell must be
// used from one goroutine at a time.
package nbt
