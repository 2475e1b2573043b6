package nbt

import (
	"github.com/joshuapare/nbtkit/pkg/types"
)

// Name is an optional node key. Compound children carry one; list elements
// and roots normally do not. The empty string is a real key, distinct from
// NoKey.
type Name struct {
	s  string
	ok bool
}

// NoKey is the absent name.
var NoKey = Name{}

// Key returns a present name.
func Key(s string) Name { return Name{s: s, ok: true} }

// Get returns the key and whether it is present.
func (n Name) Get() (string, bool) { return n.s, n.ok }

// Node is one value in a tag tree.
//
// Nodes form a rooted ordered tree through first-child and doubly linked
// sibling pointers. There is no parent back-reference: cursors carry an
// ancestor stack instead.
type Node struct {
	typ    types.TagType
	key    string
	hasKey bool

	// Payload. Integer tags widen into i, Float/Double into f.
	i     int64
	f     float64
	str   string
	bytes []byte
	ints  []int32
	longs []int64
	elem  types.TagType // list element type, kept for empty lists

	prev  *Node
	next  *Node
	first *Node

	released bool
}

// NewNode allocates a detached node with a zero payload. It is the raw
// constructor used by decoders; it does not validate t.
func NewNode(t types.TagType, name Name) *Node {
	n := &Node{typ: t, key: name.s, hasKey: name.ok}
	if t == types.TagList {
		n.elem = types.TagEnd
	}
	return n
}

// Type returns the node's tag.
func (n *Node) Type() types.TagType { return n.typ }

// Key returns the node's key and whether it has one.
func (n *Node) Key() (string, bool) { return n.key, n.hasKey }

// Int returns the widened integer payload of Byte/Short/Int/Long nodes.
func (n *Node) Int() int64 { return n.i }

// Float returns the widened payload of Float/Double nodes.
func (n *Node) Float() float64 { return n.f }

// Str returns the payload of a String node.
func (n *Node) Str() string { return n.str }

// Bytes returns the ByteArray payload without copying.
func (n *Node) Bytes() []byte { return n.bytes }

// Ints returns the IntArray payload without copying.
func (n *Node) Ints() []int32 { return n.ints }

// Longs returns the LongArray payload without copying.
func (n *Node) Longs() []int64 { return n.longs }

// FirstChild returns the head of the child chain, or nil.
func (n *Node) FirstChild() *Node { return n.first }

// Next returns the following sibling, or nil.
func (n *Node) Next() *Node { return n.next }

// Prev returns the preceding sibling, or nil.
func (n *Node) Prev() *Node { return n.prev }

// Released reports whether the node has been freed.
func (n *Node) Released() bool { return n.released }

// ElemType returns a list's element type: the tag of its first child, or
// the remembered element type when the list is empty (TagEnd if unknown).
// Non-list nodes report TagInvalid.
func (n *Node) ElemType() types.TagType {
	if n.typ != types.TagList {
		return types.TagInvalid
	}
	if n.first != nil {
		return n.first.typ
	}
	return n.elem
}

// ChildCount returns the number of direct children.
func (n *Node) ChildCount() int {
	count := 0
	for ch := n.first; ch != nil; ch = ch.next {
		count++
	}
	return count
}

// SetInt stores an integer payload.
func (n *Node) SetInt(v int64) { n.i = v }

// SetFloat stores a floating-point payload.
func (n *Node) SetFloat(v float64) { n.f = v }

// SetStr stores a string payload.
func (n *Node) SetStr(s string) { n.str = s }

// SetBytes stores a ByteArray payload. The node takes ownership of b.
func (n *Node) SetBytes(b []byte) { n.bytes = b }

// SetInts stores an IntArray payload. The node takes ownership of v.
func (n *Node) SetInts(v []int32) { n.ints = v }

// SetLongs stores a LongArray payload. The node takes ownership of v.
func (n *Node) SetLongs(v []int64) { n.longs = v }

// SetElemType records a list's element type for when it has no children.
func (n *Node) SetElemType(t types.TagType) { n.elem = t }

// SetChildren replaces the child chain with children, linked in order.
// The previous chain is dropped, not released.
func (n *Node) SetChildren(children []*Node) {
	n.first = nil
	var prev *Node
	for _, ch := range children {
		ch.prev = prev
		ch.next = nil
		if prev == nil {
			n.first = ch
		} else {
			prev.next = ch
		}
		prev = ch
	}
}

// AppendChild links c at the tail of the child chain.
func (n *Node) AppendChild(c *Node) {
	c.next = nil
	if n.first == nil {
		c.prev = nil
		n.first = c
		return
	}
	tail := n.first
	for tail.next != nil {
		tail = tail.next
	}
	tail.next = c
	c.prev = tail
}

// tail returns the last child, or nil.
func (n *Node) tail() *Node {
	t := n.first
	if t == nil {
		return nil
	}
	for t.next != nil {
		t = t.next
	}
	return t
}

// hasChild reports whether c is a direct child of n (identity scan).
func (n *Node) hasChild(c *Node) bool {
	for ch := n.first; ch != nil; ch = ch.next {
		if ch == c {
			return true
		}
	}
	return false
}

// detach unlinks c from n's child chain and repairs neighbours and the
// first-child link. c must be a direct child of n.
func (n *Node) detach(c *Node) {
	if c.prev != nil {
		c.prev.next = c.next
	} else {
		n.first = c.next
	}
	if c.next != nil {
		c.next.prev = c.prev
	}
	c.prev = nil
	c.next = nil
}

// release frees n and every descendant. Each child is detached from the
// live chain before its own subtree is released, because releasing
// rewrites the links the loop would otherwise follow.
func (n *Node) release() {
	for n.first != nil {
		ch := n.first
		n.detach(ch)
		ch.release()
	}
	n.str = ""
	n.bytes = nil
	n.ints = nil
	n.longs = nil
	n.released = true
}

// cloneLeaf copies a non-container node, deep-copying array storage.
func (n *Node) cloneLeaf() *Node {
	out := &Node{
		typ:    n.typ,
		key:    n.key,
		hasKey: n.hasKey,
		i:      n.i,
		f:      n.f,
		str:    n.str,
	}
	if n.bytes != nil {
		out.bytes = append([]byte(nil), n.bytes...)
	}
	if n.ints != nil {
		out.ints = append([]int32(nil), n.ints...)
	}
	if n.longs != nil {
		out.longs = append([]int64(nil), n.longs...)
	}
	return out
}
