package nbt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joshuapare/nbtkit/pkg/types"
)

// Segment is one step of a tag path: a compound key or a list index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	if s.Key == "" || strings.ContainsAny(s.Key, `.[]" `) {
		return strconv.Quote(s.Key)
	}
	return s.Key
}

// FormatPath renders segments in the syntax ParsePath accepts.
func FormatPath(segs []Segment) string {
	var b strings.Builder
	for i, s := range segs {
		if i > 0 && !s.IsIndex {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// ParsePath splits a tag path such as
//
//	Data.Player.Inventory[0]."custom.name"
//
// into segments. Keys are separated by dots; indexes are bracketed and may
// follow a key or another index directly. Keys containing separators are
// written as Go-style quoted strings. The empty path has no segments.
func ParsePath(path string) ([]Segment, error) {
	var segs []Segment
	i := 0
	for i < len(path) {
		switch path[i] {
		case '.':
			if len(segs) == 0 || i+1 == len(path) {
				return nil, fmt.Errorf("path %q: unexpected '.' at %d", path, i)
			}
			i++
			if path[i] == '.' || path[i] == '[' {
				return nil, fmt.Errorf("path %q: empty key at %d", path, i)
			}
		case '[':
			end := strings.IndexByte(path[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("path %q: unterminated index at %d", path, i)
			}
			idx, err := strconv.Atoi(path[i+1 : i+end])
			if err != nil || idx < 0 {
				return nil, fmt.Errorf("path %q: bad index %q", path, path[i+1:i+end])
			}
			segs = append(segs, Segment{Index: idx, IsIndex: true})
			i += end + 1
		case '"':
			quoted, err := strconv.QuotedPrefix(path[i:])
			if err != nil {
				return nil, fmt.Errorf("path %q: bad quoted key at %d", path, i)
			}
			key, _ := strconv.Unquote(quoted)
			segs = append(segs, Segment{Key: key})
			i += len(quoted)
			if i < len(path) && path[i] != '.' && path[i] != '[' {
				return nil, fmt.Errorf("path %q: unexpected %q after quoted key", path, path[i])
			}
		default:
			if len(segs) > 0 && path[i-1] != '.' {
				return nil, fmt.Errorf("path %q: missing '.' at %d", path, i)
			}
			end := strings.IndexAny(path[i:], ".[")
			if end < 0 {
				end = len(path) - i
			}
			segs = append(segs, Segment{Key: path[i : i+end]})
			i += end
		}
	}
	return segs, nil
}

// Seek descends along path relative to the current node. If any step
// fails the cursor is left where it started.
func (c *Cursor) Seek(path string) error {
	segs, err := ParsePath(path)
	if err != nil {
		return types.Wrap(types.ErrNotFound, "seek", err)
	}
	return c.SeekSegments(segs)
}

// SeekSegments is Seek over pre-parsed segments.
func (c *Cursor) SeekSegments(segs []Segment) error {
	start, depth := c.current, len(c.stack)
	for i, s := range segs {
		var err error
		if s.IsIndex {
			err = c.ChildIndex(s.Index)
		} else {
			err = c.ChildKey(s.Key)
		}
		if err != nil {
			c.current = start
			c.stack = c.stack[:depth]
			return fmt.Errorf("seek %s: %w", FormatPath(segs[:i+1]), err)
		}
	}
	return nil
}

// Path returns the location of the current node relative to the root of
// the ancestor stack. Compound children are addressed by key, list
// elements by index.
func (c *Cursor) Path() string {
	if c.current == nil {
		return ""
	}
	segs := make([]Segment, 0, len(c.stack))
	for i, parent := range c.stack {
		child := c.current
		if i+1 < len(c.stack) {
			child = c.stack[i+1]
		}
		segs = append(segs, SegmentOf(parent, child))
	}
	return FormatPath(segs)
}

// SegmentOf returns the segment addressing child within parent: its key
// inside a Compound, its position otherwise.
func SegmentOf(parent, child *Node) Segment {
	if parent.typ == types.TagCompound && child.hasKey {
		return Segment{Key: child.key}
	}
	idx := 0
	for n := parent.first; n != nil && n != child; n = n.next {
		idx++
	}
	return Segment{Index: idx, IsIndex: true}
}
