package nbt

import (
	"fmt"

	"github.com/joshuapare/nbtkit/pkg/types"
)

// checked returns the current node when it is live and of type t.
func (c *Cursor) checked(t types.TagType) (*Node, error) {
	n := c.current
	if n == nil {
		return nil, types.Wrap(types.ErrTypeMismatch, fmt.Sprintf("want %s, cursor is empty", t), nil)
	}
	if n.released {
		return nil, types.ErrReleased
	}
	if n.typ != t {
		return nil, types.Wrap(types.ErrTypeMismatch, fmt.Sprintf("want %s, have %s", t, n.typ), nil)
	}
	return n, nil
}

// Byte returns the value of a Byte node.
func (c *Cursor) Byte() (int8, error) {
	n, err := c.checked(types.TagByte)
	if err != nil {
		return 0, err
	}
	return int8(n.i), nil
}

// Short returns the value of a Short node.
func (c *Cursor) Short() (int16, error) {
	n, err := c.checked(types.TagShort)
	if err != nil {
		return 0, err
	}
	return int16(n.i), nil
}

// Int returns the value of an Int node.
func (c *Cursor) Int() (int32, error) {
	n, err := c.checked(types.TagInt)
	if err != nil {
		return 0, err
	}
	return int32(n.i), nil
}

// Long returns the value of a Long node.
func (c *Cursor) Long() (int64, error) {
	n, err := c.checked(types.TagLong)
	if err != nil {
		return 0, err
	}
	return n.i, nil
}

// Integer returns the widened value of any Byte, Short, Int or Long node.
func (c *Cursor) Integer() (int64, error) {
	n := c.current
	switch {
	case n == nil:
		return 0, types.Wrap(types.ErrTypeMismatch, "want integer, cursor is empty", nil)
	case n.released:
		return 0, types.ErrReleased
	case !n.typ.IsInteger():
		return 0, types.Wrap(types.ErrTypeMismatch, fmt.Sprintf("want integer, have %s", n.typ), nil)
	}
	return n.i, nil
}

// Float returns the value of a Float node.
func (c *Cursor) Float() (float32, error) {
	n, err := c.checked(types.TagFloat)
	if err != nil {
		return 0, err
	}
	return float32(n.f), nil
}

// Double returns the value of a Double node.
func (c *Cursor) Double() (float64, error) {
	n, err := c.checked(types.TagDouble)
	if err != nil {
		return 0, err
	}
	return n.f, nil
}

// StringValue returns the value of a String node.
func (c *Cursor) StringValue() (string, error) {
	n, err := c.checked(types.TagString)
	if err != nil {
		return "", err
	}
	return n.str, nil
}

// ByteArray returns the payload of a ByteArray node. The slice aliases the
// node's storage and is only valid while the node lives.
func (c *Cursor) ByteArray() ([]byte, error) {
	n, err := c.checked(types.TagByteArray)
	if err != nil {
		return nil, err
	}
	return n.bytes, nil
}

// IntArray returns the payload of an IntArray node without copying.
func (c *Cursor) IntArray() ([]int32, error) {
	n, err := c.checked(types.TagIntArray)
	if err != nil {
		return nil, err
	}
	return n.ints, nil
}

// LongArray returns the payload of a LongArray node without copying.
func (c *Cursor) LongArray() ([]int64, error) {
	n, err := c.checked(types.TagLongArray)
	if err != nil {
		return nil, err
	}
	return n.longs, nil
}

func (c *Cursor) SetByte(v int8) error {
	n, err := c.checked(types.TagByte)
	if err != nil {
		return err
	}
	n.i = int64(v)
	return nil
}

func (c *Cursor) SetShort(v int16) error {
	n, err := c.checked(types.TagShort)
	if err != nil {
		return err
	}
	n.i = int64(v)
	return nil
}

func (c *Cursor) SetInt(v int32) error {
	n, err := c.checked(types.TagInt)
	if err != nil {
		return err
	}
	n.i = int64(v)
	return nil
}

func (c *Cursor) SetLong(v int64) error {
	n, err := c.checked(types.TagLong)
	if err != nil {
		return err
	}
	n.i = v
	return nil
}

func (c *Cursor) SetFloat(v float32) error {
	n, err := c.checked(types.TagFloat)
	if err != nil {
		return err
	}
	n.f = float64(v)
	return nil
}

func (c *Cursor) SetDouble(v float64) error {
	n, err := c.checked(types.TagDouble)
	if err != nil {
		return err
	}
	n.f = v
	return nil
}

// SetString replaces the value of a String node.
func (c *Cursor) SetString(v string) error {
	n, err := c.checked(types.TagString)
	if err != nil {
		return err
	}
	n.str = v
	return nil
}

// SetByteArray replaces a ByteArray payload with a copy of v.
func (c *Cursor) SetByteArray(v []byte) error {
	n, err := c.checked(types.TagByteArray)
	if err != nil {
		return err
	}
	n.bytes = append(make([]byte, 0, len(v)), v...)
	return nil
}

// SetIntArray replaces an IntArray payload with a copy of v.
func (c *Cursor) SetIntArray(v []int32) error {
	n, err := c.checked(types.TagIntArray)
	if err != nil {
		return err
	}
	n.ints = append(make([]int32, 0, len(v)), v...)
	return nil
}

// SetLongArray replaces a LongArray payload with a copy of v.
func (c *Cursor) SetLongArray(v []int64) error {
	n, err := c.checked(types.TagLongArray)
	if err != nil {
		return err
	}
	n.longs = append(make([]int64, 0, len(v)), v...)
	return nil
}

// Key returns the current node's key. It reports false when the node has
// no key or the cursor is Empty.
func (c *Cursor) Key() (string, bool) {
	if c.current == nil {
		return "", false
	}
	return c.current.key, c.current.hasKey
}

// SetKey sets the current node's key. Uniqueness among compound siblings
// is the caller's concern. No-op when Empty.
func (c *Cursor) SetKey(key string) {
	if c.current == nil {
		return
	}
	c.current.key = key
	c.current.hasKey = true
}

// ClearKey removes the current node's key. No-op when Empty.
func (c *Cursor) ClearKey() {
	if c.current == nil {
		return
	}
	c.current.key = ""
	c.current.hasKey = false
}
