// Package buf contains bounds-checked, endian-aware helpers for the tag
// stream codec.
package buf

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
)

// ErrTruncated indicates the buffer ended before a field was complete.
var ErrTruncated = errors.New("buf: truncated input")

// Reader consumes fixed-width fields from a byte slice. It never panics on
// short input; every read reports ErrTruncated instead.
type Reader struct {
	b     []byte
	off   int
	order binary.ByteOrder
}

// NewReader returns a Reader over b using the given byte order.
func NewReader(b []byte, order binary.ByteOrder) *Reader {
	return &Reader{b: b, order: order}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.b) - r.off }

func (r *Reader) take(n int) ([]byte, error) {
	end, err := CheckSpan(len(r.b), r.off, n, 1)
	if err != nil {
		return nil, fmt.Errorf("%w at offset %d: %v", ErrTruncated, r.off, err)
	}
	p := r.b[r.off:end]
	r.off = end
	return p, nil
}

// U8 reads one byte.
func (r *Reader) U8() (uint8, error) {
	p, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return p[0], nil
}

// U16 reads an unsigned 16-bit integer.
func (r *Reader) U16() (uint16, error) {
	p, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return r.order.Uint16(p), nil
}

// I16 reads a signed 16-bit integer.
func (r *Reader) I16() (int16, error) {
	v, err := r.U16()
	return int16(v), err
}

// I32 reads a signed 32-bit integer.
func (r *Reader) I32() (int32, error) {
	p, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return int32(r.order.Uint32(p)), nil
}

// I64 reads a signed 64-bit integer.
func (r *Reader) I64() (int64, error) {
	p, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return int64(r.order.Uint64(p)), nil
}

// F32 reads an IEEE-754 single.
func (r *Reader) F32() (float32, error) {
	p, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(r.order.Uint32(p)), nil
}

// F64 reads an IEEE-754 double.
func (r *Reader) F64() (float64, error) {
	p, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(r.order.Uint64(p)), nil
}

// Bytes returns the next n bytes without copying.
func (r *Reader) Bytes(n int) ([]byte, error) {
	return r.take(n)
}

// Int32s reads count 32-bit integers into a fresh slice.
func (r *Reader) Int32s(count int) ([]int32, error) {
	p, err := r.span(count, 4)
	if err != nil {
		return nil, err
	}
	out := make([]int32, count)
	for i := range out {
		out[i] = int32(r.order.Uint32(p[i*4:]))
	}
	return out, nil
}

// Int64s reads count 64-bit integers into a fresh slice.
func (r *Reader) Int64s(count int) ([]int64, error) {
	p, err := r.span(count, 8)
	if err != nil {
		return nil, err
	}
	out := make([]int64, count)
	for i := range out {
		out[i] = int64(r.order.Uint64(p[i*8:]))
	}
	return out, nil
}

func (r *Reader) span(count, size int) ([]byte, error) {
	end, err := CheckSpan(len(r.b), r.off, count, size)
	if err != nil {
		return nil, fmt.Errorf("%w at offset %d: %v", ErrTruncated, r.off, err)
	}
	p := r.b[r.off:end]
	r.off = end
	return p, nil
}
