package buf

import "errors"

// ErrFull indicates a Fixed sink ran out of capacity.
var ErrFull = errors.New("buf: fixed buffer full")

// Fixed is an io.Writer over a caller-supplied slice that never grows.
// A write that does not fit is rejected whole with ErrFull.
type Fixed struct {
	dst []byte
	n   int
}

// NewFixed returns a sink writing into dst[:len(dst)].
func NewFixed(dst []byte) *Fixed {
	return &Fixed{dst: dst}
}

// Write implements io.Writer.
func (f *Fixed) Write(p []byte) (int, error) {
	end, ok := AddOverflowSafe(f.n, len(p))
	if !ok || end > len(f.dst) {
		return 0, ErrFull
	}
	copy(f.dst[f.n:end], p)
	f.n = end
	return len(p), nil
}

// Len returns the number of bytes written.
func (f *Fixed) Len() int { return f.n }
