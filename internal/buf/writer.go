package buf

import (
	"encoding/binary"
	"io"
	"math"
)

// Writer emits fixed-width fields to an io.Writer. The first write error
// is sticky: later calls are no-ops and Err reports it.
type Writer struct {
	w     io.Writer
	order binary.ByteOrder
	tmp   [8]byte
	err   error
}

// NewWriter returns a Writer over w using the given byte order.
func NewWriter(w io.Writer, order binary.ByteOrder) *Writer {
	return &Writer{w: w, order: order}
}

// Err returns the first error encountered.
func (w *Writer) Err() error { return w.err }

func (w *Writer) write(p []byte) {
	if w.err != nil {
		return
	}
	_, w.err = w.w.Write(p)
}

// U8 writes one byte.
func (w *Writer) U8(v uint8) {
	w.tmp[0] = v
	w.write(w.tmp[:1])
}

// U16 writes an unsigned 16-bit integer.
func (w *Writer) U16(v uint16) {
	w.order.PutUint16(w.tmp[:2], v)
	w.write(w.tmp[:2])
}

// I32 writes a signed 32-bit integer.
func (w *Writer) I32(v int32) {
	w.order.PutUint32(w.tmp[:4], uint32(v))
	w.write(w.tmp[:4])
}

// I64 writes a signed 64-bit integer.
func (w *Writer) I64(v int64) {
	w.order.PutUint64(w.tmp[:8], uint64(v))
	w.write(w.tmp[:8])
}

// F32 writes an IEEE-754 single.
func (w *Writer) F32(v float32) {
	w.order.PutUint32(w.tmp[:4], math.Float32bits(v))
	w.write(w.tmp[:4])
}

// F64 writes an IEEE-754 double.
func (w *Writer) F64(v float64) {
	w.order.PutUint64(w.tmp[:8], math.Float64bits(v))
	w.write(w.tmp[:8])
}

// Bytes writes p verbatim.
func (w *Writer) Bytes(p []byte) {
	w.write(p)
}
