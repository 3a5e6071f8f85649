package wire

import (
	"encoding/binary"
)

// Writer appends little-endian fields to a growing buffer. Like Reader it
// keeps the first failure and ignores writes after it.
type Writer struct {
	buf []byte
	err error
}

// NewWriter returns a Writer with capacity preallocated.
func NewWriter(capacity int) *Writer {
	return &Writer{buf: make([]byte, 0, capacity)}
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// Bytes returns the written bytes.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Err returns the first failure recorded by the writer.
func (w *Writer) Err() error {
	return w.err
}

// Fail records err at the current output offset.
func (w *Writer) Fail(err error) {
	if w.err != nil || err == nil {
		return
	}
	if _, ok := err.(*Error); ok {
		w.err = err
		return
	}
	w.err = &Error{Kind: err, Offset: len(w.buf)}
}

// Failf records a failure of the given kind at the current output offset.
func (w *Writer) Failf(kind error, format string, args ...any) {
	if w.err != nil {
		return
	}
	w.err = NewError(kind, len(w.buf), format, args...)
}

func (w *Writer) Uint8(v uint8) {
	if w.err != nil {
		return
	}
	w.buf = append(w.buf, v)
}

func (w *Writer) Uint16(v uint16) {
	if w.err != nil {
		return
	}
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) Uint32(v uint32) {
	if w.err != nil {
		return
	}
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *Writer) Uint64(v uint64) {
	if w.err != nil {
		return
	}
	w.buf = binary.LittleEndian.AppendUint64(w.buf, v)
}

// Uint writes v as an unsigned integer of the given width. Values that do
// not fit fail with ErrCountOverflow.
func (w *Writer) Uint(width Width, v uint64) {
	if !width.Valid() {
		w.Failf(ErrUnsupportedWidth, "width %d", width)
		return
	}
	if v > width.Max() {
		w.Failf(ErrCountOverflow, "value %d does not fit in %d bytes", v, width)
		return
	}
	switch width {
	case Width8:
		w.Uint8(uint8(v))
	case Width16:
		w.Uint16(uint16(v))
	case Width32:
		w.Uint32(uint32(v))
	case Width64:
		w.Uint64(v)
	}
}

// Count writes an array count field derived from a live element count.
func (w *Writer) Count(width Width, n int) {
	if n < 0 {
		w.Failf(ErrCountOverflow, "negative count %d", n)
		return
	}
	w.Uint(width, uint64(n))
}

// Reserved writes a zero reserved field.
func (w *Writer) Reserved(width Width) {
	w.Uint(width, 0)
}

// Padding writes n zero bytes.
func (w *Writer) Padding(n int) {
	if w.err != nil {
		return
	}
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, 0)
	}
}

// Fixed writes b as is.
func (w *Writer) Fixed(b []byte) {
	if w.err != nil {
		return
	}
	w.buf = append(w.buf, b...)
}

// PaddingSize returns the number of zero bytes needed to align size to a
// multiple of alignment.
func PaddingSize(size, alignment int) int {
	if alignment <= 0 {
		return 0
	}
	if rem := size % alignment; rem != 0 {
		return alignment - rem
	}
	return 0
}
