package wire

import (
	"encoding/binary"

	"github.com/cockroachdb/errors"
)

// Width is the byte width of an integer field.
type Width int

const (
	Width8  Width = 1
	Width16 Width = 2
	Width32 Width = 4
	Width64 Width = 8
)

// Valid reports whether w is one of the supported field widths.
func (w Width) Valid() bool {
	switch w {
	case Width8, Width16, Width32, Width64:
		return true
	}
	return false
}

// Max returns the largest value a field of this width can hold.
func (w Width) Max() uint64 {
	if w >= Width64 {
		return ^uint64(0)
	}
	return 1<<(8*uint(w)) - 1
}

// Reader is a forward-only cursor over an immutable byte slice.
//
// The first failure is recorded and every later read becomes a no-op that
// returns a zero value, so decoders can read a whole layout and check Err
// once at the end.
type Reader struct {
	buf  []byte
	pos  int
	base int
	// short is the error kind reported when a read runs past the end of buf.
	short error
	err   error
}

// NewReader returns a Reader over b. Running out of bytes is reported as
// ErrTruncatedInput.
func NewReader(b []byte) *Reader {
	return &Reader{buf: b, short: ErrTruncatedInput}
}

// Offset returns the absolute offset of the cursor.
func (r *Reader) Offset() int {
	return r.base + r.pos
}

// Consumed returns the number of bytes read from this reader.
func (r *Reader) Consumed() int {
	return r.pos
}

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int {
	return len(r.buf) - r.pos
}

// Err returns the first failure recorded by the reader.
func (r *Reader) Err() error {
	return r.err
}

// Fail records err at the current offset.
func (r *Reader) Fail(err error) {
	r.FailAt(r.Offset(), err)
}

// FailAt records err at offset. Errors that already carry an offset are kept
// as they are.
func (r *Reader) FailAt(offset int, err error) {
	if r.err != nil || err == nil {
		return
	}
	var we *Error
	if errors.As(err, &we) {
		r.err = err
		return
	}
	r.err = &Error{Kind: err, Offset: offset}
}

// Failf records a failure of the given kind at the current offset.
func (r *Reader) Failf(kind error, format string, args ...any) {
	if r.err != nil {
		return
	}
	r.err = NewError(kind, r.Offset(), format, args...)
}

func (r *Reader) take(n int) ([]byte, bool) {
	if r.err != nil {
		return nil, false
	}
	if n < 0 || n > r.Remaining() {
		r.err = NewError(r.short, r.Offset(), "need %d bytes, %d remain", n, r.Remaining())
		return nil, false
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, true
}

func (r *Reader) Uint8() uint8 {
	b, ok := r.take(1)
	if !ok {
		return 0
	}
	return b[0]
}

func (r *Reader) Uint16() uint16 {
	b, ok := r.take(2)
	if !ok {
		return 0
	}
	return binary.LittleEndian.Uint16(b)
}

func (r *Reader) Uint32() uint32 {
	b, ok := r.take(4)
	if !ok {
		return 0
	}
	return binary.LittleEndian.Uint32(b)
}

func (r *Reader) Uint64() uint64 {
	b, ok := r.take(8)
	if !ok {
		return 0
	}
	return binary.LittleEndian.Uint64(b)
}

// Uint reads an unsigned integer of the given width.
func (r *Reader) Uint(w Width) uint64 {
	switch w {
	case Width8:
		return uint64(r.Uint8())
	case Width16:
		return uint64(r.Uint16())
	case Width32:
		return uint64(r.Uint32())
	case Width64:
		return r.Uint64()
	}
	r.Failf(ErrUnsupportedWidth, "width %d", w)
	return 0
}

// Count reads an array count field.
func (r *Reader) Count(w Width) uint64 {
	return r.Uint(w)
}

// Reserved reads a reserved field and requires it to be zero.
func (r *Reader) Reserved(w Width) {
	off := r.Offset()
	if v := r.Uint(w); v != 0 && r.err == nil {
		r.err = NewError(ErrReservedNotZero, off, "value 0x%x", v)
	}
}

// Padding reads n padding bytes and requires them to be zero.
func (r *Reader) Padding(n int) {
	off := r.Offset()
	b, ok := r.take(n)
	if !ok {
		return
	}
	for i, v := range b {
		if v != 0 {
			r.err = NewError(ErrReservedNotZero, off+i, "padding byte 0x%02x", v)
			return
		}
	}
}

// Fixed fills dst with the next len(dst) bytes. The bytes are copied, so dst
// never aliases the input buffer.
func (r *Reader) Fixed(dst []byte) {
	b, ok := r.take(len(dst))
	if !ok {
		return
	}
	copy(dst, b)
}

// Bytes returns a copy of the next n bytes. Zero bytes decode as nil.
func (r *Reader) Bytes(n int) []byte {
	b, ok := r.take(n)
	if !ok || n == 0 {
		return nil
	}
	out := make([]byte, n)
	copy(out, b)
	return out
}

// Region consumes the next n bytes and returns a reader confined to them.
// Running past the end of the region is reported as short. Failures inside
// the region must be propagated back with Join.
func (r *Reader) Region(n int, short error) *Reader {
	start := r.Offset()
	b, ok := r.take(n)
	if !ok {
		return &Reader{short: short, base: start, err: r.err}
	}
	return &Reader{buf: b, base: start, short: short}
}

// Join propagates a failure from a region back to r.
func (r *Reader) Join(sub *Reader) {
	if r.err == nil && sub.err != nil {
		r.err = sub.err
	}
}

// Frame reads a 4 byte size field that counts itself and returns a reader
// confined to the rest of the record. Input shorter than the declared size
// fails with the short error of r; running out of bytes inside the frame
// fails with ErrSizeMismatch.
func (r *Reader) Frame() (*Reader, int) {
	start := r.Offset()
	size := r.Uint32()
	if r.err != nil {
		return &Reader{short: ErrSizeMismatch, base: start, err: r.err}, 0
	}
	if size < 4 {
		r.err = NewError(ErrSizeMismatch, start, "declared size %d is smaller than the size field", size)
		return &Reader{short: ErrSizeMismatch, base: start, err: r.err}, 0
	}
	if uint64(size-4) > uint64(r.Remaining()) {
		r.err = NewError(r.short, start, "declared size %d, %d bytes available", size, r.Remaining()+4)
		return &Reader{short: ErrSizeMismatch, base: start, err: r.err}, 0
	}
	return r.Region(int(size)-4, ErrSizeMismatch), int(size)
}
