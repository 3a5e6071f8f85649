package wire

import "fmt"

// Serializer is implemented by every value that can be written to the wire.
// Size must report exactly the number of bytes Serialize emits.
type Serializer interface {
	Size() int
	Serialize(w *Writer)
}

// DecodeFunc decodes one value from r. Failures are recorded on r.
type DecodeFunc[T any] func(r *Reader) T

// Marshal serializes s into a buffer of exactly s.Size() bytes.
func Marshal(s Serializer) ([]byte, error) {
	if s == nil {
		return nil, &Error{Kind: ErrNoActiveVariant, Offset: 0}
	}
	size := s.Size()
	w := NewWriter(size)
	s.Serialize(w)
	if err := w.Err(); err != nil {
		return nil, err
	}
	if w.Len() != size {
		return nil, NewError(ErrSizeMismatch, w.Len(), "%T serialized %d bytes, reported size %d", s, w.Len(), size)
	}
	return w.Bytes(), nil
}

// Unmarshal decodes one value from the front of b and reports how many
// bytes it consumed. Trailing bytes are left untouched.
func Unmarshal[T any](b []byte, decode func(r *Reader) T) (T, int, error) {
	r := NewReader(b)
	v := decode(r)
	if err := r.Err(); err != nil {
		var zero T
		return zero, 0, err
	}
	return v, r.Consumed(), nil
}

// Enum8 is satisfied by closed single-byte enumerations.
type Enum8 interface {
	~uint8
	Valid() bool
}

// Enum16 is satisfied by closed two-byte enumerations.
type Enum16 interface {
	~uint16
	Valid() bool
}

// ReadEnum8 reads a single-byte enumeration and rejects values the schema
// does not declare.
func ReadEnum8[T Enum8](r *Reader) T {
	off := r.Offset()
	v := T(r.Uint8())
	if r.Err() == nil && !v.Valid() {
		r.FailAt(off, NewError(ErrUnrecognizedVariant, off, "%T value 0x%02x", v, uint8(v)))
	}
	return v
}

// ReadEnum16 reads a two-byte enumeration and rejects values the schema does
// not declare.
func ReadEnum16[T Enum16](r *Reader) T {
	off := r.Offset()
	v := T(r.Uint16())
	if r.Err() == nil && !v.Valid() {
		r.FailAt(off, NewError(ErrUnrecognizedVariant, off, "%T value 0x%04x", v, uint16(v)))
	}
	return v
}

// WriteEnum8 writes a single-byte enumeration, refusing undeclared values.
func WriteEnum8[T Enum8](w *Writer, v T) {
	if !v.Valid() {
		w.Failf(ErrUnrecognizedVariant, "%T value 0x%02x", v, uint8(v))
		return
	}
	w.Uint8(uint8(v))
}

// WriteEnum16 writes a two-byte enumeration, refusing undeclared values.
func WriteEnum16[T Enum16](w *Writer, v T) {
	if !v.Valid() {
		w.Failf(ErrUnrecognizedVariant, "%T value 0x%04x", v, uint16(v))
		return
	}
	w.Uint16(uint16(v))
}

// Flag names one bit of a flag set.
type Flag struct {
	Bit  uint64
	Name string
}

// FormatFlags renders v as NAME|NAME. Bits without a name are kept and
// rendered as a trailing hex value, so nothing is lost in logs.
func FormatFlags(v uint64, flags []Flag) string {
	if v == 0 {
		return "NONE"
	}
	out := ""
	rest := v
	for _, f := range flags {
		if f.Bit != 0 && v&f.Bit == f.Bit {
			if out != "" {
				out += "|"
			}
			out += f.Name
			rest &^= f.Bit
		}
	}
	if rest != 0 {
		if out != "" {
			out += "|"
		}
		out += fmt.Sprintf("0x%x", rest)
	}
	return out
}

// FlagNames returns the names of the bits set in v, in declaration order.
func FlagNames(v uint64, flags []Flag) []string {
	var names []string
	for _, f := range flags {
		if f.Bit != 0 && v&f.Bit == f.Bit {
			names = append(names, f.Name)
		}
	}
	return names
}
