// Package wire provides the building blocks of the catbuffer binary format.
//
// Every record in the schema is assembled from a handful of primitives:
//
//   - unsigned little-endian integers of 1, 2, 4 or 8 bytes
//   - fixed-size byte blobs (hashes, keys, signatures)
//   - closed enumerations backed by an integer, decoded strictly
//   - flag sets packed into an integer bitmask
//   - reserved and padding fields that are always zero
//   - arrays with a count prefix, with a count held elsewhere in the record,
//     or filling a byte budget until it is exhausted
//   - discriminated unions where a tag selects exactly one branch
//
// # Decoding
//
// Reader is a cursor over an immutable buffer. Decoders read fields in
// schema order and check Err once at the end:
//
//	r := wire.NewReader(payload)
//	id := r.Uint64()
//	amount := r.Uint64()
//	if err := r.Err(); err != nil {
//	    return err
//	}
//
// A failure stops the whole decode; there is no partial result. The error is
// an *Error carrying the byte offset where decoding stopped, and it unwraps
// to one of the package sentinels:
//
//	if errors.Is(err, wire.ErrTruncatedInput) {
//	    // fetch more bytes
//	}
//
// Region confines decoding to a sub-range of the input. Size-framed records
// and fill arrays use it so that a corrupt element cannot read past the
// bytes that belong to it.
//
// # Encoding
//
// Writer appends fields in the same order. Array counts are always written
// from the length of the slice being encoded, never from a separately stored
// value, so a count can not disagree with its elements.
//
// # Sizes
//
// Every record implements Serializer. Size is computed from the value alone
// and must equal both the number of bytes Serialize writes and the number of
// bytes the matching decoder consumes. Marshal enforces the first half of
// that contract on every call.
//
// # Thread Safety
//
// Readers and Writers are not safe for concurrent use, but they are cheap and
// every decode creates its own. Union tables are read-only after package
// initialization.
package wire
