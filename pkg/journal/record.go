package journal

import (
	"hash/crc32"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/ssargent/catbuffer/pkg/entity"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// HeaderSize is the size of a record header.
// Format: [CRC32(4)][Kind(1)][Reserved(3)][Length(4)][Timestamp(8)]
const HeaderSize = 4 + 1 + 3 + 4 + 8

// MaxPayload is the largest payload a record can carry.
const MaxPayload = 1<<32 - 1

var (
	// ErrCorruption is returned for records whose checksum does not match or
	// that end before their declared length.
	ErrCorruption = errors.New("journal corruption")
	// ErrPayloadTooLarge is returned when a payload does not fit the length
	// field.
	ErrPayloadTooLarge = errors.New("journal payload too large")
)

// Record is one framed entity in a journal.
type Record struct {
	CRC32     uint32      // checksum over everything after this field
	Kind      entity.Kind // layout of the payload
	Length    uint32      // payload length in bytes
	Timestamp uint64      // Unix time in nanoseconds
	Payload   []byte      // encoded entity
}

// NewRecord frames payload and seals it with its checksum.
func NewRecord(kind entity.Kind, payload []byte, at time.Time) (*Record, error) {
	if uint64(len(payload)) > MaxPayload {
		return nil, errors.Wrapf(ErrPayloadTooLarge, "%d bytes", len(payload))
	}
	r := &Record{
		Kind:      kind,
		Length:    uint32(len(payload)),
		Timestamp: uint64(at.UnixNano()),
		Payload:   payload,
	}
	r.CRC32 = r.checksum()
	return r, nil
}

// Size returns the encoded size of the record.
func (r *Record) Size() int {
	return HeaderSize + len(r.Payload)
}

// Serialize writes the record as it is, including its stored checksum.
func (r *Record) Serialize(w *wire.Writer) {
	w.Uint32(r.CRC32)
	r.serializeHeader(w)
	w.Fixed(r.Payload)
}

func (r *Record) serializeHeader(w *wire.Writer) {
	w.Uint8(uint8(r.Kind))
	w.Padding(3)
	w.Uint32(r.Length)
	w.Uint64(r.Timestamp)
}

// Time returns the timestamp of the record.
func (r *Record) Time() time.Time {
	return time.Unix(0, int64(r.Timestamp)).UTC()
}

// Validate checks the record against its checksum.
func (r *Record) Validate() error {
	if sum := r.checksum(); sum != r.CRC32 {
		return errors.Wrapf(ErrCorruption, "crc32 mismatch: stored %08x, computed %08x", r.CRC32, sum)
	}
	if int(r.Length) != len(r.Payload) {
		return errors.Wrapf(ErrCorruption, "length %d, payload %d bytes", r.Length, len(r.Payload))
	}
	return nil
}

// Entity decodes the payload. The payload must hold exactly one entity of the
// record kind.
func (r *Record) Entity() (entity.Entity, error) {
	return entity.DecodeExact(r.Kind, r.Payload)
}

func (r *Record) checksum() uint32 {
	w := wire.NewWriter(HeaderSize - 4)
	r.serializeHeader(w)
	return crc32.Update(crc32.ChecksumIEEE(w.Bytes()), crc32.IEEETable, r.Payload)
}

// Encode frames an encoded entity into a record.
func Encode(kind entity.Kind, payload []byte, at time.Time) ([]byte, error) {
	r, err := NewRecord(kind, payload, at)
	if err != nil {
		return nil, err
	}
	return wire.Marshal(r)
}

// DecodeRecord decodes one record from the front of data and validates its
// checksum. The payload is copied.
func DecodeRecord(data []byte) (*Record, error) {
	rd := wire.NewReader(data)
	r := readHeader(rd)
	r.Payload = rd.Bytes(int(r.Length))
	if err := rd.Err(); err != nil {
		return nil, errors.Wrap(err, "decode journal record")
	}
	if err := r.Validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func readHeader(rd *wire.Reader) *Record {
	r := &Record{CRC32: rd.Uint32(), Kind: entity.Kind(rd.Uint8())}
	rd.Padding(3)
	r.Length = rd.Uint32()
	r.Timestamp = rd.Uint64()
	return r
}
