package journal

import (
	"bufio"
	"io"
	"os"

	"github.com/cockroachdb/errors"

	"github.com/ssargent/catbuffer/pkg/entity"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// ReaderConfig holds configuration for a journal reader
type ReaderConfig struct {
	Path        string // Path to the journal file
	StartOffset int64  // Offset to start reading from
}

// Entry is a record read back from a journal together with its decoded
// entity.
type Entry struct {
	Offset int64
	Record *Record
	Entity entity.Entity
}

// Reader provides sequential access to the records of a journal.
type Reader struct {
	file   *os.File
	reader *bufio.Reader
	offset int64
}

// NewReader opens the journal at config.Path.
func NewReader(config ReaderConfig) (*Reader, error) {
	file, err := os.Open(config.Path)
	if err != nil {
		return nil, errors.Wrap(err, "open journal")
	}

	if config.StartOffset > 0 {
		if _, err := file.Seek(config.StartOffset, io.SeekStart); err != nil {
			_ = file.Close()
			return nil, errors.Wrap(err, "seek journal")
		}
	}

	return &Reader{
		file:   file,
		reader: bufio.NewReader(file),
		offset: config.StartOffset,
	}, nil
}

// Next reads and decodes the next record. It returns io.EOF when the journal
// ends on a record boundary and ErrCorruption when it ends inside a record or
// a checksum does not match.
func (r *Reader) Next() (*Entry, error) {
	start := r.offset

	header := make([]byte, HeaderSize)
	n, err := io.ReadFull(r.reader, header)
	if err != nil {
		if err == io.EOF {
			return nil, io.EOF
		}
		if err == io.ErrUnexpectedEOF {
			return nil, errors.Wrapf(ErrCorruption, "torn header at offset %d", start)
		}
		return nil, err
	}
	r.offset += int64(n)

	hr := wire.NewReader(header)
	rec := readHeader(hr)
	if err := hr.Err(); err != nil {
		return nil, errors.Wrapf(ErrCorruption, "header at offset %d: %v", start, err)
	}

	rec.Payload = make([]byte, rec.Length)
	n, err = io.ReadFull(r.reader, rec.Payload)
	if err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, errors.Wrapf(ErrCorruption, "torn payload at offset %d", start)
		}
		return nil, err
	}
	r.offset += int64(n)
	if rec.Length == 0 {
		rec.Payload = nil
	}

	if err := rec.Validate(); err != nil {
		return nil, errors.Wrapf(err, "record at offset %d", start)
	}

	e, err := rec.Entity()
	if err != nil {
		return nil, errors.Wrapf(err, "%s record at offset %d", rec.Kind, start)
	}

	return &Entry{Offset: start, Record: rec, Entity: e}, nil
}

// Offset returns the offset of the next record.
func (r *Reader) Offset() int64 {
	return r.offset
}

// Iterator returns a streaming iterator over the remaining records.
func (r *Reader) Iterator() *Iterator {
	return &Iterator{reader: r}
}

// Close closes the journal file.
func (r *Reader) Close() error {
	return r.file.Close()
}

// Iterator walks a journal one entry at a time.
type Iterator struct {
	reader *Reader
	entry  *Entry
	err    error
}

// Next advances to the next entry and reports whether there is one.
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	it.entry, it.err = it.reader.Next()
	return it.err == nil
}

// Entry returns the current entry.
func (it *Iterator) Entry() *Entry {
	return it.entry
}

// Err returns the error that stopped iteration, or nil at a clean end.
func (it *Iterator) Err() error {
	if errors.Is(it.err, io.EOF) {
		return nil
	}
	return it.err
}
