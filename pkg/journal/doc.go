// Package journal keeps an append-only file of encoded entities.
//
// # Record Format
//
// Every record is framed as
//
//	[CRC32(4)][Kind(1)][Reserved(3)][Length(4)][Timestamp(8)][Payload]
//
// All integers are little-endian. The CRC32 (IEEE) covers every byte after
// the CRC32 field, payload included. Kind is an entity.Kind and Payload is
// one encoded entity of that kind; readers decode it and require it to
// occupy exactly Length bytes.
//
// # Usage
//
//	w, err := journal.NewWriter(journal.WriterConfig{Path: "data/entities.journal"})
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	offset, err := w.Append(entity.Transaction, tx)
//
// Reading back:
//
//	r, err := journal.NewReader(journal.ReaderConfig{Path: "data/entities.journal"})
//	it := r.Iterator()
//	for it.Next() {
//	    fmt.Println(it.Entry().Record.Kind, it.Entry().Offset)
//	}
//	if err := it.Err(); err != nil {
//	    return err
//	}
//
// A journal that ends on a record boundary reads to io.EOF. A journal cut
// inside a record, or one whose checksum does not match, yields
// ErrCorruption.
package journal
