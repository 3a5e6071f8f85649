package journal

import (
	"sort"
	"sync"
	"time"

	"github.com/ssargent/catbuffer/pkg/entity"
)

// Location is where one record sits in the journal.
type Location struct {
	Offset    int64     `json:"offset"`
	Size      uint32    `json:"size"` // whole record, header included
	Timestamp time.Time `json:"written"`
}

// Index maps entity kinds to the locations of their records.
type Index struct {
	entries map[entity.Kind][]Location
	end     int64
	mutex   sync.RWMutex
}

// NewIndex creates an empty index.
func NewIndex() *Index {
	return &Index{entries: make(map[entity.Kind][]Location)}
}

// BuildIndex scans the journal at path and indexes every record. A torn or
// corrupt record stops the scan with an error.
func BuildIndex(path string) (*Index, error) {
	reader, err := NewReader(ReaderConfig{Path: path})
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	idx := NewIndex()
	if err := idx.BuildFromJournal(reader); err != nil {
		return nil, err
	}
	return idx, nil
}

// BuildFromJournal replaces the index contents with the records read from
// reader.
func (idx *Index) BuildFromJournal(reader *Reader) error {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()

	idx.entries = make(map[entity.Kind][]Location)
	idx.end = reader.Offset()

	it := reader.Iterator()
	for it.Next() {
		entry := it.Entry()
		idx.add(entry.Record.Kind, Location{
			Offset:    entry.Offset,
			Size:      uint32(entry.Record.Size()),
			Timestamp: entry.Record.Time(),
		})
	}
	return it.Err()
}

// Put records that a record of kind was written at loc.
func (idx *Index) Put(kind entity.Kind, loc Location) {
	idx.mutex.Lock()
	defer idx.mutex.Unlock()

	idx.add(kind, loc)
}

func (idx *Index) add(kind entity.Kind, loc Location) {
	idx.entries[kind] = append(idx.entries[kind], loc)
	if end := loc.Offset + int64(loc.Size); end > idx.end {
		idx.end = end
	}
}

// Locations returns the records of kind in journal order.
func (idx *Index) Locations(kind entity.Kind) []Location {
	idx.mutex.RLock()
	defer idx.mutex.RUnlock()

	return append([]Location(nil), idx.entries[kind]...)
}

// Count returns the number of records of kind.
func (idx *Index) Count(kind entity.Kind) int {
	idx.mutex.RLock()
	defer idx.mutex.RUnlock()

	return len(idx.entries[kind])
}

// Kinds returns the kinds present in the journal, in ascending order.
func (idx *Index) Kinds() []entity.Kind {
	idx.mutex.RLock()
	defer idx.mutex.RUnlock()

	kinds := make([]entity.Kind, 0, len(idx.entries))
	for k := range idx.entries {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Stats returns index statistics.
func (idx *Index) Stats() *IndexStats {
	idx.mutex.RLock()
	defer idx.mutex.RUnlock()

	stats := &IndexStats{
		ByKind: make(map[string]int, len(idx.entries)),
		Bytes:  idx.end,
	}
	for k, locs := range idx.entries {
		stats.ByKind[k.String()] = len(locs)
		stats.Records += len(locs)
	}
	return stats
}

// IndexStats holds statistics about the index.
type IndexStats struct {
	Records int            `json:"records"`
	Bytes   int64          `json:"bytes"`
	ByKind  map[string]int `json:"byKind"`
}

// ReadAt reads the single record that starts at offset.
func ReadAt(path string, offset int64) (*Entry, error) {
	reader, err := NewReader(ReaderConfig{Path: path, StartOffset: offset})
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	return reader.Next()
}
