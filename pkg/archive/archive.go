// Package archive stores validated entities in a pebble database keyed by
// KSUID, so stored records sort by creation time.
package archive

import (
	"time"

	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	"github.com/ssargent/catbuffer/pkg/entity"
	"github.com/ssargent/catbuffer/pkg/logging"
	"github.com/ssargent/catbuffer/pkg/wire"
)

var (
	// ErrNotFound is returned for ids that are not in the archive.
	ErrNotFound = errors.New("archived entity not found")
	// ErrInvalidID is returned for ids that are not KSUIDs.
	ErrInvalidID = errors.New("invalid archive id")
	// ErrCorruptValue is returned for stored values that no longer decode.
	ErrCorruptValue = errors.New("corrupt archive value")
)

// Config holds configuration for an archive
type Config struct {
	Path     string // Directory of the pebble database
	InMemory bool   // Keep the database in memory, for tests and dry runs
	Sync     bool   // Fsync every write
}

// Item is one archived entity.
type Item struct {
	ID      ksuid.KSUID   `json:"id"`
	Kind    entity.Kind   `json:"kind"`
	Created time.Time     `json:"created"`
	Size    int           `json:"size"`
	Entity  entity.Entity `json:"entity,omitempty"`
	Payload []byte        `json:"-"`
}

// Archive is a pebble backed store of encoded entities. Values are stored as
// [Kind(1)][Payload].
type Archive struct {
	db        *pebble.DB
	writeOpts *pebble.WriteOptions
}

// Open opens or creates the archive described by cfg.
func Open(cfg Config) (*Archive, error) {
	opts := &pebble.Options{}
	path := cfg.Path
	if cfg.InMemory {
		opts.FS = vfs.NewMem()
		if path == "" {
			path = "archive"
		}
	} else if path == "" {
		return nil, errors.New("archive path is required")
	}

	db, err := pebble.Open(path, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "open archive %q", path)
	}

	writeOpts := pebble.NoSync
	if cfg.Sync {
		writeOpts = pebble.Sync
	}
	return &Archive{db: db, writeOpts: writeOpts}, nil
}

// ParseID parses the string form of an archive id.
func ParseID(s string) (ksuid.KSUID, error) {
	id, err := ksuid.Parse(s)
	if err != nil {
		return ksuid.Nil, errors.Wrapf(ErrInvalidID, "%q: %v", s, err)
	}
	return id, nil
}

// Put validates payload as exactly one entity of kind and stores it under a
// new id.
func (a *Archive) Put(kind entity.Kind, payload []byte) (ksuid.KSUID, error) {
	if _, err := entity.DecodeExact(kind, payload); err != nil {
		return ksuid.Nil, errors.Wrapf(err, "validate %s", kind)
	}
	return a.put(kind, payload)
}

// PutEntity encodes e and stores it under a new id.
func (a *Archive) PutEntity(kind entity.Kind, e entity.Entity) (ksuid.KSUID, error) {
	if !kind.Valid() {
		return ksuid.Nil, errors.Wrapf(entity.ErrUnknownKind, "value %d", uint8(kind))
	}
	payload, err := wire.Marshal(e)
	if err != nil {
		return ksuid.Nil, errors.Wrapf(err, "encode %s", kind)
	}
	return a.put(kind, payload)
}

func (a *Archive) put(kind entity.Kind, payload []byte) (ksuid.KSUID, error) {
	id := ksuid.New()
	value := make([]byte, 1+len(payload))
	value[0] = byte(kind)
	copy(value[1:], payload)

	if err := a.db.Set(id.Bytes(), value, a.writeOpts); err != nil {
		return ksuid.Nil, errors.Wrap(err, "store entity")
	}

	logging.Logger().Debug("archived entity",
		zap.String("id", id.String()),
		zap.String("kind", kind.String()),
		zap.Int("bytes", len(payload)),
	)
	return id, nil
}

// Get loads and decodes the entity stored under id.
func (a *Archive) Get(id ksuid.KSUID) (*Item, error) {
	data, closer, err := a.db.Get(id.Bytes())
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return nil, errors.Wrapf(ErrNotFound, "%s", id)
		}
		return nil, errors.Wrapf(err, "load %s", id)
	}
	value := append([]byte(nil), data...)
	if err := closer.Close(); err != nil {
		return nil, err
	}

	item, err := newItem(id, value)
	if err != nil {
		return nil, err
	}
	item.Entity, err = entity.DecodeExact(item.Kind, item.Payload)
	if err != nil {
		return nil, errors.Wrapf(ErrCorruptValue, "%s: %v", id, err)
	}
	return item, nil
}

// ListOptions filters List.
type ListOptions struct {
	Kind  entity.Kind // 0 lists every kind
	Limit int         // 0 means no limit
}

// List returns the archived items in creation order without decoding them.
func (a *Archive) List(opts ListOptions) ([]*Item, error) {
	iter, err := a.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "iterate archive")
	}

	var items []*Item
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key())
		if err != nil {
			_ = iter.Close()
			return nil, errors.Wrapf(ErrCorruptValue, "key %x: %v", iter.Key(), err)
		}
		item, err := newItem(id, append([]byte(nil), iter.Value()...))
		if err != nil {
			_ = iter.Close()
			return nil, err
		}
		if opts.Kind != 0 && item.Kind != opts.Kind {
			continue
		}
		items = append(items, item)
		if opts.Limit > 0 && len(items) >= opts.Limit {
			break
		}
	}
	if err := iter.Close(); err != nil {
		return nil, errors.Wrap(err, "iterate archive")
	}
	return items, nil
}

// Delete removes the entity stored under id.
func (a *Archive) Delete(id ksuid.KSUID) error {
	_, closer, err := a.db.Get(id.Bytes())
	if err != nil {
		if errors.Is(err, pebble.ErrNotFound) {
			return errors.Wrapf(ErrNotFound, "%s", id)
		}
		return errors.Wrapf(err, "load %s", id)
	}
	if err := closer.Close(); err != nil {
		return err
	}
	return a.db.Delete(id.Bytes(), a.writeOpts)
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}

func newItem(id ksuid.KSUID, value []byte) (*Item, error) {
	if len(value) == 0 {
		return nil, errors.Wrapf(ErrCorruptValue, "%s: empty value", id)
	}
	return &Item{
		ID:      id,
		Kind:    entity.Kind(value[0]),
		Created: id.Time(),
		Size:    len(value) - 1,
		Payload: value[1:],
	}, nil
}
