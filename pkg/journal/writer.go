package journal

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/ssargent/catbuffer/pkg/entity"
	"github.com/ssargent/catbuffer/pkg/logging"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// WriterConfig holds configuration for a journal writer
type WriterConfig struct {
	Path          string           // Path to the journal file
	FsyncInterval time.Duration    // How often to fsync (0 = every append)
	BufferSize    int              // Write buffer size
	Clock         func() time.Time // Timestamp source, time.Now when nil
}

// Writer appends framed entities to a journal file. It is safe for
// concurrent use.
type Writer struct {
	file       *os.File
	writer     *bufio.Writer
	fsyncTimer *time.Timer
	config     WriterConfig
	mutex      sync.Mutex
	offset     int64
}

// NewWriter opens or creates the journal at config.Path for appending.
func NewWriter(config WriterConfig) (*Writer, error) {
	if config.BufferSize <= 0 {
		config.BufferSize = 64 * 1024
	}
	if config.Clock == nil {
		config.Clock = time.Now
	}

	if err := os.MkdirAll(filepath.Dir(config.Path), 0750); err != nil {
		return nil, errors.Wrap(err, "create journal directory")
	}

	file, err := os.OpenFile(config.Path, os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, errors.Wrap(err, "open journal")
	}

	offset, err := file.Seek(0, io.SeekEnd)
	if err != nil {
		_ = file.Close()
		return nil, errors.Wrap(err, "seek journal")
	}

	w := &Writer{
		file:   file,
		writer: bufio.NewWriterSize(file, config.BufferSize),
		config: config,
		offset: offset,
	}

	if config.FsyncInterval > 0 {
		w.fsyncTimer = time.AfterFunc(config.FsyncInterval, func() {
			w.mutex.Lock()
			defer w.mutex.Unlock()
			if err := w.sync(); err != nil {
				logging.Logger().Warn("journal fsync failed", zap.String("path", w.config.Path), zap.Error(err))
			}
		})
	}

	return w, nil
}

// Append encodes e and appends it as a record of the given kind. It returns
// the offset at which the record starts.
func (w *Writer) Append(kind entity.Kind, e entity.Entity) (int64, error) {
	if !kind.Valid() {
		return 0, errors.Wrapf(entity.ErrUnknownKind, "value %d", uint8(kind))
	}
	payload, err := wire.Marshal(e)
	if err != nil {
		return 0, errors.Wrapf(err, "encode %s", kind)
	}
	return w.append(kind, payload)
}

// AppendRaw appends an already encoded entity. The payload must decode as
// exactly one entity of the given kind.
func (w *Writer) AppendRaw(kind entity.Kind, payload []byte) (int64, error) {
	if _, err := entity.DecodeExact(kind, payload); err != nil {
		return 0, errors.Wrapf(err, "validate %s payload", kind)
	}
	return w.append(kind, payload)
}

func (w *Writer) append(kind entity.Kind, payload []byte) (int64, error) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	data, err := Encode(kind, payload, w.config.Clock())
	if err != nil {
		return 0, err
	}

	n, err := w.writer.Write(data)
	if err != nil {
		return 0, errors.Wrap(err, "write journal record")
	}

	recordOffset := w.offset
	w.offset += int64(n)

	if w.config.FsyncInterval == 0 {
		if err := w.sync(); err != nil {
			return 0, err
		}
	} else if w.fsyncTimer != nil {
		w.fsyncTimer.Reset(w.config.FsyncInterval)
	}

	logging.Logger().Debug("journal append",
		zap.String("kind", kind.String()),
		zap.Int64("offset", recordOffset),
		zap.Int("bytes", n),
	)
	return recordOffset, nil
}

// Sync flushes buffered records and fsyncs the file.
func (w *Writer) Sync() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.sync()
}

func (w *Writer) sync() error {
	if err := w.writer.Flush(); err != nil {
		return errors.Wrap(err, "flush journal")
	}
	return w.file.Sync()
}

// Close syncs and closes the journal.
func (w *Writer) Close() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if w.fsyncTimer != nil {
		w.fsyncTimer.Stop()
	}

	if err := w.sync(); err != nil {
		_ = w.file.Close()
		return err
	}
	return w.file.Close()
}

// Size returns the size of the journal including buffered records.
func (w *Writer) Size() int64 {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	return w.offset
}

// Path returns the journal file path.
func (w *Writer) Path() string {
	return w.config.Path
}
