package receipt

import (
	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// TransactionStatement groups the receipts produced by one transaction.
type TransactionStatement struct {
	Source   model.ReceiptSource `json:"source"`
	Receipts []*Receipt          `json:"receipts"`
}

func (s *TransactionStatement) Size() int {
	size := s.Source.Size() + 4
	for _, rc := range s.Receipts {
		if rc != nil {
			size += rc.Size()
		}
	}
	return size
}

func (s *TransactionStatement) Serialize(w *wire.Writer) {
	s.Source.Serialize(w)
	w.Count(wire.Width32, len(s.Receipts))
	for _, rc := range s.Receipts {
		if rc == nil {
			w.Fail(wire.ErrNoActiveVariant)
			return
		}
		rc.Serialize(w)
	}
}

func ReadTransactionStatement(r *wire.Reader) *TransactionStatement {
	s := &TransactionStatement{}
	s.Source = model.ReadReceiptSource(r)
	count := r.Count(wire.Width32)
	s.Receipts = wire.ReadArray(r, count, Read)
	return s
}

// DecodeTransactionStatement decodes a transaction statement from the front
// of b.
func DecodeTransactionStatement(b []byte) (*TransactionStatement, int, error) {
	return wire.Unmarshal(b, ReadTransactionStatement)
}

// ResolutionEntry records the value an alias resolved to and where.
type ResolutionEntry[R wire.Serializer] struct {
	Source   model.ReceiptSource `json:"source"`
	Resolved R                   `json:"resolved"`
}

func (e ResolutionEntry[R]) Size() int { return e.Source.Size() + e.Resolved.Size() }

func (e ResolutionEntry[R]) Serialize(w *wire.Writer) {
	e.Source.Serialize(w)
	e.Resolved.Serialize(w)
}

// ResolutionStatement lists the resolutions of one unresolved value within
// a block.
type ResolutionStatement[U, R wire.Serializer] struct {
	Unresolved U                    `json:"unresolved"`
	Entries    []ResolutionEntry[R] `json:"resolutionEntries"`
}

func (s ResolutionStatement[U, R]) Size() int {
	return s.Unresolved.Size() + 4 + wire.ArraySize(s.Entries)
}

func (s ResolutionStatement[U, R]) Serialize(w *wire.Writer) {
	s.Unresolved.Serialize(w)
	wire.WritePrefixedArray(w, wire.Width32, s.Entries)
}

func readResolutionStatement[U, R wire.Serializer](r *wire.Reader, unresolved func(*wire.Reader) U, resolved func(*wire.Reader) R) ResolutionStatement[U, R] {
	var s ResolutionStatement[U, R]
	s.Unresolved = unresolved(r)
	s.Entries = wire.ReadPrefixedArray(r, wire.Width32, func(r *wire.Reader) ResolutionEntry[R] {
		return ResolutionEntry[R]{Source: model.ReadReceiptSource(r), Resolved: resolved(r)}
	})
	return s
}

// AddressResolutionStatement resolves an address alias.
type AddressResolutionStatement = ResolutionStatement[model.UnresolvedAddress, model.Address]

func ReadAddressResolutionStatement(r *wire.Reader) AddressResolutionStatement {
	return readResolutionStatement(r, model.ReadAddress, model.ReadAddress)
}

// DecodeAddressResolutionStatement decodes an address resolution statement
// from the front of b.
func DecodeAddressResolutionStatement(b []byte) (AddressResolutionStatement, int, error) {
	return wire.Unmarshal(b, ReadAddressResolutionStatement)
}

// MosaicResolutionStatement resolves a mosaic alias.
type MosaicResolutionStatement = ResolutionStatement[model.UnresolvedMosaicID, model.MosaicID]

func ReadMosaicResolutionStatement(r *wire.Reader) MosaicResolutionStatement {
	return readResolutionStatement(r, model.ReadUnresolvedMosaicID, model.ReadMosaicID)
}

// DecodeMosaicResolutionStatement decodes a mosaic resolution statement from
// the front of b.
func DecodeMosaicResolutionStatement(b []byte) (MosaicResolutionStatement, int, error) {
	return wire.Unmarshal(b, ReadMosaicResolutionStatement)
}
