package transaction

import (
	"encoding/json"

	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// EmbeddedHeaderSize is the size of an embedded transaction without its body.
const EmbeddedHeaderSize = 4 + 4 + model.PublicKeySize + 4 + 1 + 1 + 2

// EmbeddedTransaction is an unsigned transaction carried by an aggregate.
// Aggregates cannot be embedded.
type EmbeddedTransaction struct {
	SignerPublicKey model.PublicKey   `json:"signerPublicKey"`
	Version         uint8             `json:"version"`
	Network         model.NetworkType `json:"network"`
	Body            Body              `json:"body"`
}

func (tx *EmbeddedTransaction) Type() model.EntityType {
	if tx.Body == nil {
		return 0
	}
	return tx.Body.Type()
}

func (tx *EmbeddedTransaction) Size() int {
	if tx.Body == nil {
		return EmbeddedHeaderSize
	}
	return EmbeddedHeaderSize + tx.Body.Size()
}

func (tx *EmbeddedTransaction) Serialize(w *wire.Writer) {
	if tx.Body == nil {
		w.Fail(wire.ErrNoActiveVariant)
		return
	}
	if !embeddedBodies.Has(tx.Body.Type()) {
		w.Failf(wire.ErrUnrecognizedVariant, "%s cannot be embedded", tx.Body.Type())
		return
	}
	w.Count(wire.Width32, tx.Size())
	w.Reserved(wire.Width32)
	tx.SignerPublicKey.Serialize(w)
	w.Reserved(wire.Width32)
	w.Uint8(tx.Version)
	tx.Network.Serialize(w)
	tx.Body.Type().Serialize(w)
	tx.Body.Serialize(w)
}

func (tx *EmbeddedTransaction) MarshalJSON() ([]byte, error) {
	type fields EmbeddedTransaction
	return json.Marshal(struct {
		Size int              `json:"size"`
		Type model.EntityType `json:"type"`
		*fields
	}{tx.Size(), tx.Type(), (*fields)(tx)})
}

// CheckSize reports whether the declared size of a decoded record matches
// the size of its content.
func (tx *EmbeddedTransaction) CheckSize(declared int) error {
	return wire.CheckSize(declared, tx.Size())
}

// ReadEmbedded decodes one embedded transaction framed by its declared size.
func ReadEmbedded(r *wire.Reader) *EmbeddedTransaction {
	sub, _ := r.Frame()
	tx := &EmbeddedTransaction{}
	sub.Reserved(wire.Width32)
	tx.SignerPublicKey = model.ReadPublicKey(sub)
	sub.Reserved(wire.Width32)
	tx.Version = sub.Uint8()
	tx.Network = wire.ReadEnum8[model.NetworkType](sub)
	typ := model.ReadEntityType(sub)
	tx.Body = embeddedBodies.Decode(sub, typ)
	r.Join(sub)
	return tx
}

// DecodeEmbedded decodes an embedded transaction from the front of b.
func DecodeEmbedded(b []byte) (*EmbeddedTransaction, int, error) {
	return wire.Unmarshal(b, ReadEmbedded)
}

// MarshalEmbedded encodes tx into a buffer of exactly tx.Size() bytes.
func MarshalEmbedded(tx *EmbeddedTransaction) ([]byte, error) {
	return wire.Marshal(tx)
}

// AsEmbedded returns the body of tx as T.
func AsEmbedded[T Body](tx *EmbeddedTransaction) (T, error) {
	return wire.As[T](tx.Body)
}

// readPaddedEmbedded reads an embedded transaction followed by the zero
// padding that aligns it to 8 bytes inside an aggregate. A declared size
// that disagrees with the content fails with ErrSizeMismatch at the start of
// the embedded transaction.
func readPaddedEmbedded(r *wire.Reader) *EmbeddedTransaction {
	start, offset := r.Consumed(), r.Offset()
	tx := ReadEmbedded(r)
	if r.Err() != nil {
		return tx
	}
	declared := r.Consumed() - start
	if err := tx.CheckSize(declared); err != nil {
		r.FailAt(offset, wire.NewError(wire.ErrSizeMismatch, offset,
			"embedded transaction declares %d bytes, content is %d", declared, tx.Size()))
		return tx
	}
	r.Padding(wire.PaddingSize(declared, 8))
	return tx
}

// paddedEmbedded serializes an embedded transaction with its alignment
// padding.
type paddedEmbedded struct {
	*EmbeddedTransaction
}

func (p paddedEmbedded) Size() int {
	size := p.EmbeddedTransaction.Size()
	return size + wire.PaddingSize(size, 8)
}

func (p paddedEmbedded) Serialize(w *wire.Writer) {
	p.EmbeddedTransaction.Serialize(w)
	w.Padding(wire.PaddingSize(p.EmbeddedTransaction.Size(), 8))
}
