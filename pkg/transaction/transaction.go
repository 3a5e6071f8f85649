// Package transaction encodes and decodes signed transactions and the
// embedded transactions carried inside aggregates.
package transaction

import (
	"encoding/json"

	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// HeaderSize is the size of a transaction without its body.
const HeaderSize = 4 + 4 + model.SignatureSize + model.PublicKeySize + 4 + 1 + 1 + 2 + 8 + 8

// Body is the type specific part of a transaction. The entity type written to
// the header is always taken from the body.
type Body interface {
	wire.Serializer
	Type() model.EntityType
}

// Transaction is a signed top level transaction.
type Transaction struct {
	Signature       model.Signature   `json:"signature"`
	SignerPublicKey model.PublicKey   `json:"signerPublicKey"`
	Version         uint8             `json:"version"`
	Network         model.NetworkType `json:"network"`
	Fee             model.Amount      `json:"fee"`
	Deadline        model.Timestamp   `json:"deadline"`
	Body            Body              `json:"body"`
}

// Type returns the entity type of the active body.
func (tx *Transaction) Type() model.EntityType {
	if tx.Body == nil {
		return 0
	}
	return tx.Body.Type()
}

// Size returns the encoded size of the transaction.
func (tx *Transaction) Size() int {
	if tx.Body == nil {
		return HeaderSize
	}
	return HeaderSize + tx.Body.Size()
}

// Serialize writes the transaction. The size field is derived from Size.
func (tx *Transaction) Serialize(w *wire.Writer) {
	if tx.Body == nil {
		w.Fail(wire.ErrNoActiveVariant)
		return
	}
	w.Count(wire.Width32, tx.Size())
	w.Reserved(wire.Width32)
	tx.Signature.Serialize(w)
	tx.SignerPublicKey.Serialize(w)
	w.Reserved(wire.Width32)
	w.Uint8(tx.Version)
	tx.Network.Serialize(w)
	tx.Body.Type().Serialize(w)
	tx.Fee.Serialize(w)
	tx.Deadline.Serialize(w)
	tx.Body.Serialize(w)
}

// MarshalJSON renders the transaction with its derived size and type.
func (tx *Transaction) MarshalJSON() ([]byte, error) {
	type fields Transaction
	return json.Marshal(struct {
		Size int              `json:"size"`
		Type model.EntityType `json:"type"`
		*fields
	}{tx.Size(), tx.Type(), (*fields)(tx)})
}

// Read decodes one transaction framed by its declared size.
func Read(r *wire.Reader) *Transaction {
	sub, _ := r.Frame()
	tx := &Transaction{}
	sub.Reserved(wire.Width32)
	tx.Signature = model.ReadSignature(sub)
	tx.SignerPublicKey = model.ReadPublicKey(sub)
	sub.Reserved(wire.Width32)
	tx.Version = sub.Uint8()
	tx.Network = wire.ReadEnum8[model.NetworkType](sub)
	typ := model.ReadEntityType(sub)
	tx.Fee = model.ReadAmount(sub)
	tx.Deadline = model.ReadTimestamp(sub)
	tx.Body = bodies.Decode(sub, typ)
	r.Join(sub)
	return tx
}

// Decode decodes a transaction from the front of b. The returned length is
// the declared size of the record; use CheckSize to compare it against the
// size the decoded content implies.
func Decode(b []byte) (*Transaction, int, error) {
	return wire.Unmarshal(b, Read)
}

// Marshal encodes tx into a buffer of exactly tx.Size() bytes.
func Marshal(tx *Transaction) ([]byte, error) {
	return wire.Marshal(tx)
}

// CheckSize reports whether the declared size of a decoded record matches
// the size of its content.
func (tx *Transaction) CheckSize(declared int) error {
	return wire.CheckSize(declared, tx.Size())
}

// As returns the body of tx as T, failing with wire.ErrWrongVariant when a
// different body is active.
func As[T Body](tx *Transaction) (T, error) {
	return wire.As[T](tx.Body)
}
