// Package receipt encodes and decodes receipts and the statements that
// group them.
package receipt

import (
	"encoding/json"

	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// HeaderSize is the size of a receipt without its body.
const HeaderSize = 4 + 2 + 2

// Body is the type specific part of a receipt. Several receipt types share
// one body layout, so the receipt type is kept on the Receipt.
type Body interface {
	wire.Serializer
	layout() layout
}

type layout int

const (
	layoutBalanceTransfer layout = iota
	layoutBalanceChange
	layoutMosaicExpiry
	layoutNamespaceExpiry
	layoutInflation
)

var layouts = map[model.ReceiptType]layout{
	model.ReceiptMosaicRentalFee:     layoutBalanceTransfer,
	model.ReceiptNamespaceRentalFee:  layoutBalanceTransfer,
	model.ReceiptHarvestFee:          layoutBalanceChange,
	model.ReceiptLockHashCreated:     layoutBalanceChange,
	model.ReceiptLockHashCompleted:   layoutBalanceChange,
	model.ReceiptLockHashExpired:     layoutBalanceChange,
	model.ReceiptLockSecretCreated:   layoutBalanceChange,
	model.ReceiptLockSecretCompleted: layoutBalanceChange,
	model.ReceiptLockSecretExpired:   layoutBalanceChange,
	model.ReceiptMosaicExpired:       layoutMosaicExpiry,
	model.ReceiptNamespaceExpired:    layoutNamespaceExpiry,
	model.ReceiptNamespaceDeleted:    layoutNamespaceExpiry,
	model.ReceiptInflation:           layoutInflation,
}

var layoutDecoders = map[layout]wire.DecodeFunc[Body]{
	layoutBalanceTransfer: readBalanceTransfer,
	layoutBalanceChange:   readBalanceChange,
	layoutMosaicExpiry:    readMosaicExpiry,
	layoutNamespaceExpiry: readNamespaceExpiry,
	layoutInflation:       readInflation,
}

var bodies = wire.NewUnion("receipt body", receiptBranches())

func receiptBranches() map[model.ReceiptType]wire.DecodeFunc[Body] {
	out := make(map[model.ReceiptType]wire.DecodeFunc[Body], len(layouts))
	for typ, l := range layouts {
		out[typ] = layoutDecoders[l]
	}
	return out
}

// Receipt records a side effect of block processing.
type Receipt struct {
	Version uint16            `json:"version"`
	Type    model.ReceiptType `json:"type"`
	Body    Body              `json:"body"`
}

func (rc *Receipt) Size() int {
	if rc.Body == nil {
		return HeaderSize
	}
	return HeaderSize + rc.Body.Size()
}

// Serialize writes the receipt. The body must have the layout the receipt
// type selects.
func (rc *Receipt) Serialize(w *wire.Writer) {
	if rc.Body == nil {
		w.Fail(wire.ErrNoActiveVariant)
		return
	}
	l, ok := layouts[rc.Type]
	if !ok {
		w.Failf(wire.ErrUnrecognizedVariant, "receipt type %s has no body", rc.Type)
		return
	}
	if l != rc.Body.layout() {
		w.Failf(wire.ErrWrongVariant, "receipt type %s cannot carry %T", rc.Type, rc.Body)
		return
	}
	w.Count(wire.Width32, rc.Size())
	w.Uint16(rc.Version)
	wire.WriteEnum16(w, rc.Type)
	rc.Body.Serialize(w)
}

func (rc *Receipt) MarshalJSON() ([]byte, error) {
	type fields Receipt
	return json.Marshal(struct {
		Size int `json:"size"`
		*fields
	}{rc.Size(), (*fields)(rc)})
}

// CheckSize reports whether the declared size of a decoded receipt matches
// the size of its content.
func (rc *Receipt) CheckSize(declared int) error {
	return wire.CheckSize(declared, rc.Size())
}

// Read decodes one receipt framed by its declared size.
func Read(r *wire.Reader) *Receipt {
	sub, _ := r.Frame()
	rc := &Receipt{}
	rc.Version = sub.Uint16()
	rc.Type = wire.ReadEnum16[model.ReceiptType](sub)
	rc.Body = bodies.Decode(sub, rc.Type)
	r.Join(sub)
	return rc
}

// Decode decodes a receipt from the front of b.
func Decode(b []byte) (*Receipt, int, error) {
	return wire.Unmarshal(b, Read)
}

// Marshal encodes rc into a buffer of exactly rc.Size() bytes.
func Marshal(rc *Receipt) ([]byte, error) {
	return wire.Marshal(rc)
}

// As returns the body of rc as T.
func As[T Body](rc *Receipt) (T, error) {
	return wire.As[T](rc.Body)
}
