package transaction

import (
	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// TransferBody moves mosaics and an optional message to a recipient.
type TransferBody struct {
	Recipient model.UnresolvedAddress  `json:"recipientAddress"`
	Mosaics   []model.UnresolvedMosaic `json:"mosaics"`
	Message   model.HexBytes           `json:"message"`
}

func (b TransferBody) Type() model.EntityType { return model.EntityTransfer }

func (b TransferBody) Size() int {
	return model.AddressSize + 2 + 1 + 4 + 1 + wire.ArraySize(b.Mosaics) + len(b.Message)
}

func (b TransferBody) Serialize(w *wire.Writer) {
	b.Recipient.Serialize(w)
	w.Count(wire.Width16, len(b.Message))
	w.Count(wire.Width8, len(b.Mosaics))
	w.Reserved(wire.Width32)
	w.Reserved(wire.Width8)
	wire.WriteArray(w, b.Mosaics)
	w.Fixed(b.Message)
}

func readTransfer(r *wire.Reader) Body {
	var b TransferBody
	b.Recipient = model.ReadAddress(r)
	messageSize := r.Count(wire.Width16)
	mosaicsCount := r.Count(wire.Width8)
	r.Reserved(wire.Width32)
	r.Reserved(wire.Width8)
	b.Mosaics = wire.ReadArray(r, mosaicsCount, model.ReadUnresolvedMosaic)
	b.Message = r.Bytes(int(messageSize))
	return b
}
