package transaction

import (
	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// Aggregate is the layout shared by complete and bonded aggregates.
//
// Embedded transactions fill the payload, each padded to 8 bytes.
// Cosignatures fill the rest of the record.
type Aggregate struct {
	TransactionsHash model.Hash256          `json:"transactionsHash"`
	Transactions     []*EmbeddedTransaction `json:"transactions"`
	Cosignatures     []model.Cosignature    `json:"cosignatures"`
}

// PayloadSize returns the encoded size of the embedded transactions
// including their padding.
func (a Aggregate) PayloadSize() int {
	size := 0
	for _, tx := range a.Transactions {
		if tx == nil {
			continue
		}
		size += paddedEmbedded{tx}.Size()
	}
	return size
}

func (a Aggregate) Size() int {
	return model.Hash256Size + 4 + 4 + a.PayloadSize() + wire.ArraySize(a.Cosignatures)
}

func (a Aggregate) Serialize(w *wire.Writer) {
	a.TransactionsHash.Serialize(w)
	w.Count(wire.Width32, a.PayloadSize())
	w.Reserved(wire.Width32)
	for _, tx := range a.Transactions {
		if tx == nil {
			w.Fail(wire.ErrNoActiveVariant)
			return
		}
		paddedEmbedded{tx}.Serialize(w)
	}
	wire.WriteArray(w, a.Cosignatures)
}

func readAggregate(r *wire.Reader) Aggregate {
	var a Aggregate
	a.TransactionsHash = model.ReadHash256(r)
	payloadSize := r.Uint32()
	r.Reserved(wire.Width32)
	if r.Err() != nil {
		return a
	}
	if uint64(payloadSize) > uint64(r.Remaining()) {
		r.Failf(wire.ErrSizeMismatch, "payload size %d exceeds the %d bytes left in the record", payloadSize, r.Remaining())
		return a
	}
	a.Transactions = wire.ReadFillArray(r, int(payloadSize), readPaddedEmbedded)
	a.Cosignatures = wire.ReadFillRest(r, model.ReadCosignature)
	return a
}

// AggregateCompleteBody is an aggregate whose cosignatures are all present.
type AggregateCompleteBody struct{ Aggregate }

func (AggregateCompleteBody) Type() model.EntityType { return model.EntityAggregateComplete }

func readAggregateComplete(r *wire.Reader) Body { return AggregateCompleteBody{readAggregate(r)} }

// AggregateBondedBody is an aggregate that collects cosignatures after
// announcement.
type AggregateBondedBody struct{ Aggregate }

func (AggregateBondedBody) Type() model.EntityType { return model.EntityAggregateBonded }

func readAggregateBonded(r *wire.Reader) Body { return AggregateBondedBody{readAggregate(r)} }
