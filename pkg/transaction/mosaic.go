package transaction

import (
	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// MosaicDefinitionBody creates a mosaic.
type MosaicDefinitionBody struct {
	ID           model.MosaicID      `json:"id"`
	Duration     model.BlockDuration `json:"duration"`
	Nonce        model.MosaicNonce   `json:"nonce"`
	Flags        model.MosaicFlags   `json:"flags"`
	Divisibility uint8               `json:"divisibility"`
}

func (b MosaicDefinitionBody) Type() model.EntityType { return model.EntityMosaicDefinition }

func (b MosaicDefinitionBody) Size() int { return 8 + 8 + 4 + 1 + 1 }

func (b MosaicDefinitionBody) Serialize(w *wire.Writer) {
	b.ID.Serialize(w)
	b.Duration.Serialize(w)
	b.Nonce.Serialize(w)
	b.Flags.Serialize(w)
	w.Uint8(b.Divisibility)
}

func readMosaicDefinition(r *wire.Reader) Body {
	return MosaicDefinitionBody{
		ID:           model.ReadMosaicID(r),
		Duration:     model.ReadBlockDuration(r),
		Nonce:        model.ReadMosaicNonce(r),
		Flags:        model.ReadMosaicFlags(r),
		Divisibility: r.Uint8(),
	}
}

// MosaicSupplyChangeBody increases or decreases the supply of a mosaic.
type MosaicSupplyChangeBody struct {
	MosaicID model.UnresolvedMosaicID       `json:"mosaicId"`
	Delta    model.Amount                   `json:"delta"`
	Action   model.MosaicSupplyChangeAction `json:"action"`
}

func (b MosaicSupplyChangeBody) Type() model.EntityType { return model.EntityMosaicSupplyChange }

func (b MosaicSupplyChangeBody) Size() int { return 8 + 8 + 1 }

func (b MosaicSupplyChangeBody) Serialize(w *wire.Writer) {
	b.MosaicID.Serialize(w)
	b.Delta.Serialize(w)
	wire.WriteEnum8(w, b.Action)
}

func readMosaicSupplyChange(r *wire.Reader) Body {
	return MosaicSupplyChangeBody{
		MosaicID: model.ReadUnresolvedMosaicID(r),
		Delta:    model.ReadAmount(r),
		Action:   wire.ReadEnum8[model.MosaicSupplyChangeAction](r),
	}
}

// MosaicSupplyRevocationBody returns revokable mosaics to their creator.
type MosaicSupplyRevocationBody struct {
	SourceAddress model.UnresolvedAddress `json:"sourceAddress"`
	Mosaic        model.UnresolvedMosaic  `json:"mosaic"`
}

func (b MosaicSupplyRevocationBody) Type() model.EntityType {
	return model.EntityMosaicSupplyRevocation
}

func (b MosaicSupplyRevocationBody) Size() int { return model.AddressSize + 16 }

func (b MosaicSupplyRevocationBody) Serialize(w *wire.Writer) {
	b.SourceAddress.Serialize(w)
	b.Mosaic.Serialize(w)
}

func readMosaicSupplyRevocation(r *wire.Reader) Body {
	return MosaicSupplyRevocationBody{
		SourceAddress: model.ReadAddress(r),
		Mosaic:        model.ReadUnresolvedMosaic(r),
	}
}
