package receipt

import (
	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// BalanceTransferBody moves a mosaic between two accounts, as rental fees
// do.
type BalanceTransferBody struct {
	Mosaic           model.Mosaic  `json:"mosaic"`
	SenderAddress    model.Address `json:"senderAddress"`
	RecipientAddress model.Address `json:"recipientAddress"`
}

func (BalanceTransferBody) layout() layout { return layoutBalanceTransfer }

func (b BalanceTransferBody) Size() int { return 16 + 2*model.AddressSize }

func (b BalanceTransferBody) Serialize(w *wire.Writer) {
	b.Mosaic.Serialize(w)
	b.SenderAddress.Serialize(w)
	b.RecipientAddress.Serialize(w)
}

func readBalanceTransfer(r *wire.Reader) Body {
	return BalanceTransferBody{
		Mosaic:           model.ReadMosaic(r),
		SenderAddress:    model.ReadAddress(r),
		RecipientAddress: model.ReadAddress(r),
	}
}

// BalanceChangeBody credits or debits one account.
type BalanceChangeBody struct {
	Mosaic        model.Mosaic  `json:"mosaic"`
	TargetAddress model.Address `json:"targetAddress"`
}

func (BalanceChangeBody) layout() layout { return layoutBalanceChange }

func (b BalanceChangeBody) Size() int { return 16 + model.AddressSize }

func (b BalanceChangeBody) Serialize(w *wire.Writer) {
	b.Mosaic.Serialize(w)
	b.TargetAddress.Serialize(w)
}

func readBalanceChange(r *wire.Reader) Body {
	return BalanceChangeBody{Mosaic: model.ReadMosaic(r), TargetAddress: model.ReadAddress(r)}
}

// MosaicExpiryBody reports an expired mosaic.
type MosaicExpiryBody struct {
	ArtifactID model.MosaicID `json:"artifactId"`
}

func (MosaicExpiryBody) layout() layout { return layoutMosaicExpiry }

func (b MosaicExpiryBody) Size() int { return 8 }

func (b MosaicExpiryBody) Serialize(w *wire.Writer) { b.ArtifactID.Serialize(w) }

func readMosaicExpiry(r *wire.Reader) Body {
	return MosaicExpiryBody{ArtifactID: model.ReadMosaicID(r)}
}

// NamespaceExpiryBody reports an expired or deleted namespace.
type NamespaceExpiryBody struct {
	ArtifactID model.NamespaceID `json:"artifactId"`
}

func (NamespaceExpiryBody) layout() layout { return layoutNamespaceExpiry }

func (b NamespaceExpiryBody) Size() int { return 8 }

func (b NamespaceExpiryBody) Serialize(w *wire.Writer) { b.ArtifactID.Serialize(w) }

func readNamespaceExpiry(r *wire.Reader) Body {
	return NamespaceExpiryBody{ArtifactID: model.ReadNamespaceID(r)}
}

// InflationBody reports newly created currency.
type InflationBody struct {
	Mosaic model.Mosaic `json:"mosaic"`
}

func (InflationBody) layout() layout { return layoutInflation }

func (b InflationBody) Size() int { return 16 }

func (b InflationBody) Serialize(w *wire.Writer) { b.Mosaic.Serialize(w) }

func readInflation(r *wire.Reader) Body {
	return InflationBody{Mosaic: model.ReadMosaic(r)}
}
