package transaction

import (
	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// AccountRestriction is the layout shared by the account restriction
// transactions: flags, two u8 counts, a reserved u32, then the additions
// and deletions.
type AccountRestriction[T wire.Serializer] struct {
	RestrictionFlags model.AccountRestrictionFlags `json:"restrictionFlags"`
	Additions        []T                           `json:"restrictionAdditions"`
	Deletions        []T                           `json:"restrictionDeletions"`
}

func (b AccountRestriction[T]) Size() int {
	return 2 + 1 + 1 + 4 + wire.ArraySize(b.Additions) + wire.ArraySize(b.Deletions)
}

func (b AccountRestriction[T]) Serialize(w *wire.Writer) {
	b.RestrictionFlags.Serialize(w)
	w.Count(wire.Width8, len(b.Additions))
	w.Count(wire.Width8, len(b.Deletions))
	w.Reserved(wire.Width32)
	wire.WriteArray(w, b.Additions)
	wire.WriteArray(w, b.Deletions)
}

func readAccountRestriction[T wire.Serializer](r *wire.Reader, decode func(r *wire.Reader) T) AccountRestriction[T] {
	var b AccountRestriction[T]
	b.RestrictionFlags = model.ReadAccountRestrictionFlags(r)
	additions := r.Count(wire.Width8)
	deletions := r.Count(wire.Width8)
	r.Reserved(wire.Width32)
	b.Additions = wire.ReadArray(r, additions, decode)
	b.Deletions = wire.ReadArray(r, deletions, decode)
	return b
}

// AccountAddressRestrictionBody allows or blocks addresses.
type AccountAddressRestrictionBody struct {
	AccountRestriction[model.UnresolvedAddress]
}

func (AccountAddressRestrictionBody) Type() model.EntityType {
	return model.EntityAccountAddressRestriction
}

func readAccountAddressRestriction(r *wire.Reader) Body {
	return AccountAddressRestrictionBody{readAccountRestriction(r, model.ReadAddress)}
}

// AccountMosaicRestrictionBody allows or blocks mosaics.
type AccountMosaicRestrictionBody struct {
	AccountRestriction[model.UnresolvedMosaicID]
}

func (AccountMosaicRestrictionBody) Type() model.EntityType {
	return model.EntityAccountMosaicRestriction
}

func readAccountMosaicRestriction(r *wire.Reader) Body {
	return AccountMosaicRestrictionBody{readAccountRestriction(r, model.ReadUnresolvedMosaicID)}
}

// AccountOperationRestrictionBody allows or blocks transaction types.
type AccountOperationRestrictionBody struct {
	AccountRestriction[model.EntityType]
}

func (AccountOperationRestrictionBody) Type() model.EntityType {
	return model.EntityAccountOperationRestriction
}

func readAccountOperationRestriction(r *wire.Reader) Body {
	return AccountOperationRestrictionBody{readAccountRestriction(r, model.ReadEntityType)}
}

// MosaicAddressRestrictionBody sets a restriction value for one address.
type MosaicAddressRestrictionBody struct {
	MosaicID                 model.UnresolvedMosaicID `json:"mosaicId"`
	RestrictionKey           uint64                   `json:"restrictionKey"`
	PreviousRestrictionValue uint64                   `json:"previousRestrictionValue"`
	NewRestrictionValue      uint64                   `json:"newRestrictionValue"`
	TargetAddress            model.UnresolvedAddress  `json:"targetAddress"`
}

func (b MosaicAddressRestrictionBody) Type() model.EntityType {
	return model.EntityMosaicAddressRestriction
}

func (b MosaicAddressRestrictionBody) Size() int { return 8 + 8 + 8 + 8 + model.AddressSize }

func (b MosaicAddressRestrictionBody) Serialize(w *wire.Writer) {
	b.MosaicID.Serialize(w)
	w.Uint64(b.RestrictionKey)
	w.Uint64(b.PreviousRestrictionValue)
	w.Uint64(b.NewRestrictionValue)
	b.TargetAddress.Serialize(w)
}

func readMosaicAddressRestriction(r *wire.Reader) Body {
	return MosaicAddressRestrictionBody{
		MosaicID:                 model.ReadUnresolvedMosaicID(r),
		RestrictionKey:           r.Uint64(),
		PreviousRestrictionValue: r.Uint64(),
		NewRestrictionValue:      r.Uint64(),
		TargetAddress:            model.ReadAddress(r),
	}
}

// MosaicGlobalRestrictionBody sets the network wide restriction rule of a
// mosaic.
type MosaicGlobalRestrictionBody struct {
	MosaicID                 model.UnresolvedMosaicID    `json:"mosaicId"`
	ReferenceMosaicID        model.UnresolvedMosaicID    `json:"referenceMosaicId"`
	RestrictionKey           uint64                      `json:"restrictionKey"`
	PreviousRestrictionValue uint64                      `json:"previousRestrictionValue"`
	NewRestrictionValue      uint64                      `json:"newRestrictionValue"`
	PreviousRestrictionType  model.MosaicRestrictionType `json:"previousRestrictionType"`
	NewRestrictionType       model.MosaicRestrictionType `json:"newRestrictionType"`
}

func (b MosaicGlobalRestrictionBody) Type() model.EntityType {
	return model.EntityMosaicGlobalRestriction
}

func (b MosaicGlobalRestrictionBody) Size() int { return 8*5 + 1 + 1 }

func (b MosaicGlobalRestrictionBody) Serialize(w *wire.Writer) {
	b.MosaicID.Serialize(w)
	b.ReferenceMosaicID.Serialize(w)
	w.Uint64(b.RestrictionKey)
	w.Uint64(b.PreviousRestrictionValue)
	w.Uint64(b.NewRestrictionValue)
	wire.WriteEnum8(w, b.PreviousRestrictionType)
	wire.WriteEnum8(w, b.NewRestrictionType)
}

func readMosaicGlobalRestriction(r *wire.Reader) Body {
	return MosaicGlobalRestrictionBody{
		MosaicID:                 model.ReadUnresolvedMosaicID(r),
		ReferenceMosaicID:        model.ReadUnresolvedMosaicID(r),
		RestrictionKey:           r.Uint64(),
		PreviousRestrictionValue: r.Uint64(),
		NewRestrictionValue:      r.Uint64(),
		PreviousRestrictionType:  wire.ReadEnum8[model.MosaicRestrictionType](r),
		NewRestrictionType:       wire.ReadEnum8[model.MosaicRestrictionType](r),
	}
}
