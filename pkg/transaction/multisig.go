package transaction

import (
	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// MultisigAccountModificationBody changes the cosignatories and approval
// thresholds of a multisig account.
type MultisigAccountModificationBody struct {
	MinRemovalDelta  int8                      `json:"minRemovalDelta"`
	MinApprovalDelta int8                      `json:"minApprovalDelta"`
	AddressAdditions []model.UnresolvedAddress `json:"addressAdditions"`
	AddressDeletions []model.UnresolvedAddress `json:"addressDeletions"`
}

func (b MultisigAccountModificationBody) Type() model.EntityType {
	return model.EntityMultisigAccountModification
}

func (b MultisigAccountModificationBody) Size() int {
	return 1 + 1 + 1 + 1 + 4 + wire.ArraySize(b.AddressAdditions) + wire.ArraySize(b.AddressDeletions)
}

func (b MultisigAccountModificationBody) Serialize(w *wire.Writer) {
	w.Uint8(uint8(b.MinRemovalDelta))
	w.Uint8(uint8(b.MinApprovalDelta))
	w.Count(wire.Width8, len(b.AddressAdditions))
	w.Count(wire.Width8, len(b.AddressDeletions))
	w.Reserved(wire.Width32)
	wire.WriteArray(w, b.AddressAdditions)
	wire.WriteArray(w, b.AddressDeletions)
}

func readMultisigAccountModification(r *wire.Reader) Body {
	var b MultisigAccountModificationBody
	b.MinRemovalDelta = int8(r.Uint8())
	b.MinApprovalDelta = int8(r.Uint8())
	additions := r.Count(wire.Width8)
	deletions := r.Count(wire.Width8)
	r.Reserved(wire.Width32)
	b.AddressAdditions = wire.ReadArray(r, additions, model.ReadAddress)
	b.AddressDeletions = wire.ReadArray(r, deletions, model.ReadAddress)
	return b
}
