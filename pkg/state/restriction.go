package state

import (
	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// MosaicRestriction is the branch of a mosaic restriction entry selected by
// its leading entry type.
type MosaicRestriction interface {
	wire.Serializer
	EntryType() model.MosaicRestrictionEntryType
}

// AddressKeyValue is one restriction value set for an address.
type AddressKeyValue struct {
	Key   uint64 `json:"key"`
	Value uint64 `json:"value"`
}

func (kv AddressKeyValue) Size() int { return 16 }

func (kv AddressKeyValue) Serialize(w *wire.Writer) {
	w.Uint64(kv.Key)
	w.Uint64(kv.Value)
}

func readAddressKeyValue(r *wire.Reader) AddressKeyValue {
	return AddressKeyValue{Key: r.Uint64(), Value: r.Uint64()}
}

// AddressRestriction holds the restriction values of one address for a
// mosaic.
type AddressRestriction struct {
	MosaicID      model.MosaicID    `json:"mosaicId"`
	TargetAddress model.Address     `json:"targetAddress"`
	KeyPairs      []AddressKeyValue `json:"keyPairs"`
}

func (AddressRestriction) EntryType() model.MosaicRestrictionEntryType {
	return model.RestrictionEntryAddress
}

func (a AddressRestriction) Size() int {
	return 8 + model.AddressSize + 1 + wire.ArraySize(a.KeyPairs)
}

func (a AddressRestriction) Serialize(w *wire.Writer) {
	a.MosaicID.Serialize(w)
	a.TargetAddress.Serialize(w)
	wire.WritePrefixedArray(w, wire.Width8, a.KeyPairs)
}

// GlobalRestrictionRule is the rule stored under one global restriction key.
type GlobalRestrictionRule struct {
	ReferenceMosaicID model.MosaicID              `json:"referenceMosaicId"`
	RestrictionValue  uint64                      `json:"restrictionValue"`
	RestrictionType   model.MosaicRestrictionType `json:"restrictionType"`
}

// GlobalKeyValue is one keyed global restriction rule.
type GlobalKeyValue struct {
	Key  uint64                `json:"key"`
	Rule GlobalRestrictionRule `json:"restrictionRule"`
}

func (kv GlobalKeyValue) Size() int { return 8 + 8 + 8 + 1 }

func (kv GlobalKeyValue) Serialize(w *wire.Writer) {
	w.Uint64(kv.Key)
	kv.Rule.ReferenceMosaicID.Serialize(w)
	w.Uint64(kv.Rule.RestrictionValue)
	wire.WriteEnum8(w, kv.Rule.RestrictionType)
}

func readGlobalKeyValue(r *wire.Reader) GlobalKeyValue {
	return GlobalKeyValue{
		Key: r.Uint64(),
		Rule: GlobalRestrictionRule{
			ReferenceMosaicID: model.ReadMosaicID(r),
			RestrictionValue:  r.Uint64(),
			RestrictionType:   wire.ReadEnum8[model.MosaicRestrictionType](r),
		},
	}
}

// GlobalRestriction holds the network wide rules of a mosaic.
type GlobalRestriction struct {
	MosaicID model.MosaicID   `json:"mosaicId"`
	KeyPairs []GlobalKeyValue `json:"keyPairs"`
}

func (GlobalRestriction) EntryType() model.MosaicRestrictionEntryType {
	return model.RestrictionEntryGlobal
}

func (g GlobalRestriction) Size() int { return 8 + 1 + wire.ArraySize(g.KeyPairs) }

func (g GlobalRestriction) Serialize(w *wire.Writer) {
	g.MosaicID.Serialize(w)
	wire.WritePrefixedArray(w, wire.Width8, g.KeyPairs)
}

var mosaicRestrictions = wire.NewUnion("mosaic restriction entry", map[model.MosaicRestrictionEntryType]wire.DecodeFunc[MosaicRestriction]{
	model.RestrictionEntryAddress: func(r *wire.Reader) MosaicRestriction {
		return AddressRestriction{
			MosaicID:      model.ReadMosaicID(r),
			TargetAddress: model.ReadAddress(r),
			KeyPairs:      wire.ReadPrefixedArray(r, wire.Width8, readAddressKeyValue),
		}
	},
	model.RestrictionEntryGlobal: func(r *wire.Reader) MosaicRestriction {
		return GlobalRestriction{
			MosaicID: model.ReadMosaicID(r),
			KeyPairs: wire.ReadPrefixedArray(r, wire.Width8, readGlobalKeyValue),
		}
	},
})

// MosaicRestrictionEntry is the catalog record of a mosaic restriction. The
// entry type byte is taken from the active branch.
type MosaicRestrictionEntry struct {
	Version     uint16            `json:"version"`
	Restriction MosaicRestriction `json:"restriction"`
}

// EntryType returns the tag of the active branch. ok is false when no branch
// is set.
func (e *MosaicRestrictionEntry) EntryType() (typ model.MosaicRestrictionEntryType, ok bool) {
	if e.Restriction == nil {
		return 0, false
	}
	return e.Restriction.EntryType(), true
}

func (e *MosaicRestrictionEntry) Size() int {
	if e.Restriction == nil {
		return 2 + 1
	}
	return 2 + 1 + e.Restriction.Size()
}

func (e *MosaicRestrictionEntry) Serialize(w *wire.Writer) {
	if e.Restriction == nil {
		w.Fail(wire.ErrNoActiveVariant)
		return
	}
	w.Uint16(e.Version)
	wire.WriteEnum8(w, e.Restriction.EntryType())
	e.Restriction.Serialize(w)
}

func ReadMosaicRestrictionEntry(r *wire.Reader) *MosaicRestrictionEntry {
	e := &MosaicRestrictionEntry{Version: r.Uint16()}
	tag := wire.ReadEnum8[model.MosaicRestrictionEntryType](r)
	e.Restriction = mosaicRestrictions.Decode(r, tag)
	return e
}

// DecodeMosaicRestrictionEntry decodes a mosaic restriction entry from the
// front of b.
func DecodeMosaicRestrictionEntry(b []byte) (*MosaicRestrictionEntry, int, error) {
	return wire.Unmarshal(b, ReadMosaicRestrictionEntry)
}

// RestrictionAs returns the active branch of e as T.
func RestrictionAs[T MosaicRestriction](e *MosaicRestrictionEntry) (T, error) {
	return wire.As[T](e.Restriction)
}

// restrictionTypeMask selects the flag bits that say what an account
// restriction applies to.
const restrictionTypeMask = model.RestrictAddress | model.RestrictMosaicID | model.RestrictTransactionType

// RestrictionValues are the values of one account restriction. The branch
// is selected by the type bits of the restriction flags.
type RestrictionValues interface {
	wire.Serializer
	Kind() model.AccountRestrictionFlags
}

// AddressValues are restricted addresses.
type AddressValues []model.Address

func (AddressValues) Kind() model.AccountRestrictionFlags { return model.RestrictAddress }
func (v AddressValues) Size() int                          { return 8 + wire.ArraySize(v) }
func (v AddressValues) Serialize(w *wire.Writer)           { wire.WritePrefixedArray(w, wire.Width64, v) }

// MosaicIDValues are restricted mosaics.
type MosaicIDValues []model.MosaicID

func (MosaicIDValues) Kind() model.AccountRestrictionFlags { return model.RestrictMosaicID }
func (v MosaicIDValues) Size() int                          { return 8 + wire.ArraySize(v) }
func (v MosaicIDValues) Serialize(w *wire.Writer)           { wire.WritePrefixedArray(w, wire.Width64, v) }

// OperationValues are restricted transaction types.
type OperationValues []model.EntityType

func (OperationValues) Kind() model.AccountRestrictionFlags { return model.RestrictTransactionType }
func (v OperationValues) Size() int                          { return 8 + wire.ArraySize(v) }
func (v OperationValues) Serialize(w *wire.Writer)           { wire.WritePrefixedArray(w, wire.Width64, v) }

var restrictionValues = wire.NewUnion("account restriction values", map[model.AccountRestrictionFlags]wire.DecodeFunc[RestrictionValues]{
	model.RestrictAddress: func(r *wire.Reader) RestrictionValues {
		return AddressValues(wire.ReadPrefixedArray(r, wire.Width64, model.ReadAddress))
	},
	model.RestrictMosaicID: func(r *wire.Reader) RestrictionValues {
		return MosaicIDValues(wire.ReadPrefixedArray(r, wire.Width64, model.ReadMosaicID))
	},
	model.RestrictTransactionType: func(r *wire.Reader) RestrictionValues {
		return OperationValues(wire.ReadPrefixedArray(r, wire.Width64, model.ReadEntityType))
	},
})

// AccountRestrictionsInfo is one restriction rule of an account.
type AccountRestrictionsInfo struct {
	Flags  model.AccountRestrictionFlags `json:"restrictionFlags"`
	Values RestrictionValues             `json:"values"`
}

func (i AccountRestrictionsInfo) Size() int {
	if i.Values == nil {
		return 2
	}
	return 2 + i.Values.Size()
}

func (i AccountRestrictionsInfo) Serialize(w *wire.Writer) {
	if i.Values == nil {
		w.Fail(wire.ErrNoActiveVariant)
		return
	}
	if i.Flags&restrictionTypeMask != i.Values.Kind() {
		w.Failf(wire.ErrWrongVariant, "flags %s cannot carry %T", i.Flags, i.Values)
		return
	}
	i.Flags.Serialize(w)
	i.Values.Serialize(w)
}

func readAccountRestrictionsInfo(r *wire.Reader) AccountRestrictionsInfo {
	off := r.Offset()
	flags := model.ReadAccountRestrictionFlags(r)
	if r.Err() == nil && !restrictionValues.Has(flags&restrictionTypeMask) {
		r.FailAt(off, wire.NewError(wire.ErrUnrecognizedVariant, off, "restriction flags %s", flags))
		return AccountRestrictionsInfo{Flags: flags}
	}
	return AccountRestrictionsInfo{Flags: flags, Values: restrictionValues.Decode(r, flags&restrictionTypeMask)}
}

// AccountRestrictions is the catalog record of the restrictions of one
// account.
type AccountRestrictions struct {
	Version      uint16                    `json:"version"`
	Address      model.Address             `json:"address"`
	Restrictions []AccountRestrictionsInfo `json:"restrictions"`
}

func (e *AccountRestrictions) Size() int {
	return 2 + model.AddressSize + 8 + wire.ArraySize(e.Restrictions)
}

func (e *AccountRestrictions) Serialize(w *wire.Writer) {
	w.Uint16(e.Version)
	e.Address.Serialize(w)
	wire.WritePrefixedArray(w, wire.Width64, e.Restrictions)
}

func ReadAccountRestrictions(r *wire.Reader) *AccountRestrictions {
	return &AccountRestrictions{
		Version:      r.Uint16(),
		Address:      model.ReadAddress(r),
		Restrictions: wire.ReadPrefixedArray(r, wire.Width64, readAccountRestrictionsInfo),
	}
}

// DecodeAccountRestrictions decodes account restrictions from the front of
// b.
func DecodeAccountRestrictions(b []byte) (*AccountRestrictions, int, error) {
	return wire.Unmarshal(b, ReadAccountRestrictions)
}
