package model

import "github.com/ssargent/catbuffer/pkg/wire"

// MosaicFlags are the properties of a mosaic definition. Bits without a
// name are preserved as decoded.
type MosaicFlags uint8

const (
	MosaicSupplyMutable MosaicFlags = 0x01
	MosaicTransferable  MosaicFlags = 0x02
	MosaicRestrictable  MosaicFlags = 0x04
	MosaicRevokable     MosaicFlags = 0x08
)

var mosaicFlagNames = []wire.Flag{
	{Bit: uint64(MosaicSupplyMutable), Name: "SUPPLY_MUTABLE"},
	{Bit: uint64(MosaicTransferable), Name: "TRANSFERABLE"},
	{Bit: uint64(MosaicRestrictable), Name: "RESTRICTABLE"},
	{Bit: uint64(MosaicRevokable), Name: "REVOKABLE"},
}

func ReadMosaicFlags(r *wire.Reader) MosaicFlags { return MosaicFlags(r.Uint8()) }

func (f MosaicFlags) Has(bit MosaicFlags) bool     { return f&bit == bit }
func (f MosaicFlags) Names() []string              { return wire.FlagNames(uint64(f), mosaicFlagNames) }
func (f MosaicFlags) String() string               { return wire.FormatFlags(uint64(f), mosaicFlagNames) }
func (f MosaicFlags) MarshalText() ([]byte, error) { return []byte(f.String()), nil }
func (f MosaicFlags) Size() int                    { return 1 }
func (f MosaicFlags) Serialize(w *wire.Writer)     { w.Uint8(uint8(f)) }

// AccountRestrictionFlags describe an account restriction. The low bits
// select what is restricted; Outgoing and Block modify the rule.
type AccountRestrictionFlags uint16

const (
	RestrictAddress         AccountRestrictionFlags = 0x0001
	RestrictMosaicID        AccountRestrictionFlags = 0x0002
	RestrictTransactionType AccountRestrictionFlags = 0x0004
	RestrictOutgoing        AccountRestrictionFlags = 0x4000
	RestrictBlock           AccountRestrictionFlags = 0x8000
)

var accountRestrictionFlagNames = []wire.Flag{
	{Bit: uint64(RestrictAddress), Name: "ADDRESS"},
	{Bit: uint64(RestrictMosaicID), Name: "MOSAIC_ID"},
	{Bit: uint64(RestrictTransactionType), Name: "TRANSACTION_TYPE"},
	{Bit: uint64(RestrictOutgoing), Name: "OUTGOING"},
	{Bit: uint64(RestrictBlock), Name: "BLOCK"},
}

func ReadAccountRestrictionFlags(r *wire.Reader) AccountRestrictionFlags {
	return AccountRestrictionFlags(r.Uint16())
}

func (f AccountRestrictionFlags) Has(bit AccountRestrictionFlags) bool { return f&bit == bit }
func (f AccountRestrictionFlags) Names() []string {
	return wire.FlagNames(uint64(f), accountRestrictionFlagNames)
}
func (f AccountRestrictionFlags) String() string {
	return wire.FormatFlags(uint64(f), accountRestrictionFlagNames)
}
func (f AccountRestrictionFlags) MarshalText() ([]byte, error) { return []byte(f.String()), nil }
func (f AccountRestrictionFlags) Size() int                    { return 2 }
func (f AccountRestrictionFlags) Serialize(w *wire.Writer)     { w.Uint16(uint16(f)) }

// AccountKeyTypeFlags report which supplemental keys an account carries.
type AccountKeyTypeFlags uint8

const (
	KeyLinked AccountKeyTypeFlags = 0x01
	KeyNode   AccountKeyTypeFlags = 0x02
	KeyVrf    AccountKeyTypeFlags = 0x04
)

var accountKeyTypeFlagNames = []wire.Flag{
	{Bit: uint64(KeyLinked), Name: "LINKED"},
	{Bit: uint64(KeyNode), Name: "NODE"},
	{Bit: uint64(KeyVrf), Name: "VRF"},
}

func ReadAccountKeyTypeFlags(r *wire.Reader) AccountKeyTypeFlags {
	return AccountKeyTypeFlags(r.Uint8())
}

func (f AccountKeyTypeFlags) Has(bit AccountKeyTypeFlags) bool { return f&bit == bit }
func (f AccountKeyTypeFlags) Names() []string {
	return wire.FlagNames(uint64(f), accountKeyTypeFlagNames)
}
func (f AccountKeyTypeFlags) String() string {
	return wire.FormatFlags(uint64(f), accountKeyTypeFlagNames)
}
func (f AccountKeyTypeFlags) MarshalText() ([]byte, error) { return []byte(f.String()), nil }
func (f AccountKeyTypeFlags) Size() int                    { return 1 }
func (f AccountKeyTypeFlags) Serialize(w *wire.Writer)     { w.Uint8(uint8(f)) }
