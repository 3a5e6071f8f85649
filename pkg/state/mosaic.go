// Package state encodes and decodes the persistent catalog entries a node
// keeps for mosaics, multisig accounts, locks, restrictions, metadata and
// accounts. Every entry starts with a two byte state version.
package state

import (
	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// MosaicProperties are the mutable definition properties of a mosaic.
type MosaicProperties struct {
	Flags        model.MosaicFlags   `json:"flags"`
	Divisibility uint8               `json:"divisibility"`
	Duration     model.BlockDuration `json:"duration"`
}

func (p MosaicProperties) Size() int { return 1 + 1 + 8 }

func (p MosaicProperties) Serialize(w *wire.Writer) {
	p.Flags.Serialize(w)
	w.Uint8(p.Divisibility)
	p.Duration.Serialize(w)
}

func readMosaicProperties(r *wire.Reader) MosaicProperties {
	return MosaicProperties{
		Flags:        model.ReadMosaicFlags(r),
		Divisibility: r.Uint8(),
		Duration:     model.ReadBlockDuration(r),
	}
}

// MosaicEntry is the catalog record of a mosaic definition and its supply.
type MosaicEntry struct {
	Version      uint16           `json:"version"`
	MosaicID     model.MosaicID   `json:"mosaicId"`
	Supply       model.Amount     `json:"supply"`
	StartHeight  model.Height     `json:"startHeight"`
	OwnerAddress model.Address    `json:"ownerAddress"`
	Revision     uint32           `json:"revision"`
	Properties   MosaicProperties `json:"properties"`
}

func (e *MosaicEntry) Size() int {
	return 2 + 8 + 8 + 8 + model.AddressSize + 4 + e.Properties.Size()
}

func (e *MosaicEntry) Serialize(w *wire.Writer) {
	w.Uint16(e.Version)
	e.MosaicID.Serialize(w)
	e.Supply.Serialize(w)
	e.StartHeight.Serialize(w)
	e.OwnerAddress.Serialize(w)
	w.Uint32(e.Revision)
	e.Properties.Serialize(w)
}

func ReadMosaicEntry(r *wire.Reader) *MosaicEntry {
	return &MosaicEntry{
		Version:      r.Uint16(),
		MosaicID:     model.ReadMosaicID(r),
		Supply:       model.ReadAmount(r),
		StartHeight:  model.ReadHeight(r),
		OwnerAddress: model.ReadAddress(r),
		Revision:     r.Uint32(),
		Properties:   readMosaicProperties(r),
	}
}

// DecodeMosaicEntry decodes a mosaic entry from the front of b.
func DecodeMosaicEntry(b []byte) (*MosaicEntry, int, error) {
	return wire.Unmarshal(b, ReadMosaicEntry)
}

// MultisigEntry is the catalog record of a multisig relationship.
type MultisigEntry struct {
	Version              uint16          `json:"version"`
	MinApproval          uint32          `json:"minApproval"`
	MinRemoval           uint32          `json:"minRemoval"`
	AccountAddress       model.Address   `json:"accountAddress"`
	CosignatoryAddresses []model.Address `json:"cosignatoryAddresses"`
	MultisigAddresses    []model.Address `json:"multisigAddresses"`
}

func (e *MultisigEntry) Size() int {
	return 2 + 4 + 4 + model.AddressSize +
		8 + wire.ArraySize(e.CosignatoryAddresses) +
		8 + wire.ArraySize(e.MultisigAddresses)
}

func (e *MultisigEntry) Serialize(w *wire.Writer) {
	w.Uint16(e.Version)
	w.Uint32(e.MinApproval)
	w.Uint32(e.MinRemoval)
	e.AccountAddress.Serialize(w)
	wire.WritePrefixedArray(w, wire.Width64, e.CosignatoryAddresses)
	wire.WritePrefixedArray(w, wire.Width64, e.MultisigAddresses)
}

func ReadMultisigEntry(r *wire.Reader) *MultisigEntry {
	return &MultisigEntry{
		Version:              r.Uint16(),
		MinApproval:          r.Uint32(),
		MinRemoval:           r.Uint32(),
		AccountAddress:       model.ReadAddress(r),
		CosignatoryAddresses: wire.ReadPrefixedArray(r, wire.Width64, model.ReadAddress),
		MultisigAddresses:    wire.ReadPrefixedArray(r, wire.Width64, model.ReadAddress),
	}
}

// DecodeMultisigEntry decodes a multisig entry from the front of b.
func DecodeMultisigEntry(b []byte) (*MultisigEntry, int, error) {
	return wire.Unmarshal(b, ReadMultisigEntry)
}
