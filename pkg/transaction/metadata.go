package transaction

import (
	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// MetadataValue is the value part shared by the metadata transactions.
// ValueSizeDelta is the signed change in value size relative to the
// current value.
type MetadataValue struct {
	ValueSizeDelta int16          `json:"valueSizeDelta"`
	Value          model.HexBytes `json:"value"`
}

func (v MetadataValue) Size() int { return 2 + 2 + len(v.Value) }

func (v MetadataValue) Serialize(w *wire.Writer) {
	w.Uint16(uint16(v.ValueSizeDelta))
	w.Count(wire.Width16, len(v.Value))
	w.Fixed(v.Value)
}

func readMetadataValue(r *wire.Reader) MetadataValue {
	var v MetadataValue
	v.ValueSizeDelta = int16(r.Uint16())
	size := r.Count(wire.Width16)
	v.Value = r.Bytes(int(size))
	return v
}

// AccountMetadataBody sets a metadata value on an account.
type AccountMetadataBody struct {
	TargetAddress     model.UnresolvedAddress `json:"targetAddress"`
	ScopedMetadataKey model.ScopedMetadataKey `json:"scopedMetadataKey"`
	MetadataValue
}

func (b AccountMetadataBody) Type() model.EntityType { return model.EntityAccountMetadata }

func (b AccountMetadataBody) Size() int {
	return model.AddressSize + 8 + b.MetadataValue.Size()
}

func (b AccountMetadataBody) Serialize(w *wire.Writer) {
	b.TargetAddress.Serialize(w)
	b.ScopedMetadataKey.Serialize(w)
	b.MetadataValue.Serialize(w)
}

func readAccountMetadata(r *wire.Reader) Body {
	return AccountMetadataBody{
		TargetAddress:     model.ReadAddress(r),
		ScopedMetadataKey: model.ReadScopedMetadataKey(r),
		MetadataValue:     readMetadataValue(r),
	}
}

// MosaicMetadataBody sets a metadata value on a mosaic.
type MosaicMetadataBody struct {
	TargetAddress     model.UnresolvedAddress  `json:"targetAddress"`
	ScopedMetadataKey model.ScopedMetadataKey  `json:"scopedMetadataKey"`
	TargetMosaicID    model.UnresolvedMosaicID `json:"targetMosaicId"`
	MetadataValue
}

func (b MosaicMetadataBody) Type() model.EntityType { return model.EntityMosaicMetadata }

func (b MosaicMetadataBody) Size() int {
	return model.AddressSize + 8 + 8 + b.MetadataValue.Size()
}

func (b MosaicMetadataBody) Serialize(w *wire.Writer) {
	b.TargetAddress.Serialize(w)
	b.ScopedMetadataKey.Serialize(w)
	b.TargetMosaicID.Serialize(w)
	b.MetadataValue.Serialize(w)
}

func readMosaicMetadata(r *wire.Reader) Body {
	return MosaicMetadataBody{
		TargetAddress:     model.ReadAddress(r),
		ScopedMetadataKey: model.ReadScopedMetadataKey(r),
		TargetMosaicID:    model.ReadUnresolvedMosaicID(r),
		MetadataValue:     readMetadataValue(r),
	}
}

// NamespaceMetadataBody sets a metadata value on a namespace.
type NamespaceMetadataBody struct {
	TargetAddress     model.UnresolvedAddress `json:"targetAddress"`
	ScopedMetadataKey model.ScopedMetadataKey `json:"scopedMetadataKey"`
	TargetNamespaceID model.NamespaceID       `json:"targetNamespaceId"`
	MetadataValue
}

func (b NamespaceMetadataBody) Type() model.EntityType { return model.EntityNamespaceMetadata }

func (b NamespaceMetadataBody) Size() int {
	return model.AddressSize + 8 + 8 + b.MetadataValue.Size()
}

func (b NamespaceMetadataBody) Serialize(w *wire.Writer) {
	b.TargetAddress.Serialize(w)
	b.ScopedMetadataKey.Serialize(w)
	b.TargetNamespaceID.Serialize(w)
	b.MetadataValue.Serialize(w)
}

func readNamespaceMetadata(r *wire.Reader) Body {
	return NamespaceMetadataBody{
		TargetAddress:     model.ReadAddress(r),
		ScopedMetadataKey: model.ReadScopedMetadataKey(r),
		TargetNamespaceID: model.ReadNamespaceID(r),
		MetadataValue:     readMetadataValue(r),
	}
}
