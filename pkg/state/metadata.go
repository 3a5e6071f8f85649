package state

import (
	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// MetadataEntry is the catalog record of one metadata value.
type MetadataEntry struct {
	Version           uint16                  `json:"version"`
	SourceAddress     model.Address           `json:"sourceAddress"`
	TargetAddress     model.Address           `json:"targetAddress"`
	ScopedMetadataKey model.ScopedMetadataKey `json:"scopedMetadataKey"`
	TargetID          uint64                  `json:"targetId"`
	MetadataType      model.MetadataType      `json:"metadataType"`
	Value             model.HexBytes          `json:"value"`
}

func (e *MetadataEntry) Size() int {
	return 2 + 2*model.AddressSize + 8 + 8 + 1 + 2 + len(e.Value)
}

func (e *MetadataEntry) Serialize(w *wire.Writer) {
	w.Uint16(e.Version)
	e.SourceAddress.Serialize(w)
	e.TargetAddress.Serialize(w)
	e.ScopedMetadataKey.Serialize(w)
	w.Uint64(e.TargetID)
	wire.WriteEnum8(w, e.MetadataType)
	w.Count(wire.Width16, len(e.Value))
	w.Fixed(e.Value)
}

func ReadMetadataEntry(r *wire.Reader) *MetadataEntry {
	e := &MetadataEntry{
		Version:           r.Uint16(),
		SourceAddress:     model.ReadAddress(r),
		TargetAddress:     model.ReadAddress(r),
		ScopedMetadataKey: model.ReadScopedMetadataKey(r),
		TargetID:          r.Uint64(),
		MetadataType:      wire.ReadEnum8[model.MetadataType](r),
	}
	size := r.Count(wire.Width16)
	e.Value = r.Bytes(int(size))
	return e
}

// DecodeMetadataEntry decodes a metadata entry from the front of b.
func DecodeMetadataEntry(b []byte) (*MetadataEntry, int, error) {
	return wire.Unmarshal(b, ReadMetadataEntry)
}
