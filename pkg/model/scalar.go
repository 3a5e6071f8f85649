package model

import (
	"fmt"

	"github.com/ssargent/catbuffer/pkg/wire"
)

// Amount is a quantity of mosaic units.
type Amount uint64

func ReadAmount(r *wire.Reader) Amount { return Amount(r.Uint64()) }

func (v Amount) Size() int { return 8 }

func (v Amount) Serialize(w *wire.Writer) { w.Uint64(uint64(v)) }

// BlockDuration is a number of blocks.
type BlockDuration uint64

func ReadBlockDuration(r *wire.Reader) BlockDuration { return BlockDuration(r.Uint64()) }

func (v BlockDuration) Size() int { return 8 }

func (v BlockDuration) Serialize(w *wire.Writer) { w.Uint64(uint64(v)) }

// Height is a block height.
type Height uint64

func ReadHeight(r *wire.Reader) Height { return Height(r.Uint64()) }

func (v Height) Size() int { return 8 }

func (v Height) Serialize(w *wire.Writer) { w.Uint64(uint64(v)) }

// Timestamp is a network timestamp in milliseconds.
type Timestamp uint64

func ReadTimestamp(r *wire.Reader) Timestamp { return Timestamp(r.Uint64()) }

func (v Timestamp) Size() int { return 8 }

func (v Timestamp) Serialize(w *wire.Writer) { w.Uint64(uint64(v)) }

// Importance is an account importance score.
type Importance uint64

func ReadImportance(r *wire.Reader) Importance { return Importance(r.Uint64()) }

func (v Importance) Size() int { return 8 }

func (v Importance) Serialize(w *wire.Writer) { w.Uint64(uint64(v)) }

// ScopedMetadataKey identifies a metadata entry within its target.
type ScopedMetadataKey uint64

func ReadScopedMetadataKey(r *wire.Reader) ScopedMetadataKey {
	return ScopedMetadataKey(r.Uint64())
}

func (v ScopedMetadataKey) Size() int { return 8 }

func (v ScopedMetadataKey) Serialize(w *wire.Writer) { w.Uint64(uint64(v)) }

func (v ScopedMetadataKey) String() string { return hexID(uint64(v)) }

func (v ScopedMetadataKey) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// MosaicID identifies a mosaic.
type MosaicID uint64

func ReadMosaicID(r *wire.Reader) MosaicID { return MosaicID(r.Uint64()) }

func (v MosaicID) Size() int { return 8 }

func (v MosaicID) Serialize(w *wire.Writer) { w.Uint64(uint64(v)) }

func (v MosaicID) String() string { return hexID(uint64(v)) }

func (v MosaicID) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnresolvedMosaicID is a mosaic id or a namespace alias to one.
type UnresolvedMosaicID uint64

func ReadUnresolvedMosaicID(r *wire.Reader) UnresolvedMosaicID {
	return UnresolvedMosaicID(r.Uint64())
}

func (v UnresolvedMosaicID) Size() int { return 8 }

func (v UnresolvedMosaicID) Serialize(w *wire.Writer) { w.Uint64(uint64(v)) }

func (v UnresolvedMosaicID) String() string { return hexID(uint64(v)) }

func (v UnresolvedMosaicID) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// NamespaceID identifies a namespace.
type NamespaceID uint64

func ReadNamespaceID(r *wire.Reader) NamespaceID { return NamespaceID(r.Uint64()) }

func (v NamespaceID) Size() int { return 8 }

func (v NamespaceID) Serialize(w *wire.Writer) { w.Uint64(uint64(v)) }

func (v NamespaceID) String() string { return hexID(uint64(v)) }

func (v NamespaceID) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// MosaicNonce seeds mosaic id generation.
type MosaicNonce uint32

func ReadMosaicNonce(r *wire.Reader) MosaicNonce { return MosaicNonce(r.Uint32()) }

func (v MosaicNonce) Size() int { return 4 }

func (v MosaicNonce) Serialize(w *wire.Writer) { w.Uint32(uint32(v)) }

// FinalizationEpoch is a finalization epoch number.
type FinalizationEpoch uint32

func ReadFinalizationEpoch(r *wire.Reader) FinalizationEpoch {
	return FinalizationEpoch(r.Uint32())
}

func (v FinalizationEpoch) Size() int { return 4 }

func (v FinalizationEpoch) Serialize(w *wire.Writer) { w.Uint32(uint32(v)) }

func hexID(v uint64) string {
	return fmt.Sprintf("%016X", v)
}
