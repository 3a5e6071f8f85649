package model

import "github.com/ssargent/catbuffer/pkg/wire"

// UnresolvedAddress is an address or a namespace alias to one.
type UnresolvedAddress = Address

// Mosaic is an amount of a resolved mosaic.
type Mosaic struct {
	MosaicID MosaicID `json:"mosaicId"`
	Amount   Amount   `json:"amount"`
}

func ReadMosaic(r *wire.Reader) Mosaic {
	return Mosaic{MosaicID: ReadMosaicID(r), Amount: ReadAmount(r)}
}

func (m Mosaic) Size() int { return 16 }

func (m Mosaic) Serialize(w *wire.Writer) {
	m.MosaicID.Serialize(w)
	m.Amount.Serialize(w)
}

// UnresolvedMosaic is an amount of a mosaic that may be given by alias.
type UnresolvedMosaic struct {
	MosaicID UnresolvedMosaicID `json:"mosaicId"`
	Amount   Amount             `json:"amount"`
}

func ReadUnresolvedMosaic(r *wire.Reader) UnresolvedMosaic {
	return UnresolvedMosaic{MosaicID: ReadUnresolvedMosaicID(r), Amount: ReadAmount(r)}
}

func (m UnresolvedMosaic) Size() int { return 16 }

func (m UnresolvedMosaic) Serialize(w *wire.Writer) {
	m.MosaicID.Serialize(w)
	m.Amount.Serialize(w)
}

// CosignatureSize is the encoded size of a Cosignature.
const CosignatureSize = 8 + PublicKeySize + SignatureSize

// Cosignature is a signature over an aggregate by one of its cosigners.
type Cosignature struct {
	Version         uint64    `json:"version"`
	SignerPublicKey PublicKey `json:"signerPublicKey"`
	Signature       Signature `json:"signature"`
}

func ReadCosignature(r *wire.Reader) Cosignature {
	return Cosignature{
		Version:         r.Uint64(),
		SignerPublicKey: ReadPublicKey(r),
		Signature:       ReadSignature(r),
	}
}

func (c Cosignature) Size() int { return CosignatureSize }

func (c Cosignature) Serialize(w *wire.Writer) {
	w.Uint64(c.Version)
	c.SignerPublicKey.Serialize(w)
	c.Signature.Serialize(w)
}

// PinnedVotingKey is a voting key valid over an epoch range.
type PinnedVotingKey struct {
	VotingKey  VotingKey         `json:"votingKey"`
	StartEpoch FinalizationEpoch `json:"startEpoch"`
	EndEpoch   FinalizationEpoch `json:"endEpoch"`
}

func ReadPinnedVotingKey(r *wire.Reader) PinnedVotingKey {
	return PinnedVotingKey{
		VotingKey:  ReadVotingKey(r),
		StartEpoch: ReadFinalizationEpoch(r),
		EndEpoch:   ReadFinalizationEpoch(r),
	}
}

func (k PinnedVotingKey) Size() int { return VotingKeySize + 8 }

func (k PinnedVotingKey) Serialize(w *wire.Writer) {
	k.VotingKey.Serialize(w)
	k.StartEpoch.Serialize(w)
	k.EndEpoch.Serialize(w)
}

// ReceiptSource locates the transaction that produced a receipt. A secondary
// id of zero means the transaction is not embedded.
type ReceiptSource struct {
	PrimaryID   uint32 `json:"primaryId"`
	SecondaryID uint32 `json:"secondaryId"`
}

func ReadReceiptSource(r *wire.Reader) ReceiptSource {
	return ReceiptSource{PrimaryID: r.Uint32(), SecondaryID: r.Uint32()}
}

func (s ReceiptSource) Size() int { return 8 }

func (s ReceiptSource) Serialize(w *wire.Writer) {
	w.Uint32(s.PrimaryID)
	w.Uint32(s.SecondaryID)
}
