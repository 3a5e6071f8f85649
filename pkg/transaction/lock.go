package transaction

import (
	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// HashLockBody locks funds until a bonded aggregate with the given hash is
// confirmed.
type HashLockBody struct {
	Mosaic   model.UnresolvedMosaic `json:"mosaic"`
	Duration model.BlockDuration    `json:"duration"`
	Hash     model.Hash256          `json:"hash"`
}

func (b HashLockBody) Type() model.EntityType { return model.EntityHashLock }

func (b HashLockBody) Size() int { return 16 + 8 + model.Hash256Size }

func (b HashLockBody) Serialize(w *wire.Writer) {
	b.Mosaic.Serialize(w)
	b.Duration.Serialize(w)
	b.Hash.Serialize(w)
}

func readHashLock(r *wire.Reader) Body {
	return HashLockBody{
		Mosaic:   model.ReadUnresolvedMosaic(r),
		Duration: model.ReadBlockDuration(r),
		Hash:     model.ReadHash256(r),
	}
}

// SecretLockBody locks funds for a recipient until the secret is proven.
type SecretLockBody struct {
	Recipient     model.UnresolvedAddress `json:"recipientAddress"`
	Secret        model.Hash256           `json:"secret"`
	Mosaic        model.UnresolvedMosaic  `json:"mosaic"`
	Duration      model.BlockDuration     `json:"duration"`
	HashAlgorithm model.LockHashAlgorithm `json:"hashAlgorithm"`
}

func (b SecretLockBody) Type() model.EntityType { return model.EntitySecretLock }

func (b SecretLockBody) Size() int {
	return model.AddressSize + model.Hash256Size + 16 + 8 + 1
}

func (b SecretLockBody) Serialize(w *wire.Writer) {
	b.Recipient.Serialize(w)
	b.Secret.Serialize(w)
	b.Mosaic.Serialize(w)
	b.Duration.Serialize(w)
	wire.WriteEnum8(w, b.HashAlgorithm)
}

func readSecretLock(r *wire.Reader) Body {
	return SecretLockBody{
		Recipient:     model.ReadAddress(r),
		Secret:        model.ReadHash256(r),
		Mosaic:        model.ReadUnresolvedMosaic(r),
		Duration:      model.ReadBlockDuration(r),
		HashAlgorithm: wire.ReadEnum8[model.LockHashAlgorithm](r),
	}
}

// SecretProofBody reveals the proof that unlocks a secret lock.
type SecretProofBody struct {
	Recipient     model.UnresolvedAddress `json:"recipientAddress"`
	Secret        model.Hash256           `json:"secret"`
	HashAlgorithm model.LockHashAlgorithm `json:"hashAlgorithm"`
	Proof         model.HexBytes          `json:"proof"`
}

func (b SecretProofBody) Type() model.EntityType { return model.EntitySecretProof }

func (b SecretProofBody) Size() int {
	return model.AddressSize + model.Hash256Size + 2 + 1 + len(b.Proof)
}

func (b SecretProofBody) Serialize(w *wire.Writer) {
	b.Recipient.Serialize(w)
	b.Secret.Serialize(w)
	w.Count(wire.Width16, len(b.Proof))
	wire.WriteEnum8(w, b.HashAlgorithm)
	w.Fixed(b.Proof)
}

func readSecretProof(r *wire.Reader) Body {
	var b SecretProofBody
	b.Recipient = model.ReadAddress(r)
	b.Secret = model.ReadHash256(r)
	proofSize := r.Count(wire.Width16)
	b.HashAlgorithm = wire.ReadEnum8[model.LockHashAlgorithm](r)
	b.Proof = r.Bytes(int(proofSize))
	return b
}
