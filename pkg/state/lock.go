package state

import (
	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// HashLockInfo is the catalog record of a hash lock.
type HashLockInfo struct {
	Version      uint16           `json:"version"`
	OwnerAddress model.Address    `json:"ownerAddress"`
	Mosaic       model.Mosaic     `json:"mosaic"`
	EndHeight    model.Height     `json:"endHeight"`
	Status       model.LockStatus `json:"status"`
	Hash         model.Hash256    `json:"hash"`
}

func (e *HashLockInfo) Size() int {
	return 2 + model.AddressSize + 16 + 8 + 1 + model.Hash256Size
}

func (e *HashLockInfo) Serialize(w *wire.Writer) {
	w.Uint16(e.Version)
	e.OwnerAddress.Serialize(w)
	e.Mosaic.Serialize(w)
	e.EndHeight.Serialize(w)
	wire.WriteEnum8(w, e.Status)
	e.Hash.Serialize(w)
}

func ReadHashLockInfo(r *wire.Reader) *HashLockInfo {
	return &HashLockInfo{
		Version:      r.Uint16(),
		OwnerAddress: model.ReadAddress(r),
		Mosaic:       model.ReadMosaic(r),
		EndHeight:    model.ReadHeight(r),
		Status:       wire.ReadEnum8[model.LockStatus](r),
		Hash:         model.ReadHash256(r),
	}
}

// DecodeHashLockInfo decodes a hash lock from the front of b.
func DecodeHashLockInfo(b []byte) (*HashLockInfo, int, error) {
	return wire.Unmarshal(b, ReadHashLockInfo)
}

// SecretLockInfo is the catalog record of a secret lock.
type SecretLockInfo struct {
	Version          uint16                  `json:"version"`
	OwnerAddress     model.Address           `json:"ownerAddress"`
	Mosaic           model.Mosaic            `json:"mosaic"`
	EndHeight        model.Height            `json:"endHeight"`
	Status           model.LockStatus        `json:"status"`
	HashAlgorithm    model.LockHashAlgorithm `json:"hashAlgorithm"`
	Secret           model.Hash256           `json:"secret"`
	RecipientAddress model.Address           `json:"recipientAddress"`
}

func (e *SecretLockInfo) Size() int {
	return 2 + model.AddressSize + 16 + 8 + 1 + 1 + model.Hash256Size + model.AddressSize
}

func (e *SecretLockInfo) Serialize(w *wire.Writer) {
	w.Uint16(e.Version)
	e.OwnerAddress.Serialize(w)
	e.Mosaic.Serialize(w)
	e.EndHeight.Serialize(w)
	wire.WriteEnum8(w, e.Status)
	wire.WriteEnum8(w, e.HashAlgorithm)
	e.Secret.Serialize(w)
	e.RecipientAddress.Serialize(w)
}

func ReadSecretLockInfo(r *wire.Reader) *SecretLockInfo {
	return &SecretLockInfo{
		Version:          r.Uint16(),
		OwnerAddress:     model.ReadAddress(r),
		Mosaic:           model.ReadMosaic(r),
		EndHeight:        model.ReadHeight(r),
		Status:           wire.ReadEnum8[model.LockStatus](r),
		HashAlgorithm:    wire.ReadEnum8[model.LockHashAlgorithm](r),
		Secret:           model.ReadHash256(r),
		RecipientAddress: model.ReadAddress(r),
	}
}

// DecodeSecretLockInfo decodes a secret lock from the front of b.
func DecodeSecretLockInfo(b []byte) (*SecretLockInfo, int, error) {
	return wire.Unmarshal(b, ReadSecretLockInfo)
}
