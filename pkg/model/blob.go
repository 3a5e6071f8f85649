package model

import (
	"encoding/hex"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/ssargent/catbuffer/pkg/wire"
)

// Blob sizes in bytes.
const (
	Hash256Size   = 32
	SignatureSize = 64
	PublicKeySize = 32
	VotingKeySize = 48
	AddressSize   = 24
)

// ErrInvalidSize is returned when text does not decode to the expected
// number of bytes.
var ErrInvalidSize = errors.New("invalid size")

// loadHex decodes s, with or without a 0x prefix, into dst. The decoded
// length must match len(dst) exactly.
func loadHex(dst []byte, s string) error {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return errors.Wrap(err, "decode hex")
	}
	if len(b) != len(dst) {
		return errors.Wrapf(ErrInvalidSize, "expected %d bytes, got %d", len(dst), len(b))
	}
	copy(dst, b)
	return nil
}

func toHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// Hash256 is a 32 byte hash.
type Hash256 [Hash256Size]byte

// ParseHash256 parses a hex encoded hash.
func ParseHash256(s string) (Hash256, error) {
	var h Hash256
	err := loadHex(h[:], s)
	return h, err
}

func ReadHash256(r *wire.Reader) Hash256 {
	var h Hash256
	r.Fixed(h[:])
	return h
}

func (h Hash256) Size() int { return Hash256Size }

func (h Hash256) Serialize(w *wire.Writer) { w.Fixed(h[:]) }

func (h Hash256) String() string { return toHex(h[:]) }

func (h Hash256) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

func (h *Hash256) UnmarshalText(text []byte) error { return loadHex(h[:], string(text)) }

// Signature is a 64 byte signature.
type Signature [SignatureSize]byte

// ParseSignature parses a hex encoded signature.
func ParseSignature(s string) (Signature, error) {
	var sig Signature
	err := loadHex(sig[:], s)
	return sig, err
}

func ReadSignature(r *wire.Reader) Signature {
	var s Signature
	r.Fixed(s[:])
	return s
}

func (s Signature) Size() int { return SignatureSize }

func (s Signature) Serialize(w *wire.Writer) { w.Fixed(s[:]) }

func (s Signature) String() string { return toHex(s[:]) }

func (s Signature) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Signature) UnmarshalText(text []byte) error { return loadHex(s[:], string(text)) }

// PublicKey is a 32 byte public key.
type PublicKey [PublicKeySize]byte

// ParsePublicKey parses a hex encoded public key.
func ParsePublicKey(s string) (PublicKey, error) {
	var k PublicKey
	err := loadHex(k[:], s)
	return k, err
}

func ReadPublicKey(r *wire.Reader) PublicKey {
	var k PublicKey
	r.Fixed(k[:])
	return k
}

func (k PublicKey) Size() int { return PublicKeySize }

func (k PublicKey) Serialize(w *wire.Writer) { w.Fixed(k[:]) }

func (k PublicKey) String() string { return toHex(k[:]) }

func (k PublicKey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *PublicKey) UnmarshalText(text []byte) error { return loadHex(k[:], string(text)) }

// VotingKey is a 48 byte finalization voting key.
type VotingKey [VotingKeySize]byte

func ReadVotingKey(r *wire.Reader) VotingKey {
	var k VotingKey
	r.Fixed(k[:])
	return k
}

func (k VotingKey) Size() int { return VotingKeySize }

func (k VotingKey) Serialize(w *wire.Writer) { w.Fixed(k[:]) }

func (k VotingKey) String() string { return toHex(k[:]) }

func (k VotingKey) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

func (k *VotingKey) UnmarshalText(text []byte) error { return loadHex(k[:], string(text)) }

// Address is a 24 byte account address. The same layout carries both
// resolved and unresolved (alias) addresses.
type Address [AddressSize]byte

// ParseAddress parses a hex encoded address.
func ParseAddress(s string) (Address, error) {
	var a Address
	err := loadHex(a[:], s)
	return a, err
}

func ReadAddress(r *wire.Reader) Address {
	var a Address
	r.Fixed(a[:])
	return a
}

func (a Address) Size() int { return AddressSize }

func (a Address) Serialize(w *wire.Writer) { w.Fixed(a[:]) }

func (a Address) String() string { return toHex(a[:]) }

func (a Address) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

func (a *Address) UnmarshalText(text []byte) error { return loadHex(a[:], string(text)) }

// HexBytes is variable length binary data rendered as hex text.
type HexBytes []byte

func (b HexBytes) String() string { return toHex(b) }

func (b HexBytes) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

func (b *HexBytes) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimPrefix(string(text), "0x"), "0X")
	decoded, err := hex.DecodeString(s)
	if err != nil {
		return errors.Wrap(err, "decode hex")
	}
	if len(decoded) == 0 {
		decoded = nil
	}
	*b = decoded
	return nil
}
