// Package entity names every top level record the codec understands and
// decodes records by name. The journal, the archive, the HTTP API and the
// command line all address records through a Kind.
package entity

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/ssargent/catbuffer/pkg/receipt"
	"github.com/ssargent/catbuffer/pkg/state"
	"github.com/ssargent/catbuffer/pkg/transaction"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// Entity is a decoded record.
type Entity = wire.Serializer

// Kind identifies a record layout. Its value is persisted by the journal and
// the archive, so existing values must never be renumbered.
type Kind uint8

const (
	Transaction Kind = iota + 1
	EmbeddedTransaction
	Receipt
	TransactionStatement
	AddressResolutionStatement
	MosaicResolutionStatement
	MosaicEntry
	MultisigEntry
	HashLock
	SecretLock
	MosaicRestriction
	AccountRestrictions
	MetadataEntry
	AccountState
)

// ErrUnknownKind is returned for kind names and values without a decoder.
var ErrUnknownKind = errors.New("unknown entity kind")

// Decoder decodes one record from the front of b and reports how many bytes
// it occupies.
type Decoder func(b []byte) (Entity, int, error)

type registration struct {
	name   string
	decode Decoder
}

func adapt[T Entity](decode func([]byte) (T, int, error)) Decoder {
	return func(b []byte) (Entity, int, error) {
		v, n, err := decode(b)
		if err != nil {
			return nil, 0, err
		}
		return v, n, nil
	}
}

var registry = map[Kind]registration{
	Transaction:                {"transaction", adapt(transaction.Decode)},
	EmbeddedTransaction:        {"embedded-transaction", adapt(transaction.DecodeEmbedded)},
	Receipt:                    {"receipt", adapt(receipt.Decode)},
	TransactionStatement:       {"transaction-statement", adapt(receipt.DecodeTransactionStatement)},
	AddressResolutionStatement: {"address-resolution-statement", adapt(receipt.DecodeAddressResolutionStatement)},
	MosaicResolutionStatement:  {"mosaic-resolution-statement", adapt(receipt.DecodeMosaicResolutionStatement)},
	MosaicEntry:                {"mosaic-entry", adapt(state.DecodeMosaicEntry)},
	MultisigEntry:              {"multisig-entry", adapt(state.DecodeMultisigEntry)},
	HashLock:                   {"hash-lock", adapt(state.DecodeHashLockInfo)},
	SecretLock:                 {"secret-lock", adapt(state.DecodeSecretLockInfo)},
	MosaicRestriction:          {"mosaic-restriction", adapt(state.DecodeMosaicRestrictionEntry)},
	AccountRestrictions:        {"account-restrictions", adapt(state.DecodeAccountRestrictions)},
	MetadataEntry:              {"metadata-entry", adapt(state.DecodeMetadataEntry)},
	AccountState:               {"account-state", adapt(state.DecodeAccountState)},
}

var byName = func() map[string]Kind {
	m := make(map[string]Kind, len(registry))
	for k, reg := range registry {
		m[reg.name] = k
	}
	return m
}()

// Valid reports whether k has a decoder.
func (k Kind) Valid() bool {
	_, ok := registry[k]
	return ok
}

func (k Kind) String() string {
	if reg, ok := registry[k]; ok {
		return reg.name
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, errors.Wrapf(ErrUnknownKind, "value %d", uint8(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind resolves a kind name. Names are case insensitive and accept
// underscores in place of dashes.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if k, ok := byName[normalized]; ok {
		return k, nil
	}
	return 0, errors.Wrapf(ErrUnknownKind, "%q", name)
}

// Kinds returns every registered kind in ascending order.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(registry))
	for k := range registry {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Decode decodes a record of kind k from the front of b. For records that
// declare their own size, n is the declared size.
func Decode(k Kind, b []byte) (Entity, int, error) {
	reg, ok := registry[k]
	if !ok {
		return nil, 0, errors.Wrapf(ErrUnknownKind, "value %d", uint8(k))
	}
	return reg.decode(b)
}

// DecodeExact decodes a record that must occupy all of b.
func DecodeExact(k Kind, b []byte) (Entity, error) {
	e, n, err := Decode(k, b)
	if err != nil {
		return nil, err
	}
	if n != len(b) {
		return nil, wire.NewError(wire.ErrSizeMismatch, n, "%s occupies %d of %d bytes", k, n, len(b))
	}
	return e, nil
}

// CheckSize compares the size a record occupied on the wire with the size
// its decoded content implies. The two differ only for framed records whose
// declared size disagrees with their content.
func CheckSize(e Entity, n int) error {
	return wire.CheckSize(n, e.Size())
}
