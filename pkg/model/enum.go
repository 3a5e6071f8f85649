package model

import (
	"fmt"

	"github.com/ssargent/catbuffer/pkg/wire"
)

type enumNames[T ~uint8 | ~uint16] map[T]string

func (n enumNames[T]) name(v T, digits int) string {
	if s, ok := n[v]; ok {
		return s
	}
	return fmt.Sprintf("UNKNOWN(0x%0*X)", digits, uint64(v))
}

func (n enumNames[T]) valid(v T) bool {
	_, ok := n[v]
	return ok
}

// NetworkType identifies the network a transaction targets.
type NetworkType uint8

const (
	NetworkMijin     NetworkType = 0x60
	NetworkMainnet   NetworkType = 0x68
	NetworkMijinTest NetworkType = 0x90
	NetworkTestnet   NetworkType = 0x98
)

var networkTypeNames = enumNames[NetworkType]{
	NetworkMijin:     "MIJIN",
	NetworkMainnet:   "MAINNET",
	NetworkMijinTest: "MIJIN_TEST",
	NetworkTestnet:   "TESTNET",
}

// ParseNetworkType looks a network up by name.
func ParseNetworkType(s string) (NetworkType, bool) {
	for k, v := range networkTypeNames {
		if v == s {
			return k, true
		}
	}
	return 0, false
}

func (v NetworkType) Valid() bool                  { return networkTypeNames.valid(v) }
func (v NetworkType) String() string               { return networkTypeNames.name(v, 2) }
func (v NetworkType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v NetworkType) Size() int                    { return 1 }
func (v NetworkType) Serialize(w *wire.Writer)     { wire.WriteEnum8(w, v) }

// EntityType is the type code of a transaction.
type EntityType uint16

const (
	EntityAccountKeyLink              EntityType = 0x414C
	EntityNodeKeyLink                 EntityType = 0x424C
	EntityAggregateComplete           EntityType = 0x4141
	EntityAggregateBonded             EntityType = 0x4241
	EntityVotingKeyLink               EntityType = 0x4143
	EntityVrfKeyLink                  EntityType = 0x4243
	EntityHashLock                    EntityType = 0x4148
	EntitySecretLock                  EntityType = 0x4152
	EntitySecretProof                 EntityType = 0x4252
	EntityAccountMetadata             EntityType = 0x4144
	EntityMosaicMetadata              EntityType = 0x4244
	EntityNamespaceMetadata           EntityType = 0x4344
	EntityMosaicDefinition            EntityType = 0x414D
	EntityMosaicSupplyChange          EntityType = 0x424D
	EntityMosaicSupplyRevocation      EntityType = 0x434D
	EntityMultisigAccountModification EntityType = 0x4155
	EntityAddressAlias                EntityType = 0x424E
	EntityMosaicAlias                 EntityType = 0x434E
	EntityNamespaceRegistration       EntityType = 0x414E
	EntityAccountAddressRestriction   EntityType = 0x4150
	EntityAccountMosaicRestriction    EntityType = 0x4250
	EntityAccountOperationRestriction EntityType = 0x4350
	EntityMosaicAddressRestriction    EntityType = 0x4251
	EntityMosaicGlobalRestriction     EntityType = 0x4151
	EntityTransfer                    EntityType = 0x4154
)

var entityTypeNames = enumNames[EntityType]{
	EntityAccountKeyLink:              "ACCOUNT_KEY_LINK",
	EntityNodeKeyLink:                 "NODE_KEY_LINK",
	EntityAggregateComplete:           "AGGREGATE_COMPLETE",
	EntityAggregateBonded:             "AGGREGATE_BONDED",
	EntityVotingKeyLink:               "VOTING_KEY_LINK",
	EntityVrfKeyLink:                  "VRF_KEY_LINK",
	EntityHashLock:                    "HASH_LOCK",
	EntitySecretLock:                  "SECRET_LOCK",
	EntitySecretProof:                 "SECRET_PROOF",
	EntityAccountMetadata:             "ACCOUNT_METADATA",
	EntityMosaicMetadata:              "MOSAIC_METADATA",
	EntityNamespaceMetadata:           "NAMESPACE_METADATA",
	EntityMosaicDefinition:            "MOSAIC_DEFINITION",
	EntityMosaicSupplyChange:          "MOSAIC_SUPPLY_CHANGE",
	EntityMosaicSupplyRevocation:      "MOSAIC_SUPPLY_REVOCATION",
	EntityMultisigAccountModification: "MULTISIG_ACCOUNT_MODIFICATION",
	EntityAddressAlias:                "ADDRESS_ALIAS",
	EntityMosaicAlias:                 "MOSAIC_ALIAS",
	EntityNamespaceRegistration:       "NAMESPACE_REGISTRATION",
	EntityAccountAddressRestriction:   "ACCOUNT_ADDRESS_RESTRICTION",
	EntityAccountMosaicRestriction:    "ACCOUNT_MOSAIC_RESTRICTION",
	EntityAccountOperationRestriction: "ACCOUNT_OPERATION_RESTRICTION",
	EntityMosaicAddressRestriction:    "MOSAIC_ADDRESS_RESTRICTION",
	EntityMosaicGlobalRestriction:     "MOSAIC_GLOBAL_RESTRICTION",
	EntityTransfer:                    "TRANSFER",
}

// ReadEntityType reads a transaction type code.
func ReadEntityType(r *wire.Reader) EntityType { return wire.ReadEnum16[EntityType](r) }

func (v EntityType) Valid() bool                  { return entityTypeNames.valid(v) }
func (v EntityType) String() string               { return entityTypeNames.name(v, 4) }
func (v EntityType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }
func (v EntityType) Size() int                    { return 2 }
func (v EntityType) Serialize(w *wire.Writer)     { wire.WriteEnum16(w, v) }

// ReceiptType is the type code of a receipt.
type ReceiptType uint16

const (
	ReceiptMosaicRentalFee        ReceiptType = 0x124D
	ReceiptNamespaceRentalFee     ReceiptType = 0x134E
	ReceiptHarvestFee             ReceiptType = 0x2143
	ReceiptLockHashCompleted      ReceiptType = 0x2248
	ReceiptLockHashExpired        ReceiptType = 0x2348
	ReceiptLockSecretCompleted    ReceiptType = 0x2252
	ReceiptLockSecretExpired      ReceiptType = 0x2352
	ReceiptLockHashCreated        ReceiptType = 0x3148
	ReceiptLockSecretCreated      ReceiptType = 0x3152
	ReceiptMosaicExpired          ReceiptType = 0x414D
	ReceiptNamespaceExpired       ReceiptType = 0x414E
	ReceiptNamespaceDeleted       ReceiptType = 0x424E
	ReceiptInflation              ReceiptType = 0x5143
	ReceiptTransactionGroup       ReceiptType = 0xE143
	ReceiptAddressAliasResolution ReceiptType = 0xF143
	ReceiptMosaicAliasResolution  ReceiptType = 0xF243
)

var receiptTypeNames = enumNames[ReceiptType]{
	ReceiptMosaicRentalFee:        "MOSAIC_RENTAL_FEE",
	ReceiptNamespaceRentalFee:     "NAMESPACE_RENTAL_FEE",
	ReceiptHarvestFee:             "HARVEST_FEE",
	ReceiptLockHashCompleted:      "LOCK_HASH_COMPLETED",
	ReceiptLockHashExpired:        "LOCK_HASH_EXPIRED",
	ReceiptLockSecretCompleted:    "LOCK_SECRET_COMPLETED",
	ReceiptLockSecretExpired:      "LOCK_SECRET_EXPIRED",
	ReceiptLockHashCreated:        "LOCK_HASH_CREATED",
	ReceiptLockSecretCreated:      "LOCK_SECRET_CREATED",
	ReceiptMosaicExpired:          "MOSAIC_EXPIRED",
	ReceiptNamespaceExpired:       "NAMESPACE_EXPIRED",
	ReceiptNamespaceDeleted:       "NAMESPACE_DELETED",
	ReceiptInflation:              "INFLATION",
	ReceiptTransactionGroup:       "TRANSACTION_GROUP",
	ReceiptAddressAliasResolution: "ADDRESS_ALIAS_RESOLUTION",
	ReceiptMosaicAliasResolution:  "MOSAIC_ALIAS_RESOLUTION",
}

func (v ReceiptType) Valid() bool                  { return receiptTypeNames.valid(v) }
func (v ReceiptType) String() string               { return receiptTypeNames.name(v, 4) }
func (v ReceiptType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// LinkAction links or unlinks a key.
type LinkAction uint8

const (
	Unlink LinkAction = 0
	Link   LinkAction = 1
)

var linkActionNames = enumNames[LinkAction]{Unlink: "UNLINK", Link: "LINK"}

func (v LinkAction) Valid() bool                  { return linkActionNames.valid(v) }
func (v LinkAction) String() string               { return linkActionNames.name(v, 2) }
func (v LinkAction) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// AliasAction links or unlinks a namespace alias.
type AliasAction uint8

const (
	AliasUnlink AliasAction = 0
	AliasLink   AliasAction = 1
)

var aliasActionNames = enumNames[AliasAction]{AliasUnlink: "UNLINK", AliasLink: "LINK"}

func (v AliasAction) Valid() bool                  { return aliasActionNames.valid(v) }
func (v AliasAction) String() string               { return aliasActionNames.name(v, 2) }
func (v AliasAction) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// MosaicSupplyChangeAction is the direction of a supply change.
type MosaicSupplyChangeAction uint8

const (
	SupplyDecrease MosaicSupplyChangeAction = 0
	SupplyIncrease MosaicSupplyChangeAction = 1
)

var supplyChangeActionNames = enumNames[MosaicSupplyChangeAction]{
	SupplyDecrease: "DECREASE",
	SupplyIncrease: "INCREASE",
}

func (v MosaicSupplyChangeAction) Valid() bool    { return supplyChangeActionNames.valid(v) }
func (v MosaicSupplyChangeAction) String() string { return supplyChangeActionNames.name(v, 2) }
func (v MosaicSupplyChangeAction) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// NamespaceRegistrationType selects between root and child namespaces.
type NamespaceRegistrationType uint8

const (
	NamespaceRoot  NamespaceRegistrationType = 0
	NamespaceChild NamespaceRegistrationType = 1
)

var namespaceRegistrationTypeNames = enumNames[NamespaceRegistrationType]{
	NamespaceRoot:  "ROOT",
	NamespaceChild: "CHILD",
}

func (v NamespaceRegistrationType) Valid() bool { return namespaceRegistrationTypeNames.valid(v) }
func (v NamespaceRegistrationType) String() string {
	return namespaceRegistrationTypeNames.name(v, 2)
}
func (v NamespaceRegistrationType) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// LockHashAlgorithm is the hash applied to a secret lock proof.
type LockHashAlgorithm uint8

const (
	LockSHA3_256 LockHashAlgorithm = 0
	LockHash160  LockHashAlgorithm = 1
	LockHash256  LockHashAlgorithm = 2
)

var lockHashAlgorithmNames = enumNames[LockHashAlgorithm]{
	LockSHA3_256: "SHA3_256",
	LockHash160:  "HASH_160",
	LockHash256:  "HASH_256",
}

func (v LockHashAlgorithm) Valid() bool                  { return lockHashAlgorithmNames.valid(v) }
func (v LockHashAlgorithm) String() string               { return lockHashAlgorithmNames.name(v, 2) }
func (v LockHashAlgorithm) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// MosaicRestrictionType is the comparison applied by a global restriction.
type MosaicRestrictionType uint8

const (
	RestrictionNone MosaicRestrictionType = 0
	RestrictionEQ   MosaicRestrictionType = 1
	RestrictionNE   MosaicRestrictionType = 2
	RestrictionLT   MosaicRestrictionType = 3
	RestrictionLE   MosaicRestrictionType = 4
	RestrictionGT   MosaicRestrictionType = 5
	RestrictionGE   MosaicRestrictionType = 6
)

var mosaicRestrictionTypeNames = enumNames[MosaicRestrictionType]{
	RestrictionNone: "NONE",
	RestrictionEQ:   "EQ",
	RestrictionNE:   "NE",
	RestrictionLT:   "LT",
	RestrictionLE:   "LE",
	RestrictionGT:   "GT",
	RestrictionGE:   "GE",
}

func (v MosaicRestrictionType) Valid() bool    { return mosaicRestrictionTypeNames.valid(v) }
func (v MosaicRestrictionType) String() string { return mosaicRestrictionTypeNames.name(v, 2) }
func (v MosaicRestrictionType) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// LockStatus reports whether a lock has been used.
type LockStatus uint8

const (
	LockUnused LockStatus = 0
	LockUsed   LockStatus = 1
)

var lockStatusNames = enumNames[LockStatus]{LockUnused: "UNUSED", LockUsed: "USED"}

func (v LockStatus) Valid() bool                  { return lockStatusNames.valid(v) }
func (v LockStatus) String() string               { return lockStatusNames.name(v, 2) }
func (v LockStatus) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// AccountType describes how an account participates in harvesting.
type AccountType uint8

const (
	AccountUnlinked       AccountType = 0
	AccountMain           AccountType = 1
	AccountRemote         AccountType = 2
	AccountRemoteUnlinked AccountType = 3
)

var accountTypeNames = enumNames[AccountType]{
	AccountUnlinked:       "UNLINKED",
	AccountMain:           "MAIN",
	AccountRemote:         "REMOTE",
	AccountRemoteUnlinked: "REMOTE_UNLINKED",
}

func (v AccountType) Valid() bool                  { return accountTypeNames.valid(v) }
func (v AccountType) String() string               { return accountTypeNames.name(v, 2) }
func (v AccountType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// AccountStateFormat selects the optional high value section of an account.
type AccountStateFormat uint8

const (
	FormatRegular   AccountStateFormat = 0
	FormatHighValue AccountStateFormat = 1
)

var accountStateFormatNames = enumNames[AccountStateFormat]{
	FormatRegular:   "REGULAR",
	FormatHighValue: "HIGH_VALUE",
}

func (v AccountStateFormat) Valid() bool                  { return accountStateFormatNames.valid(v) }
func (v AccountStateFormat) String() string               { return accountStateFormatNames.name(v, 2) }
func (v AccountStateFormat) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// MetadataType is the kind of object a metadata entry is attached to.
type MetadataType uint8

const (
	MetadataAccount   MetadataType = 0
	MetadataMosaic    MetadataType = 1
	MetadataNamespace MetadataType = 2
)

var metadataTypeNames = enumNames[MetadataType]{
	MetadataAccount:   "ACCOUNT",
	MetadataMosaic:    "MOSAIC",
	MetadataNamespace: "NAMESPACE",
}

func (v MetadataType) Valid() bool                  { return metadataTypeNames.valid(v) }
func (v MetadataType) String() string               { return metadataTypeNames.name(v, 2) }
func (v MetadataType) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// MosaicRestrictionEntryType tags the branch of a mosaic restriction entry.
type MosaicRestrictionEntryType uint8

const (
	RestrictionEntryAddress MosaicRestrictionEntryType = 0
	RestrictionEntryGlobal  MosaicRestrictionEntryType = 1
)

var restrictionEntryTypeNames = enumNames[MosaicRestrictionEntryType]{
	RestrictionEntryAddress: "ADDRESS",
	RestrictionEntryGlobal:  "GLOBAL",
}

func (v MosaicRestrictionEntryType) Valid() bool { return restrictionEntryTypeNames.valid(v) }
func (v MosaicRestrictionEntryType) String() string {
	return restrictionEntryTypeNames.name(v, 2)
}
func (v MosaicRestrictionEntryType) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
