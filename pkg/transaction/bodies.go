package transaction

import (
	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

var embeddedBranches = map[model.EntityType]wire.DecodeFunc[Body]{
	model.EntityTransfer:                    readTransfer,
	model.EntityAccountKeyLink:              readAccountKeyLink,
	model.EntityNodeKeyLink:                 readNodeKeyLink,
	model.EntityVrfKeyLink:                  readVrfKeyLink,
	model.EntityVotingKeyLink:               readVotingKeyLink,
	model.EntityHashLock:                    readHashLock,
	model.EntitySecretLock:                  readSecretLock,
	model.EntitySecretProof:                 readSecretProof,
	model.EntityAccountMetadata:             readAccountMetadata,
	model.EntityMosaicMetadata:              readMosaicMetadata,
	model.EntityNamespaceMetadata:           readNamespaceMetadata,
	model.EntityMosaicDefinition:            readMosaicDefinition,
	model.EntityMosaicSupplyChange:          readMosaicSupplyChange,
	model.EntityMosaicSupplyRevocation:      readMosaicSupplyRevocation,
	model.EntityNamespaceRegistration:       readNamespaceRegistration,
	model.EntityAddressAlias:                readAddressAlias,
	model.EntityMosaicAlias:                 readMosaicAlias,
	model.EntityMultisigAccountModification: readMultisigAccountModification,
	model.EntityAccountAddressRestriction:   readAccountAddressRestriction,
	model.EntityAccountMosaicRestriction:    readAccountMosaicRestriction,
	model.EntityAccountOperationRestriction: readAccountOperationRestriction,
	model.EntityMosaicAddressRestriction:    readMosaicAddressRestriction,
	model.EntityMosaicGlobalRestriction:     readMosaicGlobalRestriction,
}

var (
	embeddedBodies = wire.NewUnion("embedded transaction body", embeddedBranches)
	bodies         = wire.NewUnion("transaction body", withAggregates(embeddedBranches))
)

func withAggregates(m map[model.EntityType]wire.DecodeFunc[Body]) map[model.EntityType]wire.DecodeFunc[Body] {
	out := make(map[model.EntityType]wire.DecodeFunc[Body], len(m)+2)
	for k, v := range m {
		out[k] = v
	}
	out[model.EntityAggregateComplete] = readAggregateComplete
	out[model.EntityAggregateBonded] = readAggregateBonded
	return out
}

// Supported reports whether t has a body decoder.
func Supported(t model.EntityType) bool {
	return bodies.Has(t)
}
