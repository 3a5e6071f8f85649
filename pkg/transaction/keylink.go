package transaction

import (
	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// KeyLink is the layout shared by account, node and VRF key links.
type KeyLink struct {
	LinkedPublicKey model.PublicKey  `json:"linkedPublicKey"`
	LinkAction      model.LinkAction `json:"linkAction"`
}

func (k KeyLink) Size() int { return model.PublicKeySize + 1 }

func (k KeyLink) Serialize(w *wire.Writer) {
	k.LinkedPublicKey.Serialize(w)
	wire.WriteEnum8(w, k.LinkAction)
}

func readKeyLink(r *wire.Reader) KeyLink {
	return KeyLink{
		LinkedPublicKey: model.ReadPublicKey(r),
		LinkAction:      wire.ReadEnum8[model.LinkAction](r),
	}
}

// AccountKeyLinkBody delegates account importance to a remote key.
type AccountKeyLinkBody struct{ KeyLink }

func (AccountKeyLinkBody) Type() model.EntityType { return model.EntityAccountKeyLink }

func readAccountKeyLink(r *wire.Reader) Body { return AccountKeyLinkBody{readKeyLink(r)} }

// NodeKeyLinkBody links an account to a node key.
type NodeKeyLinkBody struct{ KeyLink }

func (NodeKeyLinkBody) Type() model.EntityType { return model.EntityNodeKeyLink }

func readNodeKeyLink(r *wire.Reader) Body { return NodeKeyLinkBody{readKeyLink(r)} }

// VrfKeyLinkBody links an account to a VRF key.
type VrfKeyLinkBody struct{ KeyLink }

func (VrfKeyLinkBody) Type() model.EntityType { return model.EntityVrfKeyLink }

func readVrfKeyLink(r *wire.Reader) Body { return VrfKeyLinkBody{readKeyLink(r)} }

// VotingKeyLinkBody links a voting key for an epoch range.
type VotingKeyLinkBody struct {
	LinkedPublicKey model.VotingKey         `json:"linkedPublicKey"`
	StartEpoch      model.FinalizationEpoch `json:"startEpoch"`
	EndEpoch        model.FinalizationEpoch `json:"endEpoch"`
	LinkAction      model.LinkAction        `json:"linkAction"`
}

func (b VotingKeyLinkBody) Type() model.EntityType { return model.EntityVotingKeyLink }

func (b VotingKeyLinkBody) Size() int { return model.VotingKeySize + 4 + 4 + 1 }

func (b VotingKeyLinkBody) Serialize(w *wire.Writer) {
	b.LinkedPublicKey.Serialize(w)
	b.StartEpoch.Serialize(w)
	b.EndEpoch.Serialize(w)
	wire.WriteEnum8(w, b.LinkAction)
}

func readVotingKeyLink(r *wire.Reader) Body {
	return VotingKeyLinkBody{
		LinkedPublicKey: model.ReadVotingKey(r),
		StartEpoch:      model.ReadFinalizationEpoch(r),
		EndEpoch:        model.ReadFinalizationEpoch(r),
		LinkAction:      wire.ReadEnum8[model.LinkAction](r),
	}
}
