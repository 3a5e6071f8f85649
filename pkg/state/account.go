package state

import (
	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

// ActivityBucketCount is the number of activity buckets a high value
// account carries.
const ActivityBucketCount = 5

// knownKeyTypes are the supplemental key bits whose keys have a layout.
const knownKeyTypes = model.KeyLinked | model.KeyNode | model.KeyVrf

// ImportanceSnapshot is the importance of an account at a height.
type ImportanceSnapshot struct {
	Importance model.Importance `json:"importance"`
	Height     model.Height     `json:"height"`
}

// ActivityBucket summarizes harvesting activity starting at a height.
type ActivityBucket struct {
	StartHeight      model.Height `json:"startHeight"`
	TotalFeesPaid    model.Amount `json:"totalFeesPaid"`
	BeneficiaryCount uint32       `json:"beneficiaryCount"`
	RawScore         uint64       `json:"rawScore"`
}

func (b ActivityBucket) Size() int { return 8 + 8 + 4 + 8 }

func (b ActivityBucket) Serialize(w *wire.Writer) {
	b.StartHeight.Serialize(w)
	b.TotalFeesPaid.Serialize(w)
	w.Uint32(b.BeneficiaryCount)
	w.Uint64(b.RawScore)
}

func readActivityBucket(r *wire.Reader) ActivityBucket {
	return ActivityBucket{
		StartHeight:      model.ReadHeight(r),
		TotalFeesPaid:    model.ReadAmount(r),
		BeneficiaryCount: r.Uint32(),
		RawScore:         r.Uint64(),
	}
}

// HighValueData is carried only by accounts stored in the high value
// format.
type HighValueData struct {
	Importance ImportanceSnapshot                  `json:"importance"`
	Buckets    [ActivityBucketCount]ActivityBucket `json:"activityBuckets"`
}

func (h *HighValueData) Size() int { return 16 + ActivityBucketCount*ActivityBucket{}.Size() }

func (h *HighValueData) Serialize(w *wire.Writer) {
	h.Importance.Importance.Serialize(w)
	h.Importance.Height.Serialize(w)
	wire.WriteArray(w, h.Buckets[:])
}

func readHighValueData(r *wire.Reader) *HighValueData {
	h := &HighValueData{}
	h.Importance.Importance = model.ReadImportance(r)
	h.Importance.Height = model.ReadHeight(r)
	buckets := wire.ReadArray(r, ActivityBucketCount, readActivityBucket)
	copy(h.Buckets[:], buckets)
	return h
}

// AccountState is the catalog record of an account.
//
// The supplemental key mask and the state format are not stored: they are
// derived from which optional keys are present and whether HighValue is
// set.
type AccountState struct {
	Version          uint16                  `json:"version"`
	Address          model.Address           `json:"address"`
	AddressHeight    model.Height            `json:"addressHeight"`
	PublicKey        model.PublicKey         `json:"publicKey"`
	PublicKeyHeight  model.Height            `json:"publicKeyHeight"`
	AccountType      model.AccountType       `json:"accountType"`
	LinkedPublicKey  *model.PublicKey        `json:"linkedPublicKey,omitempty"`
	NodePublicKey    *model.PublicKey        `json:"nodePublicKey,omitempty"`
	VrfPublicKey     *model.PublicKey        `json:"vrfPublicKey,omitempty"`
	VotingPublicKeys []model.PinnedVotingKey `json:"votingPublicKeys"`
	HighValue        *HighValueData          `json:"highValue,omitempty"`
	Balances         []model.Mosaic          `json:"balances"`
}

// KeyMask returns the supplemental key mask implied by the optional keys.
func (a *AccountState) KeyMask() model.AccountKeyTypeFlags {
	var mask model.AccountKeyTypeFlags
	if a.LinkedPublicKey != nil {
		mask |= model.KeyLinked
	}
	if a.NodePublicKey != nil {
		mask |= model.KeyNode
	}
	if a.VrfPublicKey != nil {
		mask |= model.KeyVrf
	}
	return mask
}

// Format returns the state format implied by HighValue.
func (a *AccountState) Format() model.AccountStateFormat {
	if a.HighValue != nil {
		return model.FormatHighValue
	}
	return model.FormatRegular
}

func (a *AccountState) Size() int {
	size := 2 + model.AddressSize + 8 + model.PublicKeySize + 8 + 1 + 1 + 1 + 1
	for _, key := range []*model.PublicKey{a.LinkedPublicKey, a.NodePublicKey, a.VrfPublicKey} {
		if key != nil {
			size += model.PublicKeySize
		}
	}
	size += wire.ArraySize(a.VotingPublicKeys)
	if a.HighValue != nil {
		size += a.HighValue.Size()
	}
	return size + 2 + wire.ArraySize(a.Balances)
}

func (a *AccountState) Serialize(w *wire.Writer) {
	w.Uint16(a.Version)
	a.Address.Serialize(w)
	a.AddressHeight.Serialize(w)
	a.PublicKey.Serialize(w)
	a.PublicKeyHeight.Serialize(w)
	wire.WriteEnum8(w, a.AccountType)
	wire.WriteEnum8(w, a.Format())
	a.KeyMask().Serialize(w)
	w.Count(wire.Width8, len(a.VotingPublicKeys))
	for _, key := range []*model.PublicKey{a.LinkedPublicKey, a.NodePublicKey, a.VrfPublicKey} {
		if key != nil {
			key.Serialize(w)
		}
	}
	wire.WriteArray(w, a.VotingPublicKeys)
	if a.HighValue != nil {
		a.HighValue.Serialize(w)
	}
	wire.WritePrefixedArray(w, wire.Width16, a.Balances)
}

func ReadAccountState(r *wire.Reader) *AccountState {
	a := &AccountState{
		Version:         r.Uint16(),
		Address:         model.ReadAddress(r),
		AddressHeight:   model.ReadHeight(r),
		PublicKey:       model.ReadPublicKey(r),
		PublicKeyHeight: model.ReadHeight(r),
		AccountType:     wire.ReadEnum8[model.AccountType](r),
	}
	format := wire.ReadEnum8[model.AccountStateFormat](r)
	maskOffset := r.Offset()
	mask := model.ReadAccountKeyTypeFlags(r)
	if r.Err() == nil && mask&^knownKeyTypes != 0 {
		r.FailAt(maskOffset, wire.NewError(wire.ErrUnrecognizedVariant, maskOffset, "supplemental key mask %s", mask))
		return a
	}
	votingKeys := r.Count(wire.Width8)

	readKey := func(bit model.AccountKeyTypeFlags) *model.PublicKey {
		if !mask.Has(bit) || r.Err() != nil {
			return nil
		}
		key := model.ReadPublicKey(r)
		return &key
	}
	a.LinkedPublicKey = readKey(model.KeyLinked)
	a.NodePublicKey = readKey(model.KeyNode)
	a.VrfPublicKey = readKey(model.KeyVrf)

	a.VotingPublicKeys = wire.ReadArray(r, votingKeys, model.ReadPinnedVotingKey)
	if format == model.FormatHighValue && r.Err() == nil {
		a.HighValue = readHighValueData(r)
	}
	a.Balances = wire.ReadPrefixedArray(r, wire.Width16, model.ReadMosaic)
	return a
}

// DecodeAccountState decodes an account state from the front of b.
func DecodeAccountState(b []byte) (*AccountState, int, error) {
	return wire.Unmarshal(b, ReadAccountState)
}
