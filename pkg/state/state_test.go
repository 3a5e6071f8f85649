package state

import (
	"encoding/binary"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/wire"
)

var (
	owner    = model.Address{0x98, 0xAA}
	other    = model.Address{0x98, 0xBB}
	currency = model.Mosaic{MosaicID: 0x6BED913FA20223F8, Amount: 5}
)

// roundTrip encodes v, checks the length against Size, then decodes it back
// with trailing bytes appended.
func roundTrip[T wire.Serializer](t *testing.T, v T, decode func([]byte) (T, int, error)) []byte {
	t.Helper()
	data, err := wire.Marshal(v)
	require.NoError(t, err)
	require.Len(t, data, v.Size())

	decoded, n, err := decode(append(append([]byte{}, data...), 0xEE, 0xEE))
	require.NoError(t, err)
	assert.Equal(t, len(data), n)
	assert.Equal(t, v, decoded)
	return data
}

func TestMosaicEntry(t *testing.T) {
	entry := &MosaicEntry{
		Version:      1,
		MosaicID:     currency.MosaicID,
		Supply:       8_999_999_999_000_000,
		StartHeight:  1,
		OwnerAddress: owner,
		Revision:     1,
		Properties: MosaicProperties{
			Flags:        model.MosaicTransferable,
			Divisibility: 6,
			Duration:     0,
		},
	}
	data := roundTrip(t, entry, DecodeMosaicEntry)
	assert.Len(t, data, 64)
	assert.Equal(t, byte(model.MosaicTransferable), data[54])
	assert.Equal(t, byte(6), data[55])
}

func TestMultisigEntry(t *testing.T) {
	entry := &MultisigEntry{
		Version:              1,
		MinApproval:          2,
		MinRemoval:           1,
		AccountAddress:       owner,
		CosignatoryAddresses: []model.Address{{1}, {2}, {3}},
		MultisigAddresses:    []model.Address{{4}},
	}
	data := roundTrip(t, entry, DecodeMultisigEntry)
	assert.Equal(t, uint64(3), binary.LittleEndian.Uint64(data[34:42]))

	empty := &MultisigEntry{Version: 1, AccountAddress: owner}
	roundTrip(t, empty, DecodeMultisigEntry)
}

func TestMultisigEntry_CountBeyondInput(t *testing.T) {
	data, err := wire.Marshal(&MultisigEntry{Version: 1, CosignatoryAddresses: []model.Address{{1}}})
	require.NoError(t, err)
	binary.LittleEndian.PutUint64(data[34:42], 1<<40)

	_, _, err = DecodeMultisigEntry(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrTruncatedInput))
}

func TestLocks(t *testing.T) {
	hashLock := &HashLockInfo{
		Version:      1,
		OwnerAddress: owner,
		Mosaic:       currency,
		EndHeight:    100,
		Status:       model.LockUsed,
		Hash:         model.Hash256{0x01},
	}
	data := roundTrip(t, hashLock, DecodeHashLockInfo)
	assert.Len(t, data, 83)

	data[50] = 2
	_, _, err := DecodeHashLockInfo(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrUnrecognizedVariant))
	assert.Equal(t, 50, wire.OffsetOf(err))

	secretLock := &SecretLockInfo{
		Version:          1,
		OwnerAddress:     owner,
		Mosaic:           currency,
		EndHeight:        100,
		Status:           model.LockUnused,
		HashAlgorithm:    model.LockHash256,
		Secret:           model.Hash256{0x02},
		RecipientAddress: other,
	}
	data = roundTrip(t, secretLock, DecodeSecretLockInfo)
	assert.Len(t, data, 108)
}

func TestMetadataEntry(t *testing.T) {
	entry := &MetadataEntry{
		Version:           1,
		SourceAddress:     owner,
		TargetAddress:     other,
		ScopedMetadataKey: 0xCAFE,
		TargetID:          0,
		MetadataType:      model.MetadataAccount,
		Value:             model.HexBytes("value"),
	}
	data := roundTrip(t, entry, DecodeMetadataEntry)
	assert.Equal(t, []byte{5, 0}, data[67:69])

	noValue := &MetadataEntry{Version: 1, MetadataType: model.MetadataNamespace}
	roundTrip(t, noValue, DecodeMetadataEntry)
}

func TestMosaicRestrictionEntry(t *testing.T) {
	t.Run("address branch", func(t *testing.T) {
		entry := &MosaicRestrictionEntry{
			Version: 1,
			Restriction: AddressRestriction{
				MosaicID:      currency.MosaicID,
				TargetAddress: owner,
				KeyPairs:      []AddressKeyValue{{Key: 1, Value: 2}, {Key: 3, Value: 4}},
			},
		}
		data := roundTrip(t, entry, DecodeMosaicRestrictionEntry)
		assert.Equal(t, byte(model.RestrictionEntryAddress), data[2])
		assert.Equal(t, byte(2), data[2+1+8+24])

		address, err := RestrictionAs[AddressRestriction](entry)
		require.NoError(t, err)
		assert.Len(t, address.KeyPairs, 2)

		_, err = RestrictionAs[GlobalRestriction](entry)
		require.Error(t, err)
		assert.True(t, errors.Is(err, wire.ErrWrongVariant))
	})

	t.Run("global branch", func(t *testing.T) {
		entry := &MosaicRestrictionEntry{
			Version: 1,
			Restriction: GlobalRestriction{
				MosaicID: currency.MosaicID,
				KeyPairs: []GlobalKeyValue{
					{Key: 7, Rule: GlobalRestrictionRule{RestrictionValue: 1, RestrictionType: model.RestrictionEQ}},
				},
			},
		}
		data := roundTrip(t, entry, DecodeMosaicRestrictionEntry)
		assert.Len(t, data, 2+1+8+1+25)
		typ, ok := entry.EntryType()
		assert.True(t, ok)
		assert.Equal(t, model.RestrictionEntryGlobal, typ)
	})

	t.Run("unknown tag", func(t *testing.T) {
		_, _, err := DecodeMosaicRestrictionEntry([]byte{1, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0})
		require.Error(t, err)
		assert.True(t, errors.Is(err, wire.ErrUnrecognizedVariant))
		assert.Equal(t, 2, wire.OffsetOf(err))
	})

	t.Run("no branch", func(t *testing.T) {
		empty := &MosaicRestrictionEntry{Version: 1}
		_, ok := empty.EntryType()
		assert.False(t, ok)

		_, err := wire.Marshal(empty)
		require.Error(t, err)
		assert.True(t, errors.Is(err, wire.ErrNoActiveVariant))
	})
}

func TestAccountRestrictions(t *testing.T) {
	entry := &AccountRestrictions{
		Version: 1,
		Address: owner,
		Restrictions: []AccountRestrictionsInfo{
			{Flags: model.RestrictAddress | model.RestrictBlock, Values: AddressValues{other}},
			{Flags: model.RestrictMosaicID, Values: MosaicIDValues{1, 2}},
			{
				Flags:  model.RestrictTransactionType | model.RestrictOutgoing,
				Values: OperationValues{model.EntityTransfer},
			},
		},
	}
	data := roundTrip(t, entry, DecodeAccountRestrictions)
	assert.Equal(t, uint64(3), binary.LittleEndian.Uint64(data[26:34]))
	assert.Equal(t, []byte{0x01, 0x80}, data[34:36])

	t.Run("flags without a type bit", func(t *testing.T) {
		corrupt := append([]byte{}, data...)
		corrupt[34] = 0x00

		_, _, err := DecodeAccountRestrictions(corrupt)
		require.Error(t, err)
		assert.True(t, errors.Is(err, wire.ErrUnrecognizedVariant))
		assert.Equal(t, 34, wire.OffsetOf(err))
	})

	t.Run("flags disagree with values", func(t *testing.T) {
		bad := &AccountRestrictions{Restrictions: []AccountRestrictionsInfo{
			{Flags: model.RestrictMosaicID, Values: AddressValues{other}},
		}}
		_, err := wire.Marshal(bad)
		require.Error(t, err)
		assert.True(t, errors.Is(err, wire.ErrWrongVariant))
	})
}

func newAccountState() *AccountState {
	linked := model.PublicKey{0x11}
	vrf := model.PublicKey{0x33}
	return &AccountState{
		Version:         1,
		Address:         owner,
		AddressHeight:   1,
		PublicKey:       model.PublicKey{0x01},
		PublicKeyHeight: 2,
		AccountType:     model.AccountMain,
		LinkedPublicKey: &linked,
		VrfPublicKey:    &vrf,
		VotingPublicKeys: []model.PinnedVotingKey{
			{VotingKey: model.VotingKey{0x44}, StartEpoch: 1, EndEpoch: 10},
		},
		HighValue: &HighValueData{
			Importance: ImportanceSnapshot{Importance: 1000, Height: 720},
			Buckets: [ActivityBucketCount]ActivityBucket{
				{StartHeight: 720, TotalFeesPaid: 10, BeneficiaryCount: 1, RawScore: 99},
			},
		},
		Balances: []model.Mosaic{currency},
	}
}

func TestAccountState(t *testing.T) {
	account := newAccountState()
	assert.Equal(t, model.KeyLinked|model.KeyVrf, account.KeyMask())
	assert.Equal(t, model.FormatHighValue, account.Format())

	data := roundTrip(t, account, DecodeAccountState)
	assert.Equal(t, byte(model.AccountMain), data[74])
	assert.Equal(t, byte(model.FormatHighValue), data[75])
	assert.Equal(t, byte(model.KeyLinked|model.KeyVrf), data[76])
	assert.Equal(t, byte(1), data[77])
	assert.Equal(t, byte(0x11), data[78])
	assert.Equal(t, byte(0x33), data[110])
}

func TestAccountState_Regular(t *testing.T) {
	account := &AccountState{Version: 1, Address: owner, AccountType: model.AccountUnlinked}
	data := roundTrip(t, account, DecodeAccountState)
	assert.Len(t, data, 80)
	assert.Equal(t, model.FormatRegular, account.Format())
}

func TestAccountState_UnknownKeyBits(t *testing.T) {
	data, err := wire.Marshal(&AccountState{Version: 1})
	require.NoError(t, err)
	data[76] = 0x08

	_, _, err = DecodeAccountState(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrUnrecognizedVariant))
	assert.Equal(t, 76, wire.OffsetOf(err))
}

func TestAccountState_Truncated(t *testing.T) {
	data, err := wire.Marshal(newAccountState())
	require.NoError(t, err)

	for i := 0; i < len(data); i++ {
		_, _, err := DecodeAccountState(data[:i])
		require.Error(t, err)
		assert.True(t, errors.Is(err, wire.ErrTruncatedInput), "prefix %d: %v", i, err)
	}
}
