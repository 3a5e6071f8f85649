package entity

import (
	"encoding/binary"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssargent/catbuffer/pkg/model"
	"github.com/ssargent/catbuffer/pkg/receipt"
	"github.com/ssargent/catbuffer/pkg/state"
	"github.com/ssargent/catbuffer/pkg/transaction"
	"github.com/ssargent/catbuffer/pkg/wire"
)

func samples() map[Kind]Entity {
	transfer := transaction.TransferBody{
		Recipient: model.Address{0x98, 0x01},
		Mosaics:   []model.UnresolvedMosaic{{MosaicID: 0x091F837E059AE13C, Amount: 10}},
	}
	inflation := &receipt.Receipt{
		Version: 1,
		Type:    model.ReceiptInflation,
		Body:    receipt.InflationBody{Mosaic: model.Mosaic{MosaicID: 1, Amount: 2}},
	}
	return map[Kind]Entity{
		Transaction: &transaction.Transaction{
			Version: 1, Network: model.NetworkTestnet, Fee: 10, Deadline: 1, Body: transfer,
		},
		EmbeddedTransaction: &transaction.EmbeddedTransaction{
			Version: 1, Network: model.NetworkTestnet, Body: transfer,
		},
		Receipt: inflation,
		TransactionStatement: &receipt.TransactionStatement{
			Source:   model.ReceiptSource{PrimaryID: 1},
			Receipts: []*receipt.Receipt{inflation},
		},
		AddressResolutionStatement: receipt.AddressResolutionStatement{
			Unresolved: model.Address{0x99},
			Entries: []receipt.ResolutionEntry[model.Address]{
				{Source: model.ReceiptSource{PrimaryID: 1}, Resolved: model.Address{0x98}},
			},
		},
		MosaicResolutionStatement: receipt.MosaicResolutionStatement{Unresolved: 0x8000000000000001},
		MosaicEntry:               &state.MosaicEntry{Version: 1, MosaicID: 7, Supply: 100},
		MultisigEntry:             &state.MultisigEntry{Version: 1, MinApproval: 1},
		HashLock:                  &state.HashLockInfo{Version: 1},
		SecretLock:                &state.SecretLockInfo{Version: 1},
		MosaicRestriction: &state.MosaicRestrictionEntry{
			Version:     1,
			Restriction: state.GlobalRestriction{MosaicID: 7},
		},
		AccountRestrictions: &state.AccountRestrictions{Version: 1},
		MetadataEntry:       &state.MetadataEntry{Version: 1, Value: model.HexBytes{1, 2, 3}},
		AccountState:        &state.AccountState{Version: 1},
	}
}

func TestRegistry_CoversEveryKind(t *testing.T) {
	kinds := Kinds()
	require.Len(t, kinds, len(samples()))
	for i := 1; i < len(kinds); i++ {
		assert.True(t, kinds[i-1] < kinds[i])
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	for kind, sample := range samples() {
		t.Run(kind.String(), func(t *testing.T) {
			data, err := wire.Marshal(sample)
			require.NoError(t, err)

			decoded, n, err := Decode(kind, data)
			require.NoError(t, err)
			assert.Equal(t, len(data), n)
			assert.Equal(t, sample, decoded)
			assert.NoError(t, CheckSize(decoded, n))

			exact, err := DecodeExact(kind, data)
			require.NoError(t, err)
			assert.Equal(t, sample, exact)
		})
	}
}

func TestDecodeExact_TrailingBytes(t *testing.T) {
	data, err := wire.Marshal(samples()[MosaicEntry])
	require.NoError(t, err)

	_, err = DecodeExact(MosaicEntry, append(data, 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrSizeMismatch))
	assert.Equal(t, len(data), wire.OffsetOf(err))
}

func TestDecode_UnknownKind(t *testing.T) {
	_, _, err := Decode(Kind(0), []byte{1, 2, 3})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownKind))
	assert.False(t, Kind(200).Valid())
	assert.Equal(t, "kind(200)", Kind(200).String())
}

func TestCheckSize_FramedRecord(t *testing.T) {
	data, err := wire.Marshal(samples()[Transaction])
	require.NoError(t, err)
	declared := len(data) + 4
	binary.LittleEndian.PutUint32(data[0:4], uint32(declared))
	data = append(data, 0, 0, 0, 0)

	decoded, n, err := Decode(Transaction, data)
	require.NoError(t, err)
	assert.Equal(t, declared, n)

	err = CheckSize(decoded, n)
	require.Error(t, err)
	assert.True(t, errors.Is(err, wire.ErrSizeMismatch))
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Kind
		wantErr bool
	}{
		{name: "canonical", input: "account-state", want: AccountState},
		{name: "upper case", input: "TRANSACTION", want: Transaction},
		{name: "underscores", input: "mosaic_resolution_statement", want: MosaicResolutionStatement},
		{name: "padded", input: "  hash-lock ", want: HashLock},
		{name: "unknown", input: "block", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownKind))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKind_Text(t *testing.T) {
	for _, kind := range Kinds() {
		text, err := kind.MarshalText()
		require.NoError(t, err)

		var parsed Kind
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, kind, parsed)
	}

	_, err := Kind(0).MarshalText()
	assert.Error(t, err)
}
